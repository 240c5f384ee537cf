package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainCache "github.com/AzielCF/az-citydata/domains/cache"
	"github.com/AzielCF/az-citydata/domains/health"
	"github.com/AzielCF/az-citydata/repository"
)

type brokenStore struct{}

func (brokenStore) Get(context.Context, string) (*domainCache.Entry, error) { return nil, nil }
func (brokenStore) Set(context.Context, string, domainCache.Entry, time.Duration) error {
	return nil
}
func (brokenStore) Stats(context.Context) (domainCache.Stats, error) {
	return domainCache.Stats{}, errors.New("connection refused")
}

func TestHealth_GetStatus(t *testing.T) {
	store := repository.NewMemoryCacheStore(time.Minute, 10)
	t.Cleanup(store.Close)

	svc := NewHealthService("v1.2.3", store, []health.Upstream{{Name: "weather", Configured: true}})
	record, err := svc.GetStatus(context.Background())
	require.NoError(t, err)

	assert.Equal(t, health.StatusOk, record.Status)
	assert.Equal(t, "v1.2.3", record.Version)
	assert.Equal(t, "memory", record.Cache.Backend)
	assert.Len(t, record.Upstreams, 1)
	assert.NotEmpty(t, record.Uptime)
}

func TestHealth_CacheFailureIsReported(t *testing.T) {
	svc := NewHealthService("v1.2.3", brokenStore{}, nil)

	record, err := svc.GetStatus(context.Background())
	require.NoError(t, err)
	assert.Equal(t, health.StatusError, record.Status)
	assert.Equal(t, "connection refused", record.Message)
}
