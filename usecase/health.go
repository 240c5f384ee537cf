package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	domainCache "github.com/AzielCF/az-citydata/domains/cache"
	"github.com/AzielCF/az-citydata/domains/health"
)

type healthService struct {
	version   string
	store     domainCache.Store
	upstreams []health.Upstream
	startedAt time.Time
}

func NewHealthService(version string, store domainCache.Store, upstreams []health.Upstream) health.IHealthUsecase {
	return &healthService{
		version:   version,
		store:     store,
		upstreams: upstreams,
		startedAt: time.Now(),
	}
}

// GetStatus never fails the probe on a cache error; it reports it instead.
func (s *healthService) GetStatus(ctx context.Context) (health.Record, error) {
	record := health.Record{
		Status:    health.StatusOk,
		Version:   s.version,
		StartedAt: s.startedAt.Format(time.RFC3339),
		Uptime:    strings.TrimSpace(humanize.RelTime(s.startedAt, time.Now(), "", "")),
		Upstreams: s.upstreams,
	}

	stats, err := s.store.Stats(ctx)
	if err != nil {
		logrus.WithError(err).Error("[Health] failed to read cache stats")
		record.Status = health.StatusError
		record.Message = err.Error()
		return record, nil
	}
	record.Cache = stats
	return record, nil
}
