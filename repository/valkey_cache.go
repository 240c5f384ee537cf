package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	valkeylib "github.com/valkey-io/valkey-go"

	domainCache "github.com/AzielCF/az-citydata/domains/cache"
	"github.com/AzielCF/az-citydata/infrastructure/valkey"
)

// ValkeyCacheStore implements domainCache.Store using Valkey, so several
// processes can serve each other's stale data. Expiry is native (SET EX);
// capacity is left to the server's maxmemory policy.
type ValkeyCacheStore struct {
	client *valkey.Client
	prefix string
	ttl    time.Duration
}

// NewValkeyCacheStore creates a new ValkeyCacheStore instance.
func NewValkeyCacheStore(client *valkey.Client, ttl time.Duration) *ValkeyCacheStore {
	return &ValkeyCacheStore{
		client: client,
		prefix: client.Key("fallback") + ":",
		ttl:    ttl,
	}
}

func (s *ValkeyCacheStore) fullKey(key string) string {
	return s.prefix + key
}

func (s *ValkeyCacheStore) inner() valkeylib.Client {
	return s.client.Inner()
}

// Get retrieves an entry by key.
func (s *ValkeyCacheStore) Get(ctx context.Context, key string) (*domainCache.Entry, error) {
	cmd := s.inner().B().Get().Key(s.fullKey(key)).Build()

	data, err := s.inner().Do(ctx, cmd).AsBytes()
	if err != nil {
		if valkey.IsNil(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cache entry: %w", err)
	}

	var entry domainCache.Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cache entry: %w", err)
	}

	return &entry, nil
}

// Set stores an entry with the given TTL.
func (s *ValkeyCacheStore) Set(ctx context.Context, key string, entry domainCache.Entry, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = s.ttl
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal cache entry: %w", err)
	}

	cmd := s.inner().B().Set().
		Key(s.fullKey(key)).
		Value(string(data)).
		Ex(ttl).
		Build()

	if err := s.inner().Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("failed to save cache entry: %w", err)
	}
	return nil
}

// Stats scans the prefixed keyspace; intended for the health endpoint, not hot paths.
func (s *ValkeyCacheStore) Stats(ctx context.Context) (domainCache.Stats, error) {
	var keys []string
	var cursor uint64

	for {
		cmd := s.inner().B().Scan().Cursor(cursor).Match(s.prefix + "*").Count(100).Build()
		result, err := s.inner().Do(ctx, cmd).AsScanEntry()
		if err != nil {
			return domainCache.Stats{}, fmt.Errorf("failed to scan cache entries: %w", err)
		}

		keys = append(keys, result.Elements...)
		cursor = result.Cursor
		if cursor == 0 {
			break
		}
	}

	var size uint64
	for _, key := range keys {
		n, err := s.inner().Do(ctx, s.inner().B().Strlen().Key(key).Build()).AsInt64()
		if err != nil {
			logrus.Warnf("[ValkeyCacheStore] Failed to read size of %s: %v", key, err)
			continue
		}
		size += uint64(n)
	}

	return domainCache.Stats{
		Backend:   "valkey",
		Entries:   len(keys),
		TTL:       s.ttl.String(),
		HumanSize: humanize.Bytes(size),
	}, nil
}
