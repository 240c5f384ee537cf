package repository

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jellydator/ttlcache/v3"

	domainCache "github.com/AzielCF/az-citydata/domains/cache"
)

// MemoryCacheStore is the in-process implementation of domainCache.Store.
// It is bounded: once capacity is reached the least recently used entry is evicted.
// Reads do not extend the life of an entry; only Set does.
type MemoryCacheStore struct {
	items    *ttlcache.Cache[string, domainCache.Entry]
	ttl      time.Duration
	capacity int
}

// NewMemoryCacheStore creates the store and starts its expiry loop. Call Close to stop it.
func NewMemoryCacheStore(ttl time.Duration, capacity int) *MemoryCacheStore {
	opts := []ttlcache.Option[string, domainCache.Entry]{
		ttlcache.WithTTL[string, domainCache.Entry](ttl),
		ttlcache.WithDisableTouchOnHit[string, domainCache.Entry](),
	}
	if capacity > 0 {
		opts = append(opts, ttlcache.WithCapacity[string, domainCache.Entry](uint64(capacity)))
	}

	store := &MemoryCacheStore{
		items:    ttlcache.New[string, domainCache.Entry](opts...),
		ttl:      ttl,
		capacity: capacity,
	}
	go store.items.Start()
	return store
}

func (s *MemoryCacheStore) Get(ctx context.Context, key string) (*domainCache.Entry, error) {
	item := s.items.Get(key)
	if item == nil || item.IsExpired() {
		return nil, nil
	}
	entry := item.Value()
	return &entry, nil
}

func (s *MemoryCacheStore) Set(ctx context.Context, key string, entry domainCache.Entry, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = s.ttl
	}
	s.items.Set(key, entry, ttl)
	return nil
}

func (s *MemoryCacheStore) Stats(ctx context.Context) (domainCache.Stats, error) {
	var size uint64
	entries := 0
	for _, item := range s.items.Items() {
		if item.IsExpired() {
			continue
		}
		entries++
		size += uint64(len(item.Value().Payload))
	}

	return domainCache.Stats{
		Backend:   "memory",
		Entries:   entries,
		Capacity:  s.capacity,
		TTL:       s.ttl.String(),
		HumanSize: humanize.Bytes(size),
	}, nil
}

// Close stops the background expiry loop.
func (s *MemoryCacheStore) Close() {
	s.items.Stop()
}
