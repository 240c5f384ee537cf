package fallback

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainCache "github.com/AzielCF/az-citydata/domains/cache"
)

type mapStore struct {
	mu      sync.Mutex
	entries map[string]domainCache.Entry
	getErr  error
	setErr  error
	sets    int
}

func newMapStore() *mapStore {
	return &mapStore{entries: map[string]domainCache.Entry{}}
}

func (s *mapStore) Get(_ context.Context, key string) (*domainCache.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	entry, ok := s.entries[key]
	if !ok {
		return nil, nil
	}
	return &entry, nil
}

func (s *mapStore) Set(_ context.Context, key string, entry domainCache.Entry, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sets++
	if s.setErr != nil {
		return s.setErr
	}
	s.entries[key] = entry
	return nil
}

func (s *mapStore) Stats(context.Context) (domainCache.Stats, error) {
	return domainCache.Stats{Backend: "map", Entries: len(s.entries)}, nil
}

type reading struct {
	Temperature float64 `json:"temperature"`
	Cached      bool    `json:"cached"`
}

var errUpstream = errors.New("request failed with status code 503")

func succeed(v reading) Call[reading] {
	return func(context.Context) (reading, error) { return v, nil }
}

func fail(context.Context) (reading, error) { return reading{}, errUpstream }

func defaults() reading { return reading{Temperature: 25, Cached: true} }

func TestFetch_FreshStoresPayload(t *testing.T) {
	store := newMapStore()
	f := NewFetcher[reading]("weather", store, time.Minute)

	res := f.Fetch(context.Background(), "weather_Delhi", succeed(reading{Temperature: 26.85}), defaults)

	assert.Equal(t, SourceFresh, res.Source)
	assert.False(t, res.Cached())
	assert.NoError(t, res.Err)
	assert.InDelta(t, 26.85, res.Payload.Temperature, 1e-9)
	assert.Contains(t, store.entries, "weather_Delhi")
}

func TestFetch_StaleAfterFailure(t *testing.T) {
	store := newMapStore()
	f := NewFetcher[reading]("weather", store, time.Minute)
	ctx := context.Background()

	first := f.Fetch(ctx, "weather_Delhi", succeed(reading{Temperature: 26.85}), defaults)
	require.Equal(t, SourceFresh, first.Source)

	second := f.Fetch(ctx, "weather_Delhi", fail, defaults)
	assert.Equal(t, SourceStale, second.Source)
	assert.True(t, second.Cached())
	assert.ErrorIs(t, second.Err, errUpstream)
	assert.InDelta(t, 26.85, second.Payload.Temperature, 1e-9)
	assert.Equal(t, first.StoredAt.UnixNano(), second.StoredAt.UnixNano())
}

func TestFetch_DefaultsWhenNothingCached(t *testing.T) {
	f := NewFetcher[reading]("weather", newMapStore(), time.Minute)

	res := f.Fetch(context.Background(), "weather_Atlantis", fail, defaults)

	assert.Equal(t, SourceDefault, res.Source)
	assert.True(t, res.Cached())
	assert.Equal(t, defaults(), res.Payload)
}

func TestFetch_KeysAreIndependent(t *testing.T) {
	f := NewFetcher[reading]("weather", newMapStore(), time.Minute)
	ctx := context.Background()

	f.Fetch(ctx, "weather_Delhi", succeed(reading{Temperature: 30}), defaults)
	res := f.Fetch(ctx, "weather_Mumbai", fail, defaults)

	assert.Equal(t, SourceDefault, res.Source)
}

func TestFetch_FailureNeverOverwritesCache(t *testing.T) {
	store := newMapStore()
	f := NewFetcher[reading]("weather", store, time.Minute)
	ctx := context.Background()

	f.Fetch(ctx, "weather_Delhi", succeed(reading{Temperature: 30}), defaults)
	f.Fetch(ctx, "weather_Delhi", fail, defaults)
	f.Fetch(ctx, "weather_Delhi", fail, defaults)

	assert.Equal(t, 1, store.sets)
	res := f.Fetch(ctx, "weather_Delhi", fail, defaults)
	assert.InDelta(t, 30.0, res.Payload.Temperature, 1e-9)
}

func TestFetch_LatestSuccessWins(t *testing.T) {
	f := NewFetcher[reading]("weather", newMapStore(), time.Minute)
	ctx := context.Background()

	f.Fetch(ctx, "weather_Delhi", succeed(reading{Temperature: 20}), defaults)
	f.Fetch(ctx, "weather_Delhi", succeed(reading{Temperature: 22}), defaults)
	res := f.Fetch(ctx, "weather_Delhi", fail, defaults)

	assert.InDelta(t, 22.0, res.Payload.Temperature, 1e-9)
}

func TestFetch_CacheWriteFailureStillFresh(t *testing.T) {
	store := newMapStore()
	store.setErr = errors.New("store unavailable")
	f := NewFetcher[reading]("weather", store, time.Minute)

	res := f.Fetch(context.Background(), "weather_Delhi", succeed(reading{Temperature: 30}), defaults)

	assert.Equal(t, SourceFresh, res.Source)
	assert.NoError(t, res.Err)
}

func TestFetch_CacheReadFailureServesDefaults(t *testing.T) {
	store := newMapStore()
	store.getErr = errors.New("store unavailable")
	f := NewFetcher[reading]("weather", store, time.Minute)

	res := f.Fetch(context.Background(), "weather_Delhi", fail, defaults)

	assert.Equal(t, SourceDefault, res.Source)
}

func TestLookup_DiscardsUndecodableEntry(t *testing.T) {
	store := newMapStore()
	store.entries["weather_Delhi"] = domainCache.Entry{Payload: []byte("{not json"), StoredAt: time.Now()}
	f := NewFetcher[reading]("weather", store, time.Minute)

	_, _, ok := f.Lookup(context.Background(), "weather_Delhi")
	assert.False(t, ok)
}

func TestFetch_SingleAttemptPerCall(t *testing.T) {
	f := NewFetcher[reading]("weather", newMapStore(), time.Minute)
	calls := 0

	f.Fetch(context.Background(), "weather_Delhi", func(context.Context) (reading, error) {
		calls++
		return reading{}, errUpstream
	}, defaults)

	assert.Equal(t, 1, calls)
}

func TestFetch_UsesInjectedClock(t *testing.T) {
	f := NewFetcher[reading]("weather", newMapStore(), time.Minute)
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	f.now = func() time.Time { return fixed }

	res := f.Fetch(context.Background(), "weather_Delhi", succeed(reading{Temperature: 30}), defaults)
	assert.Equal(t, fixed, res.StoredAt)

	stale := f.Fetch(context.Background(), "weather_Delhi", fail, defaults)
	assert.True(t, fixed.Equal(stale.StoredAt))
}
