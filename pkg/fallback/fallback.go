// Package fallback wraps calls to unreliable upstreams so that callers always
// get a usable result: the fresh payload, the last good one, or a default.
package fallback

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	domainCache "github.com/AzielCF/az-citydata/domains/cache"
)

type Source string

const (
	SourceFresh   Source = "fresh"
	SourceStale   Source = "stale"
	SourceDefault Source = "default"
)

// Result is what every caller receives. Err holds the upstream failure that
// triggered a fallback and is informational only.
type Result[T any] struct {
	Payload  T
	Source   Source
	StoredAt time.Time
	Err      error
}

// Cached reports whether the payload was not fetched live by this call.
func (r Result[T]) Cached() bool {
	return r.Source != SourceFresh
}

// Call performs a single upstream attempt and reshapes the response into T.
type Call[T any] func(ctx context.Context) (T, error)

type Fetcher[T any] struct {
	name  string
	store domainCache.Store
	ttl   time.Duration
	now   func() time.Time
}

func NewFetcher[T any](name string, store domainCache.Store, ttl time.Duration) *Fetcher[T] {
	return &Fetcher[T]{
		name:  name,
		store: store,
		ttl:   ttl,
		now:   time.Now,
	}
}

// Fetch makes exactly one attempt. On success the payload is cached under key;
// on failure the decision between stale and default is made by Fallback.
func (f *Fetcher[T]) Fetch(ctx context.Context, key string, call Call[T], defaults func() T) Result[T] {
	payload, err := call(ctx)
	if err != nil {
		return f.Fallback(ctx, key, err, defaults)
	}
	return f.Fresh(ctx, key, payload)
}

// Fresh records a successful payload and returns it as a live result.
// A cache write failure does not affect the caller.
func (f *Fetcher[T]) Fresh(ctx context.Context, key string, payload T) Result[T] {
	storedAt := f.now()

	data, err := json.Marshal(payload)
	if err != nil {
		logrus.Errorf("[FALLBACK] %s: failed to encode %s: %v", f.name, key, err)
	} else if err := f.store.Set(ctx, key, domainCache.Entry{Payload: data, StoredAt: storedAt}, f.ttl); err != nil {
		logrus.Errorf("[FALLBACK] %s: failed to cache %s: %v", f.name, key, err)
	}

	return Result[T]{Payload: payload, Source: SourceFresh, StoredAt: storedAt}
}

// Fallback serves the last good payload for key, or defaults() when there is none.
func (f *Fetcher[T]) Fallback(ctx context.Context, key string, cause error, defaults func() T) Result[T] {
	if payload, storedAt, ok := f.Lookup(ctx, key); ok {
		logrus.Warnf("[FALLBACK] %s: serving stale %s captured %s: %v", f.name, key, storedAt.Format(time.RFC3339), cause)
		return Result[T]{Payload: payload, Source: SourceStale, StoredAt: storedAt, Err: cause}
	}

	logrus.Warnf("[FALLBACK] %s: no cached %s, serving defaults: %v", f.name, key, cause)
	return Result[T]{Payload: defaults(), Source: SourceDefault, StoredAt: f.now(), Err: cause}
}

// Lookup returns the cached payload for key if one is present and decodable.
func (f *Fetcher[T]) Lookup(ctx context.Context, key string) (T, time.Time, bool) {
	var payload T

	entry, err := f.store.Get(ctx, key)
	if err != nil {
		logrus.Errorf("[FALLBACK] %s: failed to read %s: %v", f.name, key, err)
		return payload, time.Time{}, false
	}
	if entry == nil {
		return payload, time.Time{}, false
	}
	if err := json.Unmarshal(entry.Payload, &payload); err != nil {
		logrus.Errorf("[FALLBACK] %s: discarding undecodable %s: %v", f.name, key, err)
		return payload, time.Time{}, false
	}
	return payload, entry.StoredAt, true
}
