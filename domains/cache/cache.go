package cache

import (
	"context"
	"time"
)

// Entry is the last successfully fetched payload for a key, JSON encoded,
// together with the moment it was captured.
type Entry struct {
	Payload  []byte    `json:"payload"`
	StoredAt time.Time `json:"stored_at"`
}

type Stats struct {
	Backend   string `json:"backend"`
	Entries   int    `json:"entries"`
	Capacity  int    `json:"capacity,omitempty"`
	TTL       string `json:"ttl"`
	HumanSize string `json:"human_size"`
}

// Store defines the contract for the fallback cache.
// Implementations can be in-memory (default) or distributed (Valkey).
// Entries are only ever removed by expiry or eviction.
type Store interface {
	// Get returns nil when the key is unknown or its entry has expired.
	Get(ctx context.Context, key string) (*Entry, error)

	// Set creates or refreshes the entry under key for ttl.
	Set(ctx context.Context, key string, entry Entry, ttl time.Duration) error

	Stats(ctx context.Context) (Stats, error)
}
