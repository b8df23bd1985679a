// Package cache provides the injected TTL cache used for spreadsheet
// snapshots. Two implementations: an in-process memory cache for single
// instances and a Redis cache for multi-instance deployments. Callers treat
// a miss (ErrNotFound) as "go fetch upstream"; the cache is never the
// source of truth.
package cache

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound is returned on a cache miss or an expired entry.
	ErrNotFound = errors.New("key not found in cache")
	// ErrClosed is returned after Close.
	ErrClosed = errors.New("cache is closed")
)

// Cache is a byte-oriented key/value store with per-entry TTL.
type Cache interface {
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
	Close() error
}

// Options configures cache construction.
type Options struct {
	DefaultTTL      time.Duration
	CleanupInterval time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// DefaultOptions matches the upstream revalidation window of one hour.
func DefaultOptions() Options {
	return Options{
		DefaultTTL:      time.Hour,
		CleanupInterval: 5 * time.Minute,
	}
}
