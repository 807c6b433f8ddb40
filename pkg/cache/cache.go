// Package cache stores registry responses between runs.
//
// Caching is opt-in: the default backend is [NullCache], which keeps a run
// free of side effects beyond its output file. [FileCache] keeps entries
// under the user cache directory and [RedisCache] shares them through a
// Redis server.
//
// Use [Open] to pick a backend from the configuration value:
//
//	c, err := cache.Open(ctx, "file", dir)          // ~/.cache/depviz
//	c, err := cache.Open(ctx, "redis://localhost:6379/0", "")
package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Backend names accepted by Open.
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
)

// ErrUnknownBackend is returned by Open for an unrecognized backend string.
var ErrUnknownBackend = errors.New("unknown cache backend")

// Cache is a byte-oriented key/value store with per-entry TTL.
// A miss is reported as (nil, false, nil), never as an error.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// HTTPKey builds the key under which a registry response is stored.
func HTTPKey(namespace, key string) string {
	return "http:" + namespace + ":" + key
}

// Open returns the cache described by backend. An empty string or "none" disables
// caching; "file" stores entries in dir; a redis:// or rediss:// URL
// connects to Redis.
func Open(ctx context.Context, backend, dir string) (Cache, error) {
	switch {
	case backend == "" || backend == BackendNone:
		return NewNullCache(), nil
	case backend == BackendFile:
		if dir == "" {
			return nil, fmt.Errorf("%w: file cache needs a directory", ErrUnknownBackend)
		}
		return NewFileCache(dir)
	case strings.HasPrefix(backend, "redis://"), strings.HasPrefix(backend, "rediss://"):
		return NewRedisCache(ctx, backend)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// NullCache never stores anything. It is the default backend.
type NullCache struct{}

// NewNullCache creates a null cache.
func NewNullCache() Cache {
	return NullCache{}
}

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }

var _ Cache = NullCache{}
