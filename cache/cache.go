// Package cache memoizes pipeline results by content-derived key.
//
// Caching is an optimization only: a nil cache is valid everywhere and must
// not change pipeline output, only latency and cost.
package cache

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"strings"
)

// Cache stores serialized pipeline results.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
}

// Key builds a stable hash over the semantically relevant parts of a
// request. Volatile fields like timestamps must never be included.
func Key(op string, parts ...string) string {
	sum := md5.Sum([]byte(op + ":" + strings.Join(parts, ":")))
	return hex.EncodeToString(sum[:])
}

// GetOrCompute returns the cached value for key, or runs compute and caches
// its result. Failed computations are never cached. The second return value
// reports whether the value came from the cache.
func GetOrCompute[T any](ctx context.Context, c Cache, key string, compute func() (T, error)) (T, bool, error) {
	var zero T
	if c != nil {
		if data, ok := c.Get(ctx, key); ok {
			var v T
			if err := json.Unmarshal(data, &v); err == nil {
				return v, true, nil
			}
			// Corrupt entry, fall through and recompute.
		}
	}

	v, err := compute()
	if err != nil {
		return zero, false, err
	}

	if c != nil {
		if data, err := json.Marshal(v); err == nil {
			c.Set(ctx, key, data)
		}
	}
	return v, false, nil
}
