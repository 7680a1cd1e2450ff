package cache

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

// Redis backs the cache with a shared redis instance so multiple API
// replicas can reuse each other's results.
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedis wraps an existing redis client. Entries expire after ttl.
func NewRedis(rdb *redis.Client, ttl time.Duration) *Redis {
	return &Redis{rdb: rdb, ttl: ttl}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
	data, err := r.rdb.Get(ctx, "cache:"+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Redis cache get failed: %v", err)
		}
		return nil, false
	}
	return data, true
}

func (r *Redis) Set(ctx context.Context, key string, value []byte) {
	if err := r.rdb.Set(ctx, "cache:"+key, value, r.ttl).Err(); err != nil {
		log.Printf("Redis cache set failed: %v", err)
	}
}
