package cache

import (
	"os"

	"github.com/redis/go-redis/v9"
)

// NewRedisFromEnv returns a Redis client for the snapshot cache, or nil when
// REDIS_ADDR is unset (caching is optional; the snapshot source works
// without it).
func NewRedisFromEnv() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}
	return redis.NewClient(&redis.Options{Addr: addr})
}
