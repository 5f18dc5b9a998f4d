package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"tidymate/config"
)

// DedupClient backs the notification dedup store. It is only created when
// REDIS_ADDR is configured; callers fall back to in-memory dedup otherwise.
var DedupClient *redis.Client

// InitDedupCache initializes the Redis client for notification deduplication.
func InitDedupCache() {
	DedupClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDedupDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := DedupClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Dedup): %v", err)
	}
}

// GetDedupClient returns the Redis client for notification deduplication.
func GetDedupClient() *redis.Client {
	if DedupClient == nil {
		InitDedupCache()
	}
	return DedupClient
}
