package utils

import (
	"context"
	"log"
	"time"

	"evently/config"

	"github.com/go-redis/redis/v8"
)

// CacheClient is the Redis client backing schedule-view caching.
var CacheClient *redis.Client

// InitCache initializes the Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// ScheduleCacheKey builds the cache key for a composed daily schedule view.
// An empty staffID addresses the aggregate (all-staff) view for the date.
func ScheduleCacheKey(date, staffID string) string {
	return "schedule:" + date + ":" + staffID
}

// GetCacheClient returns the cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}
