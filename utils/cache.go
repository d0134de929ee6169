// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"samvidhansetu/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient is the generic cache client.
	CacheClient *redis.Client
	// AuthCacheClient is the dedicated client for sessions and token hashes.
	AuthCacheClient *redis.Client
	// AIContextCacheClient holds per-user chat conversation context.
	AIContextCacheClient *redis.Client
)

// InitRedis initializes every Redis client the server uses.
func InitRedis() {
	InitCache()
	InitAuthCache()
	InitAIContextCache()
}

func newRedisClient(db int, label string) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (%s): %v", label, err)
	}
	return client
}

// InitCache initializes the generic Redis cache client.
func InitCache() {
	CacheClient = newRedisClient(config.AppConfig.RedisCacheDB, "Cache")
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// InitAuthCache initializes the Redis client for sessions and auth caching.
func InitAuthCache() {
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB, "Auth Cache")
}

// GetAuthCacheClient returns the Redis client for sessions and auth caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// InitAIContextCache initializes the Redis client for AI chat context.
func InitAIContextCache() {
	AIContextCacheClient = newRedisClient(config.AppConfig.RedisAIContextDB, "AI Context Cache")
}

// GetAIContextCacheClient returns the Redis client for AI chat context.
func GetAIContextCacheClient() *redis.Client {
	if AIContextCacheClient == nil {
		InitAIContextCache()
	}
	return AIContextCacheClient
}
