// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"bookeasy/config"

	"github.com/go-redis/redis/v8"
)

var (
	// DedupClient tracks fulfillment state per checkout session id so a
	// redelivered webhook does not create a second event or email.
	DedupClient *redis.Client
)

// InitDedupCache initializes the Redis client backing webhook deduplication.
func InitDedupCache() {
	DedupClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDedupDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := DedupClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Dedup): %v", err)
	}
}

// GetDedupClient returns the deduplication Redis client.
func GetDedupClient() *redis.Client {
	if DedupClient == nil {
		InitDedupCache()
	}
	return DedupClient
}
