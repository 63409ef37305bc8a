package config

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

// ConnectRedis wires the shared client. Unreachable Redis is not fatal:
// the comparison store falls back to process memory and the rate limiter
// passes requests through, so the storefront keeps serving.
func ConnectRedis() {
	// read Redis URL
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		// Default to local Redis for development
		redisURL = "redis://localhost:6379"
		log.Println("⚠️  REDIS_URL not set, using local Redis:", redisURL)
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("❌ invalid REDIS_URL, continuing without Redis: %v", err)
		return
	}

	client := redis.NewClient(opt)

	// test connection
	res, err := client.Ping(Ctx).Result()
	if err != nil {
		log.Printf("⚠️  failed to connect to Redis, continuing without it: %v", err)
		return
	}

	RedisClient = client
	fmt.Println("✅ Connected to Redis:", res)
}
