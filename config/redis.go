package config

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

const defaultRedisURL = "redis://localhost:6379"

var RedisClient *redis.Client

// ConnectRedis dials REDIS_URL and pings it within the query timeout.
func ConnectRedis(ctx context.Context) error {
	opt, err := redisOptions(os.Getenv("REDIS_URL"))
	if err != nil {
		return err
	}
	client := redis.NewClient(opt)

	pingCtx, cancel := WithParentTimeout(ctx)
	defer cancel()
	res, err := client.Ping(pingCtx).Result()
	if err != nil {
		_ = client.Close()
		return fmt.Errorf("failed to connect to Redis at %s: %w", opt.Addr, err)
	}

	RedisClient = client
	log.Println("✅ Connected to Redis:", res)
	return nil
}

func redisOptions(rawURL string) (*redis.Options, error) {
	if rawURL == "" {
		rawURL = defaultRedisURL
		log.Println("⚠️  REDIS_URL not set, using local Redis:", rawURL)
	}
	opt, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	return opt, nil
}

func CloseRedis() {
	if RedisClient == nil {
		return
	}
	if err := RedisClient.Close(); err != nil {
		log.Printf("⚠️ Redis close failed: %v", err)
		return
	}
	log.Println("✅ Redis connection closed")
}
