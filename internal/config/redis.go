package config

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns a redis client, or nil when addr is empty or the server
// is unreachable. Callers fall back to uncached behavior on nil.
func ConnectRedis(addr string) *redis.Client {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable at %s, search cache disabled: %v", addr, err)
		_ = client.Close()
		return nil
	}

	log.Println("connected to redis")
	return client
}
