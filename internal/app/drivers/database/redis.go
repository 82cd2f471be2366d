package database

import (
	"context"
	"log"
	"time"

	"mediconnect-service/internal/app/config"

	"github.com/redis/go-redis/v9"
)

func NewRedisClient(driverConfig *config.DriverConfig) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     driverConfig.Redis.Addr(),
		Password: driverConfig.Redis.Password,
		DB:       driverConfig.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Could not connect to Redis at %s: %v", driverConfig.Redis.Addr(), err)
	}
	return client
}
