package redis

import (
	"context"
	"sync"
	"time"

	"mediconnect-service/internal/app/contracts"
	"mediconnect-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

type redisRepository struct {
	client *redis.Client
}

var (
	redisRepositoryInstance contracts.RedisRepository
	onceRedisRepository     sync.Once
)

func NewRedisRepository(client *redis.Client) contracts.RedisRepository {
	onceRedisRepository.Do(func() {
		redisRepositoryInstance = &redisRepository{client: client}
	})
	return redisRepositoryInstance
}

func (r *redisRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		return exceptions.ErrRedisDelete(err)
	}
	return nil
}

func (r *redisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = r.client.Set(ctx, key, jsonValue, exp).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

// Get returns the raw value for key, or an empty string when the key is
// absent. Callers distinguish a miss by the empty result, not by error.
func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	} else if err != nil {
		return "", exceptions.ErrRedisGet(err, key)
	}

	return data, nil
}
