package redis

import (
	"context"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/exceptions"

	"github.com/redis/go-redis/v9"
)

type redisRepository struct {
	client *redis.Client
}

func NewRedisRepository(client *redis.Client) contracts.KeyValueStore {
	return &redisRepository{client: client}
}

func (r *redisRepository) Get(ctx context.Context, key string) (string, bool, error) {
	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	} else if err != nil {
		return "", false, exceptions.ErrStorageGet(err, key)
	}
	return data, true, nil
}

func (r *redisRepository) Set(ctx context.Context, key, value string) error {
	err := r.client.Set(ctx, key, value, 0).Err()
	if err != nil {
		return exceptions.ErrStorageSet(err, key)
	}
	return nil
}

func (r *redisRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		return exceptions.ErrStorageDelete(err, key)
	}
	return nil
}
