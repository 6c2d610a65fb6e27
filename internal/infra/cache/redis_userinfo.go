package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"ecom/internal/config"
	auth "ecom/internal/usecase/auth_usecase"

	"github.com/go-redis/redis/v8"
)

type RedisUserInfoCache struct {
	client *redis.Client
}

func NewRedisClient(cfg config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

func NewRedisUserInfoCache(client *redis.Client) *RedisUserInfoCache {
	return &RedisUserInfoCache{client: client}
}

func (c *RedisUserInfoCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// キーが無ければ ok=false
func (c *RedisUserInfoCache) Get(ctx context.Context, key string) (auth.OIDCUser, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return auth.OIDCUser{}, false, nil
	}
	if err != nil {
		return auth.OIDCUser{}, false, err
	}

	var u auth.OIDCUser
	if err := json.Unmarshal(data, &u); err != nil {
		return auth.OIDCUser{}, false, err
	}
	return u, true, nil
}

func (c *RedisUserInfoCache) Set(ctx context.Context, key string, u auth.OIDCUser, ttl time.Duration) error {
	data, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *RedisUserInfoCache) Close() error {
	return c.client.Close()
}
