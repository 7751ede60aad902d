package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/hankosign/hankosign/internal/config"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache is a thin JSON layer over redis. A nil *Cache is safe to use and
// behaves as a miss, the app keeps working when redis is not configured.
type Cache struct {
	client *redis.Client
	logger *zap.SugaredLogger
}

var ErrCacheMiss = errors.New("cache: key not found")

func NewCache(cfg config.RedisConfig, logger *zap.SugaredLogger) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.ADDR,
		Password: cfg.PASSWORD,
		DB:       cfg.DB,
	})

	return &Cache{client: client, logger: logger}
}

func (c *Cache) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

func (c *Cache) GetJSON(ctx context.Context, key string, dest any) error {
	if c == nil {
		return ErrCacheMiss
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return err
	}

	return json.Unmarshal(raw, dest)
}

func (c *Cache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	if c == nil {
		return nil
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, raw, ttl).Err()
}

func (c *Cache) Delete(ctx context.Context, keys ...string) error {
	if c == nil || len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
