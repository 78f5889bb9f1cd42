package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/travelagent/config"
	"github.com/Domenick1991/travelagent/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client     *redis.Client
	resultsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, resultsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		resultsTTL: resultsTTL,
	}
}

func (c *RedisCache) GetResults(ctx context.Context, key string) (*domain.SearchResults, error) {
	data, err := c.client.Get(ctx, resultsKey(key)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var results domain.SearchResults
	if err := json.Unmarshal(data, &results); err != nil {
		return nil, err
	}
	return &results, nil
}

func (c *RedisCache) SetResults(ctx context.Context, key string, results domain.SearchResults) error {
	payload, err := json.Marshal(results)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, resultsKey(key), payload, c.resultsTTL).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func resultsKey(key string) string {
	return fmt.Sprintf("cache:results:%s", key)
}
