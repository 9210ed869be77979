package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Philip2024394/website-massage--sub024/models"

	"github.com/go-redis/redis/v8"
)

// ErrCacheMiss is returned when nothing is cached under a key.
var ErrCacheMiss = errors.New("provider pricing not cached")

// PricingCache holds resolved pricing and catalog per lookup id. Keys are the ids
// callers ask for, which may differ from the record's own id.
type PricingCache interface {
	GetPricing(ctx context.Context, key string) (*models.PricingView, error)
	SetPricing(ctx context.Context, key string, view models.PricingView) error
	DeletePricing(ctx context.Context, key string) error
}

type RedisPricingCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPricingCache(client *redis.Client, ttl time.Duration) PricingCache {
	return &RedisPricingCache{client: client, ttl: ttl}
}

const pricingKeyPrefix = "pricing:view:"

func pricingKey(key string) string {
	return fmt.Sprintf("%s%s", pricingKeyPrefix, key)
}

func (c *RedisPricingCache) GetPricing(ctx context.Context, key string) (*models.PricingView, error) {
	data, err := c.client.Get(ctx, pricingKey(key)).Bytes()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read cached pricing: %w", err)
	}
	var view models.PricingView
	if err := json.Unmarshal(data, &view); err != nil {
		// Undecodable entries count as absent; the next resolve overwrites them.
		return nil, ErrCacheMiss
	}
	return &view, nil
}

func (c *RedisPricingCache) SetPricing(ctx context.Context, key string, view models.PricingView) error {
	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("failed to marshal provider pricing: %w", err)
	}
	if err := c.client.Set(ctx, pricingKey(key), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache provider pricing: %w", err)
	}
	return nil
}

func (c *RedisPricingCache) DeletePricing(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, pricingKey(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete cached pricing: %w", err)
	}
	return nil
}
