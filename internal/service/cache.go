package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pantrychef/backend/internal/types"
)

const suggestionKeyPrefix = "recipe:suggest:"

// RedisRecipeCache caches suggestion results in Redis. The TTL handles
// scheduled removal at expiry.
type RedisRecipeCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRecipeCache(client *redis.Client, ttl time.Duration) *RedisRecipeCache {
	return &RedisRecipeCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached recipe for key, or (nil, nil) on a miss.
func (c *RedisRecipeCache) Get(ctx context.Context, key string) (*types.GeneratedRecipe, error) {
	data, err := c.client.Get(ctx, suggestionKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cached recipe: %w", err)
	}

	var recipe types.GeneratedRecipe
	if err := json.Unmarshal(data, &recipe); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached recipe: %w", err)
	}
	return &recipe, nil
}

// Set stores the recipe under key with the configured expiry.
func (c *RedisRecipeCache) Set(ctx context.Context, key string, recipe *types.GeneratedRecipe) error {
	data, err := json.Marshal(recipe)
	if err != nil {
		return fmt.Errorf("failed to marshal recipe: %w", err)
	}

	if err := c.client.Set(ctx, suggestionKeyPrefix+key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache recipe: %w", err)
	}
	return nil
}
