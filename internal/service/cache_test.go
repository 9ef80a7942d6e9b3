package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrychef/backend/internal/service"
)

func TestRecipeCacheMissReturnsNil(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := service.NewRedisRecipeCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Hour)

	got, err := cache.Get(context.Background(), "nothing-here")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRecipeCacheRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := service.NewRedisRecipeCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Hour)
	ctx := context.Background()

	recipe := completeRecipe("Cached Dish")
	require.NoError(t, cache.Set(ctx, "rice-2-regular-any", recipe))

	got, err := cache.Get(ctx, "rice-2-regular-any")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, recipe.Title, got.Title)
	assert.Equal(t, recipe.Ingredients, got.Ingredients)
}

func TestRecipeCacheEntryExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := service.NewRedisRecipeCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Hour)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "rice-2-regular-any", completeRecipe("Cached Dish")))

	mr.FastForward(time.Hour + time.Minute)

	got, err := cache.Get(ctx, "rice-2-regular-any")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestRecipeCacheCorruptEntry(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := service.NewRedisRecipeCache(redis.NewClient(&redis.Options{Addr: mr.Addr()}), time.Hour)

	require.NoError(t, mr.Set("recipe:suggest:bad", "not json"))

	_, err := cache.Get(context.Background(), "bad")
	assert.Error(t, err)
}
