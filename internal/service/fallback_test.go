package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrychef/backend/internal/service"
	"github.com/pantrychef/backend/internal/types"
)

func TestStaticProviderCannedCuisines(t *testing.T) {
	provider := service.NewStaticProvider()

	asian, err := provider.Generate(context.Background(), &types.SuggestionRequest{
		Ingredients: []string{"rice"},
		Servings:    3,
		DietType:    "regular",
		CuisineType: "Asian",
	})
	require.NoError(t, err)
	assert.Equal(t, "Simple Asian Stir Fry", asian.Title)
	assert.Equal(t, 3, asian.Servings)
	assert.True(t, asian.Complete())

	mexican, err := provider.Generate(context.Background(), &types.SuggestionRequest{
		Ingredients: []string{"beans"},
		Servings:    2,
		DietType:    "vegan",
		CuisineType: "Mexican",
	})
	require.NoError(t, err)
	assert.Equal(t, "Basic Mexican Bowl", mexican.Title)
	assert.Equal(t, "vegan", mexican.DietType)
	assert.True(t, mexican.Complete())
}

func TestStaticProviderTemplate(t *testing.T) {
	provider := service.NewStaticProvider()

	got, err := provider.Generate(context.Background(), &types.SuggestionRequest{
		Ingredients: []string{"chicken", "broccoli"},
		Servings:    2,
		DietType:    "keto",
		CuisineType: "Any",
	})
	require.NoError(t, err)

	assert.Equal(t, "Simple keto Recipe", got.Title)
	assert.Equal(t, []string{"1 portion chicken", "1 portion broccoli"}, got.Ingredients)
	assert.NotEmpty(t, got.Instructions)
	assert.Equal(t, &types.TotalTime{Prep: 5, Cook: 15, Total: 20}, got.TotalTime)
	assert.Equal(t, types.FlexString("N/A"), got.NutritionalInfo.PerServing.Calories)
	assert.True(t, got.Complete())
}

func TestStaticProviderTitleIncludesCuisine(t *testing.T) {
	provider := service.NewStaticProvider()

	got, err := provider.Generate(context.Background(), &types.SuggestionRequest{
		Ingredients: []string{"lentils"},
		Servings:    2,
		DietType:    "vegan",
		CuisineType: "Indian",
	})
	require.NoError(t, err)
	assert.Equal(t, "Simple vegan Indian Recipe", got.Title)
}
