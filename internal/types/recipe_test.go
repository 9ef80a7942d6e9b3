package types_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pantrychef/backend/internal/types"
)

func TestFlexStringUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected types.FlexString
	}{
		{"string value", `"8g"`, "8g"},
		{"integer value", `300`, "300"},
		{"float value", `12.5`, "12.5"},
		{"whole float value", `300.0`, "300"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s types.FlexString
			err := json.Unmarshal([]byte(tt.input), &s)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, s)
		})
	}
}

func TestFlexIntUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected types.FlexInt
	}{
		{"number", `4`, 4},
		{"numeric string", `"4"`, 4},
		{"string with suffix", `"4 servings"`, 4},
		{"non-numeric string", `"a few"`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var i types.FlexInt
			err := json.Unmarshal([]byte(tt.input), &i)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, i)
		})
	}
}

func TestSuggestionRequestCacheKey(t *testing.T) {
	a := &types.SuggestionRequest{
		Ingredients: []string{"Chicken", "  rice "},
		Servings:    2,
		DietType:    "Keto",
		CuisineType: "Asian",
	}
	b := &types.SuggestionRequest{
		Ingredients: []string{"chicken", "rice"},
		Servings:    2,
		DietType:    "keto",
		CuisineType: "asian",
	}

	assert.Equal(t, a.CacheKey(), b.CacheKey())
	assert.Equal(t, "chicken,rice-2-keto-asian", a.CacheKey())

	c := &types.SuggestionRequest{
		Ingredients: []string{"chicken", "rice"},
		Servings:    4,
		DietType:    "keto",
		CuisineType: "asian",
	}
	assert.NotEqual(t, a.CacheKey(), c.CacheKey())
}

func TestGeneratedRecipeComplete(t *testing.T) {
	recipe := &types.GeneratedRecipe{
		Title:        "Fried Rice",
		Ingredients:  []string{"2 cups rice"},
		Instructions: []string{"Cook the rice"},
	}
	assert.True(t, recipe.Complete())

	var nilRecipe *types.GeneratedRecipe
	assert.False(t, nilRecipe.Complete())
	assert.False(t, (&types.GeneratedRecipe{Title: "x"}).Complete())
	assert.False(t, (&types.GeneratedRecipe{
		Title:       "x",
		Ingredients: []string{"y"},
	}).Complete())
}
