package service

import (
	"context"

	"github.com/pantrychef/backend/internal/models"
	"github.com/pantrychef/backend/internal/types"
)

// RecipeProvider is one external source of generated recipes. Providers are
// tried in order; the first complete result wins.
type RecipeProvider interface {
	Name() string
	Generate(ctx context.Context, req *types.SuggestionRequest) (*types.GeneratedRecipe, error)
}

// RecipeCache stores suggestion results keyed by the normalized input tuple.
// Get returns (nil, nil) on a miss.
type RecipeCache interface {
	Get(ctx context.Context, key string) (*types.GeneratedRecipe, error)
	Set(ctx context.Context, key string, recipe *types.GeneratedRecipe) error
}

// ImageGenerator produces an image URL for a finished recipe.
type ImageGenerator interface {
	GenerateRecipeImage(ctx context.Context, title, cuisine string) (string, error)
}

// SubstituteGenerator suggests replacements for a pantry ingredient.
type SubstituteGenerator interface {
	GenerateSubstitutes(ctx context.Context, ingredient string) ([]models.Substitute, error)
}
