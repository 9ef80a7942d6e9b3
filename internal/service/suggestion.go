package service

import (
	"context"
	"fmt"
	"log"

	"github.com/pantrychef/backend/internal/errs"
	"github.com/pantrychef/backend/internal/types"
)

// defaultIngredient substitutes an empty ingredient list rather than
// failing the request.
const defaultIngredient = "rice"

// SuggestionService runs the generation pipeline: cache lookup, then the
// ordered provider chain with the first complete result short-circuiting.
// The static provider at the end means the public operation never surfaces
// an upstream failure.
type SuggestionService struct {
	providers []RecipeProvider
	cache     RecipeCache
	throttle  *Throttle
	images    ImageGenerator
}

// NewSuggestionService wires the pipeline. The throttle guards the first
// provider only; images may be nil.
func NewSuggestionService(providers []RecipeProvider, cache RecipeCache, throttle *Throttle, images ImageGenerator) *SuggestionService {
	return &SuggestionService{
		providers: providers,
		cache:     cache,
		throttle:  throttle,
		images:    images,
	}
}

// Suggest produces one generated recipe for the request. Only input
// validation can fail; every provider outcome degrades to the next link of
// the chain.
func (s *SuggestionService) Suggest(ctx context.Context, req *types.SuggestionRequest) (*types.GeneratedRecipe, error) {
	if req.Servings < 0 {
		return nil, errs.Validation("servings", "must be positive")
	}
	if req.Servings == 0 {
		req.Servings = 2
	}
	if len(req.Ingredients) == 0 {
		req.Ingredients = []string{defaultIngredient}
	}
	if req.DietType == "" {
		req.DietType = "regular"
	}
	if req.CuisineType == "" {
		req.CuisineType = "Any"
	}

	key := req.CacheKey()
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		if err != nil {
			log.Printf("[SuggestionService] cache lookup failed: %v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	for i, provider := range s.providers {
		if i == 0 && s.throttle != nil {
			s.throttle.Wait()
		}

		recipe, err := provider.Generate(ctx, req)
		if err != nil {
			log.Printf("[SuggestionService] provider %s failed: %v", provider.Name(), err)
			continue
		}
		if !recipe.Complete() {
			log.Printf("[SuggestionService] provider %s returned an incomplete recipe", provider.Name())
			continue
		}

		// Image generation and caching apply to primary results only; the
		// later links are already degraded paths.
		if i == 0 {
			s.attachImage(ctx, recipe)
			if s.cache != nil {
				if err := s.cache.Set(ctx, key, recipe); err != nil {
					log.Printf("[SuggestionService] failed to cache recipe: %v", err)
				}
			}
		}

		return recipe, nil
	}

	// The static provider never fails; reaching this is a defect.
	return nil, fmt.Errorf("no provider produced a recipe")
}

func (s *SuggestionService) attachImage(ctx context.Context, recipe *types.GeneratedRecipe) {
	if s.images == nil || recipe.Image != "" {
		return
	}

	url, err := s.images.GenerateRecipeImage(ctx, recipe.Title, recipe.CuisineType)
	if err != nil {
		log.Printf("[SuggestionService] image generation failed: %v", err)
		return
	}
	recipe.Image = url
}
