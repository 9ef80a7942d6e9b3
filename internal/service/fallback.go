package service

import (
	"context"
	"fmt"

	"github.com/pantrychef/backend/internal/types"
)

// StaticProvider is the terminal provider of the chain: a templated recipe
// built locally. It can always produce a result.
type StaticProvider struct{}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

func (*StaticProvider) Name() string {
	return "static"
}

// cannedRecipes holds ready-made templates for common cuisines.
var cannedRecipes = map[string]types.GeneratedRecipe{
	"Asian": {
		Title:       "Simple Asian Stir Fry",
		CuisineType: "Asian",
		Ingredients: []string{
			"2 cups rice",
			"3 tablespoons soy sauce",
			"1 tablespoon ginger, minced",
		},
		Instructions: []string{
			"Cook rice according to package instructions",
			"Heat oil in a wok",
			"Add ginger and stir-fry",
			"Add vegetables and cook until tender",
			"Add soy sauce and serve",
		},
	},
	"Mexican": {
		Title:       "Basic Mexican Bowl",
		CuisineType: "Mexican",
		Ingredients: []string{
			"4 tortillas",
			"2 cups black beans",
			"1 avocado",
		},
		Instructions: []string{
			"Warm the tortillas",
			"Heat the beans in a pan",
			"Slice the avocado",
			"Assemble the bowl and serve",
		},
	},
}

// Generate builds the static template for the requested diet and cuisine.
// This path never fails.
func (p *StaticProvider) Generate(ctx context.Context, req *types.SuggestionRequest) (*types.GeneratedRecipe, error) {
	if canned, ok := cannedRecipes[req.CuisineType]; ok {
		recipe := canned
		recipe.Servings = req.Servings
		recipe.DietType = req.DietType
		recipe.CookingTimers = defaultTimers()
		recipe.TotalTime = &types.TotalTime{Prep: 5, Cook: 15, Total: 20}
		recipe.NutritionalInfo = defaultNutrition()
		return &recipe, nil
	}

	title := fmt.Sprintf("Simple %s Recipe", req.DietType)
	if req.CuisineType != "" && req.CuisineType != "Any" {
		title = fmt.Sprintf("Simple %s %s Recipe", req.DietType, req.CuisineType)
	}

	ingredients := make([]string, 0, len(req.Ingredients))
	for _, ing := range req.Ingredients {
		ingredients = append(ingredients, "1 portion "+ing)
	}

	return &types.GeneratedRecipe{
		Title:       title,
		Servings:    req.Servings,
		DietType:    req.DietType,
		CuisineType: req.CuisineType,
		Ingredients: ingredients,
		Instructions: []string{
			"Prepare all ingredients",
			"Combine ingredients in a suitable pan or pot",
			"Cook until done to your preference",
			"Season to taste and serve",
		},
		CookingTimers:   defaultTimers(),
		TotalTime:       &types.TotalTime{Prep: 5, Cook: 15, Total: 20},
		NutritionalInfo: defaultNutrition(),
	}, nil
}

func defaultTimers() []types.CookingTimer {
	return []types.CookingTimer{
		{Step: 0, Duration: 5, Description: "Preparation"},
		{Step: 1, Duration: 15, Description: "Cooking"},
	}
}
