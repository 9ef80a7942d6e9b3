package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pantrychef/backend/config"
	"github.com/pantrychef/backend/internal/errs"
	"github.com/pantrychef/backend/internal/types"
)

// SpoonacularClient is the secondary recipe provider: a structured recipe
// search API queried by ingredient list and diet.
type SpoonacularClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewSpoonacularClient(cfg *config.Config) *SpoonacularClient {
	return &SpoonacularClient{
		apiKey:  cfg.SpoonacularAPIKey,
		baseURL: cfg.SpoonacularAPIURL,
		client:  &http.Client{Timeout: cfg.ProviderTimeout},
	}
}

func (c *SpoonacularClient) Name() string {
	return "spoonacular"
}

// searchResult is the subset of the complexSearch response we read.
type searchResult struct {
	Results []struct {
		Title               string   `json:"title"`
		Servings            int      `json:"servings"`
		Image               string   `json:"image"`
		Cuisines            []string `json:"cuisines"`
		PreparationMinutes  int      `json:"preparationMinutes"`
		CookingMinutes      int      `json:"cookingMinutes"`
		ReadyInMinutes      int      `json:"readyInMinutes"`
		ExtendedIngredients []struct {
			Amount float64 `json:"amount"`
			Unit   string  `json:"unit"`
			Name   string  `json:"name"`
		} `json:"extendedIngredients"`
		AnalyzedInstructions []struct {
			Steps []struct {
				Step string `json:"step"`
			} `json:"steps"`
		} `json:"analyzedInstructions"`
		Nutrition struct {
			Nutrients []nutrient `json:"nutrients"`
		} `json:"nutrition"`
	} `json:"results"`
}

type nutrient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Generate searches for one recipe matching the ingredients and diet and
// normalizes it. An empty result set is a provider failure so the chain can
// fall through to the static template.
func (c *SpoonacularClient) Generate(ctx context.Context, req *types.SuggestionRequest) (*types.GeneratedRecipe, error) {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("includeIngredients", strings.Join(req.Ingredients, ","))
	if req.DietType != "" && req.DietType != "regular" {
		params.Set("diet", req.DietType)
	}
	params.Set("addRecipeInformation", "true")
	params.Set("fillIngredients", "true")
	params.Set("number", "1")
	params.Set("instructionsRequired", "true")

	body, err := c.get(ctx, "/recipes/complexSearch", params)
	if err != nil {
		return nil, err
	}

	var result searchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errs.Upstream(c.Name(), fmt.Errorf("failed to decode response: %w", err))
	}
	if len(result.Results) == 0 {
		return nil, errs.Upstream(c.Name(), fmt.Errorf("no matching recipes"))
	}

	found := result.Results[0]

	recipe := &types.GeneratedRecipe{
		Title:       found.Title,
		Servings:    found.Servings,
		DietType:    req.DietType,
		CuisineType: "Various",
		Image:       found.Image,
	}
	if recipe.Servings == 0 {
		recipe.Servings = req.Servings
	}
	if len(found.Cuisines) > 0 {
		recipe.CuisineType = found.Cuisines[0]
	}

	for _, ing := range found.ExtendedIngredients {
		line := strings.TrimSpace(fmt.Sprintf("%s %s %s",
			strconv.FormatFloat(ing.Amount, 'f', -1, 64), ing.Unit, ing.Name))
		recipe.Ingredients = append(recipe.Ingredients, strings.Join(strings.Fields(line), " "))
	}

	// Instruction steps are taken verbatim; each gets a default 5-minute
	// timer since the search API does not report per-step durations.
	if len(found.AnalyzedInstructions) > 0 {
		for i, step := range found.AnalyzedInstructions[0].Steps {
			recipe.Instructions = append(recipe.Instructions, step.Step)
			recipe.CookingTimers = append(recipe.CookingTimers, types.CookingTimer{
				Step:        i,
				Duration:    5,
				Description: step.Step,
			})
		}
	}
	if recipe.CookingTimers == nil {
		recipe.CookingTimers = []types.CookingTimer{}
	}

	recipe.TotalTime = &types.TotalTime{
		Prep:  valueOr(found.PreparationMinutes, 10),
		Cook:  valueOr(found.CookingMinutes, 20),
		Total: valueOr(found.ReadyInMinutes, 30),
	}

	recipe.NutritionalInfo = types.NutritionalInfo{
		PerServing: types.NutritionPerServing{
			Calories: nutrientByName(found.Nutrition.Nutrients, "Calories", ""),
			Protein:  nutrientByName(found.Nutrition.Nutrients, "Protein", "g"),
			Carbs:    nutrientByName(found.Nutrition.Nutrients, "Carbohydrates", "g"),
			Fat:      nutrientByName(found.Nutrition.Nutrients, "Fat", "g"),
		},
	}

	return recipe, nil
}

// Search proxies the structured search endpoint for the recipe-search API.
func (c *SpoonacularClient) Search(ctx context.Context, query string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("query", query)
	params.Set("addRecipeInformation", "true")
	params.Set("fillIngredients", "true")

	body, err := c.get(ctx, "/recipes/complexSearch", params)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

func (c *SpoonacularClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, errs.Upstream(c.Name(), err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errs.Upstream(c.Name(), fmt.Errorf("failed to read response: %w", err))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errs.Upstream(c.Name(), fmt.Errorf("status %d: %s", resp.StatusCode, string(body)))
	}

	return body, nil
}

func nutrientByName(nutrients []nutrient, name, suffix string) types.FlexString {
	for _, n := range nutrients {
		if n.Name == name {
			return types.FlexString(strconv.FormatFloat(n.Amount, 'f', -1, 64) + suffix)
		}
	}
	return "N/A"
}

func valueOr(v, fallback int) int {
	if v > 0 {
		return v
	}
	return fallback
}
