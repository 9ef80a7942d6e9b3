package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/pantrychef/backend/config"
	"github.com/pantrychef/backend/internal/errs"
	"github.com/pantrychef/backend/internal/models"
	"github.com/pantrychef/backend/internal/types"
)

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest represents a request to the chat completions API
type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []Message         `json:"messages"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
	Temperature    float64           `json:"temperature,omitempty"`
	MaxTokens      int               `json:"max_tokens,omitempty"`
}

// chatResponse is the subset of the completions response we read
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// llmRecipe is the shape we ask the model to produce. Flexible types absorb
// the model's habit of mixing numbers and strings.
type llmRecipe struct {
	Title           string               `json:"title"`
	Servings        types.FlexInt        `json:"servings"`
	DietType        string               `json:"diet_type"`
	CuisineType     string               `json:"cuisine_type"`
	Ingredients     []string             `json:"ingredients"`
	Instructions    []string             `json:"instructions"`
	CookingTimers   []types.CookingTimer `json:"cooking_timers"`
	TotalTime       *types.TotalTime     `json:"total_time"`
	NutritionalInfo *struct {
		PerServing types.NutritionPerServing `json:"per_serving"`
	} `json:"nutritional_info"`
}

// LLMClient is the primary recipe provider: a language-model chat
// completions API asked for a JSON-shaped recipe.
type LLMClient struct {
	apiKey string
	apiURL string
	model  string
	client *http.Client
}

// NewLLMClient creates the primary provider from configuration.
func NewLLMClient(cfg *config.Config) *LLMClient {
	return &LLMClient{
		apiKey: cfg.LLMAPIKey,
		apiURL: cfg.LLMAPIURL,
		model:  "deepseek-chat",
		client: &http.Client{Timeout: cfg.ProviderTimeout},
	}
}

func (c *LLMClient) Name() string {
	return "llm"
}

// Generate asks the model for a recipe matching the request and normalizes
// the reply. Parse failures and missing required fields count as provider
// failures so the chain can move on.
func (c *LLMClient) Generate(ctx context.Context, req *types.SuggestionRequest) (*types.GeneratedRecipe, error) {
	content, err := c.complete(ctx, recipeSystemPrompt, buildRecipePrompt(req))
	if err != nil {
		return nil, err
	}

	cleaned := extractJSON(content)

	var parsed llmRecipe
	if err := json.Unmarshal([]byte(cleaned), &parsed); err != nil {
		log.Printf("[LLMClient] failed to parse response: %v", err)
		return nil, errs.Upstream(c.Name(), fmt.Errorf("invalid recipe format: %w", err))
	}

	if parsed.Title == "" || len(parsed.Ingredients) == 0 || len(parsed.Instructions) == 0 {
		return nil, errs.Upstream(c.Name(), fmt.Errorf("missing required recipe fields"))
	}

	recipe := &types.GeneratedRecipe{
		Title:         parsed.Title,
		Servings:      int(parsed.Servings),
		DietType:      parsed.DietType,
		CuisineType:   parsed.CuisineType,
		Ingredients:   parsed.Ingredients,
		Instructions:  parsed.Instructions,
		CookingTimers: parsed.CookingTimers,
		TotalTime:     parsed.TotalTime,
	}
	if recipe.Servings == 0 {
		recipe.Servings = req.Servings
	}
	if recipe.DietType == "" {
		recipe.DietType = req.DietType
	}
	if recipe.CuisineType == "" {
		recipe.CuisineType = req.CuisineType
	}
	if recipe.CookingTimers == nil {
		recipe.CookingTimers = []types.CookingTimer{}
	}
	if recipe.TotalTime == nil {
		recipe.TotalTime = &types.TotalTime{Prep: 10, Cook: 20, Total: 30}
	}
	recipe.NutritionalInfo = defaultNutrition()
	if parsed.NutritionalInfo != nil {
		recipe.NutritionalInfo.PerServing = fillNutrition(parsed.NutritionalInfo.PerServing)
	}

	return recipe, nil
}

// GenerateSubstitutes asks the model for replacement suggestions for one
// pantry ingredient, including conversion ratios.
func (c *LLMClient) GenerateSubstitutes(ctx context.Context, ingredient string) ([]models.Substitute, error) {
	system := `You are a cooking expert. Respond only with JSON like {"substitutes":[{"name":"margarine","ratio":"1:1"}]}`
	prompt := fmt.Sprintf("Suggest 3 common substitutes for %s in cooking, including conversion ratios.", ingredient)

	content, err := c.complete(ctx, system, prompt)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Substitutes []models.Substitute `json:"substitutes"`
	}
	if err := json.Unmarshal([]byte(extractJSON(content)), &parsed); err != nil {
		return nil, errs.Upstream(c.Name(), fmt.Errorf("invalid substitutes format: %w", err))
	}

	return parsed.Substitutes, nil
}

const recipeSystemPrompt = `You are a professional chef. Respond ONLY with a JSON object, no markdown, no additional text, using this structure:
{
  "title": "Recipe Name",
  "servings": 2,
  "diet_type": "regular",
  "cuisine_type": "Any",
  "ingredients": ["2 cups rice", "1 tablespoon olive oil"],
  "instructions": ["Heat oil in pan for 2 minutes", "Cook rice for 20 minutes"],
  "cooking_timers": [{"step": 0, "duration": 2, "description": "Heat oil"}],
  "total_time": {"prep": 10, "cook": 20, "total": 30},
  "nutritional_info": {"per_serving": {"calories": "300", "protein": "8g", "carbs": "45g", "fat": "6g"}}
}`

func buildRecipePrompt(req *types.SuggestionRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Create a detailed %s recipe for %d servings using these ingredients: %s.\n",
		req.CuisineType, req.Servings, strings.Join(req.Ingredients, ", "))
	fmt.Fprintf(&b, "The recipe should be %s diet friendly.\n", req.DietType)
	if len(req.Allergies) > 0 {
		fmt.Fprintf(&b, "Strictly avoid these allergens: %s.\n", strings.Join(req.Allergies, ", "))
	}
	if len(req.Restrictions) > 0 {
		fmt.Fprintf(&b, "Respect these restrictions: %s.\n", strings.Join(req.Restrictions, ", "))
	}
	return b.String()
}

// complete performs one chat completions round trip.
func (c *LLMClient) complete(ctx context.Context, system, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		ResponseFormat: map[string]string{"type": "json_object"},
		Temperature:    0.9,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", errs.Upstream(c.Name(), err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errs.Upstream(c.Name(), fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", errs.Upstream(c.Name(), errs.ErrRateLimited)
	}
	if resp.StatusCode != http.StatusOK {
		return "", errs.Upstream(c.Name(), fmt.Errorf("status %d: %s", resp.StatusCode, string(body)))
	}

	var result chatResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", errs.Upstream(c.Name(), fmt.Errorf("failed to decode response: %w", err))
	}
	if len(result.Choices) == 0 {
		return "", errs.Upstream(c.Name(), fmt.Errorf("no response from API"))
	}

	return result.Choices[0].Message.Content, nil
}

// extractJSON strips markdown fencing and any leading/trailing non-JSON
// text around the first balanced-looking object.
func extractJSON(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	s = strings.TrimSpace(s)

	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end < start {
		return s
	}
	return s[start : end+1]
}

func defaultNutrition() types.NutritionalInfo {
	return types.NutritionalInfo{
		PerServing: types.NutritionPerServing{
			Calories: "N/A",
			Protein:  "N/A",
			Carbs:    "N/A",
			Fat:      "N/A",
		},
	}
}

func fillNutrition(per types.NutritionPerServing) types.NutritionPerServing {
	if per.Calories == "" {
		per.Calories = "N/A"
	}
	if per.Protein == "" {
		per.Protein = "N/A"
	}
	if per.Carbs == "" {
		per.Carbs = "N/A"
	}
	if per.Fat == "" {
		per.Fat = "N/A"
	}
	return per
}
