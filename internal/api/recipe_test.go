package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrychef/backend/internal/types"
)

const llmRecipeJSON = `{
	"title": "Chicken Fried Rice",
	"servings": 2,
	"cuisine_type": "Asian",
	"ingredients": ["2 cups rice", "200g chicken"],
	"instructions": ["Cook rice", "Fry chicken", "Combine"]
}`

func TestSuggestEndpoint(t *testing.T) {
	env := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(chatCompletion(llmRecipeJSON))
	}, nil)

	token := env.registerUser(t, "cook@example.com", nil)

	w := env.do(t, http.MethodPost, "/api/v1/recipes/suggest", token, map[string]interface{}{
		"ingredients": []string{"chicken", "rice"},
		"servings":    2,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var recipe types.GeneratedRecipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipe))
	assert.Equal(t, "Chicken Fried Rice", recipe.Title)
	assert.True(t, recipe.Complete())
}

func TestSuggestRequiresAuth(t *testing.T) {
	env := setupTestServer(t, nil, nil)

	w := env.do(t, http.MethodPost, "/api/v1/recipes/suggest", "", map[string]interface{}{
		"ingredients": []string{"rice"},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSuggestMergesStoredPreferences(t *testing.T) {
	var prompt string
	env := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		_ = json.Unmarshal(body, &req)
		for _, m := range req.Messages {
			if m.Role == "user" {
				prompt = m.Content
			}
		}
		_, _ = w.Write(chatCompletion(llmRecipeJSON))
	}, nil)

	token := env.registerUser(t, "vegan@example.com", map[string]interface{}{
		"diet_type":    "vegan",
		"serving_size": 4,
		"allergies":    []string{"peanuts"},
	})

	w := env.do(t, http.MethodPost, "/api/v1/recipes/suggest", token, map[string]interface{}{
		"ingredients": []string{"tofu"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	assert.Contains(t, prompt, "vegan")
	assert.Contains(t, prompt, "peanuts")
	assert.Contains(t, prompt, "4 servings")
}

func TestSuggestFallsBackWhenProvidersFail(t *testing.T) {
	// Both upstream providers fail; the template provider still answers.
	env := setupTestServer(t, nil, nil)
	token := env.registerUser(t, "cook@example.com", nil)

	w := env.do(t, http.MethodPost, "/api/v1/recipes/suggest", token, map[string]interface{}{
		"ingredients": []string{"chicken", "broccoli"},
		"servings":    2,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var recipe types.GeneratedRecipe
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &recipe))
	assert.True(t, recipe.Complete())
	assert.True(t, strings.HasPrefix(recipe.Title, "Simple "), recipe.Title)
}

func TestSuggestRejectsNegativeServings(t *testing.T) {
	env := setupTestServer(t, nil, nil)
	token := env.registerUser(t, "cook@example.com", nil)

	w := env.do(t, http.MethodPost, "/api/v1/recipes/suggest", token, map[string]interface{}{
		"ingredients": []string{"rice"},
		"servings":    -2,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchEndpoint(t *testing.T) {
	env := setupTestServer(t, nil, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pasta", r.URL.Query().Get("query"))
		_, _ = w.Write([]byte(`{"results":[{"title":"Pasta"}],"totalResults":1}`))
	})
	token := env.registerUser(t, "cook@example.com", nil)

	w := env.do(t, http.MethodGet, "/api/v1/recipes/search?query=pasta", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"results":[{"title":"Pasta"}],"totalResults":1}`, w.Body.String())
}

func TestSearchEndpointRequiresQuery(t *testing.T) {
	env := setupTestServer(t, nil, nil)
	token := env.registerUser(t, "cook@example.com", nil)

	w := env.do(t, http.MethodGet, "/api/v1/recipes/search", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSearchEndpointUpstreamFailure(t *testing.T) {
	env := setupTestServer(t, nil, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	})
	token := env.registerUser(t, "cook@example.com", nil)

	w := env.do(t, http.MethodGet, "/api/v1/recipes/search?query=pasta", token, nil)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
