package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/pantrychef/backend/config"
	"github.com/pantrychef/backend/internal/api"
	"github.com/pantrychef/backend/internal/router"
	"github.com/pantrychef/backend/internal/service"
	"github.com/pantrychef/backend/internal/testhelpers"
)

// testEnv is a fully assembled application backed by test doubles for every
// external dependency.
type testEnv struct {
	router *gin.Engine
	db     *gorm.DB
	auth   *service.AuthService
}

// setupTestServer assembles the full route tree. llmHandler and
// searchHandler fake the two upstream recipe providers; nil handlers make
// the corresponding provider fail.
func setupTestServer(t *testing.T, llmHandler, searchHandler http.HandlerFunc) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if llmHandler == nil {
		llmHandler = func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
	}
	if searchHandler == nil {
		searchHandler = func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"results": []}`))
		}
	}

	llmServer := httptest.NewServer(llmHandler)
	t.Cleanup(llmServer.Close)
	searchServer := httptest.NewServer(searchHandler)
	t.Cleanup(searchServer.Close)

	cfg := &config.Config{
		LLMAPIKey:         "test-key",
		LLMAPIURL:         llmServer.URL,
		SpoonacularAPIKey: "test-key",
		SpoonacularAPIURL: searchServer.URL,
		ProviderTimeout:   5 * time.Second,
	}

	db := testhelpers.SetupTestDB(t)
	redisClient := testhelpers.SetupTestRedis(t)

	llmClient := service.NewLLMClient(cfg)
	searchClient := service.NewSpoonacularClient(cfg)

	suggestionService := service.NewSuggestionService(
		[]service.RecipeProvider{llmClient, searchClient, service.NewStaticProvider()},
		service.NewRedisRecipeCache(redisClient, time.Hour),
		service.NewThrottleWithClock(0, time.Now, func(time.Duration) {}),
		nil,
	)

	authService := service.NewAuthService(db, "test-secret")
	ingredientService := service.NewIngredientService(db, llmClient)
	savedRecipeService := service.NewSavedRecipeService(db)

	engine := router.Setup(
		api.NewAuthHandler(authService),
		api.NewIngredientHandler(ingredientService, authService),
		api.NewRecipeHandler(suggestionService, searchClient, authService),
		api.NewSavedRecipeHandler(savedRecipeService, authService),
	)

	return &testEnv{router: engine, db: db, auth: authService}
}

// do sends a JSON request through the route tree.
func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// registerUser registers a user through the API and returns the bearer token.
func (e *testEnv) registerUser(t *testing.T, email string, prefs map[string]interface{}) string {
	t.Helper()

	body := map[string]interface{}{
		"email":    email,
		"password": "password123",
		"name":     "Test User",
	}
	if prefs != nil {
		body["diet_preferences"] = prefs
	}

	w := e.do(t, http.MethodPost, "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// chatCompletion wraps content in a chat completions response body.
func chatCompletion(content string) []byte {
	resp := map[string]interface{}{
		"choices": []map[string]interface{}{
			{"message": map[string]string{"content": content}},
		},
	}
	data, _ := json.Marshal(resp)
	return data
}
