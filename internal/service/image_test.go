package service_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrychef/backend/config"
	"github.com/pantrychef/backend/internal/errs"
	"github.com/pantrychef/backend/internal/service"
)

func newTestImageService(t *testing.T, handler http.HandlerFunc) *service.ImageService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return service.NewImageService(&config.Config{
		ImageAPIKey:     "test-key",
		ImageAPIURL:     server.URL,
		ProviderTimeout: 5 * time.Second,
	}, nil)
}

func TestGenerateRecipeImage(t *testing.T) {
	svc := newTestImageService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req struct {
			Prompt string `json:"prompt"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req.Prompt, "Fried Rice")
		assert.Contains(t, req.Prompt, "Asian")

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"data": []map[string]string{{"url": "https://img.example.com/rice.png"}},
		})
	})

	url, err := svc.GenerateRecipeImage(context.Background(), "Fried Rice", "Asian")
	require.NoError(t, err)
	assert.Equal(t, "https://img.example.com/rice.png", url)
}

func TestGenerateRecipeImageEmptyResponse(t *testing.T) {
	svc := newTestImageService(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": []}`))
	})

	_, err := svc.GenerateRecipeImage(context.Background(), "Fried Rice", "Asian")
	assert.True(t, errs.IsUpstream(err))
}

func TestGenerateRecipeImageServerError(t *testing.T) {
	svc := newTestImageService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := svc.GenerateRecipeImage(context.Background(), "Fried Rice", "Asian")
	assert.True(t, errs.IsUpstream(err))
}
