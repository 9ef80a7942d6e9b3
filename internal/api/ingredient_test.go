package api_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pantrychef/backend/internal/models"
)

func TestIngredientEndpointsRequireAuth(t *testing.T) {
	env := setupTestServer(t, nil, nil)

	w := env.do(t, http.MethodGet, "/api/v1/ingredients", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodPost, "/api/v1/ingredients", "", map[string]interface{}{"name": "rice"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestIngredientCRUDFlow(t *testing.T) {
	env := setupTestServer(t, nil, nil)
	token := env.registerUser(t, "pantry@example.com", nil)

	w := env.do(t, http.MethodPost, "/api/v1/ingredients", token, map[string]interface{}{
		"name":     "chicken breast",
		"category": "meat",
		"amount":   500,
		"unit":     "g",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created models.Ingredient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "chicken breast", created.Name)

	list := env.do(t, http.MethodGet, "/api/v1/ingredients", token, nil)
	require.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, list.Body.String(), "chicken breast")

	update := env.do(t, http.MethodPut, fmt.Sprintf("/api/v1/ingredients/%s", created.ID), token, map[string]interface{}{
		"amount": 250,
	})
	require.Equal(t, http.StatusOK, update.Code, update.Body.String())

	var updated models.Ingredient
	require.NoError(t, json.Unmarshal(update.Body.Bytes(), &updated))
	assert.Equal(t, 250.0, updated.Amount)

	del := env.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/ingredients/%s", created.ID), token, nil)
	assert.Equal(t, http.StatusOK, del.Code)

	// Deleting again is a 404, as is a malformed id.
	del = env.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/ingredients/%s", created.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, del.Code)

	bad := env.do(t, http.MethodDelete, "/api/v1/ingredients/not-a-uuid", token, nil)
	assert.Equal(t, http.StatusNotFound, bad.Code)
}

func TestIngredientCreateRejectsBadCategory(t *testing.T) {
	env := setupTestServer(t, nil, nil)
	token := env.registerUser(t, "pantry@example.com", nil)

	w := env.do(t, http.MethodPost, "/api/v1/ingredients", token, map[string]interface{}{
		"name":     "mystery",
		"category": "cryptids",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIngredientIsolationBetweenUsers(t *testing.T) {
	env := setupTestServer(t, nil, nil)
	ownerToken := env.registerUser(t, "owner@example.com", nil)
	intruderToken := env.registerUser(t, "intruder@example.com", nil)

	w := env.do(t, http.MethodPost, "/api/v1/ingredients", ownerToken, map[string]interface{}{
		"name": "secret sauce",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Ingredient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	list := env.do(t, http.MethodGet, "/api/v1/ingredients", intruderToken, nil)
	require.Equal(t, http.StatusOK, list.Code)
	assert.NotContains(t, list.Body.String(), "secret sauce")

	stolen := env.do(t, http.MethodDelete, fmt.Sprintf("/api/v1/ingredients/%s", created.ID), intruderToken, nil)
	assert.Equal(t, http.StatusNotFound, stolen.Code)
}

func TestIngredientSubstitutesEndpoint(t *testing.T) {
	env := setupTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(chatCompletion(`{"substitutes":[{"name":"margarine","ratio":"1:1"}]}`))
	}, nil)
	token := env.registerUser(t, "pantry@example.com", nil)

	w := env.do(t, http.MethodPost, "/api/v1/ingredients", token, map[string]interface{}{
		"name": "butter",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Ingredient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	subs := env.do(t, http.MethodGet, fmt.Sprintf("/api/v1/ingredients/%s/substitutes", created.ID), token, nil)
	require.Equal(t, http.StatusOK, subs.Code, subs.Body.String())
	assert.Contains(t, subs.Body.String(), "margarine")
}
