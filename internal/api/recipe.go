package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pantrychef/backend/internal/middleware"
	"github.com/pantrychef/backend/internal/service"
	"github.com/pantrychef/backend/internal/types"
)

// RecipeHandler serves recipe suggestion and search.
type RecipeHandler struct {
	suggestionService *service.SuggestionService
	searchClient      *service.SpoonacularClient
	authService       *service.AuthService
}

func NewRecipeHandler(suggestionService *service.SuggestionService, searchClient *service.SpoonacularClient, authService *service.AuthService) *RecipeHandler {
	return &RecipeHandler{
		suggestionService: suggestionService,
		searchClient:      searchClient,
		authService:       authService,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes", middleware.AuthMiddleware(h.authService))
	{
		recipes.POST("/suggest", h.Suggest)
		recipes.GET("/search", h.Search)
	}
}

// Suggest runs the generation pipeline, merging the user's stored
// preferences into the request.
func (h *RecipeHandler) Suggest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "please authenticate"})
		return
	}

	var req types.SuggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	suggestion := &types.SuggestionRequest{
		Ingredients: req.Ingredients,
		Servings:    req.Servings,
		DietType:    req.DietType,
		CuisineType: req.CuisineType,
	}

	// Stored preferences fill the gaps the request leaves open.
	if user, err := h.authService.GetUser(c.Request.Context(), userID); err == nil {
		suggestion.Allergies = user.Allergies
		suggestion.Restrictions = user.Restrictions
		if suggestion.DietType == "" {
			suggestion.DietType = user.DietType
		}
		if suggestion.Servings == 0 {
			suggestion.Servings = user.ServingSize
		}
	}

	recipe, err := h.suggestionService.Suggest(c.Request.Context(), suggestion)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// Search proxies the structured recipe search API.
func (h *RecipeHandler) Search(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter is required"})
		return
	}

	results, err := h.searchClient.Search(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to search recipes"})
		return
	}

	c.Data(http.StatusOK, "application/json", results)
}
