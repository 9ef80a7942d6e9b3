package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pantrychef/backend/internal/errs"
	"github.com/pantrychef/backend/internal/models"
	"github.com/pantrychef/backend/internal/types"
)

// SavedRecipeService manages the per-user collection of kept recipes.
type SavedRecipeService struct {
	db *gorm.DB
}

func NewSavedRecipeService(db *gorm.DB) *SavedRecipeService {
	return &SavedRecipeService{db: db}
}

// Create persists a suggested or custom recipe for the user.
func (s *SavedRecipeService) Create(ctx context.Context, userID uuid.UUID, req *types.SaveRecipeRequest) (*models.SavedRecipe, error) {
	if req.Servings <= 0 {
		return nil, errs.Validation("servings", "must be positive")
	}
	if len(req.Ingredients) == 0 {
		return nil, errs.Validation("ingredients", "must not be empty")
	}
	if len(req.Instructions) == 0 {
		return nil, errs.Validation("instructions", "must not be empty")
	}

	recipe := models.SavedRecipe{
		UserID:       userID,
		Title:        req.Title,
		Servings:     req.Servings,
		DietType:     req.DietType,
		CuisineType:  req.CuisineType,
		Ingredients:  models.JSONBStringArray(req.Ingredients),
		Instructions: models.JSONBStringArray(req.Instructions),
		Calories:     "N/A",
		Protein:      "N/A",
		Carbs:        "N/A",
		Fat:          "N/A",
		ImageURL:     req.Image,
		Favorite:     req.Favorite,
	}

	if req.NutritionalInfo != nil {
		per := req.NutritionalInfo.PerServing
		if per.Calories != "" {
			recipe.Calories = string(per.Calories)
		}
		if per.Protein != "" {
			recipe.Protein = string(per.Protein)
		}
		if per.Carbs != "" {
			recipe.Carbs = string(per.Carbs)
		}
		if per.Fat != "" {
			recipe.Fat = string(per.Fat)
		}
	}

	for _, t := range req.CookingTimers {
		recipe.CookingTimers = append(recipe.CookingTimers, models.CookingTimer{
			Step:        t.Step,
			Duration:    t.Duration,
			Description: t.Description,
		})
	}

	if req.TotalTime != nil {
		recipe.PrepMinutes = req.TotalTime.Prep
		recipe.CookMinutes = req.TotalTime.Cook
		recipe.TotalMinutes = req.TotalTime.Total
	}

	recipe.Embedding = GenerateEmbedding(req.Title + " " + req.CuisineType)

	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

// List returns the user's recipes, newest first. A non-empty query orders by
// embedding distance on postgres and falls back to keyword matching
// elsewhere.
func (s *SavedRecipeService) List(ctx context.Context, userID uuid.UUID, query string) ([]models.SavedRecipe, error) {
	var recipes []models.SavedRecipe

	dbQuery := s.db.WithContext(ctx).Where("user_id = ?", userID)

	if query != "" {
		if s.db.Dialector.Name() == "postgres" {
			vec := GenerateEmbedding(query)
			dbQuery = dbQuery.Clauses(clause.OrderBy{
				Expression: clause.Expr{SQL: "embedding <-> ?", Vars: []interface{}{vec}},
			})
		} else {
			like := "%" + strings.ToLower(query) + "%"
			dbQuery = dbQuery.
				Where("LOWER(title) LIKE ? OR LOWER(cuisine_type) LIKE ?", like, like).
				Order("created_at DESC")
		}
	} else {
		dbQuery = dbQuery.Order("created_at DESC")
	}

	if err := dbQuery.Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// Get returns the recipe only if owned by the user.
func (s *SavedRecipeService) Get(ctx context.Context, userID, id uuid.UUID) (*models.SavedRecipe, error) {
	var recipe models.SavedRecipe
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// Update modifies an owned recipe; ownership itself never changes.
func (s *SavedRecipeService) Update(ctx context.Context, userID, id uuid.UUID, req *types.UpdateSavedRecipeRequest) (*models.SavedRecipe, error) {
	recipe, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		recipe.Title = *req.Title
	}
	if req.Servings != nil {
		if *req.Servings <= 0 {
			return nil, errs.Validation("servings", "must be positive")
		}
		recipe.Servings = *req.Servings
	}
	if req.DietType != nil {
		recipe.DietType = *req.DietType
	}
	if req.CuisineType != nil {
		recipe.CuisineType = *req.CuisineType
	}
	if req.Ingredients != nil {
		recipe.Ingredients = models.JSONBStringArray(req.Ingredients)
	}
	if req.Instructions != nil {
		recipe.Instructions = models.JSONBStringArray(req.Instructions)
	}
	if req.Favorite != nil {
		recipe.Favorite = *req.Favorite
	}

	recipe.Embedding = GenerateEmbedding(recipe.Title + " " + recipe.CuisineType)

	if err := s.db.WithContext(ctx).Save(recipe).Error; err != nil {
		return nil, err
	}
	return recipe, nil
}

// Delete removes an owned recipe.
func (s *SavedRecipeService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.SavedRecipe{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}
