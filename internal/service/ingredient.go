package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pantrychef/backend/internal/errs"
	"github.com/pantrychef/backend/internal/models"
	"github.com/pantrychef/backend/internal/types"
)

// IngredientService manages the per-user pantry inventory.
type IngredientService struct {
	db          *gorm.DB
	substitutes SubstituteGenerator
}

func NewIngredientService(db *gorm.DB, substitutes SubstituteGenerator) *IngredientService {
	return &IngredientService{
		db:          db,
		substitutes: substitutes,
	}
}

// List returns all pantry items owned by the user, newest first.
func (s *IngredientService) List(ctx context.Context, userID uuid.UUID) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ingredients).Error
	return ingredients, err
}

// Create adds a pantry item for the user.
func (s *IngredientService) Create(ctx context.Context, userID uuid.UUID, req *types.CreateIngredientRequest) (*models.Ingredient, error) {
	if req.Category != "" && !models.IsValidCategory(req.Category) {
		return nil, errs.Validation("category", fmt.Sprintf("unknown category %q", req.Category))
	}
	if req.Amount < 0 {
		return nil, errs.Validation("amount", "must not be negative")
	}

	ingredient := models.Ingredient{
		UserID:         userID,
		Name:           req.Name,
		Category:       req.Category,
		Amount:         req.Amount,
		Unit:           req.Unit,
		ExpirationDate: req.ExpirationDate,
		Calories:       req.Calories,
		Protein:        req.Protein,
		Carbs:          req.Carbs,
		Fat:            req.Fat,
	}

	if err := s.db.WithContext(ctx).Create(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// Get returns the ingredient only if it is owned by the user; anything else
// is a not-found condition.
func (s *IngredientService) Get(ctx context.Context, userID, id uuid.UUID) (*models.Ingredient, error) {
	var ingredient models.Ingredient
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&ingredient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &ingredient, nil
}

// Update modifies an owned ingredient. A record owned by someone else
// reports not-found, never a permission error.
func (s *IngredientService) Update(ctx context.Context, userID, id uuid.UUID, req *types.UpdateIngredientRequest) (*models.Ingredient, error) {
	ingredient, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Category != nil {
		if !models.IsValidCategory(*req.Category) {
			return nil, errs.Validation("category", fmt.Sprintf("unknown category %q", *req.Category))
		}
		ingredient.Category = *req.Category
	}
	if req.Name != nil {
		ingredient.Name = *req.Name
	}
	if req.Amount != nil {
		if *req.Amount < 0 {
			return nil, errs.Validation("amount", "must not be negative")
		}
		ingredient.Amount = *req.Amount
	}
	if req.Unit != nil {
		ingredient.Unit = *req.Unit
	}
	if req.ExpirationDate != nil {
		ingredient.ExpirationDate = req.ExpirationDate
	}
	if req.Calories != nil {
		ingredient.Calories = req.Calories
	}
	if req.Protein != nil {
		ingredient.Protein = req.Protein
	}
	if req.Carbs != nil {
		ingredient.Carbs = req.Carbs
	}
	if req.Fat != nil {
		ingredient.Fat = req.Fat
	}

	if err := s.db.WithContext(ctx).Save(ingredient).Error; err != nil {
		return nil, err
	}
	return ingredient, nil
}

// Delete removes an owned ingredient.
func (s *IngredientService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Ingredient{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// Substitutes looks up AI-suggested replacements for an owned ingredient and
// persists them on the row. Upstream failure degrades to an empty list.
func (s *IngredientService) Substitutes(ctx context.Context, userID, id uuid.UUID) ([]models.Substitute, error) {
	ingredient, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if s.substitutes == nil {
		return []models.Substitute{}, nil
	}

	subs, err := s.substitutes.GenerateSubstitutes(ctx, ingredient.Name)
	if err != nil {
		log.Printf("[IngredientService] substitute generation failed for %q: %v", ingredient.Name, err)
		return []models.Substitute{}, nil
	}

	if len(subs) > 0 {
		ingredient.Substitutes = models.JSONBSubstituteArray(subs)
		if err := s.db.WithContext(ctx).Save(ingredient).Error; err != nil {
			log.Printf("[IngredientService] failed to persist substitutes: %v", err)
		}
	}

	return subs, nil
}
