package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IngredientCategories lists the inventory categories.
var IngredientCategories = []string{"produce", "meat", "dairy", "pantry", "spices", "other"}

// IsValidCategory reports whether c is a known ingredient category.
func IsValidCategory(c string) bool {
	for _, cat := range IngredientCategories {
		if cat == c {
			return true
		}
	}
	return false
}

// Ingredient is a pantry item owned by exactly one user.
type Ingredient struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`

	Name     string `gorm:"size:255;not null" json:"name"`
	Category string `gorm:"size:50;not null;default:'other'" json:"category"`

	Amount float64 `json:"amount"`
	Unit   string  `gorm:"size:50" json:"unit"`

	ExpirationDate *time.Time `json:"expiration_date,omitempty"`

	// Optional nutrition facts, per item
	Calories *float64 `json:"calories,omitempty"`
	Protein  *float64 `json:"protein,omitempty"`
	Carbs    *float64 `json:"carbs,omitempty"`
	Fat      *float64 `json:"fat,omitempty"`

	Substitutes JSONBSubstituteArray `gorm:"type:jsonb;not null;default:'[]'" json:"substitutes"`
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	if i.Category == "" {
		i.Category = "other"
	}
	return nil
}
