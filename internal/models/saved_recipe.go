package models

import (
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

// SavedRecipe is a finalized recipe a user chose to keep. Ownership is
// immutable after creation.
type SavedRecipe struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`

	Title       string `gorm:"size:255;not null" json:"title"`
	Servings    int    `gorm:"not null" json:"servings"`
	DietType    string `gorm:"size:50" json:"diet_type"`
	CuisineType string `gorm:"size:50" json:"cuisine_type"`

	Ingredients  JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`

	// Nutrition per serving, kept as display strings ("350", "15g", "N/A")
	Calories string `gorm:"size:50" json:"calories"`
	Protein  string `gorm:"size:50" json:"protein"`
	Carbs    string `gorm:"size:50" json:"carbs"`
	Fat      string `gorm:"size:50" json:"fat"`

	CookingTimers JSONBTimerArray `gorm:"type:jsonb;not null;default:'[]'" json:"cooking_timers"`

	PrepMinutes  int `json:"prep_minutes"`
	CookMinutes  int `json:"cook_minutes"`
	TotalMinutes int `json:"total_minutes"`

	ImageURL string `gorm:"size:512" json:"image_url"`
	Favorite bool   `gorm:"not null;default:false" json:"favorite"`

	Embedding pgvector.Vector `gorm:"type:vector(3)" json:"-"`
}

func (SavedRecipe) TableName() string {
	return "saved_recipes"
}

func (r *SavedRecipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
