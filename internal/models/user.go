package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DietTypes lists the diet types a user profile may declare.
var DietTypes = []string{
	"regular", "keto", "vegetarian", "vegan", "paleo",
	"low-carb", "mediterranean", "gluten-free", "dairy-free",
}

// IsValidDietType reports whether t is a known diet type.
func IsValidDietType(t string) bool {
	for _, d := range DietTypes {
		if d == t {
			return true
		}
	}
	return false
}

type User struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Name         string         `gorm:"not null" json:"name"`
	Email        string         `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"not null" json:"-"`

	// Diet preferences, embedded rather than normalized: they travel with
	// the user on every suggestion request.
	DietType     string           `gorm:"size:50;not null;default:'regular'" json:"diet_type"`
	ServingSize  int              `gorm:"not null;default:2" json:"serving_size"`
	Allergies    JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"allergies"`
	Restrictions JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"additional_restrictions"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if u.DietType == "" {
		u.DietType = "regular"
	}
	if u.ServingSize == 0 {
		u.ServingSize = 2
	}
	return nil
}
