package database

import (
	"gorm.io/gorm"

	"github.com/pantrychef/backend/internal/models"
)

// Migrate creates or updates the schema for all models. On postgres the
// pgvector extension is installed first so the embedding column migrates.
func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector;").Error; err != nil {
			return err
		}
	}

	return db.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.SavedRecipe{},
	)
}
