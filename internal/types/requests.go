package types

import "time"

// RegisterRequest is the request body for user registration
type RegisterRequest struct {
	Email       string           `json:"email" binding:"required,email"`
	Password    string           `json:"password" binding:"required,min=6"`
	Name        string           `json:"name" binding:"required"`
	Preferences *DietPreferences `json:"diet_preferences"`
}

// LoginRequest is the request body for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// DietPreferences is the preference block accepted on registration and
// preference updates.
type DietPreferences struct {
	DietType     string   `json:"diet_type"`
	ServingSize  int      `json:"serving_size"`
	Allergies    []string `json:"allergies"`
	Restrictions []string `json:"additional_restrictions"`
}

// CreateIngredientRequest is the request body for adding a pantry item
type CreateIngredientRequest struct {
	Name           string     `json:"name" binding:"required"`
	Category       string     `json:"category"`
	Amount         float64    `json:"amount"`
	Unit           string     `json:"unit"`
	ExpirationDate *time.Time `json:"expiration_date"`
	Calories       *float64   `json:"calories"`
	Protein        *float64   `json:"protein"`
	Carbs          *float64   `json:"carbs"`
	Fat            *float64   `json:"fat"`
}

// UpdateIngredientRequest is the request body for updating a pantry item.
// Pointer fields distinguish "leave unchanged" from explicit zeroes.
type UpdateIngredientRequest struct {
	Name           *string    `json:"name"`
	Category       *string    `json:"category"`
	Amount         *float64   `json:"amount"`
	Unit           *string    `json:"unit"`
	ExpirationDate *time.Time `json:"expiration_date"`
	Calories       *float64   `json:"calories"`
	Protein        *float64   `json:"protein"`
	Carbs          *float64   `json:"carbs"`
	Fat            *float64   `json:"fat"`
}

// SuggestRequest is the request body for recipe suggestions
type SuggestRequest struct {
	Ingredients []string `json:"ingredients"`
	Servings    int      `json:"servings"`
	DietType    string   `json:"diet_type"`
	CuisineType string   `json:"cuisine_type"`
}

// SaveRecipeRequest is the request body for persisting a recipe
type SaveRecipeRequest struct {
	Title           string           `json:"title" binding:"required"`
	Servings        int              `json:"servings" binding:"required"`
	DietType        string           `json:"diet_type"`
	CuisineType     string           `json:"cuisine_type"`
	Ingredients     []string         `json:"ingredients" binding:"required"`
	Instructions    []string         `json:"instructions" binding:"required"`
	NutritionalInfo *NutritionalInfo `json:"nutritional_info"`
	CookingTimers   []CookingTimer   `json:"cooking_timers"`
	TotalTime       *TotalTime       `json:"total_time"`
	Image           string           `json:"image"`
	Favorite        bool             `json:"favorite"`
}

// UpdateSavedRecipeRequest is the request body for updating a saved recipe
type UpdateSavedRecipeRequest struct {
	Title        *string  `json:"title"`
	Servings     *int     `json:"servings"`
	DietType     *string  `json:"diet_type"`
	CuisineType  *string  `json:"cuisine_type"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Favorite     *bool    `json:"favorite"`
}
