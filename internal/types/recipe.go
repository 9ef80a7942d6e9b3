package types

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexString accepts either a JSON string or a JSON number. Language-model
// responses are inconsistent about nutrition values ("8g" vs 300).
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		if num == float64(int64(num)) {
			*s = FlexString(strconv.FormatInt(int64(num), 10))
		} else {
			*s = FlexString(strconv.FormatFloat(num, 'f', -1, 64))
		}
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = FlexString(str)
		return nil
	}

	return fmt.Errorf("invalid value %s", string(data))
}

// FlexInt accepts a JSON number or a numeric string ("4 servings" counts).
type FlexInt int

func (i *FlexInt) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*i = FlexInt(int(num))
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		fields := strings.Fields(str)
		if len(fields) > 0 {
			if n, err := strconv.Atoi(fields[0]); err == nil {
				*i = FlexInt(n)
				return nil
			}
		}
		return nil
	}

	return fmt.Errorf("invalid count %s", string(data))
}

// CookingTimer pairs an instruction step with a duration in minutes.
type CookingTimer struct {
	Step        int    `json:"step"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
}

// TotalTime breaks a recipe's time down in minutes.
type TotalTime struct {
	Prep  int `json:"prep"`
	Cook  int `json:"cook"`
	Total int `json:"total"`
}

// NutritionPerServing holds per-serving nutrition as display strings.
// Absent values default to "N/A".
type NutritionPerServing struct {
	Calories FlexString `json:"calories"`
	Protein  FlexString `json:"protein"`
	Carbs    FlexString `json:"carbs"`
	Fat      FlexString `json:"fat"`
}

// NutritionalInfo wraps per-serving nutrition in the wire shape clients expect.
type NutritionalInfo struct {
	PerServing NutritionPerServing `json:"per_serving"`
}

// GeneratedRecipe is the normalized result of the suggestion pipeline. It is
// transient: nothing is persisted unless the caller saves it explicitly.
// Every producing path guarantees a non-empty title, ingredient list and
// instruction list; all other fields are optional with defaults.
type GeneratedRecipe struct {
	Title           string          `json:"title"`
	Servings        int             `json:"servings"`
	DietType        string          `json:"diet_type"`
	CuisineType     string          `json:"cuisine_type"`
	Ingredients     []string        `json:"ingredients"`
	Instructions    []string        `json:"instructions"`
	CookingTimers   []CookingTimer  `json:"cooking_timers"`
	TotalTime       *TotalTime      `json:"total_time,omitempty"`
	NutritionalInfo NutritionalInfo `json:"nutritional_info"`
	Image           string          `json:"image,omitempty"`
}

// Complete reports whether the recipe satisfies the required-field invariant.
func (r *GeneratedRecipe) Complete() bool {
	return r != nil && r.Title != "" && len(r.Ingredients) > 0 && len(r.Instructions) > 0
}

// SuggestionRequest carries the normalized inputs of one suggestion.
type SuggestionRequest struct {
	Ingredients []string
	Servings    int
	DietType    string
	CuisineType string

	// Prompt context merged from the user's stored preferences.
	Allergies    []string
	Restrictions []string
}

// CacheKey derives the cache key from the normalized input tuple.
func (r *SuggestionRequest) CacheKey() string {
	parts := make([]string, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		parts = append(parts, strings.ToLower(strings.TrimSpace(ing)))
	}
	return fmt.Sprintf("%s-%d-%s-%s",
		strings.Join(parts, ","),
		r.Servings,
		strings.ToLower(r.DietType),
		strings.ToLower(r.CuisineType),
	)
}
