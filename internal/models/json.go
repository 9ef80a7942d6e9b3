package models

import (
	"database/sql/driver"
	"encoding/json"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// CookingTimer pairs an instruction step index with a duration in minutes.
type CookingTimer struct {
	Step        int    `json:"step"`
	Duration    int    `json:"duration"`
	Description string `json:"description"`
}

// JSONBTimerArray stores cooking timers as JSONB
type JSONBTimerArray []CookingTimer

// Value implements the driver.Valuer interface
func (a JSONBTimerArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBTimerArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBTimerArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Substitute suggests a replacement ingredient with a conversion ratio.
type Substitute struct {
	Name  string `json:"name"`
	Ratio string `json:"ratio"`
}

// JSONBSubstituteArray stores substitute suggestions as JSONB
type JSONBSubstituteArray []Substitute

// Value implements the driver.Valuer interface
func (a JSONBSubstituteArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBSubstituteArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBSubstituteArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}
