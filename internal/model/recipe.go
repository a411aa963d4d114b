package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AnonymousUserID is the owner recorded for recipes generated without a
// valid bearer token. Anonymous recipes are never persisted.
const AnonymousUserID = "anonymous"

// Ingredient is a single measured ingredient line.
type Ingredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
	Notes  string  `json:"notes,omitempty"`
}

// NutritionInfo holds per-serving nutrition estimates.
type NutritionInfo struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`
}

// JSONBIngredients stores an ingredient list in a JSONB column.
type JSONBIngredients []Ingredient

// Value implements the driver.Valuer interface
func (a JSONBIngredients) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBIngredients) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBIngredients{}
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

// JSONBNutrition stores nutrition info in a JSONB column.
type JSONBNutrition NutritionInfo

// Value implements the driver.Valuer interface
func (n JSONBNutrition) Value() (driver.Value, error) {
	return json.Marshal(n)
}

// Scan implements the sql.Scanner interface
func (n *JSONBNutrition) Scan(value interface{}) error {
	if value == nil {
		*n = JSONBNutrition{}
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

	return json.Unmarshal(bytes, n)
}

type Recipe struct {
	ID                  uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	CreatedAt           time.Time        `json:"createdAt"`
	UpdatedAt           time.Time        `json:"updatedAt"`
	Title               string           `gorm:"size:255;not null" json:"title"`
	Description         string           `gorm:"type:text" json:"description"`
	Ingredients         JSONBIngredients `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions        JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`
	PrepTime            int              `json:"prepTime"`
	CookTime            int              `json:"cookTime"`
	Servings            int              `json:"servings"`
	Difficulty          string           `gorm:"size:20" json:"difficulty"`
	Cuisine             string           `gorm:"size:100" json:"cuisine"`
	DietaryRestrictions JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"dietaryRestrictions"`
	Nutrition           JSONBNutrition   `gorm:"type:jsonb" json:"nutritionInfo"`
	ImageURL            string           `gorm:"size:255" json:"imageUrl,omitempty"`
	YoutubeSearchTerm   string           `gorm:"size:255" json:"youtubeSearchTerm,omitempty"`
	UserID              string           `gorm:"size:64;not null;index" json:"userId"`
}
