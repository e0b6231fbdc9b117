package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ingredient is one line of a recipe. Optional ingredients never block
// makeability and are scored as a bonus when available.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity,omitempty"`
	Unit     string  `json:"unit,omitempty"`
	Optional bool    `json:"optional,omitempty"`
}

// IngredientList is a custom type for handling ingredient arrays in JSONB
type IngredientList []Ingredient

// Value implements the driver.Valuer interface
func (l IngredientList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (l *IngredientList) Scan(value interface{}) error {
	if value == nil {
		*l = IngredientList{}
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

	return json.Unmarshal(bytes, l)
}

// StringList is a custom type for handling string arrays in JSONB
type StringList []string

// Value implements the driver.Valuer interface
func (a StringList) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface
func (a *StringList) Scan(value interface{}) error {
	if value == nil {
		*a = StringList{}
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

// Recipe is a drink with its ingredient list, preparation steps and the
// mood tags the recommendation engine filters on. ABV is a percentage in
// [0,100]; Temperature is "hot" for drinks served warm.
type Recipe struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"recipeId"`
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
	Name            string         `gorm:"size:255;not null" json:"name"`
	Description     string         `gorm:"type:text" json:"description"`
	Category        string         `gorm:"size:50;default:cocktail" json:"category"`
	GlassType       string         `gorm:"size:50" json:"glassType,omitempty"`
	Difficulty      string         `gorm:"size:20" json:"difficulty,omitempty"`
	PreparationTime int            `json:"preparationTime,omitempty"`
	ABV             float64        `gorm:"column:abv" json:"abv,omitempty"`
	Temperature     string         `gorm:"size:20" json:"temperature,omitempty"`
	Ingredients     IngredientList `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Instructions    StringList     `gorm:"type:jsonb;not null;default:'[]'" json:"instructions"`
	Garnish         string         `gorm:"size:255" json:"garnish,omitempty"`
	Moods           StringList     `gorm:"type:jsonb;not null;default:'[]'" json:"moods"`
	Tags            StringList     `gorm:"type:jsonb;not null;default:'[]'" json:"tags"`
	ImageURL        string         `gorm:"size:255" json:"imageUrl,omitempty"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
