package entities

import (
	"github.com/google/uuid"
)

type Recipe struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	Name     string    `json:"name"`
	Portions int       `json:"portions"`
	Steps    string    `json:"steps" gorm:"type:text"`
	ImageURL string    `json:"image_url,omitempty"`

	Ingredients []*RecipeIngredient `gorm:"foreignKey:RecipeID"`
	User        *User               `gorm:"foreignKey:UserID"`
	Timestamp
}

type RecipeIngredient struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID     uuid.UUID `json:"recipe_id"`
	IngredientID uuid.UUID `json:"ingredient_id"`
	Quantity     int       `json:"quantity"`

	Recipe     *Recipe     `gorm:"foreignKey:RecipeID"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
	Timestamp
}
