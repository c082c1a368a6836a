package entities

import (
	"time"

	"github.com/google/uuid"
)

type Ingredient struct {
	ID     uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID *uuid.UUID `json:"user_id,omitempty"` // nil for shared catalog ingredients
	Name   string     `json:"name"`
	Unit   string     `json:"unit,omitempty"`
	// Smallest amount a recipe can meaningfully use.
	MinimumQuantity int `json:"minimum_quantity"`
	// Amount obtained per purchase. Zero marks an unmetered ingredient
	// (e.g. tap water) that never appears on a shopping list.
	PurchaseQuantity int `json:"purchase_quantity"`
	// Shelf life in days.
	Life int `json:"life"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}

type IngredientSchedule struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	IngredientID uuid.UUID `json:"ingredient_id"`
	StartDate    time.Time `gorm:"type:date" json:"start_date"`
	Interval     int       `json:"interval"` // days between purchases

	User       *User       `gorm:"foreignKey:UserID"`
	Ingredient *Ingredient `gorm:"foreignKey:IngredientID"`
	Timestamp
}
