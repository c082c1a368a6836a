package entities

import (
	"time"

	"github.com/google/uuid"
)

// MealDay schedules one recipe onto one calendar date. A date may carry
// several MealDay rows.
type MealDay struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID   uuid.UUID `json:"user_id"`
	RecipeID uuid.UUID `json:"recipe_id"`
	Date     time.Time `gorm:"type:date" json:"date"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
	Timestamp
}
