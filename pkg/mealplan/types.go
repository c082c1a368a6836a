package mealplan

import (
	"time"

	"github.com/google/uuid"
)

type (
	// Ingredient is the catalog snapshot carried inline on usage rows.
	// Copied by value into the computation and never written back.
	Ingredient struct {
		ID               uuid.UUID `json:"id"`
		Name             string    `json:"name"`
		Unit             string    `json:"unit,omitempty"`
		MinimumQuantity  int       `json:"minimum_quantity"`
		PurchaseQuantity int       `json:"purchase_quantity"`
		Life             int       `json:"life"`
	}

	// IngredientUsage couples an ingredient with the quantity a recipe
	// consumes of it.
	IngredientUsage struct {
		Ingredient Ingredient `json:"ingredient"`
		Quantity   int        `json:"quantity"`
	}

	// Recipe holds a scheduled recipe and its deduplicated ingredient usages.
	Recipe struct {
		ID          uuid.UUID         `json:"id"`
		Name        string            `json:"name"`
		Portions    int               `json:"portions"`
		Steps       string            `json:"steps"`
		Ingredients []IngredientUsage `json:"ingredients"`
	}

	// Day groups the recipes scheduled on one calendar date.
	Day struct {
		Date    time.Time `json:"date"`
		Recipes []Recipe  `json:"recipes"`
	}
)

// Purchasable reports whether the ingredient is bought in discrete units.
// Unmetered ingredients (purchase quantity zero, e.g. tap water) are never
// tracked for surplus and never accrue a purchase quantity.
func (i Ingredient) Purchasable() bool {
	return i.PurchaseQuantity > 0
}

// ScalePurchase scales an arbitrary amount up to the smallest purchase-unit
// multiple that covers it. Non-positive amounts and unmetered ingredients
// scale to zero.
func (i Ingredient) ScalePurchase(quantity int) int {
	if quantity <= 0 || !i.Purchasable() {
		return 0
	}
	units := (quantity + i.PurchaseQuantity - 1) / i.PurchaseQuantity
	return units * i.PurchaseQuantity
}
