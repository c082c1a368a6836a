package mealplan

import (
	"testing"

	"github.com/google/uuid"
)

func dayWithUsage(day string, ing Ingredient, quantity int) Day {
	return Day{
		Date: date(day),
		Recipes: []Recipe{
			{
				ID:   uuid.New(),
				Name: "Stew",
				Ingredients: []IngredientUsage{
					{Ingredient: ing, Quantity: quantity},
				},
			},
		},
	}
}

func TestCalculateSurplusLeftoverFromPurchaseUnit(t *testing.T) {
	carrot := Ingredient{ID: uuid.New(), Name: "Carrot", PurchaseQuantity: 10, Life: 10}

	// Using 5 implies buying 10, leaving 5 over.
	days := []Day{dayWithUsage("2024-03-01", carrot, 5)}

	surplus := calculateSurplus(days, date("2024-03-02"))
	if got := surplus[carrot.ID]; got != 5 {
		t.Errorf("expected surplus 5, got %d", got)
	}
}

func TestCalculateSurplusAccumulatesAcrossDays(t *testing.T) {
	carrot := Ingredient{ID: uuid.New(), Name: "Carrot", PurchaseQuantity: 10, Life: 10}

	// Day one: buy 10, use 5, 5 left. Day two: use 3 of the leftover.
	days := []Day{
		dayWithUsage("2024-03-01", carrot, 5),
		dayWithUsage("2024-03-02", carrot, 3),
	}

	surplus := calculateSurplus(days, date("2024-03-03"))
	if got := surplus[carrot.ID]; got != 2 {
		t.Errorf("expected surplus 2, got %d", got)
	}
}

func TestCalculateSurplusSkipsExpiredUsage(t *testing.T) {
	carrot := Ingredient{ID: uuid.New(), Name: "Carrot", PurchaseQuantity: 10, Life: 10}

	// Ten days later the leftover is exactly at its shelf life and gone.
	days := []Day{dayWithUsage("2024-03-01", carrot, 5)}

	surplus := calculateSurplus(days, date("2024-03-11"))
	if _, ok := surplus[carrot.ID]; ok {
		t.Errorf("expected expired usage to leave no surplus entry")
	}
}

func TestCalculateSurplusDayBeforeExpiry(t *testing.T) {
	carrot := Ingredient{ID: uuid.New(), Name: "Carrot", PurchaseQuantity: 10, Life: 10}

	days := []Day{dayWithUsage("2024-03-01", carrot, 5)}

	surplus := calculateSurplus(days, date("2024-03-10"))
	if got := surplus[carrot.ID]; got != 5 {
		t.Errorf("expected surplus 5 one day before expiry, got %d", got)
	}
}

func TestCalculateSurplusExactCoverLeavesZero(t *testing.T) {
	carrot := Ingredient{ID: uuid.New(), Name: "Carrot", PurchaseQuantity: 10, Life: 10}

	days := []Day{dayWithUsage("2024-03-01", carrot, 10)}

	surplus := calculateSurplus(days, date("2024-03-02"))
	got, ok := surplus[carrot.ID]
	if !ok {
		t.Fatalf("expected a tracked entry for the ingredient")
	}
	if got != 0 {
		t.Errorf("expected surplus 0, got %d", got)
	}
}

func TestCalculateSurplusIgnoresUnmeteredIngredient(t *testing.T) {
	water := Ingredient{ID: uuid.New(), Name: "Water", PurchaseQuantity: 0, Life: 1}

	days := []Day{dayWithUsage("2024-03-01", water, 500)}

	surplus := calculateSurplus(days, date("2024-03-02"))
	if _, ok := surplus[water.ID]; ok {
		t.Errorf("expected unmetered ingredient to be untracked")
	}
}
