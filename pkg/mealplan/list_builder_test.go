package mealplan

import (
	"testing"

	"github.com/google/uuid"
)

func TestScalePurchase(t *testing.T) {
	carrot := Ingredient{ID: uuid.New(), Name: "Carrot", PurchaseQuantity: 10, Life: 10}
	water := Ingredient{ID: uuid.New(), Name: "Water", PurchaseQuantity: 0, Life: 1}

	cases := []struct {
		name       string
		ingredient Ingredient
		quantity   int
		want       int
	}{
		{"rounds up to one unit", carrot, 5, 10},
		{"exact unit stays", carrot, 10, 10},
		{"rounds up to two units", carrot, 11, 20},
		{"zero scales to zero", carrot, 0, 0},
		{"negative scales to zero", carrot, -3, 0},
		{"unmetered scales to zero", water, 500, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.ingredient.ScalePurchase(tc.quantity); got != tc.want {
				t.Errorf("ScalePurchase(%d) = %d, want %d", tc.quantity, got, tc.want)
			}
		})
	}
}

func TestRecordUsageWithoutSurplus(t *testing.T) {
	carrot := Ingredient{ID: uuid.New(), Name: "Carrot", PurchaseQuantity: 10, Life: 10}

	b := newShoppingListBuilder(map[uuid.UUID]int{})
	b.RecordUsage(carrot, 5)

	list := b.Build()
	if len(list.Ingredients) != 1 {
		t.Fatalf("expected 1 purchase row, got %d", len(list.Ingredients))
	}
	row := list.Ingredients[0]
	if row.UsedQuantity != 5 {
		t.Errorf("expected used 5, got %d", row.UsedQuantity)
	}
	if row.PurchaseQuantity != 10 {
		t.Errorf("expected purchase 10, got %d", row.PurchaseQuantity)
	}
	if row.ExistingSurplus != 0 {
		t.Errorf("expected no existing surplus, got %d", row.ExistingSurplus)
	}
}

func TestRecordUsageConsumesSurplusFirst(t *testing.T) {
	carrot := Ingredient{ID: uuid.New(), Name: "Carrot", PurchaseQuantity: 10, Life: 10}

	b := newShoppingListBuilder(map[uuid.UUID]int{carrot.ID: 5})
	b.RecordUsage(carrot, 5)

	row := b.Build().Ingredients[0]
	if row.PurchaseQuantity != 0 {
		t.Errorf("expected surplus to cover the usage, purchase = %d", row.PurchaseQuantity)
	}
	if row.ExistingSurplus != 5 {
		t.Errorf("expected existing surplus 5, got %d", row.ExistingSurplus)
	}
	if row.UsedQuantity != 5 {
		t.Errorf("expected used 5, got %d", row.UsedQuantity)
	}
}

func TestRecordUsagePurchasesOnlyTheUncoveredPart(t *testing.T) {
	carrot := Ingredient{ID: uuid.New(), Name: "Carrot", PurchaseQuantity: 10, Life: 10}

	b := newShoppingListBuilder(map[uuid.UUID]int{carrot.ID: 3})
	b.RecordUsage(carrot, 5)

	row := b.Build().Ingredients[0]
	// Deficit of 2 rounds up to one purchase unit.
	if row.PurchaseQuantity != 10 {
		t.Errorf("expected purchase 10, got %d", row.PurchaseQuantity)
	}
	if row.ExistingSurplus != 3 {
		t.Errorf("expected existing surplus 3, got %d", row.ExistingSurplus)
	}
}

func TestRecordUsageRoundsEachDeficitSeparately(t *testing.T) {
	carrot := Ingredient{ID: uuid.New(), Name: "Carrot", PurchaseQuantity: 10, Life: 10}

	// Two usages of 15 with no surplus: each rounds to 20, never 30.
	b := newShoppingListBuilder(map[uuid.UUID]int{})
	b.RecordUsage(carrot, 15)
	b.RecordUsage(carrot, 15)

	row := b.Build().Ingredients[0]
	if row.PurchaseQuantity != 40 {
		t.Errorf("expected per-usage rounding to yield 40, got %d", row.PurchaseQuantity)
	}
	if row.UsedQuantity != 30 {
		t.Errorf("expected used 30, got %d", row.UsedQuantity)
	}
}

func TestRecordUsageTrackedZeroSurplusStaysNetted(t *testing.T) {
	carrot := Ingredient{ID: uuid.New(), Name: "Carrot", PurchaseQuantity: 10, Life: 10}

	// A tracked-but-zero entry behaves like no surplus for coverage, but the
	// running counter keeps absorbing the overshoot purchases.
	b := newShoppingListBuilder(map[uuid.UUID]int{carrot.ID: 0})
	b.RecordUsage(carrot, 5)

	row := b.Build().Ingredients[0]
	if row.PurchaseQuantity != 10 {
		t.Errorf("expected purchase 10, got %d", row.PurchaseQuantity)
	}
	if row.ExistingSurplus != 0 {
		t.Errorf("expected existing surplus 0, got %d", row.ExistingSurplus)
	}
}

func TestRecordUsageUnmeteredIngredientBuysNothing(t *testing.T) {
	water := Ingredient{ID: uuid.New(), Name: "Water", PurchaseQuantity: 0, Life: 1}

	b := newShoppingListBuilder(map[uuid.UUID]int{})
	b.RecordUsage(water, 500)

	row := b.Build().Ingredients[0]
	if row.PurchaseQuantity != 0 {
		t.Errorf("expected no purchase for unmetered ingredient, got %d", row.PurchaseQuantity)
	}
	if row.UsedQuantity != 500 {
		t.Errorf("expected used quantity still reported, got %d", row.UsedQuantity)
	}
}

func TestAddScheduledKeptApartFromRecipeRows(t *testing.T) {
	milk := Ingredient{ID: uuid.New(), Name: "Milk", PurchaseQuantity: 1, Life: 7}

	b := newShoppingListBuilder(map[uuid.UUID]int{})
	b.RecordUsage(milk, 1)
	b.AddScheduled(milk)
	b.AddScheduled(milk)

	list := b.Build()
	if len(list.Ingredients) != 1 || len(list.ScheduledIngredients) != 1 {
		t.Fatalf("expected one row per set, got %d and %d", len(list.Ingredients), len(list.ScheduledIngredients))
	}
	if got := list.Ingredients[0].PurchaseQuantity; got != 1 {
		t.Errorf("expected recipe row purchase 1, got %d", got)
	}
	if got := list.ScheduledIngredients[0].PurchaseQuantity; got != 2 {
		t.Errorf("expected scheduled row purchase 2, got %d", got)
	}
	if got := list.ScheduledIngredients[0].UsedQuantity; got != 2 {
		t.Errorf("expected scheduled row used 2, got %d", got)
	}
}

func TestBuildSortsRowsByIngredientID(t *testing.T) {
	b := newShoppingListBuilder(map[uuid.UUID]int{})
	for i := 0; i < 8; i++ {
		b.RecordUsage(Ingredient{ID: uuid.New(), Name: "Item", PurchaseQuantity: 1, Life: 1}, 1)
	}

	rows := b.Build().Ingredients
	for i := 1; i < len(rows); i++ {
		if rows[i-1].Ingredient.ID >= rows[i].Ingredient.ID {
			t.Fatalf("rows not sorted by ingredient ID at index %d", i)
		}
	}
}

func TestAddRecipeRecordsAllUsages(t *testing.T) {
	carrot := Ingredient{ID: uuid.New(), Name: "Carrot", PurchaseQuantity: 10, Life: 10}
	onion := Ingredient{ID: uuid.New(), Name: "Onion", PurchaseQuantity: 5, Life: 30}

	b := newShoppingListBuilder(map[uuid.UUID]int{})
	b.AddRecipe(Recipe{
		ID:   uuid.New(),
		Name: "Stew",
		Ingredients: []IngredientUsage{
			{Ingredient: carrot, Quantity: 5},
			{Ingredient: onion, Quantity: 2},
		},
	})

	rows := b.Build().Ingredients
	if len(rows) != 2 {
		t.Fatalf("expected 2 purchase rows, got %d", len(rows))
	}
}
