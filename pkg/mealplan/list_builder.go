package mealplan

import (
	"MealPlanner-Backend/domain"
	"sort"

	"github.com/google/uuid"
)

type (
	// shoppingListBuilder accumulates per-ingredient purchase rows. Recipe
	// usages net against a live surplus counter; recurring scheduled
	// purchases are kept in a separate row set and never touch that counter.
	shoppingListBuilder struct {
		surplus     map[uuid.UUID]int
		ingredients map[uuid.UUID]*purchaseLine
		scheduled   map[uuid.UUID]*purchaseLine
	}

	purchaseLine struct {
		ingredient       Ingredient
		existingSurplus  int
		usedQuantity     int
		purchaseQuantity int
	}
)

// newShoppingListBuilder seeds the builder with the surplus available at the
// start of the target range. The map is consumed as usages are recorded.
func newShoppingListBuilder(surplus map[uuid.UUID]int) *shoppingListBuilder {
	return &shoppingListBuilder{
		surplus:     surplus,
		ingredients: make(map[uuid.UUID]*purchaseLine),
		scheduled:   make(map[uuid.UUID]*purchaseLine),
	}
}

// RecordUsage nets one ingredient usage against the remaining surplus and
// rounds the uncovered part up to a purchase-unit multiple. Rounding happens
// per usage, not once over the total: several small usages can demand a
// larger purchase than their summed deficit rounded once would.
func (b *shoppingListBuilder) RecordUsage(ingredient Ingredient, quantity int) {
	line, ok := b.ingredients[ingredient.ID]
	if !ok {
		line = &purchaseLine{
			ingredient:      ingredient,
			existingSurplus: b.surplus[ingredient.ID],
		}
		b.ingredients[ingredient.ID] = line
	}

	needed := quantity
	if remaining, tracked := b.surplus[ingredient.ID]; tracked {
		remaining -= quantity
		needed = 0
		if remaining < 0 {
			needed = -remaining
			remaining = 0
		}
		b.surplus[ingredient.ID] = remaining
	}

	line.purchaseQuantity += ingredient.ScalePurchase(needed)
	line.usedQuantity += quantity
}

// AddRecipe records every ingredient usage of a recipe.
func (b *shoppingListBuilder) AddRecipe(recipe Recipe) {
	for _, usage := range recipe.Ingredients {
		b.RecordUsage(usage.Ingredient, usage.Quantity)
	}
}

// AddScheduled adds one purchase-unit occurrence of a recurring purchase.
func (b *shoppingListBuilder) AddScheduled(ingredient Ingredient) {
	line, ok := b.scheduled[ingredient.ID]
	if !ok {
		line = &purchaseLine{ingredient: ingredient}
		b.scheduled[ingredient.ID] = line
	}
	line.purchaseQuantity += ingredient.ScalePurchase(ingredient.PurchaseQuantity)
	line.usedQuantity += ingredient.PurchaseQuantity
}

// Build finalizes both row sets. Each is sorted by ingredient ID so repeated
// calls over the same data produce identical output.
func (b *shoppingListBuilder) Build() domain.ShoppingListResponse {
	return domain.ShoppingListResponse{
		Ingredients:          finalizeLines(b.ingredients),
		ScheduledIngredients: finalizeLines(b.scheduled),
	}
}

func finalizeLines(lines map[uuid.UUID]*purchaseLine) []domain.IngredientPurchase {
	result := make([]domain.IngredientPurchase, 0, len(lines))
	for _, line := range lines {
		result = append(result, domain.IngredientPurchase{
			Ingredient:       ingredientResponse(line.ingredient),
			ExistingSurplus:  line.existingSurplus,
			UsedQuantity:     line.usedQuantity,
			PurchaseQuantity: line.purchaseQuantity,
		})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Ingredient.ID < result[j].Ingredient.ID
	})
	return result
}

func ingredientResponse(ingredient Ingredient) domain.IngredientResponse {
	return domain.IngredientResponse{
		ID:               ingredient.ID.String(),
		Name:             ingredient.Name,
		Unit:             ingredient.Unit,
		MinimumQuantity:  ingredient.MinimumQuantity,
		PurchaseQuantity: ingredient.PurchaseQuantity,
		Life:             ingredient.Life,
	}
}
