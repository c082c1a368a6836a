package mealplan

import (
	"MealPlanner-Backend/internal/utils"
	"time"

	"github.com/google/uuid"
)

// calculateSurplus estimates how much of each ingredient is still usable on
// the given date, based on what was used in the preceding days. Every usage
// implies purchases in purchase-unit multiples; whatever those purchases left
// over and has not expired by the date counts as surplus.
func calculateSurplus(days []Day, date time.Time) map[uuid.UUID]int {
	surplus := make(map[uuid.UUID]int)

	for _, day := range days {
		daysSince := utils.DayDiff(date, day.Date)
		for _, recipe := range day.Recipes {
			for _, usage := range recipe.Ingredients {
				ingredient := usage.Ingredient

				// Unmetered ingredients are never tracked, and a usage that
				// has expired by `date` contributes nothing.
				if !ingredient.Purchasable() || ingredient.Life <= daysSince {
					continue
				}

				remaining := surplus[ingredient.ID]
				remaining -= usage.Quantity

				// A negative total means more must have been bought at the
				// time; top it back up in purchase-unit multiples.
				if remaining < 0 {
					remaining += ingredient.ScalePurchase(-remaining)
				}
				surplus[ingredient.ID] = remaining
			}
		}
	}

	return surplus
}
