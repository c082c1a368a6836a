package mealplan

import (
	"MealPlanner-Backend/domain"
	"sort"
	"time"

	"github.com/google/uuid"
)

// UsageRow is one row of the joined day/recipe/ingredient query for a date
// range. The ingredient columns are nullable: a scheduled recipe with no
// ingredients still yields one row.
type UsageRow struct {
	Date                       time.Time  `gorm:"column:date"`
	RecipeID                   uuid.UUID  `gorm:"column:recipe_id"`
	RecipeName                 string     `gorm:"column:recipe_name"`
	RecipePortions             int        `gorm:"column:recipe_portions"`
	RecipeSteps                string     `gorm:"column:recipe_steps"`
	IngredientID               *uuid.UUID `gorm:"column:ingredient_id"`
	IngredientName             *string    `gorm:"column:ingredient_name"`
	IngredientUnit             *string    `gorm:"column:ingredient_unit"`
	IngredientMinimumQuantity  *int       `gorm:"column:ingredient_minimum_quantity"`
	IngredientPurchaseQuantity *int       `gorm:"column:ingredient_purchase_quantity"`
	IngredientLife             *int       `gorm:"column:ingredient_life"`
	Quantity                   *int       `gorm:"column:quantity"`
}

// buildDays reassembles flat joined rows into days of deduplicated recipes.
// A recipe joined against several ingredient rows becomes one Recipe; a
// recipe scheduled twice on the same date counts once. Days come back sorted
// ascending by date.
func buildDays(rows []UsageRow) ([]Day, error) {
	recipes := make(map[uuid.UUID]*Recipe)
	for _, row := range rows {
		entry, ok := recipes[row.RecipeID]
		if !ok {
			entry = &Recipe{
				ID:       row.RecipeID,
				Name:     row.RecipeName,
				Portions: row.RecipePortions,
				Steps:    row.RecipeSteps,
			}
			recipes[row.RecipeID] = entry
		}

		if row.IngredientID == nil {
			continue
		}
		usage, err := rowUsage(row)
		if err != nil {
			return nil, err
		}

		duplicate := false
		for _, existing := range entry.Ingredients {
			if existing == usage {
				duplicate = true
				break
			}
		}
		if !duplicate {
			entry.Ingredients = append(entry.Ingredients, usage)
		}
	}

	dayIndex := make(map[string]*Day)
	var days []*Day
	for _, row := range rows {
		key := row.Date.Format("2006-01-02")
		day, ok := dayIndex[key]
		if !ok {
			day = &Day{Date: row.Date}
			dayIndex[key] = day
			days = append(days, day)
		}

		scheduled := false
		for _, existing := range day.Recipes {
			if existing.ID == row.RecipeID {
				scheduled = true
				break
			}
		}
		if !scheduled {
			day.Recipes = append(day.Recipes, *recipes[row.RecipeID])
		}
	}

	result := make([]Day, 0, len(days))
	for _, day := range days {
		result = append(result, *day)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result, nil
}

// rowUsage lifts the nullable ingredient columns out of a row. A quantity
// without its ingredient attributes means the input snapshot is inconsistent
// and the whole computation must fail rather than skip the ingredient.
func rowUsage(row UsageRow) (IngredientUsage, error) {
	if row.IngredientName == nil || row.IngredientMinimumQuantity == nil ||
		row.IngredientPurchaseQuantity == nil || row.IngredientLife == nil ||
		row.Quantity == nil {
		return IngredientUsage{}, domain.ErrMalformedUsageRow
	}

	unit := ""
	if row.IngredientUnit != nil {
		unit = *row.IngredientUnit
	}

	return IngredientUsage{
		Ingredient: Ingredient{
			ID:               *row.IngredientID,
			Name:             *row.IngredientName,
			Unit:             unit,
			MinimumQuantity:  *row.IngredientMinimumQuantity,
			PurchaseQuantity: *row.IngredientPurchaseQuantity,
			Life:             *row.IngredientLife,
		},
		Quantity: *row.Quantity,
	}, nil
}
