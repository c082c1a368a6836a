package domain

import (
	"errors"
)

var (
	MessageSuccessAddMealDay      = "recipe scheduled successfully"
	MessageSuccessGetMealDays     = "meal plan retrieved successfully"
	MessageSuccessDeleteMealDay   = "scheduled recipe removed successfully"
	MessageSuccessGetShoppingList = "shopping list generated successfully"

	MessageFailedAddMealDay      = "failed to schedule recipe"
	MessageFailedGetMealDays     = "failed to retrieve meal plan"
	MessageFailedDeleteMealDay   = "failed to remove scheduled recipe"
	MessageFailedGetShoppingList = "failed to generate shopping list"

	ErrInvalidDateFormat = errors.New("dates must use the YYYY-MM-DD format")
	ErrInvalidDateRange  = errors.New("from date must not be after to date")
	ErrMealDayNotFound   = errors.New("scheduled recipe not found")
	// ErrMalformedUsageRow marks a joined usage row carrying a quantity
	// without its ingredient attributes. Consistent data never produces it.
	ErrMalformedUsageRow = errors.New("usage row is missing ingredient attributes")
)

type (
	AddMealDayRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
		Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	}

	MealDayResponse struct {
		ID     string         `json:"id"`
		Date   string         `json:"date"`
		Recipe RecipeResponse `json:"recipe"`
	}

	DayResponse struct {
		Date    string           `json:"date"`
		Recipes []RecipeResponse `json:"recipes"`
	}

	// IngredientPurchase is one row of a shopping list. PurchaseQuantity is
	// always a multiple of the ingredient's purchase quantity, or zero.
	IngredientPurchase struct {
		Ingredient       IngredientResponse `json:"ingredient"`
		ExistingSurplus  int                `json:"existing_surplus"`
		UsedQuantity     int                `json:"used_quantity"`
		PurchaseQuantity int                `json:"purchase_quantity"`
	}

	// ShoppingListResponse keeps recipe-driven purchases apart from recurring
	// scheduled purchases; a scheduled milk delivery must not cancel out a
	// recipe's milk requirement.
	ShoppingListResponse struct {
		Ingredients          []IngredientPurchase `json:"ingredients"`
		ScheduledIngredients []IngredientPurchase `json:"scheduled_ingredients"`
	}
)
