package domain

import (
	"errors"
)

var (
	MessageSuccessAddIngredient    = "ingredient added successfully"
	MessageSuccessGetIngredients   = "ingredients retrieved successfully"
	MessageSuccessUpdateIngredient = "ingredient updated successfully"
	MessageSuccessDeleteIngredient = "ingredient deleted successfully"
	MessageSuccessSearchIngredient = "ingredient search completed"
	MessageSuccessAddSchedule      = "ingredient schedule added successfully"
	MessageSuccessGetSchedules     = "ingredient schedules retrieved successfully"
	MessageSuccessDeleteSchedule   = "ingredient schedule deleted successfully"

	MessageFailedAddIngredient    = "failed to add ingredient"
	MessageFailedGetIngredients   = "failed to retrieve ingredients"
	MessageFailedUpdateIngredient = "failed to update ingredient"
	MessageFailedDeleteIngredient = "failed to delete ingredient"
	MessageFailedSearchIngredient = "failed to search ingredients"
	MessageFailedAddSchedule      = "failed to add ingredient schedule"
	MessageFailedGetSchedules     = "failed to retrieve ingredient schedules"
	MessageFailedDeleteSchedule   = "failed to delete ingredient schedule"

	ErrIngredientNotFound           = errors.New("ingredient not found")
	ErrUnauthorizedIngredientAccess = errors.New("unauthorized access to ingredient")
	ErrIngredientNotPurchasable     = errors.New("ingredient has no purchase quantity and cannot be scheduled")
	ErrScheduleNotFound             = errors.New("ingredient schedule not found")
)

type (
	AddIngredientRequest struct {
		Name             string `json:"name" validate:"required"`
		Unit             string `json:"unit"`
		MinimumQuantity  int    `json:"minimum_quantity" validate:"min=0"`
		PurchaseQuantity int    `json:"purchase_quantity" validate:"min=0"`
		Life             int    `json:"life" validate:"required,min=1"`
	}

	UpdateIngredientRequest struct {
		Name             string `json:"name" validate:"omitempty"`
		Unit             string `json:"unit" validate:"omitempty"`
		MinimumQuantity  int    `json:"minimum_quantity" validate:"omitempty,min=0"`
		PurchaseQuantity int    `json:"purchase_quantity" validate:"omitempty,min=0"`
		Life             int    `json:"life" validate:"omitempty,min=1"`
	}

	IngredientResponse struct {
		ID               string `json:"id"`
		Name             string `json:"name"`
		Unit             string `json:"unit,omitempty"`
		MinimumQuantity  int    `json:"minimum_quantity"`
		PurchaseQuantity int    `json:"purchase_quantity"`
		Life             int    `json:"life"`
	}

	AddIngredientScheduleRequest struct {
		IngredientID string `json:"ingredient_id" validate:"required,uuid"`
		StartDate    string `json:"start_date" validate:"required,datetime=2006-01-02"`
		Interval     int    `json:"interval" validate:"required,min=1"`
	}

	IngredientScheduleResponse struct {
		ID         string             `json:"id"`
		Ingredient IngredientResponse `json:"ingredient"`
		StartDate  string             `json:"start_date"`
		Interval   int                `json:"interval"`
	}
)
