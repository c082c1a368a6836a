package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessGetRecipes        = "success get recipes"
	MessageSuccessGetRecipeDetail   = "success get recipe detail"
	MessageSuccessSaveRecipe        = "recipe saved successfully"
	MessageSuccessUpdateRecipe      = "recipe updated successfully"
	MessageSuccessDeleteRecipe      = "recipe deleted successfully"
	MessageSuccessUploadRecipeImage = "recipe image uploaded successfully"

	MessageFailedGetRecipes        = "failed to get recipes"
	MessageFailedGetRecipeDetail   = "failed to get recipe detail"
	MessageFailedSaveRecipe        = "failed to save recipe"
	MessageFailedUpdateRecipe      = "failed to update recipe"
	MessageFailedDeleteRecipe      = "failed to delete recipe"
	MessageFailedUploadRecipeImage = "failed to upload recipe image"

	ErrRecipeNotFound           = errors.New("recipe not found")
	ErrUnauthorizedRecipeAccess = errors.New("unauthorized access to recipe")
)

type (
	SaveRecipeRequest struct {
		Name        string                    `json:"name" validate:"required"`
		Portions    int                       `json:"portions" validate:"required,min=1"`
		Steps       string                    `json:"steps"`
		Ingredients []RecipeIngredientRequest `json:"ingredients" validate:"dive"`
	}

	RecipeIngredientRequest struct {
		IngredientID string `json:"ingredient_id" validate:"required,uuid"`
		Quantity     int    `json:"quantity" validate:"required,min=1"`
	}

	RecipeIngredientResponse struct {
		Ingredient IngredientResponse `json:"ingredient"`
		Quantity   int                `json:"quantity"`
	}

	RecipeResponse struct {
		ID          string                     `json:"id"`
		Name        string                     `json:"name"`
		Portions    int                        `json:"portions"`
		Steps       string                     `json:"steps"`
		ImageURL    string                     `json:"image_url,omitempty"`
		Ingredients []RecipeIngredientResponse `json:"ingredients"`
		CreatedAt   time.Time                  `json:"created_at"`
	}

	UploadRecipeImageRequest struct {
		RecipeID string                `json:"recipe_id" form:"recipe_id" validate:"required,uuid"`
		Image    *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}
)
