package recipe

import (
	"MealPlanner-Backend/domain"
	"MealPlanner-Backend/entities"
	"MealPlanner-Backend/internal/utils/storage"
	"MealPlanner-Backend/pkg/ingredient"
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		SaveRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string) (domain.RecipeResponse, error)
		GetRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error)
		GetRecipeDetail(ctx context.Context, id string, userID string) (domain.RecipeResponse, error)
		UpdateRecipe(ctx context.Context, id string, req domain.SaveRecipeRequest, userID string) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, id string, userID string) error
		UploadRecipeImage(ctx context.Context, req domain.UploadRecipeImageRequest, userID string) (domain.RecipeResponse, error)
	}

	recipeService struct {
		recipeRepository     RecipeRepository
		ingredientRepository ingredient.IngredientRepository
		s3                   storage.AwsS3
	}
)

func NewRecipeService(
	recipeRepository RecipeRepository,
	ingredientRepository ingredient.IngredientRepository,
	s3 storage.AwsS3,
) RecipeService {
	return &recipeService{
		recipeRepository:     recipeRepository,
		ingredientRepository: ingredientRepository,
		s3:                   s3,
	}
}

func (s *recipeService) SaveRecipe(ctx context.Context, req domain.SaveRecipeRequest, userID string) (domain.RecipeResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.RecipeResponse{}, domain.ErrParseUUID
	}

	recipeID := uuid.New()
	rows, err := s.buildIngredientRows(ctx, recipeID, req.Ingredients, userID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	rec := &entities.Recipe{
		ID:          recipeID,
		UserID:      userUUID,
		Name:        req.Name,
		Portions:    req.Portions,
		Steps:       req.Steps,
		Ingredients: rows,
	}

	if err := s.recipeRepository.SaveRecipe(ctx, rec); err != nil {
		return domain.RecipeResponse{}, err
	}

	saved, err := s.recipeRepository.GetRecipeByID(ctx, recipeID.String())
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	return recipeResponse(saved), nil
}

func (s *recipeService) GetRecipes(ctx context.Context, userID string) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for _, rec := range recipes {
		result = append(result, recipeResponse(rec))
	}
	return result, nil
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, id string, userID string) (domain.RecipeResponse, error) {
	rec, err := s.ownedRecipe(ctx, id, userID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return recipeResponse(rec), nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id string, req domain.SaveRecipeRequest, userID string) (domain.RecipeResponse, error) {
	rec, err := s.ownedRecipe(ctx, id, userID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	rows, err := s.buildIngredientRows(ctx, rec.ID, req.Ingredients, userID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	rec.Name = req.Name
	rec.Portions = req.Portions
	rec.Steps = req.Steps
	rec.Ingredients = nil

	if err := s.recipeRepository.UpdateRecipe(ctx, rec); err != nil {
		return domain.RecipeResponse{}, err
	}
	if err := s.recipeRepository.ReplaceIngredients(ctx, rec.ID.String(), rows); err != nil {
		return domain.RecipeResponse{}, err
	}

	updated, err := s.recipeRepository.GetRecipeByID(ctx, rec.ID.String())
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	return recipeResponse(updated), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id string, userID string) error {
	if _, err := s.ownedRecipe(ctx, id, userID); err != nil {
		return err
	}
	return s.recipeRepository.DeleteRecipe(ctx, id)
}

func (s *recipeService) UploadRecipeImage(ctx context.Context, req domain.UploadRecipeImageRequest, userID string) (domain.RecipeResponse, error) {
	rec, err := s.ownedRecipe(ctx, req.RecipeID, userID)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	objectKey, err := s.s3.UploadFile(fmt.Sprintf("recipe-%s", rec.ID.String()), req.Image, "recipes", storage.AllowImage...)
	if err != nil {
		return domain.RecipeResponse{}, err
	}

	rec.ImageURL = s.s3.GetPublicLink(objectKey)
	if err := s.recipeRepository.UpdateRecipe(ctx, rec); err != nil {
		return domain.RecipeResponse{}, err
	}

	return recipeResponse(rec), nil
}

func (s *recipeService) ownedRecipe(ctx context.Context, id string, userID string) (*entities.Recipe, error) {
	rec, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}

	if rec.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedRecipeAccess
	}

	return rec, nil
}

// buildIngredientRows validates that every referenced ingredient exists and is
// accessible to the user (their own or from the shared catalog).
func (s *recipeService) buildIngredientRows(ctx context.Context, recipeID uuid.UUID, ingredients []domain.RecipeIngredientRequest, userID string) ([]*entities.RecipeIngredient, error) {
	rows := make([]*entities.RecipeIngredient, 0, len(ingredients))
	for _, item := range ingredients {
		ing, err := s.ingredientRepository.GetIngredientByID(ctx, item.IngredientID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrIngredientNotFound
			}
			return nil, err
		}

		if ing.UserID != nil && ing.UserID.String() != userID {
			return nil, domain.ErrUnauthorizedIngredientAccess
		}

		rows = append(rows, &entities.RecipeIngredient{
			ID:           uuid.New(),
			RecipeID:     recipeID,
			IngredientID: ing.ID,
			Quantity:     item.Quantity,
		})
	}
	return rows, nil
}

func recipeResponse(rec *entities.Recipe) domain.RecipeResponse {
	ingredients := make([]domain.RecipeIngredientResponse, 0, len(rec.Ingredients))
	for _, ri := range rec.Ingredients {
		if ri.Ingredient == nil {
			continue
		}
		ingredients = append(ingredients, domain.RecipeIngredientResponse{
			Ingredient: domain.IngredientResponse{
				ID:               ri.Ingredient.ID.String(),
				Name:             ri.Ingredient.Name,
				Unit:             ri.Ingredient.Unit,
				MinimumQuantity:  ri.Ingredient.MinimumQuantity,
				PurchaseQuantity: ri.Ingredient.PurchaseQuantity,
				Life:             ri.Ingredient.Life,
			},
			Quantity: ri.Quantity,
		})
	}
	return domain.RecipeResponse{
		ID:          rec.ID.String(),
		Name:        rec.Name,
		Portions:    rec.Portions,
		Steps:       rec.Steps,
		ImageURL:    rec.ImageURL,
		Ingredients: ingredients,
		CreatedAt:   rec.CreatedAt,
	}
}
