package mealplan

import (
	"MealPlanner-Backend/domain"
	"MealPlanner-Backend/entities"
	"MealPlanner-Backend/internal/utils"
	"MealPlanner-Backend/pkg/ingredient"
	"MealPlanner-Backend/pkg/recipe"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MealplanService interface {
		AddMealDay(ctx context.Context, req domain.AddMealDayRequest, userID string) (domain.MealDayResponse, error)
		GetMealDays(ctx context.Context, userID string, from, to time.Time) ([]domain.DayResponse, error)
		DeleteMealDay(ctx context.Context, id string, userID string) error
		BuildShoppingList(ctx context.Context, userID string, from, to time.Time) (domain.ShoppingListResponse, error)
	}

	mealplanService struct {
		mealplanRepository   MealplanRepository
		recipeRepository     recipe.RecipeRepository
		ingredientRepository ingredient.IngredientRepository
	}
)

func NewMealplanService(
	mealplanRepository MealplanRepository,
	recipeRepository recipe.RecipeRepository,
	ingredientRepository ingredient.IngredientRepository,
) MealplanService {
	return &mealplanService{
		mealplanRepository:   mealplanRepository,
		recipeRepository:     recipeRepository,
		ingredientRepository: ingredientRepository,
	}
}

func (s *mealplanService) AddMealDay(ctx context.Context, req domain.AddMealDayRequest, userID string) (domain.MealDayResponse, error) {
	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return domain.MealDayResponse{}, domain.ErrInvalidDateFormat
	}

	rec, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MealDayResponse{}, domain.ErrRecipeNotFound
		}
		return domain.MealDayResponse{}, err
	}

	if rec.UserID.String() != userID {
		return domain.MealDayResponse{}, domain.ErrUnauthorizedRecipeAccess
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.MealDayResponse{}, domain.ErrParseUUID
	}

	mealDay := &entities.MealDay{
		ID:       uuid.New(),
		UserID:   userUUID,
		RecipeID: rec.ID,
		Date:     date,
	}

	if err := s.mealplanRepository.AddMealDay(ctx, mealDay); err != nil {
		return domain.MealDayResponse{}, err
	}

	return domain.MealDayResponse{
		ID:     mealDay.ID.String(),
		Date:   utils.FormatDate(date),
		Recipe: recipeEntityResponse(rec),
	}, nil
}

func (s *mealplanService) GetMealDays(ctx context.Context, userID string, from, to time.Time) ([]domain.DayResponse, error) {
	rows, err := s.mealplanRepository.GetUsageRows(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	days, err := buildDays(rows)
	if err != nil {
		return nil, err
	}

	result := make([]domain.DayResponse, 0, len(days))
	for _, day := range days {
		recipes := make([]domain.RecipeResponse, 0, len(day.Recipes))
		for _, rec := range day.Recipes {
			recipes = append(recipes, engineRecipeResponse(rec))
		}
		result = append(result, domain.DayResponse{
			Date:    utils.FormatDate(day.Date),
			Recipes: recipes,
		})
	}

	return result, nil
}

func (s *mealplanService) DeleteMealDay(ctx context.Context, id string, userID string) error {
	mealDay, err := s.mealplanRepository.GetMealDayByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMealDayNotFound
		}
		return err
	}

	if mealDay.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	return s.mealplanRepository.DeleteMealDay(ctx, id)
}

// BuildShoppingList aggregates recipe demand over [from, to], nets it against
// the surplus inferred from the preceding days, and overlays recurring
// scheduled purchases. Surplus from before the range is assumed gone once an
// ingredient's shelf life has passed.
func (s *mealplanService) BuildShoppingList(ctx context.Context, userID string, from, to time.Time) (domain.ShoppingListResponse, error) {
	rows, err := s.mealplanRepository.GetUsageRows(ctx, userID, from, to)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	days, err := buildDays(rows)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	// The lookback window is sized by the longest shelf life used in the
	// range; anything older cannot contribute surplus anyway.
	maxLife := 0
	for _, day := range days {
		for _, rec := range day.Recipes {
			for _, usage := range rec.Ingredients {
				if usage.Ingredient.Life > maxLife {
					maxLife = usage.Ingredient.Life
				}
			}
		}
	}

	surplus := make(map[uuid.UUID]int)
	if maxLife > 0 {
		pastRows, err := s.mealplanRepository.GetUsageRows(ctx, userID, from.AddDate(0, 0, -maxLife), from.AddDate(0, 0, -1))
		if err != nil {
			return domain.ShoppingListResponse{}, err
		}
		pastDays, err := buildDays(pastRows)
		if err != nil {
			return domain.ShoppingListResponse{}, err
		}
		surplus = calculateSurplus(pastDays, from)
	}

	builder := newShoppingListBuilder(surplus)
	for _, day := range days {
		for _, rec := range day.Recipes {
			builder.AddRecipe(rec)
		}
	}

	schedules, err := s.ingredientRepository.GetSchedules(ctx, userID)
	if err != nil {
		return domain.ShoppingListResponse{}, err
	}

	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		for _, item := range schedules {
			if item.Ingredient == nil {
				return domain.ShoppingListResponse{}, domain.ErrIngredientNotFound
			}
			if item.Interval <= 0 {
				continue
			}
			elapsed := utils.DayDiff(day, item.StartDate)
			if elapsed < 0 || elapsed%item.Interval != 0 {
				continue
			}
			builder.AddScheduled(snapshotIngredient(item.Ingredient))
		}
	}

	return builder.Build(), nil
}

func snapshotIngredient(ing *entities.Ingredient) Ingredient {
	return Ingredient{
		ID:               ing.ID,
		Name:             ing.Name,
		Unit:             ing.Unit,
		MinimumQuantity:  ing.MinimumQuantity,
		PurchaseQuantity: ing.PurchaseQuantity,
		Life:             ing.Life,
	}
}

func engineRecipeResponse(rec Recipe) domain.RecipeResponse {
	ingredients := make([]domain.RecipeIngredientResponse, 0, len(rec.Ingredients))
	for _, usage := range rec.Ingredients {
		ingredients = append(ingredients, domain.RecipeIngredientResponse{
			Ingredient: ingredientResponse(usage.Ingredient),
			Quantity:   usage.Quantity,
		})
	}
	return domain.RecipeResponse{
		ID:          rec.ID.String(),
		Name:        rec.Name,
		Portions:    rec.Portions,
		Steps:       rec.Steps,
		Ingredients: ingredients,
	}
}

func recipeEntityResponse(rec *entities.Recipe) domain.RecipeResponse {
	ingredients := make([]domain.RecipeIngredientResponse, 0, len(rec.Ingredients))
	for _, ri := range rec.Ingredients {
		if ri.Ingredient == nil {
			continue
		}
		ingredients = append(ingredients, domain.RecipeIngredientResponse{
			Ingredient: ingredientResponse(snapshotIngredient(ri.Ingredient)),
			Quantity:   ri.Quantity,
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
