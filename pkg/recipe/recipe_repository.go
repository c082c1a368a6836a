package recipe

import (
	"MealPlanner-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		SaveRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error)
		UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error
		ReplaceIngredients(ctx context.Context, recipeID string, ingredients []*entities.RecipeIngredient) error
		DeleteRecipe(ctx context.Context, id string) error
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) SaveRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients.Ingredient").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, userID string) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients.Ingredient").
		Where("user_id = ?", userID).
		Order("name asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Omit("Ingredients").Save(recipe).Error
}

func (r *recipeRepository) ReplaceIngredients(ctx context.Context, recipeID string, ingredients []*entities.RecipeIngredient) error {
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Delete(&entities.RecipeIngredient{}).Error; err != nil {
		return err
	}
	if len(ingredients) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(ingredients).Error
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", id).
		Delete(&entities.RecipeIngredient{}).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", id).
		Delete(&entities.MealDay{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Recipe{}).Error
}
