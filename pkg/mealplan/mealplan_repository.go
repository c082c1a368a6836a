package mealplan

import (
	"MealPlanner-Backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	MealplanRepository interface {
		AddMealDay(ctx context.Context, mealDay *entities.MealDay) error
		GetMealDayByID(ctx context.Context, id string) (*entities.MealDay, error)
		DeleteMealDay(ctx context.Context, id string) error
		GetUsageRows(ctx context.Context, userID string, from, to time.Time) ([]UsageRow, error)
	}

	mealplanRepository struct {
		db *gorm.DB
	}
)

func NewMealplanRepository(db *gorm.DB) MealplanRepository {
	return &mealplanRepository{db: db}
}

func (r *mealplanRepository) AddMealDay(ctx context.Context, mealDay *entities.MealDay) error {
	return r.db.WithContext(ctx).Create(mealDay).Error
}

func (r *mealplanRepository) GetMealDayByID(ctx context.Context, id string) (*entities.MealDay, error) {
	var mealDay entities.MealDay
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&mealDay).Error; err != nil {
		return nil, err
	}
	return &mealDay, nil
}

func (r *mealplanRepository) DeleteMealDay(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.MealDay{}).Error
}

// GetUsageRows returns the fully joined (date, recipe, ingredient, quantity)
// rows for every scheduled recipe in the closed range [from, to].
func (r *mealplanRepository) GetUsageRows(ctx context.Context, userID string, from, to time.Time) ([]UsageRow, error) {
	var rows []UsageRow

	err := r.db.WithContext(ctx).
		Table("meal_days").
		Select(`meal_days.date,
			recipes.id AS recipe_id,
			recipes.name AS recipe_name,
			recipes.portions AS recipe_portions,
			recipes.steps AS recipe_steps,
			ingredients.id AS ingredient_id,
			ingredients.name AS ingredient_name,
			ingredients.unit AS ingredient_unit,
			ingredients.minimum_quantity AS ingredient_minimum_quantity,
			ingredients.purchase_quantity AS ingredient_purchase_quantity,
			ingredients.life AS ingredient_life,
			recipe_ingredients.quantity AS quantity`).
		Joins("LEFT JOIN recipes ON recipes.id = meal_days.recipe_id").
		Joins("LEFT JOIN recipe_ingredients ON recipe_ingredients.recipe_id = recipes.id").
		Joins("LEFT JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("meal_days.user_id = ? AND meal_days.date BETWEEN ? AND ?", userID, from, to).
		Order("meal_days.date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}
