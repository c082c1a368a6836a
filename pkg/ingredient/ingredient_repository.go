package ingredient

import (
	"MealPlanner-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	IngredientRepository interface {
		AddIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		GetIngredientByID(ctx context.Context, id string) (*entities.Ingredient, error)
		GetIngredients(ctx context.Context, userID string) ([]*entities.Ingredient, error)
		UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		DeleteIngredient(ctx context.Context, id string) error
		SearchIngredients(ctx context.Context, userID string, query string) ([]*entities.Ingredient, error)

		// Recurring purchase schedules
		AddSchedule(ctx context.Context, schedule *entities.IngredientSchedule) error
		GetScheduleByID(ctx context.Context, id string) (*entities.IngredientSchedule, error)
		GetSchedules(ctx context.Context, userID string) ([]*entities.IngredientSchedule, error)
		DeleteSchedule(ctx context.Context, id string) error
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) AddIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *ingredientRepository) GetIngredientByID(ctx context.Context, id string) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

// GetIngredients returns the user's own ingredients plus the shared catalog.
func (r *ingredientRepository) GetIngredients(ctx context.Context, userID string) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := r.db.WithContext(ctx).
		Where("user_id = ? OR user_id IS NULL", userID).
		Order("name asc").
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *ingredientRepository) UpdateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Save(ingredient).Error
}

func (r *ingredientRepository) DeleteIngredient(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Ingredient{}).Error
}

func (r *ingredientRepository) SearchIngredients(ctx context.Context, userID string, query string) ([]*entities.Ingredient, error) {
	var ingredients []*entities.Ingredient
	if err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?) AND (user_id IS NULL OR user_id = ?)", "%"+query+"%", userID).
		Order("user_id asc").
		Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *ingredientRepository) AddSchedule(ctx context.Context, schedule *entities.IngredientSchedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *ingredientRepository) GetScheduleByID(ctx context.Context, id string) (*entities.IngredientSchedule, error) {
	var schedule entities.IngredientSchedule
	if err := r.db.WithContext(ctx).Preload("Ingredient").Where("id = ?", id).First(&schedule).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *ingredientRepository) GetSchedules(ctx context.Context, userID string) ([]*entities.IngredientSchedule, error) {
	var schedules []*entities.IngredientSchedule
	if err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Where("user_id = ?", userID).
		Find(&schedules).Error; err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *ingredientRepository) DeleteSchedule(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.IngredientSchedule{}).Error
}
