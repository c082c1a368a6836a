package ingredient

import (
	"MealPlanner-Backend/domain"
	"MealPlanner-Backend/entities"
	"MealPlanner-Backend/internal/utils"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	IngredientService interface {
		AddIngredient(ctx context.Context, req domain.AddIngredientRequest, userID string) (domain.IngredientResponse, error)
		GetIngredients(ctx context.Context, userID string) ([]domain.IngredientResponse, error)
		UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest, userID string) error
		DeleteIngredient(ctx context.Context, id string, userID string) error
		SearchIngredients(ctx context.Context, userID string, query string) ([]domain.IngredientResponse, error)

		AddSchedule(ctx context.Context, req domain.AddIngredientScheduleRequest, userID string) (domain.IngredientScheduleResponse, error)
		GetSchedules(ctx context.Context, userID string) ([]domain.IngredientScheduleResponse, error)
		DeleteSchedule(ctx context.Context, id string, userID string) error
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepository: ingredientRepository}
}

func (s *ingredientService) AddIngredient(ctx context.Context, req domain.AddIngredientRequest, userID string) (domain.IngredientResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.IngredientResponse{}, domain.ErrParseUUID
	}

	ingredient := &entities.Ingredient{
		ID:               uuid.New(),
		UserID:           &userUUID,
		Name:             req.Name,
		Unit:             req.Unit,
		MinimumQuantity:  req.MinimumQuantity,
		PurchaseQuantity: req.PurchaseQuantity,
		Life:             req.Life,
	}

	if err := s.ingredientRepository.AddIngredient(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}

	return ingredientResponse(ingredient), nil
}

func (s *ingredientService) GetIngredients(ctx context.Context, userID string) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.GetIngredients(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		result = append(result, ingredientResponse(ingredient))
	}
	return result, nil
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, id string, req domain.UpdateIngredientRequest, userID string) error {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}

	// Shared catalog ingredients cannot be edited by users.
	if ingredient.UserID == nil || ingredient.UserID.String() != userID {
		return domain.ErrUnauthorizedIngredientAccess
	}

	if req.Name != "" {
		ingredient.Name = req.Name
	}
	if req.Unit != "" {
		ingredient.Unit = req.Unit
	}
	if req.MinimumQuantity > 0 {
		ingredient.MinimumQuantity = req.MinimumQuantity
	}
	if req.PurchaseQuantity > 0 {
		ingredient.PurchaseQuantity = req.PurchaseQuantity
	}
	if req.Life > 0 {
		ingredient.Life = req.Life
	}

	return s.ingredientRepository.UpdateIngredient(ctx, ingredient)
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, id string, userID string) error {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}

	if ingredient.UserID == nil || ingredient.UserID.String() != userID {
		return domain.ErrUnauthorizedIngredientAccess
	}

	return s.ingredientRepository.DeleteIngredient(ctx, id)
}

func (s *ingredientService) SearchIngredients(ctx context.Context, userID string, query string) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.SearchIngredients(ctx, userID, query)
	if err != nil {
		return nil, err
	}

	result := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		result = append(result, ingredientResponse(ingredient))
	}
	return result, nil
}

func (s *ingredientService) AddSchedule(ctx context.Context, req domain.AddIngredientScheduleRequest, userID string) (domain.IngredientScheduleResponse, error) {
	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return domain.IngredientScheduleResponse{}, domain.ErrInvalidDateFormat
	}

	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, req.IngredientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientScheduleResponse{}, domain.ErrIngredientNotFound
		}
		return domain.IngredientScheduleResponse{}, err
	}

	if ingredient.UserID != nil && ingredient.UserID.String() != userID {
		return domain.IngredientScheduleResponse{}, domain.ErrUnauthorizedIngredientAccess
	}

	// An unmetered ingredient has nothing to purchase on a recurring basis.
	if ingredient.PurchaseQuantity <= 0 {
		return domain.IngredientScheduleResponse{}, domain.ErrIngredientNotPurchasable
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.IngredientScheduleResponse{}, domain.ErrParseUUID
	}

	schedule := &entities.IngredientSchedule{
		ID:           uuid.New(),
		UserID:       userUUID,
		IngredientID: ingredient.ID,
		StartDate:    startDate,
		Interval:     req.Interval,
	}

	if err := s.ingredientRepository.AddSchedule(ctx, schedule); err != nil {
		return domain.IngredientScheduleResponse{}, err
	}

	return domain.IngredientScheduleResponse{
		ID:         schedule.ID.String(),
		Ingredient: ingredientResponse(ingredient),
		StartDate:  utils.FormatDate(startDate),
		Interval:   schedule.Interval,
	}, nil
}

func (s *ingredientService) GetSchedules(ctx context.Context, userID string) ([]domain.IngredientScheduleResponse, error) {
	schedules, err := s.ingredientRepository.GetSchedules(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.IngredientScheduleResponse, 0, len(schedules))
	for _, schedule := range schedules {
		response := domain.IngredientScheduleResponse{
			ID:        schedule.ID.String(),
			StartDate: utils.FormatDate(schedule.StartDate),
			Interval:  schedule.Interval,
		}
		if schedule.Ingredient != nil {
			response.Ingredient = ingredientResponse(schedule.Ingredient)
		}
		result = append(result, response)
	}
	return result, nil
}

func (s *ingredientService) DeleteSchedule(ctx context.Context, id string, userID string) error {
	schedule, err := s.ingredientRepository.GetScheduleByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrScheduleNotFound
		}
		return err
	}

	if schedule.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	return s.ingredientRepository.DeleteSchedule(ctx, id)
}

func ingredientResponse(ingredient *entities.Ingredient) domain.IngredientResponse {
	return domain.IngredientResponse{
		ID:               ingredient.ID.String(),
		Name:             ingredient.Name,
		Unit:             ingredient.Unit,
		MinimumQuantity:  ingredient.MinimumQuantity,
		PurchaseQuantity: ingredient.PurchaseQuantity,
		Life:             ingredient.Life,
	}
}
