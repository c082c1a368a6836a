package handlers

import (
	"MealPlanner-Backend/domain"
	"MealPlanner-Backend/internal/api/presenters"
	"MealPlanner-Backend/internal/utils"
	"MealPlanner-Backend/pkg/mealplan"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MealplanHandler interface {
		AddMealDay(c *fiber.Ctx) error
		GetMealDays(c *fiber.Ctx) error
		DeleteMealDay(c *fiber.Ctx) error
		GetShoppingList(c *fiber.Ctx) error
	}

	mealplanHandler struct {
		mealplanService mealplan.MealplanService
		validator       *validator.Validate
	}
)

func NewMealplanHandler(mealplanService mealplan.MealplanService, validator *validator.Validate) MealplanHandler {
	return &mealplanHandler{
		mealplanService: mealplanService,
		validator:       validator,
	}
}

func (h *mealplanHandler) AddMealDay(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddMealDayRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMealDay, err)
	}

	res, err := h.mealplanService.AddMealDay(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddMealDay, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddMealDay)
}

func (h *mealplanHandler) GetMealDays(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	from, to, err := parseDateRange(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMealDays, err)
	}

	res, err := h.mealplanService.GetMealDays(c.Context(), userID, from, to)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMealDays, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMealDays)
}

func (h *mealplanHandler) DeleteMealDay(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	mealDayID := c.Params("id")

	if err := h.mealplanService.DeleteMealDay(c.Context(), mealDayID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteMealDay, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteMealDay)
}

func (h *mealplanHandler) GetShoppingList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	from, to, err := parseDateRange(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetShoppingList, err)
	}

	res, err := h.mealplanService.BuildShoppingList(c.Context(), userID, from, to)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetShoppingList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetShoppingList)
}

func parseDateRange(c *fiber.Ctx) (time.Time, time.Time, error) {
	from, err := utils.ParseDate(c.Query("from"))
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidDateFormat
	}

	to, err := utils.ParseDate(c.Query("to"))
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidDateFormat
	}

	if from.After(to) {
		return time.Time{}, time.Time{}, domain.ErrInvalidDateRange
	}

	return from, to, nil
}
