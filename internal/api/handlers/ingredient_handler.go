package handlers

import (
	"MealPlanner-Backend/domain"
	"MealPlanner-Backend/internal/api/presenters"
	"MealPlanner-Backend/pkg/ingredient"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	IngredientHandler interface {
		AddIngredient(c *fiber.Ctx) error
		GetIngredients(c *fiber.Ctx) error
		UpdateIngredient(c *fiber.Ctx) error
		DeleteIngredient(c *fiber.Ctx) error
		SearchIngredients(c *fiber.Ctx) error
		AddSchedule(c *fiber.Ctx) error
		GetSchedules(c *fiber.Ctx) error
		DeleteSchedule(c *fiber.Ctx) error
	}

	ingredientHandler struct {
		ingredientService ingredient.IngredientService
		validator         *validator.Validate
	}
)

func NewIngredientHandler(ingredientService ingredient.IngredientService, validator *validator.Validate) IngredientHandler {
	return &ingredientHandler{
		ingredientService: ingredientService,
		validator:         validator,
	}
}

func (h *ingredientHandler) AddIngredient(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddIngredientRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddIngredient, err)
	}

	res, err := h.ingredientService.AddIngredient(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddIngredient, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddIngredient)
}

func (h *ingredientHandler) GetIngredients(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.ingredientService.GetIngredients(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetIngredients, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetIngredients)
}

func (h *ingredientHandler) UpdateIngredient(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	ingredientID := c.Params("id")
	req := new(domain.UpdateIngredientRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateIngredient, err)
	}

	if err := h.ingredientService.UpdateIngredient(c.Context(), ingredientID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateIngredient, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdateIngredient)
}

func (h *ingredientHandler) DeleteIngredient(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	ingredientID := c.Params("id")

	if err := h.ingredientService.DeleteIngredient(c.Context(), ingredientID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteIngredient, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteIngredient)
}

func (h *ingredientHandler) SearchIngredients(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	query := c.Query("q")

	res, err := h.ingredientService.SearchIngredients(c.Context(), userID, query)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchIngredient, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearchIngredient)
}

func (h *ingredientHandler) AddSchedule(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddIngredientScheduleRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddSchedule, err)
	}

	res, err := h.ingredientService.AddSchedule(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddSchedule, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddSchedule)
}

func (h *ingredientHandler) GetSchedules(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.ingredientService.GetSchedules(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSchedules, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSchedules)
}

func (h *ingredientHandler) DeleteSchedule(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	scheduleID := c.Params("id")

	if err := h.ingredientService.DeleteSchedule(c.Context(), scheduleID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteSchedule, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteSchedule)
}
