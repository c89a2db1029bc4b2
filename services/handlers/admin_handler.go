package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/pixelfit-app/pixelfit_api/dto"
	"github.com/pixelfit-app/pixelfit_api/model"
	"github.com/pixelfit-app/pixelfit_api/shared"
)

type AdminHandler struct {
	exerciseSvc ExerciseServiceInterface
	shopSvc     ShopServiceInterface
}

func NewAdminHandler(exerciseSvc ExerciseServiceInterface, shopSvc ShopServiceInterface) *AdminHandler {
	return &AdminHandler{
		exerciseSvc: exerciseSvc,
		shopSvc:     shopSvc,
	}
}

// @Summary Create or update an exercise
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param exerciseRequest body dto.CreateExerciseRequest true "Exercise definition"
// @Success 200 {object} shared.Response{data=nil}
// @Router /api/v1/admin/exercises [post]
func (h *AdminHandler) SaveExercise(c *fiber.Ctx) error {
	var req dto.CreateExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	exercise := &model.Exercise{
		ID:                 req.ID,
		Slug:               req.Slug,
		CategoryID:         req.CategoryID,
		Name:               req.Name,
		Description:        req.Description,
		Icon:               req.Icon,
		Difficulty:         req.Difficulty,
		BaseXP:             req.BaseXP,
		IsTimed:            req.IsTimed,
		RequiredLevel:      req.RequiredLevel,
		EasierExerciseSlug: req.EasierExerciseSlug,
		HarderExerciseSlug: req.HarderExerciseSlug,
		IsActive:           true,
	}
	if req.RequiredLevel == 0 {
		exercise.RequiredLevel = 1
	}
	if req.IsActive != nil {
		exercise.IsActive = *req.IsActive
	}

	if err := h.exerciseSvc.SaveExercise(exercise); err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Exercise saved", nil)
}

// @Summary Create or update a shop item
// @Tags admin
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "Admin Bearer Token" default(Bearer <admin_token>)
// @Param itemRequest body dto.CreateShopItemRequest true "Shop item definition"
// @Success 200 {object} shared.Response{data=nil}
// @Router /api/v1/admin/shop/items [post]
func (h *AdminHandler) SaveShopItem(c *fiber.Ctx) error {
	var req dto.CreateShopItemRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	item := &model.ShopItem{
		ID:            req.ID,
		Slug:          req.Slug,
		Name:          req.Name,
		ItemType:      req.ItemType,
		PriceCoins:    req.PriceCoins,
		RequiredLevel: req.RequiredLevel,
		IsActive:      true,
	}
	if req.RequiredLevel == 0 {
		item.RequiredLevel = 1
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := h.shopSvc.SaveItem(item); err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Shop item saved", nil)
}
