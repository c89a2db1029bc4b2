package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/pixelfit-app/pixelfit_api/dto"
	"github.com/pixelfit-app/pixelfit_api/shared"
)

type ExerciseHandler struct {
	exerciseSvc ExerciseServiceInterface
}

func NewExerciseHandler(exerciseSvc ExerciseServiceInterface) *ExerciseHandler {
	return &ExerciseHandler{exerciseSvc: exerciseSvc}
}

// @Summary List exercise categories
// @Tags exercises
// @Produce json
// @Success 200 {object} shared.Response{data=[]dto.CategoryResponse}
// @Router /api/v1/exercises/categories [get]
func (h *ExerciseHandler) GetCategories(c *fiber.Ctx) error {
	resp, err := h.exerciseSvc.GetCategories()
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}

// @Summary List exercises
// @Description Catalog with lock state for the caller's level. Filterable by category, difficulty and name
// @Tags exercises
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param category query string false "Category slug"
// @Param difficulty query int false "Difficulty 1-5"
// @Param query query string false "Name search"
// @Success 200 {object} shared.Response{data=[]dto.ExerciseResponse}
// @Router /api/v1/exercises [get]
func (h *ExerciseHandler) GetExercises(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.SearchExercisesRequest
	if err := c.QueryParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.exerciseSvc.GetExercises(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}

// @Summary Get exercise details
// @Tags exercises
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param slug path string true "Exercise slug"
// @Success 200 {object} shared.Response{data=dto.ExerciseResponse}
// @Router /api/v1/exercises/{slug} [get]
func (h *ExerciseHandler) GetExercise(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)
	slug := c.Params("slug")

	resp, err := h.exerciseSvc.GetExercise(userID, slug)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}

// @Summary Get per-exercise progress
// @Tags exercises
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=[]dto.ExerciseProgressResponse}
// @Router /api/v1/exercises/progress [get]
func (h *ExerciseHandler) GetProgress(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.exerciseSvc.GetProgress(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}

// @Summary Toggle favorite
// @Tags exercises
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param slug path string true "Exercise slug"
// @Success 200 {object} shared.Response{data=dto.FavoriteResponse}
// @Router /api/v1/exercises/{slug}/favorite [post]
func (h *ExerciseHandler) ToggleFavorite(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)
	slug := c.Params("slug")

	resp, err := h.exerciseSvc.ToggleFavorite(userID, slug)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}
