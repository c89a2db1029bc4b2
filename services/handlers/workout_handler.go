package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/pixelfit-app/pixelfit_api/dto"
	"github.com/pixelfit-app/pixelfit_api/shared"
)

type WorkoutHandler struct {
	workoutSvc WorkoutServiceInterface
}

func NewWorkoutHandler(workoutSvc WorkoutServiceInterface) *WorkoutHandler {
	return &WorkoutHandler{workoutSvc: workoutSvc}
}

// @Summary Submit a completed workout
// @Description Score the submitted sets server-side and return the authoritative summary
// @Tags workouts
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param submitRequest body dto.SubmitWorkoutRequest true "Exercises and sets performed"
// @Success 201 {object} shared.Response{data=dto.WorkoutSummaryResponse}
// @Router /api/v1/workouts [post]
func (h *WorkoutHandler) SubmitWorkout(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.SubmitWorkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.workoutSvc.SubmitWorkout(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Workout recorded", resp)
}

// @Summary Get workout history
// @Tags workouts
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} shared.Response{data=[]dto.WorkoutResponse}
// @Router /api/v1/workouts [get]
func (h *WorkoutHandler) GetHistory(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	resp, err := h.workoutSvc.GetHistory(userID, limit, offset)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}

// @Summary Get a single workout
// @Tags workouts
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param id path string true "Workout ID"
// @Success 200 {object} shared.Response{data=dto.WorkoutResponse}
// @Router /api/v1/workouts/{id} [get]
func (h *WorkoutHandler) GetWorkout(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)
	workoutID := c.Params("id")

	resp, err := h.workoutSvc.GetWorkout(userID, workoutID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}

// @Summary Get today's totals
// @Tags workouts
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.TodayStatsResponse}
// @Router /api/v1/workouts/today [get]
func (h *WorkoutHandler) GetTodayStats(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.workoutSvc.GetTodayStats(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}
