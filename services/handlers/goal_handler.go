package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/pixelfit-app/pixelfit_api/dto"
	"github.com/pixelfit-app/pixelfit_api/shared"
)

type GoalHandler struct {
	goalSvc GoalServiceInterface
}

func NewGoalHandler(goalSvc GoalServiceInterface) *GoalHandler {
	return &GoalHandler{goalSvc: goalSvc}
}

// @Summary Create a personal goal
// @Description Set a target the workout pipeline advances automatically
// @Tags goals
// @Accept json
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param createRequest body dto.CreateGoalRequest true "Goal type and target"
// @Success 201 {object} shared.Response{data=dto.GoalResponse}
// @Router /api/v1/goals [post]
func (h *GoalHandler) CreateGoal(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	var req dto.CreateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return err
	}

	if err := req.Validate(); err != nil {
		validationResp := dto.CreateValidationErrorResponse(err)
		return c.Status(fiber.StatusBadRequest).JSON(validationResp)
	}

	resp, err := h.goalSvc.CreateGoal(userID, req)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusCreated, "Goal created", resp)
}

// @Summary List goals
// @Tags goals
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param active_only query bool false "Only incomplete goals still inside their window"
// @Success 200 {object} shared.Response{data=[]dto.GoalResponse}
// @Router /api/v1/goals [get]
func (h *GoalHandler) GetGoals(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)
	activeOnly := c.QueryBool("active_only", false)

	resp, err := h.goalSvc.ListGoals(userID, activeOnly)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}
