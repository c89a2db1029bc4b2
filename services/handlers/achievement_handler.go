package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/pixelfit-app/pixelfit_api/shared"
)

type AchievementHandler struct {
	achievementSvc AchievementServiceInterface
}

func NewAchievementHandler(achievementSvc AchievementServiceInterface) *AchievementHandler {
	return &AchievementHandler{achievementSvc: achievementSvc}
}

// @Summary List achievements
// @Description Full achievement catalog with the caller's unlock state
// @Tags achievements
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=[]dto.AchievementResponse}
// @Router /api/v1/achievements [get]
func (h *AchievementHandler) GetAchievements(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.achievementSvc.ListForUser(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}
