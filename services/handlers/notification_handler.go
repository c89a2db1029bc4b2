package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/pixelfit-app/pixelfit_api/shared"
)

type NotificationHandler struct {
	notificationSvc NotificationServiceInterface
}

func NewNotificationHandler(notificationSvc NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{notificationSvc: notificationSvc}
}

// @Summary List notifications
// @Tags notifications
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param limit query int false "Page size (default 20, max 100)"
// @Param offset query int false "Offset"
// @Success 200 {object} shared.Response{data=[]dto.NotificationResponse}
// @Router /api/v1/notifications [get]
func (h *NotificationHandler) GetNotifications(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	resp, err := h.notificationSvc.List(userID, limit, offset)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}

// @Summary Count unread notifications
// @Tags notifications
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response{data=dto.UnreadCountResponse}
// @Router /api/v1/notifications/unread-count [get]
func (h *NotificationHandler) GetUnreadCount(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	resp, err := h.notificationSvc.UnreadCount(userID)
	if err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", resp)
}

// @Summary Mark a notification read
// @Tags notifications
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Param id path string true "Notification ID"
// @Success 200 {object} shared.Response
// @Router /api/v1/notifications/{id}/read [post]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)
	notificationID := c.Params("id")

	if err := h.notificationSvc.MarkRead(userID, notificationID); err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", nil)
}

// @Summary Mark all notifications read
// @Tags notifications
// @Produce json
// @Security Bearer
// @Param Authorization header string true "User Bearer Token" default(Bearer <user_token>)
// @Success 200 {object} shared.Response
// @Router /api/v1/notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	userID := c.Locals(shared.UserID).(string)

	if err := h.notificationSvc.MarkAllRead(userID); err != nil {
		return err
	}

	return shared.ResponseJSON(c, http.StatusOK, "Success", nil)
}
