package services

import (
	"errors"

	"github.com/alphabatem/common/context"
	"github.com/pixelfit-app/pixelfit_api/dto"
	"github.com/pixelfit-app/pixelfit_api/model"
	"github.com/pixelfit-app/pixelfit_api/shared"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pixelfit-app/pixelfit_api/services/repositories"
)

// NotificationService writes and serves the in-app inbox. The workout
// pipeline creates entries for level-ups, achievement unlocks and completed
// goals; the mini-app polls the unread count.
type NotificationService struct {
	context.DefaultService

	notificationRepo *repositories.NotificationRepository
}

const NOTIFICATION_SVC = "notification_svc"

func (svc NotificationService) Id() string {
	return NOTIFICATION_SVC
}

func (svc *NotificationService) Start() error {
	db, err := resolveDB(svc)
	if err != nil {
		return err
	}
	svc.notificationRepo = repositories.NewNotificationRepository(db)
	return nil
}

// Notify records an inbox entry. A failed write is logged and swallowed; a
// lost notification must never fail the workout that produced it.
func (svc *NotificationService) Notify(userID, notifType, title, message string) {
	n := &model.Notification{
		UserID:  userID,
		Type:    notifType,
		Title:   title,
		Message: message,
	}
	if err := svc.notificationRepo.Create(n); err != nil {
		log.WithError(err).WithFields(log.Fields{
			"user_id": userID,
			"type":    notifType,
		}).Warn("Failed to save notification")
	}
}

func (svc *NotificationService) List(userID string, limit, offset int) ([]dto.NotificationResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	notifications, err := svc.notificationRepo.GetUserNotifications(userID, limit, offset)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, notificationToResponse(&notifications[i]))
	}
	return responses, nil
}

func (svc *NotificationService) UnreadCount(userID string) (*dto.UnreadCountResponse, error) {
	count, err := svc.notificationRepo.CountUnread(userID)
	if err != nil {
		return nil, err
	}
	return &dto.UnreadCountResponse{Count: count}, nil
}

func (svc *NotificationService) MarkRead(userID, notificationID string) error {
	err := svc.notificationRepo.MarkRead(userID, notificationID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.NewNotFoundError(err, "Notification not found")
	}
	return err
}

func (svc *NotificationService) MarkAllRead(userID string) error {
	return svc.notificationRepo.MarkAllRead(userID)
}

func notificationToResponse(n *model.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}
