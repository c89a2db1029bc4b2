package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/pixelfit-app/pixelfit_api/model"
	"gorm.io/gorm"
)

// NotificationRepository handles in-app notification persistence
type NotificationRepository struct {
	BaseRepository
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *NotificationRepository) Create(n *model.Notification) error {
	if n.ID == "" {
		id, _ := uuid.NewV7()
		n.ID = id.String()
	}
	n.CreatedAt = time.Now()
	return ds.db.Create(n).Error
}

func (ds *NotificationRepository) GetUserNotifications(userID string, limit, offset int) ([]model.Notification, error) {
	var notifications []model.Notification
	err := ds.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&notifications).Error
	return notifications, err
}

func (ds *NotificationRepository) CountUnread(userID string) (int, error) {
	var count int64
	err := ds.db.Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return int(count), err
}

// MarkRead is scoped to the owner so one user cannot touch another's inbox.
func (ds *NotificationRepository) MarkRead(userID, notificationID string) error {
	result := ds.db.Model(&model.Notification{}).
		Where("id = ? AND user_id = ?", notificationID, userID).
		Update("is_read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (ds *NotificationRepository) MarkAllRead(userID string) error {
	return ds.db.Model(&model.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}
