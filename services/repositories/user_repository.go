package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/pixelfit-app/pixelfit_api/dto"
	"github.com/pixelfit-app/pixelfit_api/model"
	"gorm.io/gorm"
)

// UserRepository handles user-related database operations
type UserRepository struct {
	BaseRepository
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *UserRepository) GetUser(userID string) (*model.User, error) {
	var user model.User
	if err := ds.db.Where("id = ?", userID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (ds *UserRepository) GetUserByTelegramID(telegramID int64) (*model.User, error) {
	var user model.User
	if err := ds.db.Where("telegram_id = ?", telegramID).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (ds *UserRepository) CreateUser(tgUser dto.TelegramUser) (*model.User, error) {
	userID, _ := uuid.NewV7()
	user := &model.User{
		ID:                   userID.String(),
		TelegramID:           tgUser.ID,
		Username:             tgUser.Username,
		FirstName:            tgUser.FirstName,
		LastName:             tgUser.LastName,
		PhotoURL:             tgUser.PhotoURL,
		Role:                 model.RoleUser,
		Level:                1,
		TotalXP:              0,
		Coins:                0,
		NotificationsEnabled: true,
		IsActive:             true,
		CreatedAt:            time.Now(),
		UpdatedAt:            time.Now(),
	}

	if err := ds.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (ds *UserRepository) UpdateUser(user *model.User) error {
	user.UpdatedAt = time.Now()
	return ds.db.Save(user).Error
}

func (ds *UserRepository) UpdateTelegramProfile(user *model.User, tgUser dto.TelegramUser) error {
	return ds.db.Model(user).Updates(map[string]interface{}{
		"username":   tgUser.Username,
		"first_name": tgUser.FirstName,
		"last_name":  tgUser.LastName,
		"photo_url":  tgUser.PhotoURL,
		"updated_at": time.Now(),
	}).Error
}

// GetTopUsersByXP serves the all-time board; windowed boards are ranked by
// WorkoutRepository.TopXPEarnedSince instead.
func (ds *UserRepository) GetTopUsersByXP(limit int) ([]model.User, error) {
	var users []model.User
	err := ds.db.Where("is_active = ?", true).
		Order("total_xp DESC").Limit(limit).Find(&users).Error
	return users, err
}

func (ds *UserRepository) GetUsersByIDs(ids []string) ([]model.User, error) {
	var users []model.User
	err := ds.db.Where("id IN ? AND is_active = ?", ids, true).Find(&users).Error
	return users, err
}

// GetUserRankByXP returns the 1-based rank of a user on the all-time board.
func (ds *UserRepository) GetUserRankByXP(user *model.User) (int, error) {
	var ahead int64
	err := ds.db.Model(&model.User{}).
		Where("is_active = ? AND total_xp > ?", true, user.TotalXP).
		Count(&ahead).Error
	return int(ahead) + 1, err
}

func (ds *UserRepository) GetAdminByUsername(username string) (*model.AdminAccount, error) {
	var admin model.AdminAccount
	if err := ds.db.Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (ds *UserRepository) UpdateAdminLastLogin(adminID string) error {
	now := time.Now()
	return ds.db.Model(&model.AdminAccount{}).Where("id = ?", adminID).Updates(map[string]interface{}{
		"last_login": &now,
		"updated_at": now,
	}).Error
}
