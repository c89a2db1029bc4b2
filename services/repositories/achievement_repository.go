package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/pixelfit-app/pixelfit_api/model"
	"gorm.io/gorm"
)

// AchievementRepository handles achievement definitions and unlocks
type AchievementRepository struct {
	BaseRepository
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *AchievementRepository) GetActiveAchievements() ([]model.Achievement, error) {
	var achievements []model.Achievement
	err := ds.db.Where("is_active = ?", true).Find(&achievements).Error
	return achievements, err
}

func (ds *AchievementRepository) GetAchievementBySlug(slug string) (*model.Achievement, error) {
	var achievement model.Achievement
	if err := ds.db.Where("slug = ?", slug).First(&achievement).Error; err != nil {
		return nil, err
	}
	return &achievement, nil
}

func (ds *AchievementRepository) SaveAchievement(achievement *model.Achievement) error {
	if achievement.ID == "" {
		id, _ := uuid.NewV7()
		achievement.ID = id.String()
		achievement.CreatedAt = time.Now()
	}
	achievement.UpdatedAt = time.Now()
	return ds.db.Save(achievement).Error
}

func (ds *AchievementRepository) GetUserAchievements(userID string) ([]model.UserAchievement, error) {
	var unlocked []model.UserAchievement
	err := ds.db.Preload("Achievement").
		Where("user_id = ?", userID).
		Order("unlocked_at DESC").
		Find(&unlocked).Error
	return unlocked, err
}

func (ds *AchievementRepository) GetUnlockedAchievementIDs(userID string) (map[string]bool, error) {
	var ids []string
	err := ds.db.Model(&model.UserAchievement{}).
		Where("user_id = ?", userID).
		Pluck("achievement_id", &ids).Error
	if err != nil {
		return nil, err
	}

	unlocked := make(map[string]bool, len(ids))
	for _, id := range ids {
		unlocked[id] = true
	}
	return unlocked, nil
}

func (ds *AchievementRepository) UnlockAchievement(userID, achievementID string) error {
	id, _ := uuid.NewV7()
	return ds.db.Create(&model.UserAchievement{
		ID:            id.String(),
		UserID:        userID,
		AchievementID: achievementID,
		UnlockedAt:    time.Now(),
		CreatedAt:     time.Now(),
	}).Error
}
