package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/pixelfit-app/pixelfit_api/model"
	"gorm.io/gorm"
)

// GoalRepository handles user goal persistence
type GoalRepository struct {
	BaseRepository
}

func NewGoalRepository(db *gorm.DB) *GoalRepository {
	return &GoalRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *GoalRepository) CreateGoal(goal *model.UserGoal) error {
	if goal.ID == "" {
		id, _ := uuid.NewV7()
		goal.ID = id.String()
	}
	goal.CreatedAt = time.Now()
	goal.UpdatedAt = time.Now()
	return ds.db.Create(goal).Error
}

func (ds *GoalRepository) SaveGoal(goal *model.UserGoal) error {
	goal.UpdatedAt = time.Now()
	return ds.db.Save(goal).Error
}

// GetActiveGoals returns incomplete goals whose window contains ref.
func (ds *GoalRepository) GetActiveGoals(userID string, ref time.Time) ([]model.UserGoal, error) {
	var goals []model.UserGoal
	err := ds.db.Where("user_id = ? AND completed = ? AND end_date >= ?", userID, false, ref).
		Order("created_at DESC").
		Find(&goals).Error
	return goals, err
}

func (ds *GoalRepository) GetUserGoals(userID string) ([]model.UserGoal, error) {
	var goals []model.UserGoal
	err := ds.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error
	return goals, err
}
