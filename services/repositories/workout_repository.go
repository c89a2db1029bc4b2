package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/pixelfit-app/pixelfit_api/model"
	"github.com/pixelfit-app/pixelfit_api/shared"
	"gorm.io/gorm"
)

// WorkoutRepository handles workout session persistence
type WorkoutRepository struct {
	BaseRepository
}

func NewWorkoutRepository(db *gorm.DB) *WorkoutRepository {
	return &WorkoutRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

func (ds *WorkoutRepository) CreateSession(session *model.WorkoutSession) error {
	if session.ID == "" {
		id, _ := uuid.NewV7()
		session.ID = id.String()
	}
	session.CreatedAt = time.Now()
	session.UpdatedAt = time.Now()
	return ds.db.Create(session).Error
}

func (ds *WorkoutRepository) UpdateSession(session *model.WorkoutSession) error {
	session.UpdatedAt = time.Now()
	return ds.db.Save(session).Error
}

func (ds *WorkoutRepository) CreateWorkoutExercise(we *model.WorkoutExercise) error {
	if we.ID == "" {
		id, _ := uuid.NewV7()
		we.ID = id.String()
	}
	we.CreatedAt = time.Now()
	return ds.db.Create(we).Error
}

func (ds *WorkoutRepository) GetSession(sessionID string) (*model.WorkoutSession, error) {
	var session model.WorkoutSession
	err := ds.db.Preload("Exercises").Preload("Exercises.Exercise").
		Where("id = ?", sessionID).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (ds *WorkoutRepository) GetUserSessions(userID string, limit, offset int) ([]model.WorkoutSession, error) {
	var sessions []model.WorkoutSession
	err := ds.db.Preload("Exercises").Preload("Exercises.Exercise").
		Where("user_id = ? AND status = ?", userID, shared.WorkoutStatusCompleted).
		Order("started_at DESC").
		Limit(limit).Offset(offset).
		Find(&sessions).Error
	return sessions, err
}

func (ds *WorkoutRepository) CountCompletedWorkouts(userID string) (int, error) {
	var count int64
	err := ds.db.Model(&model.WorkoutSession{}).
		Where("user_id = ? AND status = ?", userID, shared.WorkoutStatusCompleted).
		Count(&count).Error
	return int(count), err
}

func (ds *WorkoutRepository) GetLastCompletedWorkout(userID string) (*model.WorkoutSession, error) {
	var session model.WorkoutSession
	err := ds.db.Where("user_id = ? AND status = ?", userID, shared.WorkoutStatusCompleted).
		Order("finished_at DESC").First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (ds *WorkoutRepository) GetSessionsSince(userID string, since time.Time) ([]model.WorkoutSession, error) {
	var sessions []model.WorkoutSession
	err := ds.db.Preload("Exercises").
		Where("user_id = ? AND status = ? AND started_at >= ?", userID, shared.WorkoutStatusCompleted, since).
		Find(&sessions).Error
	return sessions, err
}

// LifetimeTotals sums reps and exercise time across all completed sessions.
func (ds *WorkoutRepository) LifetimeTotals(userID string) (reps int, durationSeconds int, err error) {
	type row struct {
		Reps     int
		Duration int
	}
	var r row
	err = ds.db.Model(&model.WorkoutSession{}).
		Select("COALESCE(SUM(total_reps), 0) AS reps, COALESCE(SUM(total_duration_seconds), 0) AS duration").
		Where("user_id = ? AND status = ?", userID, shared.WorkoutStatusCompleted).
		Scan(&r).Error
	return r.Reps, r.Duration, err
}

// UserWindowXP is one row of a windowed leaderboard: a user and the XP they
// earned from workouts inside the window.
type UserWindowXP struct {
	UserID string
	XP     int
}

// TopXPEarnedSince ranks users by workout XP earned inside a time window, for
// the weekly/monthly leaderboards. Ranking happens here so a user with a big
// week places even when their lifetime total is small.
func (ds *WorkoutRepository) TopXPEarnedSince(since time.Time, limit int) ([]UserWindowXP, error) {
	var rows []UserWindowXP
	err := ds.db.Model(&model.WorkoutSession{}).
		Select("user_id, SUM(total_xp_earned) AS xp").
		Where("status = ? AND finished_at >= ?", shared.WorkoutStatusCompleted, since).
		Group("user_id").
		Order("xp DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
