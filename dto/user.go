package dto

import (
	"time"

	"github.com/pixelfit-app/pixelfit_api/gamification"
)

type UserResponse struct {
	ID              string     `json:"id"`
	TelegramID      int64      `json:"telegram_id"`
	Username        string     `json:"username,omitempty"`
	FirstName       string     `json:"first_name,omitempty"`
	PhotoURL        string     `json:"photo_url,omitempty"`
	Level           int        `json:"level"`
	TotalXP         int        `json:"total_xp"`
	Coins           int        `json:"coins"`
	CurrentStreak   int        `json:"current_streak"`
	MaxStreak       int        `json:"max_streak"`
	LastWorkoutDate *time.Time `json:"last_workout_date"`
	CreatedAt       time.Time  `json:"created_at"`
}

type UpdateProfileRequest struct {
	NotificationsEnabled *bool  `json:"notifications_enabled"`
	ReminderTime         string `json:"reminder_time" validate:"omitempty,len=5"`
}

func (r UpdateProfileRequest) Validate() error {
	return validate.Struct(r)
}

// UserStatsResponse is the derived progress view: level thresholds and
// percent come from the formula engine, never stored.
type UserStatsResponse struct {
	UserID               string                     `json:"user_id"`
	Level                int                        `json:"level"`
	TotalXP              int                        `json:"total_xp"`
	Coins                int                        `json:"coins"`
	CurrentStreak        int                        `json:"current_streak"`
	MaxStreak            int                        `json:"max_streak"`
	StreakMultiplier     float64                    `json:"streak_multiplier"`
	Progress             gamification.LevelProgress `json:"progress"`
	TotalWorkouts        int                        `json:"total_workouts"`
	TotalReps            int                        `json:"total_reps"`
	TotalDurationSeconds int                        `json:"total_duration_seconds"`
	RecentAchievements   []AchievementResponse      `json:"recent_achievements"`
}
