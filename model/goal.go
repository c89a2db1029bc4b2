package model

import "time"

// UserGoal is a self-set target the workout pipeline advances on every
// completed session. GoalType is one of the plain counters (total_workouts,
// total_reps, total_xp, workout_streak) or a composite
// exercise_{slug}_{metric} form targeting a single movement.
type UserGoal struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	UserID       string     `json:"user_id" gorm:"index;not null"`
	GoalType     string     `json:"goal_type" gorm:"not null"`
	TargetValue  int        `json:"target_value" gorm:"not null"`
	CurrentValue int        `json:"current_value" gorm:"default:0"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      time.Time  `json:"end_date"`
	Completed    bool       `json:"completed" gorm:"default:false"`
	CompletedAt  *time.Time `json:"completed_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
