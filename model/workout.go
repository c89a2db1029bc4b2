package model

import "time"

// WorkoutSession is one completed (or cancelled) workout. Totals are written
// once at submission by the workout service and never recomputed.
type WorkoutSession struct {
	ID                   string     `json:"id" gorm:"primaryKey"`
	UserID               string     `json:"user_id" gorm:"index;not null"`
	StartedAt            time.Time  `json:"started_at"`
	FinishedAt           *time.Time `json:"finished_at"`
	DurationSeconds      int        `json:"duration_seconds" gorm:"default:0"`
	TotalXPEarned        int        `json:"total_xp_earned" gorm:"default:0"`
	TotalCoinsEarned     int        `json:"total_coins_earned" gorm:"default:0"`
	TotalReps            int        `json:"total_reps" gorm:"default:0"`
	TotalDurationSeconds int        `json:"total_duration_seconds" gorm:"default:0"`
	StreakMultiplier     float64    `json:"streak_multiplier" gorm:"default:1"`
	Status               string     `json:"status" gorm:"default:completed"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`

	Exercises []WorkoutExercise `json:"exercises" gorm:"foreignKey:WorkoutSessionID"`
}

// WorkoutExercise is the per-exercise breakdown inside a session.
type WorkoutExercise struct {
	ID                   string    `json:"id" gorm:"primaryKey"`
	WorkoutSessionID     string    `json:"workout_session_id" gorm:"index;not null"`
	ExerciseID           string    `json:"exercise_id" gorm:"not null"`
	SetsCompleted        int       `json:"sets_completed" gorm:"default:0"`
	TotalReps            int       `json:"total_reps" gorm:"default:0"`
	TotalDurationSeconds int       `json:"total_duration_seconds" gorm:"default:0"`
	XPEarned             int       `json:"xp_earned" gorm:"default:0"`
	CoinsEarned          int       `json:"coins_earned" gorm:"default:0"`
	CreatedAt            time.Time `json:"created_at"`

	Exercise Exercise `json:"exercise" gorm:"foreignKey:ExerciseID"`
}
