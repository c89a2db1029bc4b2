package dto

import "time"

// ExerciseSetData is one exercise inside a submitted workout. Sets holds
// reps per set, or held seconds per set for timed exercises.
type ExerciseSetData struct {
	ExerciseSlug string `json:"exercise_slug" validate:"required"`
	Sets         []int  `json:"sets" validate:"required,min=1,dive,gt=0"`
	IsTimed      bool   `json:"is_timed"`
}

type SubmitWorkoutRequest struct {
	DurationSeconds int               `json:"duration_seconds" validate:"gte=0"`
	Exercises       []ExerciseSetData `json:"exercises" validate:"required,min=1,dive"`
}

func (r SubmitWorkoutRequest) Validate() error {
	return validate.Struct(r)
}

type WorkoutExerciseResponse struct {
	ID                   string `json:"id"`
	ExerciseID           string `json:"exercise_id"`
	ExerciseSlug         string `json:"exercise_slug"`
	ExerciseName         string `json:"exercise_name"`
	IsTimed              bool   `json:"is_timed"`
	SetsCompleted        int    `json:"sets_completed"`
	TotalReps            int    `json:"total_reps"`
	TotalDurationSeconds int    `json:"total_duration_seconds"`
	XPEarned             int    `json:"xp_earned"`
	CoinsEarned          int    `json:"coins_earned"`
}

type WorkoutResponse struct {
	ID                   string                    `json:"id"`
	StartedAt            time.Time                 `json:"started_at"`
	FinishedAt           *time.Time                `json:"finished_at"`
	DurationSeconds      int                       `json:"duration_seconds"`
	TotalXPEarned        int                       `json:"total_xp_earned"`
	TotalCoinsEarned     int                       `json:"total_coins_earned"`
	TotalReps            int                       `json:"total_reps"`
	TotalDurationSeconds int                       `json:"total_duration_seconds"`
	StreakMultiplier     float64                   `json:"streak_multiplier"`
	Status               string                    `json:"status"`
	Exercises            []WorkoutExerciseResponse `json:"exercises"`
}

// WorkoutSummaryResponse is the authoritative result of a submission; the
// client overwrites its local estimates with these values.
type WorkoutSummaryResponse struct {
	Workout         WorkoutResponse       `json:"workout"`
	NewAchievements []AchievementResponse `json:"new_achievements"`
	LevelUp         bool                  `json:"level_up"`
	NewLevel        *int                  `json:"new_level"`
	Streak          int                   `json:"streak"`
}

type TodayStatsResponse struct {
	WorkoutsCount        int `json:"workouts_count"`
	TotalXP              int `json:"total_xp"`
	TotalReps            int `json:"total_reps"`
	TotalDurationSeconds int `json:"total_duration_seconds"`
	ExercisesDone        int `json:"exercises_done"`
}
