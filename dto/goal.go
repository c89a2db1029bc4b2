package dto

import "time"

// CreateGoalRequest sets a personal target. GoalType is one of the plain
// counters or an exercise_{slug}_{metric} composite; composites are validated
// in the service against the exercise catalog.
type CreateGoalRequest struct {
	GoalType     string `json:"goal_type" validate:"required"`
	TargetValue  int    `json:"target_value" validate:"required,gt=0"`
	DurationDays int    `json:"duration_days" validate:"omitempty,gt=0,max=365"`
}

func (r CreateGoalRequest) Validate() error {
	return validate.Struct(r)
}

type GoalResponse struct {
	ID              string     `json:"id"`
	GoalType        string     `json:"goal_type"`
	TargetValue     int        `json:"target_value"`
	CurrentValue    int        `json:"current_value"`
	ProgressPercent float64    `json:"progress_percent"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         time.Time  `json:"end_date"`
	Completed       bool       `json:"completed"`
	CompletedAt     *time.Time `json:"completed_at"`
	CreatedAt       time.Time  `json:"created_at"`
}
