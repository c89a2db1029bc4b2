package services

import (
	"testing"
	"time"

	"github.com/pixelfit-app/pixelfit_api/model"
)

func TestParseExerciseGoal(t *testing.T) {
	tests := []struct {
		goalType string
		slug     string
		metric   string
		ok       bool
	}{
		{"exercise_pushup_reps", "pushup", "reps", true},
		{"exercise_wall-pushup_sets", "wall-pushup", "sets", true},
		{"exercise_plank_times", "plank", "times", true},
		{"exercise_pushup", "", "", false},
		{"exercise__reps", "", "", false},
		{"total_reps", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.goalType, func(t *testing.T) {
			slug, metric, ok := parseExerciseGoal(tt.goalType)
			if slug != tt.slug || metric != tt.metric || ok != tt.ok {
				t.Errorf("parseExerciseGoal(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.goalType, slug, metric, ok, tt.slug, tt.metric, tt.ok)
			}
		})
	}
}

func TestExerciseGoalDelta(t *testing.T) {
	exercises := []processedExercise{
		{exercise: &model.Exercise{Slug: "pushup"}, sets: 3, totalReps: 40},
		{exercise: &model.Exercise{Slug: "plank"}, sets: 2, durationSeconds: 60},
	}

	tests := []struct {
		goalType string
		want     int
	}{
		{"exercise_pushup_reps", 40},
		{"exercise_pushup_sets", 3},
		{"exercise_pushup_times", 1},
		{"exercise_plank_sets", 2},
		{"exercise_squat_reps", 0},
		{"exercise_pushup_minutes", 0},
		{"garbage", 0},
	}
	for _, tt := range tests {
		t.Run(tt.goalType, func(t *testing.T) {
			if got := exerciseGoalDelta(tt.goalType, exercises); got != tt.want {
				t.Errorf("exerciseGoalDelta(%q) = %d, want %d", tt.goalType, got, tt.want)
			}
		})
	}
}

func TestGoalToResponseProgressPercent(t *testing.T) {
	now := time.Now()
	goal := &model.UserGoal{ID: "g1", GoalType: "total_reps", TargetValue: 100, CurrentValue: 25, StartDate: now, EndDate: now.AddDate(0, 0, 7)}

	if got := goalToResponse(goal).ProgressPercent; got != 25 {
		t.Errorf("ProgressPercent = %v, want 25", got)
	}

	goal.CurrentValue = 250
	if got := goalToResponse(goal).ProgressPercent; got != 100 {
		t.Errorf("overshoot ProgressPercent = %v, want capped 100", got)
	}
}
