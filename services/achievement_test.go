package services

import (
	"testing"
	"time"

	"github.com/pixelfit-app/pixelfit_api/model"
	"github.com/pixelfit-app/pixelfit_api/shared"
)

func TestConditionMet(t *testing.T) {
	at := func(hour, minute int) time.Time {
		return time.Date(2025, 6, 15, hour, minute, 0, 0, time.UTC)
	}

	tests := []struct {
		name  string
		cond  model.AchievementCondition
		facts conditionFacts
		want  bool
	}{
		{"workouts below threshold",
			model.AchievementCondition{Type: shared.ConditionTotalWorkouts, Value: 10},
			conditionFacts{TotalWorkouts: 9}, false},
		{"workouts at threshold",
			model.AchievementCondition{Type: shared.ConditionTotalWorkouts, Value: 10},
			conditionFacts{TotalWorkouts: 10}, true},

		{"streak met",
			model.AchievementCondition{Type: shared.ConditionStreak, Value: 7},
			conditionFacts{Streak: 8}, true},
		{"streak not met",
			model.AchievementCondition{Type: shared.ConditionStreak, Value: 7},
			conditionFacts{Streak: 6}, false},

		{"level met",
			model.AchievementCondition{Type: shared.ConditionLevel, Value: 5},
			conditionFacts{Level: 5}, true},

		{"total xp met",
			model.AchievementCondition{Type: shared.ConditionTotalXP, Value: 10000},
			conditionFacts{TotalXP: 12500}, true},

		{"exercise reps met",
			model.AchievementCondition{Type: shared.ConditionExerciseReps, Value: 500, Exercise: "*pushup"},
			conditionFacts{ExerciseReps: 500}, true},
		{"exercise reps not met",
			model.AchievementCondition{Type: shared.ConditionExerciseReps, Value: 500, Exercise: "*pushup"},
			conditionFacts{ExerciseReps: 499}, false},

		{"before window hit",
			model.AchievementCondition{Type: shared.ConditionTimeOfDay, Before: "07:00"},
			conditionFacts{CompletedAt: at(6, 30)}, true},
		{"before window missed",
			model.AchievementCondition{Type: shared.ConditionTimeOfDay, Before: "07:00"},
			conditionFacts{CompletedAt: at(7, 0)}, false},
		{"after window hit",
			model.AchievementCondition{Type: shared.ConditionTimeOfDay, After: "23:00"},
			conditionFacts{CompletedAt: at(23, 30)}, true},
		{"after window missed",
			model.AchievementCondition{Type: shared.ConditionTimeOfDay, After: "23:00"},
			conditionFacts{CompletedAt: at(22, 59)}, false},
		{"time of day with no bounds never fires",
			model.AchievementCondition{Type: shared.ConditionTimeOfDay},
			conditionFacts{CompletedAt: at(12, 0)}, false},

		{"unknown type never fires",
			model.AchievementCondition{Type: "perfect_form", Value: 1},
			conditionFacts{TotalWorkouts: 100}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := conditionMet(tt.cond, tt.facts); got != tt.want {
				t.Errorf("conditionMet(%+v, %+v) = %v, want %v", tt.cond, tt.facts, got, tt.want)
			}
		})
	}
}
