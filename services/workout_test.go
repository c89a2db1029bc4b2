package services

import (
	"testing"
	"time"

	"github.com/pixelfit-app/pixelfit_api/gamification"
	"github.com/pixelfit-app/pixelfit_api/model"
)

func TestScoreExerciseReps(t *testing.T) {
	ex := &model.Exercise{Slug: "pushup", BaseXP: 10, Difficulty: 2}

	p := scoreExercise(ex, []int{20, 5}, 3, true)

	if p.totalReps != 25 {
		t.Errorf("totalReps = %d, want 25", p.totalReps)
	}
	if p.sets != 2 {
		t.Errorf("sets = %d, want 2", p.sets)
	}
	if p.bestSet != 20 {
		t.Errorf("bestSet = %d, want 20", p.bestSet)
	}
	if p.durationSeconds != 0 {
		t.Errorf("durationSeconds = %d, want 0", p.durationSeconds)
	}
	if want := gamification.CalculateXP(10, 2, 25, 3, true); p.xp != want {
		t.Errorf("xp = %d, want %d", p.xp, want)
	}
}

func TestScoreExerciseTimedAggregatesDuration(t *testing.T) {
	ex := &model.Exercise{Slug: "plank", BaseXP: 12, Difficulty: 2, IsTimed: true}

	// Two 15s holds are one 30s volume: 3 rep equivalents, not
	// max(1, 15/10) per set which would give 2.
	p := scoreExercise(ex, []int{15, 15}, 0, true)

	if p.totalReps != 0 {
		t.Errorf("totalReps = %d, want 0 for timed exercise", p.totalReps)
	}
	if p.durationSeconds != 30 {
		t.Errorf("durationSeconds = %d, want 30", p.durationSeconds)
	}
	if p.bestSet != 0 {
		t.Errorf("bestSet = %d, want 0 for timed exercise", p.bestSet)
	}
	if want := gamification.CalculateXP(12, 2, 3, 0, true); p.xp != want {
		t.Errorf("xp = %d, want %d", p.xp, want)
	}
	if perSet := gamification.CalculateXP(12, 2, 2, 0, true); p.xp == perSet {
		t.Error("timed XP priced per set instead of on the aggregate duration")
	}
}

func TestScoreExerciseStreakRaisesXP(t *testing.T) {
	ex := &model.Exercise{Slug: "squat", BaseXP: 10, Difficulty: 3}

	cold := scoreExercise(ex, []int{30}, 0, true)
	hot := scoreExercise(ex, []int{30}, 30, true)

	if hot.xp <= cold.xp {
		t.Errorf("streak 30 xp %d not above streak 0 xp %d", hot.xp, cold.xp)
	}
}

func TestBestSingleSet(t *testing.T) {
	tests := []struct {
		name string
		sets []int
		want int
	}{
		{"empty", nil, 0},
		{"single", []int{12}, 12},
		{"max not mean", []int{20, 5}, 20},
		{"later max", []int{5, 8, 30}, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bestSingleSet(tt.sets); got != tt.want {
				t.Errorf("bestSingleSet(%v) = %d, want %d", tt.sets, got, tt.want)
			}
		})
	}
}

func TestNextStreak(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	today := now.Add(-3 * time.Hour)
	threeDaysAgo := now.AddDate(0, 0, -3)

	tests := []struct {
		name        string
		current     int
		lastWorkout *time.Time
		want        int
	}{
		{"first ever workout", 0, nil, 1},
		{"same day repeat keeps streak", 5, &today, 5},
		{"same day with broken counter", 0, &today, 1},
		{"consecutive day extends", 5, &yesterday, 6},
		{"gap resets", 12, &threeDaysAgo, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextStreak(tt.current, tt.lastWorkout, now); got != tt.want {
				t.Errorf("nextStreak(%d, %v) = %d, want %d", tt.current, tt.lastWorkout, got, tt.want)
			}
		})
	}
}

func TestNextStreakMidnightBoundary(t *testing.T) {
	// A workout just before midnight followed by one just after is still a
	// consecutive-day extension, not a same-day repeat.
	lateNight := time.Date(2025, 6, 14, 23, 55, 0, 0, time.UTC)
	earlyMorning := time.Date(2025, 6, 15, 0, 10, 0, 0, time.UTC)

	if got := nextStreak(3, &lateNight, earlyMorning); got != 4 {
		t.Errorf("nextStreak across midnight = %d, want 4", got)
	}
}

func TestSameDay(t *testing.T) {
	ref := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	morning := time.Date(2025, 6, 15, 0, 0, 1, 0, time.UTC)
	prior := time.Date(2025, 6, 14, 23, 59, 59, 0, time.UTC)

	if !sameDay(&morning, ref) {
		t.Error("same calendar day not detected")
	}
	if sameDay(&prior, ref) {
		t.Error("previous day treated as same day")
	}
	if sameDay(nil, ref) {
		t.Error("nil time treated as same day")
	}
}
