package gamification

import "testing"

func TestXPForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 0},
		{2, 100},
		{3, 400},
		{4, 900},
		{10, 8100},
	}
	for _, tt := range tests {
		if got := XPForLevel(tt.level); got != tt.want {
			t.Errorf("XPForLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestXPForLevelMonotonic(t *testing.T) {
	for level := 1; level < 200; level++ {
		if XPForLevel(level+1) <= XPForLevel(level) {
			t.Fatalf("threshold for level %d not above level %d", level+1, level)
		}
	}
}

func TestLevelFromXP(t *testing.T) {
	tests := []struct {
		totalXP int
		want    int
	}{
		{0, 1},
		{99, 1},
		{100, 2}, // exactly on threshold rounds up
		{399, 2},
		{400, 3},
		{8100, 10},
	}
	for _, tt := range tests {
		if got := LevelFromXP(tt.totalXP); got != tt.want {
			t.Errorf("LevelFromXP(%d) = %d, want %d", tt.totalXP, got, tt.want)
		}
	}
}

func TestLevelFromXPBracketsTotalXP(t *testing.T) {
	for xp := 0; xp <= 20000; xp += 37 {
		level := LevelFromXP(xp)
		if XPForLevel(level) > xp {
			t.Fatalf("xp=%d: threshold for level %d above total", xp, level)
		}
		if XPForLevel(level+1) <= xp {
			t.Fatalf("xp=%d: should already be level %d", xp, level+1)
		}
	}
}

func TestGetLevelProgress(t *testing.T) {
	p := GetLevelProgress(250)
	if p.Level != 2 {
		t.Errorf("Level = %d, want 2", p.Level)
	}
	if p.CurrentLevelXP != 100 || p.NextLevelXP != 400 {
		t.Errorf("thresholds = %d/%d, want 100/400", p.CurrentLevelXP, p.NextLevelXP)
	}
	if p.XPInLevel != 150 || p.XPNeeded != 300 {
		t.Errorf("in-level = %d/%d, want 150/300", p.XPInLevel, p.XPNeeded)
	}
	if p.ProgressPercent != 50 {
		t.Errorf("ProgressPercent = %d, want 50", p.ProgressPercent)
	}
}

func TestGetLevelProgressBounds(t *testing.T) {
	for xp := 0; xp <= 50000; xp += 113 {
		p := GetLevelProgress(xp)
		if p.ProgressPercent < 0 || p.ProgressPercent > 100 {
			t.Fatalf("xp=%d: ProgressPercent %d out of range", xp, p.ProgressPercent)
		}
		if p.XPNeeded <= 0 {
			t.Fatalf("xp=%d: XPNeeded %d not positive", xp, p.XPNeeded)
		}
	}
}

func TestCalculateXP(t *testing.T) {
	// difficultyMult=1.25, streakMult=1.1169, volumeMult=1.4
	// floor(10 * 1.25 * 1.1169 * 1.4) = 19
	if got := CalculateXP(10, 2, 20, 7, false); got != 19 {
		t.Errorf("CalculateXP = %d, want 19", got)
	}
}

func TestCalculateXPTruncates(t *testing.T) {
	// 10 * 1.0 * 1.02 = 10.2 -> 10
	if got := CalculateXP(10, 1, 1, 0, false); got != 10 {
		t.Errorf("CalculateXP = %d, want 10", got)
	}
}

func TestCalculateXPFirstWorkoutBonus(t *testing.T) {
	base := CalculateXP(10, 3, 10, 0, false)
	bonus := CalculateXP(10, 3, 10, 0, true)
	if bonus <= base {
		t.Errorf("first-workout bonus not applied: %d <= %d", bonus, base)
	}
}

func TestCalculateXPMonotonic(t *testing.T) {
	for diff := 1; diff < 5; diff++ {
		if CalculateXP(10, diff+1, 10, 5, false) < CalculateXP(10, diff, 10, 5, false) {
			t.Errorf("XP decreased when difficulty rose from %d", diff)
		}
	}
	for reps := 1; reps < 60; reps++ {
		if CalculateXP(10, 3, reps+1, 5, false) < CalculateXP(10, 3, reps, 5, false) {
			t.Errorf("XP decreased when reps rose from %d", reps)
		}
	}
	for streak := 0; streak < 40; streak++ {
		if CalculateXP(10, 3, 10, streak+1, false) < CalculateXP(10, 3, 10, streak, false) {
			t.Errorf("XP decreased when streak rose from %d", streak)
		}
	}
}

func TestCalculateCoins(t *testing.T) {
	tests := []struct {
		name            string
		xp              int
		streakDays      int
		durationMinutes int
		want            int
	}{
		{"nothing earned", 100, 0, 20, 0},
		{"xp threshold", 500, 0, 20, 1},
		{"one week streak", 100, 7, 20, 1},
		{"streak cap", 100, 100, 20, 4},
		{"long workout", 100, 0, 45, 1},
		{"everything", 600, 28, 50, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateCoins(tt.xp, tt.streakDays, tt.durationMinutes); got != tt.want {
				t.Errorf("CalculateCoins(%d, %d, %d) = %d, want %d",
					tt.xp, tt.streakDays, tt.durationMinutes, got, tt.want)
			}
		})
	}
}

func TestCalculateCoinsUpperBound(t *testing.T) {
	for _, xp := range []int{0, 499, 500, 100000} {
		for _, streak := range []int{0, 6, 7, 27, 28, 365} {
			for _, dur := range []int{0, 44, 45, 600} {
				if got := CalculateCoins(xp, streak, dur); got > 6 {
					t.Fatalf("CalculateCoins(%d, %d, %d) = %d exceeds cap", xp, streak, dur, got)
				}
			}
		}
	}
}

func TestEstimateXPOmitsBonuses(t *testing.T) {
	if EstimateXP(10, 2, 20) != CalculateXP(10, 2, 20, 0, false) {
		t.Error("estimate should equal the bonus-free calculation")
	}
}

func TestStreakMultiplierCap(t *testing.T) {
	if StreakMultiplier(30) != StreakMultiplier(90) {
		t.Error("streak multiplier should cap at 30 days")
	}
}

func TestTimedRepEquivalent(t *testing.T) {
	tests := []struct {
		seconds int
		want    int
	}{
		{0, 1},
		{5, 1},
		{10, 1},
		{30, 3},
		{95, 9},
	}
	for _, tt := range tests {
		if got := TimedRepEquivalent(tt.seconds); got != tt.want {
			t.Errorf("TimedRepEquivalent(%d) = %d, want %d", tt.seconds, got, tt.want)
		}
	}
}
