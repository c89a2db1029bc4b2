// Package gamification holds the XP, level and coin formulas. Every number
// the server persists comes from here; the client package reuses the same
// functions for preview estimates.
package gamification

// CalculateXP returns the XP earned for one logged exercise, given the rep
// volume (or rep equivalent for timed exercises), the user's streak and
// whether this is the first workout of the day. The result is truncated,
// never rounded up.
func CalculateXP(baseXP, difficulty, reps, streakDays int, isFirstToday bool) int {
	// 1.0, 1.25, 1.5, 1.75, 2.0 for difficulty 1-5
	difficultyMult := 1 + float64(difficulty-1)*0.25

	// Diminishing returns above 20 reps
	var volumeMult float64
	if reps <= 20 {
		volumeMult = 1 + float64(reps)*0.02
	} else {
		volumeMult = 1.4 + float64(reps-20)*0.01
	}

	streakMult := StreakMultiplier(streakDays)

	firstBonus := 1.0
	if isFirstToday {
		firstBonus = 1.2
	}

	xp := float64(baseXP) * difficultyMult * volumeMult * streakMult * firstBonus
	return int(xp)
}

// StreakMultiplier caps at ~1.5 for a 30+ day streak.
func StreakMultiplier(streakDays int) float64 {
	if streakDays > 30 {
		streakDays = 30
	}
	return 1 + float64(streakDays)*0.0167
}

// CalculateCoins computes coins for a completed workout. Coins are scarce:
// at most 6 per workout regardless of input.
//
// Sources:
//   - 1 coin if the workout earned 500+ XP
//   - 1 coin per full week of streak, capped at 4
//   - 1 coin if the workout lasted 45+ minutes
func CalculateCoins(xpEarned, streakDays, durationMinutes int) int {
	coins := 0

	if xpEarned >= 500 {
		coins++
	}

	weeks := streakDays / 7
	if weeks > 4 {
		weeks = 4
	}
	coins += weeks

	if durationMinutes >= 45 {
		coins++
	}

	return coins
}

// EstimateXP is the client-side preview: same base formula with streak and
// first-workout bonuses omitted, since the client does not own that state.
// The value is for display only and is never persisted.
func EstimateXP(baseXP, difficulty, reps int) int {
	return CalculateXP(baseXP, difficulty, reps, 0, false)
}

// XPForLevel returns the total XP required to reach a level.
//
//	Level 1: 0, Level 2: 100, Level 3: 400, Level 4: 900
func XPForLevel(level int) int {
	lvl := level - 1
	return 100 * lvl * lvl
}

// LevelFromXP returns the highest level whose threshold is at or below
// totalXP. XP exactly on a threshold counts as the higher level.
func LevelFromXP(totalXP int) int {
	level := 1
	for XPForLevel(level+1) <= totalXP {
		level++
	}
	return level
}

// LevelProgress describes where totalXP sits inside the current level.
type LevelProgress struct {
	Level           int `json:"level"`
	CurrentLevelXP  int `json:"current_level_xp"`
	NextLevelXP     int `json:"next_level_xp"`
	XPInLevel       int `json:"xp_in_level"`
	XPNeeded        int `json:"xp_needed"`
	ProgressPercent int `json:"progress_percent"`
}

// GetLevelProgress computes the progress view for a total XP amount.
// ProgressPercent is floored and clamped to [0, 100].
func GetLevelProgress(totalXP int) LevelProgress {
	level := LevelFromXP(totalXP)
	currentLevelXP := XPForLevel(level)
	nextLevelXP := XPForLevel(level + 1)
	xpInLevel := totalXP - currentLevelXP
	xpNeeded := nextLevelXP - currentLevelXP

	percent := xpInLevel * 100 / xpNeeded
	if percent > 100 {
		percent = 100
	}

	return LevelProgress{
		Level:           level,
		CurrentLevelXP:  currentLevelXP,
		NextLevelXP:     nextLevelXP,
		XPInLevel:       xpInLevel,
		XPNeeded:        xpNeeded,
		ProgressPercent: percent,
	}
}

// TimedRepEquivalent converts held seconds into the rep count used by the XP
// formula: 10 seconds counts as one rep, minimum one.
func TimedRepEquivalent(durationSeconds int) int {
	reps := durationSeconds / 10
	if reps < 1 {
		reps = 1
	}
	return reps
}
