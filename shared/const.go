package shared

const (
	UserID   = "user_id"
	UserRole = "user_role"

	CategoryPush    = "push"
	CategoryPull    = "pull"
	CategoryLegs    = "legs"
	CategoryCore    = "core"
	CategoryStatic  = "static"
	CategoryCardio  = "cardio"
	CategoryWarmup  = "warmup"
	CategoryStretch = "stretch"

	WorkoutStatusActive    = "active"
	WorkoutStatusCompleted = "completed"
	WorkoutStatusCancelled = "cancelled"

	ConditionTotalWorkouts = "total_workouts"
	ConditionStreak        = "streak"
	ConditionLevel         = "level"
	ConditionTotalXP       = "total_xp"
	ConditionExerciseReps  = "exercise_reps"
	ConditionTimeOfDay     = "time_of_day"

	ItemTypeAvatar = "avatar"
	ItemTypeTheme  = "theme"
	ItemTypeBadge  = "badge"

	PeriodWeekly  = "weekly"
	PeriodMonthly = "monthly"
	PeriodAllTime = "all_time"

	NotificationLevelUp       = "level_up"
	NotificationAchievement   = "achievement"
	NotificationGoalCompleted = "goal_completed"

	GoalTotalWorkouts  = "total_workouts"
	GoalTotalReps      = "total_reps"
	GoalTotalXP        = "total_xp"
	GoalWorkoutStreak  = "workout_streak"
	GoalExercisePrefix = "exercise_"
)
