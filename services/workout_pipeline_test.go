package services

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/pixelfit-app/pixelfit_api/dto"
	"github.com/pixelfit-app/pixelfit_api/gamification"
	"github.com/pixelfit-app/pixelfit_api/model"
	"github.com/pixelfit-app/pixelfit_api/shared"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pixelfit-app/pixelfit_api/services/repositories"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Skipf("sqlite unavailable: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.ExerciseCategory{},
		&model.Exercise{},
		&model.UserExerciseProgress{},
		&model.WorkoutSession{},
		&model.WorkoutExercise{},
		&model.Achievement{},
		&model.UserAchievement{},
		&model.UserGoal{},
		&model.Notification{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// newWorkoutTestService wires the pipeline against a test database. The
// monitoring service records into package-level metrics, so the zero value
// works without Configure.
func newWorkoutTestService(db *gorm.DB) *WorkoutService {
	notifSvc := &NotificationService{
		notificationRepo: repositories.NewNotificationRepository(db),
	}
	goalSvc := &GoalService{
		notificationSvc: notifSvc,
		goalRepo:        repositories.NewGoalRepository(db),
		exerciseRepo:    repositories.NewExerciseRepository(db),
	}
	achievementSvc := &AchievementService{
		achievementRepo: repositories.NewAchievementRepository(db),
		exerciseRepo:    repositories.NewExerciseRepository(db),
		userRepo:        repositories.NewUserRepository(db),
	}
	return &WorkoutService{
		achievementSvc:  achievementSvc,
		goalSvc:         goalSvc,
		notificationSvc: notifSvc,
		monitoringSvc:   &MonitoringService{},
		userRepo:        repositories.NewUserRepository(db),
		exerciseRepo:    repositories.NewExerciseRepository(db),
		workoutRepo:     repositories.NewWorkoutRepository(db),
	}
}

func notificationsOfType(t *testing.T, db *gorm.DB, userID, notifType string) []model.Notification {
	t.Helper()
	var rows []model.Notification
	if err := db.Where("user_id = ? AND type = ?", userID, notifType).Find(&rows).Error; err != nil {
		t.Fatalf("load notifications: %v", err)
	}
	return rows
}

func TestSubmitWorkoutPricesRewardsBeforeStreakAdvance(t *testing.T) {
	db := openTestDB(t)
	svc := newWorkoutTestService(db)

	yesterday := time.Now().AddDate(0, 0, -1)
	user := &model.User{
		ID: "u1", TelegramID: 1, Level: 1,
		CurrentStreak: 6, MaxStreak: 6, LastWorkoutDate: &yesterday,
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	db.Create(&model.Exercise{ID: "e1", Slug: "pushup", CategoryID: "c1", Name: "Push-up", BaseXP: 10, Difficulty: 2, IsActive: true})

	resp, err := svc.SubmitWorkout("u1", dto.SubmitWorkoutRequest{
		DurationSeconds: 600,
		Exercises:       []dto.ExerciseSetData{{ExerciseSlug: "pushup", Sets: []int{10}}},
	})
	if err != nil {
		t.Fatalf("SubmitWorkout: %v", err)
	}

	// XP, coins and the stored multiplier all price off the 6-day streak the
	// user walked in with; today's extension to 7 only lands afterwards.
	wantXP := gamification.CalculateXP(10, 2, 10, 6, true)
	if resp.Workout.TotalXPEarned != wantXP {
		t.Errorf("TotalXPEarned = %d, want %d", resp.Workout.TotalXPEarned, wantXP)
	}
	if want := gamification.StreakMultiplier(6); resp.Workout.StreakMultiplier != want {
		t.Errorf("StreakMultiplier = %v, want %v", resp.Workout.StreakMultiplier, want)
	}
	// A 6-day streak has no full week yet; pricing off the advanced streak
	// would mint a weekly coin here.
	if resp.Workout.TotalCoinsEarned != 0 {
		t.Errorf("TotalCoinsEarned = %d, want 0", resp.Workout.TotalCoinsEarned)
	}
	if resp.Streak != 7 {
		t.Errorf("summary streak = %d, want 7", resp.Streak)
	}

	var saved model.User
	if err := db.First(&saved, "id = ?", "u1").Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if saved.CurrentStreak != 7 || saved.MaxStreak != 7 {
		t.Errorf("streak = %d/%d, want 7/7", saved.CurrentStreak, saved.MaxStreak)
	}
}

func TestSubmitWorkoutFirstEverScoresWithZeroStreak(t *testing.T) {
	db := openTestDB(t)
	svc := newWorkoutTestService(db)

	db.Create(&model.User{ID: "u1", TelegramID: 1, Level: 1, IsActive: true})
	db.Create(&model.Exercise{ID: "e1", Slug: "squat", CategoryID: "c1", Name: "Squat", BaseXP: 8, Difficulty: 1, IsActive: true})

	resp, err := svc.SubmitWorkout("u1", dto.SubmitWorkoutRequest{
		DurationSeconds: 300,
		Exercises:       []dto.ExerciseSetData{{ExerciseSlug: "squat", Sets: []int{12}}},
	})
	if err != nil {
		t.Fatalf("SubmitWorkout: %v", err)
	}

	if want := gamification.CalculateXP(8, 1, 12, 0, true); resp.Workout.TotalXPEarned != want {
		t.Errorf("TotalXPEarned = %d, want %d", resp.Workout.TotalXPEarned, want)
	}
	if resp.Streak != 1 {
		t.Errorf("summary streak = %d, want 1", resp.Streak)
	}
}

func TestSubmitWorkoutTracksBestSingleSet(t *testing.T) {
	db := openTestDB(t)
	svc := newWorkoutTestService(db)

	db.Create(&model.User{ID: "u1", TelegramID: 1, Level: 1, IsActive: true})
	db.Create(&model.Exercise{ID: "e1", Slug: "pushup", CategoryID: "c1", Name: "Push-up", BaseXP: 10, Difficulty: 2, IsActive: true})
	db.Create(&model.Exercise{ID: "e2", Slug: "plank", CategoryID: "c1", Name: "Plank", BaseXP: 12, Difficulty: 2, IsTimed: true, IsActive: true})

	_, err := svc.SubmitWorkout("u1", dto.SubmitWorkoutRequest{
		DurationSeconds: 600,
		Exercises: []dto.ExerciseSetData{
			{ExerciseSlug: "pushup", Sets: []int{20, 5}},
			{ExerciseSlug: "plank", Sets: []int{15, 15}, IsTimed: true},
		},
	})
	if err != nil {
		t.Fatalf("SubmitWorkout: %v", err)
	}

	var pushup model.UserExerciseProgress
	if err := db.First(&pushup, "user_id = ? AND exercise_id = ?", "u1", "e1").Error; err != nil {
		t.Fatalf("load pushup progress: %v", err)
	}
	// The record is the strongest set, not the per-set mean (which would be
	// 12 for 20+5).
	if pushup.BestSingleSet != 20 {
		t.Errorf("BestSingleSet = %d, want 20", pushup.BestSingleSet)
	}
	if pushup.TotalRepsEver != 25 {
		t.Errorf("TotalRepsEver = %d, want 25", pushup.TotalRepsEver)
	}

	var plank model.UserExerciseProgress
	if err := db.First(&plank, "user_id = ? AND exercise_id = ?", "u1", "e2").Error; err != nil {
		t.Fatalf("load plank progress: %v", err)
	}
	if plank.BestSingleSet != 0 {
		t.Errorf("timed BestSingleSet = %d, want 0", plank.BestSingleSet)
	}
	if plank.TotalRepsEver != 0 {
		t.Errorf("timed TotalRepsEver = %d, want 0", plank.TotalRepsEver)
	}

	// A weaker follow-up must not lower the record.
	if _, err := svc.SubmitWorkout("u1", dto.SubmitWorkoutRequest{
		DurationSeconds: 300,
		Exercises:       []dto.ExerciseSetData{{ExerciseSlug: "pushup", Sets: []int{15, 15}}},
	}); err != nil {
		t.Fatalf("second SubmitWorkout: %v", err)
	}
	if err := db.First(&pushup, "user_id = ? AND exercise_id = ?", "u1", "e1").Error; err != nil {
		t.Fatalf("reload pushup progress: %v", err)
	}
	if pushup.BestSingleSet != 20 {
		t.Errorf("BestSingleSet after weaker workout = %d, want 20", pushup.BestSingleSet)
	}
}

func TestSubmitWorkoutAchievementCoinsOnSummary(t *testing.T) {
	db := openTestDB(t)
	svc := newWorkoutTestService(db)

	db.Create(&model.User{ID: "u1", TelegramID: 1, Level: 1, IsActive: true})
	db.Create(&model.Exercise{ID: "e1", Slug: "pushup", CategoryID: "c1", Name: "Push-up", BaseXP: 5, Difficulty: 1, IsActive: true})
	db.Create(&model.Achievement{
		ID: "a1", Slug: "first-workout", Name: "First Steps",
		Condition:  json.RawMessage(`{"type":"total_workouts","value":1}`),
		CoinReward: 25, IsActive: true,
	})

	resp, err := svc.SubmitWorkout("u1", dto.SubmitWorkoutRequest{
		DurationSeconds: 300,
		Exercises:       []dto.ExerciseSetData{{ExerciseSlug: "pushup", Sets: []int{5}}},
	})
	if err != nil {
		t.Fatalf("SubmitWorkout: %v", err)
	}

	if len(resp.NewAchievements) != 1 {
		t.Fatalf("NewAchievements = %d, want 1", len(resp.NewAchievements))
	}
	// Reward coins show on the summary, not only on the user balance.
	if resp.Workout.TotalCoinsEarned != 25 {
		t.Errorf("summary TotalCoinsEarned = %d, want 25", resp.Workout.TotalCoinsEarned)
	}

	var session model.WorkoutSession
	if err := db.First(&session, "id = ?", resp.Workout.ID).Error; err != nil {
		t.Fatalf("reload session: %v", err)
	}
	if session.TotalCoinsEarned != 25 {
		t.Errorf("stored TotalCoinsEarned = %d, want 25", session.TotalCoinsEarned)
	}

	var user model.User
	if err := db.First(&user, "id = ?", "u1").Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if user.Coins != 25 {
		t.Errorf("user coins = %d, want 25", user.Coins)
	}

	if rows := notificationsOfType(t, db, "u1", shared.NotificationAchievement); len(rows) != 1 {
		t.Errorf("achievement notifications = %d, want 1", len(rows))
	}
}

func TestSubmitWorkoutLevelUpBonusOnSummary(t *testing.T) {
	db := openTestDB(t)
	svc := newWorkoutTestService(db)

	db.Create(&model.User{ID: "u1", TelegramID: 1, Level: 1, TotalXP: 95, IsActive: true})
	db.Create(&model.Exercise{ID: "e1", Slug: "pushup", CategoryID: "c1", Name: "Push-up", BaseXP: 50, Difficulty: 1, IsActive: true})

	resp, err := svc.SubmitWorkout("u1", dto.SubmitWorkoutRequest{
		DurationSeconds: 300,
		Exercises:       []dto.ExerciseSetData{{ExerciseSlug: "pushup", Sets: []int{20}}},
	})
	if err != nil {
		t.Fatalf("SubmitWorkout: %v", err)
	}

	if !resp.LevelUp || resp.NewLevel == nil || *resp.NewLevel != 2 {
		t.Fatalf("LevelUp = %v, NewLevel = %v, want level 2", resp.LevelUp, resp.NewLevel)
	}
	if resp.Workout.TotalCoinsEarned != levelUpCoinBonus {
		t.Errorf("summary TotalCoinsEarned = %d, want %d", resp.Workout.TotalCoinsEarned, levelUpCoinBonus)
	}
	if rows := notificationsOfType(t, db, "u1", shared.NotificationLevelUp); len(rows) != 1 {
		t.Errorf("level-up notifications = %d, want 1", len(rows))
	}
}

func TestSubmitWorkoutAdvancesGoals(t *testing.T) {
	db := openTestDB(t)
	svc := newWorkoutTestService(db)

	db.Create(&model.User{ID: "u1", TelegramID: 1, Level: 1, IsActive: true})
	db.Create(&model.Exercise{ID: "e1", Slug: "pushup", CategoryID: "c1", Name: "Push-up", BaseXP: 5, Difficulty: 1, IsActive: true})

	now := time.Now()
	db.Create(&model.UserGoal{
		ID: "g1", UserID: "u1", GoalType: shared.GoalTotalReps,
		TargetValue: 30, StartDate: now, EndDate: now.AddDate(0, 0, 7),
	})
	db.Create(&model.UserGoal{
		ID: "g2", UserID: "u1", GoalType: shared.GoalTotalWorkouts,
		TargetValue: 5, StartDate: now, EndDate: now.AddDate(0, 0, 7),
	})

	resp, err := svc.SubmitWorkout("u1", dto.SubmitWorkoutRequest{
		DurationSeconds: 300,
		Exercises:       []dto.ExerciseSetData{{ExerciseSlug: "pushup", Sets: []int{20, 15}}},
	})
	if err != nil {
		t.Fatalf("SubmitWorkout: %v", err)
	}

	var repGoal model.UserGoal
	if err := db.First(&repGoal, "id = ?", "g1").Error; err != nil {
		t.Fatalf("reload rep goal: %v", err)
	}
	if repGoal.CurrentValue != 35 || !repGoal.Completed || repGoal.CompletedAt == nil {
		t.Errorf("rep goal = %d complete=%v, want 35 complete", repGoal.CurrentValue, repGoal.Completed)
	}

	var workoutGoal model.UserGoal
	if err := db.First(&workoutGoal, "id = ?", "g2").Error; err != nil {
		t.Fatalf("reload workout goal: %v", err)
	}
	if workoutGoal.CurrentValue != 1 || workoutGoal.Completed {
		t.Errorf("workout goal = %d complete=%v, want 1 incomplete", workoutGoal.CurrentValue, workoutGoal.Completed)
	}

	// The completion bonus lands on the summary and the user balance.
	if resp.Workout.TotalCoinsEarned != goalCompletionCoinBonus {
		t.Errorf("summary TotalCoinsEarned = %d, want %d", resp.Workout.TotalCoinsEarned, goalCompletionCoinBonus)
	}
	var user model.User
	if err := db.First(&user, "id = ?", "u1").Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if user.Coins != goalCompletionCoinBonus {
		t.Errorf("user coins = %d, want %d", user.Coins, goalCompletionCoinBonus)
	}

	if rows := notificationsOfType(t, db, "u1", shared.NotificationGoalCompleted); len(rows) != 1 {
		t.Errorf("goal notifications = %d, want 1", len(rows))
	}
}
