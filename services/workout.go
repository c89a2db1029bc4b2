package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/pixelfit-app/pixelfit_api/dto"
	"github.com/pixelfit-app/pixelfit_api/gamification"
	"github.com/pixelfit-app/pixelfit_api/model"
	"github.com/pixelfit-app/pixelfit_api/shared"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pixelfit-app/pixelfit_api/services/repositories"
)

// WorkoutService owns the submission pipeline. It is the only writer of XP,
// coins and streaks; clients submit raw sets and overwrite their local
// estimates with the summary returned here.
type WorkoutService struct {
	context.DefaultService

	achievementSvc  *AchievementService
	goalSvc         *GoalService
	notificationSvc *NotificationService
	monitoringSvc   *MonitoringService

	userRepo     *repositories.UserRepository
	exerciseRepo *repositories.ExerciseRepository
	workoutRepo  *repositories.WorkoutRepository
}

const WORKOUT_SVC = "workout_svc"

const levelUpCoinBonus = 5

func (svc WorkoutService) Id() string {
	return WORKOUT_SVC
}

func (svc *WorkoutService) Configure(ctx *context.Context) error {
	svc.achievementSvc = ctx.Service(ACHIEVEMENT_SVC).(*AchievementService)
	svc.goalSvc = ctx.Service(GOAL_SVC).(*GoalService)
	svc.notificationSvc = ctx.Service(NOTIFICATION_SVC).(*NotificationService)
	svc.monitoringSvc = ctx.Service(MONITORING_SVC).(*MonitoringService)
	return svc.DefaultService.Configure(ctx)
}

func (svc *WorkoutService) Start() error {
	db, err := resolveDB(svc)
	if err != nil {
		return err
	}
	svc.userRepo = repositories.NewUserRepository(db)
	svc.exerciseRepo = repositories.NewExerciseRepository(db)
	svc.workoutRepo = repositories.NewWorkoutRepository(db)
	return nil
}

// processedExercise is one catalog-resolved exercise of a submission.
type processedExercise struct {
	exercise        *model.Exercise
	sets            int
	totalReps       int
	bestSet         int
	durationSeconds int
	xp              int
}

// scoreExercise aggregates one exercise's sets and prices its XP. Timed
// exercises accumulate held seconds; the aggregate duration converts to a
// rep equivalent once for pricing and contributes nothing to rep totals.
func scoreExercise(exercise *model.Exercise, sets []int, streakDays int, isFirstToday bool) processedExercise {
	p := processedExercise{exercise: exercise, sets: len(sets)}

	repsForXP := 0
	if exercise.IsTimed {
		for _, set := range sets {
			p.durationSeconds += set
		}
		repsForXP = gamification.TimedRepEquivalent(p.durationSeconds)
	} else {
		for _, set := range sets {
			p.totalReps += set
		}
		p.bestSet = bestSingleSet(sets)
		repsForXP = p.totalReps
	}

	p.xp = gamification.CalculateXP(exercise.BaseXP, exercise.Difficulty, repsForXP, streakDays, isFirstToday)
	return p
}

func bestSingleSet(sets []int) int {
	best := 0
	for _, set := range sets {
		if set > best {
			best = set
		}
	}
	return best
}

// SubmitWorkout runs the full completion pipeline: resolve exercises, score
// XP and coins, advance the streak, persist the session, upsert per-exercise
// progress and evaluate achievements.
func (svc *WorkoutService) SubmitWorkout(userID string, req dto.SubmitWorkoutRequest) (*dto.WorkoutSummaryResponse, error) {
	user, err := svc.userRepo.GetUser(userID)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "User not found")
	}

	now := time.Now()
	isFirstToday := !sameDay(user.LastWorkoutDate, now)

	// Rewards price off the streak as it stood before this workout; the
	// streak itself only advances after scoring.
	streakDays := user.CurrentStreak

	processed := make([]processedExercise, 0, len(req.Exercises))
	totalXP, totalReps, totalDuration := 0, 0, 0
	for _, entry := range req.Exercises {
		exercise, err := svc.exerciseRepo.GetExerciseBySlug(entry.ExerciseSlug)
		if err != nil {
			// Unknown slugs are dropped, not rejected; stale clients may
			// still carry retired exercises.
			log.WithField("slug", entry.ExerciseSlug).Warn("Skipping unknown exercise in submission")
			continue
		}

		p := scoreExercise(exercise, entry.Sets, streakDays, isFirstToday)
		totalXP += p.xp
		totalReps += p.totalReps
		totalDuration += p.durationSeconds
		processed = append(processed, p)
	}

	if len(processed) == 0 {
		return nil, shared.NewBadRequestError(errors.New("no known exercises in submission"), "No recognizable exercises")
	}

	sessionCoins := gamification.CalculateCoins(totalXP, streakDays, req.DurationSeconds/60)

	session := &model.WorkoutSession{
		UserID:               userID,
		StartedAt:            now.Add(-time.Duration(req.DurationSeconds) * time.Second),
		FinishedAt:           &now,
		DurationSeconds:      req.DurationSeconds,
		TotalXPEarned:        totalXP,
		TotalCoinsEarned:     sessionCoins,
		TotalReps:            totalReps,
		TotalDurationSeconds: totalDuration,
		StreakMultiplier:     gamification.StreakMultiplier(streakDays),
		Status:               shared.WorkoutStatusCompleted,
	}
	if err := svc.workoutRepo.CreateSession(session); err != nil {
		return nil, err
	}

	for i := range processed {
		p := &processed[i]
		we := &model.WorkoutExercise{
			WorkoutSessionID:     session.ID,
			ExerciseID:           p.exercise.ID,
			SetsCompleted:        p.sets,
			TotalReps:            p.totalReps,
			TotalDurationSeconds: p.durationSeconds,
			XPEarned:             p.xp,
		}
		if err := svc.workoutRepo.CreateWorkoutExercise(we); err != nil {
			return nil, err
		}

		if err := svc.upsertProgress(userID, p, now); err != nil {
			log.WithError(err).WithField("slug", p.exercise.Slug).Warn("Failed to update exercise progress")
		}
	}

	// Apply gains to the user record. Level always derives from TotalXP.
	oldLevel := user.Level
	user.TotalXP += totalXP
	user.Level = gamification.LevelFromXP(user.TotalXP)
	user.Coins += sessionCoins
	levelUpCoins := 0
	if user.Level > oldLevel {
		levelUpCoins = levelUpCoinBonus * (user.Level - oldLevel)
		user.Coins += levelUpCoins
	}

	newStreak := nextStreak(user.CurrentStreak, user.LastWorkoutDate, now)
	user.CurrentStreak = newStreak
	if newStreak > user.MaxStreak {
		user.MaxStreak = newStreak
	}
	user.LastWorkoutDate = &now
	user.TotalWorkouts++

	goalCoins := svc.goalSvc.ApplyWorkout(user, session, processed)
	user.Coins += goalCoins

	if err := svc.userRepo.UpdateUser(user); err != nil {
		return nil, err
	}

	newAchievements, err := svc.achievementSvc.EvaluateAfterWorkout(user, now)
	if err != nil {
		log.WithError(err).Warn("Achievement evaluation failed")
		newAchievements = nil
	}
	achievementCoins := 0
	for _, a := range newAchievements {
		achievementCoins += a.CoinReward
	}

	// Bonus coins land on the session too so the summary shows everything
	// this workout paid out.
	if bonus := levelUpCoins + goalCoins + achievementCoins; bonus > 0 {
		session.TotalCoinsEarned += bonus
		if err := svc.workoutRepo.UpdateSession(session); err != nil {
			log.WithError(err).Warn("Failed to update session coin total")
		}
	}

	levelUp := user.Level > oldLevel
	if levelUp {
		svc.notificationSvc.Notify(userID, shared.NotificationLevelUp,
			"Level up!", fmt.Sprintf("You reached level %d.", user.Level))
	}
	for _, a := range newAchievements {
		svc.notificationSvc.Notify(userID, shared.NotificationAchievement,
			"Achievement unlocked!", a.Name)
	}

	summary := &dto.WorkoutSummaryResponse{
		Workout:         workoutToResponse(session, processed),
		NewAchievements: newAchievements,
		LevelUp:         levelUp,
		Streak:          user.CurrentStreak,
	}
	if levelUp {
		newLevel := user.Level
		summary.NewLevel = &newLevel
	}

	svc.monitoringSvc.RecordWorkout(totalXP, session.TotalCoinsEarned, len(newAchievements))

	log.WithFields(log.Fields{
		"user_id": userID,
		"xp":      totalXP,
		"coins":   session.TotalCoinsEarned,
		"streak":  user.CurrentStreak,
	}).Info("Workout processed")

	return summary, nil
}

func (svc *WorkoutService) upsertProgress(userID string, p *processedExercise, now time.Time) error {
	progress, err := svc.exerciseRepo.GetProgress(userID, p.exercise.ID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		progress = &model.UserExerciseProgress{
			UserID:     userID,
			ExerciseID: p.exercise.ID,
		}
	}

	progress.TotalRepsEver += p.totalReps
	progress.TimesPerformed++
	progress.LastPerformedAt = &now

	// Timed exercises never set bestSet; held seconds are not a rep record.
	if p.bestSet > progress.BestSingleSet {
		progress.BestSingleSet = p.bestSet
	}

	// Suggest moving up the progression chain once lifetime volume passes
	// 100 reps on this movement.
	if progress.TotalRepsEver >= 100 && p.exercise.HarderExerciseSlug != "" {
		progress.RecommendedUpgrade = true
	}

	return svc.exerciseRepo.SaveProgress(progress)
}

func (svc *WorkoutService) GetWorkout(userID, workoutID string) (*dto.WorkoutResponse, error) {
	session, err := svc.workoutRepo.GetSession(workoutID)
	if err != nil {
		return nil, shared.NewNotFoundError(err, "Workout not found")
	}
	if session.UserID != userID {
		return nil, shared.NewForbiddenError(errors.New("workout belongs to another user"), "Forbidden")
	}

	resp := sessionToResponse(session)
	return &resp, nil
}

func (svc *WorkoutService) GetHistory(userID string, limit, offset int) ([]dto.WorkoutResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	sessions, err := svc.workoutRepo.GetUserSessions(userID, limit, offset)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.WorkoutResponse, 0, len(sessions))
	for i := range sessions {
		responses = append(responses, sessionToResponse(&sessions[i]))
	}
	return responses, nil
}

// GetTodayStats aggregates all sessions completed since local midnight.
func (svc *WorkoutService) GetTodayStats(userID string) (*dto.TodayStatsResponse, error) {
	now := time.Now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	sessions, err := svc.workoutRepo.GetSessionsSince(userID, midnight)
	if err != nil {
		return nil, err
	}

	stats := &dto.TodayStatsResponse{WorkoutsCount: len(sessions)}
	for _, s := range sessions {
		stats.TotalXP += s.TotalXPEarned
		stats.TotalReps += s.TotalReps
		stats.TotalDurationSeconds += s.TotalDurationSeconds
		stats.ExercisesDone += len(s.Exercises)
	}
	return stats, nil
}

// nextStreak advances the daily streak: consecutive day extends it, a gap
// resets to 1, repeat workouts on the same day leave it unchanged.
func nextStreak(current int, lastWorkout *time.Time, now time.Time) int {
	if lastWorkout == nil {
		return 1
	}
	if sameDay(lastWorkout, now) {
		if current < 1 {
			return 1
		}
		return current
	}
	yesterday := now.AddDate(0, 0, -1)
	if sameDay(lastWorkout, yesterday) {
		return current + 1
	}
	return 1
}

func sameDay(t *time.Time, ref time.Time) bool {
	if t == nil {
		return false
	}
	y1, m1, d1 := t.Date()
	y2, m2, d2 := ref.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func workoutToResponse(session *model.WorkoutSession, processed []processedExercise) dto.WorkoutResponse {
	exercises := make([]dto.WorkoutExerciseResponse, 0, len(processed))
	for _, p := range processed {
		exercises = append(exercises, dto.WorkoutExerciseResponse{
			ExerciseID:           p.exercise.ID,
			ExerciseSlug:         p.exercise.Slug,
			ExerciseName:         p.exercise.Name,
			IsTimed:              p.exercise.IsTimed,
			SetsCompleted:        p.sets,
			TotalReps:            p.totalReps,
			TotalDurationSeconds: p.durationSeconds,
			XPEarned:             p.xp,
		})
	}

	resp := sessionToResponse(session)
	resp.Exercises = exercises
	return resp
}

func sessionToResponse(session *model.WorkoutSession) dto.WorkoutResponse {
	exercises := make([]dto.WorkoutExerciseResponse, 0, len(session.Exercises))
	for _, we := range session.Exercises {
		exercises = append(exercises, dto.WorkoutExerciseResponse{
			ID:                   we.ID,
			ExerciseID:           we.ExerciseID,
			ExerciseSlug:         we.Exercise.Slug,
			ExerciseName:         we.Exercise.Name,
			IsTimed:              we.Exercise.IsTimed,
			SetsCompleted:        we.SetsCompleted,
			TotalReps:            we.TotalReps,
			TotalDurationSeconds: we.TotalDurationSeconds,
			XPEarned:             we.XPEarned,
			CoinsEarned:          we.CoinsEarned,
		})
	}

	return dto.WorkoutResponse{
		ID:                   session.ID,
		StartedAt:            session.StartedAt,
		FinishedAt:           session.FinishedAt,
		DurationSeconds:      session.DurationSeconds,
		TotalXPEarned:        session.TotalXPEarned,
		TotalCoinsEarned:     session.TotalCoinsEarned,
		TotalReps:            session.TotalReps,
		TotalDurationSeconds: session.TotalDurationSeconds,
		StreakMultiplier:     session.StreakMultiplier,
		Status:               session.Status,
		Exercises:            exercises,
	}
}
