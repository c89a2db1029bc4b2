package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/pixelfit-app/pixelfit_api/dto"
	"github.com/pixelfit-app/pixelfit_api/model"
	"github.com/pixelfit-app/pixelfit_api/shared"
	log "github.com/sirupsen/logrus"

	"github.com/pixelfit-app/pixelfit_api/services/repositories"
)

// GoalService manages self-set targets and advances them as part of the
// workout pipeline. Completing a goal pays a small coin bonus and drops a
// notification.
type GoalService struct {
	context.DefaultService

	notificationSvc *NotificationService

	goalRepo     *repositories.GoalRepository
	exerciseRepo *repositories.ExerciseRepository
}

const GOAL_SVC = "goal_svc"

const goalCompletionCoinBonus = 5

const defaultGoalDurationDays = 7

func (svc GoalService) Id() string {
	return GOAL_SVC
}

func (svc *GoalService) Configure(ctx *context.Context) error {
	svc.notificationSvc = ctx.Service(NOTIFICATION_SVC).(*NotificationService)
	return svc.DefaultService.Configure(ctx)
}

func (svc *GoalService) Start() error {
	db, err := resolveDB(svc)
	if err != nil {
		return err
	}
	svc.goalRepo = repositories.NewGoalRepository(db)
	svc.exerciseRepo = repositories.NewExerciseRepository(db)
	return nil
}

func (svc *GoalService) CreateGoal(userID string, req dto.CreateGoalRequest) (*dto.GoalResponse, error) {
	if err := svc.validateGoalType(req.GoalType); err != nil {
		return nil, err
	}

	days := req.DurationDays
	if days == 0 {
		days = defaultGoalDurationDays
	}

	now := time.Now()
	goal := &model.UserGoal{
		UserID:      userID,
		GoalType:    req.GoalType,
		TargetValue: req.TargetValue,
		StartDate:   now,
		EndDate:     now.AddDate(0, 0, days),
	}
	if err := svc.goalRepo.CreateGoal(goal); err != nil {
		return nil, err
	}

	resp := goalToResponse(goal)
	return &resp, nil
}

func (svc *GoalService) ListGoals(userID string, activeOnly bool) ([]dto.GoalResponse, error) {
	var goals []model.UserGoal
	var err error
	if activeOnly {
		goals, err = svc.goalRepo.GetActiveGoals(userID, time.Now())
	} else {
		goals, err = svc.goalRepo.GetUserGoals(userID)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]dto.GoalResponse, 0, len(goals))
	for i := range goals {
		responses = append(responses, goalToResponse(&goals[i]))
	}
	return responses, nil
}

func (svc *GoalService) validateGoalType(goalType string) error {
	switch goalType {
	case shared.GoalTotalWorkouts, shared.GoalTotalReps, shared.GoalTotalXP, shared.GoalWorkoutStreak:
		return nil
	}

	slug, metric, ok := parseExerciseGoal(goalType)
	if !ok {
		return shared.NewBadRequestError(errors.New("unknown goal type"), "Unknown goal type")
	}
	switch metric {
	case "reps", "sets", "times":
	default:
		return shared.NewBadRequestError(errors.New("unknown goal metric"), "Unknown goal metric")
	}
	if _, err := svc.exerciseRepo.GetExerciseBySlug(slug); err != nil {
		return shared.NewBadRequestError(err, "Unknown exercise in goal type")
	}
	return nil
}

// ApplyWorkout advances every active goal with the just-completed session and
// returns the coin bonus for goals completed by it. The caller adds the bonus
// to both the user and the session totals. Goal failures never fail the
// workout; they are logged and skipped.
func (svc *GoalService) ApplyWorkout(user *model.User, session *model.WorkoutSession, exercises []processedExercise) int {
	now := time.Now()
	goals, err := svc.goalRepo.GetActiveGoals(user.ID, now)
	if err != nil {
		log.WithError(err).WithField("user_id", user.ID).Warn("Failed to load goals")
		return 0
	}

	bonus := 0
	for i := range goals {
		goal := &goals[i]
		switch goal.GoalType {
		case shared.GoalTotalWorkouts:
			goal.CurrentValue++
		case shared.GoalTotalReps:
			goal.CurrentValue += session.TotalReps
		case shared.GoalTotalXP:
			goal.CurrentValue += session.TotalXPEarned
		case shared.GoalWorkoutStreak:
			goal.CurrentValue = user.CurrentStreak
		default:
			goal.CurrentValue += exerciseGoalDelta(goal.GoalType, exercises)
		}

		if goal.CurrentValue >= goal.TargetValue {
			goal.Completed = true
			completedAt := now
			goal.CompletedAt = &completedAt
			bonus += goalCompletionCoinBonus

			svc.notificationSvc.Notify(user.ID, shared.NotificationGoalCompleted,
				"Goal completed!",
				fmt.Sprintf("You hit your %s target of %d.", goal.GoalType, goal.TargetValue))

			log.WithFields(log.Fields{
				"user_id":   user.ID,
				"goal_type": goal.GoalType,
			}).Info("Goal completed")
		}

		if err := svc.goalRepo.SaveGoal(goal); err != nil {
			log.WithError(err).WithField("goal_id", goal.ID).Warn("Failed to save goal")
		}
	}
	return bonus
}

// parseExerciseGoal splits exercise_{slug}_{metric}. Slugs use hyphens, so
// the first and last underscores delimit the slug.
func parseExerciseGoal(goalType string) (slug, metric string, ok bool) {
	if !strings.HasPrefix(goalType, shared.GoalExercisePrefix) {
		return "", "", false
	}
	rest := strings.TrimPrefix(goalType, shared.GoalExercisePrefix)
	idx := strings.LastIndex(rest, "_")
	if idx <= 0 || idx == len(rest)-1 {
		return "", "", false
	}
	return rest[:idx], rest[idx+1:], true
}

func exerciseGoalDelta(goalType string, exercises []processedExercise) int {
	slug, metric, ok := parseExerciseGoal(goalType)
	if !ok {
		return 0
	}
	for i := range exercises {
		p := &exercises[i]
		if p.exercise.Slug != slug {
			continue
		}
		switch metric {
		case "reps":
			return p.totalReps
		case "sets":
			return p.sets
		case "times":
			return 1
		}
	}
	return 0
}

func goalToResponse(goal *model.UserGoal) dto.GoalResponse {
	percent := 0.0
	if goal.TargetValue > 0 {
		percent = float64(goal.CurrentValue) / float64(goal.TargetValue) * 100
		if percent > 100 {
			percent = 100
		}
	}
	return dto.GoalResponse{
		ID:              goal.ID,
		GoalType:        goal.GoalType,
		TargetValue:     goal.TargetValue,
		CurrentValue:    goal.CurrentValue,
		ProgressPercent: percent,
		StartDate:       goal.StartDate,
		EndDate:         goal.EndDate,
		Completed:       goal.Completed,
		CompletedAt:     goal.CompletedAt,
		CreatedAt:       goal.CreatedAt,
	}
}
