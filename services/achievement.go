package services

import (
	"time"

	"github.com/alphabatem/common/context"
	"github.com/bytedance/sonic"
	"github.com/pixelfit-app/pixelfit_api/dto"
	"github.com/pixelfit-app/pixelfit_api/gamification"
	"github.com/pixelfit-app/pixelfit_api/model"
	"github.com/pixelfit-app/pixelfit_api/shared"
	log "github.com/sirupsen/logrus"

	"github.com/pixelfit-app/pixelfit_api/services/repositories"
)

// AchievementService evaluates unlock conditions after each workout and
// serves the achievement catalog with per-user unlock state.
type AchievementService struct {
	context.DefaultService

	achievementRepo *repositories.AchievementRepository
	exerciseRepo    *repositories.ExerciseRepository
	userRepo        *repositories.UserRepository
}

const ACHIEVEMENT_SVC = "achievement_svc"

func (svc AchievementService) Id() string {
	return ACHIEVEMENT_SVC
}

func (svc *AchievementService) Start() error {
	db, err := resolveDB(svc)
	if err != nil {
		return err
	}
	svc.achievementRepo = repositories.NewAchievementRepository(db)
	svc.exerciseRepo = repositories.NewExerciseRepository(db)
	svc.userRepo = repositories.NewUserRepository(db)
	return nil
}

// ListForUser returns every active achievement with its unlock state.
func (svc *AchievementService) ListForUser(userID string) ([]dto.AchievementResponse, error) {
	achievements, err := svc.achievementRepo.GetActiveAchievements()
	if err != nil {
		return nil, err
	}

	unlocked, err := svc.achievementRepo.GetUserAchievements(userID)
	if err != nil {
		return nil, err
	}
	unlockedAt := make(map[string]time.Time, len(unlocked))
	for _, ua := range unlocked {
		unlockedAt[ua.AchievementID] = ua.UnlockedAt
	}

	responses := make([]dto.AchievementResponse, 0, len(achievements))
	for _, a := range achievements {
		resp := achievementToResponse(&a)
		if at, ok := unlockedAt[a.ID]; ok {
			resp.Unlocked = true
			t := at
			resp.UnlockedAt = &t
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// conditionFacts is a snapshot of everything an unlock condition can test.
type conditionFacts struct {
	TotalWorkouts int
	Streak        int
	Level         int
	TotalXP       int
	ExerciseReps  int
	CompletedAt   time.Time
}

// conditionMet is pure so the unlock matrix is testable without a database.
func conditionMet(cond model.AchievementCondition, facts conditionFacts) bool {
	switch cond.Type {
	case shared.ConditionTotalWorkouts:
		return facts.TotalWorkouts >= cond.Value
	case shared.ConditionStreak:
		return facts.Streak >= cond.Value
	case shared.ConditionLevel:
		return facts.Level >= cond.Value
	case shared.ConditionTotalXP:
		return facts.TotalXP >= cond.Value
	case shared.ConditionExerciseReps:
		return facts.ExerciseReps >= cond.Value
	case shared.ConditionTimeOfDay:
		clock := facts.CompletedAt.Format("15:04")
		if cond.Before != "" && clock >= cond.Before {
			return false
		}
		if cond.After != "" && clock < cond.After {
			return false
		}
		return cond.Before != "" || cond.After != ""
	default:
		return false
	}
}

// EvaluateAfterWorkout unlocks every newly satisfied achievement and applies
// its rewards. The user record is already updated with the workout gains;
// reward XP may cascade into a further level-up.
func (svc *AchievementService) EvaluateAfterWorkout(user *model.User, completedAt time.Time) ([]dto.AchievementResponse, error) {
	achievements, err := svc.achievementRepo.GetActiveAchievements()
	if err != nil {
		return nil, err
	}

	alreadyUnlocked, err := svc.achievementRepo.GetUnlockedAchievementIDs(user.ID)
	if err != nil {
		return nil, err
	}

	facts := conditionFacts{
		TotalWorkouts: user.TotalWorkouts,
		Streak:        user.CurrentStreak,
		Level:         user.Level,
		TotalXP:       user.TotalXP,
		CompletedAt:   completedAt,
	}

	var newlyUnlocked []dto.AchievementResponse
	rewardXP, rewardCoins := 0, 0

	for _, a := range achievements {
		if alreadyUnlocked[a.ID] {
			continue
		}

		var cond model.AchievementCondition
		if err := sonic.Unmarshal(a.Condition, &cond); err != nil {
			log.WithError(err).WithField("slug", a.Slug).Warn("Skipping achievement with malformed condition")
			continue
		}

		if cond.Type == shared.ConditionExerciseReps {
			reps, err := svc.exerciseRepo.TotalRepsForSlugPattern(user.ID, cond.Exercise)
			if err != nil {
				log.WithError(err).WithField("slug", a.Slug).Warn("Failed to sum exercise reps")
				continue
			}
			facts.ExerciseReps = reps
		}

		if !conditionMet(cond, facts) {
			continue
		}

		if err := svc.achievementRepo.UnlockAchievement(user.ID, a.ID); err != nil {
			log.WithError(err).WithField("slug", a.Slug).Warn("Failed to unlock achievement")
			continue
		}

		rewardXP += a.XPReward
		rewardCoins += a.CoinReward

		resp := achievementToResponse(&a)
		resp.Unlocked = true
		at := completedAt
		resp.UnlockedAt = &at
		newlyUnlocked = append(newlyUnlocked, resp)

		log.WithFields(log.Fields{"user_id": user.ID, "slug": a.Slug}).Info("Achievement unlocked")
	}

	if rewardXP > 0 || rewardCoins > 0 {
		oldLevel := user.Level
		user.TotalXP += rewardXP
		user.Level = gamification.LevelFromXP(user.TotalXP)
		user.Coins += rewardCoins
		if user.Level > oldLevel {
			user.Coins += levelUpCoinBonus * (user.Level - oldLevel)
		}
		if err := svc.userRepo.UpdateUser(user); err != nil {
			return newlyUnlocked, err
		}
	}

	return newlyUnlocked, nil
}

func achievementToResponse(a *model.Achievement) dto.AchievementResponse {
	return dto.AchievementResponse{
		Slug:        a.Slug,
		Name:        a.Name,
		Description: a.Description,
		Icon:        a.Icon,
		BadgeURL:    a.BadgeURL,
		Category:    a.Category,
		XPReward:    a.XPReward,
		CoinReward:  a.CoinReward,
	}
}
