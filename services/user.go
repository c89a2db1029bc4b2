package services

import (
	"errors"

	"github.com/alphabatem/common/context"
	"github.com/pixelfit-app/pixelfit_api/dto"
	"github.com/pixelfit-app/pixelfit_api/gamification"
	"github.com/pixelfit-app/pixelfit_api/model"
	"github.com/pixelfit-app/pixelfit_api/shared"
	"gorm.io/gorm"

	"github.com/pixelfit-app/pixelfit_api/services/repositories"
)

// UserService serves profile and aggregate stats reads. All mutation of game
// stats happens in WorkoutService and ShopService; this service never writes
// XP or coins.
type UserService struct {
	context.DefaultService

	userRepo        *repositories.UserRepository
	workoutRepo     *repositories.WorkoutRepository
	achievementRepo *repositories.AchievementRepository
}

const USER_SVC = "user_svc"

func (svc UserService) Id() string {
	return USER_SVC
}

func (svc *UserService) Start() error {
	db, err := resolveDB(svc)
	if err != nil {
		return err
	}
	svc.userRepo = repositories.NewUserRepository(db)
	svc.workoutRepo = repositories.NewWorkoutRepository(db)
	svc.achievementRepo = repositories.NewAchievementRepository(db)
	return nil
}

func (svc *UserService) GetProfile(userID string) (*dto.UserResponse, error) {
	user, err := svc.getUser(userID)
	if err != nil {
		return nil, err
	}
	resp := userToResponse(user)
	return &resp, nil
}

func (svc *UserService) UpdateProfile(userID string, req dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	user, err := svc.getUser(userID)
	if err != nil {
		return nil, err
	}

	if req.NotificationsEnabled != nil {
		user.NotificationsEnabled = *req.NotificationsEnabled
	}
	if req.ReminderTime != "" {
		user.ReminderTime = req.ReminderTime
	}

	if err := svc.userRepo.UpdateUser(user); err != nil {
		return nil, err
	}

	resp := userToResponse(user)
	return &resp, nil
}

// GetStats derives the level progress view from stored XP and joins lifetime
// workout aggregates.
func (svc *UserService) GetStats(userID string) (*dto.UserStatsResponse, error) {
	user, err := svc.getUser(userID)
	if err != nil {
		return nil, err
	}

	totalReps, totalDuration, err := svc.workoutRepo.LifetimeTotals(userID)
	if err != nil {
		return nil, err
	}

	unlocked, err := svc.achievementRepo.GetUserAchievements(userID)
	if err != nil {
		return nil, err
	}

	recent := make([]dto.AchievementResponse, 0, 5)
	for i, ua := range unlocked {
		if i == 5 {
			break
		}
		unlockedAt := ua.UnlockedAt
		recent = append(recent, dto.AchievementResponse{
			Slug:        ua.Achievement.Slug,
			Name:        ua.Achievement.Name,
			Description: ua.Achievement.Description,
			Icon:        ua.Achievement.Icon,
			BadgeURL:    ua.Achievement.BadgeURL,
			Category:    ua.Achievement.Category,
			XPReward:    ua.Achievement.XPReward,
			CoinReward:  ua.Achievement.CoinReward,
			Unlocked:    true,
			UnlockedAt:  &unlockedAt,
		})
	}

	return &dto.UserStatsResponse{
		UserID:               user.ID,
		Level:                user.Level,
		TotalXP:              user.TotalXP,
		Coins:                user.Coins,
		CurrentStreak:        user.CurrentStreak,
		MaxStreak:            user.MaxStreak,
		StreakMultiplier:     gamification.StreakMultiplier(user.CurrentStreak),
		Progress:             gamification.GetLevelProgress(user.TotalXP),
		TotalWorkouts:        user.TotalWorkouts,
		TotalReps:            totalReps,
		TotalDurationSeconds: totalDuration,
		RecentAchievements:   recent,
	}, nil
}

func (svc *UserService) getUser(userID string) (*model.User, error) {
	user, err := svc.userRepo.GetUser(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "User not found")
		}
		return nil, err
	}
	return user, nil
}

func userToResponse(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:              user.ID,
		TelegramID:      user.TelegramID,
		Username:        user.Username,
		FirstName:       user.FirstName,
		PhotoURL:        user.PhotoURL,
		Level:           user.Level,
		TotalXP:         user.TotalXP,
		Coins:           user.Coins,
		CurrentStreak:   user.CurrentStreak,
		MaxStreak:       user.MaxStreak,
		LastWorkoutDate: user.LastWorkoutDate,
		CreatedAt:       user.CreatedAt,
	}
}
