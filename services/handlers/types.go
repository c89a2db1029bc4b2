package handlers

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/pixelfit-app/pixelfit_api/dto"
	"github.com/pixelfit-app/pixelfit_api/model"
)

type AuthServiceInterface interface {
	TelegramAuth(req dto.TelegramAuthRequest) (*dto.AuthResponse, error)
	RefreshToken(req dto.RefreshTokenRequest) (*dto.TokenPair, error)
	AdminLogin(req dto.AdminLoginRequest) (*dto.TokenPair, error)
	RequiredAuth() fiber.Handler
	RequireRole(role string) fiber.Handler
}

type UserServiceInterface interface {
	GetProfile(userID string) (*dto.UserResponse, error)
	UpdateProfile(userID string, req dto.UpdateProfileRequest) (*dto.UserResponse, error)
	GetStats(userID string) (*dto.UserStatsResponse, error)
}

type ExerciseServiceInterface interface {
	GetCategories() ([]dto.CategoryResponse, error)
	GetExercises(userID string, req dto.SearchExercisesRequest) ([]dto.ExerciseResponse, error)
	GetExercise(userID, slug string) (*dto.ExerciseResponse, error)
	GetProgress(userID string) ([]dto.ExerciseProgressResponse, error)
	ToggleFavorite(userID, slug string) (*dto.FavoriteResponse, error)
	SaveExercise(exercise *model.Exercise) error
}

type WorkoutServiceInterface interface {
	SubmitWorkout(userID string, req dto.SubmitWorkoutRequest) (*dto.WorkoutSummaryResponse, error)
	GetWorkout(userID, workoutID string) (*dto.WorkoutResponse, error)
	GetHistory(userID string, limit, offset int) ([]dto.WorkoutResponse, error)
	GetTodayStats(userID string) (*dto.TodayStatsResponse, error)
}

type AchievementServiceInterface interface {
	ListForUser(userID string) ([]dto.AchievementResponse, error)
}

type GoalServiceInterface interface {
	CreateGoal(userID string, req dto.CreateGoalRequest) (*dto.GoalResponse, error)
	ListGoals(userID string, activeOnly bool) ([]dto.GoalResponse, error)
}

type NotificationServiceInterface interface {
	List(userID string, limit, offset int) ([]dto.NotificationResponse, error)
	UnreadCount(userID string) (*dto.UnreadCountResponse, error)
	MarkRead(userID, notificationID string) error
	MarkAllRead(userID string) error
}

type LeaderboardServiceInterface interface {
	GetLeaderboard(userID string, req dto.LeaderboardRequest) (*dto.LeaderboardResponse, error)
}

type ShopServiceInterface interface {
	GetItems(userID, itemType string) ([]dto.ShopItemResponse, error)
	Purchase(userID, itemID string) (*dto.PurchaseResponse, error)
	GetInventory(userID string) ([]dto.InventoryItemResponse, error)
	Equip(userID, purchaseID string) error
	Unequip(userID, purchaseID string) error
	SaveItem(item *model.ShopItem) error
}

type MediaServiceInterface interface {
	UploadExerciseGif(slug string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error)
	UploadAchievementBadge(slug string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error)
	UploadShopSprite(itemID string, file *multipart.FileHeader) (*dto.MediaUploadResponse, error)
}
