package services

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	fiberSwagger "github.com/gofiber/swagger"
	log "github.com/sirupsen/logrus"

	docs "github.com/pixelfit-app/pixelfit_api/docs"
	"github.com/pixelfit-app/pixelfit_api/model"
	"github.com/pixelfit-app/pixelfit_api/services/handlers"
	"github.com/pixelfit-app/pixelfit_api/shared"
)

type HttpService struct {
	context.DefaultService

	authSvc        *AuthService
	userSvc        *UserService
	exerciseSvc    *ExerciseService
	workoutSvc     *WorkoutService
	achievementSvc *AchievementService
	goalSvc        *GoalService
	notifSvc       *NotificationService
	leaderboardSvc *LeaderboardService
	shopSvc        *ShopService
	mediaSvc       *MediaService
	rateLimitSvc   *RateLimitService
	monitoringSvc  *MonitoringService

	port   int
	server *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	svc.authSvc = ctx.Service(AUTH_SVC).(*AuthService)
	svc.userSvc = ctx.Service(USER_SVC).(*UserService)
	svc.exerciseSvc = ctx.Service(EXERCISE_SVC).(*ExerciseService)
	svc.workoutSvc = ctx.Service(WORKOUT_SVC).(*WorkoutService)
	svc.achievementSvc = ctx.Service(ACHIEVEMENT_SVC).(*AchievementService)
	svc.goalSvc = ctx.Service(GOAL_SVC).(*GoalService)
	svc.notifSvc = ctx.Service(NOTIFICATION_SVC).(*NotificationService)
	svc.leaderboardSvc = ctx.Service(LEADERBOARD_SVC).(*LeaderboardService)
	svc.shopSvc = ctx.Service(SHOP_SVC).(*ShopService)
	svc.mediaSvc = ctx.Service(MEDIA_SVC).(*MediaService)
	svc.rateLimitSvc = ctx.Service(RATE_LIMIT_SVC).(*RateLimitService)
	svc.monitoringSvc = ctx.Service(MONITORING_SVC).(*MonitoringService)

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	docs.SwaggerInfo.BasePath = ""

	app := fiber.New(fiber.Config{
		AppName:      "pixelfit_api",
		ErrorHandler: svc.handleError,
		JSONEncoder:  shared.JSONAPI().Marshal,
		JSONDecoder:  shared.JSONAPI().Unmarshal,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(MonitoringMiddleware(svc.monitoringSvc))
	app.Use(svc.rateLimitSvc.IPRateLimit())

	app.Get("/ping", svc.ping)
	app.Get("/swagger/*", fiberSwagger.HandlerDefault)

	svc.registerRoutes(app)

	app.Use(func(c *fiber.Ctx) error {
		return shared.ResponseNotFound(c)
	})

	svc.server = app

	log.WithField("port", svc.port).Info("HTTP server starting")
	return app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) registerRoutes(app *fiber.App) {
	authHandler := handlers.NewAuthHandler(svc.authSvc)
	userHandler := handlers.NewUserHandler(svc.userSvc)
	exerciseHandler := handlers.NewExerciseHandler(svc.exerciseSvc)
	workoutHandler := handlers.NewWorkoutHandler(svc.workoutSvc)
	achievementHandler := handlers.NewAchievementHandler(svc.achievementSvc)
	goalHandler := handlers.NewGoalHandler(svc.goalSvc)
	notificationHandler := handlers.NewNotificationHandler(svc.notifSvc)
	leaderboardHandler := handlers.NewLeaderboardHandler(svc.leaderboardSvc)
	shopHandler := handlers.NewShopHandler(svc.shopSvc)
	mediaHandler := handlers.NewMediaHandler(svc.mediaSvc)
	adminHandler := handlers.NewAdminHandler(svc.exerciseSvc, svc.shopSvc)

	v1 := app.Group("/api/v1")
	v1.Get("/ping", svc.ping)

	auth := v1.Group("/auth")
	auth.Post("/telegram", svc.rateLimitSvc.RateLimit("telegram_auth"), authHandler.TelegramAuth)
	auth.Post("/refresh", svc.rateLimitSvc.RateLimit("refresh"), authHandler.RefreshToken)
	auth.Post("/admin/login", svc.rateLimitSvc.RateLimit("admin_login"), authHandler.AdminLogin)

	user := v1.Group("/user", svc.authSvc.RequiredAuth())
	user.Get("/profile", userHandler.GetProfile)
	user.Put("/profile", userHandler.UpdateProfile)
	user.Get("/stats", userHandler.GetStats)

	exercises := v1.Group("/exercises", svc.authSvc.RequiredAuth())
	exercises.Get("/", exerciseHandler.GetExercises)
	exercises.Get("/categories", exerciseHandler.GetCategories)
	exercises.Get("/progress", exerciseHandler.GetProgress)
	exercises.Get("/:slug", exerciseHandler.GetExercise)
	exercises.Post("/:slug/favorite", exerciseHandler.ToggleFavorite)

	workouts := v1.Group("/workouts", svc.authSvc.RequiredAuth())
	workouts.Post("/", svc.rateLimitSvc.RateLimit("workout_submit"), workoutHandler.SubmitWorkout)
	workouts.Get("/", workoutHandler.GetHistory)
	workouts.Get("/today", workoutHandler.GetTodayStats)
	workouts.Get("/:id", workoutHandler.GetWorkout)

	v1.Get("/achievements", svc.authSvc.RequiredAuth(), achievementHandler.GetAchievements)
	v1.Get("/leaderboard", svc.authSvc.RequiredAuth(), leaderboardHandler.GetLeaderboard)

	goals := v1.Group("/goals", svc.authSvc.RequiredAuth())
	goals.Get("/", goalHandler.GetGoals)
	goals.Post("/", goalHandler.CreateGoal)

	notifications := v1.Group("/notifications", svc.authSvc.RequiredAuth())
	notifications.Get("/", notificationHandler.GetNotifications)
	notifications.Get("/unread-count", notificationHandler.GetUnreadCount)
	notifications.Post("/read-all", notificationHandler.MarkAllRead)
	notifications.Post("/:id/read", notificationHandler.MarkRead)

	shop := v1.Group("/shop", svc.authSvc.RequiredAuth())
	shop.Get("/items", shopHandler.GetItems)
	shop.Post("/items/:id/purchase", svc.rateLimitSvc.RateLimit("purchase"), shopHandler.Purchase)
	shop.Get("/inventory", shopHandler.GetInventory)
	shop.Post("/inventory/:id/equip", shopHandler.Equip)
	shop.Post("/inventory/:id/unequip", shopHandler.Unequip)

	admin := v1.Group("/admin", svc.authSvc.RequiredAuth(), svc.authSvc.RequireRole(model.RoleAdmin))
	admin.Post("/exercises", adminHandler.SaveExercise)
	admin.Post("/shop/items", adminHandler.SaveShopItem)
	admin.Post("/exercises/:slug/gif", svc.rateLimitSvc.RateLimit("media_upload"), mediaHandler.UploadExerciseGif)
	admin.Post("/achievements/:slug/badge", svc.rateLimitSvc.RateLimit("media_upload"), mediaHandler.UploadAchievementBadge)
	admin.Post("/shop/items/:id/sprite", svc.rateLimitSvc.RateLimit("media_upload"), mediaHandler.UploadShopSprite)
}

func (svc *HttpService) Shutdown() {
	if svc.server != nil {
		_ = svc.server.Shutdown()
	}
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set("Cache-Control", "max-age=10")
	return shared.ResponseOK(c, "pong")
}

func (svc *HttpService) handleError(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	log.WithError(err).Error("Unhandled request error")
	return shared.ResponseInternalError(c, err)
}
