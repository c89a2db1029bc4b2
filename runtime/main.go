package main

import (
	"os"

	"github.com/pixelfit-app/pixelfit_api/services"

	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Warn().Err(err).Msg("No .env file loaded")
	}

	svcs := []context.Service{
		&services.JWTService{},
		&services.RedisService{},
		&services.MinIOService{},
	}

	// SQLite is the development default; Postgres when DATABASE_URL or
	// DB_HOST is set.
	if os.Getenv("DATABASE_URL") != "" || os.Getenv("DB_HOST") != "" {
		svcs = append(svcs, &services.PostgresService{})
	} else {
		svcs = append(svcs, &services.SqliteService{})
	}

	svcs = append(svcs,
		&services.MonitoringService{},
		&services.RateLimitService{},
		&services.AuthService{},
		&services.UserService{},
		&services.ExerciseService{},
		&services.AchievementService{},
		&services.NotificationService{},
		&services.GoalService{},
		&services.WorkoutService{},
		&services.LeaderboardService{},
		&services.ShopService{},
		&services.MediaService{},

		&services.HttpService{},
	)

	ctx, err := context.NewCtx(svcs...)
	if err != nil {
		log.Fatal().Err(err)
		return
	}

	err = ctx.Run()
	if err != nil {
		log.Fatal().Err(err)
		return
	}
}
