package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/pixelfit-app/pixelfit_api/model"
	"github.com/pixelfit-app/pixelfit_api/seed/seeders"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var (
		seedType = flag.String("type", "all", "Type of seeding: all, exercises, achievements, shop, admin")
		dbPath   = flag.String("db", "", "SQLite database path (overrides DB_DATABASE env var)")
		help     = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	db, err := openDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.AdminAccount{},
		&model.ExerciseCategory{},
		&model.Exercise{},
		&model.UserExerciseProgress{},
		&model.Favorite{},
		&model.WorkoutSession{},
		&model.WorkoutExercise{},
		&model.Achievement{},
		&model.UserAchievement{},
		&model.ShopItem{},
		&model.UserPurchase{},
		&model.UserGoal{},
		&model.Notification{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	mainSeeder := seeders.NewMainSeeder(db)

	switch *seedType {
	case "all":
		log.Println("Running complete database seeding...")
		err = mainSeeder.SeedAll()
	case "exercises":
		log.Println("Seeding categories and exercises only...")
		err = mainSeeder.SeedExercisesOnly()
	case "achievements":
		log.Println("Seeding achievements only...")
		err = mainSeeder.SeedAchievementsOnly()
	case "shop":
		log.Println("Seeding shop items only...")
		err = mainSeeder.SeedShopOnly()
	case "admin":
		log.Println("Seeding admin account only...")
		err = mainSeeder.SeedAdminOnly()
	default:
		log.Fatalf("Unknown seed type: %s. Use 'all', 'exercises', 'achievements', 'shop' or 'admin'", *seedType)
	}

	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}

func openDatabase(sqlitePath string) (*gorm.DB, error) {
	config := &gorm.Config{Logger: logger.Default.LogMode(logger.Info)}

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" && sqlitePath == "" {
		log.Println("Connecting to Postgres...")
		return gorm.Open(postgres.Open(dsn), config)
	}

	if sqlitePath == "" {
		sqlitePath = os.Getenv("DB_DATABASE")
		if sqlitePath == "" {
			sqlitePath = "pixelfit.db"
		}
	}

	log.Printf("Connecting to SQLite database: %s", sqlitePath)
	return gorm.Open(sqlite.Open(sqlitePath), config)
}

func showHelp() {
	fmt.Println(`Database seeder

Usage:
  seed [flags]

Flags:
  -type string   Type of seeding: all, exercises, achievements, shop, admin (default "all")
  -db string     SQLite database path (overrides DB_DATABASE env var)
  -help          Show this message

Environment:
  DATABASE_URL   Postgres DSN; takes precedence over SQLite
  DB_DATABASE    SQLite database path (default "pixelfit.db")
  ADMIN_USERNAME Initial admin username (default "admin")
  ADMIN_PASSWORD Initial admin password (required for admin seeding)`)
}
