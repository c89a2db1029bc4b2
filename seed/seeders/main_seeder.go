package seeders

import (
	"log"

	"gorm.io/gorm"
)

// MainSeeder coordinates all seeding operations
type MainSeeder struct {
	db *gorm.DB
}

func NewMainSeeder(db *gorm.DB) *MainSeeder {
	return &MainSeeder{db: db}
}

// SeedAll runs all seeders in dependency order.
func (s *MainSeeder) SeedAll() error {
	log.Println("Starting database seeding...")

	exerciseSeeder := NewExerciseSeeder(s.db)
	if err := exerciseSeeder.SeedCategories(); err != nil {
		log.Printf("Category seeding failed: %v", err)
		return err
	}
	if err := exerciseSeeder.SeedExercises(); err != nil {
		log.Printf("Exercise seeding failed: %v", err)
		return err
	}

	if err := NewAchievementSeeder(s.db).SeedAchievements(); err != nil {
		log.Printf("Achievement seeding failed: %v", err)
		return err
	}

	if err := NewShopSeeder(s.db).SeedShopItems(); err != nil {
		log.Printf("Shop seeding failed: %v", err)
		return err
	}

	if err := NewAdminSeeder(s.db).SeedAdmin(); err != nil {
		log.Printf("Admin seeding failed: %v", err)
		return err
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

func (s *MainSeeder) SeedExercisesOnly() error {
	exerciseSeeder := NewExerciseSeeder(s.db)
	if err := exerciseSeeder.SeedCategories(); err != nil {
		return err
	}
	return exerciseSeeder.SeedExercises()
}

func (s *MainSeeder) SeedAchievementsOnly() error {
	return NewAchievementSeeder(s.db).SeedAchievements()
}

func (s *MainSeeder) SeedShopOnly() error {
	return NewShopSeeder(s.db).SeedShopItems()
}

func (s *MainSeeder) SeedAdminOnly() error {
	return NewAdminSeeder(s.db).SeedAdmin()
}
