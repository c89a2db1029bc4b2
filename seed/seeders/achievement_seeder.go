package seeders

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/pixelfit-app/pixelfit_api/model"
	"gorm.io/gorm"
)

// AchievementSeeder seeds the achievement catalog
type AchievementSeeder struct {
	db *gorm.DB
}

func NewAchievementSeeder(db *gorm.DB) *AchievementSeeder {
	return &AchievementSeeder{db: db}
}

type achievementData struct {
	Slug        string
	Name        string
	Description string
	Icon        string
	Category    string
	Condition   model.AchievementCondition
	XPReward    int
	CoinReward  int
}

func (s *AchievementSeeder) SeedAchievements() error {
	var count int64
	s.db.Model(&model.Achievement{}).Count(&count)
	if count > 0 {
		log.Println("Achievements already exist, skipping achievement seeding")
		return nil
	}

	achievements := []achievementData{
		{"first-steps", "First Steps", "Complete your first workout", "👟", "volume",
			model.AchievementCondition{Type: "total_workouts", Value: 1}, 20, 5},
		{"getting-started", "Getting Started", "Complete 10 workouts", "🚀", "volume",
			model.AchievementCondition{Type: "total_workouts", Value: 10}, 50, 10},
		{"half-century", "Half Century", "Complete 50 workouts", "🏅", "volume",
			model.AchievementCondition{Type: "total_workouts", Value: 50}, 150, 25},
		{"centurion", "Centurion", "Complete 100 workouts", "💯", "volume",
			model.AchievementCondition{Type: "total_workouts", Value: 100}, 300, 50},

		{"on-a-roll", "On a Roll", "Train 3 days in a row", "🔥", "streak",
			model.AchievementCondition{Type: "streak", Value: 3}, 30, 5},
		{"week-warrior", "Week Warrior", "Train 7 days in a row", "⚔️", "streak",
			model.AchievementCondition{Type: "streak", Value: 7}, 80, 15},
		{"unstoppable", "Unstoppable", "Train 30 days in a row", "🌋", "streak",
			model.AchievementCondition{Type: "streak", Value: 30}, 400, 60},

		{"level-5", "Apprentice", "Reach level 5", "🌱", "level",
			model.AchievementCondition{Type: "level", Value: 5}, 50, 10},
		{"level-10", "Athlete", "Reach level 10", "🏃", "level",
			model.AchievementCondition{Type: "level", Value: 10}, 120, 20},
		{"level-20", "Champion", "Reach level 20", "👑", "level",
			model.AchievementCondition{Type: "level", Value: 20}, 300, 50},

		{"xp-10k", "Ten Thousand Club", "Earn 10,000 total XP", "💎", "volume",
			model.AchievementCondition{Type: "total_xp", Value: 10000}, 200, 30},

		{"pushup-master", "Push-up Master", "500 lifetime reps across the push-up chain", "💪", "special",
			model.AchievementCondition{Type: "exercise_reps", Value: 500, Exercise: "*pushup"}, 150, 20},
		{"squat-king", "Squat King", "1000 lifetime squat reps", "🦵", "special",
			model.AchievementCondition{Type: "exercise_reps", Value: 1000, Exercise: "squat"}, 150, 20},

		{"early-bird", "Early Bird", "Finish a workout before 7 AM", "🐦", "special",
			model.AchievementCondition{Type: "time_of_day", Before: "07:00"}, 40, 10},
		{"night-owl", "Night Owl", "Finish a workout after 11 PM", "🦉", "special",
			model.AchievementCondition{Type: "time_of_day", After: "23:00"}, 40, 10},
	}

	for _, a := range achievements {
		condition, err := json.Marshal(a.Condition)
		if err != nil {
			return err
		}

		id, _ := uuid.NewV7()
		achievement := model.Achievement{
			ID:          id.String(),
			Slug:        a.Slug,
			Name:        a.Name,
			Description: a.Description,
			Icon:        a.Icon,
			Category:    a.Category,
			Condition:   condition,
			XPReward:    a.XPReward,
			CoinReward:  a.CoinReward,
			IsActive:    true,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		}
		if err := s.db.Create(&achievement).Error; err != nil {
			return err
		}
	}

	log.Printf("Seeded %d achievements", len(achievements))
	return nil
}
