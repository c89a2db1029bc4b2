package seeders

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/pixelfit-app/pixelfit_api/model"
	"github.com/pixelfit-app/pixelfit_api/shared"
	"gorm.io/gorm"
)

// ExerciseSeeder seeds the category and exercise catalog
type ExerciseSeeder struct {
	db *gorm.DB
}

func NewExerciseSeeder(db *gorm.DB) *ExerciseSeeder {
	return &ExerciseSeeder{db: db}
}

type categoryData struct {
	Slug  string
	Name  string
	Icon  string
	Color string
}

type exerciseData struct {
	Slug          string
	Category      string
	Name          string
	Description   string
	Icon          string
	Difficulty    int
	BaseXP        int
	IsTimed       bool
	RequiredLevel int
	Easier        string
	Harder        string
}

func (s *ExerciseSeeder) SeedCategories() error {
	var count int64
	s.db.Model(&model.ExerciseCategory{}).Count(&count)
	if count > 0 {
		log.Println("Categories already exist, skipping category seeding")
		return nil
	}

	categories := []categoryData{
		{shared.CategoryPush, "Push", "💪", "#e74c3c"},
		{shared.CategoryPull, "Pull", "🧗", "#3498db"},
		{shared.CategoryLegs, "Legs", "🦵", "#2ecc71"},
		{shared.CategoryCore, "Core", "🎯", "#f39c12"},
		{shared.CategoryStatic, "Static Holds", "🧘", "#9b59b6"},
		{shared.CategoryCardio, "Cardio", "🏃", "#e67e22"},
		{shared.CategoryWarmup, "Warm-up", "🔥", "#1abc9c"},
		{shared.CategoryStretch, "Stretching", "🤸", "#95a5a6"},
	}

	for i, c := range categories {
		id, _ := uuid.NewV7()
		category := model.ExerciseCategory{
			ID:        id.String(),
			Slug:      c.Slug,
			Name:      c.Name,
			Icon:      c.Icon,
			Color:     c.Color,
			SortOrder: i,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if err := s.db.Create(&category).Error; err != nil {
			return err
		}
	}

	log.Printf("Seeded %d categories", len(categories))
	return nil
}

func (s *ExerciseSeeder) SeedExercises() error {
	var count int64
	s.db.Model(&model.Exercise{}).Count(&count)
	if count > 0 {
		log.Println("Exercises already exist, skipping exercise seeding")
		return nil
	}

	var categories []model.ExerciseCategory
	if err := s.db.Find(&categories).Error; err != nil {
		return err
	}
	categoryIDs := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryIDs[c.Slug] = c.ID
	}

	exercises := []exerciseData{
		// Push progression
		{"wall-pushup", shared.CategoryPush, "Wall Push-up", "Push-up performed standing against a wall", "🧱", 1, 5, false, 1, "", "incline-pushup"},
		{"incline-pushup", shared.CategoryPush, "Incline Push-up", "Push-up with hands elevated on a bench or chair", "📐", 1, 8, false, 1, "wall-pushup", "knee-pushup"},
		{"knee-pushup", shared.CategoryPush, "Knee Push-up", "Push-up from the knees", "🦿", 2, 10, false, 2, "incline-pushup", "pushup"},
		{"pushup", shared.CategoryPush, "Push-up", "Standard full push-up", "💪", 2, 12, false, 3, "knee-pushup", "diamond-pushup"},
		{"diamond-pushup", shared.CategoryPush, "Diamond Push-up", "Push-up with hands together under the chest", "💎", 3, 16, false, 6, "pushup", "archer-pushup"},
		{"archer-pushup", shared.CategoryPush, "Archer Push-up", "Push-up shifting weight onto one arm", "🏹", 4, 22, false, 10, "diamond-pushup", "one-arm-pushup"},
		{"one-arm-pushup", shared.CategoryPush, "One-arm Push-up", "Push-up on a single arm", "☝️", 5, 30, false, 15, "archer-pushup", ""},
		{"pike-pushup", shared.CategoryPush, "Pike Push-up", "Push-up in pike position targeting shoulders", "⛰️", 3, 15, false, 5, "pushup", ""},
		{"dips", shared.CategoryPush, "Dips", "Dips between parallel bars or chairs", "🪑", 3, 15, false, 5, "", ""},

		// Pull progression
		{"doorframe-row", shared.CategoryPull, "Doorframe Row", "Row pulling against a doorframe", "🚪", 1, 8, false, 1, "", "australian-pullup"},
		{"australian-pullup", shared.CategoryPull, "Australian Pull-up", "Horizontal row under a low bar", "🦘", 2, 12, false, 3, "doorframe-row", "negative-pullup"},
		{"negative-pullup", shared.CategoryPull, "Negative Pull-up", "Slow lowering phase of a pull-up", "⬇️", 3, 14, false, 5, "australian-pullup", "pullup"},
		{"pullup", shared.CategoryPull, "Pull-up", "Full pull-up from dead hang", "🧗", 4, 20, false, 8, "negative-pullup", "archer-pullup"},
		{"chinup", shared.CategoryPull, "Chin-up", "Pull-up with underhand grip", "🤙", 3, 18, false, 7, "negative-pullup", ""},
		{"archer-pullup", shared.CategoryPull, "Archer Pull-up", "Pull-up shifting weight onto one arm", "🏹", 5, 28, false, 14, "pullup", ""},

		// Legs progression
		{"assisted-squat", shared.CategoryLegs, "Assisted Squat", "Squat holding onto support", "🪑", 1, 5, false, 1, "", "squat"},
		{"squat", shared.CategoryLegs, "Squat", "Standard bodyweight squat", "🦵", 1, 8, false, 1, "assisted-squat", "split-squat"},
		{"lunge", shared.CategoryLegs, "Lunge", "Forward stepping lunge", "🚶", 2, 10, false, 2, "squat", ""},
		{"split-squat", shared.CategoryLegs, "Split Squat", "Static lunge-position squat", "✂️", 2, 12, false, 4, "squat", "bulgarian-split-squat"},
		{"bulgarian-split-squat", shared.CategoryLegs, "Bulgarian Split Squat", "Split squat with rear foot elevated", "🇧🇬", 3, 16, false, 7, "split-squat", "pistol-squat"},
		{"pistol-squat", shared.CategoryLegs, "Pistol Squat", "Single-leg squat", "🔫", 5, 28, false, 13, "bulgarian-split-squat", ""},
		{"calf-raise", shared.CategoryLegs, "Calf Raise", "Standing calf raise", "🐐", 1, 5, false, 1, "", ""},
		{"glute-bridge", shared.CategoryLegs, "Glute Bridge", "Hip bridge from the floor", "🌉", 1, 7, false, 1, "", ""},

		// Core
		{"crunch", shared.CategoryCore, "Crunch", "Basic abdominal crunch", "🎯", 1, 6, false, 1, "", "situp"},
		{"situp", shared.CategoryCore, "Sit-up", "Full sit-up", "⤴️", 2, 9, false, 2, "crunch", "leg-raise"},
		{"leg-raise", shared.CategoryCore, "Leg Raise", "Lying leg raise", "🦶", 2, 11, false, 4, "situp", "hanging-leg-raise"},
		{"hanging-leg-raise", shared.CategoryCore, "Hanging Leg Raise", "Leg raise hanging from a bar", "🙌", 4, 20, false, 9, "leg-raise", ""},
		{"russian-twist", shared.CategoryCore, "Russian Twist", "Seated rotational twist", "🌀", 2, 8, false, 3, "", ""},

		// Static holds (timed)
		{"plank", shared.CategoryStatic, "Plank", "Front plank hold", "🧘", 2, 10, true, 1, "", "side-plank"},
		{"side-plank", shared.CategoryStatic, "Side Plank", "Plank on one forearm", "📏", 3, 12, true, 4, "plank", ""},
		{"wall-sit", shared.CategoryStatic, "Wall Sit", "Seated hold against a wall", "🪑", 2, 10, true, 2, "", ""},
		{"hollow-hold", shared.CategoryStatic, "Hollow Hold", "Hollow body hold", "🥣", 3, 14, true, 6, "", ""},
		{"superman-hold", shared.CategoryStatic, "Superman Hold", "Prone back extension hold", "🦸", 2, 9, true, 2, "", ""},
		{"dead-hang", shared.CategoryStatic, "Dead Hang", "Passive hang from a bar", "🐒", 1, 8, true, 1, "", ""},

		// Cardio
		{"jumping-jack", shared.CategoryCardio, "Jumping Jack", "Classic jumping jack", "⭐", 1, 4, false, 1, "", ""},
		{"high-knees", shared.CategoryCardio, "High Knees", "Running in place with high knees", "🏃", 2, 6, false, 1, "", ""},
		{"mountain-climber", shared.CategoryCardio, "Mountain Climber", "Alternating knee drives in plank", "⛰️", 2, 8, false, 3, "", ""},
		{"burpee", shared.CategoryCardio, "Burpee", "Squat thrust with jump", "💥", 3, 12, false, 5, "", ""},

		// Warm-up
		{"arm-circles", shared.CategoryWarmup, "Arm Circles", "Shoulder warm-up circles", "🔄", 1, 2, false, 1, "", ""},
		{"leg-swings", shared.CategoryWarmup, "Leg Swings", "Dynamic hip warm-up", "🦵", 1, 2, false, 1, "", ""},
		{"torso-twists", shared.CategoryWarmup, "Torso Twists", "Standing spinal rotation", "🌪️", 1, 2, false, 1, "", ""},

		// Stretching (timed)
		{"hamstring-stretch", shared.CategoryStretch, "Hamstring Stretch", "Standing forward fold", "🤸", 1, 3, true, 1, "", ""},
		{"quad-stretch", shared.CategoryStretch, "Quad Stretch", "Standing quadriceps stretch", "🦵", 1, 3, true, 1, "", ""},
		{"child-pose", shared.CategoryStretch, "Child's Pose", "Resting back stretch", "🧒", 1, 3, true, 1, "", ""},
	}

	for _, e := range exercises {
		categoryID, ok := categoryIDs[e.Category]
		if !ok {
			log.Printf("Unknown category %s for exercise %s, skipping", e.Category, e.Slug)
			continue
		}

		id, _ := uuid.NewV7()
		exercise := model.Exercise{
			ID:                 id.String(),
			Slug:               e.Slug,
			CategoryID:         categoryID,
			Name:               e.Name,
			Description:        e.Description,
			Icon:               e.Icon,
			Difficulty:         e.Difficulty,
			BaseXP:             e.BaseXP,
			IsTimed:            e.IsTimed,
			RequiredLevel:      e.RequiredLevel,
			EasierExerciseSlug: e.Easier,
			HarderExerciseSlug: e.Harder,
			IsActive:           true,
			CreatedAt:          time.Now(),
			UpdatedAt:          time.Now(),
		}
		if err := s.db.Create(&exercise).Error; err != nil {
			return err
		}
	}

	log.Printf("Seeded %d exercises", len(exercises))
	return nil
}
