package model

import "time"

// ExerciseCategory groups exercises for the catalog screen (push, pull, ...).
type ExerciseCategory struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;not null"`
	Name      string    `json:"name" gorm:"not null"`
	Icon      string    `json:"icon"`
	Color     string    `json:"color"`
	SortOrder int       `json:"sort_order" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Exercise is a catalog entry. IsTimed switches the logged value from reps
// to held seconds.
type Exercise struct {
	ID            string `json:"id" gorm:"primaryKey"`
	Slug          string `json:"slug" gorm:"uniqueIndex;not null"`
	CategoryID    string `json:"category_id" gorm:"not null"`
	Name          string `json:"name" gorm:"not null"`
	Description   string `json:"description" gorm:"type:text"`
	Icon          string `json:"icon"`
	GifURL        string `json:"gif_url"`
	Difficulty    int    `json:"difficulty" gorm:"default:1"` // 1-5
	BaseXP        int    `json:"base_xp" gorm:"default:10"`
	IsTimed       bool   `json:"is_timed" gorm:"default:false"`
	RequiredLevel int    `json:"required_level" gorm:"default:1"`

	// Progression chain, nullable on both ends
	EasierExerciseSlug string `json:"easier_exercise_slug"`
	HarderExerciseSlug string `json:"harder_exercise_slug"`

	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Category ExerciseCategory `json:"category" gorm:"foreignKey:CategoryID"`
}

// UserExerciseProgress tracks lifetime volume per user per exercise.
type UserExerciseProgress struct {
	ID                 string     `json:"id" gorm:"primaryKey"`
	UserID             string     `json:"user_id" gorm:"index:idx_user_exercise,unique;not null"`
	ExerciseID         string     `json:"exercise_id" gorm:"index:idx_user_exercise,unique;not null"`
	TotalRepsEver      int        `json:"total_reps_ever" gorm:"default:0"`
	BestSingleSet      int        `json:"best_single_set" gorm:"default:0"`
	TimesPerformed     int        `json:"times_performed" gorm:"default:0"`
	RecommendedUpgrade bool       `json:"recommended_upgrade" gorm:"default:false"`
	LastPerformedAt    *time.Time `json:"last_performed_at"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	Exercise Exercise `json:"exercise" gorm:"foreignKey:ExerciseID"`
}

// Favorite marks an exercise pinned by the user.
type Favorite struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	UserID     string    `json:"user_id" gorm:"index:idx_user_favorite,unique;not null"`
	ExerciseID string    `json:"exercise_id" gorm:"index:idx_user_favorite,unique;not null"`
	CreatedAt  time.Time `json:"created_at"`
}
