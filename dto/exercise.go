package dto

import "time"

type CategoryResponse struct {
	ID        string `json:"id"`
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	SortOrder int    `json:"sort_order"`
}

type ExerciseResponse struct {
	ID                 string `json:"id"`
	Slug               string `json:"slug"`
	CategorySlug       string `json:"category_slug"`
	Name               string `json:"name"`
	Description        string `json:"description,omitempty"`
	Icon               string `json:"icon"`
	GifURL             string `json:"gif_url,omitempty"`
	Difficulty         int    `json:"difficulty"`
	BaseXP             int    `json:"base_xp"`
	IsTimed            bool   `json:"is_timed"`
	RequiredLevel      int    `json:"required_level"`
	EasierExerciseSlug string `json:"easier_exercise_slug,omitempty"`
	HarderExerciseSlug string `json:"harder_exercise_slug,omitempty"`
	IsFavorite         bool   `json:"is_favorite"`
	Locked             bool   `json:"locked"`
}

type ExerciseProgressResponse struct {
	ExerciseSlug       string     `json:"exercise_slug"`
	TotalRepsEver      int        `json:"total_reps_ever"`
	BestSingleSet      int        `json:"best_single_set"`
	TimesPerformed     int        `json:"times_performed"`
	RecommendedUpgrade bool       `json:"recommended_upgrade"`
	LastPerformedAt    *time.Time `json:"last_performed_at"`
}

type FavoriteResponse struct {
	ExerciseSlug string `json:"exercise_slug"`
	IsFavorite   bool   `json:"is_favorite"`
}

type SearchExercisesRequest struct {
	Category   string `json:"category" form:"category"`
	Difficulty int    `json:"difficulty" form:"difficulty" validate:"omitempty,min=1,max=5"`
	Query      string `json:"query" form:"query"`
}

func (r SearchExercisesRequest) Validate() error {
	return validate.Struct(r)
}
