package dto

// CreateExerciseRequest covers both create and update; an empty ID means
// create.
type CreateExerciseRequest struct {
	ID                 string `json:"id"`
	Slug               string `json:"slug" validate:"required,min=2,max=60"`
	CategoryID         string `json:"category_id" validate:"required"`
	Name               string `json:"name" validate:"required,min=2,max=80"`
	Description        string `json:"description"`
	Icon               string `json:"icon"`
	Difficulty         int    `json:"difficulty" validate:"required,min=1,max=5"`
	BaseXP             int    `json:"base_xp" validate:"required,min=1"`
	IsTimed            bool   `json:"is_timed"`
	RequiredLevel      int    `json:"required_level" validate:"omitempty,min=1"`
	EasierExerciseSlug string `json:"easier_exercise_slug"`
	HarderExerciseSlug string `json:"harder_exercise_slug"`
	IsActive           *bool  `json:"is_active"`
}

func (r CreateExerciseRequest) Validate() error {
	return validate.Struct(r)
}

type CreateShopItemRequest struct {
	ID            string `json:"id"`
	Slug          string `json:"slug" validate:"required,min=2,max=60"`
	Name          string `json:"name" validate:"required,min=2,max=80"`
	ItemType      string `json:"item_type" validate:"required,oneof=avatar theme badge"`
	PriceCoins    int    `json:"price_coins" validate:"required,min=1"`
	RequiredLevel int    `json:"required_level" validate:"omitempty,min=1"`
	IsActive      *bool  `json:"is_active"`
}

func (r CreateShopItemRequest) Validate() error {
	return validate.Struct(r)
}

type UpdateRateLimitRequest struct {
	MaxRequests int    `json:"max_requests" validate:"omitempty,min=1"`
	WindowSize  string `json:"window_size"` // e.g. "15m", "1h"
	IsActive    *bool  `json:"is_active"`
}

func (r UpdateRateLimitRequest) Validate() error {
	return validate.Struct(r)
}
