package dto

type LeaderboardRequest struct {
	Period string `json:"period" form:"period" validate:"omitempty,oneof=weekly monthly all_time"`
	Limit  int    `json:"limit" form:"limit" validate:"omitempty,min=1,max=100"`
}

func (r LeaderboardRequest) Validate() error {
	return validate.Struct(r)
}

type LeaderboardEntry struct {
	UserID        string `json:"user_id"`
	Username      string `json:"username"`
	PhotoURL      string `json:"photo_url,omitempty"`
	Level         int    `json:"level"`
	XP            int    `json:"xp"`
	CurrentStreak int    `json:"current_streak"`
	Rank          int    `json:"rank"`
}

type LeaderboardResponse struct {
	Period      string             `json:"period"`
	CurrentUser *LeaderboardEntry  `json:"current_user"`
	TopUsers    []LeaderboardEntry `json:"top_users"`
}
