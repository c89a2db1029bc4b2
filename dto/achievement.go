package dto

import "time"

type AchievementResponse struct {
	Slug        string     `json:"slug"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	BadgeURL    string     `json:"badge_url,omitempty"`
	Category    string     `json:"category"`
	XPReward    int        `json:"xp_reward"`
	CoinReward  int        `json:"coin_reward"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
}
