package model

import (
	"encoding/json"
	"time"
)

// Achievement definitions are seeded from the catalog JSON; Condition keeps
// the raw unlock condition, e.g. {"type":"streak","value":7}.
type Achievement struct {
	ID          string          `json:"id" gorm:"primaryKey"`
	Slug        string          `json:"slug" gorm:"uniqueIndex;not null"`
	Name        string          `json:"name" gorm:"not null"`
	Description string          `json:"description"`
	Icon        string          `json:"icon"`
	BadgeURL    string          `json:"badge_url"`
	Category    string          `json:"category"` // streak, volume, level, special
	Condition   json.RawMessage `json:"condition" gorm:"type:text"`
	XPReward    int             `json:"xp_reward" gorm:"default:0"`
	CoinReward  int             `json:"coin_reward" gorm:"default:0"`
	IsActive    bool            `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// AchievementCondition is the decoded form of Achievement.Condition.
type AchievementCondition struct {
	Type     string `json:"type"`
	Value    int    `json:"value"`
	Exercise string `json:"exercise,omitempty"` // slug, leading or trailing * wildcard
	Before   string `json:"before,omitempty"`   // HH:MM
	After    string `json:"after,omitempty"`    // HH:MM
}

type UserAchievement struct {
	ID            string    `json:"id" gorm:"primaryKey"`
	UserID        string    `json:"user_id" gorm:"index:idx_user_achievement,unique;not null"`
	AchievementID string    `json:"achievement_id" gorm:"index:idx_user_achievement,unique;not null"`
	UnlockedAt    time.Time `json:"unlocked_at"`
	CreatedAt     time.Time `json:"created_at"`

	Achievement Achievement `json:"achievement" gorm:"foreignKey:AchievementID"`
}
