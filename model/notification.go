package model

import "time"

// Notification is an in-app inbox entry created by the workout pipeline
// (level-ups, achievement unlocks, completed goals). Delivery to Telegram is
// a separate concern; rows here only feed the mini-app inbox.
type Notification struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"index;not null"`
	Type      string    `json:"type" gorm:"not null"` // level_up, achievement, goal_completed
	Title     string    `json:"title" gorm:"not null"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
}
