package model

import "time"

type User struct {
	ID         string `json:"id" gorm:"primaryKey"`
	TelegramID int64  `json:"telegram_id" gorm:"uniqueIndex;not null"`
	Username   string `json:"username"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	PhotoURL   string `json:"photo_url"`
	Role       string `json:"role" gorm:"default:user"`

	// Game stats. TotalXP is the single source of truth for level; Level is
	// denormalized for leaderboard queries and recomputed on every write.
	Level           int        `json:"level" gorm:"default:1"`
	TotalXP         int        `json:"total_xp" gorm:"default:0"`
	Coins           int        `json:"coins" gorm:"default:0"`
	CurrentStreak   int        `json:"current_streak" gorm:"default:0"`
	MaxStreak       int        `json:"max_streak" gorm:"default:0"`
	LastWorkoutDate *time.Time `json:"last_workout_date"`
	TotalWorkouts   int        `json:"total_workouts" gorm:"default:0"`

	NotificationsEnabled bool   `json:"notifications_enabled" gorm:"default:true"`
	ReminderTime         string `json:"reminder_time"` // HH:MM

	IsActive  bool      `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// AdminAccount is a password-protected operator login for media and catalog
// management endpoints. Regular users only ever authenticate via Telegram.
type AdminAccount struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // bcrypt hash
	LastLogin *time.Time `json:"last_login"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
