package models

import (
	"time"

	"gorm.io/gorm"
)

// Credential represents the stored login for the trainer backend. There is at
// most one row; logging in again replaces it.
type Credential struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID string `gorm:"not null" json:"user_id"`
	Token  string `gorm:"not null" json:"-"`
}

// SavedLog caches a successfully persisted workout log so past sessions can
// be listed without the backend. Only logs the server accepted are cached;
// in-progress session state is never written here.
type SavedLog struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	LogID           string    `gorm:"uniqueIndex;not null" json:"log_id"`
	SessionID       string    `gorm:"index" json:"session_id"`
	PlanID          string    `gorm:"not null" json:"plan_id"`
	Day             string    `gorm:"not null" json:"day"`
	CompletedAt     time.Time `json:"completed_at"`
	SessionRPE      int       `json:"session_rpe"`
	DurationMinutes int       `json:"duration_minutes"`

	// Full WorkoutLogCreate payload as sent to the server, JSON-encoded
	Payload string `json:"payload"`
}
