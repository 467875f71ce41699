package models

import (
	"time"
)

// Session is a logged-in admin session. It holds the upstream bearer tokens
// and a snapshot of the profile fetched at login; rows are deleted on logout.
type Session struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	AccessToken  string    `gorm:"not null" json:"-"`
	RefreshToken string    `gorm:"not null" json:"-"`
	UserID       int       `gorm:"index" json:"user_id"`
	UserName     string    `json:"user_name"`
	Email        string    `json:"email"`
	Avatar       string    `json:"avatar"`
	ExpiresAt    time.Time `gorm:"index" json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName specifies the table name for the Session model
func (Session) TableName() string {
	return "sessions"
}

// Expired reports whether the session is past its TTL
func (s *Session) Expired() bool {
	return !s.ExpiresAt.IsZero() && time.Now().After(s.ExpiresAt)
}
