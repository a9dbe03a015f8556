package model

import "time"

// UserToken is one issued login session. A row is created per login and
// invalidated on logout by moving expires_at into the past, never deleted.
type UserToken struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Token     string    `json:"token" gorm:"index;size:512;not null"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
