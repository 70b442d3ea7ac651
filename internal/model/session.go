package model

import (
	"time"
)

// SessionPreference is the per-browser key-value state that the front-end
// kept in localStorage: the remembered language and a referral code captured
// from the /user/:user_id route, attached to the next donation.
type SessionPreference struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	SessionID  string `json:"session_id" gorm:"uniqueIndex;not null"`
	Language   string `json:"language" gorm:"default:'en'"`
	ReferredBy string `json:"referred_by"`
}
