package model

import (
	"time"

	"github.com/google/uuid"
)

// EmailConfirmation is a one-time token mailed at signup; login is blocked
// until the token is consumed.
type EmailConfirmation struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Token       string     `gorm:"size:64;not null;unique" json:"token"`
	ExpiresAt   time.Time  `gorm:"not null" json:"expires_at"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (EmailConfirmation) TableName() string {
	return "email_confirmations"
}
