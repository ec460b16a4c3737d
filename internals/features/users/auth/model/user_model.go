package model

import (
	"time"

	"github.com/google/uuid"
)

// User represents the users table.
type User struct {
	ID               uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName         string     `gorm:"size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	Email            string     `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password         string     `gorm:"not null" json:"-" validate:"required,min=6"`
	IsActive         bool       `gorm:"not null;default:true" json:"is_active"`
	EmailConfirmedAt *time.Time `json:"email_confirmed_at,omitempty"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
