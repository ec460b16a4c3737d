package model

import (
	"time"

	"github.com/google/uuid"
)

// UserProfile holds the instructor-facing profile shown on the settings page.
type UserProfile struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	FullName  string    `gorm:"size:100" json:"full_name"`
	Phone     string    `gorm:"size:20" json:"phone"`
	AvatarURL string    `gorm:"type:text" json:"avatar_url"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
