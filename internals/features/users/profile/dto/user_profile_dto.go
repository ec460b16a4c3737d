// file: internals/features/users/profile/dto/user_profile_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	profileModel "teep_backend/internals/features/users/profile/model"
)

type UserProfileUpdateDTO struct {
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=100"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

type UserProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FullName  string    `json:"full_name"`
	Phone     string    `json:"phone"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToUserProfileResponse(m profileModel.UserProfile) UserProfileResponse {
	return UserProfileResponse{
		ID:        m.ID,
		UserID:    m.UserID,
		FullName:  m.FullName,
		Phone:     m.Phone,
		AvatarURL: m.AvatarURL,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
