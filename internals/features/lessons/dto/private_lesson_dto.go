// file: internals/features/lessons/dto/private_lesson_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	lessonModel "teep_backend/internals/features/lessons/model"
)

type PrivateLessonCreateDTO struct {
	StudentID   *uuid.UUID `json:"student_id,omitempty"`
	StudentName string     `json:"student_name" validate:"omitempty,max=100"`
	Date        string     `json:"date" validate:"required"` // YYYY-MM-DD
	Time        string     `json:"time" validate:"required,len=5"`
	Type        string     `json:"type" validate:"omitempty,oneof=regular makeup trial"`
	Notes       *string    `json:"notes,omitempty"`
}

type PrivateLessonUpdateDTO struct {
	StudentID   *uuid.UUID `json:"student_id,omitempty"`
	StudentName *string    `json:"student_name,omitempty" validate:"omitempty,max=100"`
	Date        *string    `json:"date,omitempty"`
	Time        *string    `json:"time,omitempty" validate:"omitempty,len=5"`
	Type        *string    `json:"type,omitempty" validate:"omitempty,oneof=regular makeup trial"`
	Notes       *string    `json:"notes,omitempty"`
}

type PrivateLessonResponse struct {
	ID          uuid.UUID  `json:"id"`
	StudentID   *uuid.UUID `json:"student_id,omitempty"`
	StudentName string     `json:"student_name"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	Type        string     `json:"type"`
	Notes       *string    `json:"notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func ToPrivateLessonResponse(m lessonModel.PrivateLesson) PrivateLessonResponse {
	return PrivateLessonResponse{
		ID:          m.ID,
		StudentID:   m.StudentID,
		StudentName: m.StudentName,
		Date:        m.Date.Format("2006-01-02"),
		Time:        m.Time,
		Type:        string(m.Type),
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToPrivateLessonResponses(ms []lessonModel.PrivateLesson) []PrivateLessonResponse {
	out := make([]PrivateLessonResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToPrivateLessonResponse(m))
	}
	return out
}
