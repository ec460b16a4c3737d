// file: internals/features/notes/dto/note_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	noteModel "teep_backend/internals/features/notes/model"
)

type NoteCreateDTO struct {
	Title    string `json:"title" validate:"required,max=120"`
	Content  string `json:"content" validate:"required"`
	Category string `json:"category" validate:"omitempty,oneof=general student class finance idea"`
}

type NoteUpdateDTO struct {
	Title    *string `json:"title,omitempty" validate:"omitempty,max=120"`
	Content  *string `json:"content,omitempty"`
	Category *string `json:"category,omitempty" validate:"omitempty,oneof=general student class finance idea"`
}

type NoteResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToNoteResponse(m noteModel.Note) NoteResponse {
	return NoteResponse{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		Category:  m.Category,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToNoteResponses(ms []noteModel.Note) []NoteResponse {
	out := make([]NoteResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToNoteResponse(m))
	}
	return out
}
