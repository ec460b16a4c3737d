// file: internals/features/notes/model/note_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID   uuid.UUID `json:"user_id" gorm:"type:uuid;not null;index:ix_notes_user"`
	Title    string    `json:"title" gorm:"type:varchar(120);not null"`
	Content  string    `json:"content" gorm:"type:text;not null"`
	Category string    `json:"category" gorm:"type:varchar(30);not null;default:'general';index"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Note) TableName() string { return "notes" }
