// file: internals/features/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Class is a recurring group class slot (e.g. Mon/Wed 18:00, up to 4 players).
type Class struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID      uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index:ix_classes_user"`
	Name        string         `json:"name" gorm:"type:varchar(100);not null"`
	Description *string        `json:"description,omitempty" gorm:"type:text"`
	Days        pq.StringArray `json:"days" gorm:"type:text[];not null"`
	StartTime   string         `json:"start_time" gorm:"type:varchar(5);not null"` // HH:MM
	EndTime     string         `json:"end_time" gorm:"type:varchar(5);not null"`
	MaxStudents int            `json:"max_students" gorm:"not null;default:4"`
	Level       *string        `json:"level,omitempty" gorm:"type:varchar(30)"`
	Location    *string        `json:"location,omitempty" gorm:"type:varchar(120)"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Class) TableName() string { return "classes" }
