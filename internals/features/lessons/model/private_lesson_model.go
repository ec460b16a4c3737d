// file: internals/features/lessons/model/private_lesson_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type LessonType string

const (
	LessonRegular LessonType = "regular"
	LessonMakeup  LessonType = "makeup"
	LessonTrial   LessonType = "trial"
)

// PrivateLesson is a one-off booked slot. StudentName is denormalized;
// StudentID stays nullable so trial lessons for prospects work too.
type PrivateLesson struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID      uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index:ix_private_lessons_user"`
	StudentID   *uuid.UUID `json:"student_id,omitempty" gorm:"type:uuid;index"`
	StudentName string     `json:"student_name" gorm:"type:varchar(100);not null"`
	Date        time.Time  `json:"date" gorm:"type:date;not null;index:idx_private_lessons_date"`
	Time        string     `json:"time" gorm:"type:varchar(5);not null"` // HH:MM
	Type        LessonType `json:"type" gorm:"type:varchar(10);not null;default:'regular'"`
	Notes       *string    `json:"notes,omitempty" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (PrivateLesson) TableName() string { return "private_lessons" }
