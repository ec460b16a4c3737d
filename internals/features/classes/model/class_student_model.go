// file: internals/features/classes/model/class_student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ClassStudent is one roster slot. StudentName is denormalized so the
// roster keeps rendering even after the student row is deleted.
type ClassStudent struct {
	ID          uuid.UUID  `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID      uuid.UUID  `json:"user_id" gorm:"type:uuid;not null;index:ix_class_students_user"`
	ClassID     uuid.UUID  `json:"class_id" gorm:"type:uuid;not null;index:idx_class_students_class"`
	StudentID   *uuid.UUID `json:"student_id,omitempty" gorm:"type:uuid;index"`
	StudentName string     `json:"student_name" gorm:"type:varchar(100);not null"`

	CreatedAt time.Time `json:"created_at"`
}

func (ClassStudent) TableName() string { return "class_students" }
