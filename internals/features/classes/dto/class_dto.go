// file: internals/features/classes/dto/class_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	classModel "teep_backend/internals/features/classes/model"
)

type ClassCreateDTO struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description *string  `json:"description,omitempty"`
	Days        []string `json:"days" validate:"required,min=1,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	StartTime   string   `json:"start_time" validate:"required,len=5"` // HH:MM
	EndTime     string   `json:"end_time" validate:"required,len=5"`
	MaxStudents int      `json:"max_students" validate:"omitempty,min=1,max=20"`
	Level       *string  `json:"level,omitempty" validate:"omitempty,max=30"`
	Location    *string  `json:"location,omitempty" validate:"omitempty,max=120"`
}

type ClassUpdateDTO struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,max=100"`
	Description *string  `json:"description,omitempty"`
	Days        []string `json:"days,omitempty" validate:"omitempty,min=1,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	StartTime   *string  `json:"start_time,omitempty" validate:"omitempty,len=5"`
	EndTime     *string  `json:"end_time,omitempty" validate:"omitempty,len=5"`
	MaxStudents *int     `json:"max_students,omitempty" validate:"omitempty,min=1,max=20"`
	Level       *string  `json:"level,omitempty" validate:"omitempty,max=30"`
	Location    *string  `json:"location,omitempty" validate:"omitempty,max=120"`
}

type RosterAddDTO struct {
	StudentID *uuid.UUID `json:"student_id,omitempty"`
	// StudentName lets the roster hold walk-ins that have no student row yet.
	StudentName string `json:"student_name" validate:"omitempty,max=100"`
}

type RosterEntryResponse struct {
	ID          uuid.UUID  `json:"id"`
	ClassID     uuid.UUID  `json:"class_id"`
	StudentID   *uuid.UUID `json:"student_id,omitempty"`
	StudentName string     `json:"student_name"`
	CreatedAt   time.Time  `json:"created_at"`
}

type ClassResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Days        []string  `json:"days"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	MaxStudents int       `json:"max_students"`
	Level       *string   `json:"level,omitempty"`
	Location    *string   `json:"location,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Roster []RosterEntryResponse `json:"roster,omitempty"`
}

func ToClassResponse(m classModel.Class) ClassResponse {
	return ClassResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Days:        append([]string(nil), m.Days...),
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
		MaxStudents: m.MaxStudents,
		Level:       m.Level,
		Location:    m.Location,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func ToClassResponses(ms []classModel.Class) []ClassResponse {
	out := make([]ClassResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToClassResponse(m))
	}
	return out
}

func ToRosterEntryResponse(m classModel.ClassStudent) RosterEntryResponse {
	return RosterEntryResponse{
		ID:          m.ID,
		ClassID:     m.ClassID,
		StudentID:   m.StudentID,
		StudentName: m.StudentName,
		CreatedAt:   m.CreatedAt,
	}
}

func ToRosterEntryResponses(ms []classModel.ClassStudent) []RosterEntryResponse {
	out := make([]RosterEntryResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToRosterEntryResponse(m))
	}
	return out
}
