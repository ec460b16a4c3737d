// file: internals/features/students/dto/student_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	studentModel "teep_backend/internals/features/students/model"
)

////////////////////////////////////////////////////////////////////////////////
// STUDENTS - DTO
////////////////////////////////////////////////////////////////////////////////

// DocumentFile is one attachment entry inside the documents jsonb array.
type DocumentFile struct {
	Name       string    `json:"name"`
	URL        string    `json:"url"`
	Type       string    `json:"type"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
}

type StudentCreateDTO struct {
	Name             string `json:"name" validate:"required,max=100"`
	Email            string `json:"email" validate:"omitempty,email"`
	Phone            string `json:"phone" validate:"omitempty,max=20"`
	BadgeColor       string `json:"badge_color" validate:"omitempty,oneof=red orange green yellow"`
	BadgeDescription string `json:"badge_description" validate:"omitempty,max=60"`

	BirthDate        *string `json:"birth_date,omitempty"` // YYYY-MM-DD
	Address          *string `json:"address,omitempty"`
	EmergencyContact *string `json:"emergency_contact,omitempty"`
	EmergencyPhone   *string `json:"emergency_phone,omitempty"`
	MedicalInfo      *string `json:"medical_info,omitempty"`

	MonthlyFeeType     string   `json:"monthly_fee_type" validate:"omitempty,oneof=monthly weekly per_class package"`
	MonthlyFeeAmount   *float64 `json:"monthly_fee_amount,omitempty" validate:"omitempty,min=0"`
	PaymentDay         *int     `json:"payment_day,omitempty" validate:"omitempty,min=1,max=31"`
	DiscountPercentage *float64 `json:"discount_percentage,omitempty" validate:"omitempty,min=0,max=100"`

	Notes          *string `json:"notes,omitempty"`
	Status         string  `json:"status" validate:"omitempty,oneof=active inactive suspended trial"`
	EnrollmentDate *string `json:"enrollment_date,omitempty"` // YYYY-MM-DD
}

// StudentUpdateDTO is partial; nil fields keep their stored value.
type StudentUpdateDTO struct {
	Name             *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Email            *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone            *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	BadgeColor       *string `json:"badge_color,omitempty" validate:"omitempty,oneof=red orange green yellow"`
	BadgeDescription *string `json:"badge_description,omitempty" validate:"omitempty,max=60"`

	BirthDate        *string `json:"birth_date,omitempty"`
	Address          *string `json:"address,omitempty"`
	EmergencyContact *string `json:"emergency_contact,omitempty"`
	EmergencyPhone   *string `json:"emergency_phone,omitempty"`
	MedicalInfo      *string `json:"medical_info,omitempty"`

	MonthlyFeeType     *string  `json:"monthly_fee_type,omitempty" validate:"omitempty,oneof=monthly weekly per_class package"`
	MonthlyFeeAmount   *float64 `json:"monthly_fee_amount,omitempty" validate:"omitempty,min=0"`
	PaymentDay         *int     `json:"payment_day,omitempty" validate:"omitempty,min=1,max=31"`
	DiscountPercentage *float64 `json:"discount_percentage,omitempty" validate:"omitempty,min=0,max=100"`

	Notes          *string        `json:"notes,omitempty"`
	Documents      []DocumentFile `json:"documents,omitempty"`
	Status         *string        `json:"status,omitempty" validate:"omitempty,oneof=active inactive suspended trial"`
	EnrollmentDate *string        `json:"enrollment_date,omitempty"`
}

type StudentResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	BadgeColor       string    `json:"badge_color"`
	BadgeDescription string    `json:"badge_description"`

	BirthDate        *string `json:"birth_date,omitempty"`
	Address          *string `json:"address,omitempty"`
	EmergencyContact *string `json:"emergency_contact,omitempty"`
	EmergencyPhone   *string `json:"emergency_phone,omitempty"`
	MedicalInfo      *string `json:"medical_info,omitempty"`

	MonthlyFeeType     string   `json:"monthly_fee_type"`
	MonthlyFeeAmount   *float64 `json:"monthly_fee_amount,omitempty"`
	PaymentDay         *int     `json:"payment_day,omitempty"`
	DiscountPercentage *float64 `json:"discount_percentage,omitempty"`

	Notes          *string        `json:"notes,omitempty"`
	Documents      datatypes.JSON `json:"documents,omitempty"`
	Status         string         `json:"status"`
	EnrollmentDate *string        `json:"enrollment_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

////////////////////////////////////////////////////////////////////////////////
// MAPPERS
////////////////////////////////////////////////////////////////////////////////

func ToStudentResponse(m studentModel.Student) StudentResponse {
	return StudentResponse{
		ID:                 m.ID,
		Name:               m.Name,
		Email:              m.Email,
		Phone:              m.Phone,
		BadgeColor:         m.BadgeColor,
		BadgeDescription:   m.BadgeDescription,
		BirthDate:          dateToStr(m.BirthDate),
		Address:            m.Address,
		EmergencyContact:   m.EmergencyContact,
		EmergencyPhone:     m.EmergencyPhone,
		MedicalInfo:        m.MedicalInfo,
		MonthlyFeeType:     string(m.MonthlyFeeType),
		MonthlyFeeAmount:   m.MonthlyFeeAmount,
		PaymentDay:         m.PaymentDay,
		DiscountPercentage: m.DiscountPercentage,
		Notes:              m.Notes,
		Documents:          m.Documents,
		Status:             string(m.Status),
		EnrollmentDate:     dateToStr(m.EnrollmentDate),
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

func ToStudentResponses(ms []studentModel.Student) []StudentResponse {
	out := make([]StudentResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToStudentResponse(m))
	}
	return out
}

func dateToStr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

// ParseDate parses the YYYY-MM-DD strings the forms submit.
func ParseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
