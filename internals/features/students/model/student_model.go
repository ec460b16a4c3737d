// file: internals/features/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// =========================================================
// ENUMS - student lifecycle & billing
// =========================================================

type StudentStatus string

const (
	StudentStatusActive    StudentStatus = "active"
	StudentStatusInactive  StudentStatus = "inactive"
	StudentStatusSuspended StudentStatus = "suspended"
	StudentStatusTrial     StudentStatus = "trial"
)

type FeeType string

const (
	FeeTypeMonthly  FeeType = "monthly"
	FeeTypeWeekly   FeeType = "weekly"
	FeeTypePerClass FeeType = "per_class"
	FeeTypePackage  FeeType = "package"
)

// =========================================================
// MODEL
// =========================================================

type Student struct {
	// PK
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`

	// Owner (row-level tenant boundary)
	UserID uuid.UUID `gorm:"type:uuid;not null;index:ix_students_user" json:"user_id"`

	// Identity & contact
	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:255" json:"email"`
	Phone string `gorm:"size:20" json:"phone"`

	// Court level badge (ball color system)
	BadgeColor       string `gorm:"size:20" json:"badge_color"`
	BadgeDescription string `gorm:"size:60" json:"badge_description"`

	// Personal
	BirthDate        *time.Time `gorm:"type:date" json:"birth_date,omitempty"`
	Address          *string    `json:"address,omitempty"`
	EmergencyContact *string    `gorm:"size:100" json:"emergency_contact,omitempty"`
	EmergencyPhone   *string    `gorm:"size:20" json:"emergency_phone,omitempty"`
	MedicalInfo      *string    `json:"medical_info,omitempty"`

	// Billing configuration
	MonthlyFeeType     FeeType  `gorm:"type:varchar(20);not null;default:'monthly'" json:"monthly_fee_type"`
	MonthlyFeeAmount   *float64 `gorm:"type:numeric(10,2)" json:"monthly_fee_amount,omitempty"`
	PaymentDay         *int     `gorm:"check:payment_day >= 1 AND payment_day <= 31" json:"payment_day,omitempty"`
	DiscountPercentage *float64 `gorm:"type:numeric(5,2)" json:"discount_percentage,omitempty"`

	// Free-form
	Notes     *string        `json:"notes,omitempty"`
	Documents datatypes.JSON `gorm:"type:jsonb" json:"documents,omitempty"`

	// Lifecycle
	Status         StudentStatus `gorm:"type:varchar(20);not null;default:'active';index:ix_students_status" json:"status"`
	EnrollmentDate *time.Time    `gorm:"type:date" json:"enrollment_date,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Student) TableName() string {
	return "students"
}

// HasBillableFee reports whether the student carries a positive configured fee.
func (s *Student) HasBillableFee() bool {
	return s.MonthlyFeeAmount != nil && *s.MonthlyFeeAmount > 0
}
