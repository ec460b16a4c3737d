// file: internals/features/finance/invoices/model/invoice_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type InvoiceStatus string

const (
	InvoicePending InvoiceStatus = "pending"
	InvoicePaid    InvoiceStatus = "paid"
	InvoiceOverdue InvoiceStatus = "overdue"
)

// Invoice is one monthly charge for one student. StudentName and Amount
// are snapshots taken at generation time; the fee-sync path is the only
// thing that rewrites Amount afterwards, and only while still pending.
type Invoice struct {
	ID             uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID         uuid.UUID     `json:"user_id" gorm:"type:uuid;not null;index:ix_invoices_user"`
	StudentID      uuid.UUID     `json:"student_id" gorm:"type:uuid;not null;index:idx_invoices_student"`
	StudentName    string        `json:"student_name" gorm:"type:varchar(100);not null"`
	Amount         float64       `json:"amount" gorm:"type:numeric(10,2);not null"`
	DueDate        time.Time     `json:"due_date" gorm:"type:date;not null"`
	Status         InvoiceStatus `json:"status" gorm:"type:varchar(10);not null;default:'pending';index"`
	MonthReference string        `json:"month_reference" gorm:"type:char(7);not null;index:idx_invoices_month"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Invoice) TableName() string { return "invoices" }
