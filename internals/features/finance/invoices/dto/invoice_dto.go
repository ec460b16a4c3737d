// file: internals/features/finance/invoices/dto/invoice_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	invoiceModel "teep_backend/internals/features/finance/invoices/model"
)

type GenerateInvoicesDTO struct {
	MonthReference string `json:"month_reference" validate:"required,len=7"` // YYYY-MM
}

type InvoiceStatusDTO struct {
	Status string `json:"status" validate:"required,oneof=pending paid overdue"`
}

type InvoiceResponse struct {
	ID             uuid.UUID `json:"id"`
	StudentID      uuid.UUID `json:"student_id"`
	StudentName    string    `json:"student_name"`
	Amount         float64   `json:"amount"`
	DueDate        string    `json:"due_date"`
	Status         string    `json:"status"`
	MonthReference string    `json:"month_reference"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// MonthSummary is the totals card for one billing month.
type MonthSummary struct {
	MonthReference string  `json:"month_reference"`
	TotalAmount    float64 `json:"total_amount"`
	PaidAmount     float64 `json:"paid_amount"`
	PendingAmount  float64 `json:"pending_amount"`
	OverdueAmount  float64 `json:"overdue_amount"`
	TotalCount     int     `json:"total_count"`
	PaidCount      int     `json:"paid_count"`
	PendingCount   int     `json:"pending_count"`
	OverdueCount   int     `json:"overdue_count"`
}

type WhatsAppLinkResponse struct {
	InvoiceID uuid.UUID `json:"invoice_id"`
	Phone     string    `json:"phone"`
	Link      string    `json:"link"`
	Message   string    `json:"message"`
}

func ToInvoiceResponse(m invoiceModel.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:             m.ID,
		StudentID:      m.StudentID,
		StudentName:    m.StudentName,
		Amount:         m.Amount,
		DueDate:        m.DueDate.Format("2006-01-02"),
		Status:         string(m.Status),
		MonthReference: m.MonthReference,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func ToInvoiceResponses(ms []invoiceModel.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, ToInvoiceResponse(m))
	}
	return out
}

// BuildMonthSummary folds one month's invoices into the totals card.
func BuildMonthSummary(ref string, invoices []invoiceModel.Invoice) MonthSummary {
	s := MonthSummary{MonthReference: ref}
	for _, inv := range invoices {
		s.TotalAmount += inv.Amount
		s.TotalCount++
		switch inv.Status {
		case invoiceModel.InvoicePaid:
			s.PaidAmount += inv.Amount
			s.PaidCount++
		case invoiceModel.InvoiceOverdue:
			s.OverdueAmount += inv.Amount
			s.OverdueCount++
		default:
			s.PendingAmount += inv.Amount
			s.PendingCount++
		}
	}
	return s
}
