// file: internals/features/finance/invoices/service/generator.go
package service

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	invoiceModel "teep_backend/internals/features/finance/invoices/model"
	studentModel "teep_backend/internals/features/students/model"
	helper "teep_backend/internals/helpers"
)

/* =========================================================
   MONTHLY GENERATION

   Planning is pure so the month math and the skip rules are
   testable without a database. The controller fetches, this
   file decides, the controller persists.
   ========================================================= */

type GenerationResult string

const (
	// ResultCreated: at least one invoice was planned.
	ResultCreated GenerationResult = "created"
	// ResultNoBillableStudents: no active student has a fee > 0.
	ResultNoBillableStudents GenerationResult = "no_billable_students"
	// ResultAllCovered: every billable student already has an
	// invoice for the month. Re-running is a no-op.
	ResultAllCovered GenerationResult = "all_covered"
)

type GenerationOutcome struct {
	Result         GenerationResult
	MonthReference string
	Created        int
	Skipped        int // billable students already invoiced for the month
	Invoices       []invoiceModel.Invoice
}

// BuildGenerationPlan decides which invoices the month needs, given the
// owner's active students and the invoices that already exist for that
// month. Students without a positive fee never get an invoice. Students
// already covered are skipped, so a re-run only fills the gaps.
func BuildGenerationPlan(ownerID uuid.UUID, year int, month time.Month, students []studentModel.Student, existing []invoiceModel.Invoice) GenerationOutcome {
	ref := helper.MonthReference(year, month)
	due := helper.InvoiceDueDate(year, month)

	covered := make(map[uuid.UUID]struct{}, len(existing))
	for _, inv := range existing {
		covered[inv.StudentID] = struct{}{}
	}

	outcome := GenerationOutcome{MonthReference: ref}

	billable := 0
	for _, s := range students {
		if !s.HasBillableFee() {
			continue
		}
		billable++
		if _, ok := covered[s.ID]; ok {
			outcome.Skipped++
			continue
		}
		outcome.Invoices = append(outcome.Invoices, invoiceModel.Invoice{
			UserID:         ownerID,
			StudentID:      s.ID,
			StudentName:    s.Name,
			Amount:         *s.MonthlyFeeAmount,
			DueDate:        due,
			Status:         invoiceModel.InvoicePending,
			MonthReference: ref,
		})
	}

	outcome.Created = len(outcome.Invoices)
	switch {
	case billable == 0:
		outcome.Result = ResultNoBillableStudents
	case outcome.Created == 0:
		outcome.Result = ResultAllCovered
	default:
		outcome.Result = ResultCreated
	}
	return outcome
}

// GenerateMonthlyInvoices runs the full flow for one month: fresh fetch
// of active students, fetch of the month's existing invoices, plan, one
// batch insert. A failed existing-invoice fetch is logged and treated as
// an empty set rather than aborting the run.
func GenerateMonthlyInvoices(db *gorm.DB, ownerID uuid.UUID, year int, month time.Month) (GenerationOutcome, error) {
	ref := helper.MonthReference(year, month)

	var students []studentModel.Student
	if err := db.
		Where("user_id = ? AND status = ?", ownerID, studentModel.StudentStatusActive).
		Find(&students).Error; err != nil {
		return GenerationOutcome{MonthReference: ref}, err
	}

	var existing []invoiceModel.Invoice
	if err := db.
		Where("user_id = ? AND month_reference = ?", ownerID, ref).
		Find(&existing).Error; err != nil {
		log.Printf("⚠️ existing-invoice fetch failed for %s, assuming none: %v", ref, err)
		existing = nil
	}

	outcome := BuildGenerationPlan(ownerID, year, month, students, existing)
	if outcome.Result != ResultCreated {
		return outcome, nil
	}

	// all-or-nothing: one batch insert
	if err := db.Create(&outcome.Invoices).Error; err != nil {
		return outcome, err
	}
	return outcome, nil
}

/* =========================================================
   FEE SYNC

   When a student's fee changes the still-pending invoices
   follow the new amount. Paid and overdue rows keep what was
   actually charged.
   ========================================================= */

// ShouldSyncPendingInvoices reports whether a fee edit warrants
// rewriting the student's pending invoices. Clearing the fee (zero)
// leaves existing charges untouched.
func ShouldSyncPendingInvoices(prev *float64, next float64) bool {
	if next <= 0 {
		return false
	}
	return prev == nil || *prev != next
}

func SyncPendingInvoiceAmounts(db *gorm.DB, ownerID, studentID uuid.UUID, amount float64) (int64, error) {
	res := db.Model(&invoiceModel.Invoice{}).
		Where("user_id = ? AND student_id = ? AND status = ?", ownerID, studentID, invoiceModel.InvoicePending).
		Update("amount", amount)
	return res.RowsAffected, res.Error
}
