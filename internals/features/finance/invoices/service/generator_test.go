// file: internals/features/finance/invoices/service/generator_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	invoiceModel "teep_backend/internals/features/finance/invoices/model"
	studentModel "teep_backend/internals/features/students/model"
)

var owner = uuid.New()

func billableStudent(name string, fee float64) studentModel.Student {
	return studentModel.Student{
		ID:               uuid.New(),
		UserID:           owner,
		Name:             name,
		Status:           studentModel.StudentStatusActive,
		MonthlyFeeAmount: &fee,
	}
}

func TestBuildGenerationPlan_CreatesOnePerBillableStudent(t *testing.T) {
	students := []studentModel.Student{
		billableStudent("Ana", 350),
		billableStudent("Bruno", 280),
		billableStudent("Clara", 420.50),
	}

	out := BuildGenerationPlan(owner, 2024, time.March, students, nil)

	if out.Result != ResultCreated {
		t.Fatalf("result = %s, want %s", out.Result, ResultCreated)
	}
	if out.Created != 3 || len(out.Invoices) != 3 {
		t.Fatalf("created = %d (len %d), want 3", out.Created, len(out.Invoices))
	}
	if out.MonthReference != "2024-03" {
		t.Errorf("month_reference = %q, want 2024-03", out.MonthReference)
	}

	wantDue := time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC)
	for i, inv := range out.Invoices {
		if inv.Status != invoiceModel.InvoicePending {
			t.Errorf("invoice[%d].status = %s, want pending", i, inv.Status)
		}
		if !inv.DueDate.Equal(wantDue) {
			t.Errorf("invoice[%d].due_date = %v, want %v", i, inv.DueDate, wantDue)
		}
		if inv.MonthReference != "2024-03" {
			t.Errorf("invoice[%d].month_reference = %q", i, inv.MonthReference)
		}
		if inv.UserID != owner {
			t.Errorf("invoice[%d].user_id = %s, want owner", i, inv.UserID)
		}
	}
	if out.Invoices[0].StudentName != "Ana" || out.Invoices[0].Amount != 350 {
		t.Errorf("first invoice snapshot = %q/%v, want Ana/350", out.Invoices[0].StudentName, out.Invoices[0].Amount)
	}
}

func TestBuildGenerationPlan_RerunIsNoOp(t *testing.T) {
	students := []studentModel.Student{
		billableStudent("Ana", 350),
		billableStudent("Bruno", 280),
	}

	first := BuildGenerationPlan(owner, 2024, time.March, students, nil)
	if first.Created != 2 {
		t.Fatalf("first run created = %d, want 2", first.Created)
	}

	second := BuildGenerationPlan(owner, 2024, time.March, students, first.Invoices)
	if second.Result != ResultAllCovered {
		t.Fatalf("second run result = %s, want %s", second.Result, ResultAllCovered)
	}
	if second.Created != 0 {
		t.Errorf("second run created = %d, want 0", second.Created)
	}
	if second.Skipped != 2 {
		t.Errorf("second run skipped = %d, want 2", second.Skipped)
	}
}

func TestBuildGenerationPlan_FillsGapsAfterDeletion(t *testing.T) {
	ana := billableStudent("Ana", 350)
	bruno := billableStudent("Bruno", 280)
	clara := billableStudent("Clara", 300)
	students := []studentModel.Student{ana, bruno, clara}

	existing := []invoiceModel.Invoice{
		{StudentID: ana.ID, MonthReference: "2024-03"},
		{StudentID: bruno.ID, MonthReference: "2024-03"},
	}

	out := BuildGenerationPlan(owner, 2024, time.March, students, existing)
	if out.Result != ResultCreated {
		t.Fatalf("result = %s, want %s", out.Result, ResultCreated)
	}
	if out.Created != 1 {
		t.Fatalf("created = %d, want 1", out.Created)
	}
	if out.Invoices[0].StudentID != clara.ID {
		t.Errorf("regenerated for wrong student: %s", out.Invoices[0].StudentName)
	}
	if out.Skipped != 2 {
		t.Errorf("skipped = %d, want 2", out.Skipped)
	}
}

func TestBuildGenerationPlan_SkipsStudentsWithoutFee(t *testing.T) {
	zero := 0.0
	noFee := studentModel.Student{ID: uuid.New(), Name: "Sem Mensalidade", Status: studentModel.StudentStatusActive}
	zeroFee := studentModel.Student{ID: uuid.New(), Name: "Bolsista", Status: studentModel.StudentStatusActive, MonthlyFeeAmount: &zero}

	out := BuildGenerationPlan(owner, 2024, time.March, []studentModel.Student{noFee, zeroFee, billableStudent("Ana", 350)}, nil)
	if out.Created != 1 {
		t.Fatalf("created = %d, want 1", out.Created)
	}
	if out.Invoices[0].StudentName != "Ana" {
		t.Errorf("invoiced wrong student: %s", out.Invoices[0].StudentName)
	}

	// only unbillable students: distinct outcome from "all covered"
	none := BuildGenerationPlan(owner, 2024, time.March, []studentModel.Student{noFee, zeroFee}, nil)
	if none.Result != ResultNoBillableStudents {
		t.Errorf("result = %s, want %s", none.Result, ResultNoBillableStudents)
	}
}

func TestBuildGenerationPlan_DecemberDueDateRollsOver(t *testing.T) {
	out := BuildGenerationPlan(owner, 2024, time.December, []studentModel.Student{billableStudent("Ana", 350)}, nil)
	if out.MonthReference != "2024-12" {
		t.Fatalf("month_reference = %q", out.MonthReference)
	}
	wantDue := time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	if !out.Invoices[0].DueDate.Equal(wantDue) {
		t.Errorf("due_date = %v, want %v", out.Invoices[0].DueDate, wantDue)
	}
}

func TestBuildGenerationPlan_EmptyStudentList(t *testing.T) {
	out := BuildGenerationPlan(owner, 2024, time.March, nil, nil)
	if out.Result != ResultNoBillableStudents {
		t.Errorf("result = %s, want %s", out.Result, ResultNoBillableStudents)
	}
	if out.Created != 0 || out.Skipped != 0 {
		t.Errorf("created/skipped = %d/%d, want 0/0", out.Created, out.Skipped)
	}
}

func TestShouldSyncPendingInvoices(t *testing.T) {
	prev := func(v float64) *float64 { return &v }

	cases := []struct {
		name string
		prev *float64
		next float64
		want bool
	}{
		{"fee raised", prev(200), 250, true},
		{"fee lowered", prev(250), 200, true},
		{"first fee set", nil, 350, true},
		{"unchanged", prev(350), 350, false},
		{"cleared to zero", prev(200), 0, false},
		{"negative", prev(200), -50, false},
		{"zero to zero", prev(0), 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ShouldSyncPendingInvoices(tc.prev, tc.next); got != tc.want {
				t.Errorf("ShouldSyncPendingInvoices(%v, %v) = %v, want %v", tc.prev, tc.next, got, tc.want)
			}
		})
	}
}
