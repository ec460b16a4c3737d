package helper

import (
	"testing"
	"time"
)

func TestMonthReference(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		want  string
	}{
		{2024, time.March, "2024-03"},
		{2024, time.December, "2024-12"},
		{2025, time.January, "2025-01"},
	}
	for _, tc := range cases {
		if got := MonthReference(tc.year, tc.month); got != tc.want {
			t.Errorf("MonthReference(%d, %d) = %q, want %q", tc.year, tc.month, got, tc.want)
		}
	}
}

func TestParseMonthReference(t *testing.T) {
	year, month, err := ParseMonthReference("2024-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if year != 2024 || month != time.March {
		t.Errorf("got %d-%d, want 2024-3", year, month)
	}

	for _, bad := range []string{"", "2024", "2024-3", "24-03", "2024-13", "2024-00", "abcd-ef"} {
		if _, _, err := ParseMonthReference(bad); err == nil {
			t.Errorf("ParseMonthReference(%q) should fail", bad)
		}
	}
}

func TestInvoiceDueDate(t *testing.T) {
	// due date is the 10th of the following month
	got := InvoiceDueDate(2024, time.March)
	want := time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("InvoiceDueDate(2024, March) = %v, want %v", got, want)
	}

	// December rolls into January of the next year
	got = InvoiceDueDate(2024, time.December)
	want = time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("InvoiceDueDate(2024, December) = %v, want %v", got, want)
	}
}

func TestFormatBRL(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{200, "R$ 200,00"},
		{1234.5, "R$ 1.234,50"},
		{1234567.89, "R$ 1.234.567,89"},
		{-42.1, "-R$ 42,10"},
	}
	for _, tc := range cases {
		if got := FormatBRL(tc.in); got != tc.want {
			t.Errorf("FormatBRL(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
