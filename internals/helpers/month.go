// file: internals/helpers/month.go
package helper

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

/* ===============================
   Billing period (YYYY-MM) helpers
=================================*/

var monthNamesPtBR = []string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// MonthReference builds the YYYY-MM period key (zero-padded month).
func MonthReference(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}

// ParseMonthReference validates and splits a YYYY-MM key.
func ParseMonthReference(ref string) (int, time.Month, error) {
	parts := strings.SplitN(strings.TrimSpace(ref), "-", 2)
	if len(parts) != 2 || len(parts[0]) != 4 || len(parts[1]) != 2 {
		return 0, 0, fmt.Errorf("invalid month reference %q, want YYYY-MM", ref)
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year in %q", ref)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 1 || m > 12 {
		return 0, 0, fmt.Errorf("invalid month in %q", ref)
	}
	return year, time.Month(m), nil
}

// InvoiceDueDate is the 10th of the month following the billing month.
// time.Date normalizes month 13 into January of the next year.
func InvoiceDueDate(year int, month time.Month) time.Time {
	return time.Date(year, month+1, 10, 0, 0, 0, 0, time.UTC)
}

// MonthNamePtBR returns the Brazilian display name ("Março" etc.).
func MonthNamePtBR(month time.Month) string {
	if month < time.January || month > time.December {
		return ""
	}
	return monthNamesPtBR[int(month)-1]
}

/* ===============================
   Currency (BRL)
=================================*/

// FormatBRL renders a pt-BR currency string: 1234.5 → "R$ 1.234,50".
func FormatBRL(value float64) string {
	neg := value < 0
	if neg {
		value = -value
	}
	cents := int64(value*100 + 0.5)
	intPart := cents / 100
	frac := cents % 100

	digits := strconv.FormatInt(intPart, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%sR$ %s,%02d", sign, b.String(), frac)
}
