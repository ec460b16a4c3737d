// file: internals/features/finance/invoices/service/whatsapp.go
package service

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"teep_backend/internals/configs"
	helper "teep_backend/internals/helpers"
)

/* =========================================================
   WHATSAPP COLLECTION LINK

   A wa.me deep link with a pre-filled pt-BR message. No
   WhatsApp API involved, the instructor taps and sends.
   ========================================================= */

// NormalizePhone strips everything but digits and prefixes the country
// code when the number doesn't carry one already.
func NormalizePhone(raw, countryCode string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}
	if countryCode != "" && !strings.HasPrefix(digits, countryCode) {
		digits = countryCode + digits
	}
	return digits
}

// BuildCollectionMessage renders the charge reminder for one invoice.
func BuildCollectionMessage(studentName string, amount float64, month time.Month, year int, dueDate time.Time) string {
	return fmt.Sprintf(
		"Olá, %s! 👋\n\nPassando para lembrar da mensalidade de %s/%d no valor de %s, com vencimento em %s.\n\nQualquer dúvida estou à disposição. Obrigado! 🎾",
		studentName,
		helper.MonthNamePtBR(month),
		year,
		helper.FormatBRL(amount),
		dueDate.Format("02/01/2006"),
	)
}

// BuildWhatsAppLink assembles the final https://wa.me/ URL. Empty string
// when the student has no usable phone.
func BuildWhatsAppLink(phone, message string) string {
	countryCode := configs.WhatsAppCountryCode
	if countryCode == "" {
		countryCode = "55"
	}
	normalized := NormalizePhone(phone, countryCode)
	if normalized == "" {
		return ""
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", normalized, url.QueryEscape(message))
}
