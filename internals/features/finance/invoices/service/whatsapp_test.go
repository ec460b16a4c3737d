// file: internals/features/finance/invoices/service/whatsapp_test.go
package service

import (
	"strings"
	"testing"
	"time"
)

func TestNormalizePhone(t *testing.T) {
	cases := []struct {
		name        string
		raw         string
		countryCode string
		want        string
	}{
		{"formatted local number gets country code", "(11) 98765-4321", "55", "5511987654321"},
		{"already has country code", "5511987654321", "55", "5511987654321"},
		{"plus and spaces stripped", "+55 11 98765 4321", "55", "5511987654321"},
		{"empty input", "", "55", ""},
		{"only punctuation", "() -", "55", ""},
		{"no country code configured", "11987654321", "", "11987654321"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizePhone(tc.raw, tc.countryCode); got != tc.want {
				t.Errorf("NormalizePhone(%q, %q) = %q, want %q", tc.raw, tc.countryCode, got, tc.want)
			}
		})
	}
}

func TestBuildCollectionMessage(t *testing.T) {
	due := time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC)
	msg := BuildCollectionMessage("Ana", 350, time.March, 2024, due)

	for _, want := range []string{"Ana", "Março/2024", "R$ 350,00", "10/04/2024"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q:\n%s", want, msg)
		}
	}
}

func TestBuildWhatsAppLink(t *testing.T) {
	due := time.Date(2024, time.April, 10, 0, 0, 0, 0, time.UTC)
	msg := BuildCollectionMessage("Ana", 350, time.March, 2024, due)

	link := BuildWhatsAppLink("(11) 98765-4321", msg)
	if !strings.HasPrefix(link, "https://wa.me/5511987654321?text=") {
		t.Fatalf("unexpected link prefix: %s", link)
	}
	if strings.Contains(link, " ") || strings.Contains(link, "\n") {
		t.Errorf("link not URL-encoded: %s", link)
	}

	if got := BuildWhatsAppLink("", msg); got != "" {
		t.Errorf("link for empty phone = %q, want empty", got)
	}
}
