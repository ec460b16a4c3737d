package service

import "testing"

func TestCalculatePasswordStrength(t *testing.T) {
	cases := []struct {
		password string
		want     int
	}{
		{"", 0},
		{"abc", 0},
		{"abcdef", 1},   // len>=6
		{"abcdefgh", 2}, // len>=6, len>=8
		{"Abcdefgh", 3}, // + upper
		{"Abcdefg1", 4}, // + digit
		{"Abcdef1!", 5}, // + symbol
		{"aB1!", 3},     // short but varied: upper+digit+symbol
		{"senha123", 3}, // len>=6, len>=8, digit
	}
	for _, tc := range cases {
		if got := CalculatePasswordStrength(tc.password); got != tc.want {
			t.Errorf("CalculatePasswordStrength(%q) = %d, want %d", tc.password, got, tc.want)
		}
	}
}

func TestPasswordStrengthLabel(t *testing.T) {
	cases := []struct {
		strength int
		want     string
	}{
		{0, "Muito fraca"},
		{1, "Muito fraca"},
		{2, "Fraca"},
		{3, "Média"},
		{4, "Forte"},
		{5, "Muito forte"},
		{7, ""},
	}
	for _, tc := range cases {
		if got := PasswordStrengthLabel(tc.strength); got != tc.want {
			t.Errorf("PasswordStrengthLabel(%d) = %q, want %q", tc.strength, got, tc.want)
		}
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("segredo123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if err := CheckPasswordHash(hash, "segredo123"); err != nil {
		t.Errorf("CheckPasswordHash should accept the original password: %v", err)
	}
	if err := CheckPasswordHash(hash, "errada"); err == nil {
		t.Error("CheckPasswordHash should reject a wrong password")
	}
}
