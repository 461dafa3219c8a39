package http

import (
	"testing"

	"siga/internal/core"
)

func TestFormatUSD(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{250000, "$2,500.00"},
		{105, "$1.05"},
		{0, "$0.00"},
		{-650000, "-$6,500.00"},
		{123456789, "$1,234,567.89"},
	}
	for _, tc := range cases {
		if got := formatUSD(tc.cents); got != tc.want {
			t.Fatalf("formatUSD(%d) = %q, want %q", tc.cents, got, tc.want)
		}
	}
}

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		cents    int64
		currency core.Currency
		want     string
	}{
		{250000, core.USD, "US$2.500,00"},
		{80000, core.EUR, "€800,00"},
		{123456, core.VES, "Bs.S1.234,56"},
		{5, core.USD, "US$0,05"},
	}
	for _, tc := range cases {
		if got := formatCurrency(tc.cents, tc.currency); got != tc.want {
			t.Fatalf("formatCurrency(%d, %s) = %q, want %q", tc.cents, tc.currency, got, tc.want)
		}
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := sanitizeInput("  hola\x00mundo  "); got != "holamundo" {
		t.Fatalf("unexpected sanitize result %q", got)
	}
	if got := sanitizeInput("línea\nuno"); got != "línea\nuno" {
		t.Fatalf("newline should survive, got %q", got)
	}
}
