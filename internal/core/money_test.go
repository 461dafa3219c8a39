package core

import (
	"math"
	"testing"
)

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"12.34", 1234, false},
		{"12,34", 1234, false},
		{"12", 1200, false},
		{"0.01", 1, false},
		{"12.345", 1234, false},
		{"12.346", 1235, false},
		{".5", 50, false},
		{"2500", 250000, false},
		{"", 0, true},
		{"abc", 0, true},
		{"-1", 0, true},
		{"+1", 0, true},
		{"1.2.3", 0, true},
		{"0", 0, true},
		{"0.00", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%q: expected error, got %d", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%q: unexpected error %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("%q: got %d want %d", tc.in, got, tc.want)
		}
	}
}

func TestCentsFromFloat(t *testing.T) {
	if got, err := CentsFromFloat(50); err != nil || got != 5000 {
		t.Fatalf("got %d, %v", got, err)
	}
	if got, err := CentsFromFloat(12.345); err != nil || got != 1235 {
		t.Fatalf("got %d, %v", got, err)
	}
	if _, err := CentsFromFloat(math.NaN()); err == nil {
		t.Fatalf("expected error for NaN")
	}
	if _, err := CentsFromFloat(math.Inf(1)); err == nil {
		t.Fatalf("expected error for Inf")
	}
}

func TestMoneyFloat(t *testing.T) {
	if (Money{Cents: 1234}).Float() != 12.34 {
		t.Fatalf("unexpected float value")
	}
}
