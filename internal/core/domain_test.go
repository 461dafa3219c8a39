package core

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-07-15")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if d.String() != "2024-07-15" {
		t.Fatalf("unexpected round trip: %s", d.String())
	}

	for _, bad := range []string{"", "15/07/2024", "2024-7-15", "not a date"} {
		if _, err := ParseDate(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Cents: 1}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Money{Cents: 0}).Validate(); err == nil {
		t.Fatalf("expected error for zero")
	}
	if err := (Money{Cents: -5}).Validate(); err == nil {
		t.Fatalf("expected error for negative")
	}
}

func TestDraftValidate(t *testing.T) {
	good := Draft{
		Type:        Income,
		Date:        NewDate(2024, 7, 15),
		Description: "Servicios de consultoría",
		Amount:      Money{Cents: 250000},
		Currency:    USD,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Draft{
		{Type: "transfer", Date: NewDate(2024, 7, 15), Description: "a", Amount: Money{Cents: 1}, Currency: USD},
		{Type: Income, Date: Date{Time: time.Time{}}, Description: "a", Amount: Money{Cents: 1}, Currency: USD},
		{Type: Income, Date: NewDate(2024, 7, 15), Description: "  ", Amount: Money{Cents: 1}, Currency: USD},
		{Type: Income, Date: NewDate(2024, 7, 15), Description: "a", Amount: Money{Cents: 0}, Currency: USD},
		{Type: Income, Date: NewDate(2024, 7, 15), Description: "a", Amount: Money{Cents: 1}, Currency: "GBP"},
	}
	for i, dr := range bads {
		if err := dr.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestDraftTransaction(t *testing.T) {
	dr := Draft{
		Type:        Expense,
		Date:        NewDate(2024, 7, 22),
		Description: "Alquiler de oficina",
		Amount:      Money{Cents: 120000},
		Currency:    USD,
	}
	tx := dr.Transaction("abc-123")
	if tx.ID != "abc-123" {
		t.Fatalf("expected assigned id, got %q", tx.ID)
	}
	if tx.Type != dr.Type || tx.Date != dr.Date || tx.Description != dr.Description ||
		tx.Amount != dr.Amount || tx.Currency != dr.Currency {
		t.Fatalf("transaction fields differ from draft: %+v", tx)
	}
}

func TestTypeAndCurrencyValidity(t *testing.T) {
	if !Income.IsValid() || !Expense.IsValid() {
		t.Fatalf("expected income/expense to be valid")
	}
	if TransactionType("other").IsValid() {
		t.Fatalf("expected unknown type to be invalid")
	}
	for _, c := range Currencies() {
		if !c.IsValid() {
			t.Fatalf("expected %s to be valid", c)
		}
	}
	if Currency("BTC").IsValid() {
		t.Fatalf("expected unknown currency to be invalid")
	}
}
