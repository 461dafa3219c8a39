package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	VES Currency = "VES"
)

type (
	TransactionType string

	Currency string

	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Transaction is one recorded income or expense entry. A transaction is
	// immutable once created; there is no update or delete path.
	Transaction struct {
		ID          string
		Type        TransactionType
		Date        Date
		Description string
		Amount      Money
		Currency    Currency
	}

	// Draft holds a transaction's fields prior to identifier assignment,
	// validated but not yet persisted.
	Draft struct {
		Type        TransactionType
		Date        Date
		Description string
		Amount      Money
		Currency    Currency
	}
)

var (
	ErrInvalidType      = errors.New("invalid transaction type")
	ErrInvalidCurrency  = errors.New("invalid currency")
	ErrInvalidDate      = errors.New("invalid date")
	ErrInvalidAmount    = errors.New("invalid amount")
	ErrEmptyDescription = errors.New("empty description")
)

func (t TransactionType) IsValid() bool {
	switch t {
	case Income, Expense:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer
func (t TransactionType) String() string {
	return string(t)
}

func (c Currency) IsValid() bool {
	switch c {
	case USD, EUR, VES:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer
func (c Currency) String() string {
	return string(c)
}

// Currencies returns all supported currency codes in display order.
func Currencies() []Currency {
	return []Currency{USD, EUR, VES}
}

// ParseDate parses a calendar date in YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

// NewDate creates a new Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// String renders the date back in YYYY-MM-DD form, the persisted layout.
func (d Date) String() string {
	return d.Format("2006-01-02")
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Validate checks a draft against the creation rules: a known type, a date,
// a non-empty description, a positive amount and one of the three supported
// currencies. Sign semantics come from Type, so Amount is always a positive
// magnitude.
func (dr Draft) Validate() error {
	if !dr.Type.IsValid() {
		return ErrInvalidType
	}
	if err := dr.Date.Validate(); err != nil {
		return err
	}
	if len(strings.TrimSpace(dr.Description)) == 0 {
		return ErrEmptyDescription
	}
	if err := dr.Amount.Validate(); err != nil {
		return err
	}
	if !dr.Currency.IsValid() {
		return ErrInvalidCurrency
	}
	return nil
}

// Transaction materializes the draft with the assigned identifier.
func (dr Draft) Transaction(id string) Transaction {
	return Transaction{
		ID:          id,
		Type:        dr.Type,
		Date:        dr.Date,
		Description: dr.Description,
		Amount:      dr.Amount,
		Currency:    dr.Currency,
	}
}
