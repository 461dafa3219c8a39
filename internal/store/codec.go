package store

import (
	"encoding/json"
	"fmt"

	"siga/internal/core"
)

// record is the persisted shape of a transaction: a JSON object with the
// amount as a plain number in major units and the date as YYYY-MM-DD.
// There is no schema version field.
type record struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
}

func encode(txns []core.Transaction) (string, error) {
	records := make([]record, len(txns))
	for i, t := range txns {
		records[i] = record{
			ID:          t.ID,
			Type:        t.Type.String(),
			Date:        t.Date.String(),
			Description: t.Description,
			Amount:      t.Amount.Float(),
			Currency:    t.Currency.String(),
		}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return "", fmt.Errorf("marshal transactions: %w", err)
	}
	return string(data), nil
}

func decode(value string) ([]core.Transaction, error) {
	var records []record
	if err := json.Unmarshal([]byte(value), &records); err != nil {
		return nil, fmt.Errorf("unmarshal transactions: %w", err)
	}

	txns := make([]core.Transaction, 0, len(records))
	for i, r := range records {
		tt := core.TransactionType(r.Type)
		if !tt.IsValid() {
			return nil, fmt.Errorf("record %d: unknown type %q", i, r.Type)
		}
		cur := core.Currency(r.Currency)
		if !cur.IsValid() {
			return nil, fmt.Errorf("record %d: unknown currency %q", i, r.Currency)
		}
		date, err := core.ParseDate(r.Date)
		if err != nil {
			return nil, fmt.Errorf("record %d: bad date %q: %w", i, r.Date, err)
		}
		cents, err := core.CentsFromFloat(r.Amount)
		if err != nil {
			return nil, fmt.Errorf("record %d: bad amount %v: %w", i, r.Amount, err)
		}
		txns = append(txns, core.Transaction{
			ID:          r.ID,
			Type:        tt,
			Date:        date,
			Description: r.Description,
			Amount:      core.Money{Cents: cents},
			Currency:    cur,
		})
	}
	return txns, nil
}
