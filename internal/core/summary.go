package core

import "sort"

// Summary aggregates the transaction list for the dashboard. All three values
// are nominal sums: amounts in different currencies are added without
// conversion, a documented simplification of this version.
type Summary struct {
	TotalIncome  Money
	TotalExpense Money
	NetBalance   Money
}

// Summarize computes dashboard totals over the full transaction list.
// NetBalance = TotalIncome - TotalExpense.
func Summarize(txns []Transaction) Summary {
	var income, expense int64
	for _, t := range txns {
		switch t.Type {
		case Income:
			income += t.Amount.Cents
		default:
			expense += t.Amount.Cents
		}
	}
	return Summary{
		TotalIncome:  Money{Cents: income},
		TotalExpense: Money{Cents: expense},
		NetBalance:   Money{Cents: income - expense},
	}
}

// FilterByType returns the transactions matching the given type, preserving
// insertion order.
func FilterByType(txns []Transaction, tt TransactionType) []Transaction {
	out := make([]Transaction, 0, len(txns))
	for _, t := range txns {
		if t.Type == tt {
			out = append(out, t)
		}
	}
	return out
}

// SortByDateDesc returns a copy sorted newest-first. The sort is stable so
// transactions sharing a date keep their insertion order.
func SortByDateDesc(txns []Transaction) []Transaction {
	out := make([]Transaction, len(txns))
	copy(out, txns)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date.Time)
	})
	return out
}
