package http

import (
	"strings"
	"time"

	"siga/internal/core"
)

// View identifiers for the navigation shell. The shell always restarts at
// the dashboard; an unrecognized identifier also lands there.
const (
	viewDashboard = "dashboard"
	viewIncome    = "income"
	viewExpense   = "expense"
)

type pageData struct {
	View         string
	Summary      summaryData
	Transactions transactionsData
}

type summaryData struct {
	TotalIncome  string
	TotalExpense string
	NetBalance   string
	NetNegative  bool
}

type txRow struct {
	Date        string
	Description string
	Amount      string
	Type        string
}

type transactionsData struct {
	View         string
	Title        string
	Action       string
	SubmitLabel  string
	Today        string
	Currencies   []core.Currency
	Rows         []txRow
	EmptyMessage string
}

// viewFor maps a request path to a view identifier, falling back to the
// dashboard for anything unrecognized.
func viewFor(path string) string {
	switch strings.TrimSuffix(path, "/") {
	case "/income":
		return viewIncome
	case "/expense":
		return viewExpense
	default:
		return viewDashboard
	}
}

func (s *Server) summaryData() summaryData {
	sum := core.Summarize(s.ledger.All())
	return summaryData{
		TotalIncome:  formatUSD(sum.TotalIncome.Cents),
		TotalExpense: formatUSD(sum.TotalExpense.Cents),
		NetBalance:   formatUSD(sum.NetBalance.Cents),
		NetNegative:  sum.NetBalance.Cents < 0,
	}
}

func (s *Server) transactionsData(tt core.TransactionType) transactionsData {
	filtered := core.SortByDateDesc(core.FilterByType(s.ledger.All(), tt))
	rows := make([]txRow, len(filtered))
	for i, t := range filtered {
		rows[i] = txRow{
			Date:        t.Date.String(),
			Description: t.Description,
			Amount:      formatCurrency(t.Amount.Cents, t.Currency),
			Type:        t.Type.String(),
		}
	}

	data := transactionsData{
		View:         tt.String(),
		Title:        "Ingresos",
		Action:       "/incomes",
		SubmitLabel:  "Añadir Ingreso",
		Today:        time.Now().Format("2006-01-02"),
		Currencies:   core.Currencies(),
		Rows:         rows,
		EmptyMessage: "No hay ingresos registrados.",
	}
	if tt == core.Expense {
		data.Title = "Egresos"
		data.Action = "/expenses"
		data.SubmitLabel = "Añadir Egreso"
		data.EmptyMessage = "No hay egresos registrados."
	}
	return data
}
