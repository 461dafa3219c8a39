package http

import (
	"html/template"
	"net/http"

	"siga/internal/core"
	applog "siga/internal/log"
)

func (s *Server) handleCreateIncome(w http.ResponseWriter, r *http.Request) {
	s.handleCreate(w, r, core.Income)
}

func (s *Server) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	s.handleCreate(w, r, core.Expense)
}

// handleCreate validates the submitted fields and records a new transaction
// of the fixed type. Validation failures return 422 with a blocking notice
// and leave the stored list unchanged; the client keeps the entered values.
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request, tt core.TransactionType) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.logger.ErrorContext(r.Context(), "Parse form error",
			applog.FieldError, err, applog.FieldMethod, r.Method, applog.FieldPath, r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`<div class="notice error">Formato de solicitud no válido</div>`))
		return
	}

	draft, err := s.parseDraft(r, tt)
	if err != nil {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="notice error">Por favor, rellene todos los campos correctamente.</div>`))
		return
	}

	tx, err := s.ledger.Add(r.Context(), draft)
	if err != nil {
		// Draft construction already validated the fields, so this is a
		// programming error rather than user input.
		s.logger.ErrorContext(r.Context(), "Transaction add failed", applog.FieldError, err)
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`<div class="notice error">Por favor, rellene todos los campos correctamente.</div>`))
		return
	}

	label := "Ingreso registrado"
	if tt == core.Expense {
		label = "Egreso registrado"
	}
	w.Header().Set("HX-Trigger", `{"transactions:changed": {"type": "`+tt.String()+`"}, "form:reset": {}}`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`<div class="notice success">` + label + `: ` +
		template.HTMLEscapeString(tx.Description) +
		` — ` + template.HTMLEscapeString(formatCurrency(tx.Amount.Cents, tx.Currency)) + `</div>`))
}

// parseDraft builds a validated draft from the submitted form fields.
func (s *Server) parseDraft(r *http.Request, tt core.TransactionType) (core.Draft, error) {
	desc := sanitizeInput(r.Form.Get("description"))

	cents, err := core.ParseDecimalToCents(r.Form.Get("amount"))
	if err != nil {
		return core.Draft{}, err
	}
	date, err := core.ParseDate(r.Form.Get("date"))
	if err != nil {
		return core.Draft{}, err
	}

	draft := core.Draft{
		Type:        tt,
		Date:        date,
		Description: desc,
		Amount:      core.Money{Cents: cents},
		Currency:    core.Currency(r.Form.Get("currency")),
	}
	if err := draft.Validate(); err != nil {
		return core.Draft{}, err
	}
	return draft, nil
}

// handleTransactionsPartial renders the history table partial for one type.
func (s *Server) handleTransactionsPartial(w http.ResponseWriter, r *http.Request) {
	if s.templates == nil {
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	tt := core.TransactionType(r.URL.Query().Get("type"))
	if !tt.IsValid() {
		s.logger.WarnContext(r.Context(), "Unknown transaction type requested",
			"type", string(tt))
		http.Error(w, "unknown transaction type", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "transaction_table", s.transactionsData(tt)); err != nil {
		s.logger.ErrorContext(r.Context(), "Template execution failed",
			applog.FieldError, err, "template", "transaction_table")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
