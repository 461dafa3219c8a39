package http

import (
	"net/http"

	applog "siga/internal/log"
)

// handleDashboard renders the dashboard view. It is bound to the root
// pattern, so unknown paths fall through here as well.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	s.renderPage(w, r, viewDashboard)
}

// handleTransactionsPage renders the income or expense view: entry form plus
// history table.
func (s *Server) handleTransactionsPage(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	s.renderPage(w, r, viewFor(r.URL.Path))
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, view string) {
	if s.templates == nil {
		s.logger.ErrorContext(r.Context(), "Templates not loaded", applog.FieldPath, r.URL.Path)
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}

	data := pageData{View: view}
	switch view {
	case viewIncome:
		data.Transactions = s.transactionsData("income")
	case viewExpense:
		data.Transactions = s.transactionsData("expense")
	default:
		data.View = viewDashboard
		data.Summary = s.summaryData()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "index.html", data); err != nil {
		s.logger.ErrorContext(r.Context(), "Template execution failed",
			applog.FieldError, err, "template", "index.html", "view", view)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// handleSummaryPartial renders the dashboard cards partial.
func (s *Server) handleSummaryPartial(w http.ResponseWriter, r *http.Request) {
	if s.templates == nil {
		http.Error(w, "templates not loaded", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "summary", s.summaryData()); err != nil {
		s.logger.ErrorContext(r.Context(), "Template execution failed",
			applog.FieldError, err, "template", "summary")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
