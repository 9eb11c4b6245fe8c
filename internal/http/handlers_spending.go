package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync/atomic"

	"spendtrack/internal/core"
)

// handleCreateSpending validates the submitted form and inserts one
// spending row. All outcomes are surfaced as auto-dismissing alerts.
func (s *Server) handleCreateSpending(w http.ResponseWriter, r *http.Request) {
	if resp := RequirePOST(r); resp != nil {
		resp.Write(w)
		return
	}
	if resp := ParseFormOrFail(r); resp != nil {
		resp.Write(w)
		return
	}

	clicks, ok := ParseClicks(r.Form, "clicks")
	if !ok {
		// Button never pressed: nothing to show.
		NewHTMXResponse().Status(http.StatusNoContent).Write(w)
		return
	}
	if clicks <= 0 {
		NewHTMXResponse().
			Alert(AlertWarning, "Enter amount and select a category", alertAutoDismissMs).
			Write(w)
		return
	}

	amountStr := strings.TrimSpace(r.Form.Get("amount"))
	category := sanitizeInput(r.Form.Get("category"))

	amount, err := core.ParseAmount(amountStr)
	spending := core.Spending{Amount: amount, Category: category}
	if err != nil || spending.Validate() != nil {
		NewHTMXResponse().
			Status(http.StatusUnprocessableEntity).
			Alert(AlertDanger, "Please enter a valid amount and select a category", alertAutoDismissMs).
			Write(w)
		return
	}

	id, err := s.spendings.Record(r.Context(), spending)
	if err != nil {
		slog.ErrorContext(r.Context(), "Spending insert error",
			"amount", amount.String(),
			"category", category,
			"error", err)
		NewHTMXResponse().
			Status(http.StatusInternalServerError).
			Alert(AlertDanger, "Database error: "+err.Error(), alertAutoDismissMs).
			Write(w)
		return
	}

	atomic.AddInt64(&s.metrics.totalSpendings, 1)

	slog.InfoContext(r.Context(), "Spending recorded",
		"spending_id", id,
		"amount", amount.String(),
		"category", category)

	NewHTMXResponse().
		Alert(AlertSuccess,
			fmt.Sprintf("Amount: %s, Category: %s added successfully!", amount.String(), category),
			alertAutoDismissMs).
		Write(w)
}
