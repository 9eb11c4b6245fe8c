package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"

	"spendtrack/internal/core"
)

const categoryStorageAlert = "Could not add category. Please try again."

// dialogOpen computes the creation dialog state: selecting the sentinel
// forces it open, any other selection leaves the current state unchanged.
func dialogOpen(selected string, open bool) bool {
	if selected == sentinelValue {
		return true
	}
	return open
}

// handleCategoryDialog returns the creation dialog fragment. Pure function
// of its query parameters; no side effects.
func (s *Server) handleCategoryDialog(w http.ResponseWriter, r *http.Request) {
	if resp := RequireGET(r); resp != nil {
		resp.Write(w)
		return
	}

	selected := r.URL.Query().Get("selected")
	open := r.URL.Query().Get("open") == "true"

	body, err := s.renderFragment("category_dialog.html", dialogData{
		Open: dialogOpen(selected, open),
	})
	if err != nil {
		slog.ErrorContext(r.Context(), "Dialog fragment render failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	NewHTMXResponse().BodyHTML(body).Write(w)
}

// handleCategoryOptions returns the full option list rebuilt from a fresh
// storage fetch: placeholder, one option per category, the sentinel last.
func (s *Server) handleCategoryOptions(w http.ResponseWriter, r *http.Request) {
	if resp := RequireGET(r); resp != nil {
		resp.Write(w)
		return
	}

	options, err := s.optionsFromStorage(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Category list error", "error", err)
		NewHTMXResponse().
			Status(http.StatusInternalServerError).
			BodyHTML(`<option value="" disabled selected>Select a category</option>`).
			Write(w)
		return
	}

	body, err := s.renderFragment("category_options.html", options)
	if err != nil {
		slog.ErrorContext(r.Context(), "Options fragment render failed", "error", err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	NewHTMXResponse().BodyHTML(body).Write(w)
}

// handleCreateCategory validates and stores a new category, then re-fetches
// the list so the rebuilt options always come from storage.
func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	if resp := RequirePOST(r); resp != nil {
		resp.Write(w)
		return
	}
	if resp := ParseFormOrFail(r); resp != nil {
		resp.Write(w)
		return
	}

	clicks, ok := ParseClicks(r.Form, "clicks")
	name := sanitizeInput(r.Form.Get("name"))

	// Nothing pressed yet or nothing typed: clear the field, no alert.
	if !ok || clicks <= 0 || name == "" {
		NewHTMXResponse().
			Status(http.StatusNoContent).
			TriggerCategoryFormReset().
			Write(w)
		return
	}

	category := core.Category{Name: name}
	if err := category.Validate(); err != nil {
		slog.WarnContext(r.Context(), "Category name rejected", "name", name, "error", err)
		NewHTMXResponse().
			Status(http.StatusUnprocessableEntity).
			Alert(AlertWarning, "Invalid category name.", 0).
			TriggerCategoryFormReset().
			Write(w)
		return
	}

	if err := s.catCreator.Create(r.Context(), name); err != nil {
		slog.ErrorContext(r.Context(), "Category insert error", "name", name, "error", err)
		s.categoryStorageError(w)
		return
	}

	// The re-fetch proves the write landed; the client rebuilds its options
	// from /ui/category-options on the category:created trigger.
	if _, err := s.categories.List(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "Category list error after insert", "name", name, "error", err)
		s.categoryStorageError(w)
		return
	}

	atomic.AddInt64(&s.metrics.totalCategories, 1)

	NewHTMXResponse().
		Alert(AlertSuccess, fmt.Sprintf("Category %q added successfully!", name), 0).
		TriggerCategoryCreated(name).
		TriggerCategoryFormReset().
		Write(w)
}

func (s *Server) categoryStorageError(w http.ResponseWriter) {
	NewHTMXResponse().
		Status(http.StatusInternalServerError).
		Alert(AlertDanger, categoryStorageAlert, 0).
		TriggerCategoryFormReset().
		Write(w)
}
