// Package http provides the HTTP server and handler implementations.
//
// This file implements a fluent builder for HTMX responses: status code,
// HX-Trigger headers, and alert fragment bodies.

package http

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
)

// AlertLevel styles an alert fragment.
type AlertLevel string

const (
	AlertSuccess AlertLevel = "success"
	AlertWarning AlertLevel = "warning"
	AlertDanger  AlertLevel = "danger"
)

// alertAutoDismissMs is how long spending alerts stay on screen.
const alertAutoDismissMs = 3000

// AlertHTML renders an alert fragment. The message is HTML-escaped. A
// positive durationMs makes the client auto-dismiss the alert.
func AlertHTML(level AlertLevel, message string, durationMs int) string {
	escaped := template.HTMLEscapeString(message)
	if durationMs > 0 {
		return fmt.Sprintf(`<div class="alert alert-%s" data-duration="%d">%s</div>`, level, durationMs, escaped)
	}
	return fmt.Sprintf(`<div class="alert alert-%s">%s</div>`, level, escaped)
}

// HTMXResponseBuilder provides a fluent API for building HTMX responses.
type HTMXResponseBuilder struct {
	triggers   map[string]interface{}
	statusCode int
	body       []byte
	headers    map[string]string
}

// NewHTMXResponse creates a new response builder with default 200 status.
func NewHTMXResponse() *HTMXResponseBuilder {
	return &HTMXResponseBuilder{
		triggers:   make(map[string]interface{}),
		statusCode: http.StatusOK,
		headers:    make(map[string]string),
	}
}

// Status sets the HTTP status code for the response.
func (b *HTMXResponseBuilder) Status(code int) *HTMXResponseBuilder {
	b.statusCode = code
	return b
}

// Trigger adds a named trigger with optional data to the HX-Trigger header.
func (b *HTMXResponseBuilder) Trigger(name string, data interface{}) *HTMXResponseBuilder {
	b.triggers[name] = data
	return b
}

// TriggerCategoryCreated adds the category:created trigger, which makes the
// page select re-fetch its option list.
func (b *HTMXResponseBuilder) TriggerCategoryCreated(name string) *HTMXResponseBuilder {
	return b.Trigger("category:created", map[string]string{"name": name})
}

// TriggerCategoryFormReset adds the category-form:reset trigger, which
// clears the new-category text field.
func (b *HTMXResponseBuilder) TriggerCategoryFormReset() *HTMXResponseBuilder {
	return b.Trigger("category-form:reset", struct{}{})
}

// Header adds a custom header to the response.
func (b *HTMXResponseBuilder) Header(name, value string) *HTMXResponseBuilder {
	b.headers[name] = value
	return b
}

// BodyHTML sets the response body as HTML content.
func (b *HTMXResponseBuilder) BodyHTML(html string) *HTMXResponseBuilder {
	b.headers["Content-Type"] = "text/html; charset=utf-8"
	b.body = []byte(html)
	return b
}

// Alert sets the body to a styled alert fragment.
func (b *HTMXResponseBuilder) Alert(level AlertLevel, message string, durationMs int) *HTMXResponseBuilder {
	return b.BodyHTML(AlertHTML(level, message, durationMs))
}

// Write sends the built response to the http.ResponseWriter.
func (b *HTMXResponseBuilder) Write(w http.ResponseWriter) {
	for name, value := range b.headers {
		w.Header().Set(name, value)
	}

	if len(b.triggers) > 0 {
		triggerJSON, err := json.Marshal(b.triggers)
		if err == nil {
			w.Header().Set("HX-Trigger", string(triggerJSON))
		}
	}

	w.WriteHeader(b.statusCode)
	if len(b.body) > 0 {
		_, _ = w.Write(b.body)
	}
}

// MethodNotAllowedError creates a 405 Method Not Allowed response.
func MethodNotAllowedError(allowedMethods string) *HTMXResponseBuilder {
	return NewHTMXResponse().
		Status(http.StatusMethodNotAllowed).
		Header("Allow", allowedMethods)
}
