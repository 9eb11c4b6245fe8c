// Package http provides the HTTP server and handler implementations.
//
// This file implements utilities for parsing and validating request data
// shared across the form handlers.

package http

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// ParseClicks reads a hidden click-counter field. The second return is
// false when the field is absent or not a number; callers treat that case
// differently from an explicit zero.
func ParseClicks(form url.Values, key string) (int, bool) {
	v := strings.TrimSpace(form.Get(key))
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// RequireMethod checks if the request method matches one of the expected
// methods. Returns an error response builder on mismatch, nil otherwise.
func RequireMethod(r *http.Request, methods ...string) *HTMXResponseBuilder {
	for _, m := range methods {
		if r.Method == m {
			return nil
		}
	}
	return MethodNotAllowedError(strings.Join(methods, ", "))
}

// RequirePOST is a convenience function for POST-only handlers.
func RequirePOST(r *http.Request) *HTMXResponseBuilder {
	return RequireMethod(r, http.MethodPost)
}

// RequireGET is a convenience function for GET-only handlers.
func RequireGET(r *http.Request) *HTMXResponseBuilder {
	return RequireMethod(r, http.MethodGet)
}

// ParseFormOrFail parses the request form and returns an error response on
// failure. Returns nil on success.
func ParseFormOrFail(r *http.Request) *HTMXResponseBuilder {
	if err := r.ParseForm(); err != nil {
		return NewHTMXResponse().
			Status(http.StatusBadRequest).
			Alert(AlertDanger, "Invalid request format", 0)
	}
	return nil
}
