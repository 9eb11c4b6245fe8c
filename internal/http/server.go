package http

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"spendtrack/internal/middleware/ratelimit"
	"spendtrack/internal/middleware/trace"
	"spendtrack/internal/store"
	appweb "spendtrack/web"
)

// Sentinel option appended to the category select. It is not a real
// category; selecting it opens the creation dialog.
const (
	sentinelValue = "ADD_NEW"
	sentinelLabel = "Add new"
)

// ServerConfig tunes the server-level middleware.
type ServerConfig struct {
	RateLimitPerMinute int
}

// Server serves the spending entry form and its htmx fragments.
type Server struct {
	http.Server
	templates   *template.Template
	categories  store.CategoryReader
	catCreator  store.CategoryWriter
	spendings   store.SpendingWriter
	pinger      store.Pinger
	rateLimiter *ratelimit.Limiter
	tracer      *trace.Middleware

	metrics      *appMetrics
	shutdownOnce sync.Once
}

type appMetrics struct {
	startedAt       time.Time
	totalSpendings  int64
	totalCategories int64
}

// NewServer configures routes, middleware, and templates, returning a
// ready-to-run http.Server.
func NewServer(addr string, categories store.CategoryReader, catCreator store.CategoryWriter, spendings store.SpendingWriter, pinger store.Pinger, cfg ServerConfig) *Server {
	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr: addr,
		},
		categories: categories,
		catCreator: catCreator,
		spendings:  spendings,
		pinger:     pinger,
		rateLimiter: ratelimit.NewLimiter(ratelimit.Config{
			RequestsPerMinute: cfg.RateLimitPerMinute,
		}),
		tracer:  trace.NewMiddleware(clientIP),
		metrics: &appMetrics{startedAt: time.Now()},
	}

	// Parse embedded templates at startup.
	t, err := template.ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		slog.Warn("Failed parsing templates", "error", err)
	}
	s.templates = t

	// Static assets (served from embedded FS)
	if sub, err := fs.Sub(appweb.StaticFS, "static"); err == nil {
		static := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
		mux.Handle("/static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "public, max-age=3600, immutable")
			static.ServeHTTP(w, r)
		}))
	} else {
		slog.Warn("Failed to mount embedded static FS", "error", err)
	}

	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/readyz", s.handleReady)
	mux.HandleFunc("/metrics", s.handleMetrics)
	mux.HandleFunc("/categories", s.handleCreateCategory)
	mux.HandleFunc("/spendings", s.handleCreateSpending)
	// UI partials
	mux.HandleFunc("/ui/category-dialog", s.handleCategoryDialog)
	mux.HandleFunc("/ui/category-options", s.handleCategoryOptions)

	// Middleware, outermost first: tracing, rate limiting on mutations,
	// then security headers.
	var handler http.Handler = securityHeaders(mux)
	handler = s.limitMutations(handler)
	handler = s.tracer.Middleware(handler)
	s.Handler = handler

	return s
}

// limitMutations applies the rate limiter to POST requests only; reads and
// fragment fetches stay unmetered.
func (s *Server) limitMutations(next http.Handler) http.Handler {
	limited := s.rateLimiter.Middleware(clientIP, nil)(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			limited.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Content-Security-Policy", "default-src 'self'; script-src 'self' https://unpkg.com 'unsafe-eval'; style-src 'self' 'unsafe-inline'; img-src 'self' data:; connect-src 'self'")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		next.ServeHTTP(w, r)
	})
}

// clientIP extracts the client address, honoring proxy headers.
func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		return ip
	}
	return r.RemoteAddr
}

// renderFragment executes a named template into a string for use as an
// htmx fragment body.
func (s *Server) renderFragment(name string, data any) (string, error) {
	if s.templates == nil {
		return "", fmt.Errorf("templates not loaded")
	}
	var buf bytes.Buffer
	if err := s.templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.String(), nil
}

// Shutdown gracefully shuts down the server and its middleware.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error
	s.shutdownOnce.Do(func() {
		if s.rateLimiter != nil {
			s.rateLimiter.Stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})
	return shutdownErr
}
