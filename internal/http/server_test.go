package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"spendtrack/internal/core"
	"spendtrack/internal/store/memory"
)

// errStore fails every operation; used to exercise storage error paths.
type errStore struct{}

func (errStore) List(ctx context.Context) ([]string, error) {
	return nil, errors.New("boom")
}
func (errStore) Create(ctx context.Context, name string) error {
	return errors.New("boom")
}
func (errStore) Record(ctx context.Context, s core.Spending) (int64, error) {
	return 0, errors.New("disk I/O error")
}
func (errStore) Ping(ctx context.Context) error {
	return errors.New("boom")
}

func newTestServer(store *memory.Store) *Server {
	return NewServer(":0", store, store, store, store, ServerConfig{})
}

func newErrServer() *Server {
	return NewServer(":0", errStore{}, errStore{}, errStore{}, errStore{}, ServerConfig{})
}

func get(srv *Server, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	srv.Handler.ServeHTTP(rr, req)
	return rr
}

func postForm(srv *Server, path string, form url.Values) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	srv.Handler.ServeHTTP(rr, req)
	return rr
}

func TestIndexRendersFormWithCategories(t *testing.T) {
	srv := newTestServer(memory.New([]string{"Food", "Transport"}))

	rr := get(srv, "/")
	if rr.Code != http.StatusOK {
		t.Fatalf("index status = %d", rr.Code)
	}

	body := rr.Body.String()
	for _, want := range []string{
		`placeholder="Amount"`,
		`<option value="Food">Food</option>`,
		`<option value="Transport">Transport</option>`,
		`<option value="ADD_NEW">Add new</option>`,
		`Select a category`,
		`Add New Category`,
		`id="alert-container"`,
		`id="output-container"`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("index body missing %q", want)
		}
	}
	// The dialog starts closed.
	if strings.Contains(body, `<dialog id="category-dialog" open>`) {
		t.Error("dialog should render closed on page load")
	}
}

func TestIndexSurvivesCategoryListFailure(t *testing.T) {
	srv := newErrServer()

	rr := get(srv, "/")
	if rr.Code != http.StatusOK {
		t.Fatalf("index status = %d, want 200 despite list failure", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `<option value="ADD_NEW">`) {
		t.Error("sentinel option should render even with no categories")
	}
}

func TestIndexUnknownPathIs404(t *testing.T) {
	srv := newTestServer(memory.New(nil))
	if rr := get(srv, "/nope"); rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}

func TestSecurityHeaders(t *testing.T) {
	srv := newTestServer(memory.New(nil))

	rr := get(srv, "/")
	headers := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
	}
	for name, want := range headers {
		if got := rr.Header().Get(name); got != want {
			t.Errorf("%s = %q, want %q", name, got, want)
		}
	}
	if csp := rr.Header().Get("Content-Security-Policy"); !strings.Contains(csp, "https://unpkg.com") {
		t.Errorf("CSP missing script source: %q", csp)
	}
}

func TestHealthAndReady(t *testing.T) {
	srv := newTestServer(memory.New(nil))

	if rr := get(srv, "/healthz"); rr.Code != http.StatusOK {
		t.Fatalf("healthz status = %d", rr.Code)
	}
	rr := get(srv, "/readyz")
	if rr.Code != http.StatusOK {
		t.Fatalf("readyz status = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"storage":"ok"`) {
		t.Errorf("readyz body missing storage check: %s", rr.Body.String())
	}
}

func TestReadyFailsWhenStorageDown(t *testing.T) {
	srv := newErrServer()

	rr := get(srv, "/readyz")
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("readyz status = %d, want 503", rr.Code)
	}
}

func TestMetricsCountsSpendings(t *testing.T) {
	srv := newTestServer(memory.New([]string{"Food"}))

	postForm(srv, "/spendings", url.Values{
		"clicks":   {"1"},
		"amount":   {"10"},
		"category": {"Food"},
	})

	rr := get(srv, "/metrics")
	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status = %d", rr.Code)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "spendings_total 1") {
		t.Errorf("metrics missing spendings_total 1:\n%s", body)
	}
	if !strings.Contains(body, "http_requests_total") || !strings.Contains(body, "uptime_seconds") {
		t.Error("metrics missing standard counters")
	}
}

func TestRateLimitAppliesToPOSTOnly(t *testing.T) {
	store := memory.New([]string{"Food"})
	srv := NewServer(":0", store, store, store, store, ServerConfig{RateLimitPerMinute: 1})

	form := url.Values{"clicks": {"1"}, "amount": {"1"}, "category": {"Food"}}
	if rr := postForm(srv, "/spendings", form); rr.Code != http.StatusOK {
		t.Fatalf("first POST status = %d", rr.Code)
	}
	rr := postForm(srv, "/spendings", form)
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("second POST status = %d, want 429", rr.Code)
	}
	if rr.Header().Get("Retry-After") != "60" {
		t.Error("429 should carry Retry-After")
	}

	// GETs are never limited.
	if rr := get(srv, "/"); rr.Code != http.StatusOK {
		t.Fatalf("GET after limit status = %d", rr.Code)
	}
}

func TestStaticAssetsServed(t *testing.T) {
	srv := newTestServer(memory.New(nil))

	rr := get(srv, "/static/app.js")
	if rr.Code != http.StatusOK {
		t.Fatalf("static status = %d", rr.Code)
	}
	if cc := rr.Header().Get("Cache-Control"); !strings.Contains(cc, "max-age=3600") {
		t.Errorf("Cache-Control = %q", cc)
	}
}
