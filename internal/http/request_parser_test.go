package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestParseClicks(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		want   int
		wantOK bool
	}{
		{name: "positive", value: "3", want: 3, wantOK: true},
		{name: "zero", value: "0", want: 0, wantOK: true},
		{name: "negative", value: "-1", want: -1, wantOK: true},
		{name: "padded", value: " 2 ", want: 2, wantOK: true},
		{name: "empty", value: "", wantOK: false},
		{name: "letters", value: "abc", wantOK: false},
		{name: "float", value: "1.5", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := url.Values{}
			if tt.value != "" {
				form.Set("clicks", tt.value)
			}
			got, ok := ParseClicks(form, "clicks")
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Fatalf("clicks = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseClicksAbsentKey(t *testing.T) {
	if _, ok := ParseClicks(url.Values{}, "clicks"); ok {
		t.Fatal("absent key should not parse")
	}
}

func TestSanitizeInput(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  Food  ", want: "Food"},
		{in: "Food\x00bar", want: "Foodbar"},
		{in: "a\tb", want: "a\tb"},
		{in: "", want: ""},
	}

	for _, tt := range tests {
		if got := sanitizeInput(tt.in); got != tt.want {
			t.Errorf("sanitizeInput(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRequireMethod(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/x", nil)

	if resp := RequireMethod(req, http.MethodGet); resp != nil {
		t.Error("matching method should return nil")
	}
	resp := RequireMethod(req, http.MethodPost)
	if resp == nil {
		t.Fatal("mismatched method should return a response")
	}

	rr := httptest.NewRecorder()
	resp.Write(rr)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d", rr.Code)
	}
}
