package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/msomdec/roster/internal/handler"
)

func TestRequestID_Generated(t *testing.T) {
	var gotID string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = handler.RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.RequestID(inner).ServeHTTP(w, req)

	if gotID == "" {
		t.Fatal("expected a generated request id in context")
	}
	if hdr := w.Header().Get("X-Request-ID"); hdr != gotID {
		t.Fatalf("expected response header %q, got %q", gotID, hdr)
	}
}

func TestRequestID_Propagated(t *testing.T) {
	var gotID string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = handler.RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "caller-supplied-id")
	w := httptest.NewRecorder()

	handler.RequestID(inner).ServeHTTP(w, req)

	if gotID != "caller-supplied-id" {
		t.Fatalf("expected the caller's id to be kept, got %q", gotID)
	}
	if hdr := w.Header().Get("X-Request-ID"); hdr != "caller-supplied-id" {
		t.Fatalf("expected the caller's id echoed, got %q", hdr)
	}
}

func TestRequestIDFromContext_Unset(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	if id := handler.RequestIDFromContext(req.Context()); id != "" {
		t.Fatalf("expected empty id without middleware, got %q", id)
	}
}

func TestRequestLogger_PassesThrough(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.RequestLogger(inner).ServeHTTP(w, req)

	if w.Code != http.StatusTeapot {
		t.Fatalf("expected status 418 to pass through, got %d", w.Code)
	}
	if w.Body.String() != "short and stout" {
		t.Fatalf("expected body to pass through, got %q", w.Body.String())
	}
}

func TestSecurityHeaders(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.SecurityHeaders(inner).ServeHTTP(w, req)

	tests := []struct {
		header string
		want   string
	}{
		{"X-Content-Type-Options", "nosniff"},
		{"X-Frame-Options", "DENY"},
		{"Referrer-Policy", "no-referrer"},
	}
	for _, tt := range tests {
		if got := w.Header().Get(tt.header); got != tt.want {
			t.Errorf("expected %s=%q, got %q", tt.header, tt.want, got)
		}
	}
}
