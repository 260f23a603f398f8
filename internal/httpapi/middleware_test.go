package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sanctum/internal/logging"
)

func TestRequestLogCarriesRequestID(t *testing.T) {
	var buf bytes.Buffer
	s := &Server{log: logging.New(logging.Config{Level: "info", Output: &buf})}

	handler := s.withRequestLog(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/venues", nil))

	requestID := rec.Header().Get("X-Request-ID")
	if requestID == "" {
		t.Fatal("expected X-Request-ID response header")
	}
	if !strings.Contains(buf.String(), requestID) {
		t.Fatalf("request log missing request id %s:\n%s", requestID, buf.String())
	}
}

func TestRequestLogRecoversPanic(t *testing.T) {
	var buf bytes.Buffer
	s := &Server{log: logging.New(logging.Config{Level: "info", Output: &buf})}

	handler := s.withRequestLog(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/venues", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 after panic, got %d", rec.Code)
	}
	if !strings.Contains(buf.String(), "handler panic") {
		t.Fatalf("expected panic log entry:\n%s", buf.String())
	}
}
