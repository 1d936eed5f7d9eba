package logger

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))

	handler := RequestLogger(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	r := httptest.NewRequest(http.MethodGet, "/api/v1/history", nil)
	r.Header.Set("X-Session-ID", "s1")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	out := buf.String()
	assert.Contains(t, out, "Request completed")
	assert.Contains(t, out, "path=/api/v1/history")
	assert.Contains(t, out, "session_id=s1")
	assert.Contains(t, out, "status=418")
}

func TestRequestLogger_NoSessionHeader(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))

	handler := RequestLogger(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)

	assert.NotContains(t, buf.String(), "session_id")
}
