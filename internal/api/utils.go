// Package api holds the JSON helpers shared by the auth and guide handlers.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// ErrorResponse writes the error envelope every endpoint shares:
// {"success": false, "error": ..., "request_id": ...}.
func ErrorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	WriteJSONResponse(w, r, status, map[string]any{
		"success":    false,
		"error":      message,
		"request_id": middleware.GetReqID(r.Context()),
	})
}

// WriteJSONResponse marshals data and writes it with the given status.
// A marshal failure degrades to a plain 500; a write failure can only be
// logged because the status line is already out.
func WriteJSONResponse(w http.ResponseWriter, r *http.Request, status int, data any) {
	if status == http.StatusNoContent {
		w.WriteHeader(status)
		return
	}

	js, err := json.Marshal(data)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to marshal JSON response",
			slog.Any("error", err),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(js); err != nil {
		slog.ErrorContext(r.Context(), "Failed to write response body",
			slog.Any("error", err),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	}
}

// maxRequestBody caps request payloads well above the longest message the
// input screen will accept.
const maxRequestBody = 1 << 20

// DecodeJSONBody decodes a request body into dst, translating decoder
// errors into messages safe to echo back to the client.
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &syntaxErr):
		return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxErr.Offset)
	case errors.Is(err, io.ErrUnexpectedEOF):
		return errors.New("body contains badly-formed JSON")
	case errors.As(err, &typeErr):
		if typeErr.Field != "" {
			return fmt.Errorf("body contains incorrect JSON type for field %q (wanted %s)", typeErr.Field, typeErr.Type)
		}
		return fmt.Errorf("body contains incorrect JSON type (at character %d)", typeErr.Offset)
	case errors.Is(err, io.EOF):
		return errors.New("body must not be empty")
	case errors.As(err, &maxBytesErr):
		return fmt.Errorf("body must not be larger than %d bytes", maxBytesErr.Limit)
	default:
		return fmt.Errorf("error decoding JSON body: %w", err)
	}
}
