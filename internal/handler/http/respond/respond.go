// Package respond provides utilities for sending HTTP responses in JSON format.
// Error helpers keep internal failure details out of response bodies.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"pagedlist/pkg/pagedlist"
)

// internalMessage replaces the body of every 5xx response.
const internalMessage = "internal server error"

// safeFragments mark messages produced by input validation, which may be shown to callers.
var safeFragments = []string{
	"required",
	"invalid",
	"out of range",
	"must be",
	"cannot be",
	"cannot exceed",
	"too large",
}

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers are already sent.
		slog.Default().Error("failed to encode JSON response",
			slog.Int("status_code", code),
			slog.Any("error", err))
	}
}

// Error writes a JSON error response with the given status code and error message.
func Error(w http.ResponseWriter, code int, err error) {
	JSON(w, code, map[string]string{"error": err.Error()})
}

// SafeError writes err as the response body only when it is a client error
// whose message looks like a validation failure. Everything else is logged
// and answered with a generic message.
func SafeError(w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	if code < http.StatusInternalServerError && isSafe(err.Error()) {
		Error(w, code, err)
		return
	}

	slog.Default().Error("internal server error",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.Any("error", err))
	JSON(w, code, map[string]string{"error": internalMessage})
}

func isSafe(msg string) bool {
	lower := strings.ToLower(msg)
	for _, fragment := range safeFragments {
		if strings.Contains(lower, fragment) {
			return true
		}
	}
	return false
}

// StatusFor maps an error from page construction or request decoding to an HTTP status.
//
//   - pagedlist.ErrInvalidArgument -> 400
//   - pagedlist.ErrIndexOutOfRange -> 404
//   - *http.MaxBytesError          -> 413
//   - anything else                -> 500
func StatusFor(err error) int {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.Is(err, pagedlist.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, pagedlist.ErrIndexOutOfRange):
		return http.StatusNotFound
	case errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// PageError writes err with the status chosen by StatusFor and returns that status.
func PageError(w http.ResponseWriter, err error) int {
	code := StatusFor(err)
	if code == http.StatusRequestEntityTooLarge {
		JSON(w, code, map[string]string{"error": "request body too large"})
		return code
	}
	SafeError(w, code, err)
	return code
}
