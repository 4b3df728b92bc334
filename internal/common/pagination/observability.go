package pagination

import (
	"context"
	"log/slog"
	"time"

	"pagedlist/pkg/pagedlist"
)

// The helpers below expect a logger that already carries the request ID
// (see logging.WithRequestID).

// LogRequest logs a pagination request with structured fields.
func LogRequest(logger *slog.Logger, params Params) {
	logger.Info("Paginated request",
		"page", params.PageNumber,
		"page_size", params.PageSize)
}

// LogPage logs a built page with its metadata snapshot, duration and status.
func LogPage(logger *slog.Logger, meta pagedlist.Metadata, returnedCount int, duration time.Duration, statusCode int) {
	logger.Info("Paginated response",
		"pagination", meta,
		"returned_count", returnedCount,
		"out_of_range", !meta.Addressable() && meta.PageCount() > 0,
		"duration_ms", duration.Milliseconds(),
		"status", statusCode)
}

// LogError logs a pagination error. Validation and index errors are caller
// mistakes and logged at warn level; everything else at error level.
func LogError(logger *slog.Logger, params Params, err error, errorType string) {
	level := slog.LevelError
	if errorType == ErrorTypeValidation || errorType == ErrorTypeIndex {
		level = slog.LevelWarn
	}
	logger.Log(context.Background(), level, "Pagination error",
		"page", params.PageNumber,
		"page_size", params.PageSize,
		"error", err.Error(),
		"error_type", errorType)
}
