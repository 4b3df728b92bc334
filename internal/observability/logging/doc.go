// Package logging provides structured logging utilities with context propagation.
//
// This package wraps the standard library's log/slog package with helper functions
// for common logging patterns used throughout the page API.
//
// Key features:
//   - JSON and text output formats (LOG_FORMAT)
//   - Configurable log levels (LOG_LEVEL)
//   - Request ID propagation
//
// Example usage:
//
//	logger := logging.NewLogger(os.Stdout)
//	logger.Info("server started", slog.String("addr", addr))
//
//	func handle(ctx context.Context) {
//	    logger := logging.WithRequestID(ctx, slog.Default())
//	    logger.Info("building page")
//	}
package logging
