package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"pagedlist/internal/config"
	hhttp "pagedlist/internal/handler/http"
	"pagedlist/internal/handler/http/page"
	"pagedlist/internal/handler/http/requestid"
	"pagedlist/internal/observability/logging"
	"pagedlist/internal/observability/tracing"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML server configuration (defaults and environment are used when empty)")
	flag.Parse()

	logger := initLogger()

	cfg, err := config.LoadServerConfig(*configPath)
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, getVersion()); err != nil {
		logger.Error("server stopped with error", slog.Any("error", err))
		os.Exit(1)
	}
}

// initLogger initializes the process-wide structured logger.
func initLogger() *slog.Logger {
	logger := logging.NewLogger(os.Stdout)
	slog.SetDefault(logger)
	return logger
}

// getVersion returns the application version from environment or default.
func getVersion() string {
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}
	return version
}

// run serves until ctx is cancelled, then shuts the server down within the
// configured timeout.
func run(ctx context.Context, cfg *config.ServerConfig, logger *slog.Logger, version string) error {
	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           newHandler(cfg, logger, version),
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("server starting",
			slog.String("addr", cfg.HTTP.Addr),
			slog.String("version", version),
			slog.Bool("rate_limit", cfg.RateLimit.Enabled))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server", slog.Duration("timeout", cfg.HTTP.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		logger.Info("server stopped")
		return nil
	})

	return g.Wait()
}

// newHandler builds the routed handler wrapped in the middleware chain:
// request ID -> context logger -> tracing -> recovery -> logging -> metrics -> rate limit -> body limit.
func newHandler(cfg *config.ServerConfig, logger *slog.Logger, version string) http.Handler {
	var limiter *hhttp.RateLimiter
	if cfg.RateLimit.Enabled {
		var opts []hhttp.RateLimiterOption
		if cfg.RateLimit.TrustProxy {
			opts = append(opts, hhttp.WithTrustProxy())
		}
		limiter = hhttp.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, opts...)
	} else {
		logger.Warn("rate limiting is DISABLED - not recommended for production")
	}

	mux := http.NewServeMux()
	mux.Handle("GET /health", &hhttp.HealthHandler{
		Version:     version,
		StartedAt:   time.Now(),
		Pagination:  cfg.Pagination,
		RateLimiter: limiter,
	})
	mux.Handle("GET /live", hhttp.LiveHandler())
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	api := http.NewServeMux()
	page.Register(api, cfg.Pagination)

	var pages http.Handler = api
	if limiter != nil {
		pages = limiter.Limit(pages)
	}
	pages = hhttp.LimitRequestBody(cfg.HTTP.MaxBodyBytes)(pages)
	mux.Handle("/pages", pages)
	mux.Handle("/pages/", pages)

	return hhttp.Chain(mux,
		requestid.Middleware,
		hhttp.ContextLogger(logger),
		tracing.Middleware,
		hhttp.Recover(logger),
		hhttp.Logging(logger),
		hhttp.MetricsMiddleware,
	)
}
