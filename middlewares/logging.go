package middlewares

import (
	"log/slog"
	"time"

	"github.com/keelframework/keel/internal"
)

// LoggingConfig configures the request logging middleware.
type LoggingConfig struct {
	// SkipPaths lists exact request paths that are never logged,
	// typically health probes.
	SkipPaths []string
}

// LoggingOption configures LoggingConfig.
type LoggingOption func(*LoggingConfig)

// WithLoggingSkipPaths sets request paths excluded from logging.
func WithLoggingSkipPaths(paths ...string) LoggingOption {
	return func(cfg *LoggingConfig) {
		cfg.SkipPaths = paths
	}
}

// Logging returns middleware that writes one structured log line per
// request: method, path, status, size, and duration. Handler errors are
// logged at error level and passed through to the error handler.
func Logging(opts ...LoggingOption) internal.Middleware {
	cfg := &LoggingConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	skip := make(map[string]bool, len(cfg.SkipPaths))
	for _, p := range cfg.SkipPaths {
		skip[p] = true
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			if skip[c.Request().URL.Path] {
				return next(c)
			}

			start := time.Now()
			err := next(c)
			elapsed := time.Since(start)

			attrs := []any{
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Duration("duration", elapsed),
			}
			if rw := c.ResponseWriter(); rw != nil {
				attrs = append(attrs,
					slog.Int("status", rw.Status()),
					slog.Int64("size", rw.Size()),
				)
			}
			if reqID := GetRequestID(c); reqID != "" {
				attrs = append(attrs, slog.String("request_id", reqID))
			}

			if err != nil {
				attrs = append(attrs, slog.Any("error", err))
				c.LogError("request", attrs...)
			} else {
				c.LogInfo("request", attrs...)
			}

			return err
		}
	}
}
