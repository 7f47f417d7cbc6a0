// Package context carries request-scoped values (request id, logger) between
// the delivery layer and the services beneath it.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey avoids collisions with other packages' context values.
type ContextKey string

const (
	// KeyRequestID stores the request id.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger stores the request-scoped logger.
	KeyLogger ContextKey = "logger"

	// HeaderXRequestID is the header the id is read from and echoed to.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID returns the request id stored in the echo context, minting a
// fresh one when the middleware has not run.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// SetRequestID stores the request id in the echo context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request id from a context.Context,
// empty when absent. Event payloads use this to carry the id downstream.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// WithRequestID returns a child context carrying the request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger returns the request-scoped logger, nil when absent.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to the
// supplied logger when the context carries none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a child context carrying the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
