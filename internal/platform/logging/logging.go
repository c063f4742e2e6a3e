package logging

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

// contextKey is the key type used to store the logger in a context.
// Using a custom type prevents collisions.
type contextKey string

const loggerKey = contextKey("logger")

// NewLogger builds the process-wide JSON logger. Production drops debug output.
func NewLogger(isProduction bool) *slog.Logger {
	level := slog.LevelDebug
	if isProduction {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

// WithLogger stores a logger in the context for downstream services.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithOperation derives an operation-scoped logger (tagged with the operation
// name and a fresh operation ID) and stores it in the context.
func WithOperation(ctx context.Context, baseLogger *slog.Logger, operation string) context.Context {
	opLogger := baseLogger.With(
		slog.String("operation", operation),
		slog.String("operation_id", uuid.NewString()),
	)
	return WithLogger(ctx, opLogger)
}

// GetLoggerFromCtx retrieves the scoped logger from the context. It returns
// the default logger if none is found.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}
