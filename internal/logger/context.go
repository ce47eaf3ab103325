package logger

import (
	"context"
	"log/slog"
)

type loggerKey struct{}

func AddToContext(ctx context.Context, ctxLogger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, ctxLogger)
}

// GetFromContext falls back to slog.Default when ctx carries no logger.
func GetFromContext(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey{}).(*slog.Logger)
	if !ok {
		return slog.Default()
	}

	return logger
}
