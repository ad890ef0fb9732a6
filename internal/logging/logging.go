// Package logging carries a *slog.Logger in a context.Context.
package logging // import "feedmill.app/internal/logging"

import (
	"context"
	"log/slog"
)

type loggerKey struct{}

// FromContext returns the logger of ctx, or the default logger.
func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

// With returns a copy of ctx, which logger includes args in every record.
func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}

func WithLogger(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}
