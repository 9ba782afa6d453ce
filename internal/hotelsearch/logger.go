package hotelsearch

import (
	"context"
	"log/slog"
)

// ErrorLogger receives a diagnostic entry for every failed request.
// Implementations must be safe for concurrent use.
type ErrorLogger interface {
	LogError(ctx context.Context, err error)
}

// SlogLogger writes failures to a *slog.Logger at error level.
type SlogLogger struct {
	Logger *slog.Logger
}

// NewSlogLogger returns an ErrorLogger backed by log, or by slog.Default()
// when log is nil.
func NewSlogLogger(log *slog.Logger) SlogLogger {
	if log == nil {
		log = slog.Default()
	}
	return SlogLogger{Logger: log}
}

func (l SlogLogger) LogError(ctx context.Context, err error) {
	attrs := []any{"error", err}
	if e := AsError(err); e != nil {
		attrs = append(attrs, "kind", e.Kind.String())
		if e.StatusCode != 0 {
			attrs = append(attrs, "status", e.StatusCode)
		}
	}
	l.Logger.ErrorContext(ctx, "API Error", attrs...)
}

// logError hands err to the configured logger. A panicking logger is
// recovered so the caller still receives its outcome.
func (c *Client) logError(ctx context.Context, err error) {
	if c.Logger == nil {
		return
	}
	defer func() {
		_ = recover()
	}()
	c.Logger.LogError(ctx, err)
}
