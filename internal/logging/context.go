package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

// loggerContextKey is an unexported key type so no other package can
// collide with the attachment.
type loggerContextKey struct{}

// WithLogger returns a context carrying the given logger.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

// FromContext returns the logger attached to the context, falling back to
// the shared default when none is attached.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerContextKey{}).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}
