package log

import "context"

// Logger is the ctx-first logging interface used across the service.
// The context is reserved for request-scoped fields (trace ids, user ids);
// implementations may ignore it.
type Logger interface {
	Debug(ctx context.Context, args ...any)
	Debugf(ctx context.Context, format string, args ...any)

	Info(ctx context.Context, args ...any)
	Infof(ctx context.Context, format string, args ...any)

	Warn(ctx context.Context, args ...any)
	Warnf(ctx context.Context, format string, args ...any)

	Error(ctx context.Context, args ...any)
	Errorf(ctx context.Context, format string, args ...any)

	Fatal(ctx context.Context, args ...any)
	Fatalf(ctx context.Context, format string, args ...any)
}
