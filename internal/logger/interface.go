package logger

import "context"

// Logger is the leveled logger shared by every component. Progress lines and
// failures both go through it; nothing in the pipeline writes to stdout
// directly.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}
