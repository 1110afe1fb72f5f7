package logger

import (
	"context"
	"io"
	"log/slog"
)

type contextKey struct{}

var loggerKey = contextKey{}

// Options selects the level of the CLI logger. Debug wins over Verbose.
type Options struct {
	Debug   bool
	Verbose bool
	NoColor bool
}

func (o Options) level() slog.Level {
	switch {
	case o.Debug:
		return slog.LevelDebug
	case o.Verbose:
		return slog.LevelInfo
	default:
		return slog.LevelWarn
	}
}

// New returns a logger that writes human readable records to w.
func New(w io.Writer, o Options) *slog.Logger {
	return slog.New(NewPrettyHandler(w, &slog.HandlerOptions{
		Level:     o.level(),
		AddSource: o.Debug,
	}).WithoutColor(o.NoColor))
}

// Initialize installs a New logger as the slog default.
func Initialize(w io.Writer, o Options) *slog.Logger {
	l := New(w, o)
	slog.SetDefault(l)
	return l
}

func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	if l, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

func With(ctx context.Context, args ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(args...))
}

func Debug(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Debug(msg, args...)
}

func Info(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Info(msg, args...)
}

func Warn(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Warn(msg, args...)
}

func Error(ctx context.Context, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, slog.Any("error", err))
	}
	FromContext(ctx).Error(msg, args...)
}
