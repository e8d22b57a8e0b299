// Package logging provides the structured logger used by pack, unpack and
// the command line. It wraps log/slog behind a small leveled API so library
// callers can silence it with NewNopLogger.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/jmgilman/go/fdir/errors"
)

// LogLevel represents different logging levels
type LogLevel int

// Supported levels, lowest first.
const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// LogFormat selects the slog handler.
type LogFormat string

const (
	// FormatText writes key=value lines.
	FormatText LogFormat = "text"
	// FormatJSON writes one JSON object per line.
	FormatJSON LogFormat = "json"
)

// Logger provides leveled structured logging.
type Logger struct {
	impl loggerImpl
}

type loggerImpl interface {
	log(ctx context.Context, level LogLevel, msg string, args ...any)
	with(args ...any) loggerImpl
}

// Debug logs debug-level messages
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.log(ctx, LogLevelDebug, msg, args...)
}

// Info logs info-level messages
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, LogLevelInfo, msg, args...)
}

// Warn logs warning-level messages
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.log(ctx, LogLevelWarn, msg, args...)
}

// Error logs error-level messages
func (l *Logger) Error(ctx context.Context, msg string, args ...any) {
	l.log(ctx, LogLevelError, msg, args...)
}

func (l *Logger) log(ctx context.Context, level LogLevel, msg string, args ...any) {
	if l == nil || l.impl == nil {
		return
	}
	l.impl.log(ctx, level, msg, args...)
}

// With returns a logger with additional context fields
func (l *Logger) With(args ...any) *Logger {
	if l == nil || l.impl == nil {
		return l
	}
	if _, ok := l.impl.(nopLogger); ok {
		return l
	}
	return &Logger{impl: l.impl.with(args...)}
}

// WithOperation returns a logger with operation context
func (l *Logger) WithOperation(op Operation) *Logger {
	return l.With("operation", string(op))
}

// WithPath returns a logger with path context
func (l *Logger) WithPath(path string) *Logger {
	return l.With("path", path)
}

// LogConfig holds configuration for the logger.
type LogConfig struct {
	// Level sets the minimum log level.
	Level LogLevel
	// Format selects text or JSON output.
	Format LogFormat
	// Output receives log lines. Defaults to os.Stderr.
	Output io.Writer
	// EnableCallerInfo includes file and line number in logs.
	// The CLI turns it on at debug level.
	EnableCallerInfo bool
}

// DefaultLogConfig returns info-level text logging to stderr.
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:  LogLevelInfo,
		Format: FormatText,
		Output: os.Stderr,
	}
}

// NewLogger creates a new structured logger with the given configuration.
func NewLogger(config LogConfig) *Logger {
	out := config.Output
	if out == nil {
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:     config.Level.slogLevel(),
		AddSource: config.EnableCallerInfo,
	}

	var handler slog.Handler
	if config.Format == FormatJSON {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return &Logger{impl: &slogLogger{logger: slog.New(handler)}}
}

// NewNopLogger creates a no-op logger that discards all log messages.
func NewNopLogger() *Logger {
	return &Logger{impl: nopLogger{}}
}

func (lvl LogLevel) slogLevel() slog.Level {
	switch lvl {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// slogLogger implements loggerImpl using slog.
type slogLogger struct {
	logger *slog.Logger
}

func (l *slogLogger) log(ctx context.Context, level LogLevel, msg string, args ...any) {
	lvl := level.slogLevel()
	if !l.logger.Enabled(ctx, lvl) {
		return
	}

	// Skip Callers, this method, Logger.log and the level method so the
	// source attribute points at the caller.
	var pcs [1]uintptr
	runtime.Callers(4, pcs[:])
	r := slog.NewRecord(time.Now(), lvl, msg, pcs[0])
	r.Add(args...)
	_ = l.logger.Handler().Handle(ctx, r)
}

func (l *slogLogger) with(args ...any) loggerImpl {
	return &slogLogger{logger: l.logger.With(args...)}
}

// nopLogger discards all messages.
type nopLogger struct{}

func (nopLogger) log(context.Context, LogLevel, string, ...any) {}
func (n nopLogger) with(...any) loggerImpl                      { return n }

// Operation names an archiver operation for logging.
type Operation string

// Operation constants
const (
	OpPack   Operation = "pack"
	OpUnpack Operation = "unpack"
	OpList   Operation = "list"
)

// LogOperation writes the one-line summary for a finished operation.
func LogOperation(
	ctx context.Context,
	logger *Logger,
	operation Operation,
	duration time.Duration,
	records int,
	bytes int64,
	err error,
) {
	if logger == nil {
		return
	}

	fields := []any{
		"operation", string(operation),
		"records", records,
		"bytes", bytes,
		"duration_ms", duration.Milliseconds(),
	}

	if err != nil {
		fields = append(fields, "error", err.Error())
		logger.Error(ctx, string(operation)+" failed", fields...)
		return
	}
	logger.Info(ctx, string(operation)+" completed", fields...)
}

// ParseLogLevel parses a string log level into a LogLevel.
func ParseLogLevel(level string) (LogLevel, error) {
	switch strings.ToLower(level) {
	case "debug":
		return LogLevelDebug, nil
	case "info":
		return LogLevelInfo, nil
	case "warn", "warning":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	default:
		return LogLevelInfo, errors.Newf(errors.CodeInvalidInput, "invalid log level: %s", level)
	}
}

// ParseLogFormat parses "text" or "json".
func ParseLogFormat(format string) (LogFormat, error) {
	switch LogFormat(strings.ToLower(format)) {
	case FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return FormatText, errors.Newf(errors.CodeInvalidInput, "invalid log format: %s", format)
	}
}
