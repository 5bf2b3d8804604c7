package log

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
)

var (
	defaultMu     sync.RWMutex
	defaultLogger Logger = newSlogLogger(slog.Default())
)

// SetupLogger configures the package-wide default logger with a JSON slog
// handler at the given level. Errors carrying cockroachdb/errors stack traces
// are emitted with a "stacktrace" attribute.
func SetupLogger(loglevel string) {
	ops := slog.HandlerOptions{
		Level: toSlogLevel(ToLogLevel(loglevel)),
	}
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(os.Stdout, &ops))

	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = newSlogLogger(slog.New(handler))
}

// SetDefaultLogger replaces the package-wide default logger.
// Useful for routing library logs into an application's logger or for tests.
func SetDefaultLogger(logger Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

// GetLogger returns the package-wide default logger.
func GetLogger() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// GetLoggerWithName returns the default logger with a "logger" name field
// attached, typically the package or component name.
func GetLoggerWithName(name string) Logger {
	return GetLogger().With("logger", name)
}

// ToLogLevel parses a level name into a Level. It panics on unknown names,
// matching the fail-fast behavior expected at program startup.
func ToLogLevel(level string) Level {
	switch level {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	default:
		panic(fmt.Sprintf("invalid log level: %s", level))
	}
}

func toSlogLevel(level Level) slog.Level {
	switch level {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// slogLogger adapts *slog.Logger to the Logger interface.
type slogLogger struct {
	l *slog.Logger
}

func newSlogLogger(l *slog.Logger) *slogLogger {
	return &slogLogger{l: l}
}

func (s *slogLogger) Debug(msg string, fields ...any) { s.l.Debug(msg, fields...) }
func (s *slogLogger) Info(msg string, fields ...any)  { s.l.Info(msg, fields...) }
func (s *slogLogger) Warn(msg string, fields ...any)  { s.l.Warn(msg, fields...) }
func (s *slogLogger) Error(msg string, fields ...any) { s.l.Error(msg, fields...) }

func (s *slogLogger) With(fields ...any) Logger {
	return &slogLogger{l: s.l.With(fields...)}
}
