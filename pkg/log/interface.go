// Package log provides a structured logging interface for sigo machine
// learning operations.
//
// The package defines a minimal, slog-compatible logging interface so that
// the backing implementation can be swapped (the default is log/slog with a
// JSON handler; a zerolog backend is also provided) while estimators and the
// model-selection layer log through one consistent API. Standard attribute
// keys for ML operations live in attributes.go.
//
// Example usage:
//
//	logger := log.GetLoggerWithName("linear").With(
//	    log.ModelNameKey, "RidgeRegression",
//	)
//	logger.Info("Training started",
//	    log.OperationKey, log.OperationFit,
//	    log.SamplesKey, 1000,
//	)
package log

// Level represents a logging severity level.
type Level int

// Logging levels, lowest to highest severity.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// Logger defines a structured logging interface compatible with Go's log/slog.
//
// Fields are passed as alternating key-value pairs, as in slog. With returns
// a derived logger carrying pre-populated fields, enabling contextual loggers
// per model or component.
type Logger interface {
	// Debug logs a debug-level message with optional structured fields.
	Debug(msg string, fields ...any)

	// Info logs an info-level message with optional structured fields.
	Info(msg string, fields ...any)

	// Warn logs a warning-level message with optional structured fields.
	Warn(msg string, fields ...any)

	// Error logs an error-level message with optional structured fields.
	Error(msg string, fields ...any)

	// With returns a new Logger with the given fields attached to every
	// subsequent log entry.
	With(fields ...any) Logger
}
