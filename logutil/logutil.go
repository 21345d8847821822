package logutil

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// Level represents the logging level.
type Level int

const (
	// LevelDebug is for debug messages.
	LevelDebug Level = iota
	// LevelInfo is for informational messages.
	LevelInfo
	// LevelWarn is for warnings.
	LevelWarn
	// LevelError is for errors.
	LevelError
)

// EnvDebug enables debug logging when set to "true".
const EnvDebug = "URLSCOPE_DEBUG"

var (
	mu           sync.RWMutex
	globalLogger *slog.Logger
	currentLevel           = LevelInfo
	isStructured           = false
	outputWriter io.Writer = os.Stderr
)

func init() {
	SetupLogger(false, false)
}

// SetupLogger configures the global logger. debug widens the level to
// include debug messages; structured switches the format from text lines
// to JSON. Output goes to stderr. Safe for concurrent use.
func SetupLogger(debug, structured bool) {
	SetupLoggerWithWriter(os.Stderr, debug, structured)
}

// SetupLoggerWithWriter configures the logger with a custom writer.
// This is useful for testing or redirecting logs.
// Safe for concurrent use.
func SetupLoggerWithWriter(w io.Writer, debug, structured bool) {
	mu.Lock()
	defer mu.Unlock()

	if debug {
		currentLevel = LevelDebug
	} else {
		currentLevel = LevelInfo
	}
	isStructured = structured
	outputWriter = w
	rebuild()
}

// SetOutput sets the output writer for the logger, keeping the current
// level and format. Safe for concurrent use.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	outputWriter = w
	rebuild()
}

// rebuild recreates the global handler from the current settings.
// Caller must hold mu.
func rebuild() {
	opts := &slog.HandlerOptions{Level: currentLevel.slogLevel()}

	var handler slog.Handler
	if isStructured {
		handler = slog.NewJSONHandler(outputWriter, opts)
	} else {
		handler = slog.NewTextHandler(outputWriter, opts)
	}

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}

func (l Level) slogLevel() slog.Level {
	switch l {
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

// IsDebugEnabled returns true if debug logging is enabled, either
// programmatically or through the URLSCOPE_DEBUG environment variable.
// Safe for concurrent use.
func IsDebugEnabled() bool {
	mu.RLock()
	level := currentLevel
	mu.RUnlock()
	return level == LevelDebug || os.Getenv(EnvDebug) == "true"
}

// Debug logs a debug message with optional key-value pairs.
// Debug messages are only logged when debug mode is enabled.
func Debug(msg string, args ...any) {
	if IsDebugEnabled() {
		Logger().Debug(msg, args...)
	}
}

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) {
	Logger().Info(msg, args...)
}

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) {
	Logger().Warn(msg, args...)
}

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) {
	Logger().Error(msg, args...)
}

// ParseLevel parses a string into a Level.
// Valid values are: "debug", "info", "warn", "warning", "error".
// Returns LevelInfo for unrecognized values.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// GetLevel returns the current logging level. Safe for concurrent use.
func GetLevel() Level {
	mu.RLock()
	defer mu.RUnlock()
	return currentLevel
}

// SetLevel sets the logging level programmatically. Safe for concurrent
// use.
func SetLevel(level Level) {
	mu.Lock()
	defer mu.Unlock()

	currentLevel = level
	rebuild()
}

// Logger returns the underlying slog.Logger for advanced usage.
// Safe for concurrent use.
func Logger() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}
