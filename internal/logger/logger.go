// Package logger provides a simple leveled logger for the application.
// It supports three levels: off (no output), normal (info/warn/error),
// and verbose (includes debug). Output is produced by a zap core with a
// console encoder. The logger is safe for concurrent use.
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level controls the verbosity of the logger.
type Level int

const (
	// LevelOff disables all log output.
	LevelOff Level = iota
	// LevelNormal enables info, warn, and error output.
	LevelNormal
	// LevelVerbose enables all output including debug.
	LevelVerbose
)

// String returns the level name used in config files.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelNormal:
		return "normal"
	case LevelVerbose:
		return "verbose"
	default:
		return "unknown"
	}
}

// ParseLevel maps a config string to a Level. Unknown names fall back
// to LevelNormal.
func ParseLevel(s string) Level {
	switch s {
	case "off", "quiet":
		return LevelOff
	case "verbose", "debug":
		return LevelVerbose
	default:
		return LevelNormal
	}
}

// Logger is a leveled logger. All methods are safe for concurrent use.
type Logger struct {
	atom  zap.AtomicLevel
	sugar *zap.SugaredLogger
}

// New creates a logger with the given level, writing to the given output.
// If out is nil, os.Stderr is used.
func New(level Level, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	atom := zap.NewAtomicLevelAt(toZap(level))
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(out), atom)

	return &Logger{
		atom:  atom,
		sugar: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar(),
	}
}

// toZap converts a Level to the lowest zap level that should be emitted.
func toZap(level Level) zapcore.Level {
	switch level {
	case LevelVerbose:
		return zapcore.DebugLevel
	case LevelNormal:
		return zapcore.InfoLevel
	default:
		// Above fatal: nothing gets through.
		return zapcore.FatalLevel + 1
	}
}

// SetLevel changes the log level at runtime.
func (l *Logger) SetLevel(level Level) {
	l.atom.SetLevel(toZap(level))
}

// GetLevel returns the current log level.
func (l *Logger) GetLevel() Level {
	switch l.atom.Level() {
	case zapcore.DebugLevel:
		return LevelVerbose
	case zapcore.InfoLevel:
		return LevelNormal
	default:
		return LevelOff
	}
}

// Debug logs a message at debug level (only visible in verbose mode).
func (l *Logger) Debug(format string, args ...any) {
	l.sugar.Debugf(format, args...)
}

// Info logs a message at info level.
func (l *Logger) Info(format string, args ...any) {
	l.sugar.Infof(format, args...)
}

// Warn logs a message at warn level.
func (l *Logger) Warn(format string, args ...any) {
	l.sugar.Warnf(format, args...)
}

// Error logs a message at error level.
func (l *Logger) Error(format string, args ...any) {
	l.sugar.Errorf(format, args...)
}

// With returns a child logger that prefixes every message with the
// given component name.
func (l *Logger) With(component string) *Logger {
	return &Logger{
		atom:  l.atom,
		sugar: l.sugar.Named(component),
	}
}

// Sync flushes buffered output. Errors from syncing terminals are ignored.
func (l *Logger) Sync() {
	_ = l.sugar.Sync()
}
