// Package logging provides structured logging for tagfield hosts.
//
// Logging is silent unless a level is given explicitly or through the
// TAGFIELD_LOG_LEVEL environment variable:
//
//	if err := logging.Initialize("debug", "tagfield.log"); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar controls verbosity when no level is passed to Initialize.
// Valid values: "debug", "info", "warn", "error".
const LogLevelEnvVar = "TAGFIELD_LOG_LEVEL"

// Initialize builds the global logger. An empty level falls back to
// TAGFIELD_LOG_LEVEL; when that is unset too, logging stays silent.
// An empty output means stderr. Terminal hosts should pass a file path so log
// lines do not land on top of the UI.
func Initialize(level, output string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	if output == "" {
		output = "stderr"
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = built
	return nil
}

// SetLogger replaces the global logger, mainly for tests.
func SetLogger(l *zap.Logger) {
	logger = l
}

// GetLogger returns the global logger, or a no-op logger before Initialize.
func GetLogger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// Sync flushes buffered log entries.
func Sync() error {
	return GetLogger().Sync()
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogTransition logs one reducer step to l (the global logger when nil): the
// event name and the collection before and after, rendered compactly.
func LogTransition(l *zap.Logger, event string, before, after fmt.Stringer) {
	orGlobal(l).Debug("tag transition",
		zap.String("event", event),
		zap.Stringer("before", before),
		zap.Stringer("after", after),
	)
}

// LogFocus logs a focus hand-off between chips.
func LogFocus(l *zap.Logger, from, to string) {
	orGlobal(l).Debug("focus change",
		zap.String("from", from),
		zap.String("to", to),
	)
}

// LogLayout logs the outcome of a layout pass.
func LogLayout(l *zap.Logger, width float32, items, rows int, height float32) {
	orGlobal(l).Debug("layout",
		zap.Float32("width", width),
		zap.Int("items", items),
		zap.Int("rows", rows),
		zap.Float32("height", height),
	)
}

func orGlobal(l *zap.Logger) *zap.Logger {
	if l == nil {
		return GetLogger()
	}
	return l
}
