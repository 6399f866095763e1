/* pkg/logger/logger.go */

package logger

import (
	"os"
	"sync"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log  *zap.Logger
	once sync.Once
)

// InitializeWithFallback builds the global logger: a colored console core on
// stderr, plus a JSON file core when a writable log path exists. Safe to call
// more than once.
func InitializeWithFallback() {
	once.Do(initialize)
}

// InitFallback is the idempotent entry point used by the command wrapper.
func InitFallback() {
	InitializeWithFallback()
}

func initialize() {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(DefaultConsoleEncoderConfig()),
		zapcore.Lock(os.Stderr),
		ParseLogLevel(os.Getenv("LOG_LEVEL")),
	)

	cores := []zapcore.Core{consoleCore}

	if path, err := FindWritableLogPath(); err == nil {
		jsonCfg := zap.NewProductionEncoderConfig()
		jsonCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		jsonCfg.EncodeLevel = zapcore.CapitalLevelEncoder

		if writer, werr := GetLogFileWriter(path); werr == nil {
			cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(jsonCfg), writer, zap.DebugLevel))
		}
	}

	log = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	zap.ReplaceGlobals(log)
	otelzap.ReplaceGlobals(otelzap.New(log))
}

// L returns the global logger, initializing a fallback if needed.
func L() *zap.Logger {
	InitializeWithFallback()
	return log
}

// GetLogger returns the global logger instance.
func GetLogger() *zap.Logger {
	return L()
}

// DefaultConsoleEncoderConfig returns the compact console encoder used for
// terminal output.
func DefaultConsoleEncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "T"
	cfg.LevelKey = "L"
	cfg.NameKey = "N"
	cfg.CallerKey = "C"
	cfg.MessageKey = "M"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return cfg
}

// ParseLogLevel maps a LOG_LEVEL string to a zap level, defaulting to warn so
// normal CLI output stays clean.
func ParseLogLevel(s string) zapcore.Level {
	switch s {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}

// Sync flushes any buffered log entries. Called before the application exits.
func Sync() error {
	if log == nil {
		return nil
	}
	return log.Sync()
}
