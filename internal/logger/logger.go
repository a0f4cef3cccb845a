// internal/logger/logger.go
package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds the process logger: console output for humans plus an
// optional JSON file sink for later inspection. Debug switches to the
// development config with debug-level output.
func New(debug bool, logFile string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if debug {
		config = zap.NewDevelopmentConfig()
	}

	consoleEncoder := zapcore.NewConsoleEncoder(config.EncoderConfig)
	consoleCore := zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stderr), config.Level)

	if logFile == "" {
		return zap.New(consoleCore), nil
	}

	fileHandle, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("logger: open %q: %w", logFile, err)
	}

	fileEncoder := zapcore.NewJSONEncoder(config.EncoderConfig)
	core := zapcore.NewTee(
		consoleCore,
		zapcore.NewCore(fileEncoder, zapcore.AddSync(fileHandle), config.Level),
	)

	return zap.New(core), nil
}
