package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"slot_machine/internal/config"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// New - JSON-логгер в stdout и, если задан LOG_FILE, в файл с ротацией
func New(cfg config.LogConfig) (*zap.Logger, error) {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.MessageKey = "msg"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder

	level := zap.NewAtomicLevelAt(ParseLevel(cfg.Level()))
	enc := zapcore.NewJSONEncoder(encoderConfig)
	cores := []zapcore.Core{
		zapcore.NewCore(enc, zapcore.Lock(os.Stdout), level),
	}

	if file := strings.TrimSpace(cfg.File()); file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		lw := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    cfg.MaxSizeMB(),
			MaxBackups: cfg.MaxBackups(),
			MaxAge:     cfg.MaxAgeDays(),
			Compress:   cfg.Compress(),
		}
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(lw), level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

// ParseLevel - debug|info|warn|error, все остальное - info
func ParseLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
