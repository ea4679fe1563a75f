// Package logging builds the zap logger used by task-cli.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the logger level and encoding.
type Config struct {
	Level    string
	Encoding string
}

// New builds a logger writing to stderr.
func New(cfg Config) *zap.Logger {
	return NewWithWriter(cfg, os.Stderr)
}

// NewWithWriter builds a logger writing to w. An unknown level falls back to
// warn; an unknown encoding falls back to console.
func NewWithWriter(cfg Config, w io.Writer) *zap.Logger {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	switch cfg.Encoding {
	case "json":
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	default:
		encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	core := zapcore.NewCore(
		encoder,
		zapcore.AddSync(zapcore.Lock(zapcore.AddSync(w))),
		ParseLevel(cfg.Level),
	)
	return zap.New(core)
}

// ParseLevel converts a level name, defaulting to warn.
func ParseLevel(name string) zapcore.Level {
	level := zapcore.WarnLevel
	if name == "" {
		return level
	}
	if err := level.Set(name); err != nil {
		return zapcore.WarnLevel
	}
	return level
}
