// Package logger builds the structured logger used by the CLI.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	// FieldLogin is the structured log field key for the analyzed account.
	FieldLogin = "login"
	// FieldStage is the structured log field key for a fetch stage.
	FieldStage = "stage"
)

// New builds a zap logger writing to stderr so that stdout stays free for
// report output. json selects JSON encoding; debug lowers the level.
func New(json bool, debug bool) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	encoding := "console"

	if json {
		encoding = "json"
	}

	if debug {
		level = zapcore.DebugLevel
	}

	cfg := zap.Config{
		Encoding:         encoding,
		Level:            zap.NewAtomicLevelAt(level),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey: "msg",

			LevelKey:    "level",
			EncodeLevel: zapcore.LowercaseLevelEncoder,

			TimeKey:    "time",
			EncodeTime: zapcore.RFC3339TimeEncoder,

			CallerKey:    "caller",
			EncodeCaller: zapcore.ShortCallerEncoder,
		},
	}
	return cfg.Build()
}

// WithLogin attaches the analyzed account to the logger. A nil logger
// becomes a no-op logger.
func WithLogin(logger *zap.Logger, login string) *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	if login == "" {
		return logger
	}
	return logger.With(zap.String(FieldLogin, login))
}

// Progress returns a callback that logs fetch stages at info level.
func Progress(logger *zap.Logger) func(stage string, percent int) {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(stage string, percent int) {
		logger.Info("fetch progress", zap.String(FieldStage, stage), zap.Int("percent", percent))
	}
}
