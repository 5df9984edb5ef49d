// Package logging builds the zap loggers used by the command line and the
// batch runner. The calculation packages do not log.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a logger at levelStr ("debug", "info", "warn" or "error").
// The "json" format selects the production encoder, anything else the
// human readable console encoder.
func New(levelStr, format string) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	switch levelStr {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	}

	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	// worksheets go to stdout, logs stay on stderr
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}

// Calculation returns the fields every calculation log line carries.
func Calculation(id, member, section string) []zap.Field {
	return []zap.Field{
		zap.String("calc_id", id),
		zap.String("member", member),
		zap.String("section", section),
	}
}
