package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	IsDevelopment bool
	Level         string
	Encoding      string
}

// New builds a zap logger. Development uses the console encoder at debug level,
// otherwise JSON at info. Level and Encoding override the defaults when set.
func New(cfg Config) *zap.Logger {
	zcfg := zap.NewProductionConfig()
	if cfg.IsDevelopment {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	zcfg.EncoderConfig.TimeKey = "ts"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if cfg.Encoding != "" {
		zcfg.Encoding = cfg.Encoding
	}
	if cfg.Level != "" {
		if lvl, err := zapcore.ParseLevel(cfg.Level); err == nil {
			zcfg.Level = zap.NewAtomicLevelAt(lvl)
		}
	}

	log, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}
