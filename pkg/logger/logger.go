package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// global is usable before Init with production defaults.
var global = zap.Must(zap.NewProduction()).Sugar()

func Init(cfg *Config) error {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return err
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	l, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}

	global = l.Sugar()

	return nil
}

func Debug(msg string, keyValues ...any) {
	global.Debugw(msg, keyValues...)
}

func Info(msg string, keyValues ...any) {
	global.Infow(msg, keyValues...)
}

func Warn(msg string, keyValues ...any) {
	global.Warnw(msg, keyValues...)
}

func Error(msg string, keyValues ...any) {
	global.Errorw(msg, keyValues...)
}
