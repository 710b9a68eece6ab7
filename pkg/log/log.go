package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Init builds a Logger from the given config. It never fails: invalid values
// fall back to a debug console logger so the service can always log.
func Init(cfg ZapConfig) Logger {
	level := zapcore.DebugLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.DebugLevel
	}

	var zapCfg zap.Config
	if cfg.Mode == "production" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if cfg.Encoding != "" {
		zapCfg.Encoding = cfg.Encoding
	}
	if cfg.ColorEnabled && zapCfg.Encoding == "console" {
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := zapCfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		logger = zap.NewNop()
	}

	return &zapImpl{sugar: logger.Sugar()}
}

func (l *zapImpl) Debug(ctx context.Context, args ...any) { l.sugar.Debug(args...) }
func (l *zapImpl) Debugf(ctx context.Context, format string, args ...any) {
	l.sugar.Debugf(format, args...)
}
func (l *zapImpl) Info(ctx context.Context, args ...any) { l.sugar.Info(args...) }
func (l *zapImpl) Infof(ctx context.Context, format string, args ...any) {
	l.sugar.Infof(format, args...)
}
func (l *zapImpl) Warn(ctx context.Context, args ...any) { l.sugar.Warn(args...) }
func (l *zapImpl) Warnf(ctx context.Context, format string, args ...any) {
	l.sugar.Warnf(format, args...)
}
func (l *zapImpl) Error(ctx context.Context, args ...any) { l.sugar.Error(args...) }
func (l *zapImpl) Errorf(ctx context.Context, format string, args ...any) {
	l.sugar.Errorf(format, args...)
}
func (l *zapImpl) Fatal(ctx context.Context, args ...any) { l.sugar.Fatal(args...) }
func (l *zapImpl) Fatalf(ctx context.Context, format string, args ...any) {
	l.sugar.Fatalf(format, args...)
}
