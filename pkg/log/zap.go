package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// Init builds a Logger from cfg. Invalid levels fall back to info.
func Init(cfg ZapConfig) Logger {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	var zcfg zap.Config
	if cfg.Mode == ModeProduction {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	switch cfg.Encoding {
	case EncodingJSON:
		zcfg.Encoding = EncodingJSON
	default:
		zcfg.Encoding = EncodingConsole
	}

	zcfg.EncoderConfig.TimeKey = "ts"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.ColorEnabled && zcfg.Encoding == EncodingConsole {
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	logger, err := zcfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		logger = zap.NewExample()
	}

	return &zapLogger{sugar: logger.Sugar()}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	return &zapLogger{sugar: zap.NewNop().Sugar()}
}

// structured reports whether arg is a message followed by key/value pairs.
func structured(arg []any) (string, []any, bool) {
	if len(arg) < 3 || len(arg)%2 == 0 {
		return "", nil, false
	}
	msg, ok := arg[0].(string)
	if !ok {
		return "", nil, false
	}
	for i := 1; i < len(arg); i += 2 {
		if _, ok := arg[i].(string); !ok {
			return "", nil, false
		}
	}
	return msg, arg[1:], true
}

func (l *zapLogger) Debug(ctx context.Context, arg ...any) {
	if msg, kv, ok := structured(arg); ok {
		l.sugar.Debugw(msg, kv...)
		return
	}
	l.sugar.Debug(arg...)
}

func (l *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	l.sugar.Debugf(template, arg...)
}

func (l *zapLogger) Info(ctx context.Context, arg ...any) {
	if msg, kv, ok := structured(arg); ok {
		l.sugar.Infow(msg, kv...)
		return
	}
	l.sugar.Info(arg...)
}

func (l *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	l.sugar.Infof(template, arg...)
}

func (l *zapLogger) Warn(ctx context.Context, arg ...any) {
	if msg, kv, ok := structured(arg); ok {
		l.sugar.Warnw(msg, kv...)
		return
	}
	l.sugar.Warn(arg...)
}

func (l *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	l.sugar.Warnf(template, arg...)
}

func (l *zapLogger) Error(ctx context.Context, arg ...any) {
	if msg, kv, ok := structured(arg); ok {
		l.sugar.Errorw(msg, kv...)
		return
	}
	l.sugar.Error(arg...)
}

func (l *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	l.sugar.Errorf(template, arg...)
}

func (l *zapLogger) DPanic(ctx context.Context, arg ...any) {
	l.sugar.DPanic(arg...)
}

func (l *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	l.sugar.DPanicf(template, arg...)
}

func (l *zapLogger) Panic(ctx context.Context, arg ...any) {
	l.sugar.Panic(arg...)
}

func (l *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	l.sugar.Panicf(template, arg...)
}

func (l *zapLogger) Fatal(ctx context.Context, arg ...any) {
	l.sugar.Fatal(arg...)
}

func (l *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	l.sugar.Fatalf(template, arg...)
}
