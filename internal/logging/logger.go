package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// 処理結果ごとに outcome を付けて出すラッパー
type Logger struct {
	z *zap.Logger
}

// prodはJSON、それ以外はコンソール
func New(env string, level string) (*Logger, error) {
	var zc zap.Config
	if env == "prod" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)

	z, err := zc.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{z: z}, nil
}

func Wrap(z *zap.Logger) *Logger {
	return &Logger{z: z}
}

// テスト用
func NewNop() *Logger {
	return &Logger{z: zap.NewNop()}
}

func (l *Logger) Zap() *zap.Logger {
	return l.z
}

func (l *Logger) Success(msg string, fields ...zap.Field) {
	l.z.Info(msg, append(fields, zap.String("outcome", "pass"))...)
}

func (l *Logger) Failure(msg string, fields ...zap.Field) {
	l.z.Error(msg, append(fields, zap.String("outcome", "fail"))...)
}

func (l *Logger) Warning(msg string, fields ...zap.Field) {
	l.z.Warn(msg, append(fields, zap.String("outcome", "warn"))...)
}

func (l *Logger) General(msg string, fields ...zap.Field) {
	l.z.Info(msg, append(fields, zap.String("outcome", "info"))...)
}

func (l *Logger) Sync() error {
	return l.z.Sync()
}
