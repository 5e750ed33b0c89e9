// Package logger wraps zap behind the small logging surface the rest of
// the program uses.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"shelfbox/internal/ports"
)

// Logger is the zap-backed implementation of ports.Logger.
type Logger struct {
	sugared *zap.SugaredLogger
}

var _ ports.Logger = (*Logger)(nil)

// New builds a logger at the given level. pretty selects the colored dev
// encoder; otherwise output is production JSON.
func New(level string, pretty bool) *Logger {
	var cfg zap.Config
	if pretty {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
	}

	if lvl, err := zapcore.ParseLevel(level); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	base, err := cfg.Build(
		zap.AddStacktrace(zapcore.FatalLevel),
	)
	if err != nil {
		panic(err)
	}

	return &Logger{sugared: base.Sugar()}
}

// Nop returns a logger that discards everything, for tests.
func Nop() *Logger {
	return &Logger{sugared: zap.NewNop().Sugar()}
}

func (l *Logger) Info(msg string, args ...any) {
	l.sugared.Infow(msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.sugared.Warnw(msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.sugared.Errorw(msg, args...)
}

// Sync flushes buffered log entries.
func (l *Logger) Sync() error {
	return l.sugared.Sync()
}
