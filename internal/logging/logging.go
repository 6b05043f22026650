package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap's sugared logger with the levels used across the app
type Logger struct {
	*zap.SugaredLogger
}

// creates a console logger, verbose enables debug level
func NewLogger(verbose bool) *Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		cfg.DisableStacktrace = true
	}

	base, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		// zap's development config cannot fail to build with these
		// settings, but fall back to a no-op logger rather than panic
		base = zap.NewNop()
	}

	return &Logger{SugaredLogger: base.Sugar()}
}

// NewNop returns a logger that discards everything, for tests
func NewNop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func (l *Logger) Sync() {
	_ = l.SugaredLogger.Sync()
}
