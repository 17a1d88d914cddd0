// Package logger provides the structured logger behind entity.Logger.
//
// Entries are JSON lines written by zap through a logr front end so that
// packages can also carry a logr.Logger on the context.
package logger

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	TimeStampKey = "timestamp"
	MessageKey   = "message"
	ErrorKey     = "error"

	// DebugLevel and InfoLevel are zap levels as accepted by New.
	DebugLevel int8 = int8(zapcore.DebugLevel)
	InfoLevel  int8 = int8(zapcore.InfoLevel)
)

type loggerContextKey struct{}

// Logger implements entity.Logger on top of logr and zap.
type Logger struct {
	lgr logr.Logger
	zl  *zap.Logger
}

// New creates a logger writing JSON lines to w at the given zap level.
func New(w io.Writer, logLevel int8) *Logger {

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.TimeKey = TimeStampKey
	encoderCfg.MessageKey = MessageKey

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(zapcore.Level(logLevel)),
	)
	zl := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))

	return &Logger{
		lgr: zapr.NewLogger(zl),
		zl:  zl,
	}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{
		lgr: logr.Discard(),
		zl:  zap.NewNop(),
	}
}

// Debug logs at verbosity 1.
func (l *Logger) Debug(ctx context.Context, msg string, kv ...any) {
	l.from(ctx).V(1).Info(msg, kv...)
}

// Info logs an informational message.
func (l *Logger) Info(ctx context.Context, msg string, kv ...any) {
	l.from(ctx).Info(msg, kv...)
}

// Error logs an error.
func (l *Logger) Error(ctx context.Context, msg string, err error, kv ...any) {
	l.from(ctx).Error(err, msg, kv...)
}

// Sync flushes buffered entries.
func (l *Logger) Sync() {
	err := l.zl.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to sync logger: %v\n", err)
	}
}

// WithLogger returns a context carrying lgr, whose values are added to
// entries logged with that context.
func WithLogger(ctx context.Context, lgr logr.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, lgr)
}

// WithValues returns a context whose entries carry the given key/values.
func (l *Logger) WithValues(ctx context.Context, kv ...any) context.Context {
	return WithLogger(ctx, l.from(ctx).WithValues(kv...))
}

// unexported

func (l *Logger) from(ctx context.Context) logr.Logger {
	if ctx != nil {
		if lgr, ok := ctx.Value(loggerContextKey{}).(logr.Logger); ok {
			return lgr
		}
	}
	return l.lgr
}
