// Package logger writes the service's stdout event stream: one line per
// event in the form "[<ISO-8601 UTC timestamp>] <message>".
package logger

import (
	"io"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger struct {
	z *zap.SugaredLogger
}

func newEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "T",
		LevelKey:         zapcore.OmitKey,
		NameKey:          zapcore.OmitKey,
		CallerKey:        zapcore.OmitKey,
		MessageKey:       "M",
		StacktraceKey:    zapcore.OmitKey,
		LineEnding:       zapcore.DefaultLineEnding,
		ConsoleSeparator: " ",
		EncodeTime:       bracketTimeEncoder,
	}
}

// bracketTimeEncoder renders "[2006-01-02T15:04:05.000000Z]". The trailing
// Z is literal; the timestamp is always converted to UTC first.
func bracketTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString("[" + t.UTC().Format("2006-01-02T15:04:05.000000") + "Z]")
}

// New returns a Logger emitting to w. The underlying syncer is locked, so
// concurrent events never interleave within a line.
func New(w io.Writer) *Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(newEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		zapcore.InfoLevel,
	)
	return &Logger{z: zap.New(core).Sugar()}
}

func (l *Logger) Infof(template string, args ...any) {
	l.z.Infof(template, args...)
}

func (l *Logger) Errorf(template string, args ...any) {
	l.z.Errorf(template, args...)
}

// Fatalf logs the event and exits the process with a non-zero status.
func (l *Logger) Fatalf(template string, args ...any) {
	l.z.Fatalf(template, args...)
}

func (l *Logger) Sync() error {
	return l.z.Sync()
}
