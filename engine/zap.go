package engine

import (
	"io"
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/philipp01105/zlog/core"
)

// Zap returns the production engine backed by go.uber.org/zap.
func Zap() Engine {
	return zapEngine{}
}

type zapEngine struct{}

func (zapEngine) New(opts Options, w io.Writer) Handle {
	lvl := zap.NewAtomicLevelAt(zapLevel(opts.Level))
	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
	})
	l := zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), lvl)).Named(opts.Name)
	return &zapHandle{l: l, lvl: lvl}
}

type zapHandle struct {
	l   *zap.Logger
	lvl zap.AtomicLevel
}

func (h *zapHandle) Child(fields core.Fields) Handle {
	return &zapHandle{l: h.l.With(zapFields(fields)...), lvl: h.lvl}
}

func (h *zapHandle) Emit(level core.Level, data core.Fields, msg string) {
	if ce := h.l.Check(zapLevel(level), msg); ce != nil {
		ce.Write(zapFields(data)...)
	}
}

// SetLevel implements LevelSetter. The atomic level is shared with
// every child forked from this handle.
func (h *zapHandle) SetLevel(level core.Level) {
	h.lvl.SetLevel(zapLevel(level))
}

// Unwrap exposes the native zap logger for callers that need the full
// zap API. Obtained by type-asserting the handle returned from
// logger.GetLogger.
func (h *zapHandle) Unwrap() *zap.Logger {
	return h.l
}

// zapFields converts a field map to zap fields in key order, so the
// encoded record is deterministic.
func zapFields(fields core.Fields) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	zf := make([]zap.Field, 0, len(keys))
	for _, k := range keys {
		zf = append(zf, zap.Any(k, fields[k]))
	}
	return zf
}

func zapLevel(l core.Level) zapcore.Level {
	switch l {
	case core.DebugLevel:
		return zapcore.DebugLevel
	case core.InfoLevel:
		return zapcore.InfoLevel
	case core.WarnLevel:
		return zapcore.WarnLevel
	case core.ErrorLevel:
		return zapcore.ErrorLevel
	case core.FatalLevel:
		return zapcore.FatalLevel
	case core.PanicLevel:
		return zapcore.PanicLevel
	default:
		return zapcore.InfoLevel
	}
}
