package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/philipp01105/zlog/core"
	"github.com/philipp01105/zlog/engine"
	"github.com/philipp01105/zlog/heapstats"
	"github.com/philipp01105/zlog/pretty"
)

// Fields is the key/value data attached to a log record.
type Fields = core.Fields

// LogFunc is a dispatch function: a closure over one engine handle
// that normalizes a log call and forwards it. See Log for the
// accepted call shapes.
type LogFunc func(args ...any)

var (
	// ErrMissingName is returned by Init when the Config has no name.
	ErrMissingName = errors.New("zlog: config with a non-empty name is required")
	// ErrEmptyMeta is returned by Meta when no fields are supplied.
	ErrEmptyMeta = errors.New("zlog: meta requires at least one field")
	// ErrNotInitialized is returned when an operation needs the
	// process-wide logger before Init has run.
	ErrNotInitialized = errors.New("zlog: logger not initialized")
)

// Process-wide logger slot. Written by Init, read by GetLogger and
// Meta. Init must run before concurrent logging begins.
var (
	defaultHandle engine.Handle
	defaultMu     sync.RWMutex
)

// Overridable seams, replaced in tests
var (
	activeEngine engine.Engine = engine.Zap()

	newPrettyStream = func(w io.Writer) io.Writer {
		return pretty.New(pretty.Config{}).Pipe(w)
	}

	heapSnapshot = heapstats.Snapshot
)

// SetEngine replaces the underlying engine for subsequently created
// loggers. Intended for tests; production code uses the zap engine
// installed by default.
func SetEngine(e engine.Engine) {
	activeEngine = e
}

// Init builds the process-wide logger from cfg and returns its
// dispatch function. The previous process-wide state, if any, is
// fully replaced.
func Init(cfg Config) (LogFunc, error) {
	if cfg.Name == "" {
		return nil, ErrMissingName
	}

	out := cfg.Output
	if out == nil && cfg.OutputPath != "" {
		var err error
		if out, err = openOutputFile(cfg.OutputPath); err != nil {
			return nil, err
		}
	}
	if out == nil {
		out = os.Stdout
	}
	if prettyEnabled(cfg.Pretty) {
		out = newPrettyStream(out)
	}

	h := activeEngine.New(engine.Options{Name: cfg.Name, Level: levelFromEnv()}, out)
	setDefault(h)

	// Static metadata is baked in by forking the fresh handle and
	// installing the child in its place.
	if len(cfg.Meta) > 0 {
		h = h.Child(cfg.Meta)
		setDefault(h)
	}

	if cfg.Metrics != nil {
		if err := registerMetrics(cfg.Metrics); err != nil {
			return nil, err
		}
	} else {
		clearMetrics()
	}

	return Log(h), nil
}

// Meta returns a dispatch function whose records always carry the
// given fields. It forks the supplied handle, or the process-wide one
// when none is given; the process-wide state is not modified.
func Meta(meta Fields, handle ...engine.Handle) (LogFunc, error) {
	if len(meta) == 0 {
		return nil, ErrEmptyMeta
	}

	var h engine.Handle
	if len(handle) > 0 && handle[0] != nil {
		h = handle[0]
	} else if h = GetLogger(); h == nil {
		return nil, ErrNotInitialized
	}

	return Log(h.Child(meta)), nil
}

// GetLogger returns the current process-wide engine handle, or nil if
// Init has not run. Advanced callers can type-assert the handle for
// the engine's native interface (the zap handle exposes
// Unwrap() *zap.Logger).
func GetLogger() engine.Handle {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultHandle
}

func setDefault(h engine.Handle) {
	defaultMu.Lock()
	defaultHandle = h
	defaultMu.Unlock()
}

// SetLevel changes the minimum emit level of the process-wide logger
// and every handle forked from it.
func SetLevel(name string) error {
	lvl, ok := core.ParseLevel(name)
	if !ok {
		return fmt.Errorf("zlog: unknown level %q", name)
	}

	h := GetLogger()
	if h == nil {
		return ErrNotInitialized
	}
	s, ok := h.(engine.LevelSetter)
	if !ok {
		return errors.New("zlog: handle does not support level changes")
	}
	s.SetLevel(lvl)
	return nil
}
