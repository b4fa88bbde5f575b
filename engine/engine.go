package engine

import (
	"io"

	"github.com/philipp01105/zlog/core"
)

// Options configures a new base logger.
type Options struct {
	// Name is the logger identity, stamped on every record
	Name string
	// Level is the minimum level that will be emitted
	Level core.Level
}

// Engine creates base logger handles.
type Engine interface {
	// New creates a named base logger writing to w
	New(opts Options, w io.Writer) Handle
}

// Handle is one logger instance of the underlying engine.
type Handle interface {
	// Child returns a new handle that inherits this handle's fields
	// plus the given ones. The receiver is not modified.
	Child(fields core.Fields) Handle

	// Emit writes one record at the given level. Records below the
	// handle's minimum level are dropped by the engine.
	Emit(level core.Level, data core.Fields, msg string)
}

// LevelSetter is an optional interface for handles whose minimum
// level can be changed after construction. Changing the level affects
// the whole handle tree (parent and children share one level).
type LevelSetter interface {
	SetLevel(level core.Level)
}
