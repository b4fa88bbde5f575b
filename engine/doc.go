// Package engine is the seam between zlog and the underlying
// structured-log engine.
//
// The façade in package logger only ever talks to the Engine and
// Handle interfaces: create a named logger writing to a sink, fork a
// child with extra fields, emit one record at a level. Everything
// else the engine does (encoding, buffering, flushing) is opaque
// here.
//
// The production implementation is go.uber.org/zap, returned by Zap().
// Tests replace the engine wholesale through logger.SetEngine with a
// recording fake; nothing in this package needs to be stubbed.
//
// A Handle is immutable: Child never modifies its parent, it returns
// a new handle. The one deliberate exception is the minimum level,
// which is shared across a handle tree via LevelSetter so a running
// process can be switched to debug without rebuilding its loggers.
package engine
