// Package core defines the severity levels and the field bag shared by
// every other package in zlog.
//
// Levels form a closed set. ParseLevel is strict: a string outside the
// set is reported as unknown rather than silently mapped to a default,
// so callers decide how to handle a bad level name. The dispatch layer
// in package logger turns an unknown level into a self-reported error
// record instead of forwarding an unchecked name to the engine.
//
// Fields is a plain map alias. Log call data arrives as open key/value
// pairs, so there is nothing to gain from a typed field struct here;
// the underlying engine does its own encoding.
package core
