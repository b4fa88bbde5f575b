// Package pretty renders structured JSON log records as human-readable
// text.
//
// A Stream sits between the log engine and the real output: the engine
// writes raw JSON records into the Stream, and the Stream writes
// rendered lines to whatever writer was attached with Pipe. Records
// that do not parse as JSON pass through untouched, so output from a
// misconfigured or foreign writer is never lost.
//
// Rendering uses a pooled bytes.Buffer. Buffers larger than 64 KiB are
// not returned to the pool to prevent a single large record from
// permanently inflating memory usage.
package pretty
