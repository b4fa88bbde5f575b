package pretty

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"
)

// Config holds pretty stream configuration
type Config struct {
	// NoColor disables ANSI color codes on the level label
	NoColor bool
}

// Stream is an io.Writer that decodes JSON log records and writes
// rendered text to its downstream writer.
type Stream struct {
	Config
	out io.Writer
}

// New creates a new pretty stream writing to stdout until Pipe is
// called.
func New(cfg Config) *Stream {
	return &Stream{Config: cfg, out: os.Stdout}
}

// Pipe attaches the downstream writer and returns the stream.
func (s *Stream) Pipe(w io.Writer) *Stream {
	s.out = w
	return s
}

// pre-formatted level strings to avoid multiple WriteString calls
var levelBrackets = map[string]string{
	"debug": " [DEBUG] ",
	"info":  " [INFO] ",
	"warn":  " [WARN] ",
	"error": " [ERROR] ",
	"fatal": " [FATAL] ",
	"panic": " [PANIC] ",
}

var levelColors = map[string]string{
	"debug": "\x1b[36m",
	"info":  "\x1b[32m",
	"warn":  "\x1b[33m",
	"error": "\x1b[31m",
	"fatal": "\x1b[35m",
	"panic": "\x1b[35m",
}

const colorReset = "\x1b[0m"

// record keys rendered positionally rather than as key=value pairs
var reservedKeys = map[string]bool{
	"time":    true,
	"level":   true,
	"logger":  true,
	"message": true,
}

// Write renders each newline-terminated JSON record in p and writes
// the result downstream. It always reports the full input length as
// consumed so the engine never sees a short write.
func (s *Stream) Write(p []byte) (int, error) {
	buf := getBuffer()

	for _, line := range bytes.Split(p, []byte{'\n'}) {
		if len(line) == 0 {
			continue
		}
		s.renderToBuffer(line, buf)
	}

	_, err := s.out.Write(buf.Bytes())
	putBuffer(buf)
	if err != nil {
		return 0, err
	}
	return len(p), nil
}

// renderToBuffer writes one rendered record into the given buffer
func (s *Stream) renderToBuffer(line []byte, buf *bytes.Buffer) {
	var rec map[string]any
	if err := json.Unmarshal(line, &rec); err != nil {
		// Not a structured record; pass through verbatim
		buf.Write(line)
		buf.WriteByte('\n')
		return
	}

	if ts, ok := rec["time"].(string); ok {
		buf.WriteString(ts)
	}

	level, _ := rec["level"].(string)
	bracket, ok := levelBrackets[strings.ToLower(level)]
	if !ok {
		bracket = " [UNKNOWN] "
	}
	if color, colored := levelColors[strings.ToLower(level)]; colored && !s.NoColor {
		buf.WriteString(color)
		buf.WriteString(bracket)
		buf.WriteString(colorReset)
	} else {
		buf.WriteString(bracket)
	}

	if name, ok := rec["logger"].(string); ok && name != "" {
		buf.WriteString(name)
		buf.WriteString(": ")
	}

	if msg, ok := rec["message"].(string); ok {
		buf.WriteString(msg)
	}

	// Remaining fields in key order
	keys := make([]string, 0, len(rec))
	for k := range rec {
		if !reservedKeys[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		buf.WriteByte(' ')
		buf.WriteString(k)
		buf.WriteByte('=')
		fmt.Fprintf(buf, "%v", rec[k])
	}

	buf.WriteByte('\n')
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
