package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/yaml.v3"

	"github.com/philipp01105/zlog/core"
)

// Environment variables consulted by Init and the dispatch function.
const (
	// EnvLevel names the minimum emit level (default "info")
	EnvLevel = "LOG_LEVEL"
	// EnvPretty enables pretty output when present and not "false"
	EnvPretty = "LOG_PRETTY"
	// EnvHeap enables heap enrichment when exactly "1"
	EnvHeap = "LOG_HEAP"
)

// Config is the input to Init.
type Config struct {
	// Name is the logger identity stamped on every record. Required.
	Name string

	// Pretty forces pretty output on or off. When nil, EnvPretty
	// decides.
	Pretty *bool

	// Output is the destination sink. Defaults to os.Stdout.
	Output io.Writer

	// OutputPath opens a file sink (append, created with parent
	// directories) when Output is nil.
	OutputPath string

	// Meta fields are baked into every record emitted through the
	// returned dispatch function.
	Meta Fields

	// Metrics, when non-nil, registers a per-level counter of
	// emitted records.
	Metrics prometheus.Registerer
}

// LoadConfig reads a Config from a YAML file. The output field, when
// set, becomes OutputPath; an output stream cannot be expressed in a
// file.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var fc struct {
		Name   string         `yaml:"name"`
		Pretty *bool          `yaml:"pretty"`
		Output string         `yaml:"output"`
		Meta   map[string]any `yaml:"meta"`
	}
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	return Config{
		Name:       fc.Name,
		Pretty:     fc.Pretty,
		OutputPath: fc.Output,
		Meta:       fc.Meta,
	}, nil
}

// prettyEnabled resolves pretty mode: explicit flag first, then the
// environment toggle. The toggle counts as on when present with any
// value other than the literal string "false".
func prettyEnabled(flag *bool) bool {
	if flag != nil {
		return *flag
	}
	v, ok := os.LookupEnv(EnvPretty)
	if !ok {
		return false
	}
	return v != "false"
}

// levelFromEnv reads the minimum emit level. Unset or unknown names
// fall back to info.
func levelFromEnv() core.Level {
	if v := os.Getenv(EnvLevel); v != "" {
		if lvl, ok := core.ParseLevel(v); ok {
			return lvl
		}
	}
	return core.InfoLevel
}

// openOutputFile opens an append-mode log file, creating parent
// directories as needed.
func openOutputFile(path string) (io.Writer, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
