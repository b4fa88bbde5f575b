package engine

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/philipp01105/zlog/core"
)

func newTestHandle(t *testing.T, level core.Level, buf *bytes.Buffer) Handle {
	t.Helper()
	return Zap().New(Options{Name: "test", Level: level}, buf)
}

// decodeRecord parses the single JSON record in buf.
func decodeRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("Output is not valid JSON: %v\n%s", err, buf.String())
	}
	return rec
}

func TestZap_EmitWritesJSONRecord(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandle(t, core.InfoLevel, &buf)

	h.Emit(core.InfoLevel, core.Fields{"user": "alice", "attempt": 3}, "login ok")

	rec := decodeRecord(t, &buf)
	if rec["message"] != "login ok" {
		t.Errorf("Expected message 'login ok', got %v", rec["message"])
	}
	if rec["level"] != "info" {
		t.Errorf("Expected level 'info', got %v", rec["level"])
	}
	if rec["logger"] != "test" {
		t.Errorf("Expected logger 'test', got %v", rec["logger"])
	}
	if rec["user"] != "alice" {
		t.Errorf("Expected user field, got %v", rec["user"])
	}
	if rec["attempt"] != float64(3) {
		t.Errorf("Expected attempt field, got %v", rec["attempt"])
	}
	if _, ok := rec["time"]; !ok {
		t.Error("Expected a time field in the record")
	}
}

func TestZap_LevelGate(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandle(t, core.InfoLevel, &buf)

	h.Emit(core.DebugLevel, nil, "debug message")
	if buf.Len() > 0 {
		t.Errorf("Debug record emitted at info level: %s", buf.String())
	}

	h.Emit(core.WarnLevel, nil, "warn message")
	if !strings.Contains(buf.String(), "warn message") {
		t.Errorf("Expected warn record, got: %s", buf.String())
	}
}

func TestZap_ChildInheritsFields(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandle(t, core.InfoLevel, &buf)

	child := h.Child(core.Fields{"service": "auth"})
	child.Emit(core.InfoLevel, core.Fields{"request_id": "123"}, "handled")

	rec := decodeRecord(t, &buf)
	if rec["service"] != "auth" {
		t.Errorf("Child record missing forked field: %v", rec)
	}
	if rec["request_id"] != "123" {
		t.Errorf("Child record missing call field: %v", rec)
	}
}

func TestZap_ChildDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandle(t, core.InfoLevel, &buf)

	_ = h.Child(core.Fields{"child": "value"})
	h.Emit(core.InfoLevel, nil, "parent message")

	if strings.Contains(buf.String(), "child") {
		t.Errorf("Parent record carries child field: %s", buf.String())
	}
}

func TestZap_SetLevelAppliesToChildren(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandle(t, core.InfoLevel, &buf)
	child := h.Child(core.Fields{"k": "v"})

	child.Emit(core.DebugLevel, nil, "before")
	if buf.Len() > 0 {
		t.Fatalf("Debug record emitted before SetLevel: %s", buf.String())
	}

	h.(LevelSetter).SetLevel(core.DebugLevel)
	child.Emit(core.DebugLevel, nil, "after")
	if !strings.Contains(buf.String(), "after") {
		t.Errorf("Debug record not emitted after SetLevel: %s", buf.String())
	}
}

func TestZap_Unwrap(t *testing.T) {
	var buf bytes.Buffer
	h := newTestHandle(t, core.InfoLevel, &buf)

	native, ok := h.(interface{ Unwrap() *zap.Logger })
	if !ok {
		t.Fatal("zap handle does not expose Unwrap")
	}
	if native.Unwrap() == nil {
		t.Fatal("Unwrap returned nil")
	}
}
