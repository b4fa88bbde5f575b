package logger

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/philipp01105/zlog/core"
	"github.com/philipp01105/zlog/engine"
)

// Log wraps an engine handle in a dispatch function. Accepted call
// shapes:
//
//	f("info", "message")
//	f("info", "message", Fields{"k": "v"})
//	f(err)                 // logged at error level
//
// A call with a missing level or message, or an unknown level name,
// emits a single error-level record describing the misuse instead of
// the intended record. The dispatch function never panics over its
// arguments and never reports an error to the caller.
func Log(h engine.Handle) LogFunc {
	return func(args ...any) {
		level, msg, data := normalize(args)

		if level == "" || msg == nil || msg == "" {
			countRecord(core.ErrorLevel)
			h.Emit(core.ErrorLevel, nil, errors.New("level or msg arguments required").Error())
			return
		}

		lvl, ok := core.ParseLevel(level)
		if !ok {
			countRecord(core.ErrorLevel)
			h.Emit(core.ErrorLevel, nil, fmt.Sprintf("unknown log level %q", level))
			return
		}

		// Fresh map per record; the caller's map is never modified
		out := core.CloneFields(data, 1)
		out["_label"] = strings.ToUpper(level)

		if os.Getenv(EnvHeap) == "1" && heapSnapshot != nil {
			for k, v := range heapSnapshot() {
				out[k] = v
			}
		}

		countRecord(lvl)
		h.Emit(lvl, out, messageText(msg))
	}
}

// normalize maps the accepted call shapes onto (level, message, data).
// A leading error value means "log this at error level".
func normalize(args []any) (level string, msg any, data Fields) {
	if len(args) == 0 {
		return "", nil, nil
	}

	if err, ok := args[0].(error); ok {
		level, msg = "error", err
	} else {
		level, _ = args[0].(string)
		if len(args) > 1 {
			msg = args[1]
		}
	}

	if len(args) > 2 {
		data, _ = args[2].(Fields)
	}
	return level, msg, data
}

func messageText(msg any) string {
	switch m := msg.(type) {
	case string:
		return m
	case error:
		return m.Error()
	default:
		return fmt.Sprint(m)
	}
}
