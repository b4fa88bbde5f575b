package logger

import (
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// WatchLevel watches a file containing a level name and applies it to
// the process-wide logger whenever the file changes. The file's
// current content is applied immediately. Unreadable files and
// unknown level names are skipped, so a half-written file never
// disturbs the running level.
//
// The returned stop function ends the watch and may be called once.
func WatchLevel(path string) (stop func() error, err error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(path); err != nil {
		w.Close()
		return nil, err
	}

	applyLevelFile(path)

	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					applyLevelFile(path)
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return w.Close, nil
}

func applyLevelFile(path string) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return
	}
	name := strings.TrimSpace(string(raw))
	if name == "" {
		return
	}
	// Unknown names and an uninitialized logger are skipped
	_ = SetLevel(name)
}
