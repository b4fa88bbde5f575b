// Package logger is the public API of zlog. Most users only need to
// import this package.
//
// Init builds the process-wide logger from a Config and returns a
// dispatch function:
//
//	log, err := logger.Init(logger.Config{Name: "checkout"})
//	if err != nil {
//	    panic(err)
//	}
//	log("info", "ready", logger.Fields{"port": 8080})
//
// The dispatch function normalizes its call shapes: level plus
// message, level plus message plus data, or a bare error (logged at
// error level). A malformed call never panics and never returns an
// error; it self-reports as a single error-level record so that
// logging can never crash the code doing the logging.
//
// Meta forks a derived dispatch function whose records always carry
// extra fields:
//
//	reqLog, err := logger.Meta(logger.Fields{"request_id": id})
//	reqLog("info", "request handled")
//
// Init installs the process-wide handle read by GetLogger and by Meta
// when no explicit handle is given. Call Init once at startup, before
// any concurrent logging begins; re-initializing while other
// goroutines log races on the process-wide slot. Dispatch functions
// themselves are safe for unlimited concurrent use.
//
// Configuration comes from the Config struct plus three environment
// variables: LOG_LEVEL (minimum level, default info), LOG_PRETTY
// (human-readable output) and LOG_HEAP (per-record memory counters).
package logger
