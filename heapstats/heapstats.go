// Package heapstats queries runtime memory counters for log record
// enrichment.
//
// Snapshot is a pure read: it allocates nothing beyond the returned
// map and has no side effects, so the dispatch layer can call it on
// every record when heap reporting is enabled.
package heapstats

import (
	"runtime"

	"github.com/mackerelio/go-osstat/memory"
)

// Snapshot returns the current heap counters plus, where the platform
// supports it, system memory totals. Fields that cannot be read are
// omitted rather than reported as zero.
func Snapshot() map[string]any {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	fields := map[string]any{
		"heap_alloc":        ms.HeapAlloc,
		"heap_sys":          ms.HeapSys,
		"heap_idle":         ms.HeapIdle,
		"heap_inuse":        ms.HeapInuse,
		"heap_objects":      ms.HeapObjects,
		"total_alloc":       ms.TotalAlloc,
		"num_gc":            ms.NumGC,
		"gc_pause_total_ns": ms.PauseTotalNs,
		"goroutines":        runtime.NumGoroutine(),
	}

	// System memory is best-effort; not every platform exposes it
	if sys, err := memory.Get(); err == nil {
		fields["mem_total"] = sys.Total
		fields["mem_used"] = sys.Used
		fields["mem_free"] = sys.Free
	}

	return fields
}
