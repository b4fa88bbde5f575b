package logger

import (
	"errors"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/philipp01105/zlog/core"
)

// Emit counter, installed by Init when Config.Metrics is set. Nil
// when metrics are off; countRecord is then a no-op.
var (
	recordsMu sync.RWMutex
	records   *prometheus.CounterVec
)

func registerMetrics(reg prometheus.Registerer) error {
	c := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "zlog_records_total",
		Help: "Total log records emitted, by level.",
	}, []string{"level"})

	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if !errors.As(err, &are) {
			return err
		}
		// Re-Init against the same registry reuses the collector
		c = are.ExistingCollector.(*prometheus.CounterVec)
	}

	recordsMu.Lock()
	records = c
	recordsMu.Unlock()
	return nil
}

func clearMetrics() {
	recordsMu.Lock()
	records = nil
	recordsMu.Unlock()
}

// countRecord counts one emitted record. Self-reported misuse records
// are counted at error level like any other emit.
func countRecord(level core.Level) {
	recordsMu.RLock()
	c := records
	recordsMu.RUnlock()
	if c != nil {
		c.WithLabelValues(strings.ToLower(level.String())).Inc()
	}
}
