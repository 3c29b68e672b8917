package dispatcher

import (
	"sort"
	"sync"
	"time"
)

// Metrics collects dispatch statistics.
type Metrics struct {
	mu sync.RWMutex

	handlerMetrics map[string]*HandlerMetrics

	totalDispatches uint64
	totalIgnored    uint64
	totalPanics     uint64
	totalDuration   time.Duration
}

// HandlerMetrics holds the statistics of one handler.
type HandlerMetrics struct {
	Name        string
	ClaimCount  uint64
	PanicCount  uint64
	MaxDuration time.Duration
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		handlerMetrics: make(map[string]*HandlerMetrics),
	}
}

// RecordDispatch records the outcome of one dispatch.
func (m *Metrics) RecordDispatch(res Result, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalDispatches++
	m.totalDuration += duration

	if res.Handler == "" {
		m.totalIgnored++
		return
	}

	hm := m.handlerMetrics[res.Handler]
	if hm == nil {
		hm = &HandlerMetrics{Name: res.Handler}
		m.handlerMetrics[res.Handler] = hm
	}
	if res.Panic != nil {
		m.totalPanics++
		hm.PanicCount++
		return
	}
	hm.ClaimCount++
	hm.MaxDuration = max(hm.MaxDuration, duration)
}

// TopHandlers returns the n handlers with the most claims.
func (m *Metrics) TopHandlers(n int) []*HandlerMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*HandlerMetrics, 0, len(m.handlerMetrics))
	for _, hm := range m.handlerMetrics {
		c := *hm
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ClaimCount != out[j].ClaimCount {
			return out[i].ClaimCount > out[j].ClaimCount
		}
		return out[i].Name < out[j].Name
	})
	return out[:min(max(n, 0), len(out))]
}

// MetricsSnapshot is a point-in-time view of the metrics.
type MetricsSnapshot struct {
	TotalDispatches uint64
	TotalIgnored    uint64
	TotalPanics     uint64
	AverageDuration time.Duration
	HandlerCount    int
}

// Snapshot returns a snapshot of the current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s := MetricsSnapshot{
		TotalDispatches: m.totalDispatches,
		TotalIgnored:    m.totalIgnored,
		TotalPanics:     m.totalPanics,
		HandlerCount:    len(m.handlerMetrics),
	}
	if m.totalDispatches > 0 {
		s.AverageDuration = m.totalDuration / time.Duration(m.totalDispatches)
	}
	return s
}
