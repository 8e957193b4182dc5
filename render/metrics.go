package render

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts render cache activity. A nil *Metrics records nothing.
type Metrics struct {
	Hits     prometheus.Counter
	Misses   prometheus.Counter
	Disposed prometheus.Counter
}

// NewMetrics creates the cache counters and registers them with reg unless
// reg is nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tilemap",
			Subsystem: "render_cache",
			Name:      "hits_total",
			Help:      "Cell renders served from the cache.",
		}),
		Misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tilemap",
			Subsystem: "render_cache",
			Name:      "misses_total",
			Help:      "Cell renders that had to be recomputed.",
		}),
		Disposed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tilemap",
			Subsystem: "render_cache",
			Name:      "disposed_total",
			Help:      "Cached images released by the cache.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Hits, m.Misses, m.Disposed)
	}
	return m
}

func (m *Metrics) hit() {
	if m != nil {
		m.Hits.Inc()
	}
}

func (m *Metrics) miss() {
	if m != nil {
		m.Misses.Inc()
	}
}

func (m *Metrics) disposed() {
	if m != nil {
		m.Disposed.Inc()
	}
}
