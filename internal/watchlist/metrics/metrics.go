package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the watchlist module.
type Metrics struct {
	EntriesAdded       *prometheus.CounterVec
	EntriesDeactivated prometheus.Counter
	Checks             *prometheus.CounterVec
	CacheHits          prometheus.Counter
	CacheMisses        prometheus.Counter
}

// New creates a new Metrics instance with all watchlist metrics registered.
func New() *Metrics {
	return &Metrics{
		EntriesAdded: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "permitgate_watchlist_entries_added_total",
			Help: "Total watchlist entries created, by flag type and severity",
		}, []string{"flag_type", "severity"}),

		EntriesDeactivated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "permitgate_watchlist_entries_deactivated_total",
			Help: "Total watchlist entries soft-deactivated",
		}),

		Checks: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "permitgate_watchlist_checks_total",
			Help: "Total watchlist lookups by result",
		}, []string{"result"}), // result: "hit", "clean", "error"

		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "permitgate_watchlist_cache_hits_total",
			Help: "Watchlist lookups served from the Redis cache",
		}),

		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "permitgate_watchlist_cache_misses_total",
			Help: "Watchlist lookups that fell through to the store",
		}),
	}
}

// IncEntryAdded records a created entry.
func (m *Metrics) IncEntryAdded(flagType, severity string) {
	if m != nil {
		m.EntriesAdded.WithLabelValues(flagType, severity).Inc()
	}
}

// AddDeactivated records soft-deactivated entries.
func (m *Metrics) AddDeactivated(count int) {
	if m != nil {
		m.EntriesDeactivated.Add(float64(count))
	}
}

// IncCheck records a lookup result.
func (m *Metrics) IncCheck(result string) {
	if m != nil {
		m.Checks.WithLabelValues(result).Inc()
	}
}

// IncCacheHit records a cache-served lookup.
func (m *Metrics) IncCacheHit() {
	if m != nil {
		m.CacheHits.Inc()
	}
}

// IncCacheMiss records a lookup that reached the store.
func (m *Metrics) IncCacheMiss() {
	if m != nil {
		m.CacheMisses.Inc()
	}
}
