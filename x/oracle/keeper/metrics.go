package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the oracle module.
type Metrics struct {
	PriceUpdates *prometheus.CounterVec
	RoutedSwaps  prometheus.Counter
	StaleReads   prometheus.Counter
}

var (
	oracleMetricsOnce sync.Once
	oracleMetrics     *Metrics
)

// NewMetrics creates and registers oracle metrics (singleton; promauto panics
// on duplicate registration, and tests construct many keepers).
func NewMetrics() *Metrics {
	oracleMetricsOnce.Do(func() {
		oracleMetrics = &Metrics{
			PriceUpdates: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "helix",
				Subsystem: "oracle",
				Name:      "price_updates_total",
				Help:      "Total price updates posted, per asset",
			}, []string{"asset"}),
			RoutedSwaps: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "helix",
				Subsystem: "oracle",
				Name:      "routed_swaps_total",
				Help:      "Total swaps routed through the deadline shim",
			}),
			StaleReads: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "helix",
				Subsystem: "oracle",
				Name:      "stale_reads_total",
				Help:      "Total price reads refused for staleness",
			}),
		}
	})
	return oracleMetrics
}
