package keeper

import (
	"math/big"
	"sync"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the bridge module.
type Metrics struct {
	LocksTotal   prometheus.Counter
	UnlocksTotal prometheus.Counter
	LockedVolume *prometheus.CounterVec
}

var (
	bridgeMetricsOnce sync.Once
	bridgeMetrics     *Metrics
)

// NewMetrics creates and registers bridge metrics (singleton; promauto panics
// on duplicate registration, and tests construct many keepers).
func NewMetrics() *Metrics {
	bridgeMetricsOnce.Do(func() {
		bridgeMetrics = &Metrics{
			LocksTotal: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "helix",
				Subsystem: "bridge",
				Name:      "locks_total",
				Help:      "Total number of outbound escrow locks",
			}),
			UnlocksTotal: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "helix",
				Subsystem: "bridge",
				Name:      "unlocks_total",
				Help:      "Total number of inbound releases",
			}),
			LockedVolume: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "helix",
				Subsystem: "bridge",
				Name:      "locked_volume_total",
				Help:      "Outbound volume escrowed, in base units",
			}, []string{"denom"}),
		}
	})
	return bridgeMetrics
}

// intToFloat converts a math.Int to float64 for metric observation.
// Precision loss is acceptable for monitoring.
func intToFloat(i math.Int) float64 {
	f, _ := new(big.Float).SetInt(i.BigInt()).Float64()
	return f
}
