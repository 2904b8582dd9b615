package keeper

import (
	"math/big"
	"sync"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the farm module.
type Metrics struct {
	FarmsTotal    prometheus.Gauge
	DepositsTotal *prometheus.CounterVec
	RewardsPaid   *prometheus.CounterVec
}

var (
	farmMetricsOnce sync.Once
	farmMetrics     *Metrics
)

// NewMetrics creates and registers farm metrics (singleton; promauto panics
// on duplicate registration, and tests construct many keepers).
func NewMetrics() *Metrics {
	farmMetricsOnce.Do(func() {
		farmMetrics = &Metrics{
			FarmsTotal: promauto.NewGauge(prometheus.GaugeOpts{
				Namespace: "helix",
				Subsystem: "farm",
				Name:      "farms_total",
				Help:      "Number of farms created",
			}),
			DepositsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "helix",
					Subsystem: "farm",
					Name:      "deposits_total",
					Help:      "Total number of farm deposits",
				},
				[]string{"farm_id"},
			),
			RewardsPaid: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "helix",
					Subsystem: "farm",
					Name:      "rewards_paid_total",
					Help:      "Total boosted reward paid out in base units",
				},
				[]string{"farm_id"},
			),
		}
	})
	return farmMetrics
}

// intToFloat converts a math.Int to float64 for metric observation.
// Precision loss is acceptable for monitoring.
func intToFloat(i math.Int) float64 {
	f, _ := new(big.Float).SetInt(i.BigInt()).Float64()
	return f
}
