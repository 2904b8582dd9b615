package keeper

import (
	"math/big"
	"sync"

	"cosmossdk.io/math"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the stakepool module.
type Metrics struct {
	StakesTotal        prometheus.Counter
	WithdrawalsTotal   prometheus.Counter
	RewardsPaid        prometheus.Counter
	PenaltiesCollected prometheus.Counter
	TotalStaked        prometheus.Gauge
}

var (
	stakepoolMetricsOnce sync.Once
	stakepoolMetrics     *Metrics
)

// NewMetrics creates and registers stakepool metrics (singleton; promauto
// panics on duplicate registration, and tests construct many keepers).
func NewMetrics() *Metrics {
	stakepoolMetricsOnce.Do(func() {
		stakepoolMetrics = &Metrics{
			StakesTotal: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "helix",
				Subsystem: "stakepool",
				Name:      "stakes_total",
				Help:      "Total number of stake deposits",
			}),
			WithdrawalsTotal: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "helix",
				Subsystem: "stakepool",
				Name:      "withdrawals_total",
				Help:      "Total number of withdrawals, emergency included",
			}),
			RewardsPaid: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "helix",
				Subsystem: "stakepool",
				Name:      "rewards_paid_total",
				Help:      "Total reward paid out in base units",
			}),
			PenaltiesCollected: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "helix",
				Subsystem: "stakepool",
				Name:      "penalties_collected_total",
				Help:      "Total early-withdrawal penalty retained in base units",
			}),
			TotalStaked: promauto.NewGauge(prometheus.GaugeOpts{
				Namespace: "helix",
				Subsystem: "stakepool",
				Name:      "total_staked",
				Help:      "Current total staked in base units",
			}),
		}
	})
	return stakepoolMetrics
}

// intToFloat converts a math.Int to float64 for metric observation.
// Precision loss is acceptable for monitoring.
func intToFloat(i math.Int) float64 {
	f, _ := new(big.Float).SetInt(i.BigInt()).Float64()
	return f
}
