package types

// Boost defaults: 5x maximum payout multiplier.
const DefaultMaxBoostBps = uint64(50000)

// Params defines the parameters for the farm module.
type Params struct {
	// MaxBoostBps caps the per-position boost the authority may assign.
	MaxBoostBps uint64 `json:"max_boost_bps"`
}

// DefaultParams returns default parameters for the farm module.
func DefaultParams() Params {
	return Params{
		MaxBoostBps: DefaultMaxBoostBps,
	}
}

// Validate checks the parameters are within bounds.
func (p Params) Validate() error {
	if p.MaxBoostBps > DefaultMaxBoostBps {
		return ErrInvalidParams.Wrapf(
			"max boost %d bps exceeds hard cap %d", p.MaxBoostBps, DefaultMaxBoostBps,
		)
	}
	return nil
}
