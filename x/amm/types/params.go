package types

import (
	"cosmossdk.io/math"
)

// Params defines the parameters for the AMM module.
type Params struct {
	// SwapFeeNumerator is the swap fee as a fraction of FeeDenominator.
	// The default 3/1000 is a 0.3% fee, deducted from the input amount.
	SwapFeeNumerator uint64 `json:"swap_fee_numerator"`

	// MinInitialLiquidity is the minimum amount of each token required to
	// bootstrap a pool. Prevents dust pools whose price is trivially skewed.
	MinInitialLiquidity math.Int `json:"min_initial_liquidity"`
}

// DefaultParams returns default parameters for the AMM module.
func DefaultParams() Params {
	return Params{
		SwapFeeNumerator:    3, // 0.3%
		MinInitialLiquidity: math.NewInt(1000),
	}
}

// Validate checks the parameters are within bounds.
func (p Params) Validate() error {
	if p.SwapFeeNumerator > MaxSwapFeeNumerator {
		return ErrInvalidParams.Wrapf(
			"swap fee numerator %d exceeds maximum %d (50%%)",
			p.SwapFeeNumerator, MaxSwapFeeNumerator,
		)
	}
	if p.MinInitialLiquidity.IsNil() || p.MinInitialLiquidity.IsNegative() {
		return ErrInvalidParams.Wrap("min initial liquidity must be non-negative")
	}
	return nil
}
