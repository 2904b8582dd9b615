package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Default lock of 7 days and a 1% early-exit penalty.
const (
	DefaultLockPeriodSeconds       = int64(604800)
	DefaultEarlyWithdrawPenaltyBps = uint64(100)
	MaxEarlyWithdrawPenaltyBps     = uint64(5000)
	DefaultStakeDenom              = "uhlx"
	DefaultRewardDenom             = "uhlx"
)

// Params defines the parameters for the stakepool module.
type Params struct {
	// StakeDenom is the token accepted for deposits.
	StakeDenom string `json:"stake_denom"`

	// RewardDenom is the token paid out by the emission schedule. Compounding
	// is only available when it equals StakeDenom.
	RewardDenom string `json:"reward_denom"`

	// EmissionRatePerSec is the reward emitted per second, split across all
	// stakers pro rata.
	EmissionRatePerSec math.LegacyDec `json:"emission_rate_per_sec"`

	// LockPeriodSeconds is how long a deposit stays locked. Withdrawing
	// before the lock expires pays EarlyWithdrawPenaltyBps to the pool.
	LockPeriodSeconds int64 `json:"lock_period_seconds"`

	// EarlyWithdrawPenaltyBps is the early-exit penalty in basis points.
	EarlyWithdrawPenaltyBps uint64 `json:"early_withdraw_penalty_bps"`
}

// DefaultParams returns default parameters for the stakepool module.
func DefaultParams() Params {
	return Params{
		StakeDenom:              DefaultStakeDenom,
		RewardDenom:             DefaultRewardDenom,
		EmissionRatePerSec:      math.LegacyZeroDec(),
		LockPeriodSeconds:       DefaultLockPeriodSeconds,
		EarlyWithdrawPenaltyBps: DefaultEarlyWithdrawPenaltyBps,
	}
}

// Validate checks the parameters are within bounds.
func (p Params) Validate() error {
	if err := sdk.ValidateDenom(p.StakeDenom); err != nil {
		return ErrInvalidParams.Wrapf("invalid stake denom: %s", err)
	}
	if err := sdk.ValidateDenom(p.RewardDenom); err != nil {
		return ErrInvalidParams.Wrapf("invalid reward denom: %s", err)
	}
	if p.EmissionRatePerSec.IsNil() || p.EmissionRatePerSec.IsNegative() {
		return ErrInvalidParams.Wrap("emission rate must be non-negative")
	}
	if p.LockPeriodSeconds < 0 {
		return ErrInvalidParams.Wrap("lock period cannot be negative")
	}
	if p.EarlyWithdrawPenaltyBps > MaxEarlyWithdrawPenaltyBps {
		return ErrInvalidParams.Wrapf(
			"early withdraw penalty %d bps exceeds maximum %d",
			p.EarlyWithdrawPenaltyBps, MaxEarlyWithdrawPenaltyBps,
		)
	}
	return nil
}
