// Package rewards implements the reward-per-share accumulator shared by the
// stakepool and farm modules. The accumulator advances with block time and a
// configurable emission rate; per-account positions checkpoint against it so
// any account's owed reward is computed lazily in O(1) regardless of the
// number of depositors or how long since it last interacted.
package rewards

import (
	"cosmossdk.io/errors"
	"cosmossdk.io/math"
)

// Engine sentinel errors, shared by both consuming modules.
var (
	ErrNegativeElapsed = errors.Register("rewards", 1, "block time moved backwards")
	ErrInvalidRate     = errors.Register("rewards", 2, "invalid emission rate")
)

// State is the global accumulator for one reward pool instance.
//
// AccRewardPerShare is a fixed-point (18 decimal) cumulative
// reward-per-unit-deposited since inception. It is monotonically
// non-decreasing and frozen while TotalStaked is zero, so no phantom reward
// accrues with no depositors and no division by zero occurs.
type State struct {
	AccRewardPerShare  math.LegacyDec `json:"acc_reward_per_share"`
	LastUpdateUnix     int64          `json:"last_update_unix"`
	EmissionRatePerSec math.LegacyDec `json:"emission_rate_per_sec"`
	TotalStaked        math.Int       `json:"total_staked"`
}

// NewState returns an engine state starting at nowUnix with the given rate.
func NewState(nowUnix int64, ratePerSec math.LegacyDec) State {
	return State{
		AccRewardPerShare:  math.LegacyZeroDec(),
		LastUpdateUnix:     nowUnix,
		EmissionRatePerSec: ratePerSec,
		TotalStaked:        math.ZeroInt(),
	}
}

// Validate checks structural consistency of the state.
func (s State) Validate() error {
	if s.EmissionRatePerSec.IsNil() || s.EmissionRatePerSec.IsNegative() {
		return ErrInvalidRate.Wrap("emission rate must be non-negative")
	}
	if s.AccRewardPerShare.IsNil() || s.AccRewardPerShare.IsNegative() {
		return ErrInvalidRate.Wrap("accumulator must be non-negative")
	}
	if s.TotalStaked.IsNil() || s.TotalStaked.IsNegative() {
		return ErrInvalidRate.Wrap("total staked must be non-negative")
	}
	return nil
}

// Position is one account's checkpoint against the accumulator.
type Position struct {
	Amount             math.Int       `json:"amount"`
	RewardPerSharePaid math.LegacyDec `json:"reward_per_share_paid"`
	AccruedReward      math.Int       `json:"accrued_reward"`
}

// NewPosition returns an empty position checkpointed at the current
// accumulator value.
func NewPosition(s State) Position {
	return Position{
		Amount:             math.ZeroInt(),
		RewardPerSharePaid: s.AccRewardPerShare,
		AccruedReward:      math.ZeroInt(),
	}
}

// Advance moves the accumulator forward to nowUnix:
//
//	acc += elapsed * rate / totalStaked
//
// Advancing twice at the same timestamp is a no-op, so settlement is
// idempotent within a block. Returns an error if time moved backwards.
func (s *State) Advance(nowUnix int64) error {
	if nowUnix < s.LastUpdateUnix {
		return ErrNegativeElapsed.Wrapf("last update %d, now %d", s.LastUpdateUnix, nowUnix)
	}
	elapsed := nowUnix - s.LastUpdateUnix
	if elapsed == 0 {
		return nil
	}

	if s.TotalStaked.IsZero() {
		// Accumulator frozen with no depositors; only the clock moves.
		s.LastUpdateUnix = nowUnix
		return nil
	}

	emitted := s.EmissionRatePerSec.MulInt64(elapsed)
	s.AccRewardPerShare = s.AccRewardPerShare.Add(emitted.QuoInt(s.TotalStaked))
	s.LastUpdateUnix = nowUnix
	return nil
}

// Settle advances the accumulator and checkpoints the position against it:
//
//	accrued += floor(amount * (acc - paid)); paid = acc
//
// Truncation rounds in the pool's favor; a depositor can never be owed more
// than the emission schedule has released. Settling one position never
// affects another position's rate of accrual.
func (s *State) Settle(nowUnix int64, p *Position) error {
	if err := s.Advance(nowUnix); err != nil {
		return err
	}

	delta := s.AccRewardPerShare.Sub(p.RewardPerSharePaid)
	if delta.IsPositive() && p.Amount.IsPositive() {
		p.AccruedReward = p.AccruedReward.Add(delta.MulInt(p.Amount).TruncateInt())
	}
	p.RewardPerSharePaid = s.AccRewardPerShare
	return nil
}

// Earned returns the reward an account would be owed if settled at nowUnix,
// without mutating either the state or the position. Always non-negative.
func Earned(s State, p Position, nowUnix int64) math.Int {
	scratch := s
	pos := p
	if err := scratch.Settle(nowUnix, &pos); err != nil {
		return p.AccruedReward
	}
	return pos.AccruedReward
}

// Stake settles the position then adds amount to it and to the global total.
func (s *State) Stake(nowUnix int64, p *Position, amount math.Int) error {
	if err := s.Settle(nowUnix, p); err != nil {
		return err
	}
	p.Amount = p.Amount.Add(amount)
	s.TotalStaked = s.TotalStaked.Add(amount)
	return nil
}

// Unstake settles the position then removes amount from it and from the
// global total. The caller is responsible for bounds-checking amount against
// the position before calling.
func (s *State) Unstake(nowUnix int64, p *Position, amount math.Int) error {
	if err := s.Settle(nowUnix, p); err != nil {
		return err
	}
	p.Amount = p.Amount.Sub(amount)
	s.TotalStaked = s.TotalStaked.Sub(amount)
	return nil
}
