package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/helix-protocol/helix/x/shared/rewards"
)

const (
	// ModuleName defines the module name
	ModuleName = "farm"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

// BpsDenominator is the denominator for basis-point fractions.
const BpsDenominator = uint64(10000)

// Farm is one staking program: deposit StakeDenom, earn RewardDenom on the
// shared accumulator schedule. StakeDenom is commonly an AMM LP share denom,
// which is what makes this a yield farm rather than a plain staking pool.
type Farm struct {
	Id          uint64        `json:"id"`
	StakeDenom  string        `json:"stake_denom"`
	RewardDenom string        `json:"reward_denom"`
	State       rewards.State `json:"state"`
	Creator     string        `json:"creator"`
}

// Validate checks structural consistency of a farm.
func (f Farm) Validate() error {
	if f.Id == 0 {
		return ErrInvalidFarmId.Wrap("farm id cannot be zero")
	}
	if err := sdk.ValidateDenom(f.StakeDenom); err != nil {
		return ErrInvalidDenom.Wrapf("stake denom: %s", err)
	}
	if err := sdk.ValidateDenom(f.RewardDenom); err != nil {
		return ErrInvalidDenom.Wrapf("reward denom: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(f.Creator); err != nil {
		return ErrInvalidAddress.Wrapf("creator: %s", err)
	}
	return f.State.Validate()
}

// FarmPosition is one account's deposit in one farm. BoostBps is an additive
// payout multiplier in basis points applied at harvest time: a 2500 bps boost
// pays 125% of the base accrual. The boost is funded from the farm's reward
// reserve, not from other depositors.
type FarmPosition struct {
	Position rewards.Position `json:"position"`
	BoostBps uint64           `json:"boost_bps"`
}

// BoostedReward applies the position's boost to a base reward amount.
func (p FarmPosition) BoostedReward(base math.Int) math.Int {
	if p.BoostBps == 0 {
		return base
	}
	multiplier := math.NewIntFromUint64(BpsDenominator + p.BoostBps)
	return base.Mul(multiplier).Quo(math.NewIntFromUint64(BpsDenominator))
}
