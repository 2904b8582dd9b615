package types

import (
	"cosmossdk.io/math"

	"github.com/helix-protocol/helix/x/shared/rewards"
)

const (
	// ModuleName defines the module name
	ModuleName = "stakepool"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

// BpsDenominator is the denominator for basis-point fractions.
const BpsDenominator = uint64(10000)

// StakePosition is one account's stake. DepositUnix is the start of the lock
// clock: set when a fresh position is opened, kept across top-up deposits,
// reset by Compound, and cleared on full exit.
type StakePosition struct {
	Position    rewards.Position `json:"position"`
	DepositUnix int64            `json:"deposit_unix"`
}

// IsLocked reports whether the position is still inside its lock period.
func (p StakePosition) IsLocked(nowUnix, lockPeriodSeconds int64) bool {
	if p.DepositUnix == 0 || lockPeriodSeconds == 0 {
		return false
	}
	return nowUnix < p.DepositUnix+lockPeriodSeconds
}

// PenaltyFor returns the early-withdrawal penalty on a gross amount.
func PenaltyFor(amount math.Int, penaltyBps uint64) math.Int {
	return amount.Mul(math.NewIntFromUint64(penaltyBps)).Quo(math.NewIntFromUint64(BpsDenominator))
}
