package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/helix-protocol/helix/x/shared/rewards"
)

// PositionRecord pairs a staker address with its position for genesis.
type PositionRecord struct {
	Address  string        `json:"address"`
	Position StakePosition `json:"position"`
}

// GenesisState defines the stakepool module's genesis state.
type GenesisState struct {
	Params    Params           `json:"params"`
	PoolState rewards.State    `json:"pool_state"`
	Positions []PositionRecord `json:"positions"`
	Paused    bool             `json:"paused"`
}

// DefaultGenesis returns the default genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:    DefaultParams(),
		PoolState: rewards.NewState(0, math.LegacyZeroDec()),
		Positions: nil,
		Paused:    false,
	}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if err := gs.PoolState.Validate(); err != nil {
		return err
	}

	seen := make(map[string]bool)
	total := math.ZeroInt()
	for _, rec := range gs.Positions {
		if _, err := sdk.AccAddressFromBech32(rec.Address); err != nil {
			return ErrInvalidAddress.Wrapf("position address %q: %s", rec.Address, err)
		}
		if seen[rec.Address] {
			return ErrInvalidParams.Wrapf("duplicate position for %s", rec.Address)
		}
		seen[rec.Address] = true

		p := rec.Position.Position
		if p.Amount.IsNil() || p.Amount.IsNegative() {
			return ErrInvalidAmount.Wrapf("position for %s has negative amount", rec.Address)
		}
		if p.AccruedReward.IsNil() || p.AccruedReward.IsNegative() {
			return ErrInvalidAmount.Wrapf("position for %s has negative accrued reward", rec.Address)
		}
		total = total.Add(p.Amount)
	}

	if !total.Equal(gs.PoolState.TotalStaked) {
		return ErrInvalidParams.Wrapf(
			"sum of positions %s does not match total staked %s",
			total, gs.PoolState.TotalStaked,
		)
	}
	return nil
}
