package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// FarmPositionRecord pairs a farmer address with its position for genesis.
type FarmPositionRecord struct {
	FarmId   uint64       `json:"farm_id"`
	Address  string       `json:"address"`
	Position FarmPosition `json:"position"`
}

// GenesisState defines the farm module's genesis state.
type GenesisState struct {
	Params     Params               `json:"params"`
	Farms      []Farm               `json:"farms"`
	Positions  []FarmPositionRecord `json:"positions"`
	NextFarmId uint64               `json:"next_farm_id"`
}

// DefaultGenesis returns the default genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:     DefaultParams(),
		Farms:      nil,
		Positions:  nil,
		NextFarmId: 1,
	}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	farmTotals := make(map[uint64]math.Int)
	for _, farm := range gs.Farms {
		if err := farm.Validate(); err != nil {
			return err
		}
		if _, dup := farmTotals[farm.Id]; dup {
			return ErrInvalidFarmId.Wrapf("duplicate farm id %d", farm.Id)
		}
		if gs.NextFarmId > 0 && farm.Id >= gs.NextFarmId {
			return ErrInvalidFarmId.Wrapf(
				"farm id %d not covered by next farm id %d", farm.Id, gs.NextFarmId,
			)
		}
		farmTotals[farm.Id] = math.ZeroInt()
	}

	seen := make(map[string]bool)
	for _, rec := range gs.Positions {
		if _, ok := farmTotals[rec.FarmId]; !ok {
			return ErrFarmNotFound.Wrapf("position references unknown farm %d", rec.FarmId)
		}
		if _, err := sdk.AccAddressFromBech32(rec.Address); err != nil {
			return ErrInvalidAddress.Wrapf("position address %q: %s", rec.Address, err)
		}
		key := fmt.Sprintf("%d/%s", rec.FarmId, rec.Address)
		if seen[key] {
			return ErrInvalidFarmId.Wrapf("duplicate position for %s in farm %d", rec.Address, rec.FarmId)
		}
		seen[key] = true

		p := rec.Position.Position
		if p.Amount.IsNil() || p.Amount.IsNegative() {
			return ErrInvalidAmount.Wrapf("position for %s has negative amount", rec.Address)
		}
		farmTotals[rec.FarmId] = farmTotals[rec.FarmId].Add(p.Amount)
	}

	for _, farm := range gs.Farms {
		if !farmTotals[farm.Id].Equal(farm.State.TotalStaked) {
			return ErrInvalidAmount.Wrapf(
				"farm %d: sum of positions %s does not match total staked %s",
				farm.Id, farmTotals[farm.Id], farm.State.TotalStaked,
			)
		}
	}
	return nil
}
