package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/helix-protocol/helix/x/farm/types"
)

// InitGenesis initializes the farm module state from genesis
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("InitGenesis: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("InitGenesis: %w", err)
	}
	if genState.NextFarmId > 0 {
		k.SetNextFarmID(ctx, genState.NextFarmId)
	}
	for _, farm := range genState.Farms {
		if err := k.SetFarm(ctx, farm); err != nil {
			return fmt.Errorf("InitGenesis: %w", err)
		}
	}
	for _, rec := range genState.Positions {
		addr, err := sdk.AccAddressFromBech32(rec.Address)
		if err != nil {
			return fmt.Errorf("InitGenesis: %w", err)
		}
		if err := k.SetFarmPosition(ctx, rec.FarmId, addr, rec.Position); err != nil {
			return fmt.Errorf("InitGenesis: %w", err)
		}
	}
	return nil
}

// ExportGenesis returns the farm module's exported genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("ExportGenesis: %w", err)
	}

	genState := &types.GenesisState{
		Params: params,
		Farms:  k.GetAllFarms(ctx),
	}

	for _, farm := range genState.Farms {
		err := k.IterateFarmPositions(ctx, farm.Id, func(addr sdk.AccAddress, pos types.FarmPosition) bool {
			genState.Positions = append(genState.Positions, types.FarmPositionRecord{
				FarmId:   farm.Id,
				Address:  addr.String(),
				Position: pos,
			})
			return false
		})
		if err != nil {
			return nil, fmt.Errorf("ExportGenesis: %w", err)
		}
	}

	// The exported counter must cover every live farm id.
	genState.NextFarmId = 1
	for _, farm := range genState.Farms {
		if farm.Id >= genState.NextFarmId {
			genState.NextFarmId = farm.Id + 1
		}
	}
	return genState, nil
}
