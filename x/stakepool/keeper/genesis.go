package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/helix-protocol/helix/x/stakepool/types"
)

// InitGenesis initializes the stakepool module state from genesis
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("InitGenesis: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("InitGenesis: %w", err)
	}
	if err := k.SetPoolState(ctx, genState.PoolState); err != nil {
		return fmt.Errorf("InitGenesis: %w", err)
	}
	for _, rec := range genState.Positions {
		addr, err := sdk.AccAddressFromBech32(rec.Address)
		if err != nil {
			return fmt.Errorf("InitGenesis: %w", err)
		}
		if err := k.SetPosition(ctx, addr, rec.Position); err != nil {
			return fmt.Errorf("InitGenesis: %w", err)
		}
	}
	k.setPaused(ctx, genState.Paused)
	return nil
}

// ExportGenesis returns the stakepool module's exported genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("ExportGenesis: %w", err)
	}
	state, err := k.GetPoolState(ctx)
	if err != nil {
		return nil, fmt.Errorf("ExportGenesis: %w", err)
	}

	var positions []types.PositionRecord
	err = k.IteratePositions(ctx, func(addr sdk.AccAddress, pos types.StakePosition) bool {
		positions = append(positions, types.PositionRecord{
			Address:  addr.String(),
			Position: pos,
		})
		return false
	})
	if err != nil {
		return nil, fmt.Errorf("ExportGenesis: %w", err)
	}

	return &types.GenesisState{
		Params:    params,
		PoolState: state,
		Positions: positions,
		Paused:    k.IsPaused(ctx),
	}, nil
}
