package keeper

import (
	"context"
	"fmt"

	"github.com/helix-protocol/helix/x/amm/types"
)

// InitGenesis initializes the amm module's state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("failed to set params: %w", err)
	}

	if genState.NextPoolId > 0 {
		k.SetNextPoolID(ctx, genState.NextPoolId)
	}

	for _, pool := range genState.Pools {
		if err := pool.Validate(); err != nil {
			return fmt.Errorf("invalid pool %d: %w", pool.Id, err)
		}
		if err := k.SetPool(ctx, pool); err != nil {
			return fmt.Errorf("failed to set pool %d: %w", pool.Id, err)
		}
		k.SetPoolByTokens(ctx, pool.TokenA, pool.TokenB, pool.Id)
	}

	return nil
}

// ExportGenesis returns the amm module's exported genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	genState := &types.GenesisState{
		Params: params,
		Pools:  k.GetAllPools(ctx),
	}

	// The exported counter must cover every live pool id.
	genState.NextPoolId = 1
	for _, pool := range genState.Pools {
		if pool.Id >= genState.NextPoolId {
			genState.NextPoolId = pool.Id + 1
		}
	}

	return genState, nil
}
