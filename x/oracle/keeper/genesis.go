package keeper

import (
	"context"
	"fmt"

	"github.com/helix-protocol/helix/x/oracle/types"
)

// InitGenesis initializes the oracle module state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("oracle genesis: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("oracle genesis: %w", err)
	}

	store := k.getStore(ctx)
	for _, price := range genState.Prices {
		record := price
		store.Set(PriceKey(record.Asset), k.cdc.MustMarshalJSON(&record))
	}
	return nil
}

// ExportGenesis returns the oracle module state as a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("oracle export: %w", err)
	}

	return &types.GenesisState{
		Params: params,
		Prices: k.GetAllPrices(ctx),
	}, nil
}
