package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"

	"github.com/helix-protocol/helix/x/bridge/types"
)

// InitGenesis initializes the bridge module state from a genesis state
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return fmt.Errorf("bridge genesis: %w", err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		return fmt.Errorf("bridge genesis: %w", err)
	}
	for _, lock := range genState.Locks {
		k.SetLock(ctx, lock)
	}
	for _, hash := range genState.ProcessedTxs {
		k.markProcessed(ctx, hash)
	}
	for _, rec := range genState.Escrowed {
		k.setEscrowed(ctx, rec.Denom, rec.Amount)
	}
	k.SetNextNonce(ctx, genState.NextNonce)
	return nil
}

// ExportGenesis returns the bridge module state as a genesis state
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return nil, fmt.Errorf("bridge export: %w", err)
	}

	var escrowed []types.EscrowedRecord
	k.IterateEscrowed(ctx, func(denom string, amount math.Int) bool {
		escrowed = append(escrowed, types.EscrowedRecord{Denom: denom, Amount: amount})
		return false
	})

	return &types.GenesisState{
		Params:       params,
		Locks:        k.GetAllLocks(ctx),
		ProcessedTxs: k.GetProcessedTxs(ctx),
		Escrowed:     escrowed,
		NextNonce:    k.GetNextNonce(ctx),
	}, nil
}
