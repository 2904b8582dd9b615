package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/helix-protocol/helix/x/stakepool/types"
)

// GetParams returns the current parameters from the store
func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	store := k.getStore(ctx)
	bz := store.Get(ParamsKey)
	if bz == nil {
		return types.DefaultParams(), nil
	}

	var params types.Params
	if err := k.cdc.UnmarshalJSON(bz, &params); err != nil {
		return types.Params{}, fmt.Errorf("GetParams: unmarshal: %w", err)
	}
	return params, nil
}

// SetParams validates and sets the parameters in the store
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}

	store := k.getStore(ctx)
	bz, err := k.cdc.MarshalJSON(&params)
	if err != nil {
		return fmt.Errorf("SetParams: marshal: %w", err)
	}
	store.Set(ParamsKey, bz)
	return nil
}

// UpdateParams is the authority-gated parameter update entry point. Changing
// the emission rate this way also advances the accumulator so the new rate
// applies only from now.
func (k Keeper) UpdateParams(ctx context.Context, authority string, params types.Params) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, authority)
	}

	state, err := k.GetPoolState(ctx)
	if err != nil {
		return fmt.Errorf("UpdateParams: %w", err)
	}
	if !state.EmissionRatePerSec.Equal(params.EmissionRatePerSec) {
		if err := state.Advance(k.blockUnix(ctx)); err != nil {
			return fmt.Errorf("UpdateParams: advance: %w", err)
		}
		state.EmissionRatePerSec = params.EmissionRatePerSec
		if err := k.SetPoolState(ctx, state); err != nil {
			return fmt.Errorf("UpdateParams: %w", err)
		}
	}

	if err := k.SetParams(ctx, params); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUpdateParams,
			sdk.NewAttribute(types.AttributeKeyNewRate, params.EmissionRatePerSec.String()),
		),
	)
	return nil
}
