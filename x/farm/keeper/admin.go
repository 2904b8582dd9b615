package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/helix-protocol/helix/x/farm/types"
	"github.com/helix-protocol/helix/x/shared/rewards"
)

// SetBoost assigns a payout boost to one position. A position is created on
// the fly when the farmer has not deposited yet, so boosts can be granted
// ahead of a deposit. The boost applies to whatever is harvested next; it
// does not retroactively re-rate past windows.
func (k Keeper) SetBoost(ctx context.Context, authority string, farmID uint64, farmer sdk.AccAddress, boostBps uint64) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, authority)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return fmt.Errorf("SetBoost: %w", err)
	}
	if boostBps > params.MaxBoostBps {
		return types.ErrBoostTooHigh.Wrapf("%d bps exceeds maximum %d", boostBps, params.MaxBoostBps)
	}

	farm, err := k.GetFarm(ctx, farmID)
	if err != nil {
		return err
	}

	pos, found, err := k.GetFarmPosition(ctx, farmID, farmer)
	if err != nil {
		return err
	}
	if !found {
		pos = types.FarmPosition{Position: rewards.NewPosition(farm.State)}
	}

	pos.BoostBps = boostBps
	if err := k.SetFarmPosition(ctx, farmID, farmer, pos); err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeBoostSet,
			sdk.NewAttribute(types.AttributeKeyFarmID, fmt.Sprintf("%d", farmID)),
			sdk.NewAttribute(types.AttributeKeyFarmer, farmer.String()),
			sdk.NewAttribute(types.AttributeKeyBoostBps, fmt.Sprintf("%d", boostBps)),
		),
	)

	k.Logger(ctx).Info("boost set",
		"farm_id", farmID,
		"farmer", farmer.String(),
		"boost_bps", boostBps,
	)
	return nil
}

// SetFarmRate updates one farm's emission rate. The accumulator advances at
// the old rate first so the new rate applies strictly from now.
func (k Keeper) SetFarmRate(ctx context.Context, authority string, farmID uint64, rate math.LegacyDec) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, authority)
	}
	if rate.IsNil() || rate.IsNegative() {
		return types.ErrInvalidParams.Wrap("emission rate must be non-negative")
	}

	farm, err := k.GetFarm(ctx, farmID)
	if err != nil {
		return err
	}
	if err := farm.State.Advance(k.blockUnix(ctx)); err != nil {
		return fmt.Errorf("SetFarmRate: advance: %w", err)
	}

	oldRate := farm.State.EmissionRatePerSec
	farm.State.EmissionRatePerSec = rate
	if err := k.SetFarm(ctx, farm); err != nil {
		return fmt.Errorf("SetFarmRate: %w", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRateUpdated,
			sdk.NewAttribute(types.AttributeKeyFarmID, fmt.Sprintf("%d", farmID)),
			sdk.NewAttribute(types.AttributeKeyOldRate, oldRate.String()),
			sdk.NewAttribute(types.AttributeKeyNewRate, rate.String()),
		),
	)

	k.Logger(ctx).Info("farm rate updated",
		"farm_id", farmID,
		"old_rate", oldRate.String(),
		"new_rate", rate.String(),
	)
	return nil
}
