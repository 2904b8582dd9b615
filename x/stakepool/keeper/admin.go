package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/helix-protocol/helix/x/stakepool/types"
)

// SetEmissionRate updates the per-second reward emission. The accumulator is
// advanced at the old rate first so past seconds keep the schedule they were
// emitted under; the new rate applies strictly from now.
func (k Keeper) SetEmissionRate(ctx context.Context, authority string, rate math.LegacyDec) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, authority)
	}
	if rate.IsNil() || rate.IsNegative() {
		return types.ErrInvalidParams.Wrap("emission rate must be non-negative")
	}

	state, err := k.GetPoolState(ctx)
	if err != nil {
		return fmt.Errorf("SetEmissionRate: %w", err)
	}
	if err := state.Advance(k.blockUnix(ctx)); err != nil {
		return fmt.Errorf("SetEmissionRate: advance: %w", err)
	}

	oldRate := state.EmissionRatePerSec
	state.EmissionRatePerSec = rate
	if err := k.SetPoolState(ctx, state); err != nil {
		return fmt.Errorf("SetEmissionRate: %w", err)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return fmt.Errorf("SetEmissionRate: %w", err)
	}
	params.EmissionRatePerSec = rate
	if err := k.SetParams(ctx, params); err != nil {
		return fmt.Errorf("SetEmissionRate: %w", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRateUpdated,
			sdk.NewAttribute(types.AttributeKeyOldRate, oldRate.String()),
			sdk.NewAttribute(types.AttributeKeyNewRate, rate.String()),
		),
	)

	k.Logger(ctx).Info("emission rate updated",
		"old_rate", oldRate.String(),
		"new_rate", rate.String(),
	)
	return nil
}

// SetPaused suspends or resumes deposits, withdrawals, and compounding.
// Emergency withdrawals are never blocked.
func (k Keeper) SetPaused(ctx context.Context, authority string, paused bool) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, authority)
	}

	if paused == k.IsPaused(ctx) {
		if paused {
			return types.ErrModulePaused.Wrap("already paused")
		}
		return types.ErrNotPaused.Wrap("already running")
	}

	k.setPaused(ctx, paused)

	eventType := types.EventTypeUnpaused
	if paused {
		eventType = types.EventTypePaused
	}
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			eventType,
			sdk.NewAttribute(types.AttributeKeyAuthority, authority),
		),
	)

	k.Logger(ctx).Info("pause flag changed", "paused", paused)
	return nil
}

// RecoverTokens sweeps tokens that were sent to the module account by
// mistake. The stake and reward denoms are protected because the module
// account's balance in them backs positions and the reward reserve.
func (k Keeper) RecoverTokens(ctx context.Context, authority, denom string, amount math.Int, recipient sdk.AccAddress) error {
	if authority != k.authority {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, authority)
	}
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrZeroAmount.Wrap("recovery amount must be positive")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return fmt.Errorf("RecoverTokens: %w", err)
	}
	if denom == params.StakeDenom || denom == params.RewardDenom {
		return types.ErrProtectedDenom.Wrapf("%s backs stakes or rewards", denom)
	}

	balance := k.bankKeeper.GetBalance(ctx, k.GetModuleAddress(), denom)
	if balance.Amount.LT(amount) {
		return types.ErrInsufficientBalance.Wrapf(
			"module holds %s, asked to recover %s%s", balance, amount, denom,
		)
	}

	coins := sdk.NewCoins(sdk.NewCoin(denom, amount))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, coins); err != nil {
		return types.ErrTransferFailed.Wrapf("recover tokens: %s", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRecovered,
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, recipient.String()),
		),
	)

	k.Logger(ctx).Info("stray tokens recovered",
		"denom", denom,
		"amount", amount.String(),
		"recipient", recipient.String(),
	)
	return nil
}
