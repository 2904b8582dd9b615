package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/helix-protocol/helix/x/amm/types"
)

// GetLiquidity returns a provider's LP share balance for a pool. Shares are
// bank coins, so the share ledger is the bank ledger.
func (k Keeper) GetLiquidity(ctx context.Context, poolID uint64, provider sdk.AccAddress) math.Int {
	return k.bankKeeper.GetBalance(ctx, provider, types.ShareDenom(poolID)).Amount
}

// mintShares mints pool shares to a recipient through the bank supply.
func (k Keeper) mintShares(ctx context.Context, recipient sdk.AccAddress, poolID uint64, shares math.Int) error {
	coins := sdk.NewCoins(sdk.NewCoin(types.ShareDenom(poolID), shares))
	if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, coins); err != nil {
		return types.ErrTransferFailed.Wrapf("mint shares: %v", err)
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, coins); err != nil {
		return types.ErrTransferFailed.Wrapf("deliver shares: %v", err)
	}
	return nil
}

// burnShares burns pool shares held by a provider. The bank send fails with
// an insufficient-funds error when the provider holds fewer shares.
func (k Keeper) burnShares(ctx context.Context, provider sdk.AccAddress, poolID uint64, shares math.Int) error {
	coins := sdk.NewCoins(sdk.NewCoin(types.ShareDenom(poolID), shares))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, provider, types.ModuleName, coins); err != nil {
		return types.ErrInsufficientShares.Wrapf("collect shares for burn: %v", err)
	}
	if err := k.bankKeeper.BurnCoins(ctx, types.ModuleName, coins); err != nil {
		return types.ErrTransferFailed.Wrapf("burn shares: %v", err)
	}
	return nil
}

// AddLiquidity adds liquidity to an existing pool at the pool's current
// ratio. The second desired amount is clamped to the ratio implied by the
// first: try B_optimal = desiredA * reserveB / reserveA, and if that exceeds
// desiredB recompute A_optimal from desiredB instead. The provider therefore
// never contributes at a worse ratio than requested and never skews the pool.
// Shares minted are the minimum of the two proportional computations.
func (k Keeper) AddLiquidity(ctx context.Context, provider sdk.AccAddress, poolID uint64, desiredA, desiredB, minA, minB math.Int) (usedA, usedB, shares math.Int, err error) {
	zero := math.ZeroInt()

	if desiredA.IsNil() || !desiredA.IsPositive() || desiredB.IsNil() || !desiredB.IsPositive() {
		return zero, zero, zero, types.ErrInvalidAmount.Wrap("liquidity amounts must be positive")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return zero, zero, zero, err
	}

	if pool.ReserveA.IsZero() || pool.ReserveB.IsZero() || pool.TotalShares.IsZero() {
		// CreatePool always bootstraps reserves and shares together, so an
		// empty side here means corrupted state, not a first deposit.
		return zero, zero, zero, types.ErrInvalidPoolState.Wrap("pool is not bootstrapped")
	}

	err = k.WithReentrancyGuard(ctx, poolID, "add_liquidity", func() error {
		optimalB, err := SafeMulDiv(desiredA, pool.ReserveB, pool.ReserveA)
		if err != nil {
			return err
		}
		if optimalB.LTE(desiredB) {
			usedA = desiredA
			usedB = optimalB
		} else {
			usedA, err = SafeMulDiv(desiredB, pool.ReserveA, pool.ReserveB)
			if err != nil {
				return err
			}
			usedB = desiredB
		}

		if usedA.LT(minA) || usedB.LT(minB) {
			return types.ErrInsufficientAmount.Wrapf(
				"amounts %s/%s below requested minimums %s/%s",
				usedA, usedB, minA, minB,
			)
		}

		// min of the two proportional mint amounts, never the max, so a
		// momentarily skewed ratio cannot mint excess shares.
		sharesFromA, err := SafeMulDiv(usedA, pool.TotalShares, pool.ReserveA)
		if err != nil {
			return err
		}
		sharesFromB, err := SafeMulDiv(usedB, pool.TotalShares, pool.ReserveB)
		if err != nil {
			return err
		}
		shares = math.MinInt(sharesFromA, sharesFromB)

		if shares.IsZero() {
			return types.ErrInsufficientLiquidity.Wrap("liquidity contribution too small")
		}

		if pool.ReserveA, err = SafeAdd(pool.ReserveA, usedA); err != nil {
			return err
		}
		if pool.ReserveB, err = SafeAdd(pool.ReserveB, usedB); err != nil {
			return err
		}
		if pool.TotalShares, err = SafeAdd(pool.TotalShares, shares); err != nil {
			return err
		}

		if err := k.SetPool(ctx, pool); err != nil {
			return err
		}

		deposit := sdk.NewCoins(sdk.NewCoin(pool.TokenA, usedA), sdk.NewCoin(pool.TokenB, usedB))
		if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, provider, types.ModuleName, deposit); err != nil {
			return types.ErrTransferFailed.Wrapf("deposit liquidity: %v", err)
		}

		return k.mintShares(ctx, provider, poolID, shares)
	})
	if err != nil {
		return zero, zero, zero, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAddLiquidity,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyAmountA, usedA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, usedB.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
		),
	)

	if k.metrics != nil {
		poolIDStr := fmt.Sprintf("%d", poolID)
		k.metrics.LiquidityAdded.WithLabelValues(poolIDStr, pool.TokenA).Add(intToFloat(usedA))
		k.metrics.LiquidityAdded.WithLabelValues(poolIDStr, pool.TokenB).Add(intToFloat(usedB))
	}

	return usedA, usedB, shares, nil
}

// RemoveLiquidity burns shares for a strictly proportional slice of the
// reserves. There is no exit fee. Shares are burned before tokens leave the
// module so a reentrant transfer cannot observe a stale share/reserve ratio.
func (k Keeper) RemoveLiquidity(ctx context.Context, provider sdk.AccAddress, poolID uint64, shares, minA, minB math.Int) (amountA, amountB math.Int, err error) {
	zero := math.ZeroInt()

	if shares.IsNil() || !shares.IsPositive() {
		return zero, zero, types.ErrInvalidAmount.Wrap("shares must be positive")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return zero, zero, err
	}

	if pool.TotalShares.IsZero() {
		return zero, zero, types.ErrInsufficientLiquidity.Wrap("pool has no liquidity")
	}
	if shares.GT(pool.TotalShares) {
		return zero, zero, types.ErrInsufficientShares.Wrapf(
			"shares %s exceed total shares %s", shares, pool.TotalShares,
		)
	}

	err = k.WithReentrancyGuard(ctx, poolID, "remove_liquidity", func() error {
		var err error
		if amountA, err = SafeMulDiv(pool.ReserveA, shares, pool.TotalShares); err != nil {
			return err
		}
		if amountB, err = SafeMulDiv(pool.ReserveB, shares, pool.TotalShares); err != nil {
			return err
		}

		if amountA.LT(minA) || amountB.LT(minB) {
			return types.ErrInsufficientAmount.Wrapf(
				"amounts %s/%s below requested minimums %s/%s",
				amountA, amountB, minA, minB,
			)
		}

		// Burn first (fails when the provider holds fewer shares), then
		// update the pool, then pay out.
		if err := k.burnShares(ctx, provider, poolID, shares); err != nil {
			return err
		}

		pool.ReserveA = pool.ReserveA.Sub(amountA)
		pool.ReserveB = pool.ReserveB.Sub(amountB)
		pool.TotalShares = pool.TotalShares.Sub(shares)

		if err := k.SetPool(ctx, pool); err != nil {
			return err
		}

		withdrawal := sdk.Coins{}
		if amountA.IsPositive() {
			withdrawal = withdrawal.Add(sdk.NewCoin(pool.TokenA, amountA))
		}
		if amountB.IsPositive() {
			withdrawal = withdrawal.Add(sdk.NewCoin(pool.TokenB, amountB))
		}
		if withdrawal.IsZero() {
			return nil
		}
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, provider, withdrawal); err != nil {
			return types.ErrTransferFailed.Wrapf("withdraw liquidity: %v", err)
		}
		return nil
	})
	if err != nil {
		return zero, zero, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRemoveLiquidity,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyShares, shares.String()),
			sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
		),
	)

	if k.metrics != nil {
		poolIDStr := fmt.Sprintf("%d", poolID)
		k.metrics.LiquidityRemoved.WithLabelValues(poolIDStr, pool.TokenA).Add(intToFloat(amountA))
		k.metrics.LiquidityRemoved.WithLabelValues(poolIDStr, pool.TokenB).Add(intToFloat(amountB))
	}

	return amountA, amountB, nil
}
