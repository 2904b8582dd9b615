package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/helix-protocol/helix/x/amm/types"
)

// computeSwapOutput applies the fee-on-input constant-product formula with
// truncating integer division:
//
//	inWithFee = amountIn * (1000 - feeNumerator) / 1000
//	amountOut = inWithFee * reserveOut / (reserveIn + inWithFee)
//
// Both divisions truncate toward zero, a conservative rounding in the pool's
// favor. Reserves are the pre-transfer snapshot; the full amountIn (fee
// included) is added to the input reserve afterwards, which is what makes the
// product grow across a fee-bearing swap.
func computeSwapOutput(amountIn, reserveIn, reserveOut math.Int, feeNumerator uint64) (amountOut, amountInWithFee math.Int, err error) {
	zero := math.ZeroInt()

	if feeNumerator > types.MaxSwapFeeNumerator {
		return zero, zero, types.ErrInvalidParams.Wrapf("fee numerator %d out of range", feeNumerator)
	}
	if reserveIn.IsZero() || reserveOut.IsZero() {
		return zero, zero, types.ErrInsufficientLiquidity.Wrap("pool has empty reserves")
	}

	feeDenom := math.NewIntFromUint64(types.FeeDenominator)
	keepNumerator := math.NewIntFromUint64(types.FeeDenominator - feeNumerator)

	amountInWithFee, err = SafeMulDiv(amountIn, keepNumerator, feeDenom)
	if err != nil {
		return zero, zero, err
	}
	if amountInWithFee.IsZero() {
		return zero, zero, types.ErrInvalidAmount.Wrap("swap amount too small after fee")
	}

	newReserveIn, err := SafeAdd(reserveIn, amountInWithFee)
	if err != nil {
		return zero, zero, err
	}
	amountOut, err = SafeMulDiv(amountInWithFee, reserveOut, newReserveIn)
	if err != nil {
		return zero, zero, err
	}
	return amountOut, amountInWithFee, nil
}

// ExecuteSwap swaps amountIn of tokenIn against the pool and sends the output
// to recipient. The output is computed from the reserves as they stood before
// the incoming transfer lands (pre-transfer snapshot semantics).
func (k Keeper) ExecuteSwap(ctx context.Context, trader, recipient sdk.AccAddress, poolID uint64, tokenIn string, amountIn, minAmountOut math.Int) (math.Int, error) {
	zero := math.ZeroInt()

	if amountIn.IsNil() || !amountIn.IsPositive() {
		return zero, types.ErrZeroAmount.Wrap("swap amount must be positive")
	}

	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return zero, err
	}

	var reserveIn, reserveOut math.Int
	var tokenOut string
	switch tokenIn {
	case pool.TokenA:
		reserveIn, reserveOut = pool.ReserveA, pool.ReserveB
		tokenOut = pool.TokenB
	case pool.TokenB:
		reserveIn, reserveOut = pool.ReserveB, pool.ReserveA
		tokenOut = pool.TokenA
	default:
		return zero, types.ErrInvalidTokenPair.Wrapf(
			"token %s not in pool %d (%s/%s)", tokenIn, poolID, pool.TokenA, pool.TokenB,
		)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return zero, err
	}

	var amountOut math.Int
	err = k.WithReentrancyGuard(ctx, poolID, "swap", func() error {
		out, _, err := computeSwapOutput(amountIn, reserveIn, reserveOut, params.SwapFeeNumerator)
		if err != nil {
			return err
		}
		amountOut = out

		if amountOut.LT(minAmountOut) {
			return types.ErrSlippageExceeded.Wrapf(
				"expected at least %s, got %s", minAmountOut, amountOut,
			)
		}
		if amountOut.GTE(reserveOut) {
			return types.ErrInsufficientLiquidity.Wrapf(
				"output %s would drain reserve %s", amountOut, reserveOut,
			)
		}

		oldK, err := SafeMul(pool.ReserveA, pool.ReserveB)
		if err != nil {
			return err
		}

		// The full input (fee included) joins the input reserve; the fee is
		// what keeps the product from shrinking.
		if tokenIn == pool.TokenA {
			pool.ReserveA, err = SafeAdd(pool.ReserveA, amountIn)
			pool.ReserveB = pool.ReserveB.Sub(amountOut)
		} else {
			pool.ReserveB, err = SafeAdd(pool.ReserveB, amountIn)
			pool.ReserveA = pool.ReserveA.Sub(amountOut)
		}
		if err != nil {
			return err
		}

		if err := k.ValidatePoolInvariant(&pool, oldK); err != nil {
			return err
		}
		if err := k.SetPool(ctx, pool); err != nil {
			return err
		}

		coinIn := sdk.NewCoins(sdk.NewCoin(tokenIn, amountIn))
		if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, trader, types.ModuleName, coinIn); err != nil {
			return types.ErrTransferFailed.Wrapf("collect input tokens: %v", err)
		}

		coinOut := sdk.NewCoins(sdk.NewCoin(tokenOut, amountOut))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, coinOut); err != nil {
			return types.ErrTransferFailed.Wrapf("deliver output tokens: %v", err)
		}
		return nil
	})
	if err != nil {
		if k.metrics != nil {
			k.metrics.SwapsTotal.WithLabelValues(fmt.Sprintf("%d", poolID), tokenIn, "failed").Inc()
		}
		return zero, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSwap,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, recipient.String()),
			sdk.NewAttribute(types.AttributeKeyTokenIn, tokenIn),
			sdk.NewAttribute(types.AttributeKeyTokenOut, tokenOut),
			sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
		),
	)

	if k.metrics != nil {
		poolIDStr := fmt.Sprintf("%d", poolID)
		k.metrics.SwapsTotal.WithLabelValues(poolIDStr, tokenIn, "success").Inc()
		k.metrics.SwapVolume.WithLabelValues(poolIDStr, tokenIn).Add(intToFloat(amountIn))
	}

	return amountOut, nil
}

// SimulateSwap computes the expected output without mutating any state.
// Part of AMMKeeperV1 for external consumers (the oracle router shim).
func (k Keeper) SimulateSwap(ctx context.Context, poolID uint64, tokenIn string, amountIn sdk.Coin) (sdk.Coin, error) {
	pool, err := k.GetPool(ctx, poolID)
	if err != nil {
		return sdk.Coin{}, err
	}

	var reserveIn, reserveOut math.Int
	var tokenOut string
	switch tokenIn {
	case pool.TokenA:
		reserveIn, reserveOut = pool.ReserveA, pool.ReserveB
		tokenOut = pool.TokenB
	case pool.TokenB:
		reserveIn, reserveOut = pool.ReserveB, pool.ReserveA
		tokenOut = pool.TokenA
	default:
		return sdk.Coin{}, types.ErrInvalidTokenPair.Wrapf("token %s not in pool %d", tokenIn, poolID)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return sdk.Coin{}, err
	}

	amountOut, _, err := computeSwapOutput(amountIn.Amount, reserveIn, reserveOut, params.SwapFeeNumerator)
	if err != nil {
		return sdk.Coin{}, err
	}
	return sdk.NewCoin(tokenOut, amountOut), nil
}
