package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/helix-protocol/helix/x/oracle/types"
)

// SwapWithDeadline routes a swap to the AMM after checking the caller's
// deadline against block time. A zero deadline means no deadline. Slippage
// protection stays with the AMM's own minAmountOut check.
func (k Keeper) SwapWithDeadline(
	ctx context.Context,
	trader sdk.AccAddress,
	poolID uint64,
	tokenIn string,
	amountIn math.Int,
	minAmountOut math.Int,
	deadlineUnix int64,
) (math.Int, error) {
	if deadlineUnix > 0 && k.blockUnix(ctx) > deadlineUnix {
		return math.ZeroInt(), types.ErrDeadlineExceeded.Wrapf(
			"deadline %d, block time %d", deadlineUnix, k.blockUnix(ctx),
		)
	}

	amountOut, err := k.ammKeeper.ExecuteSwap(ctx, trader, trader, poolID, tokenIn, amountIn, minAmountOut)
	if err != nil {
		return math.ZeroInt(), err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRoutedSwap,
			sdk.NewAttribute(types.AttributeKeyTrader, trader.String()),
			sdk.NewAttribute(types.AttributeKeyPoolID, strconv.FormatUint(poolID, 10)),
			sdk.NewAttribute(types.AttributeKeyTokenIn, tokenIn),
			sdk.NewAttribute(types.AttributeKeyAmountIn, amountIn.String()),
			sdk.NewAttribute(types.AttributeKeyAmountOut, amountOut.String()),
			sdk.NewAttribute(types.AttributeKeyDeadline, strconv.FormatInt(deadlineUnix, 10)),
		),
	)

	k.metrics.RoutedSwaps.Inc()
	k.Logger(ctx).Info("routed swap through deadline shim",
		"trader", trader.String(), "pool_id", poolID,
		"token_in", tokenIn, "amount_in", amountIn.String(), "amount_out", amountOut.String())

	return amountOut, nil
}

// QuoteSwap previews a routed swap without mutating state.
func (k Keeper) QuoteSwap(ctx context.Context, poolID uint64, tokenIn string, amountIn math.Int) (sdk.Coin, error) {
	return k.ammKeeper.SimulateSwap(ctx, poolID, tokenIn, sdk.NewCoin(tokenIn, amountIn))
}
