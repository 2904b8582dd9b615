package types

import (
	"context"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AMMKeeper is the slice of the AMM the router shim delegates swaps to.
type AMMKeeper interface {
	ExecuteSwap(ctx context.Context, trader, recipient sdk.AccAddress, poolID uint64, tokenIn string, amountIn, minAmountOut math.Int) (math.Int, error)
	SimulateSwap(ctx context.Context, poolID uint64, tokenIn string, amountIn sdk.Coin) (sdk.Coin, error)
}
