package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer defines the AMM message handling interface.
type MsgServer interface {
	CreatePool(ctx context.Context, msg *MsgCreatePool) (*MsgCreatePoolResponse, error)
	AddLiquidity(ctx context.Context, msg *MsgAddLiquidity) (*MsgAddLiquidityResponse, error)
	RemoveLiquidity(ctx context.Context, msg *MsgRemoveLiquidity) (*MsgRemoveLiquidityResponse, error)
	Swap(ctx context.Context, msg *MsgSwap) (*MsgSwapResponse, error)
	UpdateParams(ctx context.Context, msg *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

// MsgCreatePoolResponse is the response for MsgCreatePool.
type MsgCreatePoolResponse struct {
	PoolId uint64   `json:"pool_id"`
	Shares math.Int `json:"shares"`
}

// MsgAddLiquidityResponse is the response for MsgAddLiquidity.
type MsgAddLiquidityResponse struct {
	UsedA  math.Int `json:"used_a"`
	UsedB  math.Int `json:"used_b"`
	Shares math.Int `json:"shares"`
}

// MsgRemoveLiquidityResponse is the response for MsgRemoveLiquidity.
type MsgRemoveLiquidityResponse struct {
	AmountA math.Int `json:"amount_a"`
	AmountB math.Int `json:"amount_b"`
}

// MsgSwapResponse is the response for MsgSwap.
type MsgSwapResponse struct {
	AmountOut math.Int `json:"amount_out"`
}

// MsgUpdateParamsResponse is the response for MsgUpdateParams.
type MsgUpdateParamsResponse struct{}
