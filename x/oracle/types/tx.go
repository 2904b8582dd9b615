package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer is the server API for the oracle Msg service.
type MsgServer interface {
	SetPrice(context.Context, *MsgSetPrice) (*MsgSetPriceResponse, error)
	SetFeeder(context.Context, *MsgSetFeeder) (*MsgSetFeederResponse, error)
	SwapWithDeadline(context.Context, *MsgSwapWithDeadline) (*MsgSwapWithDeadlineResponse, error)
	UpdateParams(context.Context, *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
}

type MsgSetPriceResponse struct{}

type MsgSetFeederResponse struct{}

// MsgSwapWithDeadlineResponse reports the output delivered by the AMM.
type MsgSwapWithDeadlineResponse struct {
	AmountOut math.Int `json:"amount_out"`
}

type MsgUpdateParamsResponse struct{}
