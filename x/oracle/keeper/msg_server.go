package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/helix-protocol/helix/x/oracle/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the oracle MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

func (m msgServer) SetPrice(ctx context.Context, msg *types.MsgSetPrice) (*types.MsgSetPriceResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	feeder, err := sdk.AccAddressFromBech32(msg.Feeder)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("feeder: %s", err)
	}

	if err := m.Keeper.SetPrice(ctx, feeder, msg.Asset, msg.Price); err != nil {
		return nil, err
	}
	return &types.MsgSetPriceResponse{}, nil
}

func (m msgServer) SetFeeder(ctx context.Context, msg *types.MsgSetFeeder) (*types.MsgSetFeederResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if err := m.Keeper.SetFeeder(ctx, msg.Authority, msg.Feeder); err != nil {
		return nil, err
	}
	return &types.MsgSetFeederResponse{}, nil
}

func (m msgServer) SwapWithDeadline(ctx context.Context, msg *types.MsgSwapWithDeadline) (*types.MsgSwapWithDeadlineResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	trader, err := sdk.AccAddressFromBech32(msg.Trader)
	if err != nil {
		return nil, types.ErrInvalidAddress.Wrapf("trader: %s", err)
	}

	amountOut, err := m.Keeper.SwapWithDeadline(ctx, trader, msg.PoolId, msg.TokenIn, msg.AmountIn, msg.MinAmountOut, msg.DeadlineUnix)
	if err != nil {
		return nil, err
	}
	return &types.MsgSwapWithDeadlineResponse{AmountOut: amountOut}, nil
}

func (m msgServer) UpdateParams(ctx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	if err := m.Keeper.UpdateParams(ctx, msg.Authority, msg.Params); err != nil {
		return nil, err
	}
	return &types.MsgUpdateParamsResponse{}, nil
}
