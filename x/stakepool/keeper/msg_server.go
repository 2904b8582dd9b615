package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/helix-protocol/helix/x/stakepool/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the stakepool MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// Stake handles stake deposits
func (ms msgServer) Stake(goCtx context.Context, msg *types.MsgStake) (*types.MsgStakeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Stake: validate: %w", err)
	}

	staker, err := sdk.AccAddressFromBech32(msg.Staker)
	if err != nil {
		return nil, fmt.Errorf("Stake: invalid staker address: %w", err)
	}

	total, err := ms.Keeper.Stake(goCtx, staker, msg.Amount)
	if err != nil {
		return nil, err
	}
	return &types.MsgStakeResponse{TotalStaked: total}, nil
}

// Withdraw handles stake withdrawals
func (ms msgServer) Withdraw(goCtx context.Context, msg *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Withdraw: validate: %w", err)
	}

	staker, err := sdk.AccAddressFromBech32(msg.Staker)
	if err != nil {
		return nil, fmt.Errorf("Withdraw: invalid staker address: %w", err)
	}

	net, penalty, err := ms.Keeper.Withdraw(goCtx, staker, msg.Amount)
	if err != nil {
		return nil, err
	}
	return &types.MsgWithdrawResponse{NetAmount: net, Penalty: penalty}, nil
}

// ClaimRewards handles reward claims
func (ms msgServer) ClaimRewards(goCtx context.Context, msg *types.MsgClaimRewards) (*types.MsgClaimRewardsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("ClaimRewards: validate: %w", err)
	}

	staker, err := sdk.AccAddressFromBech32(msg.Staker)
	if err != nil {
		return nil, fmt.Errorf("ClaimRewards: invalid staker address: %w", err)
	}

	reward, err := ms.Keeper.ClaimRewards(goCtx, staker)
	if err != nil {
		return nil, err
	}
	return &types.MsgClaimRewardsResponse{Reward: reward}, nil
}

// Compound handles folding rewards into the stake
func (ms msgServer) Compound(goCtx context.Context, msg *types.MsgCompound) (*types.MsgCompoundResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Compound: validate: %w", err)
	}

	staker, err := sdk.AccAddressFromBech32(msg.Staker)
	if err != nil {
		return nil, fmt.Errorf("Compound: invalid staker address: %w", err)
	}

	compounded, total, err := ms.Keeper.Compound(goCtx, staker)
	if err != nil {
		return nil, err
	}
	return &types.MsgCompoundResponse{Compounded: compounded, TotalStaked: total}, nil
}

// EmergencyWithdraw handles emergency exits
func (ms msgServer) EmergencyWithdraw(goCtx context.Context, msg *types.MsgEmergencyWithdraw) (*types.MsgEmergencyWithdrawResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("EmergencyWithdraw: validate: %w", err)
	}

	staker, err := sdk.AccAddressFromBech32(msg.Staker)
	if err != nil {
		return nil, fmt.Errorf("EmergencyWithdraw: invalid staker address: %w", err)
	}

	returned, forfeited, err := ms.Keeper.EmergencyWithdraw(goCtx, staker)
	if err != nil {
		return nil, err
	}
	return &types.MsgEmergencyWithdrawResponse{Returned: returned, Forfeited: forfeited}, nil
}

// FundRewards handles reward reserve funding
func (ms msgServer) FundRewards(goCtx context.Context, msg *types.MsgFundRewards) (*types.MsgFundRewardsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("FundRewards: validate: %w", err)
	}

	funder, err := sdk.AccAddressFromBech32(msg.Funder)
	if err != nil {
		return nil, fmt.Errorf("FundRewards: invalid funder address: %w", err)
	}

	if err := ms.Keeper.FundRewards(goCtx, funder, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgFundRewardsResponse{}, nil
}

// SetEmissionRate handles emission rate changes
func (ms msgServer) SetEmissionRate(goCtx context.Context, msg *types.MsgSetEmissionRate) (*types.MsgSetEmissionRateResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SetEmissionRate: validate: %w", err)
	}

	if err := ms.Keeper.SetEmissionRate(goCtx, msg.Authority, msg.Rate); err != nil {
		return nil, err
	}
	return &types.MsgSetEmissionRateResponse{}, nil
}

// SetPaused handles pause flag changes
func (ms msgServer) SetPaused(goCtx context.Context, msg *types.MsgSetPaused) (*types.MsgSetPausedResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SetPaused: validate: %w", err)
	}

	if err := ms.Keeper.SetPaused(goCtx, msg.Authority, msg.Paused); err != nil {
		return nil, err
	}
	return &types.MsgSetPausedResponse{}, nil
}

// RecoverTokens handles stray token recovery
func (ms msgServer) RecoverTokens(goCtx context.Context, msg *types.MsgRecoverTokens) (*types.MsgRecoverTokensResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("RecoverTokens: validate: %w", err)
	}

	recipient, err := sdk.AccAddressFromBech32(msg.Recipient)
	if err != nil {
		return nil, fmt.Errorf("RecoverTokens: invalid recipient address: %w", err)
	}

	if err := ms.Keeper.RecoverTokens(goCtx, msg.Authority, msg.Denom, msg.Amount, recipient); err != nil {
		return nil, err
	}
	return &types.MsgRecoverTokensResponse{}, nil
}
