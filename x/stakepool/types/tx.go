package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer is the server API for the stakepool Msg service.
type MsgServer interface {
	Stake(context.Context, *MsgStake) (*MsgStakeResponse, error)
	Withdraw(context.Context, *MsgWithdraw) (*MsgWithdrawResponse, error)
	ClaimRewards(context.Context, *MsgClaimRewards) (*MsgClaimRewardsResponse, error)
	Compound(context.Context, *MsgCompound) (*MsgCompoundResponse, error)
	EmergencyWithdraw(context.Context, *MsgEmergencyWithdraw) (*MsgEmergencyWithdrawResponse, error)
	FundRewards(context.Context, *MsgFundRewards) (*MsgFundRewardsResponse, error)
	SetEmissionRate(context.Context, *MsgSetEmissionRate) (*MsgSetEmissionRateResponse, error)
	SetPaused(context.Context, *MsgSetPaused) (*MsgSetPausedResponse, error)
	RecoverTokens(context.Context, *MsgRecoverTokens) (*MsgRecoverTokensResponse, error)
}

// MsgStakeResponse reports the account's total stake after the deposit.
type MsgStakeResponse struct {
	TotalStaked math.Int `json:"total_staked"`
}

// MsgWithdrawResponse reports the net payout and any penalty retained.
type MsgWithdrawResponse struct {
	NetAmount math.Int `json:"net_amount"`
	Penalty   math.Int `json:"penalty"`
}

// MsgClaimRewardsResponse reports the reward paid out.
type MsgClaimRewardsResponse struct {
	Reward math.Int `json:"reward"`
}

// MsgCompoundResponse reports the amount folded into the stake.
type MsgCompoundResponse struct {
	Compounded  math.Int `json:"compounded"`
	TotalStaked math.Int `json:"total_staked"`
}

// MsgEmergencyWithdrawResponse reports the returned stake and forfeited reward.
type MsgEmergencyWithdrawResponse struct {
	Returned  math.Int `json:"returned"`
	Forfeited math.Int `json:"forfeited"`
}

type MsgFundRewardsResponse struct{}

type MsgSetEmissionRateResponse struct{}

type MsgSetPausedResponse struct{}

type MsgRecoverTokensResponse struct{}
