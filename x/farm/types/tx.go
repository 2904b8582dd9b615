package types

import (
	"context"

	"cosmossdk.io/math"
)

// MsgServer is the server API for the farm Msg service.
type MsgServer interface {
	CreateFarm(context.Context, *MsgCreateFarm) (*MsgCreateFarmResponse, error)
	Deposit(context.Context, *MsgDeposit) (*MsgDepositResponse, error)
	Withdraw(context.Context, *MsgWithdraw) (*MsgWithdrawResponse, error)
	Harvest(context.Context, *MsgHarvest) (*MsgHarvestResponse, error)
	Compound(context.Context, *MsgCompound) (*MsgCompoundResponse, error)
	FundFarm(context.Context, *MsgFundFarm) (*MsgFundFarmResponse, error)
	SetBoost(context.Context, *MsgSetBoost) (*MsgSetBoostResponse, error)
	SetFarmRate(context.Context, *MsgSetFarmRate) (*MsgSetFarmRateResponse, error)
}

// MsgCreateFarmResponse reports the id assigned to the new farm.
type MsgCreateFarmResponse struct {
	FarmId uint64 `json:"farm_id"`
}

// MsgDepositResponse reports the account's total deposit after the call.
type MsgDepositResponse struct {
	TotalDeposited math.Int `json:"total_deposited"`
}

// MsgWithdrawResponse reports the amount returned.
type MsgWithdrawResponse struct {
	Amount math.Int `json:"amount"`
}

// MsgHarvestResponse reports the base accrual and the boosted payout.
type MsgHarvestResponse struct {
	BaseReward math.Int `json:"base_reward"`
	Paid       math.Int `json:"paid"`
}

// MsgCompoundResponse reports the boosted amount folded into the stake.
type MsgCompoundResponse struct {
	Compounded     math.Int `json:"compounded"`
	TotalDeposited math.Int `json:"total_deposited"`
}

type MsgFundFarmResponse struct{}

type MsgSetBoostResponse struct{}

type MsgSetFarmRateResponse struct{}
