package keeper

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/helix-protocol/helix/x/farm/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the farm MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// CreateFarm handles farm registration
func (ms msgServer) CreateFarm(goCtx context.Context, msg *types.MsgCreateFarm) (*types.MsgCreateFarmResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("CreateFarm: validate: %w", err)
	}

	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return nil, fmt.Errorf("CreateFarm: invalid creator address: %w", err)
	}

	farm, err := ms.Keeper.CreateFarm(goCtx, creator, msg.StakeDenom, msg.RewardDenom, msg.RatePerSec)
	if err != nil {
		return nil, err
	}
	return &types.MsgCreateFarmResponse{FarmId: farm.Id}, nil
}

// Deposit handles farm deposits
func (ms msgServer) Deposit(goCtx context.Context, msg *types.MsgDeposit) (*types.MsgDepositResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Deposit: validate: %w", err)
	}

	farmer, err := sdk.AccAddressFromBech32(msg.Farmer)
	if err != nil {
		return nil, fmt.Errorf("Deposit: invalid farmer address: %w", err)
	}

	total, err := ms.Keeper.Deposit(goCtx, farmer, msg.FarmId, msg.Amount)
	if err != nil {
		return nil, err
	}
	return &types.MsgDepositResponse{TotalDeposited: total}, nil
}

// Withdraw handles farm withdrawals
func (ms msgServer) Withdraw(goCtx context.Context, msg *types.MsgWithdraw) (*types.MsgWithdrawResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Withdraw: validate: %w", err)
	}

	farmer, err := sdk.AccAddressFromBech32(msg.Farmer)
	if err != nil {
		return nil, fmt.Errorf("Withdraw: invalid farmer address: %w", err)
	}

	if err := ms.Keeper.Withdraw(goCtx, farmer, msg.FarmId, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgWithdrawResponse{Amount: msg.Amount}, nil
}

// Harvest handles boosted reward payouts
func (ms msgServer) Harvest(goCtx context.Context, msg *types.MsgHarvest) (*types.MsgHarvestResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Harvest: validate: %w", err)
	}

	farmer, err := sdk.AccAddressFromBech32(msg.Farmer)
	if err != nil {
		return nil, fmt.Errorf("Harvest: invalid farmer address: %w", err)
	}

	base, paid, err := ms.Keeper.Harvest(goCtx, farmer, msg.FarmId)
	if err != nil {
		return nil, err
	}
	return &types.MsgHarvestResponse{BaseReward: base, Paid: paid}, nil
}

// Compound handles folding boosted rewards into the stake
func (ms msgServer) Compound(goCtx context.Context, msg *types.MsgCompound) (*types.MsgCompoundResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("Compound: validate: %w", err)
	}

	farmer, err := sdk.AccAddressFromBech32(msg.Farmer)
	if err != nil {
		return nil, fmt.Errorf("Compound: invalid farmer address: %w", err)
	}

	compounded, total, err := ms.Keeper.Compound(goCtx, farmer, msg.FarmId)
	if err != nil {
		return nil, err
	}
	return &types.MsgCompoundResponse{Compounded: compounded, TotalDeposited: total}, nil
}

// FundFarm handles farm reserve funding
func (ms msgServer) FundFarm(goCtx context.Context, msg *types.MsgFundFarm) (*types.MsgFundFarmResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("FundFarm: validate: %w", err)
	}

	funder, err := sdk.AccAddressFromBech32(msg.Funder)
	if err != nil {
		return nil, fmt.Errorf("FundFarm: invalid funder address: %w", err)
	}

	if err := ms.Keeper.FundFarm(goCtx, funder, msg.FarmId, msg.Amount); err != nil {
		return nil, err
	}
	return &types.MsgFundFarmResponse{}, nil
}

// SetBoost handles boost assignment
func (ms msgServer) SetBoost(goCtx context.Context, msg *types.MsgSetBoost) (*types.MsgSetBoostResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SetBoost: validate: %w", err)
	}

	farmer, err := sdk.AccAddressFromBech32(msg.Farmer)
	if err != nil {
		return nil, fmt.Errorf("SetBoost: invalid farmer address: %w", err)
	}

	if err := ms.Keeper.SetBoost(goCtx, msg.Authority, msg.FarmId, farmer, msg.BoostBps); err != nil {
		return nil, err
	}
	return &types.MsgSetBoostResponse{}, nil
}

// SetFarmRate handles per-farm emission rate changes
func (ms msgServer) SetFarmRate(goCtx context.Context, msg *types.MsgSetFarmRate) (*types.MsgSetFarmRateResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, fmt.Errorf("SetFarmRate: validate: %w", err)
	}

	if err := ms.Keeper.SetFarmRate(goCtx, msg.Authority, msg.FarmId, msg.Rate); err != nil {
		return nil, err
	}
	return &types.MsgSetFarmRateResponse{}, nil
}
