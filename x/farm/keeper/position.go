package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/helix-protocol/helix/x/farm/types"
	"github.com/helix-protocol/helix/x/shared/rewards"
)

// Deposit stakes amount of the farm's stake denom. Rewards are settled before
// the balance changes so the new tokens only accrue from now on.
func (k Keeper) Deposit(ctx context.Context, farmer sdk.AccAddress, farmID uint64, amount math.Int) (math.Int, error) {
	if amount.IsNil() || !amount.IsPositive() {
		return math.Int{}, types.ErrZeroAmount.Wrap("deposit amount must be positive")
	}

	farm, err := k.GetFarm(ctx, farmID)
	if err != nil {
		return math.Int{}, err
	}

	var total math.Int
	err = k.WithReentrancyGuard(ctx, farmID, "deposit", func() error {
		now := k.blockUnix(ctx)
		pos, found, err := k.GetFarmPosition(ctx, farmID, farmer)
		if err != nil {
			return err
		}
		if !found {
			pos = types.FarmPosition{Position: rewards.NewPosition(farm.State)}
		}

		if err := farm.State.Stake(now, &pos.Position, amount); err != nil {
			return err
		}

		coins := sdk.NewCoins(sdk.NewCoin(farm.StakeDenom, amount))
		if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, farmer, types.ModuleName, coins); err != nil {
			return types.ErrTransferFailed.Wrapf("farm deposit: %s", err)
		}

		if err := k.SetFarmPosition(ctx, farmID, farmer, pos); err != nil {
			return err
		}
		if err := k.SetFarm(ctx, farm); err != nil {
			return err
		}

		total = pos.Position.Amount

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeDeposit,
				sdk.NewAttribute(types.AttributeKeyFarmID, fmt.Sprintf("%d", farmID)),
				sdk.NewAttribute(types.AttributeKeyFarmer, farmer.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			),
		)

		k.metrics.DepositsTotal.WithLabelValues(fmt.Sprintf("%d", farmID)).Inc()

		k.Logger(ctx).Info("farm deposit",
			"farm_id", farmID,
			"farmer", farmer.String(),
			"amount", amount.String(),
		)
		return nil
	})
	if err != nil {
		return math.Int{}, fmt.Errorf("Deposit: %w", err)
	}
	return total, nil
}

// Withdraw unstakes amount from a farm and returns it to the farmer. Farms
// carry no lock period and no penalty; accrued rewards stay on the position
// until harvested.
func (k Keeper) Withdraw(ctx context.Context, farmer sdk.AccAddress, farmID uint64, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrZeroAmount.Wrap("withdraw amount must be positive")
	}

	farm, err := k.GetFarm(ctx, farmID)
	if err != nil {
		return err
	}

	err = k.WithReentrancyGuard(ctx, farmID, "withdraw", func() error {
		pos, found, err := k.GetFarmPosition(ctx, farmID, farmer)
		if err != nil {
			return err
		}
		if !found || pos.Position.Amount.IsZero() {
			return types.ErrInsufficientStake.Wrapf("no deposit for %s in farm %d", farmer, farmID)
		}
		if amount.GT(pos.Position.Amount) {
			return types.ErrInsufficientStake.Wrapf(
				"withdraw %s exceeds deposited %s", amount, pos.Position.Amount,
			)
		}

		now := k.blockUnix(ctx)
		if err := farm.State.Unstake(now, &pos.Position, amount); err != nil {
			return err
		}

		coins := sdk.NewCoins(sdk.NewCoin(farm.StakeDenom, amount))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, farmer, coins); err != nil {
			return types.ErrTransferFailed.Wrapf("farm withdrawal: %s", err)
		}

		if pos.Position.Amount.IsZero() && pos.Position.AccruedReward.IsZero() {
			k.DeleteFarmPosition(ctx, farmID, farmer)
		} else if err := k.SetFarmPosition(ctx, farmID, farmer, pos); err != nil {
			return err
		}
		if err := k.SetFarm(ctx, farm); err != nil {
			return err
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeWithdraw,
				sdk.NewAttribute(types.AttributeKeyFarmID, fmt.Sprintf("%d", farmID)),
				sdk.NewAttribute(types.AttributeKeyFarmer, farmer.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			),
		)

		k.Logger(ctx).Info("farm withdrawal",
			"farm_id", farmID,
			"farmer", farmer.String(),
			"amount", amount.String(),
		)
		return nil
	})
	if err != nil {
		return fmt.Errorf("Withdraw: %w", err)
	}
	return nil
}

// Harvest settles and pays out the accrued reward with the position's boost
// applied. The boost scales the payout only, not the accrual rate, so it can
// change mid-window and simply apply to whatever is harvested next.
func (k Keeper) Harvest(ctx context.Context, farmer sdk.AccAddress, farmID uint64) (base, paid math.Int, err error) {
	farm, err := k.GetFarm(ctx, farmID)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}

	err = k.WithReentrancyGuard(ctx, farmID, "harvest", func() error {
		pos, found, err := k.GetFarmPosition(ctx, farmID, farmer)
		if err != nil {
			return err
		}
		if !found {
			return types.ErrNothingToHarvest.Wrapf("no position for %s in farm %d", farmer, farmID)
		}

		now := k.blockUnix(ctx)
		if err := farm.State.Settle(now, &pos.Position); err != nil {
			return err
		}

		base = pos.Position.AccruedReward
		if base.IsZero() {
			return types.ErrNothingToHarvest
		}
		paid = pos.BoostedReward(base)

		pos.Position.AccruedReward = math.ZeroInt()

		coins := sdk.NewCoins(sdk.NewCoin(farm.RewardDenom, paid))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, farmer, coins); err != nil {
			return types.ErrTransferFailed.Wrapf("harvest payout: %s", err)
		}

		if pos.Position.Amount.IsZero() {
			k.DeleteFarmPosition(ctx, farmID, farmer)
		} else if err := k.SetFarmPosition(ctx, farmID, farmer, pos); err != nil {
			return err
		}
		if err := k.SetFarm(ctx, farm); err != nil {
			return err
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeHarvest,
				sdk.NewAttribute(types.AttributeKeyFarmID, fmt.Sprintf("%d", farmID)),
				sdk.NewAttribute(types.AttributeKeyFarmer, farmer.String()),
				sdk.NewAttribute(types.AttributeKeyBaseReward, base.String()),
				sdk.NewAttribute(types.AttributeKeyReward, paid.String()),
				sdk.NewAttribute(types.AttributeKeyBoostBps, fmt.Sprintf("%d", pos.BoostBps)),
			),
		)

		k.metrics.RewardsPaid.WithLabelValues(fmt.Sprintf("%d", farmID)).Add(intToFloat(paid))

		k.Logger(ctx).Info("harvest",
			"farm_id", farmID,
			"farmer", farmer.String(),
			"base", base.String(),
			"paid", paid.String(),
		)
		return nil
	})
	if err != nil {
		return math.Int{}, math.Int{}, fmt.Errorf("Harvest: %w", err)
	}
	return base, paid, nil
}

// Compound folds the boosted reward back into the farm stake. Only valid when
// the farm pays rewards in its own stake denom; the tokens already sit in the
// module account, so they just gain reward weight.
func (k Keeper) Compound(ctx context.Context, farmer sdk.AccAddress, farmID uint64) (compounded, total math.Int, err error) {
	farm, err := k.GetFarm(ctx, farmID)
	if err != nil {
		return math.Int{}, math.Int{}, err
	}
	if farm.StakeDenom != farm.RewardDenom {
		return math.Int{}, math.Int{}, types.ErrTokenMismatch.Wrapf(
			"farm %d pays %s, stakes %s", farmID, farm.RewardDenom, farm.StakeDenom,
		)
	}

	err = k.WithReentrancyGuard(ctx, farmID, "compound", func() error {
		pos, found, err := k.GetFarmPosition(ctx, farmID, farmer)
		if err != nil {
			return err
		}
		if !found {
			return types.ErrNothingToCompound.Wrapf("no position for %s in farm %d", farmer, farmID)
		}

		now := k.blockUnix(ctx)
		if err := farm.State.Settle(now, &pos.Position); err != nil {
			return err
		}

		base := pos.Position.AccruedReward
		if base.IsZero() {
			return types.ErrNothingToCompound
		}
		compounded = pos.BoostedReward(base)

		pos.Position.AccruedReward = math.ZeroInt()
		if err := farm.State.Stake(now, &pos.Position, compounded); err != nil {
			return err
		}

		if err := k.SetFarmPosition(ctx, farmID, farmer, pos); err != nil {
			return err
		}
		if err := k.SetFarm(ctx, farm); err != nil {
			return err
		}

		total = pos.Position.Amount

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeCompound,
				sdk.NewAttribute(types.AttributeKeyFarmID, fmt.Sprintf("%d", farmID)),
				sdk.NewAttribute(types.AttributeKeyFarmer, farmer.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, compounded.String()),
			),
		)

		k.Logger(ctx).Info("farm compound",
			"farm_id", farmID,
			"farmer", farmer.String(),
			"compounded", compounded.String(),
		)
		return nil
	})
	if err != nil {
		return math.Int{}, math.Int{}, fmt.Errorf("Compound: %w", err)
	}
	return compounded, total, nil
}

// FundFarm moves reward tokens from funder into the farm's reserve.
func (k Keeper) FundFarm(ctx context.Context, funder sdk.AccAddress, farmID uint64, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrZeroAmount.Wrap("funding amount must be positive")
	}

	farm, err := k.GetFarm(ctx, farmID)
	if err != nil {
		return err
	}

	coins := sdk.NewCoins(sdk.NewCoin(farm.RewardDenom, amount))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, funder, types.ModuleName, coins); err != nil {
		return types.ErrTransferFailed.Wrapf("fund farm: %s", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFunded,
			sdk.NewAttribute(types.AttributeKeyFarmID, fmt.Sprintf("%d", farmID)),
			sdk.NewAttribute(types.AttributeKeyFunder, funder.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)

	k.Logger(ctx).Info("farm funded",
		"farm_id", farmID,
		"funder", funder.String(),
		"amount", amount.String(),
	)
	return nil
}

// PendingReward returns the boosted payout a farmer would receive from
// Harvest right now, without mutating any state.
func (k Keeper) PendingReward(ctx context.Context, farmer sdk.AccAddress, farmID uint64) (math.Int, error) {
	farm, err := k.GetFarm(ctx, farmID)
	if err != nil {
		return math.Int{}, err
	}
	pos, found, err := k.GetFarmPosition(ctx, farmID, farmer)
	if err != nil {
		return math.Int{}, err
	}
	if !found {
		return math.ZeroInt(), nil
	}
	base := rewards.Earned(farm.State, pos.Position, k.blockUnix(ctx))
	return pos.BoostedReward(base), nil
}
