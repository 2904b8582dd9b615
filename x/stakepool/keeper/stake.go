package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/helix-protocol/helix/x/shared/rewards"
	"github.com/helix-protocol/helix/x/stakepool/types"
)

// Stake deposits amount of the stake token for staker. Rewards are settled
// before the balance changes so the new tokens only accrue from now on. The
// lock clock starts on the first deposit and is kept across top-ups.
func (k Keeper) Stake(ctx context.Context, staker sdk.AccAddress, amount math.Int) (math.Int, error) {
	if amount.IsNil() || !amount.IsPositive() {
		return math.Int{}, types.ErrZeroAmount.Wrap("stake amount must be positive")
	}
	if k.IsPaused(ctx) {
		return math.Int{}, types.ErrModulePaused
	}

	var total math.Int
	err := k.WithReentrancyGuard(ctx, "stake", func() error {
		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}
		state, err := k.GetPoolState(ctx)
		if err != nil {
			return err
		}

		now := k.blockUnix(ctx)
		pos, found, err := k.GetPosition(ctx, staker)
		if err != nil {
			return err
		}
		if !found {
			pos = types.StakePosition{Position: rewards.NewPosition(state)}
		}

		if err := state.Stake(now, &pos.Position, amount); err != nil {
			return err
		}
		if pos.DepositUnix == 0 {
			pos.DepositUnix = now
		}

		coins := sdk.NewCoins(sdk.NewCoin(params.StakeDenom, amount))
		if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, staker, types.ModuleName, coins); err != nil {
			return types.ErrTransferFailed.Wrapf("stake deposit: %s", err)
		}

		if err := k.SetPosition(ctx, staker, pos); err != nil {
			return err
		}
		if err := k.SetPoolState(ctx, state); err != nil {
			return err
		}

		total = pos.Position.Amount

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeStake,
				sdk.NewAttribute(types.AttributeKeyStaker, staker.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			),
		)

		k.metrics.StakesTotal.Inc()
		k.metrics.TotalStaked.Set(intToFloat(state.TotalStaked))

		k.Logger(ctx).Info("tokens staked",
			"staker", staker.String(),
			"amount", amount.String(),
			"total_position", total.String(),
		)
		return nil
	})
	if err != nil {
		return math.Int{}, fmt.Errorf("Stake: %w", err)
	}
	return total, nil
}

// Withdraw removes amount of stake. If the position is still inside its lock
// period the early-withdrawal penalty is taken from the payout and retained
// by the pool; the full gross amount leaves the position and the global
// total either way, so the penalty carries no residual reward weight.
func (k Keeper) Withdraw(ctx context.Context, staker sdk.AccAddress, amount math.Int) (math.Int, math.Int, error) {
	if amount.IsNil() || !amount.IsPositive() {
		return math.Int{}, math.Int{}, types.ErrZeroAmount.Wrap("withdraw amount must be positive")
	}
	if k.IsPaused(ctx) {
		return math.Int{}, math.Int{}, types.ErrModulePaused
	}

	var net, penalty math.Int
	err := k.WithReentrancyGuard(ctx, "withdraw", func() error {
		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}
		state, err := k.GetPoolState(ctx)
		if err != nil {
			return err
		}

		pos, found, err := k.GetPosition(ctx, staker)
		if err != nil {
			return err
		}
		if !found || pos.Position.Amount.IsZero() {
			return types.ErrNothingToWithdraw.Wrapf("no stake for %s", staker)
		}
		if amount.GT(pos.Position.Amount) {
			return types.ErrInsufficientBalance.Wrapf(
				"withdraw %s exceeds staked %s", amount, pos.Position.Amount,
			)
		}

		now := k.blockUnix(ctx)
		if err := state.Unstake(now, &pos.Position, amount); err != nil {
			return err
		}

		penalty = math.ZeroInt()
		if pos.IsLocked(now, params.LockPeriodSeconds) {
			penalty = types.PenaltyFor(amount, params.EarlyWithdrawPenaltyBps)
		}
		net = amount.Sub(penalty)

		if net.IsPositive() {
			coins := sdk.NewCoins(sdk.NewCoin(params.StakeDenom, net))
			if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, staker, coins); err != nil {
				return types.ErrTransferFailed.Wrapf("withdraw payout: %s", err)
			}
		}

		if pos.Position.Amount.IsZero() {
			if pos.Position.AccruedReward.IsZero() {
				k.DeletePosition(ctx, staker)
			} else {
				// Keep the position for its unclaimed reward; the lock clock
				// ends with the stake.
				pos.DepositUnix = 0
				if err := k.SetPosition(ctx, staker, pos); err != nil {
					return err
				}
			}
		} else {
			if err := k.SetPosition(ctx, staker, pos); err != nil {
				return err
			}
		}
		if err := k.SetPoolState(ctx, state); err != nil {
			return err
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeWithdraw,
				sdk.NewAttribute(types.AttributeKeyStaker, staker.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
				sdk.NewAttribute(types.AttributeKeyNetAmount, net.String()),
			),
		)
		if penalty.IsPositive() {
			sdkCtx.EventManager().EmitEvent(
				sdk.NewEvent(
					types.EventTypePenaltyApplied,
					sdk.NewAttribute(types.AttributeKeyStaker, staker.String()),
					sdk.NewAttribute(types.AttributeKeyPenalty, penalty.String()),
				),
			)
			k.metrics.PenaltiesCollected.Add(intToFloat(penalty))
		}

		k.metrics.WithdrawalsTotal.Inc()
		k.metrics.TotalStaked.Set(intToFloat(state.TotalStaked))

		k.Logger(ctx).Info("tokens withdrawn",
			"staker", staker.String(),
			"gross", amount.String(),
			"net", net.String(),
			"penalty", penalty.String(),
		)
		return nil
	})
	if err != nil {
		return math.Int{}, math.Int{}, fmt.Errorf("Withdraw: %w", err)
	}
	return net, penalty, nil
}

// ClaimRewards settles and pays out all accrued rewards. Claiming with
// nothing accrued is a harmless no-op returning zero.
func (k Keeper) ClaimRewards(ctx context.Context, staker sdk.AccAddress) (math.Int, error) {
	var reward math.Int
	err := k.WithReentrancyGuard(ctx, "claim", func() error {
		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}
		state, err := k.GetPoolState(ctx)
		if err != nil {
			return err
		}

		pos, found, err := k.GetPosition(ctx, staker)
		if err != nil {
			return err
		}
		if !found {
			reward = math.ZeroInt()
			return nil
		}

		now := k.blockUnix(ctx)
		if err := state.Settle(now, &pos.Position); err != nil {
			return err
		}

		reward = pos.Position.AccruedReward
		if reward.IsZero() {
			if err := k.SetPosition(ctx, staker, pos); err != nil {
				return err
			}
			return k.SetPoolState(ctx, state)
		}

		pos.Position.AccruedReward = math.ZeroInt()

		coins := sdk.NewCoins(sdk.NewCoin(params.RewardDenom, reward))
		if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, staker, coins); err != nil {
			return types.ErrTransferFailed.Wrapf("reward payout: %s", err)
		}

		if pos.Position.Amount.IsZero() {
			k.DeletePosition(ctx, staker)
		} else if err := k.SetPosition(ctx, staker, pos); err != nil {
			return err
		}
		if err := k.SetPoolState(ctx, state); err != nil {
			return err
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeRewardPaid,
				sdk.NewAttribute(types.AttributeKeyStaker, staker.String()),
				sdk.NewAttribute(types.AttributeKeyReward, reward.String()),
			),
		)

		k.metrics.RewardsPaid.Add(intToFloat(reward))

		k.Logger(ctx).Info("rewards claimed",
			"staker", staker.String(),
			"reward", reward.String(),
		)
		return nil
	})
	if err != nil {
		return math.Int{}, fmt.Errorf("ClaimRewards: %w", err)
	}
	return reward, nil
}

// Compound folds accrued rewards back into the stake. Only valid when the
// stake and reward denoms match; the reward tokens already sit in the module
// account so no bank transfer happens, they just gain reward weight. The lock
// clock restarts because compounding is a fresh deposit.
func (k Keeper) Compound(ctx context.Context, staker sdk.AccAddress) (math.Int, math.Int, error) {
	if k.IsPaused(ctx) {
		return math.Int{}, math.Int{}, types.ErrModulePaused
	}

	var compounded, total math.Int
	err := k.WithReentrancyGuard(ctx, "compound", func() error {
		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}
		if params.StakeDenom != params.RewardDenom {
			return types.ErrTokenMismatch.Wrapf(
				"cannot compound %s rewards into %s stake", params.RewardDenom, params.StakeDenom,
			)
		}
		state, err := k.GetPoolState(ctx)
		if err != nil {
			return err
		}

		pos, found, err := k.GetPosition(ctx, staker)
		if err != nil {
			return err
		}
		if !found {
			return types.ErrNothingToCompound.Wrapf("no position for %s", staker)
		}

		now := k.blockUnix(ctx)
		if err := state.Settle(now, &pos.Position); err != nil {
			return err
		}

		compounded = pos.Position.AccruedReward
		if compounded.IsZero() {
			return types.ErrNothingToCompound
		}

		pos.Position.AccruedReward = math.ZeroInt()
		if err := state.Stake(now, &pos.Position, compounded); err != nil {
			return err
		}
		pos.DepositUnix = now

		if err := k.SetPosition(ctx, staker, pos); err != nil {
			return err
		}
		if err := k.SetPoolState(ctx, state); err != nil {
			return err
		}

		total = pos.Position.Amount

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeCompound,
				sdk.NewAttribute(types.AttributeKeyStaker, staker.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, compounded.String()),
			),
		)

		k.metrics.TotalStaked.Set(intToFloat(state.TotalStaked))

		k.Logger(ctx).Info("rewards compounded",
			"staker", staker.String(),
			"compounded", compounded.String(),
			"total_position", total.String(),
		)
		return nil
	})
	if err != nil {
		return math.Int{}, math.Int{}, fmt.Errorf("Compound: %w", err)
	}
	return compounded, total, nil
}

// EmergencyWithdraw returns the stake immediately, forfeiting all accrued
// rewards. The early-withdrawal penalty still applies when the lock has not
// elapsed. It ignores the pause flag; it is the escape hatch when everything
// else is wedged.
func (k Keeper) EmergencyWithdraw(ctx context.Context, staker sdk.AccAddress) (math.Int, math.Int, error) {
	var returned, forfeited math.Int
	err := k.WithReentrancyGuard(ctx, "emergency_withdraw", func() error {
		params, err := k.GetParams(ctx)
		if err != nil {
			return err
		}
		state, err := k.GetPoolState(ctx)
		if err != nil {
			return err
		}

		pos, found, err := k.GetPosition(ctx, staker)
		if err != nil {
			return err
		}
		if !found || pos.Position.Amount.IsZero() {
			return types.ErrNothingToWithdraw.Wrapf("no stake for %s", staker)
		}

		// Settle first so the accumulator stays correct for everyone else,
		// then discard whatever this position had accrued.
		now := k.blockUnix(ctx)
		gross := pos.Position.Amount
		if err := state.Unstake(now, &pos.Position, gross); err != nil {
			return err
		}
		forfeited = pos.Position.AccruedReward

		penalty := math.ZeroInt()
		if pos.IsLocked(now, params.LockPeriodSeconds) {
			penalty = types.PenaltyFor(gross, params.EarlyWithdrawPenaltyBps)
		}
		returned = gross.Sub(penalty)

		if returned.IsPositive() {
			coins := sdk.NewCoins(sdk.NewCoin(params.StakeDenom, returned))
			if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, staker, coins); err != nil {
				return types.ErrTransferFailed.Wrapf("emergency payout: %s", err)
			}
		}

		k.DeletePosition(ctx, staker)
		if err := k.SetPoolState(ctx, state); err != nil {
			return err
		}

		sdkCtx := sdk.UnwrapSDKContext(ctx)
		sdkCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeEmergencyWithdraw,
				sdk.NewAttribute(types.AttributeKeyStaker, staker.String()),
				sdk.NewAttribute(types.AttributeKeyAmount, returned.String()),
				sdk.NewAttribute(types.AttributeKeyPenalty, penalty.String()),
				sdk.NewAttribute(types.AttributeKeyReward, forfeited.String()),
			),
		)
		if penalty.IsPositive() {
			k.metrics.PenaltiesCollected.Add(intToFloat(penalty))
		}

		k.metrics.WithdrawalsTotal.Inc()
		k.metrics.TotalStaked.Set(intToFloat(state.TotalStaked))

		k.Logger(ctx).Info("emergency withdrawal",
			"staker", staker.String(),
			"returned", returned.String(),
			"forfeited", forfeited.String(),
		)
		return nil
	})
	if err != nil {
		return math.Int{}, math.Int{}, fmt.Errorf("EmergencyWithdraw: %w", err)
	}
	return returned, forfeited, nil
}

// FundRewards moves reward tokens from funder into the pool's reserve.
// Anyone may fund; the emission schedule decides how fast it drains.
func (k Keeper) FundRewards(ctx context.Context, funder sdk.AccAddress, amount math.Int) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrZeroAmount.Wrap("funding amount must be positive")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return fmt.Errorf("FundRewards: %w", err)
	}

	coins := sdk.NewCoins(sdk.NewCoin(params.RewardDenom, amount))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, funder, types.ModuleName, coins); err != nil {
		return types.ErrTransferFailed.Wrapf("fund rewards: %s", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFunded,
			sdk.NewAttribute(types.AttributeKeyFunder, funder.String()),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)

	k.Logger(ctx).Info("reward reserve funded",
		"funder", funder.String(),
		"amount", amount.String(),
	)
	return nil
}

// PendingReward returns what staker would receive from ClaimRewards right
// now, without mutating any state.
func (k Keeper) PendingReward(ctx context.Context, staker sdk.AccAddress) (math.Int, error) {
	state, err := k.GetPoolState(ctx)
	if err != nil {
		return math.Int{}, err
	}
	pos, found, err := k.GetPosition(ctx, staker)
	if err != nil {
		return math.Int{}, err
	}
	if !found {
		return math.ZeroInt(), nil
	}
	return rewards.Earned(state, pos.Position, k.blockUnix(ctx)), nil
}
