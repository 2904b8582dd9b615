package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/helix-protocol/helix/x/stakepool/types"
)

// RegisterInvariants registers all stakepool invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "position-sum", PositionSumInvariant(k))
	ir.RegisterRoute(types.ModuleName, "staked-balance", StakedBalanceInvariant(k))
}

// AllInvariants runs all invariants of the stakepool module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		if msg, broken := PositionSumInvariant(k)(ctx); broken {
			return msg, broken
		}
		return StakedBalanceInvariant(k)(ctx)
	}
}

// PositionSumInvariant checks that the sum of all stored positions equals the
// accumulator's total staked.
func PositionSumInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		state, err := k.GetPoolState(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "position-sum",
				fmt.Sprintf("failed to load pool state: %v", err)), true
		}

		sum := math.ZeroInt()
		err = k.IteratePositions(ctx, func(addr sdk.AccAddress, pos types.StakePosition) bool {
			sum = sum.Add(pos.Position.Amount)
			return false
		})
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "position-sum",
				fmt.Sprintf("failed to iterate positions: %v", err)), true
		}

		broken := !sum.Equal(state.TotalStaked)
		return sdk.FormatInvariant(types.ModuleName, "position-sum",
			fmt.Sprintf("sum of positions %s, total staked %s", sum, state.TotalStaked)), broken
	}
}

// StakedBalanceInvariant checks that the module account holds at least the
// total staked amount in the stake denom. The balance may exceed it by
// retained penalties and, when the denoms match, the reward reserve.
func StakedBalanceInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		params, err := k.GetParams(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "staked-balance",
				fmt.Sprintf("failed to load params: %v", err)), true
		}
		state, err := k.GetPoolState(ctx)
		if err != nil {
			return sdk.FormatInvariant(types.ModuleName, "staked-balance",
				fmt.Sprintf("failed to load pool state: %v", err)), true
		}

		balance := k.bankKeeper.GetBalance(ctx, k.GetModuleAddress(), params.StakeDenom)
		broken := balance.Amount.LT(state.TotalStaked)
		return sdk.FormatInvariant(types.ModuleName, "staked-balance",
			fmt.Sprintf("module balance %s, total staked %s%s",
				balance, state.TotalStaked, params.StakeDenom)), broken
	}
}
