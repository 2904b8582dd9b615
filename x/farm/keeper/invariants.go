package keeper

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/helix-protocol/helix/x/farm/types"
)

// RegisterInvariants registers all farm invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "position-sums", PositionSumsInvariant(k))
	ir.RegisterRoute(types.ModuleName, "deposit-balances", DepositBalancesInvariant(k))
}

// AllInvariants runs all invariants of the farm module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		if msg, broken := PositionSumsInvariant(k)(ctx); broken {
			return msg, broken
		}
		return DepositBalancesInvariant(k)(ctx)
	}
}

// PositionSumsInvariant checks, per farm, that the sum of positions equals
// the farm's total staked.
func PositionSumsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		for _, farm := range k.GetAllFarms(ctx) {
			sum := math.ZeroInt()
			err := k.IterateFarmPositions(ctx, farm.Id, func(addr sdk.AccAddress, pos types.FarmPosition) bool {
				sum = sum.Add(pos.Position.Amount)
				return false
			})
			if err != nil {
				return sdk.FormatInvariant(types.ModuleName, "position-sums",
					fmt.Sprintf("farm %d: failed to iterate positions: %v", farm.Id, err)), true
			}
			if !sum.Equal(farm.State.TotalStaked) {
				return sdk.FormatInvariant(types.ModuleName, "position-sums",
					fmt.Sprintf("farm %d: sum of positions %s, total staked %s",
						farm.Id, sum, farm.State.TotalStaked)), true
			}
		}
		return sdk.FormatInvariant(types.ModuleName, "position-sums", "all farms consistent"), false
	}
}

// DepositBalancesInvariant checks that the module account covers every
// farm's total staked, summed per stake denom.
func DepositBalancesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		required := make(map[string]math.Int)
		for _, farm := range k.GetAllFarms(ctx) {
			cur, ok := required[farm.StakeDenom]
			if !ok {
				cur = math.ZeroInt()
			}
			required[farm.StakeDenom] = cur.Add(farm.State.TotalStaked)
		}

		moduleAddr := k.GetModuleAddress()
		for denom, amount := range required {
			balance := k.bankKeeper.GetBalance(ctx, moduleAddr, denom)
			if balance.Amount.LT(amount) {
				return sdk.FormatInvariant(types.ModuleName, "deposit-balances",
					fmt.Sprintf("module balance %s below required %s%s", balance, amount, denom)), true
			}
		}
		return sdk.FormatInvariant(types.ModuleName, "deposit-balances", "all deposits covered"), false
	}
}
