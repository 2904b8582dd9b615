package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/helix-protocol/helix/x/amm/types"
)

// RegisterInvariants registers all amm invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "module-reserves", ModuleReservesInvariant(k))
	ir.RegisterRoute(types.ModuleName, "share-supply", ShareSupplyInvariant(k))
	ir.RegisterRoute(types.ModuleName, "pool-state", PoolStateInvariant(k))
}

// AllInvariants runs all invariants of the amm module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := ModuleReservesInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		res, stop = ShareSupplyInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return PoolStateInvariant(k)(ctx)
	}
}

// ModuleReservesInvariant checks that the module account holds at least the
// recorded reserves of every pool. Multiple pools may share a denom, so the
// balance is compared against the summed reserves per denom.
func ModuleReservesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		required := make(map[string]sdk.Coin)
		for _, pool := range k.GetAllPools(ctx) {
			for _, side := range []struct {
				denom   string
				reserve sdk.Coin
			}{
				{pool.TokenA, sdk.NewCoin(pool.TokenA, pool.ReserveA)},
				{pool.TokenB, sdk.NewCoin(pool.TokenB, pool.ReserveB)},
			} {
				if have, ok := required[side.denom]; ok {
					required[side.denom] = have.Add(side.reserve)
				} else {
					required[side.denom] = side.reserve
				}
			}
		}

		moduleAddr := k.GetModuleAddress()
		for denom, want := range required {
			balance := k.bankKeeper.GetBalance(ctx, moduleAddr, denom)
			if balance.Amount.LT(want.Amount) {
				count++
				msg += fmt.Sprintf("module balance for %s (%s) < summed reserves (%s)\n",
					denom, balance.Amount.String(), want.Amount.String())
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "module-reserves",
			fmt.Sprintf("found %d denoms with under-collateralized reserves\n%s", count, msg),
		), broken
	}
}

// ShareSupplyInvariant checks that the bank supply of every pool's share
// denom equals the pool's recorded total shares, enforced through the
// mint/burn path.
func ShareSupplyInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		for _, pool := range k.GetAllPools(ctx) {
			supply := k.bankKeeper.GetSupply(ctx, pool.ShareDenom())
			if !supply.Amount.Equal(pool.TotalShares) {
				count++
				msg += fmt.Sprintf("pool %d: share supply %s != total shares %s\n",
					pool.Id, supply.Amount.String(), pool.TotalShares.String())
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "share-supply",
			fmt.Sprintf("found %d pools with mismatched share supply\n%s", count, msg),
		), broken
	}
}

// PoolStateInvariant checks structural validity of every stored pool.
func PoolStateInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var (
			msg   string
			count int
		)

		for _, pool := range k.GetAllPools(ctx) {
			if err := pool.Validate(); err != nil {
				count++
				msg += fmt.Sprintf("pool %d: %v\n", pool.Id, err)
			}
		}

		broken := count != 0
		return sdk.FormatInvariant(
			types.ModuleName, "pool-state",
			fmt.Sprintf("found %d structurally invalid pools\n%s", count, msg),
		), broken
	}
}
