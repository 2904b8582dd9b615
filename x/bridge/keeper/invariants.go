package keeper

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/helix-protocol/helix/x/bridge/types"
)

// RegisterInvariants registers the bridge module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "escrow-backing", EscrowBackingInvariant(k))
}

// EscrowBackingInvariant checks the module account holds at least the
// outstanding escrow total for every denom.
func EscrowBackingInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		moduleAddr := k.GetModuleAddress()
		var broken bool
		var msg string
		k.IterateEscrowed(ctx, func(denom string, amount math.Int) bool {
			balance := k.bankKeeper.GetBalance(ctx, moduleAddr, denom)
			if balance.Amount.LT(amount) {
				broken = true
				msg = "module holds " + balance.Amount.String() + denom +
					" but escrow total is " + amount.String() + denom
				return true
			}
			return false
		})
		if broken {
			return sdk.FormatInvariant(types.ModuleName, "escrow-backing", msg), true
		}
		return sdk.FormatInvariant(types.ModuleName, "escrow-backing", "escrow fully backed"), false
	}
}

// AllInvariants runs all bridge invariants
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		return EscrowBackingInvariant(k)(ctx)
	}
}
