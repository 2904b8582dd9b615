package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper is the fungible-token ledger the AMM consumes. Reserves and LP
// share coins live in the module account; shares are minted and burned
// through the bank supply so that share conservation is a supply invariant.
type BankKeeper interface {
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	MintCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
	BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	GetSupply(ctx context.Context, denom string) sdk.Coin
}

// AMMKeeperV1 is the interface other modules (farm, oracle router) consume.
type AMMKeeperV1 interface {
	GetPool(ctx context.Context, poolID uint64) (Pool, error)
	SimulateSwap(ctx context.Context, poolID uint64, tokenIn string, amountIn sdk.Coin) (sdk.Coin, error)
}
