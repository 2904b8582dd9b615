package keeper

import (
	"testing"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/helix-protocol/helix/x/bridge/keeper"
	"github.com/helix-protocol/helix/x/bridge/types"
)

// BridgeKeeper creates a test keeper for the bridge module backed by a mock
// bank
func BridgeKeeper(t testing.TB) (keeper.Keeper, *MockBankKeeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	ctx := newTestContext(t, storeKey)

	bank := NewMockBankKeeper()
	k := keeper.NewKeeper(types.ModuleCdc, storeKey, bank, TestAuthority)

	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))
	return k, bank, ctx
}
