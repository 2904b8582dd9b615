package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	"github.com/helix-protocol/helix/x/amm/keeper"
	"github.com/helix-protocol/helix/x/amm/types"
)

// TestAuthority is the authority address used by all test keepers, the gov
// module account as on a real chain.
var TestAuthority = authtypes.NewModuleAddress(govtypes.ModuleName).String()

// newTestContext builds a fresh multistore-backed context for one store key.
func newTestContext(t testing.TB, storeKey storetypes.StoreKey) sdk.Context {
	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())
	return ctx.WithBlockTime(time.Unix(0, 0))
}

// AmmKeeper creates a test keeper for the amm module backed by a mock bank
func AmmKeeper(t testing.TB) (keeper.Keeper, *MockBankKeeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	ctx := newTestContext(t, storeKey)

	bank := NewMockBankKeeper()
	k := keeper.NewKeeper(types.ModuleCdc, storeKey, bank, TestAuthority)

	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))
	return k, bank, ctx
}
