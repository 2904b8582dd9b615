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
	"github.com/stretchr/testify/require"

	ammkeeper "github.com/helix-protocol/helix/x/amm/keeper"
	ammtypes "github.com/helix-protocol/helix/x/amm/types"
	"github.com/helix-protocol/helix/x/farm/keeper"
	"github.com/helix-protocol/helix/x/farm/types"
)

// FarmKeeper creates a test keeper for the farm module wired to a live amm
// keeper and a shared mock bank, so LP-share farms can be exercised end to
// end.
func FarmKeeper(t testing.TB) (keeper.Keeper, ammkeeper.Keeper, *MockBankKeeper, sdk.Context) {
	farmStoreKey := storetypes.NewKVStoreKey(types.StoreKey)
	ammStoreKey := storetypes.NewKVStoreKey(ammtypes.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(farmStoreKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(ammStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger()).
		WithBlockTime(time.Unix(0, 0))

	bank := NewMockBankKeeper()
	ammK := ammkeeper.NewKeeper(ammtypes.ModuleCdc, ammStoreKey, bank, TestAuthority)
	farmK := keeper.NewKeeper(types.ModuleCdc, farmStoreKey, bank, ammK, TestAuthority)

	require.NoError(t, ammK.InitGenesis(ctx, *ammtypes.DefaultGenesis()))
	require.NoError(t, farmK.InitGenesis(ctx, *types.DefaultGenesis()))
	return farmK, ammK, bank, ctx
}
