package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/helix-protocol/helix/testutil/keeper"
	"github.com/helix-protocol/helix/x/amm/keeper"
	"github.com/helix-protocol/helix/x/amm/types"
)

var (
	creator  = sdk.AccAddress("creator_____________")
	provider = sdk.AccAddress("provider____________")
	trader   = sdk.AccAddress("trader______________")
)

func fundPair(bank *testkeeper.MockBankKeeper, addr sdk.AccAddress, amountA, amountB int64) {
	bank.FundAccount(addr, sdk.NewCoins(
		sdk.NewCoin("uatom", math.NewInt(amountA)),
		sdk.NewCoin("uusdc", math.NewInt(amountB)),
	))
}

func TestCreatePoolBootstrap(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	fundPair(bank, creator, 1_000_000, 1_000_000)

	pool, err := k.CreatePool(ctx, creator, "uatom", "uusdc", math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.NoError(t, err)
	require.Equal(t, uint64(1), pool.Id)

	// Bootstrap shares are the geometric mean: sqrt(1e6 * 1e6) = 1e6.
	require.Equal(t, math.NewInt(1_000_000), pool.TotalShares)
	require.Equal(t, math.NewInt(1_000_000),
		bank.GetBalance(ctx, creator, types.ShareDenom(pool.Id)).Amount)

	// Reserves moved into the module account.
	require.Equal(t, math.NewInt(1_000_000),
		bank.GetBalance(ctx, k.GetModuleAddress(), "uatom").Amount)
	require.True(t, bank.GetBalance(ctx, creator, "uatom").Amount.IsZero())
}

func TestCreatePoolOrdersTokens(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	fundPair(bank, creator, 2_000_000, 1_000_000)

	// Pass the pair in reverse order; amounts must follow their tokens.
	pool, err := k.CreatePool(ctx, creator, "uusdc", "uatom", math.NewInt(1_000_000), math.NewInt(2_000_000))
	require.NoError(t, err)
	require.Equal(t, "uatom", pool.TokenA)
	require.Equal(t, "uusdc", pool.TokenB)
	require.Equal(t, math.NewInt(2_000_000), pool.ReserveA)
	require.Equal(t, math.NewInt(1_000_000), pool.ReserveB)
}

func TestCreatePoolRejectsDuplicatePair(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	fundPair(bank, creator, 4_000_000, 4_000_000)

	_, err := k.CreatePool(ctx, creator, "uatom", "uusdc", math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.NoError(t, err)

	_, err = k.CreatePool(ctx, creator, "uatom", "uusdc", math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.ErrorIs(t, err, types.ErrPoolAlreadyExists)

	// The index is order-independent.
	_, err = k.CreatePool(ctx, creator, "uusdc", "uatom", math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.ErrorIs(t, err, types.ErrPoolAlreadyExists)
}

func TestCreatePoolValidation(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	fundPair(bank, creator, 1_000_000, 1_000_000)

	_, err := k.CreatePool(ctx, creator, "uatom", "uatom", math.NewInt(1_000), math.NewInt(1_000))
	require.ErrorIs(t, err, types.ErrInvalidTokenPair)

	_, err = k.CreatePool(ctx, creator, "uatom", "uusdc", math.NewInt(0), math.NewInt(1_000))
	require.ErrorIs(t, err, types.ErrInvalidAmount)

	// Default minimum initial liquidity is 1000 per side.
	_, err = k.CreatePool(ctx, creator, "uatom", "uusdc", math.NewInt(500), math.NewInt(1_000_000))
	require.ErrorIs(t, err, types.ErrInsufficientLiquidity)
}

func TestGetPoolByTokens(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	fundPair(bank, creator, 1_000_000, 1_000_000)

	created, err := k.CreatePool(ctx, creator, "uatom", "uusdc", math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.NoError(t, err)

	found, err := k.GetPoolByTokens(ctx, "uusdc", "uatom")
	require.NoError(t, err)
	require.Equal(t, created.Id, found.Id)

	_, err = k.GetPoolByTokens(ctx, "uatom", "ueth")
	require.ErrorIs(t, err, types.ErrPoolNotFound)
}

func TestGetPoolIDFromShareDenom(t *testing.T) {
	id, ok := keeper.GetPoolIDFromShareDenom(types.ShareDenom(42))
	require.True(t, ok)
	require.Equal(t, uint64(42), id)

	_, ok = keeper.GetPoolIDFromShareDenom("uatom")
	require.False(t, ok)
	_, ok = keeper.GetPoolIDFromShareDenom("amm/pool/")
	require.False(t, ok)
	_, ok = keeper.GetPoolIDFromShareDenom("amm/pool/0")
	require.False(t, ok)

	// Trailing garbage after the ID is not a share denom.
	_, ok = keeper.GetPoolIDFromShareDenom("amm/pool/12abc")
	require.False(t, ok)
	_, ok = keeper.GetPoolIDFromShareDenom("amm/pool/1 2")
	require.False(t, ok)
	_, ok = keeper.GetPoolIDFromShareDenom("amm/pool/-1")
	require.False(t, ok)
}

func TestLPShareExistsRejectsMalformedDenoms(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	fundPair(bank, creator, 1_000_000, 1_000_000)

	pool, err := k.CreatePool(ctx, creator, "uatom", "uusdc", math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.NoError(t, err)

	require.True(t, k.LPShareExists(ctx, types.ShareDenom(pool.Id)))
	require.False(t, k.LPShareExists(ctx, types.ShareDenom(pool.Id)+"abc"))
	require.False(t, k.LPShareExists(ctx, types.ShareDenom(99)))
}

func TestExportGenesisCoversLivePools(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	fundPair(bank, creator, 2_000_000, 2_000_000)
	bank.FundAccount(creator, sdk.NewCoins(sdk.NewCoin("ueth", math.NewInt(1_000_000))))

	_, err := k.CreatePool(ctx, creator, "uatom", "uusdc", math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.NoError(t, err)
	_, err = k.CreatePool(ctx, creator, "uatom", "ueth", math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.NoError(t, err)

	genState, err := k.ExportGenesis(ctx)
	require.NoError(t, err)
	require.NoError(t, genState.Validate())
	require.Len(t, genState.Pools, 2)
	require.Equal(t, uint64(3), genState.NextPoolId)
}
