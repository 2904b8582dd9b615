package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/helix-protocol/helix/testutil/keeper"
	ammkeeper "github.com/helix-protocol/helix/x/amm/keeper"
	"github.com/helix-protocol/helix/x/oracle/keeper"
	"github.com/helix-protocol/helix/x/oracle/types"
)

var (
	feeder   = sdk.AccAddress("feeder______________")
	trader   = sdk.AccAddress("trader______________")
	creator  = sdk.AccAddress("creator_____________")
	stranger = sdk.AccAddress("stranger____________")
)

func atTime(ctx sdk.Context, unix int64) sdk.Context {
	return ctx.WithBlockTime(time.Unix(unix, 0))
}

// setupWithFeeder registers the test feeder through the authority.
func setupWithFeeder(t *testing.T) (keeper.Keeper, ammkeeper.Keeper, *testkeeper.MockBankKeeper, sdk.Context) {
	k, ammK, bank, ctx := testkeeper.OracleKeeper(t)
	require.NoError(t, k.SetFeeder(ctx, testkeeper.TestAuthority, feeder.String()))
	return k, ammK, bank, ctx
}

func TestSetAndGetPrice(t *testing.T) {
	k, _, _, ctx := setupWithFeeder(t)

	ctx = atTime(ctx, 100)
	require.NoError(t, k.SetPrice(ctx, feeder, "uatom", math.LegacyMustNewDecFromStr("9.25")))

	price, err := k.GetPrice(ctx, "uatom")
	require.NoError(t, err)
	require.Equal(t, "uatom", price.Asset)
	require.Equal(t, math.LegacyMustNewDecFromStr("9.25"), price.Price)
	require.Equal(t, int64(100), price.UpdatedUnix)

	_, err = k.GetPrice(ctx, "uusdc")
	require.ErrorIs(t, err, types.ErrPriceNotFound)
}

func TestSetPriceFeederOnly(t *testing.T) {
	k, _, _, ctx := setupWithFeeder(t)

	err := k.SetPrice(ctx, stranger, "uatom", math.LegacyOneDec())
	require.ErrorIs(t, err, types.ErrNotFeeder)
}

func TestSetPriceDisabledWithoutFeeder(t *testing.T) {
	k, _, _, ctx := testkeeper.OracleKeeper(t)

	err := k.SetPrice(ctx, feeder, "uatom", math.LegacyOneDec())
	require.ErrorIs(t, err, types.ErrNotFeeder)
}

func TestSetPriceRejectsBadInput(t *testing.T) {
	k, _, _, ctx := setupWithFeeder(t)

	err := k.SetPrice(ctx, feeder, "uatom", math.LegacyZeroDec())
	require.ErrorIs(t, err, types.ErrInvalidPrice)

	err = k.SetPrice(ctx, feeder, "", math.LegacyOneDec())
	require.ErrorIs(t, err, types.ErrInvalidAsset)
}

func TestGetPriceStaleness(t *testing.T) {
	k, _, _, ctx := setupWithFeeder(t)

	require.NoError(t, k.SetPrice(atTime(ctx, 100), feeder, "uatom", math.LegacyOneDec()))

	// Inside the default 3600s window.
	_, err := k.GetPrice(atTime(ctx, 3700), "uatom")
	require.NoError(t, err)

	// One second past it.
	_, err = k.GetPrice(atTime(ctx, 3701), "uatom")
	require.ErrorIs(t, err, types.ErrStalePrice)

	// A fresh quote clears the staleness.
	require.NoError(t, k.SetPrice(atTime(ctx, 3701), feeder, "uatom", math.LegacyOneDec()))
	_, err = k.GetPrice(atTime(ctx, 3701), "uatom")
	require.NoError(t, err)
}

func TestGetPriceZeroAgeNeverStale(t *testing.T) {
	k, _, _, ctx := setupWithFeeder(t)
	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	params.MaxPriceAgeSeconds = 0
	require.NoError(t, k.UpdateParams(ctx, testkeeper.TestAuthority, params))

	require.NoError(t, k.SetPrice(atTime(ctx, 100), feeder, "uatom", math.LegacyOneDec()))
	_, err = k.GetPrice(atTime(ctx, 1_000_000), "uatom")
	require.NoError(t, err)
}

func TestSetFeederAuthorityGated(t *testing.T) {
	k, _, _, ctx := testkeeper.OracleKeeper(t)

	err := k.SetFeeder(ctx, stranger.String(), feeder.String())
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

// setupRoutedPool creates a 1M/1M uatom/uusdc pool behind the router.
func setupRoutedPool(t *testing.T, ammK ammkeeper.Keeper, bank *testkeeper.MockBankKeeper, ctx sdk.Context) uint64 {
	t.Helper()
	bank.FundAccount(creator, sdk.NewCoins(
		sdk.NewCoin("uatom", math.NewInt(1_000_000)),
		sdk.NewCoin("uusdc", math.NewInt(1_000_000)),
	))
	pool, err := ammK.CreatePool(ctx, creator, "uatom", "uusdc", math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.NoError(t, err)
	return pool.Id
}

func TestSwapWithDeadlineRoutes(t *testing.T) {
	k, ammK, bank, ctx := setupWithFeeder(t)
	poolID := setupRoutedPool(t, ammK, bank, ctx)
	bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(100_000))))

	// Same integer formula as swapping against the AMM directly.
	ctx = atTime(ctx, 500)
	out, err := k.SwapWithDeadline(ctx, trader, poolID, "uatom",
		math.NewInt(100_000), math.ZeroInt(), 500)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(90_661), out)
	require.Equal(t, math.NewInt(90_661), bank.GetBalance(ctx, trader, "uusdc").Amount)
}

func TestSwapWithDeadlineExpired(t *testing.T) {
	k, ammK, bank, ctx := setupWithFeeder(t)
	poolID := setupRoutedPool(t, ammK, bank, ctx)
	bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(100_000))))

	_, err := k.SwapWithDeadline(atTime(ctx, 501), trader, poolID, "uatom",
		math.NewInt(100_000), math.ZeroInt(), 500)
	require.ErrorIs(t, err, types.ErrDeadlineExceeded)

	// Nothing moved.
	require.Equal(t, math.NewInt(100_000), bank.GetBalance(ctx, trader, "uatom").Amount)
}

func TestSwapWithDeadlineZeroMeansNone(t *testing.T) {
	k, ammK, bank, ctx := setupWithFeeder(t)
	poolID := setupRoutedPool(t, ammK, bank, ctx)
	bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(100_000))))

	_, err := k.SwapWithDeadline(atTime(ctx, 1_000_000), trader, poolID, "uatom",
		math.NewInt(100_000), math.ZeroInt(), 0)
	require.NoError(t, err)
}

func TestQuoteSwapMatchesExecution(t *testing.T) {
	k, ammK, bank, ctx := setupWithFeeder(t)
	poolID := setupRoutedPool(t, ammK, bank, ctx)
	bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(100_000))))

	quoted, err := k.QuoteSwap(ctx, poolID, "uatom", math.NewInt(100_000))
	require.NoError(t, err)
	require.Equal(t, "uusdc", quoted.Denom)

	out, err := k.SwapWithDeadline(ctx, trader, poolID, "uatom",
		math.NewInt(100_000), math.ZeroInt(), 0)
	require.NoError(t, err)
	require.Equal(t, quoted.Amount, out)
}

func TestOracleGenesisRoundTrip(t *testing.T) {
	k, _, _, ctx := setupWithFeeder(t)
	require.NoError(t, k.SetPrice(atTime(ctx, 100), feeder, "uatom", math.LegacyMustNewDecFromStr("9.25")))
	require.NoError(t, k.SetPrice(atTime(ctx, 200), feeder, "uusdc", math.LegacyOneDec()))

	exported, err := k.ExportGenesis(ctx)
	require.NoError(t, err)
	require.NoError(t, exported.Validate())
	require.Len(t, exported.Prices, 2)

	k2, _, _, ctx2 := testkeeper.OracleKeeper(t)
	require.NoError(t, k2.InitGenesis(ctx2, *exported))
	reexported, err := k2.ExportGenesis(ctx2)
	require.NoError(t, err)
	require.Equal(t, exported, reexported)
}
