package keeper_test

import (
	"math/big"
	"testing"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/helix-protocol/helix/testutil/keeper"
	"github.com/helix-protocol/helix/x/amm/keeper"
	"github.com/helix-protocol/helix/x/amm/types"
)

// setupBalancedPool creates a 1M/1M uatom/uusdc pool.
func setupBalancedPool(t *testing.T, k keeper.Keeper, bank *testkeeper.MockBankKeeper, ctx sdk.Context) uint64 {
	t.Helper()
	fundPair(bank, creator, 1_000_000, 1_000_000)
	pool, err := k.CreatePool(ctx, creator, "uatom", "uusdc", math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.NoError(t, err)
	return pool.Id
}

func TestSwapIntegerFormula(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	poolID := setupBalancedPool(t, k, bank, ctx)
	bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(100_000))))

	// inWithFee = 100000 * 997 / 1000 = 99700
	// out       = 99700 * 1000000 / (1000000 + 99700) = 90661
	out, err := k.ExecuteSwap(ctx, trader, trader, poolID, "uatom",
		math.NewInt(100_000), math.ZeroInt())
	require.NoError(t, err)
	require.Equal(t, math.NewInt(90_661), out)

	require.Equal(t, math.NewInt(90_661), bank.GetBalance(ctx, trader, "uusdc").Amount)
	require.True(t, bank.GetBalance(ctx, trader, "uatom").Amount.IsZero())

	// The full input, fee included, landed in the reserve.
	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_100_000), pool.ReserveA)
	require.Equal(t, math.NewInt(909_339), pool.ReserveB)
}

func TestSwapProductNeverDecreases(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	poolID := setupBalancedPool(t, k, bank, ctx)
	bank.FundAccount(trader, sdk.NewCoins(
		sdk.NewCoin("uatom", math.NewInt(1_000_000)),
		sdk.NewCoin("uusdc", math.NewInt(1_000_000)),
	))

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	lastK := pool.Product()

	// Alternate directions with odd sizes; the fee must keep the product
	// non-decreasing at every step.
	for i, swap := range []struct {
		tokenIn string
		amount  int64
	}{
		{"uatom", 12_345},
		{"uusdc", 99_999},
		{"uatom", 777},
		{"uusdc", 345_678},
		{"uatom", 1},
	} {
		if swap.amount == 1 {
			// A 1-unit input truncates to zero after the fee.
			_, err := k.ExecuteSwap(ctx, trader, trader, poolID, swap.tokenIn,
				math.NewInt(swap.amount), math.ZeroInt())
			require.ErrorIs(t, err, types.ErrInvalidAmount)
			continue
		}

		_, err := k.ExecuteSwap(ctx, trader, trader, poolID, swap.tokenIn,
			math.NewInt(swap.amount), math.ZeroInt())
		require.NoError(t, err, "swap %d", i)

		pool, err := k.GetPool(ctx, poolID)
		require.NoError(t, err)
		newK := pool.Product()
		require.True(t, newK.GTE(lastK), "swap %d shrank the product: %s -> %s", i, lastK, newK)
		lastK = newK
	}
}

func TestSwapSlippageProtection(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	poolID := setupBalancedPool(t, k, bank, ctx)
	bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(100_000))))

	_, err := k.ExecuteSwap(ctx, trader, trader, poolID, "uatom",
		math.NewInt(100_000), math.NewInt(90_662))
	require.ErrorIs(t, err, types.ErrSlippageExceeded)

	// Nothing moved.
	require.Equal(t, math.NewInt(100_000), bank.GetBalance(ctx, trader, "uatom").Amount)
	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000_000), pool.ReserveA)
}

func TestSwapRejectsForeignToken(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	poolID := setupBalancedPool(t, k, bank, ctx)
	bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin("ueth", math.NewInt(1_000))))

	_, err := k.ExecuteSwap(ctx, trader, trader, poolID, "ueth",
		math.NewInt(1_000), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInvalidTokenPair)
}

func TestSwapBothDirections(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	poolID := setupBalancedPool(t, k, bank, ctx)
	bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin("uusdc", math.NewInt(50_000))))

	// Selling the B side buys the A side.
	out, err := k.ExecuteSwap(ctx, trader, trader, poolID, "uusdc",
		math.NewInt(50_000), math.ZeroInt())
	require.NoError(t, err)
	require.True(t, out.IsPositive())
	require.Equal(t, out, bank.GetBalance(ctx, trader, "uatom").Amount)

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_050_000), pool.ReserveB)
	require.Equal(t, math.NewInt(1_000_000).Sub(out), pool.ReserveA)
}

func TestSimulateSwapMatchesExecution(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	poolID := setupBalancedPool(t, k, bank, ctx)
	bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(100_000))))

	simulated, err := k.SimulateSwap(ctx, poolID, "uatom", sdk.NewCoin("uatom", math.NewInt(100_000)))
	require.NoError(t, err)
	require.Equal(t, "uusdc", simulated.Denom)

	executed, err := k.ExecuteSwap(ctx, trader, trader, poolID, "uatom",
		math.NewInt(100_000), math.ZeroInt())
	require.NoError(t, err)
	require.Equal(t, simulated.Amount, executed)
}

func TestSwapHugeInputErrorsInsteadOfPanicking(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	poolID := setupBalancedPool(t, k, bank, ctx)

	// 2^255 passes the sign checks but 997 * 2^255 exceeds the 256-bit
	// range of math.Int; bare Mul would panic here.
	huge := math.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), 255))
	require.NotPanics(t, func() {
		_, err := k.ExecuteSwap(ctx, trader, trader, poolID, "uatom", huge, math.ZeroInt())
		require.ErrorIs(t, err, types.ErrOverflow)
	})

	// Nothing moved.
	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000_000), pool.ReserveA)
	require.Equal(t, math.NewInt(1_000_000), pool.ReserveB)
}

func TestInvariantsHoldAfterTrading(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	poolID := setupBalancedPool(t, k, bank, ctx)
	fundPair(bank, provider, 500_000, 500_000)
	bank.FundAccount(trader, sdk.NewCoins(sdk.NewCoin("uatom", math.NewInt(200_000))))

	_, _, _, err := k.AddLiquidity(ctx, provider, poolID,
		math.NewInt(500_000), math.NewInt(500_000), math.ZeroInt(), math.ZeroInt())
	require.NoError(t, err)
	_, err = k.ExecuteSwap(ctx, trader, trader, poolID, "uatom",
		math.NewInt(200_000), math.ZeroInt())
	require.NoError(t, err)
	_, _, err = k.RemoveLiquidity(ctx, provider, poolID, math.NewInt(100_000), math.ZeroInt(), math.ZeroInt())
	require.NoError(t, err)

	msg, broken := keeper.AllInvariants(k)(ctx)
	require.False(t, broken, msg)
}
