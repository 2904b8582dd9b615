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

// setupPool creates a 1M/2M uatom/uusdc pool and returns its id.
func setupPool(t *testing.T, k keeper.Keeper, bank *testkeeper.MockBankKeeper, ctx sdk.Context) uint64 {
	t.Helper()
	fundPair(bank, creator, 1_000_000, 2_000_000)
	pool, err := k.CreatePool(ctx, creator, "uatom", "uusdc", math.NewInt(1_000_000), math.NewInt(2_000_000))
	require.NoError(t, err)
	return pool.Id
}

func TestAddLiquidityClampsToPoolRatio(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	poolID := setupPool(t, k, bank, ctx)
	fundPair(bank, provider, 100_000, 300_000)

	// The pool ratio is 1:2; desiredB 300k exceeds the 200k the ratio allows,
	// so B is clamped and the surplus never leaves the provider's wallet.
	usedA, usedB, shares, err := k.AddLiquidity(ctx, provider, poolID,
		math.NewInt(100_000), math.NewInt(300_000), math.ZeroInt(), math.ZeroInt())
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100_000), usedA)
	require.Equal(t, math.NewInt(200_000), usedB)
	require.True(t, shares.IsPositive())

	require.Equal(t, math.NewInt(100_000), bank.GetBalance(ctx, provider, "uusdc").Amount)
	require.Equal(t, shares, k.GetLiquidity(ctx, poolID, provider))
}

func TestAddLiquidityClampsOtherSide(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	poolID := setupPool(t, k, bank, ctx)
	fundPair(bank, provider, 100_000, 100_000)

	// desiredB 100k only supports 50k of A at the 1:2 ratio.
	usedA, usedB, _, err := k.AddLiquidity(ctx, provider, poolID,
		math.NewInt(100_000), math.NewInt(100_000), math.ZeroInt(), math.ZeroInt())
	require.NoError(t, err)
	require.Equal(t, math.NewInt(50_000), usedA)
	require.Equal(t, math.NewInt(100_000), usedB)
}

func TestAddLiquidityRespectsMinimums(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	poolID := setupPool(t, k, bank, ctx)
	fundPair(bank, provider, 100_000, 300_000)

	// Clamped B of 200k is below the requested minimum of 250k.
	_, _, _, err := k.AddLiquidity(ctx, provider, poolID,
		math.NewInt(100_000), math.NewInt(300_000), math.ZeroInt(), math.NewInt(250_000))
	require.ErrorIs(t, err, types.ErrInsufficientAmount)
}

func TestRemoveLiquidityProportional(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	poolID := setupPool(t, k, bank, ctx)

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)

	// Creator burns half their shares for half the reserves. Bootstrap
	// shares are sqrt(2e12) = 1414213 (truncated), so the payout truncates
	// one unit short of an exact half.
	half := pool.TotalShares.QuoRaw(2)
	amountA, amountB, err := k.RemoveLiquidity(ctx, creator, poolID, half, math.ZeroInt(), math.ZeroInt())
	require.NoError(t, err)
	require.Equal(t, math.NewInt(499_999), amountA)
	require.Equal(t, math.NewInt(999_999), amountB)

	pool, err = k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(500_001), pool.ReserveA)
	require.Equal(t, math.NewInt(1_000_001), pool.ReserveB)
}

func TestLiquidityRoundTripNeverProfits(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	poolID := setupPool(t, k, bank, ctx)
	fundPair(bank, provider, 333_333, 666_667)

	usedA, usedB, shares, err := k.AddLiquidity(ctx, provider, poolID,
		math.NewInt(333_333), math.NewInt(666_667), math.ZeroInt(), math.ZeroInt())
	require.NoError(t, err)

	outA, outB, err := k.RemoveLiquidity(ctx, provider, poolID, shares, math.ZeroInt(), math.ZeroInt())
	require.NoError(t, err)

	// Truncation rounds against the provider; an immediate add/remove round
	// trip can never withdraw more than it deposited.
	require.True(t, outA.LTE(usedA), "withdrew %s A, deposited %s", outA, usedA)
	require.True(t, outB.LTE(usedB), "withdrew %s B, deposited %s", outB, usedB)
}

func TestRemoveLiquidityBoundsChecked(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	poolID := setupPool(t, k, bank, ctx)

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)

	_, _, err = k.RemoveLiquidity(ctx, creator, poolID, pool.TotalShares.AddRaw(1), math.ZeroInt(), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInsufficientShares)

	// A provider holding no shares cannot burn any; the share collection
	// fails at the bank layer.
	_, _, err = k.RemoveLiquidity(ctx, provider, poolID, math.NewInt(10), math.ZeroInt(), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInsufficientShares)
}

func TestRemoveLiquidityRespectsMinimums(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	poolID := setupPool(t, k, bank, ctx)

	_, _, err := k.RemoveLiquidity(ctx, creator, poolID, math.NewInt(100_000),
		math.NewInt(100_000), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrInsufficientAmount)
}

func TestAddLiquidityHugeInputErrorsInsteadOfPanicking(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	poolID := setupPool(t, k, bank, ctx)

	// 2^255 * reserveB exceeds the 256-bit range of math.Int in the ratio
	// clamp; bare Mul would panic before any balance check.
	huge := math.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), 255))
	require.NotPanics(t, func() {
		_, _, _, err := k.AddLiquidity(ctx, provider, poolID,
			huge, huge, math.ZeroInt(), math.ZeroInt())
		require.ErrorIs(t, err, types.ErrOverflow)
	})

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000_000), pool.ReserveA)
	require.Equal(t, math.NewInt(2_000_000), pool.ReserveB)
}

func TestShareSupplyTracksPoolTotal(t *testing.T) {
	k, bank, ctx := testkeeper.AmmKeeper(t)
	poolID := setupPool(t, k, bank, ctx)
	fundPair(bank, provider, 200_000, 400_000)

	_, _, _, err := k.AddLiquidity(ctx, provider, poolID,
		math.NewInt(200_000), math.NewInt(400_000), math.ZeroInt(), math.ZeroInt())
	require.NoError(t, err)

	_, _, err = k.RemoveLiquidity(ctx, creator, poolID, math.NewInt(250_000), math.ZeroInt(), math.ZeroInt())
	require.NoError(t, err)

	pool, err := k.GetPool(ctx, poolID)
	require.NoError(t, err)
	require.Equal(t, pool.TotalShares,
		bank.GetSupply(ctx, types.ShareDenom(poolID)).Amount)
}
