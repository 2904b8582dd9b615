package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/helix-protocol/helix/testutil/keeper"
	ammkeeper "github.com/helix-protocol/helix/x/amm/keeper"
	ammtypes "github.com/helix-protocol/helix/x/amm/types"
	"github.com/helix-protocol/helix/x/farm/keeper"
	"github.com/helix-protocol/helix/x/farm/types"
)

var (
	farmer  = sdk.AccAddress("farmer______________")
	sponsor = sdk.AccAddress("sponsor_____________")
)

func atTime(ctx sdk.Context, unix int64) sdk.Context {
	return ctx.WithBlockTime(time.Unix(unix, 0))
}

// setupLPFarm bootstraps an AMM pool, creates a farm over its LP shares, and
// funds the farm's reward reserve. The farmer ends up holding the pool's
// bootstrap LP shares.
func setupLPFarm(t *testing.T, farmK keeper.Keeper, ammK ammkeeper.Keeper, bank *testkeeper.MockBankKeeper, ctx sdk.Context) (uint64, string) {
	t.Helper()

	bank.FundAccount(farmer, sdk.NewCoins(
		sdk.NewCoin("uatom", math.NewInt(1_000_000)),
		sdk.NewCoin("uusdc", math.NewInt(1_000_000)),
	))
	pool, err := ammK.CreatePool(ctx, farmer, "uatom", "uusdc", math.NewInt(1_000_000), math.NewInt(1_000_000))
	require.NoError(t, err)

	lpDenom := pool.ShareDenom()
	farm, err := farmK.CreateFarm(ctx, sponsor, lpDenom, "urew", math.LegacyNewDec(1))
	require.NoError(t, err)

	bank.FundAccount(sponsor, sdk.NewCoins(sdk.NewCoin("urew", math.NewInt(1_000_000))))
	require.NoError(t, farmK.FundFarm(ctx, sponsor, farm.Id, math.NewInt(1_000_000)))

	return farm.Id, lpDenom
}

func TestCreateFarmOverLPShares(t *testing.T) {
	farmK, ammK, bank, ctx := testkeeper.FarmKeeper(t)
	farmID, lpDenom := setupLPFarm(t, farmK, ammK, bank, ctx)

	farm, err := farmK.GetFarm(ctx, farmID)
	require.NoError(t, err)
	require.Equal(t, lpDenom, farm.StakeDenom)
	require.Equal(t, "urew", farm.RewardDenom)
}

func TestCreateFarmRejectsDeadLPDenom(t *testing.T) {
	farmK, _, _, ctx := testkeeper.FarmKeeper(t)

	_, err := farmK.CreateFarm(ctx, sponsor, ammtypes.ShareDenom(99), "urew", math.LegacyNewDec(1))
	require.ErrorIs(t, err, types.ErrUnknownLPShare)
}

func TestCreateFarmRejectsDuplicate(t *testing.T) {
	farmK, _, _, ctx := testkeeper.FarmKeeper(t)

	_, err := farmK.CreateFarm(ctx, sponsor, "uhlx", "urew", math.LegacyNewDec(1))
	require.NoError(t, err)
	_, err = farmK.CreateFarm(ctx, sponsor, "uhlx", "urew", math.LegacyNewDec(2))
	require.ErrorIs(t, err, types.ErrFarmAlreadyExists)
}

func TestDepositLPSharesAndHarvest(t *testing.T) {
	farmK, ammK, bank, ctx := testkeeper.FarmKeeper(t)
	farmID, lpDenom := setupLPFarm(t, farmK, ammK, bank, ctx)

	total, err := farmK.Deposit(ctx, farmer, farmID, math.NewInt(1_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000), total)
	require.Equal(t, math.NewInt(999_000), bank.GetBalance(ctx, farmer, lpDenom).Amount)

	// Sole depositor for 600s at 1/sec earns the full emission, unboosted.
	base, paid, err := farmK.Harvest(atTime(ctx, 600), farmer, farmID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(600), base)
	require.Equal(t, math.NewInt(600), paid)
	require.Equal(t, math.NewInt(600), bank.GetBalance(ctx, farmer, "urew").Amount)

	// Nothing accrues between consecutive harvests in the same second.
	_, _, err = farmK.Harvest(atTime(ctx, 600), farmer, farmID)
	require.ErrorIs(t, err, types.ErrNothingToHarvest)
}

func TestBoostScalesHarvestOnly(t *testing.T) {
	farmK, ammK, bank, ctx := testkeeper.FarmKeeper(t)
	farmID, _ := setupLPFarm(t, farmK, ammK, bank, ctx)

	_, err := farmK.Deposit(ctx, farmer, farmID, math.NewInt(1_000))
	require.NoError(t, err)

	// A 2500 bps boost pays 125% of base at harvest, funded by the reserve.
	require.NoError(t, farmK.SetBoost(ctx, testkeeper.TestAuthority, farmID, farmer, 2500))

	base, paid, err := farmK.Harvest(atTime(ctx, 600), farmer, farmID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(600), base)
	require.Equal(t, math.NewInt(750), paid)

	// The boost does not change the accrual rate for anyone else: the farm's
	// accumulator advanced exactly as if no boost existed.
	farm, err := farmK.GetFarm(ctx, farmID)
	require.NoError(t, err)
	require.Equal(t, math.LegacyNewDecWithPrec(6, 1), farm.State.AccRewardPerShare)
}

func TestSetBoostBounds(t *testing.T) {
	farmK, ammK, bank, ctx := testkeeper.FarmKeeper(t)
	farmID, _ := setupLPFarm(t, farmK, ammK, bank, ctx)

	err := farmK.SetBoost(ctx, testkeeper.TestAuthority, farmID, farmer, 50_001)
	require.ErrorIs(t, err, types.ErrBoostTooHigh)

	err = farmK.SetBoost(ctx, farmer.String(), farmID, farmer, 100)
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestBoostSurvivesDeposit(t *testing.T) {
	farmK, ammK, bank, ctx := testkeeper.FarmKeeper(t)
	farmID, _ := setupLPFarm(t, farmK, ammK, bank, ctx)

	// Boost granted before the farmer ever deposits.
	require.NoError(t, farmK.SetBoost(ctx, testkeeper.TestAuthority, farmID, farmer, 10_000))

	_, err := farmK.Deposit(ctx, farmer, farmID, math.NewInt(500))
	require.NoError(t, err)

	pos, found, err := farmK.GetFarmPosition(ctx, farmID, farmer)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, uint64(10_000), pos.BoostBps)

	// 2x boost doubles the payout.
	base, paid, err := farmK.Harvest(atTime(ctx, 100), farmer, farmID)
	require.NoError(t, err)
	require.Equal(t, paid, base.MulRaw(2))
}

func TestWithdrawKeepsAccruedReward(t *testing.T) {
	farmK, ammK, bank, ctx := testkeeper.FarmKeeper(t)
	farmID, lpDenom := setupLPFarm(t, farmK, ammK, bank, ctx)

	_, err := farmK.Deposit(ctx, farmer, farmID, math.NewInt(1_000))
	require.NoError(t, err)

	// Withdrawing the full stake settles but does not pay; the reward stays
	// harvestable.
	require.NoError(t, farmK.Withdraw(atTime(ctx, 300), farmer, farmID, math.NewInt(1_000)))
	require.Equal(t, math.NewInt(1_000_000), bank.GetBalance(ctx, farmer, lpDenom).Amount)

	base, paid, err := farmK.Harvest(atTime(ctx, 300), farmer, farmID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(300), base)
	require.Equal(t, base, paid)

	// Fully drained position is gone.
	_, found, err := farmK.GetFarmPosition(ctx, farmID, farmer)
	require.NoError(t, err)
	require.False(t, found)
}

func TestWithdrawBoundsChecked(t *testing.T) {
	farmK, ammK, bank, ctx := testkeeper.FarmKeeper(t)
	farmID, _ := setupLPFarm(t, farmK, ammK, bank, ctx)

	_, err := farmK.Deposit(ctx, farmer, farmID, math.NewInt(100))
	require.NoError(t, err)

	err = farmK.Withdraw(ctx, farmer, farmID, math.NewInt(101))
	require.ErrorIs(t, err, types.ErrInsufficientStake)

	err = farmK.Withdraw(ctx, sponsor, farmID, math.NewInt(1))
	require.ErrorIs(t, err, types.ErrInsufficientStake)
}

func TestNilAmountsRejected(t *testing.T) {
	farmK, ammK, bank, ctx := testkeeper.FarmKeeper(t)
	farmID, _ := setupLPFarm(t, farmK, ammK, bank, ctx)

	// A zero-value math.Int errors like a zero amount instead of panicking
	// deeper in the arithmetic.
	_, err := farmK.Deposit(ctx, farmer, farmID, math.Int{})
	require.ErrorIs(t, err, types.ErrZeroAmount)

	err = farmK.Withdraw(ctx, farmer, farmID, math.Int{})
	require.ErrorIs(t, err, types.ErrZeroAmount)

	err = farmK.FundFarm(ctx, sponsor, farmID, math.Int{})
	require.ErrorIs(t, err, types.ErrZeroAmount)
}

func TestCompoundRequiresMatchingDenoms(t *testing.T) {
	farmK, ammK, bank, ctx := testkeeper.FarmKeeper(t)
	farmID, _ := setupLPFarm(t, farmK, ammK, bank, ctx)

	_, err := farmK.Deposit(ctx, farmer, farmID, math.NewInt(1_000))
	require.NoError(t, err)

	// The LP farm pays urew, stakes LP shares.
	_, _, err = farmK.Compound(atTime(ctx, 100), farmer, farmID)
	require.ErrorIs(t, err, types.ErrTokenMismatch)
}

func TestCompoundSameDenomFarm(t *testing.T) {
	farmK, _, bank, ctx := testkeeper.FarmKeeper(t)

	farm, err := farmK.CreateFarm(ctx, sponsor, "uhlx", "uhlx", math.LegacyNewDec(1))
	require.NoError(t, err)

	bank.FundAccount(farmer, sdk.NewCoins(sdk.NewCoin("uhlx", math.NewInt(1_000))))
	bank.FundAccount(sponsor, sdk.NewCoins(sdk.NewCoin("uhlx", math.NewInt(10_000))))
	require.NoError(t, farmK.FundFarm(ctx, sponsor, farm.Id, math.NewInt(10_000)))

	_, err = farmK.Deposit(ctx, farmer, farm.Id, math.NewInt(1_000))
	require.NoError(t, err)

	compounded, total, err := farmK.Compound(atTime(ctx, 500), farmer, farm.Id)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(500), compounded)
	require.Equal(t, math.NewInt(1_500), total)

	msg, broken := keeper.AllInvariants(farmK)(atTime(ctx, 500))
	require.False(t, broken, msg)
}

func TestSetFarmRateAppliesFromNow(t *testing.T) {
	farmK, ammK, bank, ctx := testkeeper.FarmKeeper(t)
	farmID, _ := setupLPFarm(t, farmK, ammK, bank, ctx)

	_, err := farmK.Deposit(ctx, farmer, farmID, math.NewInt(100))
	require.NoError(t, err)

	// 100s at 1/sec, then 100s at 5/sec.
	require.NoError(t, farmK.SetFarmRate(atTime(ctx, 100), testkeeper.TestAuthority, farmID, math.LegacyNewDec(5)))

	base, _, err := farmK.Harvest(atTime(ctx, 200), farmer, farmID)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(600), base)
}

func TestExportImportGenesisRoundTrip(t *testing.T) {
	farmK, ammK, bank, ctx := testkeeper.FarmKeeper(t)
	farmID, _ := setupLPFarm(t, farmK, ammK, bank, ctx)

	_, err := farmK.Deposit(atTime(ctx, 10), farmer, farmID, math.NewInt(1_000))
	require.NoError(t, err)

	exported, err := farmK.ExportGenesis(atTime(ctx, 10))
	require.NoError(t, err)
	require.NoError(t, exported.Validate())
	require.Len(t, exported.Farms, 1)
	require.Len(t, exported.Positions, 1)
	require.Equal(t, uint64(2), exported.NextFarmId)
}
