package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	testkeeper "github.com/helix-protocol/helix/testutil/keeper"
	"github.com/helix-protocol/helix/x/stakepool/keeper"
	"github.com/helix-protocol/helix/x/stakepool/types"
)

var (
	alice = sdk.AccAddress("alice_______________")
	bob   = sdk.AccAddress("bob_________________")
	carol = sdk.AccAddress("carol_______________")
)

func setupWithRate(t *testing.T, ratePerSec int64) (keeper.Keeper, *testkeeper.MockBankKeeper, sdk.Context) {
	k, bank, ctx := testkeeper.StakepoolKeeper(t)
	require.NoError(t, k.SetEmissionRate(ctx, testkeeper.TestAuthority, math.LegacyNewDec(ratePerSec)))
	return k, bank, ctx
}

func atTime(ctx sdk.Context, unix int64) sdk.Context {
	return ctx.WithBlockTime(time.Unix(unix, 0))
}

func fund(bank *testkeeper.MockBankKeeper, addr sdk.AccAddress, amount int64) {
	bank.FundAccount(addr, sdk.NewCoins(sdk.NewCoin(types.DefaultStakeDenom, math.NewInt(amount))))
}

func TestStakeAndAccrue(t *testing.T) {
	k, bank, ctx := setupWithRate(t, 1)
	fund(bank, alice, 1_000)

	total, err := k.Stake(ctx, alice, math.NewInt(1_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(1_000), total)

	// Stake left alice's wallet and sits in the module account.
	require.True(t, bank.GetBalance(ctx, alice, types.DefaultStakeDenom).Amount.IsZero())
	require.Equal(t, math.NewInt(1_000),
		bank.GetBalance(ctx, k.GetModuleAddress(), types.DefaultStakeDenom).Amount)

	// Sole staker for an hour at 1/sec earns the full emission.
	pending, err := k.PendingReward(atTime(ctx, 3600), alice)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(3_600), pending)
}

func TestClaimPaysOutAndResets(t *testing.T) {
	k, bank, ctx := setupWithRate(t, 1)
	fund(bank, alice, 1_000)
	bank.FundModule(types.ModuleName, sdk.NewCoins(sdk.NewCoin(types.DefaultRewardDenom, math.NewInt(10_000))))

	_, err := k.Stake(ctx, alice, math.NewInt(1_000))
	require.NoError(t, err)

	reward, err := k.ClaimRewards(atTime(ctx, 3600), alice)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(3_600), reward)
	require.Equal(t, math.NewInt(3_600), bank.GetBalance(ctx, alice, types.DefaultRewardDenom).Amount)

	// Claiming again immediately pays nothing and does not error.
	reward, err = k.ClaimRewards(atTime(ctx, 3600), alice)
	require.NoError(t, err)
	require.True(t, reward.IsZero())
}

func TestProportionalRewardSplit(t *testing.T) {
	k, bank, ctx := setupWithRate(t, 3)
	fund(bank, alice, 1_000)
	fund(bank, bob, 2_000)
	bank.FundModule(types.ModuleName, sdk.NewCoins(sdk.NewCoin(types.DefaultRewardDenom, math.NewInt(10_000))))

	_, err := k.Stake(ctx, alice, math.NewInt(1_000))
	require.NoError(t, err)
	_, err = k.Stake(ctx, bob, math.NewInt(2_000))
	require.NoError(t, err)

	a, err := k.ClaimRewards(atTime(ctx, 100), alice)
	require.NoError(t, err)
	b, err := k.ClaimRewards(atTime(ctx, 100), bob)
	require.NoError(t, err)

	require.Equal(t, math.NewInt(100), a)
	require.Equal(t, math.NewInt(200), b)
}

func TestEarlyWithdrawPaysPenalty(t *testing.T) {
	k, bank, ctx := setupWithRate(t, 0)
	fund(bank, alice, 10_000)

	_, err := k.Stake(ctx, alice, math.NewInt(10_000))
	require.NoError(t, err)

	// Still inside the 7-day lock; 1% of the gross stays in the pool.
	net, penalty, err := k.Withdraw(atTime(ctx, 100), alice, math.NewInt(10_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(9_900), net)
	require.Equal(t, math.NewInt(100), penalty)

	require.Equal(t, math.NewInt(9_900), bank.GetBalance(ctx, alice, types.DefaultStakeDenom).Amount)
	require.Equal(t, math.NewInt(100),
		bank.GetBalance(ctx, k.GetModuleAddress(), types.DefaultStakeDenom).Amount)

	// The penalty carries no reward weight: the pool is empty again.
	state, err := k.GetPoolState(ctx)
	require.NoError(t, err)
	require.True(t, state.TotalStaked.IsZero())
}

func TestWithdrawAfterLockNoPenalty(t *testing.T) {
	k, bank, ctx := setupWithRate(t, 0)
	fund(bank, alice, 10_000)

	_, err := k.Stake(ctx, alice, math.NewInt(10_000))
	require.NoError(t, err)

	net, penalty, err := k.Withdraw(atTime(ctx, types.DefaultLockPeriodSeconds), alice, math.NewInt(10_000))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(10_000), net)
	require.True(t, penalty.IsZero())
}

func TestWithdrawBoundsChecked(t *testing.T) {
	k, bank, ctx := setupWithRate(t, 0)
	fund(bank, alice, 100)

	_, err := k.Stake(ctx, alice, math.NewInt(100))
	require.NoError(t, err)

	_, _, err = k.Withdraw(ctx, alice, math.NewInt(101))
	require.ErrorIs(t, err, types.ErrInsufficientBalance)

	_, _, err = k.Withdraw(ctx, bob, math.NewInt(1))
	require.ErrorIs(t, err, types.ErrNothingToWithdraw)
}

func TestNilAmountsRejected(t *testing.T) {
	k, bank, ctx := setupWithRate(t, 1)
	fund(bank, alice, 1_000)

	// A zero-value math.Int errors like a zero amount instead of panicking
	// deeper in the arithmetic.
	_, err := k.Stake(ctx, alice, math.Int{})
	require.ErrorIs(t, err, types.ErrZeroAmount)

	_, _, err = k.Withdraw(ctx, alice, math.Int{})
	require.ErrorIs(t, err, types.ErrZeroAmount)

	err = k.FundRewards(ctx, alice, math.Int{})
	require.ErrorIs(t, err, types.ErrZeroAmount)
}

func TestCompoundFoldsRewardAndRestartsLock(t *testing.T) {
	k, bank, ctx := setupWithRate(t, 1)
	fund(bank, alice, 1_000)
	// Back the compounded stake so a later full withdrawal is covered.
	bank.FundModule(types.ModuleName, sdk.NewCoins(sdk.NewCoin(types.DefaultRewardDenom, math.NewInt(10_000))))

	_, err := k.Stake(ctx, alice, math.NewInt(1_000))
	require.NoError(t, err)

	compounded, total, err := k.Compound(atTime(ctx, 500), alice)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(500), compounded)
	require.Equal(t, math.NewInt(1_500), total)

	pos, found, err := k.GetPosition(ctx, alice)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, int64(500), pos.DepositUnix, "compounding restarts the lock clock")
	require.True(t, pos.Position.AccruedReward.IsZero())

	// Nothing left to compound in the same second.
	_, _, err = k.Compound(atTime(ctx, 500), alice)
	require.ErrorIs(t, err, types.ErrNothingToCompound)
}

func TestCompoundRequiresMatchingDenoms(t *testing.T) {
	k, bank, ctx := testkeeper.StakepoolKeeper(t)

	params, err := k.GetParams(ctx)
	require.NoError(t, err)
	params.RewardDenom = "ureward"
	require.NoError(t, k.UpdateParams(ctx, testkeeper.TestAuthority, params))

	fund(bank, alice, 100)
	_, err = k.Stake(ctx, alice, math.NewInt(100))
	require.NoError(t, err)

	_, _, err = k.Compound(ctx, alice)
	require.ErrorIs(t, err, types.ErrTokenMismatch)
}

func TestEmergencyWithdrawForfeitsRewards(t *testing.T) {
	k, bank, ctx := setupWithRate(t, 1)
	fund(bank, alice, 1_000)

	_, err := k.Stake(ctx, alice, math.NewInt(1_000))
	require.NoError(t, err)

	// Pause everything; the emergency exit must still work.
	require.NoError(t, k.SetPaused(ctx, testkeeper.TestAuthority, true))

	// Still locked, so the 1% penalty comes off the returned stake too.
	returned, forfeited, err := k.EmergencyWithdraw(atTime(ctx, 600), alice)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(990), returned)
	require.Equal(t, math.NewInt(600), forfeited)

	require.Equal(t, math.NewInt(990), bank.GetBalance(ctx, alice, types.DefaultStakeDenom).Amount)

	_, found, err := k.GetPosition(ctx, alice)
	require.NoError(t, err)
	require.False(t, found, "position is deleted on emergency exit")
}

func TestPauseBlocksStakeAndWithdraw(t *testing.T) {
	k, bank, ctx := setupWithRate(t, 0)
	fund(bank, alice, 200)

	_, err := k.Stake(ctx, alice, math.NewInt(100))
	require.NoError(t, err)

	require.NoError(t, k.SetPaused(ctx, testkeeper.TestAuthority, true))

	_, err = k.Stake(ctx, alice, math.NewInt(100))
	require.ErrorIs(t, err, types.ErrModulePaused)
	_, _, err = k.Withdraw(ctx, alice, math.NewInt(100))
	require.ErrorIs(t, err, types.ErrModulePaused)
	_, _, err = k.Compound(ctx, alice)
	require.ErrorIs(t, err, types.ErrModulePaused)

	require.NoError(t, k.SetPaused(ctx, testkeeper.TestAuthority, false))
	_, err = k.Stake(ctx, alice, math.NewInt(100))
	require.NoError(t, err)
}

func TestPauseIsAuthorityGated(t *testing.T) {
	k, _, ctx := testkeeper.StakepoolKeeper(t)

	err := k.SetPaused(ctx, alice.String(), true)
	require.ErrorIs(t, err, types.ErrUnauthorized)
	require.False(t, k.IsPaused(ctx))
}

func TestSetEmissionRateAppliesFromNow(t *testing.T) {
	k, bank, ctx := setupWithRate(t, 1)
	fund(bank, alice, 100)
	bank.FundModule(types.ModuleName, sdk.NewCoins(sdk.NewCoin(types.DefaultRewardDenom, math.NewInt(10_000))))

	_, err := k.Stake(ctx, alice, math.NewInt(100))
	require.NoError(t, err)

	// 100s at 1/sec, then 100s at 3/sec. The rate change settles the first
	// window at the old rate.
	require.NoError(t, k.SetEmissionRate(atTime(ctx, 100), testkeeper.TestAuthority, math.LegacyNewDec(3)))

	reward, err := k.ClaimRewards(atTime(ctx, 200), alice)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(400), reward)
}

func TestSetEmissionRateAuthorityGated(t *testing.T) {
	k, _, ctx := testkeeper.StakepoolKeeper(t)

	err := k.SetEmissionRate(ctx, alice.String(), math.LegacyNewDec(1))
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestRecoverTokens(t *testing.T) {
	k, bank, ctx := testkeeper.StakepoolKeeper(t)
	bank.FundModule(types.ModuleName, sdk.NewCoins(sdk.NewCoin("ustray", math.NewInt(777))))

	// Stake and reward denoms are protected.
	err := k.RecoverTokens(ctx, testkeeper.TestAuthority, types.DefaultStakeDenom, math.NewInt(1), carol)
	require.ErrorIs(t, err, types.ErrProtectedDenom)

	require.NoError(t, k.RecoverTokens(ctx, testkeeper.TestAuthority, "ustray", math.NewInt(777), carol))
	require.Equal(t, math.NewInt(777), bank.GetBalance(ctx, carol, "ustray").Amount)

	err = k.RecoverTokens(ctx, testkeeper.TestAuthority, "ustray", math.NewInt(1), carol)
	require.ErrorIs(t, err, types.ErrInsufficientBalance)
}

func TestTopUpKeepsLockClock(t *testing.T) {
	k, bank, ctx := setupWithRate(t, 0)
	fund(bank, alice, 2_000)

	_, err := k.Stake(atTime(ctx, 100), alice, math.NewInt(1_000))
	require.NoError(t, err)
	_, err = k.Stake(atTime(ctx, 5_000), alice, math.NewInt(1_000))
	require.NoError(t, err)

	pos, found, err := k.GetPosition(ctx, alice)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, int64(100), pos.DepositUnix, "top-ups keep the original lock clock")
}

func TestInvariantsHoldThroughLifecycle(t *testing.T) {
	k, bank, ctx := setupWithRate(t, 1)
	fund(bank, alice, 1_000)
	fund(bank, bob, 2_000)
	bank.FundModule(types.ModuleName, sdk.NewCoins(sdk.NewCoin(types.DefaultRewardDenom, math.NewInt(10_000))))

	_, err := k.Stake(ctx, alice, math.NewInt(1_000))
	require.NoError(t, err)
	_, err = k.Stake(atTime(ctx, 50), bob, math.NewInt(2_000))
	require.NoError(t, err)
	_, _, err = k.Withdraw(atTime(ctx, 100), alice, math.NewInt(400))
	require.NoError(t, err)
	_, err = k.ClaimRewards(atTime(ctx, 200), bob)
	require.NoError(t, err)

	msg, broken := keeper.AllInvariants(k)(atTime(ctx, 200))
	require.False(t, broken, msg)
}

func TestExportImportGenesisRoundTrip(t *testing.T) {
	k, bank, ctx := setupWithRate(t, 1)
	fund(bank, alice, 1_000)

	_, err := k.Stake(atTime(ctx, 10), alice, math.NewInt(1_000))
	require.NoError(t, err)

	exported, err := k.ExportGenesis(atTime(ctx, 10))
	require.NoError(t, err)
	require.NoError(t, exported.Validate())
	require.Len(t, exported.Positions, 1)
	require.Equal(t, math.NewInt(1_000), exported.PoolState.TotalStaked)

	k2, _, ctx2 := testkeeper.StakepoolKeeper(t)
	require.NoError(t, k2.InitGenesis(atTime(ctx2, 10), *exported))

	pos, found, err := k2.GetPosition(ctx2, alice)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, math.NewInt(1_000), pos.Position.Amount)
}
