package rewards_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/helix-protocol/helix/x/shared/rewards"
)

func TestAdvanceFrozenWithNoStake(t *testing.T) {
	s := rewards.NewState(100, math.LegacyNewDec(5))

	require.NoError(t, s.Advance(1000))
	require.True(t, s.AccRewardPerShare.IsZero(), "accumulator must stay frozen with no depositors")
	require.Equal(t, int64(1000), s.LastUpdateUnix)
}

func TestAdvanceRejectsBackwardsTime(t *testing.T) {
	s := rewards.NewState(100, math.LegacyNewDec(1))
	require.Error(t, s.Advance(99))
}

func TestSettlementIdempotent(t *testing.T) {
	s := rewards.NewState(0, math.LegacyNewDec(10))
	p := rewards.NewPosition(s)
	require.NoError(t, s.Stake(0, &p, math.NewInt(500)))

	require.NoError(t, s.Settle(100, &p))
	afterFirst := p.AccruedReward

	// Settling again with no time elapsed must not change anything.
	require.NoError(t, s.Settle(100, &p))
	require.Equal(t, afterFirst, p.AccruedReward)
	require.Equal(t, s.AccRewardPerShare, p.RewardPerSharePaid)
}

func TestSingleStakerEarnsFullEmission(t *testing.T) {
	// 1000 staked at 0.001/sec for 3600 sec earns 3.6 units, which truncates
	// to 3 whole base units at settlement.
	s := rewards.NewState(0, math.LegacyNewDecWithPrec(1, 3))
	p := rewards.NewPosition(s)
	require.NoError(t, s.Stake(0, &p, math.NewInt(1000)))

	require.NoError(t, s.Settle(3600, &p))
	require.Equal(t, math.NewInt(3), p.AccruedReward)

	// In scaled base units the same schedule pays out exactly: 0.001 token/sec
	// with 6-decimal tokens is 1000 base units/sec.
	s2 := rewards.NewState(0, math.LegacyNewDec(1000))
	p2 := rewards.NewPosition(s2)
	require.NoError(t, s2.Stake(0, &p2, math.NewInt(1_000_000_000)))
	require.NoError(t, s2.Settle(3600, &p2))
	require.Equal(t, math.NewInt(3_600_000), p2.AccruedReward)
}

func TestProportionalSplit(t *testing.T) {
	// Two accounts staking 1000 and 2000 at the same time split emission 1:2.
	s := rewards.NewState(0, math.LegacyNewDec(3))
	a := rewards.NewPosition(s)
	b := rewards.NewPosition(s)
	require.NoError(t, s.Stake(0, &a, math.NewInt(1000)))
	require.NoError(t, s.Stake(0, &b, math.NewInt(2000)))

	require.NoError(t, s.Settle(100, &a))
	require.NoError(t, s.Settle(100, &b))

	require.Equal(t, math.NewInt(100), a.AccruedReward)
	require.Equal(t, math.NewInt(200), b.AccruedReward)
	require.Equal(t, a.AccruedReward.MulRaw(2), b.AccruedReward)
}

func TestSettlingOneAccountDoesNotAffectAnother(t *testing.T) {
	s := rewards.NewState(0, math.LegacyNewDec(10))
	a := rewards.NewPosition(s)
	b := rewards.NewPosition(s)
	require.NoError(t, s.Stake(0, &a, math.NewInt(100)))
	require.NoError(t, s.Stake(0, &b, math.NewInt(100)))

	// Settle a many times mid-window; b's final total must be unaffected.
	for _, ts := range []int64{10, 25, 50, 75} {
		require.NoError(t, s.Settle(ts, &a))
	}
	require.NoError(t, s.Settle(100, &a))
	require.NoError(t, s.Settle(100, &b))

	require.Equal(t, a.AccruedReward, b.AccruedReward)
}

func TestTotalPaidNeverExceedsEmission(t *testing.T) {
	// Irregular stakes and settlement times; the sum of all accrued rewards
	// must stay within rate * elapsed.
	s := rewards.NewState(0, math.LegacyNewDec(7))
	a := rewards.NewPosition(s)
	b := rewards.NewPosition(s)
	c := rewards.NewPosition(s)

	require.NoError(t, s.Stake(0, &a, math.NewInt(13)))
	require.NoError(t, s.Stake(17, &b, math.NewInt(29)))
	require.NoError(t, s.Stake(31, &c, math.NewInt(7)))
	require.NoError(t, s.Unstake(53, &b, math.NewInt(11)))

	require.NoError(t, s.Settle(100, &a))
	require.NoError(t, s.Settle(100, &b))
	require.NoError(t, s.Settle(100, &c))

	total := a.AccruedReward.Add(b.AccruedReward).Add(c.AccruedReward)
	budget := math.NewInt(7 * 100)
	require.True(t, total.LTE(budget), "paid %s exceeds emission budget %s", total, budget)

	require.False(t, a.AccruedReward.IsNegative())
	require.False(t, b.AccruedReward.IsNegative())
	require.False(t, c.AccruedReward.IsNegative())
}

func TestEarnedIsPureView(t *testing.T) {
	s := rewards.NewState(0, math.LegacyNewDec(2))
	p := rewards.NewPosition(s)
	require.NoError(t, s.Stake(0, &p, math.NewInt(50)))

	before := s
	earned := rewards.Earned(s, p, 200)
	require.Equal(t, math.NewInt(400), earned)
	require.Equal(t, before, s, "Earned must not mutate state")
	require.True(t, p.AccruedReward.IsZero(), "Earned must not mutate the position")
}

func TestLateStakerAccruesOnlyFromEntry(t *testing.T) {
	s := rewards.NewState(0, math.LegacyNewDec(5))
	a := rewards.NewPosition(s)
	require.NoError(t, s.Stake(0, &a, math.NewInt(100)))

	// b enters halfway through the window.
	require.NoError(t, s.Advance(50))
	b := rewards.NewPosition(s)
	require.NoError(t, s.Stake(50, &b, math.NewInt(100)))

	require.NoError(t, s.Settle(100, &a))
	require.NoError(t, s.Settle(100, &b))

	// a: 50s alone (250) + 50s sharing (125) = 375; b: 50s sharing = 125.
	require.Equal(t, math.NewInt(375), a.AccruedReward)
	require.Equal(t, math.NewInt(125), b.AccruedReward)
}
