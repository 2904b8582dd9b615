package keeper_test

import (
	"math/big"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/helix-protocol/helix/x/amm/keeper"
	"github.com/helix-protocol/helix/x/amm/types"
)

func bigPow2(exp uint) math.Int {
	return math.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), exp))
}

func TestSafeMulBounds(t *testing.T) {
	got, err := keeper.SafeMul(math.NewInt(1_000), math.NewInt(997))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(997_000), got)

	got, err = keeper.SafeMul(math.ZeroInt(), bigPow2(255))
	require.NoError(t, err)
	require.True(t, got.IsZero())

	// 2^200 * 2^56 = 2^256, one past the top of math.Int's range.
	_, err = keeper.SafeMul(bigPow2(200), bigPow2(56))
	require.ErrorIs(t, err, types.ErrOverflow)
}

func TestSafeAddBounds(t *testing.T) {
	got, err := keeper.SafeAdd(math.NewInt(1), math.NewInt(2))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(3), got)

	_, err = keeper.SafeAdd(bigPow2(255), bigPow2(255))
	require.ErrorIs(t, err, types.ErrOverflow)
}

func TestSafeQuoRejectsZeroDivisor(t *testing.T) {
	got, err := keeper.SafeQuo(math.NewInt(7), math.NewInt(2))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(3), got)

	_, err = keeper.SafeQuo(math.NewInt(7), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrDivisionByZero)
}

func TestSafeMulDiv(t *testing.T) {
	// Truncates toward zero like the swap and share formulas expect.
	got, err := keeper.SafeMulDiv(math.NewInt(7), math.NewInt(3), math.NewInt(2))
	require.NoError(t, err)
	require.Equal(t, math.NewInt(10), got)

	_, err = keeper.SafeMulDiv(math.NewInt(7), math.NewInt(3), math.ZeroInt())
	require.ErrorIs(t, err, types.ErrDivisionByZero)

	// The intermediate product is bounded even when the quotient would fit.
	_, err = keeper.SafeMulDiv(bigPow2(255), math.NewInt(997), math.NewInt(1_000))
	require.ErrorIs(t, err, types.ErrOverflow)
}
