package keeper

import (
	"math/big"

	"cosmossdk.io/math"

	"github.com/helix-protocol/helix/x/amm/types"
)

// maxIntValue is the exclusive upper bound of math.Int, 2^256. math.Int
// panics past it, so every product of caller-controlled amounts goes
// through the helpers below and comes back as an error instead.
var maxIntValue = new(big.Int).Exp(big.NewInt(2), big.NewInt(256), nil)

// SafeAdd adds two math.Int values with overflow checking.
func SafeAdd(a, b math.Int) (math.Int, error) {
	result := new(big.Int).Add(a.BigInt(), b.BigInt())
	if result.Cmp(maxIntValue) >= 0 {
		return math.Int{}, types.ErrOverflow.Wrapf("%s + %s exceeds the 256-bit range", a, b)
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeMul multiplies two math.Int values with overflow checking.
func SafeMul(a, b math.Int) (math.Int, error) {
	if a.IsZero() || b.IsZero() {
		return math.ZeroInt(), nil
	}
	result := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if result.Cmp(maxIntValue) >= 0 {
		return math.Int{}, types.ErrOverflow.Wrapf("%s * %s exceeds the 256-bit range", a, b)
	}
	return math.NewIntFromBigInt(result), nil
}

// SafeQuo divides two math.Int values with division-by-zero checking. The
// quotient truncates toward zero.
func SafeQuo(a, b math.Int) (math.Int, error) {
	if b.IsZero() {
		return math.Int{}, types.ErrDivisionByZero
	}
	return math.NewIntFromBigInt(new(big.Int).Quo(a.BigInt(), b.BigInt())), nil
}

// SafeMulDiv computes floor(a * b / c). The intermediate product is bounded
// the same way as SafeMul.
func SafeMulDiv(a, b, c math.Int) (math.Int, error) {
	if c.IsZero() {
		return math.Int{}, types.ErrDivisionByZero
	}
	intermediate := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if intermediate.Cmp(maxIntValue) >= 0 {
		return math.Int{}, types.ErrOverflow.Wrapf("%s * %s exceeds the 256-bit range", a, b)
	}
	return math.NewIntFromBigInt(new(big.Int).Quo(intermediate, c.BigInt())), nil
}
