package types

import (
	"fmt"
)

const (
	// ModuleName defines the module name
	ModuleName = "amm"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName

	// QuerierRoute defines the module's query routing key
	QuerierRoute = ModuleName

	// ShareDenomPrefix is the denom prefix for LP share coins minted by the module.
	// Pool shares are full bank coins so that downstream modules (the yield farm)
	// can hold and stake them like any other token.
	ShareDenomPrefix = "amm/pool/"
)

// FeeDenominator is the fixed denominator for the swap fee fraction.
const FeeDenominator = uint64(1000)

// MaxSwapFeeNumerator bounds the swap fee to 50% of the denominator.
const MaxSwapFeeNumerator = uint64(500)

// ShareDenom returns the bank denom of a pool's LP shares.
func ShareDenom(poolID uint64) string {
	return fmt.Sprintf("%s%d", ShareDenomPrefix, poolID)
}
