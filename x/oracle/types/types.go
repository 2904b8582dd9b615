package types

import (
	"cosmossdk.io/math"
)

const (
	// ModuleName defines the module name
	ModuleName = "oracle"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

// MaxAssetLen bounds asset identifiers. Assets are free-form symbols, not
// necessarily on-chain denoms.
const MaxAssetLen = 64

// Price is a feeder-attested quote for one asset, timestamped with the block
// time it was written at. Consumers decide freshness against
// MaxPriceAgeSeconds.
type Price struct {
	Asset       string         `json:"asset"`
	Price       math.LegacyDec `json:"price"`
	UpdatedUnix int64          `json:"updated_unix"`
}

// Validate checks structural consistency of a price record.
func (p Price) Validate() error {
	if p.Asset == "" || len(p.Asset) > MaxAssetLen {
		return ErrInvalidAsset.Wrapf("asset %q", p.Asset)
	}
	if p.Price.IsNil() || !p.Price.IsPositive() {
		return ErrInvalidPrice.Wrap("price must be positive")
	}
	if p.UpdatedUnix < 0 {
		return ErrInvalidPrice.Wrap("updated timestamp cannot be negative")
	}
	return nil
}
