package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DefaultMaxPriceAgeSeconds is the freshness window quotes are served within.
const DefaultMaxPriceAgeSeconds = 3600

// Params defines the parameters for the oracle module.
type Params struct {
	// FeederAddress is the single account trusted to post prices. Empty
	// disables price updates entirely.
	FeederAddress string `json:"feeder_address"`

	// MaxPriceAgeSeconds is how old a quote may be before GetPrice refuses
	// to serve it. Zero means quotes never go stale.
	MaxPriceAgeSeconds int64 `json:"max_price_age_seconds"`
}

// DefaultParams returns default parameters for the oracle module. The oracle
// ships without a feeder; governance registers one.
func DefaultParams() Params {
	return Params{
		FeederAddress:      "",
		MaxPriceAgeSeconds: DefaultMaxPriceAgeSeconds,
	}
}

// Validate checks the parameters are within bounds.
func (p Params) Validate() error {
	if p.FeederAddress != "" {
		if _, err := sdk.AccAddressFromBech32(p.FeederAddress); err != nil {
			return ErrInvalidParams.Wrapf("feeder address: %s", err)
		}
	}
	if p.MaxPriceAgeSeconds < 0 {
		return ErrInvalidParams.Wrap("max price age must be non-negative")
	}
	return nil
}
