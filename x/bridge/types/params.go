package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Params defines the parameters for the bridge module.
type Params struct {
	// RelayerAddress is the single account trusted to attest inbound
	// transfers. Empty disables unlocking entirely.
	RelayerAddress string `json:"relayer_address"`

	// SupportedDenoms is the allow-list of bridgeable tokens.
	SupportedDenoms []string `json:"supported_denoms"`

	// MaxLockAmount caps a single outbound transfer. Zero means no cap.
	MaxLockAmount math.Int `json:"max_lock_amount"`
}

// DefaultParams returns default parameters for the bridge module. The bridge
// ships closed: no relayer, no supported denoms.
func DefaultParams() Params {
	return Params{
		RelayerAddress:  "",
		SupportedDenoms: nil,
		MaxLockAmount:   math.ZeroInt(),
	}
}

// Validate checks the parameters are within bounds.
func (p Params) Validate() error {
	if p.RelayerAddress != "" {
		if _, err := sdk.AccAddressFromBech32(p.RelayerAddress); err != nil {
			return ErrInvalidParams.Wrapf("relayer address: %s", err)
		}
	}
	seen := make(map[string]bool)
	for _, denom := range p.SupportedDenoms {
		if err := sdk.ValidateDenom(denom); err != nil {
			return ErrInvalidParams.Wrapf("supported denom %q: %s", denom, err)
		}
		if seen[denom] {
			return ErrInvalidParams.Wrapf("duplicate supported denom %s", denom)
		}
		seen[denom] = true
	}
	if p.MaxLockAmount.IsNil() || p.MaxLockAmount.IsNegative() {
		return ErrInvalidParams.Wrap("max lock amount must be non-negative")
	}
	return nil
}

// IsSupported reports whether denom is on the bridge allow-list.
func (p Params) IsSupported(denom string) bool {
	for _, d := range p.SupportedDenoms {
		if d == denom {
			return true
		}
	}
	return false
}
