package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "bridge"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// RouterKey defines the module's message routing key
	RouterKey = ModuleName
)

// MaxExternalAddressLen bounds the free-form destination address recorded in
// a lock. Destination formats vary by chain, so the address is opaque here.
const MaxExternalAddressLen = 256

// Lock is one escrowed outbound transfer, identified by its nonce. The
// off-chain relayer reads locks from events and releases matching funds on
// the destination chain.
type Lock struct {
	Nonce             uint64   `json:"nonce"`
	Sender            string   `json:"sender"`
	DestChain         string   `json:"dest_chain"`
	ExternalRecipient string   `json:"external_recipient"`
	Denom             string   `json:"denom"`
	Amount            math.Int `json:"amount"`
	CreatedUnix       int64    `json:"created_unix"`
}

// Validate checks structural consistency of a lock.
func (l Lock) Validate() error {
	if l.Nonce == 0 {
		return ErrInvalidNonce.Wrap("nonce cannot be zero")
	}
	if _, err := sdk.AccAddressFromBech32(l.Sender); err != nil {
		return ErrInvalidAddress.Wrapf("sender: %s", err)
	}
	if l.DestChain == "" {
		return ErrInvalidChain.Wrap("destination chain cannot be empty")
	}
	if l.ExternalRecipient == "" || len(l.ExternalRecipient) > MaxExternalAddressLen {
		return ErrInvalidAddress.Wrap("invalid external recipient")
	}
	if err := sdk.ValidateDenom(l.Denom); err != nil {
		return ErrUnsupportedDenom.Wrapf("denom: %s", err)
	}
	if l.Amount.IsNil() || !l.Amount.IsPositive() {
		return ErrInvalidAmount.Wrap("amount must be positive")
	}
	return nil
}
