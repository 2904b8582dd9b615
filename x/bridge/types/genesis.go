package types

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// EscrowedRecord is a denom's outstanding escrow total. Lock records are
// append-only history, so the live escrow is carried separately.
type EscrowedRecord struct {
	Denom  string   `json:"denom"`
	Amount math.Int `json:"amount"`
}

// GenesisState defines the bridge module's genesis state.
type GenesisState struct {
	Params       Params           `json:"params"`
	Locks        []Lock           `json:"locks"`
	ProcessedTxs []string         `json:"processed_txs"`
	Escrowed     []EscrowedRecord `json:"escrowed"`
	NextNonce    uint64           `json:"next_nonce"`
}

// DefaultGenesis returns the default genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params:       DefaultParams(),
		Locks:        nil,
		ProcessedTxs: nil,
		Escrowed:     nil,
		NextNonce:    1,
	}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	seenNonces := make(map[uint64]bool)
	for _, lock := range gs.Locks {
		if err := lock.Validate(); err != nil {
			return err
		}
		if seenNonces[lock.Nonce] {
			return ErrInvalidNonce.Wrapf("duplicate lock nonce %d", lock.Nonce)
		}
		if gs.NextNonce > 0 && lock.Nonce >= gs.NextNonce {
			return ErrInvalidNonce.Wrapf(
				"lock nonce %d not covered by next nonce %d", lock.Nonce, gs.NextNonce,
			)
		}
		seenNonces[lock.Nonce] = true
	}

	seenTxs := make(map[string]bool)
	for _, hash := range gs.ProcessedTxs {
		if hash == "" {
			return ErrInvalidTxHash.Wrap("empty processed tx hash")
		}
		if seenTxs[hash] {
			return ErrInvalidTxHash.Wrapf("duplicate processed tx hash %s", hash)
		}
		seenTxs[hash] = true
	}

	seenDenoms := make(map[string]bool)
	for _, rec := range gs.Escrowed {
		if err := sdk.ValidateDenom(rec.Denom); err != nil {
			return ErrUnsupportedDenom.Wrapf("escrowed denom: %s", err)
		}
		if seenDenoms[rec.Denom] {
			return ErrInvalidParams.Wrapf("duplicate escrowed denom %s", rec.Denom)
		}
		if rec.Amount.IsNil() || rec.Amount.IsNegative() {
			return ErrInvalidAmount.Wrapf("escrowed amount for %s must be non-negative", rec.Denom)
		}
		seenDenoms[rec.Denom] = true
	}
	return nil
}
