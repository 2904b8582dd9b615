package types

import (
	"cosmossdk.io/math"
)

// Pool is a constant-product liquidity pool for one token pair. Token denoms
// are ordered lexicographically (TokenA < TokenB) at creation and never change
// for the pool's life. Reserves track the module escrow for this pool;
// TotalShares tracks the minted supply of the pool's LP share denom.
type Pool struct {
	Id          uint64   `json:"id"`
	TokenA      string   `json:"token_a"`
	TokenB      string   `json:"token_b"`
	ReserveA    math.Int `json:"reserve_a"`
	ReserveB    math.Int `json:"reserve_b"`
	TotalShares math.Int `json:"total_shares"`
	Creator     string   `json:"creator"`
}

// ShareDenom returns the bank denom of this pool's LP shares.
func (p Pool) ShareDenom() string {
	return ShareDenom(p.Id)
}

// Product returns the constant-product invariant k = reserveA * reserveB.
func (p Pool) Product() math.Int {
	return p.ReserveA.Mul(p.ReserveB)
}

// Validate checks internal consistency of the pool state.
func (p Pool) Validate() error {
	if p.Id == 0 {
		return ErrInvalidPoolId.Wrap("pool id cannot be zero")
	}
	if p.TokenA == "" || p.TokenB == "" {
		return ErrInvalidTokenDenom.Wrap("token denoms cannot be empty")
	}
	if p.TokenA == p.TokenB {
		return ErrInvalidTokenPair.Wrap("pool tokens must be different")
	}
	if p.TokenA > p.TokenB {
		return ErrInvalidTokenPair.Wrap("pool tokens must be ordered lexicographically")
	}
	if p.ReserveA.IsNil() || p.ReserveB.IsNil() || p.TotalShares.IsNil() {
		return ErrInvalidPoolState.Wrap("pool amounts cannot be nil")
	}
	if p.ReserveA.IsNegative() || p.ReserveB.IsNegative() {
		return ErrInvalidPoolState.Wrap("pool reserves cannot be negative")
	}
	if p.TotalShares.IsNegative() {
		return ErrInvalidPoolState.Wrap("total shares cannot be negative")
	}
	// A live pool has both reserves and shares; an empty pool has neither.
	hasReserves := !p.ReserveA.IsZero() || !p.ReserveB.IsZero()
	if hasReserves && p.TotalShares.IsZero() {
		return ErrInvalidPoolState.Wrap("pool has reserves but no shares")
	}
	if !p.TotalShares.IsZero() && (p.ReserveA.IsZero() || p.ReserveB.IsZero()) {
		return ErrInvalidPoolState.Wrap("pool has shares but missing reserves")
	}
	return nil
}
