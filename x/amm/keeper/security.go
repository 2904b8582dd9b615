package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"

	"github.com/helix-protocol/helix/x/amm/types"
)

// WithReentrancyGuard executes fn with a per-pool, per-operation reentrancy
// lock. The host serializes transactions, so the only way to observe a held
// lock is a nested call back into the module (a token hook re-entering the
// pool). The lock is a KVStore marker so a failed call's lock is rolled back
// with the rest of its writes.
func (k Keeper) WithReentrancyGuard(ctx context.Context, poolID uint64, operation string, fn func() error) error {
	lockKey := fmt.Sprintf("%s/%d", operation, poolID)

	if err := k.acquireReentrancyLock(ctx, lockKey); err != nil {
		return err
	}
	// Release on every exit path, including panics.
	defer k.releaseReentrancyLock(ctx, lockKey)

	return fn()
}

func (k Keeper) acquireReentrancyLock(ctx context.Context, lockKey string) error {
	store := k.getStore(ctx)
	key := ReentrancyLockKey(lockKey)

	if store.Has(key) {
		return types.ErrReentrancy.Wrapf("operation %s is already locked", lockKey)
	}

	store.Set(key, []byte{0x01})
	return nil
}

func (k Keeper) releaseReentrancyLock(ctx context.Context, lockKey string) {
	store := k.getStore(ctx)
	store.Delete(ReentrancyLockKey(lockKey))
}

// ValidatePoolInvariant checks the constant product invariant k = x * y.
// The product may only grow across a swap because the fee stays in the pool.
func (k Keeper) ValidatePoolInvariant(pool *types.Pool, oldK math.Int) error {
	if pool.ReserveA.IsZero() || pool.ReserveB.IsZero() {
		return nil // empty pools have no invariant
	}

	newK, err := SafeMul(pool.ReserveA, pool.ReserveB)
	if err != nil {
		return err
	}
	if newK.LT(oldK) {
		return types.ErrInvariantViolation.Wrapf(
			"constant product decreased: old_k=%s, new_k=%s",
			oldK.String(), newK.String(),
		)
	}
	return nil
}
