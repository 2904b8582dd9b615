package keeper

import (
	"context"
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/helix-protocol/helix/x/shared/rewards"
	"github.com/helix-protocol/helix/x/stakepool/types"
)

// GetPoolState returns the reward accumulator state. When unset it is
// initialized at the current block time with the configured emission rate, so
// no reward is back-dated before the first interaction.
func (k Keeper) GetPoolState(ctx context.Context) (rewards.State, error) {
	store := k.getStore(ctx)
	bz := store.Get(PoolStateKey)
	if bz == nil {
		params, err := k.GetParams(ctx)
		if err != nil {
			return rewards.State{}, err
		}
		return rewards.NewState(k.blockUnix(ctx), params.EmissionRatePerSec), nil
	}

	var state rewards.State
	if err := k.cdc.UnmarshalJSON(bz, &state); err != nil {
		return rewards.State{}, fmt.Errorf("GetPoolState: unmarshal: %w", err)
	}
	return state, nil
}

// SetPoolState persists the reward accumulator state.
func (k Keeper) SetPoolState(ctx context.Context, state rewards.State) error {
	bz, err := k.cdc.MarshalJSON(&state)
	if err != nil {
		return fmt.Errorf("SetPoolState: marshal: %w", err)
	}
	k.getStore(ctx).Set(PoolStateKey, bz)
	return nil
}

// GetPosition returns the stake position for an address. The second return
// reports whether a stored position exists.
func (k Keeper) GetPosition(ctx context.Context, addr sdk.AccAddress) (types.StakePosition, bool, error) {
	store := k.getStore(ctx)
	bz := store.Get(PositionKey(addr))
	if bz == nil {
		return types.StakePosition{}, false, nil
	}

	var pos types.StakePosition
	if err := k.cdc.UnmarshalJSON(bz, &pos); err != nil {
		return types.StakePosition{}, false, fmt.Errorf("GetPosition: unmarshal: %w", err)
	}
	return pos, true, nil
}

// SetPosition persists a stake position.
func (k Keeper) SetPosition(ctx context.Context, addr sdk.AccAddress, pos types.StakePosition) error {
	bz, err := k.cdc.MarshalJSON(&pos)
	if err != nil {
		return fmt.Errorf("SetPosition: marshal: %w", err)
	}
	k.getStore(ctx).Set(PositionKey(addr), bz)
	return nil
}

// DeletePosition removes a stake position from the store.
func (k Keeper) DeletePosition(ctx context.Context, addr sdk.AccAddress) {
	k.getStore(ctx).Delete(PositionKey(addr))
}

// IteratePositions calls fn for every stored position until fn returns true.
func (k Keeper) IteratePositions(ctx context.Context, fn func(addr sdk.AccAddress, pos types.StakePosition) bool) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, PositionKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pos types.StakePosition
		if err := k.cdc.UnmarshalJSON(iterator.Value(), &pos); err != nil {
			return fmt.Errorf("IteratePositions: unmarshal: %w", err)
		}
		addr := sdk.AccAddress(iterator.Key()[len(PositionKeyPrefix):])
		if fn(addr, pos) {
			break
		}
	}
	return nil
}

// IsPaused reports whether deposits and ordinary withdrawals are suspended.
func (k Keeper) IsPaused(ctx context.Context) bool {
	return k.getStore(ctx).Has(PausedKey)
}

func (k Keeper) setPaused(ctx context.Context, paused bool) {
	store := k.getStore(ctx)
	if paused {
		store.Set(PausedKey, []byte{0x01})
		return
	}
	store.Delete(PausedKey)
}

// WithReentrancyGuard executes fn with a per-operation reentrancy lock. The
// lock is a KVStore marker so a failed call's lock is rolled back with the
// rest of its writes.
func (k Keeper) WithReentrancyGuard(ctx context.Context, operation string, fn func() error) error {
	store := k.getStore(ctx)
	key := ReentrancyLockKey(operation)

	if store.Has(key) {
		return types.ErrReentrancy.Wrapf("operation %s is already locked", operation)
	}
	store.Set(key, []byte{0x01})
	defer store.Delete(key)

	return fn()
}
