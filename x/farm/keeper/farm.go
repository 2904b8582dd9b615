package keeper

import (
	"context"
	"encoding/binary"
	"fmt"
	"strings"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	ammtypes "github.com/helix-protocol/helix/x/amm/types"
	"github.com/helix-protocol/helix/x/farm/types"
	"github.com/helix-protocol/helix/x/shared/rewards"
)

// GetNextFarmID returns the next farm ID and increments the counter
func (k Keeper) GetNextFarmID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(FarmCountKey)

	var farmID uint64
	if bz == nil {
		farmID = 1
	} else {
		farmID = binary.BigEndian.Uint64(bz)
	}

	nextBz := make([]byte, 8)
	binary.BigEndian.PutUint64(nextBz, farmID+1)
	store.Set(FarmCountKey, nextBz)

	return farmID
}

// SetNextFarmID sets the next farm ID counter
func (k Keeper) SetNextFarmID(ctx context.Context, farmID uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, farmID)
	store.Set(FarmCountKey, bz)
}

// GetFarm retrieves a farm by ID. Returns ErrFarmNotFound if missing.
func (k Keeper) GetFarm(ctx context.Context, farmID uint64) (types.Farm, error) {
	store := k.getStore(ctx)
	bz := store.Get(FarmKey(farmID))
	if bz == nil {
		return types.Farm{}, types.ErrFarmNotFound.Wrapf("farm %d not found", farmID)
	}

	var farm types.Farm
	if err := k.cdc.UnmarshalJSON(bz, &farm); err != nil {
		return types.Farm{}, fmt.Errorf("GetFarm: unmarshal farm %d: %w", farmID, err)
	}
	return farm, nil
}

// SetFarm saves a farm to the store
func (k Keeper) SetFarm(ctx context.Context, farm types.Farm) error {
	store := k.getStore(ctx)
	bz, err := k.cdc.MarshalJSON(&farm)
	if err != nil {
		return fmt.Errorf("SetFarm: marshal farm %d: %w", farm.Id, err)
	}
	store.Set(FarmKey(farm.Id), bz)
	return nil
}

// IterateFarms iterates over all farms
func (k Keeper) IterateFarms(ctx context.Context, cb func(farm types.Farm) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, FarmKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var farm types.Farm
		if err := k.cdc.UnmarshalJSON(iterator.Value(), &farm); err != nil {
			return fmt.Errorf("IterateFarms: unmarshal: %w", err)
		}
		if cb(farm) {
			break
		}
	}
	return nil
}

// GetAllFarms returns all farms in the store
func (k Keeper) GetAllFarms(ctx context.Context) []types.Farm {
	var farms []types.Farm
	_ = k.IterateFarms(ctx, func(farm types.Farm) bool {
		farms = append(farms, farm)
		return false
	})
	return farms
}

// CreateFarm registers a new farm. When the stake denom is an AMM LP share
// denom the underlying pool must exist, so a farm cannot be opened over
// shares that can never be minted.
func (k Keeper) CreateFarm(ctx context.Context, creator sdk.AccAddress, stakeDenom, rewardDenom string, ratePerSec math.LegacyDec) (types.Farm, error) {
	if err := sdk.ValidateDenom(stakeDenom); err != nil {
		return types.Farm{}, types.ErrInvalidDenom.Wrapf("stake denom: %s", err)
	}
	if err := sdk.ValidateDenom(rewardDenom); err != nil {
		return types.Farm{}, types.ErrInvalidDenom.Wrapf("reward denom: %s", err)
	}
	if ratePerSec.IsNil() || ratePerSec.IsNegative() {
		return types.Farm{}, types.ErrInvalidParams.Wrap("emission rate must be non-negative")
	}

	if strings.HasPrefix(stakeDenom, ammtypes.ShareDenomPrefix) && !k.ammKeeper.LPShareExists(ctx, stakeDenom) {
		return types.Farm{}, types.ErrUnknownLPShare.Wrapf("%s has no live pool", stakeDenom)
	}

	var dup bool
	_ = k.IterateFarms(ctx, func(farm types.Farm) bool {
		if farm.StakeDenom == stakeDenom && farm.RewardDenom == rewardDenom {
			dup = true
			return true
		}
		return false
	})
	if dup {
		return types.Farm{}, types.ErrFarmAlreadyExists.Wrapf("%s -> %s", stakeDenom, rewardDenom)
	}

	farm := types.Farm{
		Id:          k.GetNextFarmID(ctx),
		StakeDenom:  stakeDenom,
		RewardDenom: rewardDenom,
		State:       rewards.NewState(k.blockUnix(ctx), ratePerSec),
		Creator:     creator.String(),
	}
	if err := farm.Validate(); err != nil {
		return types.Farm{}, fmt.Errorf("CreateFarm: validate: %w", err)
	}
	if err := k.SetFarm(ctx, farm); err != nil {
		return types.Farm{}, err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCreateFarm,
			sdk.NewAttribute(types.AttributeKeyFarmID, fmt.Sprintf("%d", farm.Id)),
			sdk.NewAttribute(types.AttributeKeyCreator, creator.String()),
			sdk.NewAttribute(types.AttributeKeyStakeDenom, stakeDenom),
			sdk.NewAttribute(types.AttributeKeyRewardDenom, rewardDenom),
		),
	)

	k.metrics.FarmsTotal.Inc()

	k.Logger(ctx).Info("farm created",
		"farm_id", farm.Id,
		"stake_denom", stakeDenom,
		"reward_denom", rewardDenom,
	)
	return farm, nil
}

// GetFarmPosition returns one account's position in one farm. The second
// return reports whether a stored position exists.
func (k Keeper) GetFarmPosition(ctx context.Context, farmID uint64, addr sdk.AccAddress) (types.FarmPosition, bool, error) {
	store := k.getStore(ctx)
	bz := store.Get(PositionKey(farmID, addr))
	if bz == nil {
		return types.FarmPosition{}, false, nil
	}

	var pos types.FarmPosition
	if err := k.cdc.UnmarshalJSON(bz, &pos); err != nil {
		return types.FarmPosition{}, false, fmt.Errorf("GetFarmPosition: unmarshal: %w", err)
	}
	return pos, true, nil
}

// SetFarmPosition persists a farm position.
func (k Keeper) SetFarmPosition(ctx context.Context, farmID uint64, addr sdk.AccAddress, pos types.FarmPosition) error {
	bz, err := k.cdc.MarshalJSON(&pos)
	if err != nil {
		return fmt.Errorf("SetFarmPosition: marshal: %w", err)
	}
	k.getStore(ctx).Set(PositionKey(farmID, addr), bz)
	return nil
}

// DeleteFarmPosition removes a farm position from the store.
func (k Keeper) DeleteFarmPosition(ctx context.Context, farmID uint64, addr sdk.AccAddress) {
	k.getStore(ctx).Delete(PositionKey(farmID, addr))
}

// IterateFarmPositions calls fn for every position in a farm until fn
// returns true.
func (k Keeper) IterateFarmPositions(ctx context.Context, farmID uint64, fn func(addr sdk.AccAddress, pos types.FarmPosition) bool) error {
	store := k.getStore(ctx)
	prefix := FarmPositionsPrefix(farmID)
	iterator := storetypes.KVStorePrefixIterator(store, prefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pos types.FarmPosition
		if err := k.cdc.UnmarshalJSON(iterator.Value(), &pos); err != nil {
			return fmt.Errorf("IterateFarmPositions: unmarshal: %w", err)
		}
		addr := sdk.AccAddress(iterator.Key()[len(prefix):])
		if fn(addr, pos) {
			break
		}
	}
	return nil
}

// WithReentrancyGuard executes fn with a per-farm, per-operation reentrancy
// lock, a KVStore marker rolled back with the rest of a failed call's writes.
func (k Keeper) WithReentrancyGuard(ctx context.Context, farmID uint64, operation string, fn func() error) error {
	store := k.getStore(ctx)
	key := ReentrancyLockKey(fmt.Sprintf("%s/%d", operation, farmID))

	if store.Has(key) {
		return types.ErrReentrancy.Wrapf("operation %s on farm %d is already locked", operation, farmID)
	}
	store.Set(key, []byte{0x01})
	defer store.Delete(key)

	return fn()
}
