package keeper

import (
	"context"
	"encoding/binary"
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/helix-protocol/helix/x/amm/types"
)

// GetNextPoolID returns the next pool ID and increments the counter
func (k Keeper) GetNextPoolID(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(PoolCountKey)

	var poolID uint64
	if bz == nil {
		poolID = 1
	} else {
		poolID = binary.BigEndian.Uint64(bz)
	}

	nextBz := make([]byte, 8)
	binary.BigEndian.PutUint64(nextBz, poolID+1)
	store.Set(PoolCountKey, nextBz)

	return poolID
}

// SetNextPoolID sets the next pool ID counter
func (k Keeper) SetNextPoolID(ctx context.Context, poolID uint64) {
	store := k.getStore(ctx)
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, poolID)
	store.Set(PoolCountKey, bz)
}

// GetPool retrieves a pool by ID. Returns ErrPoolNotFound if missing.
func (k Keeper) GetPool(ctx context.Context, poolID uint64) (types.Pool, error) {
	store := k.getStore(ctx)
	bz := store.Get(PoolKey(poolID))
	if bz == nil {
		return types.Pool{}, types.ErrPoolNotFound.Wrapf("pool %d not found", poolID)
	}

	var pool types.Pool
	if err := k.cdc.UnmarshalJSON(bz, &pool); err != nil {
		return types.Pool{}, fmt.Errorf("GetPool: unmarshal pool %d: %w", poolID, err)
	}
	return pool, nil
}

// SetPool saves a pool to the store
func (k Keeper) SetPool(ctx context.Context, pool types.Pool) error {
	store := k.getStore(ctx)
	bz, err := k.cdc.MarshalJSON(&pool)
	if err != nil {
		return fmt.Errorf("SetPool: marshal pool %d: %w", pool.Id, err)
	}
	store.Set(PoolKey(pool.Id), bz)
	return nil
}

// GetPoolByTokens retrieves a pool by its token pair (order-independent).
func (k Keeper) GetPoolByTokens(ctx context.Context, tokenA, tokenB string) (types.Pool, error) {
	store := k.getStore(ctx)
	bz := store.Get(PoolByTokensKey(tokenA, tokenB))
	if bz == nil {
		return types.Pool{}, types.ErrPoolNotFound.Wrapf("pool not found for token pair %s/%s", tokenA, tokenB)
	}

	poolID := binary.BigEndian.Uint64(bz)
	return k.GetPool(ctx, poolID)
}

// SetPoolByTokens indexes a pool by its token pair
func (k Keeper) SetPoolByTokens(ctx context.Context, tokenA, tokenB string, poolID uint64) {
	store := k.getStore(ctx)
	poolIDBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(poolIDBytes, poolID)
	store.Set(PoolByTokensKey(tokenA, tokenB), poolIDBytes)
}

// IteratePools iterates over all pools
func (k Keeper) IteratePools(ctx context.Context, cb func(pool types.Pool) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, PoolKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var pool types.Pool
		if err := k.cdc.UnmarshalJSON(iterator.Value(), &pool); err != nil {
			return fmt.Errorf("IteratePools: unmarshal: %w", err)
		}
		if cb(pool) {
			break
		}
	}
	return nil
}

// GetAllPools returns all pools in the store
func (k Keeper) GetAllPools(ctx context.Context) []types.Pool {
	var pools []types.Pool
	_ = k.IteratePools(ctx, func(pool types.Pool) bool {
		pools = append(pools, pool)
		return false
	})
	return pools
}

// CreatePool creates a new liquidity pool and bootstraps it with the
// creator's initial reserves. The first depositor sets the price ratio;
// initial shares are the integer square root of amountA * amountB, the
// geometric mean, so the bootstrap cannot be gamed by a skewed deposit.
func (k Keeper) CreatePool(ctx context.Context, creator sdk.AccAddress, tokenA, tokenB string, amountA, amountB math.Int) (types.Pool, error) {
	if tokenA == tokenB {
		return types.Pool{}, types.ErrInvalidTokenPair.Wrap("tokens must be different")
	}
	if tokenA == "" || tokenB == "" {
		return types.Pool{}, types.ErrInvalidTokenDenom.Wrap("token denoms cannot be empty")
	}
	if amountA.IsNil() || !amountA.IsPositive() || amountB.IsNil() || !amountB.IsPositive() {
		return types.Pool{}, types.ErrInvalidAmount.Wrap("amounts must be positive")
	}

	// Consistent token ordering, amounts follow their tokens.
	if tokenA > tokenB {
		tokenA, tokenB = tokenB, tokenA
		amountA, amountB = amountB, amountA
	}

	if _, err := k.GetPoolByTokens(ctx, tokenA, tokenB); err == nil {
		return types.Pool{}, types.ErrPoolAlreadyExists.Wrapf("pool already exists for token pair %s/%s", tokenA, tokenB)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return types.Pool{}, fmt.Errorf("CreatePool: get params: %w", err)
	}

	if amountA.LT(params.MinInitialLiquidity) || amountB.LT(params.MinInitialLiquidity) {
		return types.Pool{}, types.ErrInsufficientLiquidity.Wrapf(
			"initial amounts below minimum initial liquidity %s", params.MinInitialLiquidity,
		)
	}

	// Initial shares = floor(sqrt(amountA * amountB)). Truncation under-values
	// the true geometric mean negligibly and always in the pool's favor.
	product, err := SafeMul(amountA, amountB)
	if err != nil {
		return types.Pool{}, err
	}
	sqrtShares, err := math.LegacyNewDecFromInt(product).ApproxSqrt()
	if err != nil {
		return types.Pool{}, types.ErrOverflow.Wrapf("square root of initial product: %v", err)
	}
	initialShares := sqrtShares.TruncateInt()
	if initialShares.IsZero() {
		return types.Pool{}, types.ErrInsufficientLiquidity.Wrap("initial liquidity too small")
	}

	poolID := k.GetNextPoolID(ctx)

	pool := types.Pool{
		Id:          poolID,
		TokenA:      tokenA,
		TokenB:      tokenB,
		ReserveA:    amountA,
		ReserveB:    amountB,
		TotalShares: initialShares,
		Creator:     creator.String(),
	}
	if err := pool.Validate(); err != nil {
		return types.Pool{}, fmt.Errorf("CreatePool: validate pool state: %w", err)
	}

	if err := k.SetPool(ctx, pool); err != nil {
		return types.Pool{}, err
	}
	k.SetPoolByTokens(ctx, tokenA, tokenB, poolID)

	// Pull in the reserves, then mint the LP shares to the creator.
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	deposit := sdk.NewCoins(sdk.NewCoin(tokenA, amountA), sdk.NewCoin(tokenB, amountB))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, creator, types.ModuleName, deposit); err != nil {
		return types.Pool{}, types.ErrTransferFailed.Wrapf("deposit initial reserves: %v", err)
	}
	if err := k.mintShares(ctx, creator, poolID, initialShares); err != nil {
		return types.Pool{}, err
	}

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeCreatePool,
			sdk.NewAttribute(types.AttributeKeyPoolID, fmt.Sprintf("%d", poolID)),
			sdk.NewAttribute(types.AttributeKeyCreator, creator.String()),
			sdk.NewAttribute(types.AttributeKeyTokenA, tokenA),
			sdk.NewAttribute(types.AttributeKeyTokenB, tokenB),
			sdk.NewAttribute(types.AttributeKeyAmountA, amountA.String()),
			sdk.NewAttribute(types.AttributeKeyAmountB, amountB.String()),
			sdk.NewAttribute(types.AttributeKeyShares, initialShares.String()),
		),
	)

	if k.metrics != nil {
		k.metrics.PoolsTotal.Inc()
	}

	k.Logger(ctx).Info("pool created",
		"pool_id", poolID, "pair", tokenA+"/"+tokenB,
		"reserve_a", amountA.String(), "reserve_b", amountB.String(),
	)

	return pool, nil
}

// LPShareExists reports whether denom is the share denom of a live pool.
// Used by the farm module to validate LP staking denoms.
func (k Keeper) LPShareExists(ctx context.Context, denom string) bool {
	poolID, ok := GetPoolIDFromShareDenom(denom)
	if !ok {
		return false
	}
	_, err := k.GetPool(ctx, poolID)
	return err == nil
}

// GetPoolIDFromShareDenom parses an LP share denom back to its pool ID.
// Returns false for denoms that are not pool shares. The whole suffix must
// be the ID so a denom like "amm/pool/12abc" does not pass as pool 12.
func GetPoolIDFromShareDenom(denom string) (uint64, bool) {
	if len(denom) <= len(types.ShareDenomPrefix) || denom[:len(types.ShareDenomPrefix)] != types.ShareDenomPrefix {
		return 0, false
	}
	poolID, err := strconv.ParseUint(denom[len(types.ShareDenomPrefix):], 10, 64)
	if err != nil {
		return 0, false
	}
	return poolID, poolID != 0
}
