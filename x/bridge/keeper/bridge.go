package keeper

import (
	"context"
	"fmt"
	"strconv"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/helix-protocol/helix/x/bridge/types"
)

// GetNextNonce returns the nonce the next lock will be assigned
func (k Keeper) GetNextNonce(ctx context.Context) uint64 {
	store := k.getStore(ctx)
	bz := store.Get(NonceKey)
	if bz == nil {
		return 1
	}
	return sdk.BigEndianToUint64(bz)
}

// SetNextNonce sets the nonce for the next lock
func (k Keeper) SetNextNonce(ctx context.Context, nonce uint64) {
	store := k.getStore(ctx)
	store.Set(NonceKey, sdk.Uint64ToBigEndian(nonce))
}

// GetLock retrieves a lock record by nonce
func (k Keeper) GetLock(ctx context.Context, nonce uint64) (types.Lock, error) {
	store := k.getStore(ctx)
	bz := store.Get(LockKey(nonce))
	if bz == nil {
		return types.Lock{}, types.ErrLockNotFound.Wrapf("nonce %d", nonce)
	}

	var lock types.Lock
	if err := k.cdc.UnmarshalJSON(bz, &lock); err != nil {
		return types.Lock{}, types.ErrInvalidNonce.Wrapf("corrupt lock record: %s", err)
	}
	return lock, nil
}

// SetLock stores a lock record
func (k Keeper) SetLock(ctx context.Context, lock types.Lock) {
	store := k.getStore(ctx)
	store.Set(LockKey(lock.Nonce), k.cdc.MustMarshalJSON(&lock))
}

// IterateLocks iterates over all lock records in nonce order
func (k Keeper) IterateLocks(ctx context.Context, cb func(lock types.Lock) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, LockKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var lock types.Lock
		if err := k.cdc.UnmarshalJSON(iterator.Value(), &lock); err != nil {
			continue
		}
		if cb(lock) {
			break
		}
	}
}

// GetAllLocks returns every lock record, used by genesis export
func (k Keeper) GetAllLocks(ctx context.Context) []types.Lock {
	var locks []types.Lock
	k.IterateLocks(ctx, func(lock types.Lock) bool {
		locks = append(locks, lock)
		return false
	})
	return locks
}

// processedTxID namespaces a source tx hash by its chain; hashes from
// different chains can collide.
func processedTxID(sourceChain, sourceTxHash string) string {
	return sourceChain + "/" + sourceTxHash
}

// IsProcessed reports whether a source tx has already been redeemed
func (k Keeper) IsProcessed(ctx context.Context, sourceChain, sourceTxHash string) bool {
	store := k.getStore(ctx)
	return store.Has(ProcessedTxKey(processedTxID(sourceChain, sourceTxHash)))
}

func (k Keeper) markProcessed(ctx context.Context, txID string) {
	store := k.getStore(ctx)
	store.Set(ProcessedTxKey(txID), []byte{1})
}

// GetProcessedTxs returns all redeemed source tx hashes, used by genesis export
func (k Keeper) GetProcessedTxs(ctx context.Context) []string {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, ProcessedTxKeyPrefix)
	defer iterator.Close()

	var hashes []string
	for ; iterator.Valid(); iterator.Next() {
		hashes = append(hashes, string(iterator.Key()[len(ProcessedTxKeyPrefix):]))
	}
	return hashes
}

// GetEscrowed returns the outstanding escrow total for a denom. It grows with
// locks and shrinks with unlocks, unlike the append-only lock records.
func (k Keeper) GetEscrowed(ctx context.Context, denom string) math.Int {
	store := k.getStore(ctx)
	bz := store.Get(EscrowedKey(denom))
	if bz == nil {
		return math.ZeroInt()
	}

	var amount math.Int
	if err := k.cdc.UnmarshalJSON(bz, &amount); err != nil {
		return math.ZeroInt()
	}
	return amount
}

func (k Keeper) setEscrowed(ctx context.Context, denom string, amount math.Int) {
	store := k.getStore(ctx)
	if amount.IsZero() {
		store.Delete(EscrowedKey(denom))
		return
	}
	store.Set(EscrowedKey(denom), k.cdc.MustMarshalJSON(&amount))
}

// IterateEscrowed iterates over all per-denom escrow totals
func (k Keeper) IterateEscrowed(ctx context.Context, cb func(denom string, amount math.Int) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, EscrowedKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		denom := string(iterator.Key()[len(EscrowedKeyPrefix):])
		var amount math.Int
		if err := k.cdc.UnmarshalJSON(iterator.Value(), &amount); err != nil {
			continue
		}
		if cb(denom, amount) {
			break
		}
	}
}

// Lock escrows tokens in the module account for an outbound transfer and
// assigns it the next nonce. The relayer picks the transfer up from the
// emitted event; nothing is minted or burned on this side.
func (k Keeper) Lock(
	ctx context.Context,
	sender sdk.AccAddress,
	destChain string,
	externalRecipient string,
	denom string,
	amount math.Int,
) (uint64, error) {
	if amount.IsNil() || !amount.IsPositive() {
		return 0, types.ErrInvalidAmount.Wrap("lock amount must be positive")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return 0, fmt.Errorf("Lock: %w", err)
	}
	if !params.IsSupported(denom) {
		return 0, types.ErrUnsupportedDenom.Wrapf("denom %s", denom)
	}
	if !params.MaxLockAmount.IsZero() && amount.GT(params.MaxLockAmount) {
		return 0, types.ErrAmountTooLarge.Wrapf(
			"amount %s exceeds max lock amount %s", amount, params.MaxLockAmount,
		)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	coins := sdk.NewCoins(sdk.NewCoin(denom, amount))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, sender, types.ModuleName, coins); err != nil {
		return 0, types.ErrTransferFailed.Wrapf("escrow: %s", err)
	}

	nonce := k.GetNextNonce(ctx)
	lock := types.Lock{
		Nonce:             nonce,
		Sender:            sender.String(),
		DestChain:         destChain,
		ExternalRecipient: externalRecipient,
		Denom:             denom,
		Amount:            amount,
		CreatedUnix:       sdkCtx.BlockTime().Unix(),
	}
	k.SetLock(ctx, lock)
	k.SetNextNonce(ctx, nonce+1)
	k.setEscrowed(ctx, denom, k.GetEscrowed(ctx, denom).Add(amount))

	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeLock,
			sdk.NewAttribute(types.AttributeKeyNonce, strconv.FormatUint(nonce, 10)),
			sdk.NewAttribute(types.AttributeKeySender, sender.String()),
			sdk.NewAttribute(types.AttributeKeyDestChain, destChain),
			sdk.NewAttribute(types.AttributeKeyExternalRecipient, externalRecipient),
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
		),
	)

	k.metrics.LocksTotal.Inc()
	k.metrics.LockedVolume.WithLabelValues(denom).Add(intToFloat(amount))
	k.Logger(ctx).Info("locked tokens for outbound transfer",
		"nonce", nonce, "sender", sender.String(), "dest_chain", destChain,
		"denom", denom, "amount", amount.String())

	return nonce, nil
}

// Unlock releases escrowed tokens to recipient for an attested inbound
// transfer. Only the registered relayer may call it, and each source tx hash
// is redeemable exactly once.
func (k Keeper) Unlock(
	ctx context.Context,
	relayer sdk.AccAddress,
	recipient sdk.AccAddress,
	denom string,
	amount math.Int,
	sourceChain string,
	sourceTxHash string,
) error {
	if amount.IsNil() || !amount.IsPositive() {
		return types.ErrInvalidAmount.Wrap("unlock amount must be positive")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return fmt.Errorf("Unlock: %w", err)
	}
	if params.RelayerAddress == "" || relayer.String() != params.RelayerAddress {
		return types.ErrNotRelayer.Wrapf("relayer %s", relayer)
	}
	if !params.IsSupported(denom) {
		return types.ErrUnsupportedDenom.Wrapf("denom %s", denom)
	}
	if k.IsProcessed(ctx, sourceChain, sourceTxHash) {
		return types.ErrAlreadyProcessed.Wrapf("source tx %s on %s", sourceTxHash, sourceChain)
	}

	escrowed := k.GetEscrowed(ctx, denom)
	if amount.GT(escrowed) {
		return types.ErrAmountTooLarge.Wrapf(
			"release %s exceeds escrowed %s%s", amount, escrowed, denom,
		)
	}

	// Mark before paying out so a failed send rolls both writes back together.
	k.markProcessed(ctx, processedTxID(sourceChain, sourceTxHash))
	k.setEscrowed(ctx, denom, escrowed.Sub(amount))

	coins := sdk.NewCoins(sdk.NewCoin(denom, amount))
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, recipient, coins); err != nil {
		return types.ErrTransferFailed.Wrapf("release: %s", err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeUnlock,
			sdk.NewAttribute(types.AttributeKeyRelayer, relayer.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, recipient.String()),
			sdk.NewAttribute(types.AttributeKeyDenom, denom),
			sdk.NewAttribute(types.AttributeKeyAmount, amount.String()),
			sdk.NewAttribute(types.AttributeKeySourceChain, sourceChain),
			sdk.NewAttribute(types.AttributeKeySourceTxHash, sourceTxHash),
		),
	)

	k.metrics.UnlocksTotal.Inc()
	k.Logger(ctx).Info("released escrowed tokens for inbound transfer",
		"relayer", relayer.String(), "recipient", recipient.String(),
		"denom", denom, "amount", amount.String(),
		"source_chain", sourceChain, "source_tx", sourceTxHash)

	return nil
}
