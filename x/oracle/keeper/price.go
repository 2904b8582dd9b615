package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/helix-protocol/helix/x/oracle/types"
)

// SetPrice stores a quote for asset at the current block time. Only the
// registered feeder may post; an empty feeder param disables updates.
func (k Keeper) SetPrice(ctx context.Context, feeder sdk.AccAddress, asset string, price math.LegacyDec) error {
	params, err := k.GetParams(ctx)
	if err != nil {
		return fmt.Errorf("SetPrice: %w", err)
	}
	if params.FeederAddress == "" || feeder.String() != params.FeederAddress {
		return types.ErrNotFeeder.Wrapf("feeder %s", feeder)
	}
	if asset == "" || len(asset) > types.MaxAssetLen {
		return types.ErrInvalidAsset.Wrapf("asset %q", asset)
	}
	if price.IsNil() || !price.IsPositive() {
		return types.ErrInvalidPrice.Wrap("price must be positive")
	}

	record := types.Price{
		Asset:       asset,
		Price:       price,
		UpdatedUnix: k.blockUnix(ctx),
	}
	store := k.getStore(ctx)
	store.Set(PriceKey(asset), k.cdc.MustMarshalJSON(&record))

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSetPrice,
			sdk.NewAttribute(types.AttributeKeyFeeder, feeder.String()),
			sdk.NewAttribute(types.AttributeKeyAsset, asset),
			sdk.NewAttribute(types.AttributeKeyPrice, price.String()),
		),
	)

	k.metrics.PriceUpdates.WithLabelValues(asset).Inc()
	return nil
}

// GetPrice returns the stored quote for asset, refusing quotes older than the
// freshness window. A zero MaxPriceAgeSeconds disables the staleness check.
func (k Keeper) GetPrice(ctx context.Context, asset string) (types.Price, error) {
	store := k.getStore(ctx)
	bz := store.Get(PriceKey(asset))
	if bz == nil {
		return types.Price{}, types.ErrPriceNotFound.Wrapf("asset %s", asset)
	}

	var record types.Price
	if err := k.cdc.UnmarshalJSON(bz, &record); err != nil {
		return types.Price{}, fmt.Errorf("GetPrice: unmarshal: %w", err)
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return types.Price{}, fmt.Errorf("GetPrice: %w", err)
	}
	if params.MaxPriceAgeSeconds > 0 {
		age := k.blockUnix(ctx) - record.UpdatedUnix
		if age > params.MaxPriceAgeSeconds {
			k.metrics.StaleReads.Inc()
			return types.Price{}, types.ErrStalePrice.Wrapf(
				"asset %s is %ds old, window is %ds", asset, age, params.MaxPriceAgeSeconds,
			)
		}
	}
	return record, nil
}

// IteratePrices iterates over all stored quotes
func (k Keeper) IteratePrices(ctx context.Context, cb func(price types.Price) bool) {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, PriceKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		var record types.Price
		if err := k.cdc.UnmarshalJSON(iterator.Value(), &record); err != nil {
			continue
		}
		if cb(record) {
			break
		}
	}
}

// GetAllPrices returns every stored quote, staleness ignored. Used by genesis
// export.
func (k Keeper) GetAllPrices(ctx context.Context) []types.Price {
	var prices []types.Price
	k.IteratePrices(ctx, func(price types.Price) bool {
		prices = append(prices, price)
		return false
	})
	return prices
}
