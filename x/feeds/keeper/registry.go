package keeper

import (
	"context"
	"errors"

	sdkerrors "cosmossdk.io/errors"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/feeds/x/feeds/types"
)

// GetTemporalNumericValueUnchecked returns the latest stored value for id
// regardless of its age.
func (k Keeper) GetTemporalNumericValueUnchecked(ctx context.Context, id types.AssetID) (types.TemporalNumericValue, error) {
	bz := k.getStore(ctx).Get(GetFeedKey(id))
	if bz == nil {
		return types.TemporalNumericValue{}, sdkerrors.Wrapf(types.ErrFeedNotFound, "id %s", id)
	}
	return types.UnmarshalTemporalNumericValue(bz)
}

// GetTemporalNumericValue returns the latest stored value for id, failing
// with ErrStaleValue when it is older than the valid time period at the
// current block time.
func (k Keeper) GetTemporalNumericValue(ctx context.Context, id types.AssetID) (types.TemporalNumericValue, error) {
	value, err := k.GetTemporalNumericValueUnchecked(ctx, id)
	if err != nil {
		return value, err
	}

	period := k.GetValidTimePeriodSeconds(ctx)
	if period == 0 {
		return value, nil
	}

	now := sdk.UnwrapSDKContext(ctx).BlockTime().Unix()
	valueSec := value.TimestampNs / 1_000_000_000
	if now > 0 && uint64(now) > valueSec && uint64(now)-valueSec > period {
		return types.TemporalNumericValue{}, sdkerrors.Wrapf(types.ErrStaleValue,
			"id %s updated at %ds, block time %ds, valid period %ds", id, valueSec, now, period)
	}
	return value, nil
}

// PutIfNewer stores value for id when no value exists or the stored
// timestamp is strictly lower. It reports whether the value was written.
func (k Keeper) PutIfNewer(ctx context.Context, id types.AssetID, value types.TemporalNumericValue) (bool, error) {
	stored, err := k.GetTemporalNumericValueUnchecked(ctx, id)
	switch {
	case err == nil:
		if stored.TimestampNs >= value.TimestampNs {
			return false, nil
		}
	case errors.Is(err, types.ErrFeedNotFound):
	default:
		return false, err
	}

	k.setTemporalNumericValue(ctx, id, value)
	return true, nil
}

func (k Keeper) setTemporalNumericValue(ctx context.Context, id types.AssetID, value types.TemporalNumericValue) {
	k.getStore(ctx).Set(GetFeedKey(id), value.Marshal())
}

// IterateTemporalNumericValues iterates over every stored feed in id order
func (k Keeper) IterateTemporalNumericValues(ctx context.Context, cb func(id types.AssetID, value types.TemporalNumericValue) (stop bool)) error {
	store := k.getStore(ctx)
	iterator := storetypes.KVStorePrefixIterator(store, FeedKeyPrefix)
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		id, ok := assetIDFromFeedKey(iterator.Key())
		if !ok {
			return sdkerrors.Wrapf(types.ErrDeserialization, "malformed feed key %X", iterator.Key())
		}
		value, err := types.UnmarshalTemporalNumericValue(iterator.Value())
		if err != nil {
			return sdkerrors.Wrapf(err, "id %s", id)
		}
		if cb(id, value) {
			break
		}
	}
	return nil
}

// GetAllTemporalNumericValues returns every stored feed
func (k Keeper) GetAllTemporalNumericValues(ctx context.Context) ([]types.Feed, error) {
	feeds := []types.Feed{}
	err := k.IterateTemporalNumericValues(ctx, func(id types.AssetID, value types.TemporalNumericValue) bool {
		feeds = append(feeds, types.Feed{ID: id, Value: value})
		return false
	})
	return feeds, err
}
