package keeper

import (
	"fmt"

	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/feeds/x/feeds/types"
)

// RegisterInvariants registers all feeds module invariants
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "feed-records",
		FeedRecordsInvariant(k))
	ir.RegisterRoute(types.ModuleName, "config",
		ConfigInvariant(k))
}

// AllInvariants runs all invariants of the feeds module
func AllInvariants(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		res, stop := FeedRecordsInvariant(k)(ctx)
		if stop {
			return res, stop
		}
		return ConfigInvariant(k)(ctx)
	}
}

// FeedRecordsInvariant checks that every feed entry has a well-formed key and
// a decodable 24-byte record
func FeedRecordsInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var issues []string

		store := ctx.KVStore(k.storeKey)
		iter := storetypes.KVStorePrefixIterator(store, FeedKeyPrefix)
		defer iter.Close()

		for ; iter.Valid(); iter.Next() {
			id, ok := assetIDFromFeedKey(iter.Key())
			if !ok {
				issues = append(issues, fmt.Sprintf("malformed feed key %X", iter.Key()))
				continue
			}
			if _, err := types.UnmarshalTemporalNumericValue(iter.Value()); err != nil {
				issues = append(issues, fmt.Sprintf("id %s: %v", id.Hex(), err))
			}
		}

		var msg string
		if len(issues) > 0 {
			msg = fmt.Sprintf("%d invalid feed records:\n", len(issues))
			for _, issue := range issues {
				msg += fmt.Sprintf("  - %s\n", issue)
			}
		}

		return sdk.FormatInvariant(
			types.ModuleName, "feed-records",
			msg,
		), len(issues) > 0
	}
}

// ConfigInvariant checks that every configuration cell is present and valid
func ConfigInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var msg string
		broken := false

		cfg, err := k.GetConfig(ctx)
		if err == nil {
			err = cfg.Validate()
		}
		if err != nil {
			broken = true
			msg = fmt.Sprintf("invalid config: %v\n", err)
		}

		return sdk.FormatInvariant(
			types.ModuleName, "config",
			msg,
		), broken
	}
}
