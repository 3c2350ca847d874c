package keeper

import (
	"context"
	"errors"
	"fmt"
	"time"

	sdkerrors "cosmossdk.io/errors"
	"github.com/cosmos/cosmos-sdk/telemetry"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/hashicorp/go-metrics"
	"go.opentelemetry.io/otel/attribute"

	feedstelemetry "github.com/paw-chain/feeds/app/telemetry"
	"github.com/paw-chain/feeds/x/feeds/types"
	"github.com/paw-chain/feeds/x/feeds/verify"
)

// UpdateTemporalNumericValues applies a batch of signed updates paid for by
// funds from sender. Updates not strictly newer than the stored value are
// skipped and cost nothing. Any update that fails authentication aborts the
// whole batch. The batch is committed only when funds cover the fee for the
// accepted updates, in which case the attached funds move to the module
// account. It returns the number of accepted updates.
func (k Keeper) UpdateTemporalNumericValues(
	ctx context.Context,
	sender sdk.AccAddress,
	funds sdk.Coins,
	updates []types.UpdateData,
) (accepted uint64, err error) {
	start := time.Now()
	defer func() { k.metrics.BatchLatency.Observe(time.Since(start).Seconds()) }()

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	spanCtx, span := k.telemetry.StartSpan(sdkCtx.Context(), types.ModuleName, "update_temporal_numeric_values",
		attribute.Int("feeds.batch.size", len(updates)),
		attribute.String("feeds.sender", sender.String()),
	)
	defer func() { feedstelemetry.EndSpan(span, err) }()
	sdkCtx = sdkCtx.WithContext(spanCtx)

	cfg, err := k.GetConfig(sdkCtx)
	if err != nil {
		return 0, err
	}

	cacheCtx, write := sdkCtx.CacheContext()
	written, err := k.applyUpdates(cacheCtx, cfg, sender, funds, updates)
	if err != nil {
		k.telemetry.Instruments().RecordRejected(spanCtx, len(updates), rejectReason(err))
		k.Logger(sdkCtx).Error("update batch rejected",
			"sender", sender.String(),
			"updates", len(updates),
			"error", err,
		)
		return 0, err
	}
	write()

	accepted = uint64(len(written))
	for _, feed := range written {
		k.metrics.FeedTimestamp.WithLabelValues(feed.ID.Hex()).Set(float64(feed.Value.TimestampNs) / 1e9)
	}
	for _, coin := range funds {
		if coin.Amount.IsInt64() {
			k.metrics.FeeCollected.WithLabelValues(coin.Denom).Add(float64(coin.Amount.Int64()))
		}
	}
	k.telemetry.Instruments().RecordCommitted(spanCtx, len(updates), accepted)
	telemetry.IncrCounterWithLabels(
		[]string{types.ModuleName, "updates", "accepted"},
		float32(accepted),
		[]metrics.Label{telemetry.NewLabel("signer", cfg.SignerKey.String())},
	)
	span.SetAttributes(attribute.Int64("feeds.batch.accepted", int64(accepted)))

	return accepted, nil
}

// applyUpdates runs the batch against a cache context so that any failure
// leaves the parent untouched. It returns the values written, in batch order.
func (k Keeper) applyUpdates(
	ctx sdk.Context,
	cfg types.Config,
	sender sdk.AccAddress,
	funds sdk.Coins,
	updates []types.UpdateData,
) ([]types.Feed, error) {
	var written []types.Feed
	for i, update := range updates {
		stored, err := k.GetTemporalNumericValueUnchecked(ctx, update.ID)
		switch {
		case err == nil:
			if stored.TimestampNs >= update.TemporalNumericValue.TimestampNs {
				k.Logger(ctx).Debug("skipping update not newer than stored value",
					"id", update.ID.Hex(),
					"stored_timestamp_ns", stored.TimestampNs,
					"timestamp_ns", update.TemporalNumericValue.TimestampNs,
				)
				continue
			}
		case errors.Is(err, types.ErrFeedNotFound):
		default:
			return nil, err
		}

		if !verify.VerifyUpdate(k.crypto, cfg.SignerKey, update) {
			return nil, sdkerrors.Wrapf(types.ErrInvalidSignature, "update %d for id %s", i, update.ID.Hex())
		}

		if _, err := k.PutIfNewer(ctx, update.ID, update.TemporalNumericValue); err != nil {
			return nil, err
		}
		written = append(written, types.Feed{ID: update.ID, Value: update.TemporalNumericValue})

		ctx.EventManager().EmitEvent(
			sdk.NewEvent(
				types.EventTypeTemporalNumericValueUpdate,
				sdk.NewAttribute(types.AttributeKeyID, update.ID.Hex()),
				sdk.NewAttribute(types.AttributeKeyTimestampNs, fmt.Sprintf("%d", update.TemporalNumericValue.TimestampNs)),
				sdk.NewAttribute(types.AttributeKeyQuantizedValue, update.TemporalNumericValue.QuantizedValue.String()),
			),
		)
	}

	accepted := uint64(len(written))
	required, err := cfg.FeeFor(accepted)
	if err != nil {
		return nil, err
	}
	if funds.AmountOf(required.Denom).LT(required.Amount) {
		return nil, types.WrapWithRecovery(types.ErrInsufficientFunds,
			"%d updates require %s, attached %s", accepted, required, funds)
	}

	if !funds.IsZero() {
		if spendable := k.bankKeeper.SpendableCoins(ctx, sender); !spendable.IsAllGTE(funds) {
			return nil, types.WrapWithRecovery(types.ErrInsufficientFunds,
				"sender %s can spend %s, attached %s", sender, spendable, funds)
		}
		if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, sender, types.ModuleName, funds); err != nil {
			return nil, sdkerrors.Wrapf(types.ErrInsufficientFunds, "transfer of %s failed: %s", funds, err)
		}
	}

	return written, nil
}

// ComputeUpdateFee returns the fee a batch would be charged if submitted
// now, counting only updates newer than the stored value and earlier
// updates for the same id within the batch.
func (k Keeper) ComputeUpdateFee(ctx context.Context, updates []types.UpdateData) (sdk.Coin, error) {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return sdk.Coin{}, err
	}

	latest := make(map[types.AssetID]uint64, len(updates))
	var count uint64
	for _, update := range updates {
		ts, seen := latest[update.ID]
		if !seen {
			stored, err := k.GetTemporalNumericValueUnchecked(ctx, update.ID)
			switch {
			case err == nil:
				ts, seen = stored.TimestampNs, true
			case errors.Is(err, types.ErrFeedNotFound):
			default:
				return sdk.Coin{}, err
			}
		}
		if seen && ts >= update.TemporalNumericValue.TimestampNs {
			continue
		}
		latest[update.ID] = update.TemporalNumericValue.TimestampNs
		count++
	}
	return cfg.FeeFor(count)
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, types.ErrInvalidSignature):
		return "invalid_signature"
	case errors.Is(err, types.ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, types.ErrInvalidConfig):
		return "invalid_config"
	default:
		return "other"
	}
}
