package keeper

import (
	"context"
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/feeds/x/feeds/types"
)

// requireOwner fails with ErrNotAuthorized unless sender is the current owner.
func (k Keeper) requireOwner(ctx context.Context, sender sdk.AccAddress) error {
	owner, err := k.GetOwner(ctx)
	if err != nil {
		return err
	}
	if !owner.Equals(sender) {
		return types.WrapWithRecovery(types.ErrNotAuthorized, "expected owner %s, got %s", owner, sender)
	}
	return nil
}

// asOwner runs mutate only when sender is the owner, then records the
// change under field. mutate returns the previous and new values as text.
func (k Keeper) asOwner(
	ctx context.Context,
	sender sdk.AccAddress,
	field string,
	mutate func() (oldValue, newValue string, err error),
) error {
	if err := k.requireOwner(ctx, sender); err != nil {
		return err
	}
	oldValue, newValue, err := mutate()
	if err != nil {
		return err
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFeedsConfigUpdate,
			sdk.NewAttribute(types.AttributeKeyField, field),
			sdk.NewAttribute(types.AttributeKeyOldValue, oldValue),
			sdk.NewAttribute(types.AttributeKeyNewValue, newValue),
		),
	)
	k.metrics.ConfigUpdates.WithLabelValues(field).Inc()
	k.Logger(ctx).Info("feeds config updated", "field", field, "old", oldValue, "new", newValue)
	return nil
}

// SetOwner transfers ownership to newOwner
func (k Keeper) SetOwner(ctx context.Context, sender, newOwner sdk.AccAddress) error {
	return k.asOwner(ctx, sender, types.ConfigFieldOwner, func() (string, string, error) {
		if err := sdk.VerifyAddressFormat(newOwner); err != nil {
			return "", "", sdkerrors.Wrapf(types.ErrInvalidConfig, "new owner: %s", err)
		}
		k.setOwner(ctx, newOwner)
		return sender.String(), newOwner.String(), nil
	})
}

// SetSignerKey replaces the attestation signer key
func (k Keeper) SetSignerKey(ctx context.Context, sender sdk.AccAddress, key types.EvmPubkey) error {
	return k.asOwner(ctx, sender, types.ConfigFieldSignerKey, func() (string, string, error) {
		old, err := k.GetSignerKey(ctx)
		if err != nil {
			return "", "", err
		}
		k.setSignerKey(ctx, key)
		return old.String(), key.String(), nil
	})
}

// SetSingleUpdateFee replaces the per-update fee
func (k Keeper) SetSingleUpdateFee(ctx context.Context, sender sdk.AccAddress, fee sdk.Coin) error {
	return k.asOwner(ctx, sender, types.ConfigFieldSingleUpdateFee, func() (string, string, error) {
		if err := fee.Validate(); err != nil {
			return "", "", sdkerrors.Wrapf(types.ErrInvalidConfig, "fee: %s", err)
		}
		old, err := k.GetSingleUpdateFee(ctx)
		if err != nil {
			return "", "", err
		}
		if err := k.setSingleUpdateFee(ctx, fee); err != nil {
			return "", "", err
		}
		return old.String(), fee.String(), nil
	})
}

// SetValidTimePeriodSeconds replaces the staleness bound of checked reads
func (k Keeper) SetValidTimePeriodSeconds(ctx context.Context, sender sdk.AccAddress, seconds uint64) error {
	return k.asOwner(ctx, sender, types.ConfigFieldValidTimePeriod, func() (string, string, error) {
		old := k.GetValidTimePeriodSeconds(ctx)
		k.setValidTimePeriodSeconds(ctx, seconds)
		return fmt.Sprintf("%d", old), fmt.Sprintf("%d", seconds), nil
	})
}
