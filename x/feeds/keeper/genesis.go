package keeper

import (
	"context"
	"fmt"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/feeds/x/feeds/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
// An empty owner falls back to the keeper authority.
func (k Keeper) InitGenesis(ctx context.Context, genState types.GenesisState) error {
	if err := genState.Validate(); err != nil {
		return err
	}

	ownerStr := genState.Owner
	if ownerStr == "" {
		ownerStr = k.authority
	}
	owner, err := sdk.AccAddressFromBech32(ownerStr)
	if err != nil {
		return sdkerrors.Wrapf(types.ErrInvalidConfig, "invalid owner %q: %s", ownerStr, err)
	}

	cfg := types.Config{
		Owner:                  owner,
		SignerKey:              genState.SignerKey,
		SingleUpdateFee:        genState.SingleUpdateFee,
		ValidTimePeriodSeconds: genState.ValidTimePeriodSeconds,
	}
	if err := k.SetConfig(ctx, cfg); err != nil {
		return fmt.Errorf("failed to set config: %w", err)
	}

	for _, feed := range genState.Feeds {
		k.setTemporalNumericValue(ctx, feed.ID, feed.Value)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFeedsInit,
			sdk.NewAttribute(types.AttributeKeySignerKey, cfg.SignerKey.String()),
			sdk.NewAttribute(types.AttributeKeySingleUpdateFee, cfg.SingleUpdateFee.Amount.String()),
			sdk.NewAttribute(types.AttributeKeySingleUpdateFeeDenom, cfg.SingleUpdateFee.Denom),
			sdk.NewAttribute(types.AttributeKeyOwner, owner.String()),
			sdk.NewAttribute(types.AttributeKeyValidTimePeriod, fmt.Sprintf("%d", cfg.ValidTimePeriodSeconds)),
		),
	)

	k.Logger(ctx).Info("Feeds module genesis initialized",
		"owner", owner.String(),
		"signer_key", cfg.SignerKey.String(),
		"feeds", len(genState.Feeds),
	)
	return nil
}

// ExportGenesis returns the module's exported genesis state.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	cfg, err := k.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	feeds, err := k.GetAllTemporalNumericValues(ctx)
	if err != nil {
		return nil, err
	}

	return &types.GenesisState{
		Owner:                  cfg.Owner.String(),
		SignerKey:              cfg.SignerKey,
		SingleUpdateFee:        cfg.SingleUpdateFee,
		ValidTimePeriodSeconds: cfg.ValidTimePeriodSeconds,
		Feeds:                  feeds,
	}, nil
}
