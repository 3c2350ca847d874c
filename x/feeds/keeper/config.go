package keeper

import (
	"context"
	"encoding/binary"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/feeds/x/feeds/types"
)

// GetOwner returns the current owner
func (k Keeper) GetOwner(ctx context.Context) (sdk.AccAddress, error) {
	bz := k.getStore(ctx).Get(OwnerKey)
	if len(bz) == 0 {
		return nil, sdkerrors.Wrap(types.ErrInvalidConfig, "owner not set")
	}
	return sdk.AccAddress(bz), nil
}

// GetSignerKey returns the address whose signatures are accepted
func (k Keeper) GetSignerKey(ctx context.Context) (types.EvmPubkey, error) {
	var key types.EvmPubkey
	bz := k.getStore(ctx).Get(SignerKeyKey)
	if bz == nil {
		return key, sdkerrors.Wrap(types.ErrInvalidConfig, "signer key not set")
	}
	if len(bz) != len(key) {
		return key, sdkerrors.Wrapf(types.ErrDeserialization, "signer key must be %d bytes, got %d", len(key), len(bz))
	}
	copy(key[:], bz)
	return key, nil
}

// GetSingleUpdateFee returns the fee charged per accepted update
func (k Keeper) GetSingleUpdateFee(ctx context.Context) (sdk.Coin, error) {
	bz := k.getStore(ctx).Get(SingleUpdateFeeKey)
	if bz == nil {
		return sdk.Coin{}, sdkerrors.Wrap(types.ErrInvalidConfig, "single update fee not set")
	}
	var fee sdk.Coin
	if err := k.cdc.Unmarshal(bz, &fee); err != nil {
		return sdk.Coin{}, sdkerrors.Wrap(types.ErrDeserialization, err.Error())
	}
	return fee, nil
}

// GetValidTimePeriodSeconds returns the staleness bound; zero when unset
func (k Keeper) GetValidTimePeriodSeconds(ctx context.Context) uint64 {
	bz := k.getStore(ctx).Get(ValidTimePeriodKey)
	if len(bz) != 8 {
		return 0
	}
	return binary.BigEndian.Uint64(bz)
}

// GetConfig loads every configuration cell
func (k Keeper) GetConfig(ctx context.Context) (types.Config, error) {
	owner, err := k.GetOwner(ctx)
	if err != nil {
		return types.Config{}, err
	}
	signerKey, err := k.GetSignerKey(ctx)
	if err != nil {
		return types.Config{}, err
	}
	fee, err := k.GetSingleUpdateFee(ctx)
	if err != nil {
		return types.Config{}, err
	}
	return types.Config{
		Owner:                  owner,
		SignerKey:              signerKey,
		SingleUpdateFee:        fee,
		ValidTimePeriodSeconds: k.GetValidTimePeriodSeconds(ctx),
	}, nil
}

// SetConfig validates cfg and writes every cell. It bypasses the owner
// check and is used by genesis.
func (k Keeper) SetConfig(ctx context.Context, cfg types.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	k.setOwner(ctx, cfg.Owner)
	k.setSignerKey(ctx, cfg.SignerKey)
	if err := k.setSingleUpdateFee(ctx, cfg.SingleUpdateFee); err != nil {
		return err
	}
	k.setValidTimePeriodSeconds(ctx, cfg.ValidTimePeriodSeconds)
	return nil
}

func (k Keeper) setOwner(ctx context.Context, owner sdk.AccAddress) {
	k.getStore(ctx).Set(OwnerKey, owner.Bytes())
}

func (k Keeper) setSignerKey(ctx context.Context, key types.EvmPubkey) {
	k.getStore(ctx).Set(SignerKeyKey, key[:])
}

func (k Keeper) setSingleUpdateFee(ctx context.Context, fee sdk.Coin) error {
	bz, err := k.cdc.Marshal(&fee)
	if err != nil {
		return err
	}
	k.getStore(ctx).Set(SingleUpdateFeeKey, bz)
	return nil
}

func (k Keeper) setValidTimePeriodSeconds(ctx context.Context, seconds uint64) {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, seconds)
	k.getStore(ctx).Set(ValidTimePeriodKey, bz)
}
