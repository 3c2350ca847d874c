package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Config is the owner-controlled configuration of the module.
type Config struct {
	Owner           sdk.AccAddress
	SignerKey       EvmPubkey
	SingleUpdateFee sdk.Coin
	// ValidTimePeriodSeconds bounds the age of values returned by checked
	// reads. Zero disables the bound.
	ValidTimePeriodSeconds uint64
}

// Validate checks the configuration. A zero signer key is permitted and
// rejects every attestation until the owner sets a key.
func (c Config) Validate() error {
	if len(c.Owner) == 0 {
		return sdkerrors.Wrap(ErrInvalidConfig, "owner cannot be empty")
	}
	if err := sdk.VerifyAddressFormat(c.Owner); err != nil {
		return sdkerrors.Wrapf(ErrInvalidConfig, "owner: %s", err)
	}
	if err := c.SingleUpdateFee.Validate(); err != nil {
		return sdkerrors.Wrapf(ErrInvalidConfig, "single update fee: %s", err)
	}
	return nil
}

// FeeFor returns the fee owed for n accepted updates. A product that does
// not fit in sdkmath.Int fails with ErrInvalidConfig.
func (c Config) FeeFor(n uint64) (sdk.Coin, error) {
	amount, err := c.SingleUpdateFee.Amount.SafeMul(sdkmath.NewIntFromUint64(n))
	if err != nil {
		return sdk.Coin{}, sdkerrors.Wrapf(ErrInvalidConfig, "fee for %d updates at %s: %s", n, c.SingleUpdateFee, err)
	}
	return sdk.NewCoin(c.SingleUpdateFee.Denom, amount), nil
}
