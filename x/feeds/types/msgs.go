package types

import (
	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	errortypes "github.com/cosmos/cosmos-sdk/types/errors"
)

// Message type names
const (
	TypeMsgUpdateTemporalNumericValues = "update_temporal_numeric_values"
	TypeMsgSetOwner                    = "set_owner"
	TypeMsgSetSignerKey                = "set_signer_key"
	TypeMsgSetSingleUpdateFee          = "set_single_update_fee"
	TypeMsgSetValidTimePeriodSeconds   = "set_valid_time_period_seconds"
)

// MsgUpdateTemporalNumericValues submits a batch of signed updates together
// with the funds offered to pay for them.
type MsgUpdateTemporalNumericValues struct {
	Sender  string       `json:"sender"`
	Funds   sdk.Coins    `json:"funds"`
	Updates []UpdateData `json:"updates"`
}

type MsgUpdateTemporalNumericValuesResponse struct {
	Accepted uint64 `json:"accepted,string"`
}

// MsgSetOwner transfers ownership.
type MsgSetOwner struct {
	Sender   string `json:"sender"`
	NewOwner string `json:"new_owner"`
}

type MsgSetOwnerResponse struct{}

// MsgSetSignerKey replaces the attestation signer key.
type MsgSetSignerKey struct {
	Sender    string    `json:"sender"`
	SignerKey EvmPubkey `json:"signer_key"`
}

type MsgSetSignerKeyResponse struct{}

// MsgSetSingleUpdateFee replaces the per-update fee.
type MsgSetSingleUpdateFee struct {
	Sender string   `json:"sender"`
	Fee    sdk.Coin `json:"fee"`
}

type MsgSetSingleUpdateFeeResponse struct{}

// MsgSetValidTimePeriodSeconds replaces the staleness bound of checked reads.
type MsgSetValidTimePeriodSeconds struct {
	Sender                 string `json:"sender"`
	ValidTimePeriodSeconds uint64 `json:"valid_time_period_seconds,string"`
}

type MsgSetValidTimePeriodSecondsResponse struct{}

func validateSender(sender string) error {
	if _, err := sdk.AccAddressFromBech32(sender); err != nil {
		return errortypes.ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}
	return nil
}

func signersOf(sender string) []sdk.AccAddress {
	addr, _ := sdk.AccAddressFromBech32(sender)
	return []sdk.AccAddress{addr}
}

func NewMsgUpdateTemporalNumericValues(sender string, funds sdk.Coins, updates []UpdateData) *MsgUpdateTemporalNumericValues {
	return &MsgUpdateTemporalNumericValues{Sender: sender, Funds: funds, Updates: updates}
}

func (msg *MsgUpdateTemporalNumericValues) Route() string { return RouterKey }
func (msg *MsgUpdateTemporalNumericValues) Type() string  { return TypeMsgUpdateTemporalNumericValues }

// GetSigners assumes the sender was checked by ValidateBasic
func (msg *MsgUpdateTemporalNumericValues) GetSigners() []sdk.AccAddress {
	return signersOf(msg.Sender)
}

// ValidateBasic checks the sender and funds. Update contents are fixed-width
// and are authenticated by the keeper.
func (msg *MsgUpdateTemporalNumericValues) ValidateBasic() error {
	if err := validateSender(msg.Sender); err != nil {
		return err
	}
	if err := msg.Funds.Validate(); err != nil {
		return errortypes.ErrInvalidCoins.Wrap(err.Error())
	}
	return nil
}

func NewMsgSetOwner(sender, newOwner string) *MsgSetOwner {
	return &MsgSetOwner{Sender: sender, NewOwner: newOwner}
}

func (msg *MsgSetOwner) Route() string { return RouterKey }
func (msg *MsgSetOwner) Type() string  { return TypeMsgSetOwner }

func (msg *MsgSetOwner) GetSigners() []sdk.AccAddress {
	return signersOf(msg.Sender)
}

func (msg *MsgSetOwner) ValidateBasic() error {
	if err := validateSender(msg.Sender); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(msg.NewOwner); err != nil {
		return errortypes.ErrInvalidAddress.Wrapf("invalid new owner address: %s", err)
	}
	return nil
}

func NewMsgSetSignerKey(sender string, key EvmPubkey) *MsgSetSignerKey {
	return &MsgSetSignerKey{Sender: sender, SignerKey: key}
}

func (msg *MsgSetSignerKey) Route() string { return RouterKey }
func (msg *MsgSetSignerKey) Type() string  { return TypeMsgSetSignerKey }

func (msg *MsgSetSignerKey) GetSigners() []sdk.AccAddress {
	return signersOf(msg.Sender)
}

func (msg *MsgSetSignerKey) ValidateBasic() error {
	if err := validateSender(msg.Sender); err != nil {
		return err
	}
	if msg.SignerKey.IsZero() {
		return sdkerrors.Wrap(ErrInvalidConfig, "signer key cannot be the zero address")
	}
	return nil
}

func NewMsgSetSingleUpdateFee(sender string, fee sdk.Coin) *MsgSetSingleUpdateFee {
	return &MsgSetSingleUpdateFee{Sender: sender, Fee: fee}
}

func (msg *MsgSetSingleUpdateFee) Route() string { return RouterKey }
func (msg *MsgSetSingleUpdateFee) Type() string  { return TypeMsgSetSingleUpdateFee }

func (msg *MsgSetSingleUpdateFee) GetSigners() []sdk.AccAddress {
	return signersOf(msg.Sender)
}

func (msg *MsgSetSingleUpdateFee) ValidateBasic() error {
	if err := validateSender(msg.Sender); err != nil {
		return err
	}
	if err := msg.Fee.Validate(); err != nil {
		return sdkerrors.Wrapf(ErrInvalidConfig, "invalid fee: %s", err)
	}
	return nil
}

func NewMsgSetValidTimePeriodSeconds(sender string, seconds uint64) *MsgSetValidTimePeriodSeconds {
	return &MsgSetValidTimePeriodSeconds{Sender: sender, ValidTimePeriodSeconds: seconds}
}

func (msg *MsgSetValidTimePeriodSeconds) Route() string { return RouterKey }
func (msg *MsgSetValidTimePeriodSeconds) Type() string  { return TypeMsgSetValidTimePeriodSeconds }

func (msg *MsgSetValidTimePeriodSeconds) GetSigners() []sdk.AccAddress {
	return signersOf(msg.Sender)
}

func (msg *MsgSetValidTimePeriodSeconds) ValidateBasic() error {
	return validateSender(msg.Sender)
}
