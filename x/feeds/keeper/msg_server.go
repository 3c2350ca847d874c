package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	errortypes "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/paw-chain/feeds/x/feeds/types"
)

type msgServer struct {
	Keeper
}

// NewMsgServerImpl returns an implementation of the MsgServer interface
func NewMsgServerImpl(keeper Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

var _ types.MsgServer = msgServer{}

// UpdateTemporalNumericValues handles a batch of signed updates
func (ms msgServer) UpdateTemporalNumericValues(goCtx context.Context, msg *types.MsgUpdateTemporalNumericValues) (*types.MsgUpdateTemporalNumericValuesResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	sender, err := sdk.AccAddressFromBech32(msg.Sender)
	if err != nil {
		return nil, errortypes.ErrInvalidAddress.Wrapf("invalid sender address: %s", err)
	}

	accepted, err := ms.Keeper.UpdateTemporalNumericValues(goCtx, sender, msg.Funds, msg.Updates)
	if err != nil {
		return nil, err
	}
	return &types.MsgUpdateTemporalNumericValuesResponse{Accepted: accepted}, nil
}

// SetOwner handles ownership transfer
func (ms msgServer) SetOwner(goCtx context.Context, msg *types.MsgSetOwner) (*types.MsgSetOwnerResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	sender, _ := sdk.AccAddressFromBech32(msg.Sender)
	newOwner, _ := sdk.AccAddressFromBech32(msg.NewOwner)

	if err := ms.Keeper.SetOwner(goCtx, sender, newOwner); err != nil {
		return nil, err
	}
	return &types.MsgSetOwnerResponse{}, nil
}

// SetSignerKey handles signer key rotation
func (ms msgServer) SetSignerKey(goCtx context.Context, msg *types.MsgSetSignerKey) (*types.MsgSetSignerKeyResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	sender, _ := sdk.AccAddressFromBech32(msg.Sender)

	if err := ms.Keeper.SetSignerKey(goCtx, sender, msg.SignerKey); err != nil {
		return nil, err
	}
	return &types.MsgSetSignerKeyResponse{}, nil
}

// SetSingleUpdateFee handles fee changes
func (ms msgServer) SetSingleUpdateFee(goCtx context.Context, msg *types.MsgSetSingleUpdateFee) (*types.MsgSetSingleUpdateFeeResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	sender, _ := sdk.AccAddressFromBech32(msg.Sender)

	if err := ms.Keeper.SetSingleUpdateFee(goCtx, sender, msg.Fee); err != nil {
		return nil, err
	}
	return &types.MsgSetSingleUpdateFeeResponse{}, nil
}

// SetValidTimePeriodSeconds handles staleness bound changes
func (ms msgServer) SetValidTimePeriodSeconds(goCtx context.Context, msg *types.MsgSetValidTimePeriodSeconds) (*types.MsgSetValidTimePeriodSecondsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	sender, _ := sdk.AccAddressFromBech32(msg.Sender)

	if err := ms.Keeper.SetValidTimePeriodSeconds(goCtx, sender, msg.ValidTimePeriodSeconds); err != nil {
		return nil, err
	}
	return &types.MsgSetValidTimePeriodSecondsResponse{}, nil
}
