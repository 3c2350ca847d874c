package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	errortypes "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/paw-chain/feeds/x/feeds/keeper"
	"github.com/paw-chain/feeds/x/feeds/types"
)

func (suite *KeeperTestSuite) msgServer() types.MsgServer {
	return keeper.NewMsgServerImpl(*suite.keeper)
}

func (suite *KeeperTestSuite) TestMsgUpdateTemporalNumericValues() {
	ms := suite.msgServer()
	updates := []types.UpdateData{
		suite.signer.MustSign(btcID, 10, 1),
		suite.signer.MustSign(btcID, 20, 2),
	}

	res, err := ms.UpdateTemporalNumericValues(suite.ctx, types.NewMsgUpdateTemporalNumericValues(publisherAddr.String(), upaw(20), updates))
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(2), res.Accepted)
	suite.Require().Equal(uint64(20), suite.stored(btcID).TimestampNs)

	tests := []struct {
		name string
		msg  *types.MsgUpdateTemporalNumericValues
		err  error
	}{
		{
			name: "invalid sender",
			msg:  types.NewMsgUpdateTemporalNumericValues("cosmos1invalid", nil, updates),
			err:  errortypes.ErrInvalidAddress,
		},
		{
			name: "invalid funds",
			msg: types.NewMsgUpdateTemporalNumericValues(publisherAddr.String(),
				sdk.Coins{sdk.Coin{Denom: feeDenom, Amount: sdk.NewInt64Coin(feeDenom, 0).Amount}}, updates),
			err: errortypes.ErrInvalidCoins,
		},
		{
			name: "insufficient funds",
			msg:  types.NewMsgUpdateTemporalNumericValues(publisherAddr.String(), upaw(9), []types.UpdateData{suite.signer.MustSign(ethID, 1, 1)}),
			err:  types.ErrInsufficientFunds,
		},
	}

	for _, tt := range tests {
		_, err := ms.UpdateTemporalNumericValues(suite.ctx, tt.msg)
		suite.Require().ErrorIs(err, tt.err, tt.name)
	}
}

func (suite *KeeperTestSuite) TestMsgAdmin() {
	ms := suite.msgServer()
	var newKey types.EvmPubkey
	newKey[5] = 0x55

	_, err := ms.SetSignerKey(suite.ctx, types.NewMsgSetSignerKey(strangerAddr.String(), newKey))
	suite.Require().ErrorIs(err, types.ErrNotAuthorized)

	_, err = ms.SetSignerKey(suite.ctx, types.NewMsgSetSignerKey(ownerAddr.String(), types.EvmPubkey{}))
	suite.Require().ErrorIs(err, types.ErrInvalidConfig)

	_, err = ms.SetSignerKey(suite.ctx, types.NewMsgSetSignerKey(ownerAddr.String(), newKey))
	suite.Require().NoError(err)

	_, err = ms.SetSingleUpdateFee(suite.ctx, types.NewMsgSetSingleUpdateFee(ownerAddr.String(), sdk.NewInt64Coin(feeDenom, 25)))
	suite.Require().NoError(err)

	_, err = ms.SetValidTimePeriodSeconds(suite.ctx, types.NewMsgSetValidTimePeriodSeconds(ownerAddr.String(), 120))
	suite.Require().NoError(err)

	_, err = ms.SetOwner(suite.ctx, types.NewMsgSetOwner(ownerAddr.String(), "bad"))
	suite.Require().ErrorIs(err, errortypes.ErrInvalidAddress)

	_, err = ms.SetOwner(suite.ctx, types.NewMsgSetOwner(ownerAddr.String(), strangerAddr.String()))
	suite.Require().NoError(err)

	cfg, err := suite.keeper.GetConfig(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().True(strangerAddr.Equals(cfg.Owner))
	suite.Require().Equal(newKey, cfg.SignerKey)
	suite.Require().Equal("25upaw", cfg.SingleUpdateFee.String())
	suite.Require().Equal(uint64(120), cfg.ValidTimePeriodSeconds)

	_, err = ms.SetValidTimePeriodSeconds(suite.ctx, types.NewMsgSetValidTimePeriodSeconds(ownerAddr.String(), 1))
	suite.Require().ErrorIs(err, types.ErrNotAuthorized)
}
