package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/paw-chain/feeds/x/feeds/types"
)

func (suite *KeeperTestSuite) TestNonOwnerCannotChangeConfig() {
	before, err := suite.keeper.GetConfig(suite.ctx)
	suite.Require().NoError(err)

	var newKey types.EvmPubkey
	newKey[0] = 0xaa

	tests := []struct {
		name string
		call func() error
	}{
		{"set owner", func() error { return suite.keeper.SetOwner(suite.ctx, strangerAddr, strangerAddr) }},
		{"set signer key", func() error { return suite.keeper.SetSignerKey(suite.ctx, strangerAddr, newKey) }},
		{"set single update fee", func() error {
			return suite.keeper.SetSingleUpdateFee(suite.ctx, strangerAddr, sdk.NewInt64Coin(feeDenom, 1))
		}},
		{"set valid time period", func() error { return suite.keeper.SetValidTimePeriodSeconds(suite.ctx, strangerAddr, 60) }},
	}

	for _, tt := range tests {
		err := tt.call()
		suite.Require().ErrorIs(err, types.ErrNotAuthorized, tt.name)
		suite.Require().Contains(types.GetRecoverySuggestion(err), "owner", tt.name)
	}

	after, err := suite.keeper.GetConfig(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(before, after)
	suite.Require().Empty(eventsOfType(suite.ctx, types.EventTypeFeedsConfigUpdate))
}

func (suite *KeeperTestSuite) TestOwnerUpdatesConfig() {
	var newKey types.EvmPubkey
	newKey[0] = 0xaa
	newFee := sdk.NewInt64Coin("uatom", 3)

	suite.Require().NoError(suite.keeper.SetSignerKey(suite.ctx, ownerAddr, newKey))
	suite.Require().NoError(suite.keeper.SetSingleUpdateFee(suite.ctx, ownerAddr, newFee))
	suite.Require().NoError(suite.keeper.SetValidTimePeriodSeconds(suite.ctx, ownerAddr, 60))

	cfg, err := suite.keeper.GetConfig(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Equal(newKey, cfg.SignerKey)
	suite.Require().Equal(newFee.String(), cfg.SingleUpdateFee.String())
	suite.Require().Equal(uint64(60), cfg.ValidTimePeriodSeconds)

	events := eventsOfType(suite.ctx, types.EventTypeFeedsConfigUpdate)
	suite.Require().Len(events, 3)
	suite.Require().Equal(types.ConfigFieldSignerKey, attribute(events[0], types.AttributeKeyField))
	suite.Require().Equal(suite.signer.Address().String(), attribute(events[0], types.AttributeKeyOldValue))
	suite.Require().Equal(newKey.String(), attribute(events[0], types.AttributeKeyNewValue))
	suite.Require().Equal(types.ConfigFieldSingleUpdateFee, attribute(events[1], types.AttributeKeyField))
	suite.Require().Equal("10upaw", attribute(events[1], types.AttributeKeyOldValue))
	suite.Require().Equal("3uatom", attribute(events[1], types.AttributeKeyNewValue))
	suite.Require().Equal(types.ConfigFieldValidTimePeriod, attribute(events[2], types.AttributeKeyField))
	suite.Require().Equal("60", attribute(events[2], types.AttributeKeyNewValue))
}

func (suite *KeeperTestSuite) TestOwnershipTransfer() {
	suite.Require().NoError(suite.keeper.SetOwner(suite.ctx, ownerAddr, strangerAddr))

	owner, err := suite.keeper.GetOwner(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().True(strangerAddr.Equals(owner))

	// the previous owner loses every privilege
	err = suite.keeper.SetValidTimePeriodSeconds(suite.ctx, ownerAddr, 1)
	suite.Require().ErrorIs(err, types.ErrNotAuthorized)
	suite.Require().NoError(suite.keeper.SetValidTimePeriodSeconds(suite.ctx, strangerAddr, 1))
	suite.Require().NoError(suite.keeper.SetOwner(suite.ctx, strangerAddr, ownerAddr))
}

func (suite *KeeperTestSuite) TestOwnerInputValidation() {
	err := suite.keeper.SetOwner(suite.ctx, ownerAddr, sdk.AccAddress{})
	suite.Require().ErrorIs(err, types.ErrInvalidConfig)

	err = suite.keeper.SetSingleUpdateFee(suite.ctx, ownerAddr, sdk.Coin{Denom: "", Amount: sdk.NewInt64Coin(feeDenom, 1).Amount})
	suite.Require().ErrorIs(err, types.ErrInvalidConfig)

	owner, err := suite.keeper.GetOwner(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().True(ownerAddr.Equals(owner))
	fee, err := suite.keeper.GetSingleUpdateFee(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Equal("10upaw", fee.String())
}
