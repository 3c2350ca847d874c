package keeper_test

import (
	"github.com/cosmos/cosmos-sdk/types/query"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/paw-chain/feeds/x/feeds/keeper"
	"github.com/paw-chain/feeds/x/feeds/types"
)

func (suite *KeeperTestSuite) queryServer() types.QueryServer {
	return keeper.NewQueryServerImpl(*suite.keeper)
}

func (suite *KeeperTestSuite) TestQueryNilRequests() {
	qs := suite.queryServer()

	tests := []struct {
		name string
		call func() error
	}{
		{"temporal numeric value", func() error { _, err := qs.TemporalNumericValue(suite.ctx, nil); return err }},
		{"unchecked value", func() error { _, err := qs.TemporalNumericValueUnchecked(suite.ctx, nil); return err }},
		{"all values", func() error { _, err := qs.AllTemporalNumericValues(suite.ctx, nil); return err }},
		{"signer key", func() error { _, err := qs.SignerKey(suite.ctx, nil); return err }},
		{"single update fee", func() error { _, err := qs.SingleUpdateFee(suite.ctx, nil); return err }},
		{"owner", func() error { _, err := qs.Owner(suite.ctx, nil); return err }},
		{"valid time period", func() error { _, err := qs.ValidTimePeriod(suite.ctx, nil); return err }},
		{"update fee", func() error { _, err := qs.UpdateFee(suite.ctx, nil); return err }},
		{"verify attestation", func() error { _, err := qs.VerifyAttestation(suite.ctx, nil); return err }},
	}

	for _, tt := range tests {
		err := tt.call()
		suite.Require().Error(err, tt.name)
		suite.Require().Equal(codes.InvalidArgument, status.Code(err), tt.name)
	}
}

func (suite *KeeperTestSuite) TestQueryTemporalNumericValue() {
	qs := suite.queryServer()

	_, err := qs.TemporalNumericValue(suite.ctx, &types.QueryTemporalNumericValueRequest{ID: btcID})
	suite.Require().ErrorIs(err, types.ErrFeedNotFound)

	suite.seed(btcID, 1, 99)
	suite.Require().NoError(suite.keeper.SetValidTimePeriodSeconds(suite.ctx, ownerAddr, 60))

	_, err = qs.TemporalNumericValue(suite.ctx, &types.QueryTemporalNumericValueRequest{ID: btcID})
	suite.Require().ErrorIs(err, types.ErrStaleValue)

	res, err := qs.TemporalNumericValueUnchecked(suite.ctx, &types.QueryTemporalNumericValueRequest{ID: btcID})
	suite.Require().NoError(err)
	suite.Require().Equal("99", res.Value.QuantizedValue.String())
}

func (suite *KeeperTestSuite) TestQueryAllTemporalNumericValuesPagination() {
	for i := byte(1); i <= 5; i++ {
		suite.seed(assetID(i), uint64(i), int64(i))
	}
	qs := suite.queryServer()

	res, err := qs.AllTemporalNumericValues(suite.ctx, &types.QueryAllTemporalNumericValuesRequest{
		Pagination: &query.PageRequest{Limit: 2, CountTotal: true},
	})
	suite.Require().NoError(err)
	suite.Require().Len(res.Feeds, 2)
	suite.Require().Equal(assetID(1), res.Feeds[0].ID)
	suite.Require().Equal(assetID(2), res.Feeds[1].ID)
	suite.Require().Equal(uint64(5), res.Pagination.Total)
	suite.Require().NotEmpty(res.Pagination.NextKey)

	res, err = qs.AllTemporalNumericValues(suite.ctx, &types.QueryAllTemporalNumericValuesRequest{
		Pagination: &query.PageRequest{Key: res.Pagination.NextKey, Limit: 10},
	})
	suite.Require().NoError(err)
	suite.Require().Len(res.Feeds, 3)
	suite.Require().Equal(assetID(3), res.Feeds[0].ID)
	suite.Require().Empty(res.Pagination.NextKey)

	res, err = qs.AllTemporalNumericValues(suite.ctx, &types.QueryAllTemporalNumericValuesRequest{})
	suite.Require().NoError(err)
	suite.Require().Len(res.Feeds, 5)
}

func (suite *KeeperTestSuite) TestQueryConfig() {
	qs := suite.queryServer()

	signer, err := qs.SignerKey(suite.ctx, &types.QuerySignerKeyRequest{})
	suite.Require().NoError(err)
	suite.Require().Equal(suite.signer.Address(), signer.SignerKey)

	fee, err := qs.SingleUpdateFee(suite.ctx, &types.QuerySingleUpdateFeeRequest{})
	suite.Require().NoError(err)
	suite.Require().Equal("10upaw", fee.Fee.String())

	owner, err := qs.Owner(suite.ctx, &types.QueryOwnerRequest{})
	suite.Require().NoError(err)
	suite.Require().Equal(ownerAddr.String(), owner.Owner)

	period, err := qs.ValidTimePeriod(suite.ctx, &types.QueryValidTimePeriodRequest{})
	suite.Require().NoError(err)
	suite.Require().Zero(period.ValidTimePeriodSeconds)
}

func (suite *KeeperTestSuite) TestQueryUpdateFee() {
	suite.seed(btcID, 500, 1)
	qs := suite.queryServer()

	updates := []struct {
		id types.AssetID
		ts uint64
	}{
		{btcID, 400}, // older than stored
		{btcID, 600},
		{ethID, 100},
		{ethID, 100}, // duplicate within the batch
	}
	req := &types.QueryUpdateFeeRequest{}
	for _, u := range updates {
		req.Updates = append(req.Updates, suite.signer.MustSign(u.id, u.ts, 1))
	}

	res, err := qs.UpdateFee(suite.ctx, req)
	suite.Require().NoError(err)
	suite.Require().Equal("20upaw", res.Fee.String())

	// the estimate matches what the batch is charged
	_, err = suite.keeper.UpdateTemporalNumericValues(suite.ctx, publisherAddr, upaw(19), req.Updates)
	suite.Require().ErrorIs(err, types.ErrInsufficientFunds)
	accepted, err := suite.keeper.UpdateTemporalNumericValues(suite.ctx, publisherAddr, upaw(20), req.Updates)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(2), accepted)
}

func (suite *KeeperTestSuite) TestQueryVerifyAttestation() {
	qs := suite.queryServer()
	update := suite.signer.MustSign(btcID, 1, 1)

	res, err := qs.VerifyAttestation(suite.ctx, &types.QueryVerifyAttestationRequest{Update: update})
	suite.Require().NoError(err)
	suite.Require().True(res.Valid)

	var other types.EvmPubkey
	other[0] = 0x01
	res, err = qs.VerifyAttestation(suite.ctx, &types.QueryVerifyAttestationRequest{Update: update, SignerKey: &other})
	suite.Require().NoError(err)
	suite.Require().False(res.Valid)

	tampered := update
	tampered.TemporalNumericValue.TimestampNs++
	res, err = qs.VerifyAttestation(suite.ctx, &types.QueryVerifyAttestationRequest{Update: tampered})
	suite.Require().NoError(err)
	suite.Require().False(res.Valid)

	// verification never writes
	_, err = suite.keeper.GetTemporalNumericValueUnchecked(suite.ctx, btcID)
	suite.Require().ErrorIs(err, types.ErrFeedNotFound)
}
