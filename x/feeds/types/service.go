package types

import "context"

// MsgServer is the message service of the feeds module.
type MsgServer interface {
	UpdateTemporalNumericValues(context.Context, *MsgUpdateTemporalNumericValues) (*MsgUpdateTemporalNumericValuesResponse, error)
	SetOwner(context.Context, *MsgSetOwner) (*MsgSetOwnerResponse, error)
	SetSignerKey(context.Context, *MsgSetSignerKey) (*MsgSetSignerKeyResponse, error)
	SetSingleUpdateFee(context.Context, *MsgSetSingleUpdateFee) (*MsgSetSingleUpdateFeeResponse, error)
	SetValidTimePeriodSeconds(context.Context, *MsgSetValidTimePeriodSeconds) (*MsgSetValidTimePeriodSecondsResponse, error)
}

// QueryServer is the query service of the feeds module.
type QueryServer interface {
	TemporalNumericValue(context.Context, *QueryTemporalNumericValueRequest) (*QueryTemporalNumericValueResponse, error)
	TemporalNumericValueUnchecked(context.Context, *QueryTemporalNumericValueRequest) (*QueryTemporalNumericValueResponse, error)
	AllTemporalNumericValues(context.Context, *QueryAllTemporalNumericValuesRequest) (*QueryAllTemporalNumericValuesResponse, error)
	SignerKey(context.Context, *QuerySignerKeyRequest) (*QuerySignerKeyResponse, error)
	SingleUpdateFee(context.Context, *QuerySingleUpdateFeeRequest) (*QuerySingleUpdateFeeResponse, error)
	Owner(context.Context, *QueryOwnerRequest) (*QueryOwnerResponse, error)
	ValidTimePeriod(context.Context, *QueryValidTimePeriodRequest) (*QueryValidTimePeriodResponse, error)
	UpdateFee(context.Context, *QueryUpdateFeeRequest) (*QueryUpdateFeeResponse, error)
	VerifyAttestation(context.Context, *QueryVerifyAttestationRequest) (*QueryVerifyAttestationResponse, error)
}
