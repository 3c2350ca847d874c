package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"
)

type QueryTemporalNumericValueRequest struct {
	ID AssetID `json:"id"`
}

type QueryTemporalNumericValueResponse struct {
	Value TemporalNumericValue `json:"value"`
}

type QueryAllTemporalNumericValuesRequest struct {
	Pagination *query.PageRequest `json:"pagination,omitempty"`
}

type QueryAllTemporalNumericValuesResponse struct {
	Feeds      []Feed              `json:"feeds"`
	Pagination *query.PageResponse `json:"pagination,omitempty"`
}

type QuerySignerKeyRequest struct{}

type QuerySignerKeyResponse struct {
	SignerKey EvmPubkey `json:"signer_key"`
}

type QuerySingleUpdateFeeRequest struct{}

type QuerySingleUpdateFeeResponse struct {
	Fee sdk.Coin `json:"fee"`
}

type QueryOwnerRequest struct{}

type QueryOwnerResponse struct {
	Owner string `json:"owner"`
}

type QueryValidTimePeriodRequest struct{}

type QueryValidTimePeriodResponse struct {
	ValidTimePeriodSeconds uint64 `json:"valid_time_period_seconds,string"`
}

// QueryUpdateFeeRequest asks for the fee a batch would be charged if
// submitted now.
type QueryUpdateFeeRequest struct {
	Updates []UpdateData `json:"updates"`
}

type QueryUpdateFeeResponse struct {
	Fee sdk.Coin `json:"fee"`
}

// QueryVerifyAttestationRequest checks an attestation without touching state.
// A nil SignerKey selects the configured signer.
type QueryVerifyAttestationRequest struct {
	Update    UpdateData `json:"update"`
	SignerKey *EvmPubkey `json:"signer_key,omitempty"`
}

type QueryVerifyAttestationResponse struct {
	Valid bool `json:"valid"`
}
