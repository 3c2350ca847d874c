package keeper

import (
	"context"

	"cosmossdk.io/store/prefix"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/query"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/paw-chain/feeds/x/feeds/types"
	"github.com/paw-chain/feeds/x/feeds/verify"
)

type queryServer struct {
	Keeper
}

const (
	defaultPaginationLimit = 100
	maxPaginationLimit     = 1000
)

// NewQueryServerImpl returns an implementation of the QueryServer interface
func NewQueryServerImpl(keeper Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

var _ types.QueryServer = queryServer{}

// sanitizePagination enforces sensible defaults and caps for paginated queries.
func sanitizePagination(p *query.PageRequest) *query.PageRequest {
	if p == nil {
		return &query.PageRequest{Limit: defaultPaginationLimit}
	}

	if p.Limit == 0 {
		p.Limit = defaultPaginationLimit
	}

	if p.Limit > maxPaginationLimit {
		p.Limit = maxPaginationLimit
	}

	return p
}

// TemporalNumericValue returns the latest value for an id, rejecting stale values
func (qs queryServer) TemporalNumericValue(goCtx context.Context, req *types.QueryTemporalNumericValueRequest) (*types.QueryTemporalNumericValueResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	value, err := qs.GetTemporalNumericValue(goCtx, req.ID)
	if err != nil {
		return nil, err
	}
	return &types.QueryTemporalNumericValueResponse{Value: value}, nil
}

// TemporalNumericValueUnchecked returns the latest value for an id regardless of age
func (qs queryServer) TemporalNumericValueUnchecked(goCtx context.Context, req *types.QueryTemporalNumericValueRequest) (*types.QueryTemporalNumericValueResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	value, err := qs.GetTemporalNumericValueUnchecked(goCtx, req.ID)
	if err != nil {
		return nil, err
	}
	return &types.QueryTemporalNumericValueResponse{Value: value}, nil
}

// AllTemporalNumericValues lists stored feeds in id order
func (qs queryServer) AllTemporalNumericValues(goCtx context.Context, req *types.QueryAllTemporalNumericValuesRequest) (*types.QueryAllTemporalNumericValuesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	ctx := sdk.UnwrapSDKContext(goCtx)
	feedStore := prefix.NewStore(ctx.KVStore(qs.storeKey), FeedKeyPrefix)

	var feeds []types.Feed
	pageRes, err := query.Paginate(feedStore, sanitizePagination(req.Pagination), func(key []byte, value []byte) error {
		var id types.AssetID
		if len(key) != len(id) {
			return status.Errorf(codes.Internal, "malformed feed key %X", key)
		}
		copy(id[:], key)
		v, err := types.UnmarshalTemporalNumericValue(value)
		if err != nil {
			return err
		}
		feeds = append(feeds, types.Feed{ID: id, Value: v})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &types.QueryAllTemporalNumericValuesResponse{
		Feeds:      feeds,
		Pagination: pageRes,
	}, nil
}

// SignerKey returns the configured attestation signer
func (qs queryServer) SignerKey(goCtx context.Context, req *types.QuerySignerKeyRequest) (*types.QuerySignerKeyResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	key, err := qs.GetSignerKey(goCtx)
	if err != nil {
		return nil, err
	}
	return &types.QuerySignerKeyResponse{SignerKey: key}, nil
}

// SingleUpdateFee returns the fee charged per accepted update
func (qs queryServer) SingleUpdateFee(goCtx context.Context, req *types.QuerySingleUpdateFeeRequest) (*types.QuerySingleUpdateFeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	fee, err := qs.GetSingleUpdateFee(goCtx)
	if err != nil {
		return nil, err
	}
	return &types.QuerySingleUpdateFeeResponse{Fee: fee}, nil
}

// Owner returns the current owner
func (qs queryServer) Owner(goCtx context.Context, req *types.QueryOwnerRequest) (*types.QueryOwnerResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	owner, err := qs.GetOwner(goCtx)
	if err != nil {
		return nil, err
	}
	return &types.QueryOwnerResponse{Owner: owner.String()}, nil
}

// ValidTimePeriod returns the staleness bound of checked reads
func (qs queryServer) ValidTimePeriod(goCtx context.Context, req *types.QueryValidTimePeriodRequest) (*types.QueryValidTimePeriodResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	return &types.QueryValidTimePeriodResponse{
		ValidTimePeriodSeconds: qs.GetValidTimePeriodSeconds(goCtx),
	}, nil
}

// UpdateFee estimates the fee for a batch without applying it
func (qs queryServer) UpdateFee(goCtx context.Context, req *types.QueryUpdateFeeRequest) (*types.QueryUpdateFeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	fee, err := qs.ComputeUpdateFee(goCtx, req.Updates)
	if err != nil {
		return nil, err
	}
	return &types.QueryUpdateFeeResponse{Fee: fee}, nil
}

// VerifyAttestation checks an attestation against the configured or a supplied signer
func (qs queryServer) VerifyAttestation(goCtx context.Context, req *types.QueryVerifyAttestationRequest) (*types.QueryVerifyAttestationResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}

	var signer types.EvmPubkey
	if req.SignerKey != nil {
		signer = *req.SignerKey
	} else {
		key, err := qs.GetSignerKey(goCtx)
		if err != nil {
			return nil, err
		}
		signer = key
	}

	return &types.QueryVerifyAttestationResponse{
		Valid: verify.VerifyUpdate(qs.crypto, signer, req.Update),
	}, nil
}
