package types

import (
	"encoding/json"

	sdkerrors "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// DefaultSingleUpdateFee is the fee charged per accepted update in a fresh chain.
var DefaultSingleUpdateFee = sdk.NewInt64Coin(sdk.DefaultBondDenom, 1)

// Feed pairs an asset id with its latest stored value.
type Feed struct {
	ID    AssetID              `json:"id"`
	Value TemporalNumericValue `json:"value"`
}

// GenesisState defines the feeds module's genesis state.
type GenesisState struct {
	// Owner is a bech32 address. Empty means the keeper authority.
	Owner                  string    `json:"owner"`
	SignerKey              EvmPubkey `json:"signer_key"`
	SingleUpdateFee        sdk.Coin  `json:"single_update_fee"`
	ValidTimePeriodSeconds uint64    `json:"valid_time_period_seconds,string"`
	Feeds                  []Feed    `json:"feeds"`
}

// DefaultGenesis returns the default genesis state
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		SingleUpdateFee: DefaultSingleUpdateFee,
		Feeds:           []Feed{},
	}
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	if gs.Owner != "" {
		if _, err := sdk.AccAddressFromBech32(gs.Owner); err != nil {
			return sdkerrors.Wrapf(ErrInvalidConfig, "invalid owner address: %s", err)
		}
	}
	if err := gs.SingleUpdateFee.Validate(); err != nil {
		return sdkerrors.Wrapf(ErrInvalidConfig, "invalid single update fee: %s", err)
	}

	seen := make(map[AssetID]struct{}, len(gs.Feeds))
	for _, feed := range gs.Feeds {
		if _, ok := seen[feed.ID]; ok {
			return sdkerrors.Wrapf(ErrInvalidConfig, "duplicate feed id %s", feed.ID)
		}
		seen[feed.ID] = struct{}{}
	}
	return nil
}

// MarshalGenesis encodes gs as JSON.
func MarshalGenesis(gs GenesisState) (json.RawMessage, error) {
	return json.Marshal(gs)
}

// UnmarshalGenesis decodes and validates a JSON genesis document.
func UnmarshalGenesis(bz json.RawMessage) (*GenesisState, error) {
	var gs GenesisState
	if err := json.Unmarshal(bz, &gs); err != nil {
		return nil, sdkerrors.Wrap(ErrDeserialization, err.Error())
	}
	if err := gs.Validate(); err != nil {
		return nil, err
	}
	return &gs, nil
}
