package keeper

import (
	"github.com/paw-chain/feeds/x/feeds/types"
)

var (
	// ModuleNamespace is the namespace byte for the Feeds module (0x05)
	// All store keys are prefixed with this byte to prevent collisions with other modules
	ModuleNamespace = byte(0x05)

	// OwnerKey holds the bech32-decoded owner address
	OwnerKey = []byte{0x05, 0x01}

	// SignerKeyKey holds the 20-byte attestation signer address
	SignerKeyKey = []byte{0x05, 0x02}

	// SingleUpdateFeeKey holds the per-update fee coin
	SingleUpdateFeeKey = []byte{0x05, 0x03}

	// ValidTimePeriodKey holds the staleness bound for checked reads, in seconds
	ValidTimePeriodKey = []byte{0x05, 0x04}

	// FeedKeyPrefix is the prefix for the latest value of each asset
	FeedKeyPrefix = []byte{0x05, 0x05}
)

// GetFeedKey returns the store key for an asset's latest value
func GetFeedKey(id types.AssetID) []byte {
	return append(append([]byte{}, FeedKeyPrefix...), id[:]...)
}

// assetIDFromFeedKey recovers the asset id from a full feed key
func assetIDFromFeedKey(key []byte) (types.AssetID, bool) {
	var id types.AssetID
	if len(key) != len(FeedKeyPrefix)+len(id) {
		return id, false
	}
	copy(id[:], key[len(FeedKeyPrefix):])
	return id, true
}
