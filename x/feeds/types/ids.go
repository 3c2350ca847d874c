package types

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	sdkerrors "cosmossdk.io/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// AssetID is the 32-byte encoded identifier of a feed.
type AssetID [32]byte

// Bytes32 carries merkle roots, algorithm hashes and signature scalars.
type Bytes32 [32]byte

// EvmPubkey is a 20-byte EVM address identifying the attestation signer.
type EvmPubkey [20]byte

func decodeFixedHex(s string, out []byte) error {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hexutil.Decode("0x" + s)
	if err != nil {
		return sdkerrors.Wrapf(ErrDeserialization, "invalid hex %q: %s", s, err)
	}
	if len(b) != len(out) {
		return sdkerrors.Wrapf(ErrDeserialization, "expected %d bytes, got %d", len(out), len(b))
	}
	copy(out, b)
	return nil
}

func unmarshalHexJSON(data []byte, out []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return sdkerrors.Wrap(ErrDeserialization, err.Error())
	}
	return decodeFixedHex(s, out)
}

// ParseAssetID parses a 64-character hex string with or without 0x prefix.
func ParseAssetID(s string) (AssetID, error) {
	var id AssetID
	err := decodeFixedHex(s, id[:])
	return id, err
}

func (id AssetID) String() string {
	return hexutil.Encode(id[:])
}

// Hex returns the lowercase hex form without prefix, as used in events.
func (id AssetID) Hex() string {
	return hex.EncodeToString(id[:])
}

func (id AssetID) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

func (id *AssetID) UnmarshalJSON(data []byte) error {
	return unmarshalHexJSON(data, id[:])
}

func ParseBytes32(s string) (Bytes32, error) {
	var b Bytes32
	err := decodeFixedHex(s, b[:])
	return b, err
}

func (b Bytes32) String() string {
	return hexutil.Encode(b[:])
}

func (b Bytes32) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b *Bytes32) UnmarshalJSON(data []byte) error {
	return unmarshalHexJSON(data, b[:])
}

// ParseEvmPubkey parses a 40-character hex address. Checksums are not enforced.
func ParseEvmPubkey(s string) (EvmPubkey, error) {
	var p EvmPubkey
	err := decodeFixedHex(s, p[:])
	return p, err
}

// String returns the EIP-55 checksummed address.
func (p EvmPubkey) String() string {
	return common.Address(p).Hex()
}

func (p EvmPubkey) IsZero() bool {
	return p == EvmPubkey{}
}

func (p EvmPubkey) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *EvmPubkey) UnmarshalJSON(data []byte) error {
	return unmarshalHexJSON(data, p[:])
}
