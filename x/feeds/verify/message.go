package verify

import (
	"encoding/binary"

	"github.com/paw-chain/feeds/x/feeds/types"
)

// MessageSize is the length of the signed attestation payload.
const MessageSize = 180

// BuildMessage lays out the attestation payload:
//
//	signer(20) | id(32) | zero(24) | timestamp_ns(8) | zero(16) |
//	quantized_value(16) | publisher_merkle_root(32) | value_compute_alg_hash(32)
//
// Integers are big-endian; the value is two's complement.
func BuildMessage(
	signer types.EvmPubkey,
	id types.AssetID,
	timestampNs uint64,
	value types.Int128,
	merkleRoot types.Bytes32,
	algHash types.Bytes32,
) [MessageSize]byte {
	var msg [MessageSize]byte
	off := copy(msg[:], signer[:])
	off += copy(msg[off:], id[:])
	off += 24
	binary.BigEndian.PutUint64(msg[off:], timestampNs)
	off += 8 + 16
	v := value.Bytes()
	off += copy(msg[off:], v[:])
	off += copy(msg[off:], merkleRoot[:])
	copy(msg[off:], algHash[:])
	return msg
}

// MessageHash returns the Keccak-256 digest of the attestation payload.
func MessageHash(
	c Crypto,
	signer types.EvmPubkey,
	id types.AssetID,
	timestampNs uint64,
	value types.Int128,
	merkleRoot types.Bytes32,
	algHash types.Bytes32,
) [32]byte {
	msg := BuildMessage(signer, id, timestampNs, value, merkleRoot, algHash)
	return c.Keccak256(msg[:])
}

// UpdateMessageHash is MessageHash over the fields of an update.
func UpdateMessageHash(c Crypto, signer types.EvmPubkey, u types.UpdateData) [32]byte {
	return MessageHash(c, signer, u.ID,
		u.TemporalNumericValue.TimestampNs,
		u.TemporalNumericValue.QuantizedValue,
		u.PublisherMerkleRoot,
		u.ValueComputeAlgHash,
	)
}
