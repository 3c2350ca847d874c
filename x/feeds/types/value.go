package types

import (
	"encoding/binary"

	sdkerrors "cosmossdk.io/errors"
)

// TemporalNumericValueSize is the length of a stored record.
const TemporalNumericValueSize = 24

// TemporalNumericValue is a quantized value observed at a nanosecond timestamp.
type TemporalNumericValue struct {
	TimestampNs    uint64 `json:"timestamp_ns,string"`
	QuantizedValue Int128 `json:"quantized_value"`
}

func NewTemporalNumericValue(timestampNs uint64, value Int128) TemporalNumericValue {
	return TemporalNumericValue{TimestampNs: timestampNs, QuantizedValue: value}
}

// Marshal encodes the value as an 8-byte big-endian timestamp followed by
// the 16-byte big-endian bias encoding of the quantized value.
func (v TemporalNumericValue) Marshal() []byte {
	bz := make([]byte, TemporalNumericValueSize)
	binary.BigEndian.PutUint64(bz[:8], v.TimestampNs)
	enc := EncodeBias(v.QuantizedValue).Bytes()
	copy(bz[8:], enc[:])
	return bz
}

// UnmarshalTemporalNumericValue decodes a record written by Marshal.
func UnmarshalTemporalNumericValue(bz []byte) (TemporalNumericValue, error) {
	if len(bz) != TemporalNumericValueSize {
		return TemporalNumericValue{}, sdkerrors.Wrapf(ErrDeserialization,
			"temporal numeric value must be %d bytes, got %d", TemporalNumericValueSize, len(bz))
	}
	var enc [16]byte
	copy(enc[:], bz[8:])
	return TemporalNumericValue{
		TimestampNs:    binary.BigEndian.Uint64(bz[:8]),
		QuantizedValue: DecodeBias(Uint128FromBytes(enc)),
	}, nil
}

// UpdateData is a signed attestation for one asset.
type UpdateData struct {
	ID                   AssetID              `json:"id"`
	TemporalNumericValue TemporalNumericValue `json:"temporal_numeric_value"`
	PublisherMerkleRoot  Bytes32              `json:"publisher_merkle_root"`
	ValueComputeAlgHash  Bytes32              `json:"value_compute_alg_hash"`
	R                    Bytes32              `json:"r"`
	S                    Bytes32              `json:"s"`
	V                    uint8                `json:"v"`
}
