package types

import (
	"encoding/binary"
	"encoding/json"
	"math/big"

	sdkerrors "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

const signBit = uint64(1) << 63

var (
	two128    = new(big.Int).Lsh(big.NewInt(1), 128)
	maxInt128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	minInt128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
)

// Int128 is a signed 128-bit integer held as two's complement words.
type Int128 struct {
	hi uint64
	lo uint64
}

// Uint128 is an unsigned 128-bit integer.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

var (
	MaxInt128 = Int128{hi: ^signBit, lo: ^uint64(0)}
	MinInt128 = Int128{hi: signBit}
)

// NewInt128 builds a value from its two's complement words.
func NewInt128(hi, lo uint64) Int128 {
	return Int128{hi: hi, lo: lo}
}

// Int128FromInt64 sign-extends v.
func Int128FromInt64(v int64) Int128 {
	x := Int128{lo: uint64(v)}
	if v < 0 {
		x.hi = ^uint64(0)
	}
	return x
}

// Int128FromBigInt converts b, failing when it falls outside [-2^127, 2^127-1].
func Int128FromBigInt(b *big.Int) (Int128, error) {
	if b == nil {
		return Int128{}, sdkerrors.Wrap(ErrInvalidUpdateData, "nil integer")
	}
	if b.Cmp(maxInt128) > 0 || b.Cmp(minInt128) < 0 {
		return Int128{}, sdkerrors.Wrapf(ErrInvalidUpdateData, "%s overflows int128", b)
	}
	u := new(big.Int).Set(b)
	if u.Sign() < 0 {
		u.Add(u, two128)
	}
	var buf [16]byte
	u.FillBytes(buf[:])
	return Int128FromBytes(buf), nil
}

// ParseInt128 parses a base-10 string.
func ParseInt128(s string) (Int128, error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int128{}, sdkerrors.Wrapf(ErrInvalidUpdateData, "invalid int128 %q", s)
	}
	return Int128FromBigInt(b)
}

// Int128FromBytes decodes 16 big-endian two's complement bytes.
func Int128FromBytes(b [16]byte) Int128 {
	return Int128{
		hi: binary.BigEndian.Uint64(b[:8]),
		lo: binary.BigEndian.Uint64(b[8:]),
	}
}

// Bytes returns the 16-byte big-endian two's complement form.
func (x Int128) Bytes() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], x.hi)
	binary.BigEndian.PutUint64(b[8:], x.lo)
	return b
}

// Words returns the raw two's complement words.
func (x Int128) Words() (hi, lo uint64) {
	return x.hi, x.lo
}

func (x Int128) IsNegative() bool {
	return x.hi&signBit != 0
}

func (x Int128) IsZero() bool {
	return x.hi == 0 && x.lo == 0
}

// Cmp returns -1, 0 or +1 depending on whether x is less than, equal to or
// greater than y.
func (x Int128) Cmp(y Int128) int {
	switch {
	case int64(x.hi) < int64(y.hi):
		return -1
	case int64(x.hi) > int64(y.hi):
		return 1
	case x.lo < y.lo:
		return -1
	case x.lo > y.lo:
		return 1
	}
	return 0
}

// BigInt returns x as a new big.Int.
func (x Int128) BigInt() *big.Int {
	b := x.Bytes()
	v := new(big.Int).SetBytes(b[:])
	if x.IsNegative() {
		v.Sub(v, two128)
	}
	return v
}

// MathInt returns x as an sdk math integer.
func (x Int128) MathInt() sdkmath.Int {
	return sdkmath.NewIntFromBigInt(x.BigInt())
}

func (x Int128) String() string {
	return x.BigInt().String()
}

// MarshalJSON encodes x as a quoted decimal string.
func (x Int128) MarshalJSON() ([]byte, error) {
	return json.Marshal(x.String())
}

func (x *Int128) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return sdkerrors.Wrap(ErrDeserialization, err.Error())
	}
	v, err := ParseInt128(s)
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// Uint128FromBytes decodes 16 big-endian bytes.
func Uint128FromBytes(b [16]byte) Uint128 {
	return Uint128{
		Hi: binary.BigEndian.Uint64(b[:8]),
		Lo: binary.BigEndian.Uint64(b[8:]),
	}
}

func (u Uint128) Bytes() [16]byte {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], u.Hi)
	binary.BigEndian.PutUint64(b[8:], u.Lo)
	return b
}

func (u Uint128) Cmp(v Uint128) int {
	switch {
	case u.Hi < v.Hi:
		return -1
	case u.Hi > v.Hi:
		return 1
	case u.Lo < v.Lo:
		return -1
	case u.Lo > v.Lo:
		return 1
	}
	return 0
}

// EncodeBias maps x to x + 2^127 modulo 2^128. The mapping is a bijection
// and preserves order, so encoded values sort like the signed originals.
func EncodeBias(x Int128) Uint128 {
	return Uint128{Hi: x.hi ^ signBit, Lo: x.lo}
}

// DecodeBias is the inverse of EncodeBias.
func DecodeBias(u Uint128) Int128 {
	return Int128{hi: u.Hi ^ signBit, lo: u.Lo}
}
