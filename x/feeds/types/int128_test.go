package types

import (
	"bytes"
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func drawInt128(t *rapid.T, label string) Int128 {
	return NewInt128(rapid.Uint64().Draw(t, label+"_hi"), rapid.Uint64().Draw(t, label+"_lo"))
}

func TestBiasRoundTripProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := drawInt128(t, "x")
		if got := DecodeBias(EncodeBias(x)); got != x {
			t.Fatalf("round trip of %s gave %s", x, got)
		}

		u := Uint128{Hi: rapid.Uint64().Draw(t, "u_hi"), Lo: rapid.Uint64().Draw(t, "u_lo")}
		if got := EncodeBias(DecodeBias(u)); got != u {
			t.Fatalf("inverse round trip of %+v gave %+v", u, got)
		}
	})
}

func TestBiasInjectiveAndOrderPreserving(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := drawInt128(t, "x")
		y := drawInt128(t, "y")

		ex, ey := EncodeBias(x), EncodeBias(y)
		if x != y && ex == ey {
			t.Fatalf("distinct %s and %s share an encoding", x, y)
		}
		if x.Cmp(y) != ex.Cmp(ey) {
			t.Fatalf("order of %s and %s not preserved", x, y)
		}
		bx, by := ex.Bytes(), ey.Bytes()
		if x.Cmp(y) != bytes.Compare(bx[:], by[:]) {
			t.Fatalf("byte order of %s and %s not preserved", x, y)
		}
	})
}

func TestBiasBoundaries(t *testing.T) {
	require.Equal(t, Uint128{}, EncodeBias(MinInt128))
	require.Equal(t, Uint128{Hi: signBit}, EncodeBias(Int128FromInt64(0)))
	require.Equal(t, Uint128{Hi: ^uint64(0), Lo: ^uint64(0)}, EncodeBias(MaxInt128))
	require.Equal(t, Uint128{Hi: ^signBit, Lo: ^uint64(0)}, EncodeBias(Int128FromInt64(-1)))
}

func TestInt128BigIntConversions(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"zero", "0"},
		{"one", "1"},
		{"minus one", "-1"},
		{"spot price", "62507457175499998000000"},
		{"negative price", "-3020199000000"},
		{"max", "170141183460469231731687303715884105727"},
		{"min", "-170141183460469231731687303715884105728"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, err := ParseInt128(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.in, x.String())
			require.Equal(t, tt.in, x.MathInt().String())

			b, _ := new(big.Int).SetString(tt.in, 10)
			require.Equal(t, 0, b.Cmp(x.BigInt()))
			require.Equal(t, b.Sign() < 0, x.IsNegative())
		})
	}

	require.Equal(t, MaxInt128, mustParse(t, "170141183460469231731687303715884105727"))
	require.Equal(t, MinInt128, mustParse(t, "-170141183460469231731687303715884105728"))
}

func mustParse(t *testing.T, s string) Int128 {
	t.Helper()
	x, err := ParseInt128(s)
	require.NoError(t, err)
	return x
}

func TestParseInt128Rejects(t *testing.T) {
	for _, in := range []string{
		"",
		"abc",
		"1.5",
		"170141183460469231731687303715884105728",
		"-170141183460469231731687303715884105729",
	} {
		_, err := ParseInt128(in)
		require.Error(t, err, in)
		require.ErrorIs(t, err, ErrInvalidUpdateData)
	}
}

func TestInt128FromInt64MatchesBigInt(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := rapid.Int64().Draw(t, "v")
		x := Int128FromInt64(v)
		if x.BigInt().Int64() != v || !x.BigInt().IsInt64() {
			t.Fatalf("Int128FromInt64(%d) = %s", v, x)
		}
		y, err := Int128FromBigInt(big.NewInt(v))
		if err != nil || y != x {
			t.Fatalf("big.Int conversion of %d gave %s, %v", v, y, err)
		}
	})
}

func TestInt128JSON(t *testing.T) {
	x := mustParse(t, "-3020199000000")
	bz, err := json.Marshal(x)
	require.NoError(t, err)
	require.Equal(t, `"-3020199000000"`, string(bz))

	var y Int128
	require.NoError(t, json.Unmarshal(bz, &y))
	require.Equal(t, x, y)

	require.Error(t, json.Unmarshal([]byte(`-3020199000000`), &y))
	require.Error(t, json.Unmarshal([]byte(`"not a number"`), &y))
}
