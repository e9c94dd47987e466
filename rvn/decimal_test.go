package rvn

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecimalString(t *testing.T) {
	tests := []struct {
		name  string
		coef  int64
		scale int8
		want  string
	}{
		{"integer", 123, 0, "123"},
		{"fractional", 12345, 2, "123.45"},
		{"negative", -9999, 2, "-99.99"},
		{"leading zero padded", 1, 4, "0.0001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDecimal(big.NewInt(tt.coef), tt.scale)
			require.Equal(t, tt.want, d.String())
		})
	}
}

func TestDecodeDecimalRoundTrip(t *testing.T) {
	inputs := []string{"123", "123.45", "-99.99", "0.0001", "-0.5"}
	for _, in := range inputs {
		d, rest, err := DecodeDecimal([]byte(in))
		require.NoError(t, err)
		require.Empty(t, rest)
		require.Equal(t, in, d.String())
	}
}

func TestDecodeFloat64(t *testing.T) {
	v, rest, err := DecodeFloat64([]byte("1.5"))
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, 1.5, v)
}

func TestEncodeDecodeFloat64RoundTrip(t *testing.T) {
	values := []float64{0, 1, -1, 1.5, -3.25, 100000.000001}
	for _, v := range values {
		e := newEncoder(Compact)
		EncodeFloat64(e, v)
		got, rest, err := DecodeFloat64(e.Bytes())
		require.NoError(t, err)
		require.Empty(t, rest)
		require.Equal(t, v, got)
	}
}

func TestDecodeDecimalNoDigits(t *testing.T) {
	_, _, err := DecodeDecimal([]byte("abc"))
	require.Error(t, err)
}
