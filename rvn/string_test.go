package rvn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "hello", `"hello"`},
		{"newline", "a\nc", `"a\nc"`},
		{"tab", "a\tc", `"a\tc"`},
		{"quote", `a"c`, `"a\"c"`},
		{"backslash", `a\c`, `"a\\c"`},
		{"dollar", "a$c", `"a\$c"`},
		{"unicode passthrough", "héllo", `"héllo"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEncoder(Compact)
			EncodeString(e, tt.input)
			require.Equal(t, tt.want, string(e.Bytes()))
		})
	}
}

func TestDecodeString(t *testing.T) {
	v, rest, err := DecodeString([]byte(`"a\nc"`))
	require.NoError(t, err)
	require.Equal(t, "a\nc", v)
	require.Empty(t, rest)
}

func TestDecodeStringUnknownEscape(t *testing.T) {
	_, _, err := DecodeString([]byte(`"\X"`))
	require.Error(t, err)
}

func TestDecodeStringTripleQuoteRejected(t *testing.T) {
	_, _, err := DecodeString([]byte(`"""not supported"""`))
	require.Error(t, err)
}

func TestDecodeStringUnterminated(t *testing.T) {
	in := []byte(`"unterminated`)
	_, rest, err := DecodeString(in)
	require.Error(t, err)
	require.Equal(t, in, rest)
}

func TestStringRoundTrip(t *testing.T) {
	inputs := []string{"", "plain", "with \"quotes\"", "with\nnewline", "with\\backslash", "with$dollar"}
	for _, s := range inputs {
		e := newEncoder(Compact)
		EncodeString(e, s)
		got, rest, err := DecodeString(e.Bytes())
		require.NoError(t, err)
		require.Empty(t, rest)
		require.Equal(t, s, got)
	}
}
