package rvn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSkipPrimitives(t *testing.T) {
	tests := []string{
		`"a string"`,
		"Bool.true",
		"Bool.false",
		"123",
		"-123",
		"123.45",
		"0b101",
		"-0b101",
		"0x1a",
		"-0x1a",
	}
	for _, in := range tests {
		rest, err := Skip([]byte(in))
		require.NoError(t, err, "input %q", in)
		require.Empty(t, rest)
	}
}

func TestSkipList(t *testing.T) {
	rest, err := Skip([]byte(`[1,2,"three",]`))
	require.NoError(t, err)
	require.Empty(t, rest)
}

func TestSkipTuple(t *testing.T) {
	rest, err := Skip([]byte(`(1,"two",[3],)`))
	require.NoError(t, err)
	require.Empty(t, rest)
}

func TestSkipRecord(t *testing.T) {
	rest, err := Skip([]byte(`{a:1,b:"two",c:[3,4],}`))
	require.NoError(t, err)
	require.Empty(t, rest)
}

func TestSkipRecordEmpty(t *testing.T) {
	rest, err := Skip([]byte(`{}`))
	require.NoError(t, err)
	require.Empty(t, rest)
}

func TestSkipNestedCompound(t *testing.T) {
	rest, err := Skip([]byte(`{a:[1,(2,3),{b:4}],}`))
	require.NoError(t, err)
	require.Empty(t, rest)
}

func TestSkipTruncated(t *testing.T) {
	_, err := Skip([]byte(`{a:1,`))
	require.Error(t, err)
}

func TestSkipLeavesTrailingBytes(t *testing.T) {
	rest, err := Skip([]byte(`123 rest-of-input`))
	require.NoError(t, err)
	require.Equal(t, "rest-of-input", string(rest))
}
