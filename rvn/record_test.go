package rvn

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type userState struct {
	name string
	age  int64
}

func decodeUserRecord(in []byte) (userState, []byte, error) {
	return DecodeRecord(in, RecordDecoder[userState, userState]{
		StepField: func(state userState, key string) FieldDecision[userState] {
			switch key {
			case "name":
				return Keep(func(state userState, in []byte) (userState, []byte, error) {
					v, rest, err := DecodeString(in)
					state.name = v
					return state, rest, err
				})
			case "age":
				return Keep(func(state userState, in []byte) (userState, []byte, error) {
					v, rest, err := DecodeInt64(in)
					state.age = v
					return state, rest, err
				})
			default:
				return SkipField[userState]()
			}
		},
		Finalize: func(state userState) (userState, error) {
			return state, nil
		},
	})
}

func TestDecodeRecord(t *testing.T) {
	got, rest, err := decodeUserRecord([]byte(`{name:"Alice",age:30}`))
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, "Alice", got.name)
	require.Equal(t, int64(30), got.age)
}

func TestDecodeRecordUnknownFieldsSkipped(t *testing.T) {
	got, rest, err := decodeUserRecord([]byte(`{name:"Bob",extra:[1,2,3],age:5}`))
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, "Bob", got.name)
	require.Equal(t, int64(5), got.age)
}

func TestDecodeRecordEmpty(t *testing.T) {
	got, rest, err := decodeUserRecord([]byte(`{}`))
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, userState{}, got)
}

func TestDecodeRecordTrailingComma(t *testing.T) {
	got, rest, err := decodeUserRecord([]byte(`{name:"Cara",age:1,}`))
	require.NoError(t, err)
	require.Empty(t, rest)
	require.Equal(t, "Cara", got.name)
}

func TestDecodeRecordMissingColon(t *testing.T) {
	_, _, err := decodeUserRecord([]byte(`{name"Alice"}`))
	require.Error(t, err)
}

func TestDecodeRecordTruncated(t *testing.T) {
	_, _, err := decodeUserRecord([]byte(`{name:"Alice"`))
	require.Error(t, err)
}

func TestEncodeRecord(t *testing.T) {
	got := Encode(Compact, func(e *Encoder) {
		EncodeRecord(e, []Field{
			{Key: "name", Encode: func(e *Encoder) { EncodeString(e, "Alice") }},
			{Key: "age", Encode: func(e *Encoder) { EncodeInt64(e, 30) }},
		})
	})
	require.Equal(t, `{name:"Alice",age:30,}`, string(got))
}

func TestEncodeEmptyRecord(t *testing.T) {
	got := Encode(Compact, func(e *Encoder) {
		EncodeRecord(e, nil)
	})
	require.Equal(t, "{}", string(got))
}

func TestRecordRoundTrip(t *testing.T) {
	for _, mode := range []Mode{Compact, Pretty} {
		encoded := Encode(mode, func(e *Encoder) {
			EncodeRecord(e, []Field{
				{Key: "name", Encode: func(e *Encoder) { EncodeString(e, "Dana") }},
				{Key: "age", Encode: func(e *Encoder) { EncodeInt64(e, 42) }},
			})
		})
		got, err := DecodeFull(encoded, decodeUserRecord)
		require.NoError(t, err)
		require.Equal(t, "Dana", got.name)
		require.Equal(t, int64(42), got.age)
	}
}
