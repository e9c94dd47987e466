package rvn

import (
	"math/big"
	"strconv"
)

// scanNumberPrefix recognizes the common numeric prefix shared by every
// integer width: an optional '-', then an optional radix prefix '0b' or
// '0x' selecting the digit class, else decimal. It returns the text span
// consumed (sign + digits, radix prefix stripped) together with the base
// to hand to strconv, and the unconsumed remainder.
func scanNumberPrefix(in []byte) (text []byte, base int, rest []byte, ok bool) {
	i := 0
	neg := false
	if i < len(in) && in[i] == '-' {
		neg = true
		i++
	}

	base = 10
	digitClass := isDecimalDigit
	if i+1 < len(in) && in[i] == '0' && (in[i+1] == 'b' || in[i+1] == 'x') {
		if in[i+1] == 'b' {
			base = 2
			digitClass = isBinaryDigit
		} else {
			base = 16
			digitClass = isHexDigit
		}
		i += 2
	}

	start := i
	for i < len(in) && digitClass(in[i]) {
		i++
	}
	if i == start {
		return nil, 0, in, false
	}

	digits := stripSeparators(in[start:i])
	if neg {
		out := make([]byte, 0, len(digits)+1)
		out = append(out, '-')
		out = append(out, digits...)
		digits = out
	}
	return digits, base, in[i:], true
}

func decodeSignedInt(in []byte, bitSize int) (int64, []byte, error) {
	text, base, rest, ok := scanNumberPrefix(in)
	if !ok {
		return 0, in, tooShort(in)
	}
	v, err := strconv.ParseInt(string(text), base, bitSize)
	if err != nil {
		return 0, rest, tooShort(rest)
	}
	return v, rest, nil
}

func decodeUnsignedInt(in []byte, bitSize int) (uint64, []byte, error) {
	text, base, rest, ok := scanNumberPrefix(in)
	if !ok {
		return 0, in, tooShort(in)
	}
	v, err := strconv.ParseUint(string(text), base, bitSize)
	if err != nil {
		return 0, rest, tooShort(rest)
	}
	return v, rest, nil
}

// DecodeInt8 decodes a signed 8-bit integer per §4.2: optional '-',
// optional 0b/0x radix, else decimal, '_' accepted anywhere in the run.
func DecodeInt8(in []byte) (int8, []byte, error) {
	v, rest, err := decodeSignedInt(in, 8)
	return int8(v), rest, err
}

func DecodeInt16(in []byte) (int16, []byte, error) {
	v, rest, err := decodeSignedInt(in, 16)
	return int16(v), rest, err
}

func DecodeInt32(in []byte) (int32, []byte, error) {
	v, rest, err := decodeSignedInt(in, 32)
	return int32(v), rest, err
}

func DecodeInt64(in []byte) (int64, []byte, error) {
	return decodeSignedInt(in, 64)
}

func DecodeUint8(in []byte) (uint8, []byte, error) {
	v, rest, err := decodeUnsignedInt(in, 8)
	return uint8(v), rest, err
}

func DecodeUint16(in []byte) (uint16, []byte, error) {
	v, rest, err := decodeUnsignedInt(in, 16)
	return uint16(v), rest, err
}

func DecodeUint32(in []byte) (uint32, []byte, error) {
	v, rest, err := decodeUnsignedInt(in, 32)
	return uint32(v), rest, err
}

func DecodeUint64(in []byte) (uint64, []byte, error) {
	return decodeUnsignedInt(in, 64)
}

// Int128 is a signed 128-bit integer, stored as a two's-complement
// 16-byte big-endian coefficient — the same representation §3's 128-bit
// width and the Decimal coefficient share.
type Int128 struct {
	bytes [16]byte
}

// Uint128 is an unsigned 128-bit integer, stored big-endian.
type Uint128 struct {
	bytes [16]byte
}

func int128FromBig(v *big.Int) [16]byte {
	var out [16]byte
	if v.Sign() >= 0 {
		b := v.Bytes()
		if len(b) > 16 {
			b = b[len(b)-16:]
		}
		copy(out[16-len(b):], b)
		return out
	}
	tmp := new(big.Int).Add(v, new(big.Int).Lsh(big.NewInt(1), 128))
	b := tmp.Bytes()
	if len(b) > 16 {
		b = b[len(b)-16:]
	}
	copy(out[16-len(b):], b)
	return out
}

func bigFromInt128(b [16]byte) *big.Int {
	v := new(big.Int).SetBytes(b[:])
	if b[0]&0x80 != 0 {
		v.Sub(v, new(big.Int).Lsh(big.NewInt(1), 128))
	}
	return v
}

func bigFromUint128(b [16]byte) *big.Int {
	return new(big.Int).SetBytes(b[:])
}

// Int128FromBigInt converts an arbitrary-precision integer, truncating
// it to 128 bits without a range check. DecodeDecimal checks range
// before calling it (per §4.2, overflow is a decode error); NewDecimal
// passes its coefficient through unchecked.
func Int128FromBigInt(v *big.Int) Int128 {
	return Int128{bytes: int128FromBig(v)}
}

func (v Int128) BigInt() *big.Int {
	return bigFromInt128(v.bytes)
}

func Uint128FromBigInt(v *big.Int) Uint128 {
	var out [16]byte
	b := v.Bytes()
	if len(b) > 16 {
		b = b[len(b)-16:]
	}
	copy(out[16-len(b):], b)
	return Uint128{bytes: out}
}

func (v Uint128) BigInt() *big.Int {
	return bigFromUint128(v.bytes)
}

var minInt128 = new(big.Int).Lsh(big.NewInt(1), 127)
var maxInt128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
var negMinInt128 = new(big.Int).Neg(minInt128)
var maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

// DecodeInt128 decodes a signed 128-bit integer.
func DecodeInt128(in []byte) (Int128, []byte, error) {
	text, base, rest, ok := scanNumberPrefix(in)
	if !ok {
		return Int128{}, in, tooShort(in)
	}
	v, ok := new(big.Int).SetString(string(text), base)
	if !ok || v.Cmp(negMinInt128) < 0 || v.Cmp(maxInt128) > 0 {
		return Int128{}, rest, tooShort(rest)
	}
	return Int128{bytes: int128FromBig(v)}, rest, nil
}

// DecodeUint128 decodes an unsigned 128-bit integer.
func DecodeUint128(in []byte) (Uint128, []byte, error) {
	text, base, rest, ok := scanNumberPrefix(in)
	if !ok {
		return Uint128{}, in, tooShort(in)
	}
	v, ok := new(big.Int).SetString(string(text), base)
	if !ok || v.Sign() < 0 || v.Cmp(maxUint128) > 0 {
		return Uint128{}, rest, tooShort(rest)
	}
	return Uint128FromBigInt(v), rest, nil
}

// EncodeInt8 through EncodeUint128 append the canonical decimal text of
// v — no radix prefix, no separators — matching §4.3.
func EncodeInt8(e *Encoder, v int8)     { e.writeString(strconv.FormatInt(int64(v), 10)) }
func EncodeInt16(e *Encoder, v int16)   { e.writeString(strconv.FormatInt(int64(v), 10)) }
func EncodeInt32(e *Encoder, v int32)   { e.writeString(strconv.FormatInt(int64(v), 10)) }
func EncodeInt64(e *Encoder, v int64)   { e.writeString(strconv.FormatInt(v, 10)) }
func EncodeUint8(e *Encoder, v uint8)   { e.writeString(strconv.FormatUint(uint64(v), 10)) }
func EncodeUint16(e *Encoder, v uint16) { e.writeString(strconv.FormatUint(uint64(v), 10)) }
func EncodeUint32(e *Encoder, v uint32) { e.writeString(strconv.FormatUint(uint64(v), 10)) }
func EncodeUint64(e *Encoder, v uint64) { e.writeString(strconv.FormatUint(v, 10)) }

func EncodeInt128(e *Encoder, v Int128) {
	e.writeString(bigFromInt128(v.bytes).String())
}

func EncodeUint128(e *Encoder, v Uint128) {
	e.writeString(bigFromUint128(v.bytes).String())
}
