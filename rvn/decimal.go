package rvn

import (
	"math/big"
	"strconv"
)

// scanDecimalLiteral recognizes §4.2 step 3's extension to the shared
// numeric prefix: an optional '.' followed by a decimal-digit run. No
// radix prefix and no exponent — the grammar in §6 only allows
// '-'? decdigits ('.' decdigits)?.
func scanDecimalLiteral(in []byte) (text []byte, rest []byte, ok bool) {
	i := 0
	if i < len(in) && in[i] == '-' {
		i++
	}
	start := i
	for i < len(in) && isDecimalDigit(in[i]) {
		i++
	}
	if i == start {
		return nil, in, false
	}
	if i < len(in) && in[i] == '.' {
		fracStart := i + 1
		j := fracStart
		for j < len(in) && isDecimalDigit(in[j]) {
			j++
		}
		if j > fracStart {
			i = j
		}
	}
	return stripSeparators(in[:i]), in[i:], true
}

// DecodeFloat32 decodes a 32-bit binary float.
func DecodeFloat32(in []byte) (float32, []byte, error) {
	text, rest, ok := scanDecimalLiteral(in)
	if !ok {
		return 0, in, tooShort(in)
	}
	v, err := strconv.ParseFloat(string(text), 32)
	if err != nil {
		return 0, rest, tooShort(rest)
	}
	return float32(v), rest, nil
}

// DecodeFloat64 decodes a 64-bit binary float.
func DecodeFloat64(in []byte) (float64, []byte, error) {
	text, rest, ok := scanDecimalLiteral(in)
	if !ok {
		return 0, in, tooShort(in)
	}
	v, err := strconv.ParseFloat(string(text), 64)
	if err != nil {
		return 0, rest, tooShort(rest)
	}
	return v, rest, nil
}

// EncodeFloat32 and EncodeFloat64 emit the shortest decimal text that
// round-trips through the corresponding parser, per §4.3's float note:
// byte-for-byte equality across implementations isn't required, only
// decodability.
func EncodeFloat32(e *Encoder, v float32) {
	e.writeString(strconv.FormatFloat(float64(v), 'f', -1, 32))
}

func EncodeFloat64(e *Encoder, v float64) {
	e.writeString(strconv.FormatFloat(v, 'f', -1, 64))
}

// Decimal is RVN's fixed-point decimal type: value = coefficient ·
// 10^(−scale), with a 128-bit two's-complement coefficient and an int8
// scale. This mirrors the teacher's Decimal128 arithmetic type, narrowed
// to what the wire codec needs: construction, string conversion, and
// the coefficient/scale pair a caller round-trips through.
type Decimal struct {
	Scale int8
	Coef  Int128
}

// NewDecimal builds a Decimal from a big.Int coefficient and a scale.
func NewDecimal(coef *big.Int, scale int8) Decimal {
	return Decimal{Scale: scale, Coef: Int128FromBigInt(coef)}
}

// String renders d using the same digit-insertion approach as the
// teacher's Decimal128.String: stringify the coefficient, then shift the
// decimal point in by Scale digits, zero-padding the coefficient first
// if it's shorter than the scale demands.
func (d Decimal) String() string {
	coefStr := d.Coef.BigInt().String()
	if d.Scale == 0 {
		return coefStr
	}

	negative := false
	if len(coefStr) > 0 && coefStr[0] == '-' {
		negative = true
		coefStr = coefStr[1:]
	}

	for len(coefStr) < int(d.Scale)+1 {
		coefStr = "0" + coefStr
	}

	insertPos := len(coefStr) - int(d.Scale)
	result := coefStr[:insertPos] + "." + coefStr[insertPos:]
	if negative {
		result = "-" + result
	}
	return result
}

// DecodeDecimal decodes a fixed-point Decimal per §4.2: optional '-',
// decimal digit run, optional '.' fractional run. The fractional digit
// count becomes the scale.
func DecodeDecimal(in []byte) (Decimal, []byte, error) {
	i := 0
	neg := false
	if i < len(in) && in[i] == '-' {
		neg = true
		i++
	}
	intStart := i
	for i < len(in) && isDecimalDigit(in[i]) {
		i++
	}
	if i == intStart {
		return Decimal{}, in, tooShort(in)
	}
	intPart := stripSeparators(in[intStart:i])

	var fracPart []byte
	if i < len(in) && in[i] == '.' {
		fracStart := i + 1
		j := fracStart
		for j < len(in) && isDecimalDigit(in[j]) {
			j++
		}
		if j > fracStart {
			fracPart = stripSeparators(in[fracStart:j])
			i = j
		}
	}
	rest := in[i:]

	coefStr := append(append([]byte{}, intPart...), fracPart...)
	coef, ok := new(big.Int).SetString(string(coefStr), 10)
	if !ok {
		return Decimal{}, rest, tooShort(rest)
	}
	if neg {
		coef.Neg(coef)
	}
	if coef.Cmp(negMinInt128) < 0 || coef.Cmp(maxInt128) > 0 {
		return Decimal{}, rest, tooShort(rest)
	}

	scale := len(fracPart)
	if scale > 127 {
		return Decimal{}, rest, tooShort(rest)
	}

	return Decimal{Scale: int8(scale), Coef: Int128FromBigInt(coef)}, rest, nil
}

// EncodeDecimal appends d's canonical text form.
func EncodeDecimal(e *Encoder, d Decimal) {
	e.writeString(d.String())
}
