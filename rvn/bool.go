package rvn

var boolTrueLiteral = []byte("Bool.true")
var boolFalseLiteral = []byte("Bool.false")

// EncodeBool appends the literal Bool.true or Bool.false.
func EncodeBool(e *Encoder, v bool) {
	if v {
		e.writeBytes(boolTrueLiteral)
	} else {
		e.writeBytes(boolFalseLiteral)
	}
}

// DecodeBool recognizes exactly the nine-byte prefix Bool.true or the
// ten-byte prefix Bool.false; anything else is TooShort with the
// original bytes as rest.
func DecodeBool(in []byte) (bool, []byte, error) {
	if hasPrefix(in, boolTrueLiteral) {
		return true, in[len(boolTrueLiteral):], nil
	}
	if hasPrefix(in, boolFalseLiteral) {
		return false, in[len(boolFalseLiteral):], nil
	}
	return false, in, tooShort(in)
}

func hasPrefix(in, prefix []byte) bool {
	if len(in) < len(prefix) {
		return false
	}
	for i, b := range prefix {
		if in[i] != b {
			return false
		}
	}
	return true
}
