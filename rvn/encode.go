package rvn

// Encode runs encodeValue against a fresh Encoder in the given mode and
// returns the accumulated bytes. The initial FormatState has indent 0
// and inTag false, per §6.
func Encode(mode Mode, encodeValue func(*Encoder)) []byte {
	e := newEncoder(mode)
	encodeValue(e)
	return e.Bytes()
}
