package rvn

// Decoder is the shape every primitive and compound decoder in this
// package conforms to once wrapped by the top-level driver: it receives
// whitespace-stripped input and returns the decoded value, the
// unconsumed remainder, and an error.
type Decoder[T any] func(in []byte) (T, []byte, error)

// DecodePartial runs decode against b, stripping leading and trailing
// whitespace/comments around the call per §4.10, and returns whatever
// suffix remains unconsumed.
func DecodePartial[T any](b []byte, decode Decoder[T]) (T, []byte, error) {
	stripped := skipWhitespace(b)
	v, rest, err := decode(stripped)
	if err != nil {
		return v, rest, err
	}
	return v, skipWhitespace(rest), nil
}

// DecodeFull runs decode against b and succeeds only if nothing but
// whitespace/comments remains afterward.
func DecodeFull[T any](b []byte, decode Decoder[T]) (T, error) {
	v, rest, err := DecodePartial(b, decode)
	if err != nil {
		return v, err
	}
	if len(rest) != 0 {
		return v, tooShort(rest)
	}
	return v, nil
}

// maxDepth is the nesting limit checked by DepthGuard (§5's suggested
// limit). The package's own decoders, Skip included, do not apply it;
// only decoders built through DepthGuard are bounded.
const maxDepth = 256

// DepthGuard wraps a compound decoder so that recursing past maxDepth
// fails TooShort instead of overflowing the stack. Compound decoders
// (list/record/tuple element decoders) that recurse into themselves
// should be built through this once per nesting level; it is not
// required for conformance, per §5, but is cheap to provide.
func DepthGuard[T any](depth int, decode Decoder[T]) Decoder[T] {
	return func(in []byte) (T, []byte, error) {
		var zero T
		if depth > maxDepth {
			return zero, in, tooShort(in)
		}
		return decode(in)
	}
}
