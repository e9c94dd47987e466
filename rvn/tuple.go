package rvn

// TupleDecision is the result of a TupleDecoder's StepField for one
// index: either a decoder for that position, or TooLong to signal the
// shape has no more positions to fill.
type TupleDecision[S any] struct {
	decode func(in []byte) (S, []byte, error)
	tooLong bool
}

// Next returns a decision carrying a decoder for the current index; d
// receives only the remainder of the tuple body (any earlier state must
// be captured by the StepField closure that built it), and must return
// the updated state.
func Next[S any](d func(in []byte) (S, []byte, error)) TupleDecision[S] {
	return TupleDecision[S]{decode: d}
}

// TooLong returns a decision signaling no decoder exists for the
// current index — i.e. the caller's shape has been fully populated.
func TooLong[S any]() TupleDecision[S] {
	return TupleDecision[S]{tooLong: true}
}

// TupleDecoder drives type-directed tuple decoding: StepField is called
// with the running state and the 0-based index about to be decoded, and
// Finalize converts the accumulated state into the result value once the
// closing ')' is reached.
type TupleDecoder[S, V any] struct {
	State    S
	StepField func(state S, index int) TupleDecision[S]
	Finalize  func(state S) (V, error)
}

// DecodeTuple decodes a paren-delimited, comma-separated, fixed-arity
// tuple. Providing too many elements (StepField returns TooLong when
// input shows another value) fails TooShort with rest at the first extra
// element. When ')' is reached, Finalize is called with whatever state
// has accumulated, so too few elements fail only if Finalize rejects
// that state.
func DecodeTuple[S, V any](in []byte, d TupleDecoder[S, V]) (V, []byte, error) {
	var zero V
	if len(in) == 0 || in[0] != '(' {
		return zero, in, tooShort(in)
	}
	rest := in[1:]
	state := d.State

	for index := 0; ; index++ {
		rest = skipWhitespace(rest)
		decision := d.StepField(state, index)

		if decision.tooLong {
			if len(rest) > 0 && rest[0] == ')' {
				v, err := d.Finalize(state)
				if err != nil {
					return zero, rest, err
				}
				return v, rest[1:], nil
			}
			return zero, rest, tooShort(rest)
		}

		newState, next, err := decision.decode(rest)
		if err != nil {
			if len(rest) > 0 && rest[0] == ')' {
				v, ferr := d.Finalize(state)
				if ferr != nil {
					return zero, rest, ferr
				}
				return v, rest[1:], nil
			}
			return zero, rest, err
		}
		state = newState

		next = skipWhitespace(next)
		if len(next) == 0 {
			return zero, next, tooShort(next)
		}
		switch next[0] {
		case ')':
			v, ferr := d.Finalize(state)
			if ferr != nil {
				return zero, next, ferr
			}
			return v, next[1:], nil
		case ',':
			rest = next[1:]
		default:
			return zero, next, tooShort(next)
		}
	}
}

// EncodeTuple mirrors list encoding with '(' / ')' delimiters. A
// trailing comma is always present. encodeElem is called once per
// position, with indices 0 through n-1 in order.
func EncodeTuple(e *Encoder, n int, encodeElem func(*Encoder, int)) {
	e.writeByte('(')
	if n == 0 {
		e.writeByte(')')
		return
	}
	outer := e.state
	e.state = outer.enterCompound()
	e.newline()
	for i := 0; i < n; i++ {
		e.writeIndent(e.state.indent)
		encodeElem(e, i)
		e.writeByte(',')
		e.newline()
	}
	e.state = outer
	e.writeIndent(outer.indent)
	e.writeByte(')')
}
