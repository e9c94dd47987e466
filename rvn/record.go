package rvn

// FieldDecision is the result of a RecordDecoder's StepField for one
// key: either Keep, carrying a decoder to run against the field's
// value, or Skip, which hands the value to the skip-decoder and leaves
// the accumulator state untouched.
type FieldDecision[S any] struct {
	decode func(state S, in []byte) (S, []byte, error)
	skip   bool
}

// Keep returns a decision that runs decode against the field value and
// folds its result into the running state.
func Keep[S any](decode func(state S, in []byte) (S, []byte, error)) FieldDecision[S] {
	return FieldDecision[S]{decode: decode}
}

// SkipField returns a decision that discards the field's value with the
// skip-decoder, retaining state unchanged.
func SkipField[S any]() FieldDecision[S] {
	return FieldDecision[S]{skip: true}
}

// RecordDecoder drives type-directed record decoding. StepField is
// called once per key encountered; Finalize converts the accumulated
// state into the result once the closing '}' is reached.
type RecordDecoder[S, V any] struct {
	State     S
	StepField func(state S, key string) FieldDecision[S]
	Finalize  func(state S) (V, error)
}

func scanKey(in []byte) (key string, rest []byte, ok bool) {
	i := 0
	for i < len(in) {
		c := in[i]
		if c == ' ' || c == '\t' || c == '\n' || c == '#' || c == ':' {
			break
		}
		i++
	}
	return string(in[:i]), in[i:], true
}

// DecodeRecord decodes a brace-delimited, key:value, comma-separated
// record. An empty record ("{}" or "{ }") is special-cased, matching the
// edge case called out in §4.7.
func DecodeRecord[S, V any](in []byte, d RecordDecoder[S, V]) (V, []byte, error) {
	var zero V
	if len(in) == 0 || in[0] != '{' {
		return zero, in, tooShort(in)
	}
	rest := in[1:]
	state := d.State

	rest = skipWhitespace(rest)
	if len(rest) > 0 && rest[0] == '}' {
		v, err := d.Finalize(state)
		if err != nil {
			return zero, rest, err
		}
		return v, rest[1:], nil
	}

	for {
		rest = skipWhitespace(rest)
		key, afterKey, ok := scanKey(rest)
		if !ok || key == "" {
			return zero, rest, tooShort(rest)
		}
		afterKey = skipWhitespace(afterKey)
		if len(afterKey) == 0 || afterKey[0] != ':' {
			return zero, afterKey, tooShort(afterKey)
		}
		valueInput := afterKey[1:]

		decision := d.StepField(state, key)
		var next []byte
		var err error
		if decision.skip {
			next, err = Skip(skipWhitespace(valueInput))
			if err != nil {
				return zero, valueInput, err
			}
		} else {
			state, next, err = decision.decode(state, skipWhitespace(valueInput))
			if err != nil {
				return zero, valueInput, err
			}
		}

		next = skipWhitespace(next)
		if len(next) == 0 {
			return zero, next, tooShort(next)
		}
		switch next[0] {
		case '}':
			v, ferr := d.Finalize(state)
			if ferr != nil {
				return zero, next, ferr
			}
			return v, next[1:], nil
		case ',':
			rest = next[1:]
			rest = skipWhitespace(rest)
			if len(rest) > 0 && rest[0] == '}' {
				v, ferr := d.Finalize(state)
				if ferr != nil {
					return zero, rest, ferr
				}
				return v, rest[1:], nil
			}
		default:
			return zero, next, tooShort(next)
		}
	}
}

// Field is one caller-ordered key/value pair for EncodeRecord.
type Field struct {
	Key    string
	Encode func(*Encoder)
}

// EncodeRecord emits a brace-delimited record in the caller-supplied
// field order. An empty record encodes as "{}".
func EncodeRecord(e *Encoder, fields []Field) {
	e.writeByte('{')
	if len(fields) == 0 {
		e.writeByte('}')
		return
	}
	outer := e.state
	e.state = outer.enterCompound()
	e.newline()
	for _, f := range fields {
		e.writeIndent(e.state.indent)
		e.writeString(f.Key)
		e.writeByte(':')
		if e.state.pretty() {
			e.writeByte(' ')
		}
		f.Encode(e)
		e.writeByte(',')
		e.newline()
	}
	e.state = outer
	e.writeIndent(outer.indent)
	e.writeByte('}')
}
