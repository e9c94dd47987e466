package rvn

// Skip parses any well-formed value and discards it, dispatching on the
// first non-whitespace byte per §4.9. It's the only place this package
// materializes a shape-agnostic value — everywhere else, decoding is
// driven by the caller's StepField/Finalize closures.
//
// Tag-shaped input (a bare identifier, since tags have no decoder of
// their own in this package per §4.9) and any other syntax error land in
// the default case and fail TooShort.
func Skip(in []byte) ([]byte, error) {
	stripped := skipWhitespace(in)
	if len(stripped) == 0 {
		return stripped, tooShort(stripped)
	}

	switch {
	case stripped[0] == '"':
		_, rest, err := DecodeString(stripped)
		return skipWhitespace(rest), err

	case hasPrefix(stripped, boolTrueLiteral) || hasPrefix(stripped, boolFalseLiteral):
		_, rest, err := DecodeBool(stripped)
		return skipWhitespace(rest), err

	case hasPrefix(stripped, []byte("0b")) || hasPrefix(stripped, []byte("-0b")) ||
		hasPrefix(stripped, []byte("0x")) || hasPrefix(stripped, []byte("-0x")):
		_, rest, err := DecodeInt128(stripped)
		return skipWhitespace(rest), err

	case stripped[0] == '-' || (stripped[0] >= '0' && stripped[0] <= '9'):
		_, rest, err := DecodeDecimal(stripped)
		return skipWhitespace(rest), err

	case stripped[0] == '[':
		return skipList(stripped)

	case stripped[0] == '(':
		return skipTuple(stripped)

	case stripped[0] == '{':
		return skipRecord(stripped)

	default:
		return stripped, tooShort(stripped)
	}
}

func skipList(in []byte) ([]byte, error) {
	_, rest, err := DecodeList(in, func(elem []byte) (struct{}, []byte, error) {
		next, err := Skip(elem)
		return struct{}{}, next, err
	})
	if err != nil {
		return in, err
	}
	return skipWhitespace(rest), nil
}

func skipTuple(in []byte) ([]byte, error) {
	_, rest, err := DecodeTuple(in, TupleDecoder[struct{}, struct{}]{
		StepField: func(state struct{}, index int) TupleDecision[struct{}] {
			return Next(func(elem []byte) (struct{}, []byte, error) {
				next, err := Skip(elem)
				return struct{}{}, next, err
			})
		},
		Finalize: func(state struct{}) (struct{}, error) {
			return struct{}{}, nil
		},
	})
	if err != nil {
		return in, err
	}
	return skipWhitespace(rest), nil
}

// skipRecord is record-skip from §4.9: it must accept arbitrary keys, so
// it's a specialized variant of DecodeRecord rather than a reuse of it —
// it scans a key itself, then calls Skip on the value, using the same
// ", }"-terminated loop structure as §4.7.
func skipRecord(in []byte) ([]byte, error) {
	if len(in) == 0 || in[0] != '{' {
		return in, tooShort(in)
	}
	rest := in[1:]

	rest = skipWhitespace(rest)
	if len(rest) > 0 && rest[0] == '}' {
		return rest[1:], nil
	}

	for {
		rest = skipWhitespace(rest)
		key, afterKey, ok := scanKey(rest)
		if !ok || key == "" {
			return rest, tooShort(rest)
		}
		afterKey = skipWhitespace(afterKey)
		if len(afterKey) == 0 || afterKey[0] != ':' {
			return afterKey, tooShort(afterKey)
		}

		next, err := Skip(afterKey[1:])
		if err != nil {
			return afterKey[1:], err
		}

		next = skipWhitespace(next)
		if len(next) == 0 {
			return next, tooShort(next)
		}
		switch next[0] {
		case '}':
			return next[1:], nil
		case ',':
			rest = skipWhitespace(next[1:])
			if len(rest) > 0 && rest[0] == '}' {
				return rest[1:], nil
			}
		default:
			return next, tooShort(next)
		}
	}
}
