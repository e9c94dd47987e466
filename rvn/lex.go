package rvn

// skipWhitespaceIndent consumes a maximal prefix of whitespace and line
// comments, returning the indent accumulated since the last newline (or
// from the start, if none was seen) together with the unread remainder.
//
// Space contributes +1 to the indent, tab +2, and both a bare newline
// and a line comment (# through the next newline, or through EOF) reset
// it to 0. The returned indent is informational only — see DESIGN.md —
// but is computed to match the original behavior this package mirrors.
func skipWhitespaceIndent(in []byte) (indent int, rest []byte) {
	i := 0
	for i < len(in) {
		switch in[i] {
		case ' ':
			indent++
			i++
		case '\t':
			indent += 2
			i++
		case '\n':
			indent = 0
			i++
		case '#':
			i++
			for i < len(in) && in[i] != '\n' {
				i++
			}
			if i < len(in) {
				i++ // consume the newline too
			}
			indent = 0
		default:
			return indent, in[i:]
		}
	}
	return indent, in[i:]
}

// skipWhitespace is skipWhitespaceIndent without the bookkeeping, for
// call sites that don't care about indent.
func skipWhitespace(in []byte) []byte {
	_, rest := skipWhitespaceIndent(in)
	return rest
}

func isDecimalDigit(b byte) bool {
	return b == '_' || (b >= '0' && b <= '9')
}

func isBinaryDigit(b byte) bool {
	return b == '_' || b == '0' || b == '1'
}

func isHexDigit(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

// stripSeparators removes '_' digit-separators so the result can be
// handed to the standard library's string-to-number conversions, which
// don't accept them uniformly across every width we support.
func stripSeparators(digits []byte) []byte {
	out := make([]byte, 0, len(digits))
	for _, b := range digits {
		if b != '_' {
			out = append(out, b)
		}
	}
	return out
}
