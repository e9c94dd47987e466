package rvn

// EncodeString appends s quoted and escaped. Only the five characters
// named in §4.5 are escaped; everything else, including multi-byte
// UTF-8 sequences, is copied through verbatim.
func EncodeString(e *Encoder, s string) {
	e.writeByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\n':
			e.writeByte('\\')
			e.writeByte('n')
		case '\t':
			e.writeByte('\\')
			e.writeByte('t')
		case '"':
			e.writeByte('\\')
			e.writeByte('"')
		case '\\':
			e.writeByte('\\')
			e.writeByte('\\')
		case '$':
			e.writeByte('\\')
			e.writeByte('$')
		default:
			e.writeByte(c)
		}
	}
	e.writeByte('"')
}

// DecodeString requires a leading '"', rejects a triple-quote, scans to
// the matching unescaped '"' processing the same five escapes, and fails
// on an unknown escape or an unterminated string.
func DecodeString(in []byte) (string, []byte, error) {
	if len(in) == 0 || in[0] != '"' {
		return "", in, tooShort(in)
	}
	if len(in) >= 3 && in[1] == '"' && in[2] == '"' {
		return "", in, tooShort(in)
	}

	buf := make([]byte, 0, len(in))
	i := 1
	for {
		if i >= len(in) {
			return "", in, tooShort(in)
		}
		c := in[i]
		if c == '"' {
			return string(buf), in[i+1:], nil
		}
		if c != '\\' {
			buf = append(buf, c)
			i++
			continue
		}
		if i+1 >= len(in) {
			return "", in[i+1:], tooShort(in[i+1:])
		}
		switch in[i+1] {
		case 'n':
			buf = append(buf, '\n')
		case 't':
			buf = append(buf, '\t')
		case '"':
			buf = append(buf, '"')
		case '\\':
			buf = append(buf, '\\')
		case '$':
			buf = append(buf, '$')
		default:
			return "", in[i+1:], tooShort(in[i+1:])
		}
		i += 2
	}
}
