package rvn

// EncodeTag implements §4.9's tag encoder. Parenthesization is required
// only when the tag carries at least one attribute *and* is itself being
// encoded directly inside another tag's attribute list (inTag); a bare
// nullary tag, or a tag that isn't nested inside another tag's
// attributes, never needs parens — the surrounding compound's own
// brackets/whitespace already delimit it.
func EncodeTag(e *Encoder, name string, attrs ...func(*Encoder)) {
	if e.state.inTag && len(attrs) > 0 {
		encodeParenthesizedTag(e, name, attrs)
		return
	}
	encodeBareTag(e, name, attrs)
}

func encodeBareTag(e *Encoder, name string, attrs []func(*Encoder)) {
	e.writeString(name)
	outer := e.state
	attrState := outer.enterTagAttr()
	for _, attr := range attrs {
		if outer.pretty() {
			e.newline()
			e.writeIndent(attrState.indent)
		} else {
			e.writeByte(' ')
		}
		e.state = attrState
		attr(e)
	}
	e.state = outer
}

func encodeParenthesizedTag(e *Encoder, name string, attrs []func(*Encoder)) {
	outer := e.state
	groupState := outer.enterTagAttr()
	attrState := outer.enterParenthesizedTag()

	e.writeByte('(')
	e.newline()
	e.writeIndent(groupState.indent)
	e.writeString(name)
	for _, attr := range attrs {
		if outer.pretty() {
			e.newline()
			e.writeIndent(attrState.indent)
		} else {
			e.writeByte(' ')
		}
		e.state = attrState
		attr(e)
	}
	e.state = outer
	e.newline()
	e.writeIndent(outer.indent)
	e.writeByte(')')
}
