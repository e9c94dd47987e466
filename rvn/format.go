package rvn

import "bytes"

// Mode selects one of the two RVN output encodings.
type Mode int

const (
	// Compact emits no insignificant whitespace.
	Compact Mode = iota
	// Pretty indents nested compounds four spaces per level, places a
	// newline after every opening bracket of a non-empty compound and
	// after every trailing comma, and puts each closing bracket on its
	// own line at the outer indent.
	Pretty
)

const indentStep = "    "

// FormatState is threaded by value through every encode call. It is
// never stored in a global: parenthesization of nested tags depends on
// precise local updates as the tree walk descends and ascends.
type FormatState struct {
	mode   Mode
	indent int
	inTag  bool
}

func newFormatState(mode Mode) FormatState {
	return FormatState{mode: mode}
}

// enterCompound returns the state to use inside a list/record/tuple
// body: one indent level deeper, and no longer directly inside a tag's
// attribute list.
func (f FormatState) enterCompound() FormatState {
	return FormatState{mode: f.mode, indent: f.indent + 1, inTag: false}
}

// enterTagAttr returns the state to use while encoding one attribute of
// a tag: one indent level deeper, with inTag set so a nested tag knows
// it may need parenthesizing.
func (f FormatState) enterTagAttr() FormatState {
	return FormatState{mode: f.mode, indent: f.indent + 1, inTag: true}
}

// enterParenthesizedTag is enterTagAttr applied twice: once for the
// parenthesized group itself, once for the attributes inside it.
func (f FormatState) enterParenthesizedTag() FormatState {
	return FormatState{mode: f.mode, indent: f.indent + 2, inTag: true}
}

func (f FormatState) pretty() bool {
	return f.mode == Pretty
}

// Encoder accumulates encoded bytes. It never rewrites previously
// written bytes — every method call only appends.
type Encoder struct {
	buf   bytes.Buffer
	state FormatState
}

func newEncoder(mode Mode) *Encoder {
	e := &Encoder{state: newFormatState(mode)}
	e.buf.Grow(64)
	return e
}

func (e *Encoder) Bytes() []byte {
	return e.buf.Bytes()
}

func (e *Encoder) writeByte(b byte) {
	e.buf.WriteByte(b)
}

func (e *Encoder) writeString(s string) {
	e.buf.WriteString(s)
}

func (e *Encoder) writeBytes(b []byte) {
	e.buf.Write(b)
}

func (e *Encoder) newline() {
	if e.state.pretty() {
		e.buf.WriteByte('\n')
	}
}

func (e *Encoder) writeIndent(level int) {
	if !e.state.pretty() {
		return
	}
	for i := 0; i < level; i++ {
		e.buf.WriteString(indentStep)
	}
}
