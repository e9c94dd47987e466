// Package rvn implements RVN, a human-editable data-interchange format
// whose concrete syntax mirrors an expression sublanguage: records,
// ordered sequences, tuples, tagged unions, strings, booleans, and
// integers in decimal/binary/hexadecimal plus fixed/floating decimals.
//
// # Data Model
//
// Scalars: bool, signed/unsigned ints (8/16/32/64/128), float32/float64,
// a fixed-point Decimal, string.
// Containers: list, record (named fields), tuple (positional, fixed
// arity).
// Special: tag — a symbolic name plus ordered attributes, the format's
// only sum-type carrier.
//
// # Syntax
//
//	Record:  {a:1,b:2,}
//	List:    [1,2,3,]
//	Tuple:   (1,"two",3,)
//	Tag:     Foo (Bar 1) (Baz 2 3)
//	Bool:    Bool.true / Bool.false
//	String:  "quoted \"string\""
//
// # Two output modes
//
// Compact emits no insignificant whitespace. Pretty indents nested
// compounds four spaces per level and places the closing delimiter of
// every non-empty compound on its own line; empty compounds stay "[]",
// "{}" or "()".
//
// # Type-directed decoding
//
// There is no universal value tree for records and tuples: the caller
// drives decoding field by field via StepField/Finalize closures (see
// RecordDecoder and TupleDecoder). The only place this package
// materializes a shape-agnostic value is Skip, which discards any
// well-formed value without knowing its type in advance.
//
// # Errors
//
// Every failure collapses to a single *TooShortError carrying the
// unconsumed input at the point of failure. There is no recovery from
// malformed input and no richer diagnosis.
package rvn
