package rvn

import "fmt"

// TooShortError is the codec's single failure tag. Every parse error,
// regardless of cause — truncated input, a malformed digit run, an
// unknown escape, a width overflow, a missing delimiter — surfaces as
// one of these. Rest is the unconsumed input at the point closest to the
// offending byte that the failing decoder could determine.
type TooShortError struct {
	Rest []byte
}

func (e *TooShortError) Error() string {
	return fmt.Sprintf("rvn: too short, %d byte(s) unconsumed", len(e.Rest))
}

func tooShort(rest []byte) error {
	return &TooShortError{Rest: rest}
}
