// Package compinterrors holds the error kinds shared by decint and asciiint.
//
// ParseError wraps its underlying cause with github.com/pkg/errors so callers
// get an annotated chain (errors.Cause, %+v stack traces) instead of a bare
// string, matching the error-handling idiom this module's ambient stack is
// drawn from. The other kinds carry only their own fields and have no cause
// to unwrap.
package compinterrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// ParseError reports a malformed decimal (or scientific) string.
type ParseError struct {
	Input string
	Pos   int
	cause error
}

func NewParseError(input string, pos int, cause error) *ParseError {
	return &ParseError{Input: input, Pos: pos, cause: errors.WithStack(cause)}
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("compint: parse error at position %d in %q: %v", e.Pos, e.Input, e.cause)
}

func (e *ParseError) Unwrap() error { return e.cause }

// IndexError reports an out-of-range CharAt index.
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("compint: index %d out of range [0,%d)", e.Index, e.Length)
}

// OverflowError reports a requested capacity beyond the soft implementation limit.
type OverflowError struct {
	Requested int
	Limit     int
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("compint: requested %d limbs exceeds limit of %d", e.Requested, e.Limit)
}

// IllegalStateError reports an AsciiInt operation that requires an
// invariant the value no longer satisfies (e.g. ToHexByteArray after any
// mutation has cleared the hex-safe bit).
type IllegalStateError struct {
	Reason string
}

func (e *IllegalStateError) Error() string {
	return fmt.Sprintf("compint: illegal state: %s", e.Reason)
}

// DivisionError reports divideInPlace(0).
type DivisionError struct{}

func (e *DivisionError) Error() string {
	return "compint: division by zero"
}
