package floatconv

import (
	"errors"
	"strconv"

	"github.com/zeebo/errs"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("floatconv")

// The two failure kinds. Errors returned by Parse and ParseFloat
// unwrap to exactly one of these.
var (
	// ErrSyntax indicates that a literal does not match the
	// recognized grammar.
	ErrSyntax = errors.New("invalid syntax")

	// ErrRange indicates that the rounded magnitude of a literal
	// exceeds the largest finite value of the target format.
	ErrRange = errors.New("value out of range")
)

// A ParseError records a failed conversion: the offending literal and
// the failure kind.
type ParseError struct {
	Num string // the input literal
	Err error  // ErrSyntax or ErrRange
}

func (e *ParseError) Error() string {
	return "parsing " + strconv.Quote(e.Num) + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

func syntaxError(s string) error {
	return Error.Wrap(&ParseError{Num: s, Err: ErrSyntax})
}

func rangeError(s string) error {
	return Error.Wrap(&ParseError{Num: s, Err: ErrRange})
}
