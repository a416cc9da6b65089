// Package errs declares the error types returned by the value algebra.
//
// All of them are plain structs, so callers can compare them with == or pick
// them out with errors.As.
package errs

import "fmt"

// UnsupportedOp is returned when a binary operator has no rule for the kinds
// of its two operands.
type UnsupportedOp struct {
	Op      string
	LHSKind string
	RHSKind string
}

// Error implements the error interface.
func (e UnsupportedOp) Error() string {
	return fmt.Sprintf("unsupported operation: %s %s %s", e.LHSKind, e.Op, e.RHSKind)
}

// OutOfRange encapsulates the error when a value is out of the valid range.
type OutOfRange struct {
	What      string
	ValidLow  string
	ValidHigh string
	Actual    string
}

// Error implements the error interface.
func (e OutOfRange) Error() string {
	return fmt.Sprintf("out of range: %s must be from %s to %s, but is %s",
		e.What, e.ValidLow, e.ValidHigh, e.Actual)
}

// BadValue encapsulates the error when a value does not have the expected
// shape.
type BadValue struct {
	What   string
	Valid  string
	Actual string
}

// Error implements the error interface.
func (e BadValue) Error() string {
	return fmt.Sprintf("bad value: %v must be %v, but is %v", e.What, e.Valid, e.Actual)
}
