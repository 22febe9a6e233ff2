package types

import (
	"fmt"
	"math/big"
)

var (
	_ error = DivisionByZeroError{}
	_ error = OverflowError{}
	_ error = UnderflowError{}
	_ error = InvalidArgumentError{}
)

// DivisionByZeroError is returned when a denominator is, or becomes, zero:
// either at construction or when taking the reciprocal of zero.
type DivisionByZeroError struct{}

func (DivisionByZeroError) Error() string {
	return "division by zero"
}

// OverflowError is returned when the whole part of a result does not fit in
// an int64, or when negation or absolute value is applied to the most
// negative representable value. Value holds the exact out-of-range number.
type OverflowError struct {
	Value *big.Int
}

func (e OverflowError) Error() string {
	return fmt.Sprintf("overflow: %s is outside the int64 range", e.Value)
}

// UnderflowError is returned when the numerator or denominator of a result
// does not fit in an int64 while the whole part does: the magnitude is
// representable but the exact precision is not. Value holds the exact
// offending component and Approx the closest representable rational, so a
// caller can opt into reduced precision instead of aborting.
type UnderflowError struct {
	Value  *big.Int
	Approx Rational
}

func (e UnderflowError) Error() string {
	return fmt.Sprintf("underflow: %s is outside the int64 range, closest representable value is %s", e.Value, e.Approx)
}

// InvalidArgumentError is returned for malformed call parameters, such as a
// negative decimal count or an unrecognized rounding mode.
type InvalidArgumentError struct {
	Msg string
}

func (e InvalidArgumentError) Error() string {
	return "invalid argument: " + e.Msg
}
