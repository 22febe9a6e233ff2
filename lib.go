// Package mixedrat provides exact rational arithmetic on mixed numbers
// whole + num/den over fixed-width integers. This package re-exports the
// core surface; the implementation lives in the types subpackage, with
// serialization, locale display and persistence adapters in wire, format
// and store.
package mixedrat

import "github.com/exactnum/mixedrat/types"

// Rational is an immutable, canonical mixed number. See types.Rational.
type Rational = types.Rational

// RoundingMode selects the rounding behavior of DecimalString.
type RoundingMode = types.RoundingMode

// Rounding modes accepted by DecimalString.
const (
	Ceil     = types.Ceil
	Floor    = types.Floor
	HalfUp   = types.HalfUp
	HalfDown = types.HalfDown
)

// Errors returned by the core. All are value types usable with errors.As.
type (
	DivisionByZeroError  = types.DivisionByZeroError
	OverflowError        = types.OverflowError
	UnderflowError       = types.UnderflowError
	InvalidArgumentError = types.InvalidArgumentError
)

// Zero returns the rational 0.
func Zero() Rational { return types.Zero() }

// One returns the rational 1.
func One() Rational { return types.One() }

// FromWhole returns the rational w.
func FromWhole(w int64) Rational { return types.FromWhole(w) }

// FromFraction returns the rational num/den in canonical form.
func FromFraction(num, den int64) (Rational, error) {
	return types.FromFraction(num, den)
}

// FromWholeAndFraction returns the rational whole + num/den in canonical
// form.
func FromWholeAndFraction(whole, num, den int64) (Rational, error) {
	return types.FromWholeAndFraction(whole, num, den)
}

// MustFromFraction is like FromFraction but panics on error.
func MustFromFraction(num, den int64) Rational {
	return types.MustFromFraction(num, den)
}

// MustFromWholeAndFraction is like FromWholeAndFraction but panics on
// error.
func MustFromWholeAndFraction(whole, num, den int64) Rational {
	return types.MustFromWholeAndFraction(whole, num, den)
}
