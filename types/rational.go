// Package types provides an exact rational number represented as a mixed
// number whole + num/den over fixed-width integers. All intermediate
// arithmetic runs in arbitrary precision so overflow is detected rather than
// silently wrapped.
package types

import (
	"math/big"
	"strconv"
)

// Rational is an immutable mixed number whole + num/den backed by int64
// components. Every reachable value is canonical:
//
//   - den > 0
//   - den == 1 whenever num == 0
//   - otherwise 0 < |num| < den and gcd(|num|, den) == 1
//   - whole and num never disagree in sign
//
// No two distinct component triples represent the same value, so equality is
// component-wise. Internally the denominator is biased by one so that the
// zero value of the type is a valid representation of 0.
//
// Rational has value semantics: values can be freely copied and are safe for
// concurrent use without synchronization.
type Rational struct {
	whole       int64
	num         int64
	denMinusOne int64
}

// rational builds a value from an unbiased canonical triple.
func rational(whole, num, den int64) Rational {
	return Rational{whole: whole, num: num, denMinusOne: den - 1}
}

func (r Rational) den() int64 {
	return r.denMinusOne + 1
}

// Zero returns the rational 0.
func Zero() Rational {
	return Rational{}
}

// One returns the rational 1.
func One() Rational {
	return Rational{whole: 1}
}

// FromWhole returns the rational w.
func FromWhole(w int64) Rational {
	return Rational{whole: w}
}

// FromFraction returns the rational num/den in canonical form. The fraction
// may be improper, unsimplified or carry its sign on the denominator.
// It returns a DivisionByZeroError if den is zero.
func FromFraction(num, den int64) (Rational, error) {
	return FromWholeAndFraction(0, num, den)
}

// FromWholeAndFraction returns the rational whole + num/den in canonical
// form. It returns a DivisionByZeroError if den is zero, or an OverflowError
// if extracting the improper part pushes the whole part outside the int64
// range.
func FromWholeAndFraction(whole, num, den int64) (Rational, error) {
	return finalize(big.NewInt(whole), big.NewInt(num), big.NewInt(den))
}

// MustFromFraction is like FromFraction but panics on error.
func MustFromFraction(num, den int64) Rational {
	r, err := FromFraction(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

// MustFromWholeAndFraction is like FromWholeAndFraction but panics on error.
func MustFromWholeAndFraction(whole, num, den int64) Rational {
	r, err := FromWholeAndFraction(whole, num, den)
	if err != nil {
		panic(err)
	}
	return r
}

// Whole returns the whole part of r.
func (r Rational) Whole() int64 {
	return r.whole
}

// Fraction returns the fractional part of r as a numerator and denominator.
// The denominator is always positive; a whole number reports 0, 1.
func (r Rational) Fraction() (num, den int64) {
	return r.num, r.den()
}

// Sign returns -1 if r < 0, 0 if r == 0 and 1 if r > 0.
func (r Rational) Sign() int {
	switch {
	case r.whole > 0 || r.num > 0:
		return 1
	case r.whole < 0 || r.num < 0:
		return -1
	default:
		return 0
	}
}

// IsZero reports whether r == 0.
func (r Rational) IsZero() bool {
	return r.whole == 0 && r.num == 0
}

// IsPositive reports whether r > 0.
func (r Rational) IsPositive() bool {
	return r.Sign() > 0
}

// IsNegative reports whether r < 0.
func (r Rational) IsNegative() bool {
	return r.Sign() < 0
}

// IsZeroOrPositive reports whether r >= 0.
func (r Rational) IsZeroOrPositive() bool {
	return r.Sign() >= 0
}

// IsZeroOrNegative reports whether r <= 0.
func (r Rational) IsZeroOrNegative() bool {
	return r.Sign() <= 0
}

// IsWhole reports whether r has no fractional part.
func (r Rational) IsWhole() bool {
	return r.num == 0
}

// IsInteger is an alias for IsWhole.
func (r Rational) IsInteger() bool {
	return r.IsWhole()
}

// ToIntExact returns the value of r as an int64. It returns an
// InvalidArgumentError if r has a fractional part.
func (r Rational) ToIntExact() (int64, error) {
	if !r.IsWhole() {
		return 0, InvalidArgumentError{Msg: r.String() + " is not a whole number"}
	}
	return r.whole, nil
}

// Float64 returns a lossy floating-point approximation of r. It exists for
// human-facing display only and must never feed further arithmetic.
func (r Rational) Float64() float64 {
	return float64(r.whole) + float64(r.num)/float64(r.den())
}

// String returns a debug representation such as "3", "3 1/4" or "-1/2".
func (r Rational) String() string {
	if r.num == 0 {
		return strconv.FormatInt(r.whole, 10)
	}
	frac := strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.den(), 10)
	if r.whole == 0 {
		return frac
	}
	return strconv.FormatInt(r.whole, 10) + " " + frac
}
