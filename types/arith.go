package types

import (
	"math"
	"math/big"
)

// Arithmetic combines two canonical operands in arbitrary precision, then
// canonicalizes and narrows the result, so overflow is detected instead of
// wrapped. Each operation returns a fresh value and leaves its operands
// untouched.

func (r Rational) bigParts() (whole, num, den *big.Int) {
	return big.NewInt(r.whole), big.NewInt(r.num), big.NewInt(r.den())
}

// Add returns r + o.
func (r Rational) Add(o Rational) (Rational, error) {
	rw, rn, rd := r.bigParts()
	ow, on, od := o.bigParts()

	whole := rw.Add(rw, ow)
	num := new(big.Int).Mul(rn, od)
	num.Add(num, new(big.Int).Mul(on, rd))
	den := new(big.Int).Mul(rd, od)
	return finalize(whole, num, den)
}

// Sub returns r - o, as r + (-o).
func (r Rational) Sub(o Rational) (Rational, error) {
	n, err := o.Neg()
	if err != nil {
		return Rational{}, err
	}
	return r.Add(n)
}

// Mul returns r * o. The cross terms distribute the whole parts over the
// opposite fractions; sign consistency of the result follows from both
// operands being canonical, so no fixup beyond normalization is needed.
func (r Rational) Mul(o Rational) (Rational, error) {
	rw, rn, rd := r.bigParts()
	ow, on, od := o.bigParts()

	whole := new(big.Int).Mul(rw, ow)

	num := new(big.Int).Mul(rw, on)
	num.Mul(num, rd)
	cross := new(big.Int).Mul(ow, rn)
	cross.Mul(cross, od)
	num.Add(num, cross)
	num.Add(num, new(big.Int).Mul(rn, on))

	den := new(big.Int).Mul(rd, od)
	return finalize(whole, num, den)
}

// Div returns r / o, as r * (1/o). It returns a DivisionByZeroError when o
// is zero.
func (r Rational) Div(o Rational) (Rational, error) {
	inv, err := o.Recip()
	if err != nil {
		return Rational{}, err
	}
	return r.Mul(inv)
}

// Recip returns 1 / r. The numerator of r's improper form becomes the new
// denominator. It returns a DivisionByZeroError when r is zero.
func (r Rational) Recip() (Rational, error) {
	if r.IsZero() {
		return Rational{}, DivisionByZeroError{}
	}
	rw, rn, rd := r.bigParts()

	newDen := rw.Mul(rw, rd)
	newDen.Add(newDen, rn)
	return finalize(big.NewInt(0), big.NewInt(r.den()), newDen)
}

// Neg returns -r. It returns an OverflowError when the whole part or
// numerator is the most negative int64, whose negation is itself out of
// range. Flipping both signs together preserves canonical form.
func (r Rational) Neg() (Rational, error) {
	if err := r.negGuard(); err != nil {
		return Rational{}, err
	}
	return rational(-r.whole, -r.num, r.den()), nil
}

// Abs returns |r|, with the same guard as Neg.
func (r Rational) Abs() (Rational, error) {
	if err := r.negGuard(); err != nil {
		return Rational{}, err
	}
	if r.Sign() >= 0 {
		return r, nil
	}
	return rational(-r.whole, -r.num, r.den()), nil
}

func (r Rational) negGuard() error {
	if r.whole == math.MinInt64 {
		return OverflowError{Value: new(big.Int).Neg(big.NewInt(math.MinInt64))}
	}
	if r.num == math.MinInt64 {
		return OverflowError{Value: new(big.Int).Neg(big.NewInt(math.MinInt64))}
	}
	return nil
}

// Cmp compares r and o, returning -1, 0 or 1. Whole parts decide first;
// equal whole parts fall back to cross-multiplying the fractions in
// arbitrary precision, which avoids any rounding error from division.
func (r Rational) Cmp(o Rational) int {
	switch {
	case r.whole < o.whole:
		return -1
	case r.whole > o.whole:
		return 1
	}
	left := new(big.Int).Mul(big.NewInt(r.num), big.NewInt(o.den()))
	right := new(big.Int).Mul(big.NewInt(o.num), big.NewInt(r.den()))
	return left.Cmp(right)
}

// Equal reports whether r and o are the same value. Component-wise equality
// is sound because the representation is always canonical.
func (r Rational) Equal(o Rational) bool {
	return r == o
}
