package types

import (
	"math"
	"math/big"
)

// narrow converts an arbitrary-precision integer to int64, returning an
// OverflowError carrying the exact value when it is out of range.
func narrow(x *big.Int) (int64, error) {
	if !x.IsInt64() {
		return 0, OverflowError{Value: new(big.Int).Set(x)}
	}
	return x.Int64(), nil
}

// finalize canonicalizes an arbitrary-precision triple and narrows it back
// to fixed width. A whole part out of range is an unconditional
// OverflowError. A numerator or denominator out of range is an
// UnderflowError instead: the magnitude is representable (the fraction is
// proper) but the precision is not, so the error carries the closest
// representable approximation.
func finalize(whole, num, den *big.Int) (Rational, error) {
	if err := normalize(whole, num, den); err != nil {
		return Rational{}, err
	}

	w, err := narrow(whole)
	if err != nil {
		return Rational{}, err
	}

	n, errNum := narrow(num)
	d, errDen := narrow(den)
	if errNum != nil || errDen != nil {
		offending := num
		if errNum == nil {
			offending = den
		}
		an, ad := approximate(num, den)
		an, ad, w = foldWholeApprox(an, ad, w)
		return Rational{}, UnderflowError{
			Value:  new(big.Int).Set(offending),
			Approx: rational(w, an, ad),
		}
	}

	return rational(w, n, d), nil
}

// foldWholeApprox restores canonical form when the approximator lands on
// exactly 1/1 (or -1/1), which happens for proper fractions extremely close
// to a unit. The unit folds into the whole part; when the whole part is
// already saturated, the closest proper fraction to a unit takes its place.
func foldWholeApprox(num, den, whole int64) (int64, int64, int64) {
	switch {
	case num != den && num != -den:
		return num, den, whole
	case num > 0 && whole < math.MaxInt64:
		return 0, 1, whole + 1
	case num < 0 && whole > math.MinInt64:
		return 0, 1, whole - 1
	case num > 0:
		return math.MaxInt64 - 1, math.MaxInt64, whole
	default:
		return -(math.MaxInt64 - 1), math.MaxInt64, whole
	}
}
