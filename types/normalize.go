package types

import "math/big"

var bigOne = big.NewInt(1)

// normalize rewrites the triple whole + num/den into canonical form in
// place, in a fixed order:
//
//  1. reject a zero denominator
//  2. move the denominator's sign onto the numerator
//  3. extract the improper part of the fraction into the whole part
//     (truncating division toward zero)
//  4. reduce the fraction by gcd(|num|, den); this also collapses a zero
//     numerator onto denominator 1
//  5. align the signs of the whole and fractional parts
//
// The inputs are arbitrary-precision and owned by the caller; normalize is
// otherwise pure and can only fail at step 1.
func normalize(whole, num, den *big.Int) error {
	if den.Sign() == 0 {
		return DivisionByZeroError{}
	}
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}

	q, rem := new(big.Int).QuoRem(num, den, new(big.Int))
	if q.Sign() != 0 {
		whole.Add(whole, q)
		num.Set(rem)
	}

	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	if g.Cmp(bigOne) > 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}

	if whole.Sign() > 0 && num.Sign() < 0 {
		whole.Sub(whole, bigOne)
		num.Add(num, den)
	} else if whole.Sign() < 0 && num.Sign() > 0 {
		whole.Add(whole, bigOne)
		num.Sub(num, den)
	}
	return nil
}
