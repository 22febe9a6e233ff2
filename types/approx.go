package types

import (
	"math"
	"math/big"
)

// scanWindow is the range width at which the semiconvergent boundary search
// switches from binary search to a descending linear scan.
const scanWindow = 8

var int64Max = big.NewInt(math.MaxInt64)

// approximate finds the closest fraction to the proper fraction num/den
// whose denominator fits in an int64. It expands |num|/den as a continued
// fraction, tracks the last convergent whose denominator is admissible and,
// once the next full convergent would exceed the bound, probes the
// semiconvergents of the final term for a strictly better admissible
// fraction. The sign of num is re-applied to the winner.
func approximate(num, den *big.Int) (int64, int64) {
	n, d := bestFraction(new(big.Int).Abs(num), den, int64Max)
	if num.Sign() < 0 {
		n = -n
	}
	return n, d
}

// bestFraction returns the best approximation of p/q (0 <= p < q) among all
// fractions with denominator <= bound. Both results fit in an int64 as long
// as bound does.
//
// Convergents are built with the standard recurrence h(i) = a(i)*h(i-1) +
// h(i-2), k(i) = a(i)*k(i-1) + k(i-2). The zero-term convergent always has
// denominator 1, so at least one convergent is admissible and the 0/1
// fallback is unreachable in practice.
func bestFraction(p, q, bound *big.Int) (int64, int64) {
	hm2, hm1 := big.NewInt(0), big.NewInt(1)
	km2, km1 := big.NewInt(1), big.NewInt(0)
	bestN, bestD := big.NewInt(0), big.NewInt(1)

	x, y := new(big.Int).Set(p), new(big.Int).Set(q)
	for y.Sign() != 0 {
		a, rem := new(big.Int).QuoRem(x, y, new(big.Int))
		h := new(big.Int).Mul(a, hm1)
		h.Add(h, hm2)
		k := new(big.Int).Mul(a, km1)
		k.Add(k, km2)

		if k.Cmp(bound) > 0 {
			// The full convergent is out of bounds; the best admissible
			// fraction is either the previous convergent or a
			// semiconvergent of the final term.
			semiN, semiD, ok := bestSemiconvergent(a, hm1, hm2, km1, km2, bound)
			if ok && closerOrEqual(semiN, semiD, bestN, bestD, p, q) {
				bestN, bestD = semiN, semiD
			}
			break
		}

		bestN.Set(h)
		bestD.Set(k)
		hm2, hm1 = hm1, h
		km2, km1 = km1, k
		x, y = y, rem
	}

	return bestN.Int64(), bestD.Int64()
}

// bestSemiconvergent reduces the final continued-fraction term a to the
// largest replacement t in [ceil(a/2), a] whose fraction
// (t*hm1+hm2)/(t*km1+km2) has an admissible denominator. The denominator
// grows monotonically with t, so the boundary is located by binary search
// (low always admissible, high never) down to a small window, finished by a
// descending linear scan. ok is false when even the smallest replacement is
// out of bounds.
func bestSemiconvergent(a, hm1, hm2, km1, km2, bound *big.Int) (n, d *big.Int, ok bool) {
	semiDen := func(t *big.Int) *big.Int {
		d := new(big.Int).Mul(t, km1)
		return d.Add(d, km2)
	}

	lo := new(big.Int).Add(a, bigOne)
	lo.Rsh(lo, 1) // ceil(a/2)
	if semiDen(lo).Cmp(bound) > 0 {
		return nil, nil, false
	}

	// t = a is the full convergent, already known inadmissible.
	hi := new(big.Int).Set(a)
	window := big.NewInt(scanWindow)
	for new(big.Int).Sub(hi, lo).Cmp(window) > 0 {
		mid := new(big.Int).Add(lo, hi)
		mid.Rsh(mid, 1)
		if semiDen(mid).Cmp(bound) <= 0 {
			lo = mid
		} else {
			hi = mid
		}
	}

	t := new(big.Int).Sub(hi, bigOne)
	for t.Cmp(lo) > 0 && semiDen(t).Cmp(bound) > 0 {
		t.Sub(t, bigOne)
	}

	n = new(big.Int).Mul(t, hm1)
	n.Add(n, hm2)
	return n, semiDen(t), true
}

// closerOrEqual reports whether aN/aD approximates p/q at least as well as
// bN/bD. The three fractions are scaled to the least common multiple of
// their denominators and compared by absolute distance in that common
// scale, so the comparison is exact. A true tie reports true, preferring
// the semiconvergent candidate over the previous convergent.
func closerOrEqual(aN, aD, bN, bD, p, q *big.Int) bool {
	l := lcm(lcm(aD, bD), q)

	distA := scaledDistance(aN, aD, p, q, l)
	distB := scaledDistance(bN, bD, p, q, l)
	return distA.Cmp(distB) <= 0
}

// scaledDistance returns |n/d - p/q| * l, where l is a common multiple of
// d and q.
func scaledDistance(n, d, p, q, l *big.Int) *big.Int {
	nl := new(big.Int).Quo(l, d)
	nl.Mul(nl, n)
	pl := new(big.Int).Quo(l, q)
	pl.Mul(pl, p)
	return nl.Sub(nl, pl).Abs(nl)
}

func lcm(a, b *big.Int) *big.Int {
	g := new(big.Int).GCD(nil, nil, a, b)
	l := new(big.Int).Quo(a, g)
	return l.Mul(l, b)
}
