package types

import (
	"math/big"
	"strconv"
	"strings"
)

// RoundingMode selects how DecimalString resolves digits beyond the
// requested precision.
type RoundingMode int

const (
	// Ceil rounds toward positive infinity.
	Ceil RoundingMode = iota
	// Floor rounds toward negative infinity.
	Floor
	// HalfUp rounds to nearest, away from zero on a half.
	HalfUp
	// HalfDown rounds to nearest, toward zero on a half.
	HalfDown
)

func (m RoundingMode) String() string {
	switch m {
	case Ceil:
		return "ceil"
	case Floor:
		return "floor"
	case HalfUp:
		return "half-up"
	case HalfDown:
		return "half-down"
	default:
		return "rounding-mode(" + strconv.Itoa(int(m)) + ")"
	}
}

var bigTen = big.NewInt(10)

// DecimalString renders r as an exact decimal string with between
// minDecimals and maxDecimals fractional digits; trailing zeros are
// stripped down to minDecimals. The value is scaled to maxDecimals digits
// in arbitrary precision and the division by the denominator is rounded
// per mode, so no floating point is involved. The sign is taken from the
// rounded result, not the original value: rounding can erase a small
// negative.
func (r Rational) DecimalString(maxDecimals, minDecimals int, mode RoundingMode) (string, error) {
	if minDecimals < 0 {
		return "", InvalidArgumentError{Msg: "minDecimals must not be negative"}
	}
	if maxDecimals < minDecimals {
		return "", InvalidArgumentError{Msg: "maxDecimals must not be less than minDecimals"}
	}
	switch mode {
	case Ceil, Floor, HalfUp, HalfDown:
	default:
		return "", InvalidArgumentError{Msg: "unrecognized rounding mode " + mode.String()}
	}

	den := big.NewInt(r.den())
	scaled := new(big.Int).Mul(big.NewInt(r.whole), den)
	scaled.Add(scaled, big.NewInt(r.num))
	scaled.Mul(scaled, new(big.Int).Exp(bigTen, big.NewInt(int64(maxDecimals)), nil))

	rounded := roundQuotient(scaled, den, mode)

	digits := new(big.Int).Abs(rounded).String()
	if len(digits) < maxDecimals+1 {
		digits = strings.Repeat("0", maxDecimals+1-len(digits)) + digits
	}
	intPart := digits[:len(digits)-maxDecimals]
	fracPart := digits[len(digits)-maxDecimals:]
	for len(fracPart) > minDecimals && strings.HasSuffix(fracPart, "0") {
		fracPart = fracPart[:len(fracPart)-1]
	}

	var b strings.Builder
	if rounded.Sign() < 0 {
		b.WriteByte('-')
	}
	b.WriteString(intPart)
	if len(fracPart) > 0 {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String(), nil
}

// roundQuotient divides scaled by den (den > 0) with the rounding
// behavior of mode, which has already been validated.
func roundQuotient(scaled, den *big.Int, mode RoundingMode) *big.Int {
	q, rem := new(big.Int).QuoRem(scaled, den, new(big.Int))
	if rem.Sign() == 0 {
		return q
	}
	switch mode {
	case Ceil:
		if rem.Sign() > 0 {
			q.Add(q, bigOne)
		}
	case Floor:
		if rem.Sign() < 0 {
			q.Sub(q, bigOne)
		}
	case HalfUp, HalfDown:
		double := new(big.Int).Abs(rem)
		double.Lsh(double, 1)
		cmp := double.Cmp(den)
		if cmp > 0 || (cmp == 0 && mode == HalfUp) {
			// one step away from zero
			if scaled.Sign() >= 0 {
				q.Add(q, bigOne)
			} else {
				q.Sub(q, bigOne)
			}
		}
	}
	return q
}
