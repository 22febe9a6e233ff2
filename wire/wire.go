// Package wire implements the flat-text serialization of a rational value,
// a colon-separated triple "<whole>:<num>:<den>" of decimal ASCII integers.
package wire

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/exactnum/mixedrat/types"
)

// MaxEncodedLen is the longest accepted encoding. It covers the widest
// possible triple of 64-bit fields including signs and separators.
const MaxEncodedLen = 64

var (
	// ErrTooLong is returned when the input exceeds MaxEncodedLen.
	ErrTooLong = errors.New("encoded rational exceeds maximum length")

	// ErrFieldCount is returned when the input does not have exactly three
	// colon-separated fields.
	ErrFieldCount = errors.New("encoded rational must have exactly three fields")
)

// Encode renders r as "<whole>:<num>:<den>". Encoding a canonical value
// never fails and always fits in MaxEncodedLen bytes.
func Encode(r types.Rational) string {
	num, den := r.Fraction()
	return strconv.FormatInt(r.Whole(), 10) +
		":" + strconv.FormatInt(num, 10) +
		":" + strconv.FormatInt(den, 10)
}

// Decode parses "<whole>:<num>:<den>" back into a rational. The triple is
// passed through the normalizing factory, so the result is canonical even
// when the input fields are not, and a zero denominator is rejected the
// same way it is at construction.
func Decode(s string) (types.Rational, error) {
	if len(s) > MaxEncodedLen {
		return types.Rational{}, ErrTooLong
	}
	fields := strings.Split(s, ":")
	if len(fields) != 3 {
		return types.Rational{}, ErrFieldCount
	}

	whole, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return types.Rational{}, fmt.Errorf("parsing whole part: %w", err)
	}
	num, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return types.Rational{}, fmt.Errorf("parsing numerator: %w", err)
	}
	den, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return types.Rational{}, fmt.Errorf("parsing denominator: %w", err)
	}

	return types.FromWholeAndFraction(whole, num, den)
}
