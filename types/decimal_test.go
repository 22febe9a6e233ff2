package types

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecimalStringRoundingTable(t *testing.T) {
	twoThreeQuarters := MustFromWholeAndFraction(2, 3, 4)
	negThree999 := MustFromWholeAndFraction(-3, -999, 1000)

	cases := map[string]struct {
		in       Rational
		max, min int
		mode     RoundingMode
		want     string
	}{
		"2 3/4 ceil":      {twoThreeQuarters, 1, 0, Ceil, "2.8"},
		"2 3/4 half-up":   {twoThreeQuarters, 1, 0, HalfUp, "2.8"},
		"2 3/4 half-down": {twoThreeQuarters, 1, 0, HalfDown, "2.7"},
		"2 3/4 floor":     {twoThreeQuarters, 1, 0, Floor, "2.7"},

		"-3.999 ceil":      {negThree999, 2, 1, Ceil, "-3.99"},
		"-3.999 half-up":   {negThree999, 2, 1, HalfUp, "-4.0"},
		"-3.999 half-down": {negThree999, 2, 1, HalfDown, "-4.0"},
		"-3.999 floor":     {negThree999, 2, 1, Floor, "-4.0"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := tc.in.DecimalString(tc.max, tc.min, tc.mode)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestDecimalStringSignOfRoundedResult(t *testing.T) {
	// -1/1000 rounded to zero decimals: floor keeps the sign, rounding to
	// nearest erases it along with the magnitude.
	small := MustFromFraction(-1, 1000)

	got, err := small.DecimalString(0, 0, Floor)
	require.NoError(t, err)
	assert.Equal(t, "-1", got)

	got, err = small.DecimalString(0, 0, HalfUp)
	require.NoError(t, err)
	assert.Equal(t, "0", got)

	got, err = small.DecimalString(0, 0, Ceil)
	require.NoError(t, err)
	assert.Equal(t, "0", got)

	got, err = small.DecimalString(2, 0, Floor)
	require.NoError(t, err)
	assert.Equal(t, "-0.01", got)
}

func TestDecimalStringPadding(t *testing.T) {
	got, err := MustFromFraction(1, 1000).DecimalString(4, 0, Floor)
	require.NoError(t, err)
	assert.Equal(t, "0.001", got)

	got, err = Zero().DecimalString(3, 2, Floor)
	require.NoError(t, err)
	assert.Equal(t, "0.00", got)

	got, err = FromWhole(5).DecimalString(0, 0, HalfUp)
	require.NoError(t, err)
	assert.Equal(t, "5", got)

	got, err = MustFromWholeAndFraction(1, 1, 2).DecimalString(4, 2, HalfDown)
	require.NoError(t, err)
	assert.Equal(t, "1.50", got)
}

func TestDecimalStringHalfBoundary(t *testing.T) {
	half := MustFromFraction(1, 2)
	negHalf := MustFromFraction(-1, 2)

	got, err := half.DecimalString(0, 0, HalfUp)
	require.NoError(t, err)
	assert.Equal(t, "1", got)

	got, err = half.DecimalString(0, 0, HalfDown)
	require.NoError(t, err)
	assert.Equal(t, "0", got)

	got, err = negHalf.DecimalString(0, 0, HalfUp)
	require.NoError(t, err)
	assert.Equal(t, "-1", got)

	got, err = negHalf.DecimalString(0, 0, HalfDown)
	require.NoError(t, err)
	assert.Equal(t, "0", got)
}

func TestDecimalStringInvalidArguments(t *testing.T) {
	r := MustFromFraction(1, 3)

	_, err := r.DecimalString(2, -1, Floor)
	require.ErrorAs(t, err, &InvalidArgumentError{})

	_, err = r.DecimalString(1, 2, Floor)
	require.ErrorAs(t, err, &InvalidArgumentError{})

	_, err = r.DecimalString(3, 1, RoundingMode(42))
	require.ErrorAs(t, err, &InvalidArgumentError{})
}

func TestDecimalStringShape(t *testing.T) {
	shape := regexp.MustCompile(`^-?\d+(\.\d+)?$`)
	modes := []RoundingMode{Ceil, Floor, HalfUp, HalfDown}
	for _, r := range testValues() {
		for _, mode := range modes {
			for max := 0; max <= 5; max++ {
				for min := 0; min <= max; min++ {
					got, err := r.DecimalString(max, min, mode)
					require.NoError(t, err)
					require.Regexp(t, shape, got, "%s rendered as %q", r, got)

					fracLen := 0
					if i := len(got) - 1; i >= 0 {
						for j := i; j >= 0; j-- {
							if got[j] == '.' {
								fracLen = i - j
								break
							}
						}
					}
					require.GreaterOrEqual(t, fracLen, min)
					require.LessOrEqual(t, fracLen, max)
				}
			}
		}
	}
}
