// Package format renders rational values for human display in a given
// locale, with grouped digits and locale-specific separators. It works on a
// single lossy floating-point approximation of the value and must never be
// used as input to further arithmetic; exact rendering lives in the core's
// DecimalString.
package format

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/exactnum/mixedrat/types"
)

// Formatter formats rational values for one locale.
type Formatter struct {
	printer *message.Printer
}

// New returns a Formatter for the given locale.
func New(tag language.Tag) *Formatter {
	return &Formatter{printer: message.NewPrinter(tag)}
}

// Decimal formats r with between minDecimals and maxDecimals fractional
// digits, locale separators and digit grouping.
func (f *Formatter) Decimal(r types.Rational, maxDecimals, minDecimals int) string {
	return f.printer.Sprint(number.Decimal(r.Float64(),
		number.MinFractionDigits(minDecimals),
		number.MaxFractionDigits(maxDecimals),
	))
}
