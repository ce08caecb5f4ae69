package primer

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var numberPrinter = message.NewPrinter(language.English)

// FormatNumber renders value with at most maxDecimals fraction digits and no
// trailing zeros or grouping separators, e.g. 2, -4, 0.5.
func FormatNumber(value float64, maxDecimals int) string {
	if maxDecimals < 0 {
		maxDecimals = 0
	}
	// Avoid printing "-0" for values that round to zero.
	scale := math.Pow(10, float64(maxDecimals))
	if math.Round(value*scale) == 0 {
		value = 0
	}
	return numberPrinter.Sprint(number.Decimal(value,
		number.MaxFractionDigits(maxDecimals),
		number.NoSeparator(),
	))
}
