// Package format renders monetary and percentage values for display.
package format

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/iwvelando/revenue-forecast/pkg/mathutil"
)

// CurrencySymbol prefixes every formatted amount.
const CurrencySymbol = "£"

// Currency returns a whole-pound currency string with thousands separators
// (e.g., "-£1,235"). Halves round away from zero. NaN and infinities render
// as "£NaN", "£Inf" and "-£Inf".
func Currency(amount float64) string {
	if !mathutil.IsFinite(amount) {
		switch {
		case math.IsInf(amount, -1):
			return "-" + CurrencySymbol + "Inf"
		case math.IsInf(amount, 1):
			return CurrencySymbol + "Inf"
		}
		return CurrencySymbol + "NaN"
	}
	rounded := decimal.NewFromFloat(amount).Round(0)
	if rounded.IsNegative() {
		return "-" + CurrencySymbol + groupThousands(rounded.Abs().StringFixed(0))
	}
	return CurrencySymbol + groupThousands(rounded.StringFixed(0))
}

// CurrencyRange formats a lower and upper amount as "£lo – £hi".
func CurrencyRange(lo, hi float64) string {
	return Currency(lo) + " – " + Currency(hi)
}

// Percentage formats a percentage with one decimal place (e.g., "70.0%").
func Percentage(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}

func groupThousands(intPart string) string {
	if len(intPart) <= 3 {
		return intPart
	}
	var builder strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			builder.WriteByte(',')
		}
		builder.WriteRune(digit)
	}
	return builder.String()
}
