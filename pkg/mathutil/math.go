// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/revenue-forecast/pkg/constants"
)

// ClampNonNegative floors a value at zero. Negative inputs become exactly 0.0.
func ClampNonNegative(val float64) float64 {
	if val < 0 {
		return 0
	}
	return val
}

// IsFinite reports whether a value is neither NaN nor infinite.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// Lerp interpolates linearly between lo and hi by fraction t.
func Lerp(lo, hi, t float64) float64 {
	return lo + (hi-lo)*t
}

// CalculatePercentage calculates what percentage part is of total.
// The multiplication happens before the division so that exact ratios such
// as 7 of 10 produce exactly 70.
func CalculatePercentage(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part * constants.PercentageMultiplier / total
}
