package mathutil

import (
	"math"
	"testing"
)

func TestClampNonNegative(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"Positive value unchanged", 1234.5, 1234.5},
		{"Zero unchanged", 0.0, 0.0},
		{"Small negative clamps", -0.0001, 0.0},
		{"Large negative clamps", -98765.0, 0.0},
		{"Negative infinity clamps", math.Inf(-1), 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ClampNonNegative(tt.input)
			if result != tt.expected {
				t.Errorf("ClampNonNegative(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
			if math.Signbit(result) {
				t.Errorf("ClampNonNegative(%v) returned negative zero", tt.input)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected bool
	}{
		{"Zero", 0.0, true},
		{"Negative", -12.5, true},
		{"Max float", math.MaxFloat64, true},
		{"NaN", math.NaN(), false},
		{"Positive infinity", math.Inf(1), false},
		{"Negative infinity", math.Inf(-1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := IsFinite(tt.input); result != tt.expected {
				t.Errorf("IsFinite(%v) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestWithinTolerance(t *testing.T) {
	tests := []struct {
		name      string
		val1      float64
		val2      float64
		tolerance float64
		expected  bool
	}{
		{"Exactly equal", 1.0, 1.0, 0.1, true},
		{"Within tolerance", 1.0, 1.05, 0.1, true},
		{"Outside tolerance", 1.0, 1.15, 0.1, false},
		{"Negative values within tolerance", -1.0, -1.05, 0.1, true},
		{"Negative values outside tolerance", -1.0, -1.15, 0.1, false},
		{"Zero tolerance exact match", 1.0, 1.0, 0.0, true},
		{"Zero tolerance no match", 1.0, 1.001, 0.0, false},
		{"Large tolerance", 1.0, 5.0, 10.0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := WithinTolerance(tt.val1, tt.val2, tt.tolerance)
			if result != tt.expected {
				t.Errorf("WithinTolerance(%v, %v, %v) = %v, expected %v",
					tt.val1, tt.val2, tt.tolerance, result, tt.expected)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		name     string
		lo       float64
		hi       float64
		t        float64
		expected float64
	}{
		{"Start", 10, 20, 0, 10},
		{"End", 10, 20, 1, 20},
		{"Quarter", 10, 20, 0.25, 12.5},
		{"Equal endpoints", 30000, 30000, 0.7, 30000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Lerp(tt.lo, tt.hi, tt.t)
			if math.Abs(result-tt.expected) > 1e-12 {
				t.Errorf("Lerp(%v, %v, %v) = %v, expected %v", tt.lo, tt.hi, tt.t, result, tt.expected)
			}
		})
	}
}

func TestCalculatePercentage(t *testing.T) {
	tests := []struct {
		name     string
		part     float64
		total    float64
		expected float64
	}{
		{"50% of 100", 50.0, 100.0, 50.0},
		{"25% of 200", 50.0, 200.0, 25.0},
		{"100% of value", 100.0, 100.0, 100.0},
		{"Zero part", 0.0, 100.0, 0.0},
		{"Zero total", 50.0, 0.0, 0.0},
		{"Seven of ten", 7.0, 10.0, 70.0},
		{"Four of ten", 4.0, 10.0, 40.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculatePercentage(tt.part, tt.total)
			if result != tt.expected {
				t.Errorf("CalculatePercentage(%v, %v) = %v, expected %v",
					tt.part, tt.total, result, tt.expected)
			}
		})
	}
}
