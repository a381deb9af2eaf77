// Package testutil provides common utility functions for testing.
package testutil

import (
	"testing"

	"github.com/iwvelando/revenue-forecast/pkg/mathutil"
)

// SequenceSource replays a fixed list of uniform values in order and wraps
// around when exhausted. It satisfies montecarlo.Source.
type SequenceSource struct {
	Values []float64
	Draws  int
}

// NewSequenceSource returns a SequenceSource over values.
func NewSequenceSource(values ...float64) *SequenceSource {
	return &SequenceSource{Values: values}
}

// Float64 returns the next value in the sequence.
func (s *SequenceSource) Float64() float64 {
	if len(s.Values) == 0 {
		return 0.5
	}
	v := s.Values[s.Draws%len(s.Values)]
	s.Draws++
	return v
}

// AssertNonDecreasing fails the test when values are not in ascending order.
func AssertNonDecreasing(t *testing.T, label string, values ...float64) {
	t.Helper()
	for i := 1; i < len(values); i++ {
		if values[i] < values[i-1] {
			t.Errorf("%s not non-decreasing at %d: %v > %v", label, i, values[i-1], values[i])
		}
	}
}

// AssertClose fails the test when got and want differ by more than tolerance.
func AssertClose(t *testing.T, label string, got, want, tolerance float64) {
	t.Helper()
	if !mathutil.WithinTolerance(got, want, tolerance) {
		t.Errorf("%s = %v, expected %v (tolerance %v)", label, got, want, tolerance)
	}
}
