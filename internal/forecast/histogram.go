package forecast

import (
	"fmt"
	"slices"
)

// Bin is one equal-width histogram bucket. Lower is inclusive; Upper is
// exclusive except for the last bin.
type Bin struct {
	Lower float64 `json:"lower" yaml:"lower"`
	Upper float64 `json:"upper" yaml:"upper"`
	Count int     `json:"count" yaml:"count"`
}

// BuildHistogram counts outcomes into bins equal-width buckets spanning the
// observed minimum and maximum. When every outcome is identical, or the span
// is too narrow to divide into bins, a single bin holds them all.
func BuildHistogram(outcomes []float64, bins int) ([]Bin, error) {
	if bins <= 0 {
		return nil, fmt.Errorf("histogram bins must be positive, got %d", bins)
	}
	if len(outcomes) == 0 {
		return nil, nil
	}

	lo, hi := slices.Min(outcomes), slices.Max(outcomes)
	width := (hi - lo) / float64(bins)
	if lo == hi || width == 0 {
		return []Bin{{Lower: lo, Upper: hi, Count: len(outcomes)}}, nil
	}

	histogram := make([]Bin, bins)
	for i := range histogram {
		histogram[i].Lower = lo + float64(i)*width
		histogram[i].Upper = lo + float64(i+1)*width
	}
	histogram[bins-1].Upper = hi

	for _, v := range outcomes {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		histogram[idx].Count++
	}
	return histogram, nil
}
