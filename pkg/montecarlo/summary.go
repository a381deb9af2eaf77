package montecarlo

import (
	"fmt"
	"math"
	"slices"

	"github.com/iwvelando/revenue-forecast/pkg/mathutil"
)

// Summary is the derived result of one run. It is a value; nothing mutates
// it after Summarize returns.
type Summary struct {
	ExceedancePercentage float64   `json:"exceedancePercentage" yaml:"exceedancePercentage"`
	P5                   float64   `json:"p5" yaml:"p5"`
	P25                  float64   `json:"p25" yaml:"p25"`
	P50                  float64   `json:"p50" yaml:"p50"`
	P75                  float64   `json:"p75" yaml:"p75"`
	P95                  float64   `json:"p95" yaml:"p95"`
	RiskLevel            RiskLevel `json:"riskLevel" yaml:"riskLevel"`
}

// Interval90 returns the p5 to p95 band.
func (s Summary) Interval90() (float64, float64) {
	return s.P5, s.P95
}

// Interval50 returns the p25 to p75 band.
func (s Summary) Interval50() (float64, float64) {
	return s.P25, s.P75
}

// Summarize computes the exceedance percentage, percentile bands and risk
// level of outcomes against target using DefaultPolicy.
func Summarize(outcomes []float64, target float64) (Summary, error) {
	return DefaultPolicy().Summarize(outcomes, target)
}

// Summarize computes a Summary with this policy's risk thresholds. The
// outcomes slice is not reordered.
func (p Policy) Summarize(outcomes []float64, target float64) (Summary, error) {
	if len(outcomes) == 0 {
		return Summary{}, fmt.Errorf("%w: no outcomes to summarize", ErrEmptyInput)
	}
	if !mathutil.IsFinite(target) {
		return Summary{}, fmt.Errorf("%w: target must be finite, got %v", ErrInvalidParameter, target)
	}
	if err := p.Validate(); err != nil {
		return Summary{}, err
	}

	hits := 0
	for i, v := range outcomes {
		if !mathutil.IsFinite(v) {
			return Summary{}, fmt.Errorf("%w: outcome %d is not finite (%v)", ErrInvalidParameter, i, v)
		}
		if v >= target {
			hits++
		}
	}
	exceedance := mathutil.CalculatePercentage(float64(hits), float64(len(outcomes)))

	sorted := slices.Clone(outcomes)
	slices.Sort(sorted)

	return Summary{
		ExceedancePercentage: exceedance,
		P5:                   percentile(sorted, PercentileP5),
		P25:                  percentile(sorted, PercentileP25),
		P50:                  percentile(sorted, PercentileP50),
		P75:                  percentile(sorted, PercentileP75),
		P95:                  percentile(sorted, PercentileP95),
		RiskLevel:            p.Classify(exceedance),
	}, nil
}

// Percentile returns the p-th percentile of an ascending slice by linear
// interpolation between order statistics (sample quantile type 7).
func Percentile(sorted []float64, p float64) (float64, error) {
	if len(sorted) == 0 {
		return 0, fmt.Errorf("%w: percentile of zero values", ErrEmptyInput)
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return 0, fmt.Errorf("%w: percentile rank must be within [0, 1], got %v", ErrInvalidParameter, p)
	}
	return percentile(sorted, p), nil
}

func percentile(sorted []float64, p float64) float64 {
	idx := float64(len(sorted)-1) * p
	lo := math.Floor(idx)
	hi := math.Ceil(idx)
	if lo == hi {
		return sorted[int(lo)]
	}
	return mathutil.Lerp(sorted[int(lo)], sorted[int(hi)], idx-lo)
}
