package montecarlo

import (
	"fmt"

	"github.com/iwvelando/revenue-forecast/pkg/constants"
	"github.com/iwvelando/revenue-forecast/pkg/mathutil"
)

// RiskLevel is the coarse classification of an exceedance percentage.
type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Percentile ranks reported in every Summary.
const (
	PercentileP5  = 0.05
	PercentileP25 = 0.25
	PercentileP50 = 0.50
	PercentileP75 = 0.75
	PercentileP95 = 0.95
)

// Policy holds the risk banding thresholds, expressed as exceedance
// percentages. Each band includes its lower bound.
type Policy struct {
	LowRiskThreshold    float64 `json:"lowThreshold" yaml:"lowThreshold"`
	MediumRiskThreshold float64 `json:"mediumThreshold" yaml:"mediumThreshold"`
}

// DefaultPolicy returns the 70/40 banding.
func DefaultPolicy() Policy {
	return Policy{
		LowRiskThreshold:    constants.DefaultLowRiskThreshold,
		MediumRiskThreshold: constants.DefaultMediumRiskThreshold,
	}
}

// Validate checks that both thresholds are finite percentages and ordered.
func (p Policy) Validate() error {
	thresholds := []struct {
		name  string
		value float64
	}{
		{"low risk threshold", p.LowRiskThreshold},
		{"medium risk threshold", p.MediumRiskThreshold},
	}
	for _, th := range thresholds {
		if !mathutil.IsFinite(th.value) || th.value < 0 || th.value > constants.PercentageMultiplier {
			return fmt.Errorf("%w: %s must be within [0, 100], got %v", ErrInvalidParameter, th.name, th.value)
		}
	}
	if p.MediumRiskThreshold > p.LowRiskThreshold {
		return fmt.Errorf("%w: medium risk threshold %v exceeds low risk threshold %v",
			ErrInvalidParameter, p.MediumRiskThreshold, p.LowRiskThreshold)
	}
	return nil
}

// Classify maps an exceedance percentage onto a RiskLevel.
func (p Policy) Classify(exceedancePercentage float64) RiskLevel {
	switch {
	case exceedancePercentage >= p.LowRiskThreshold:
		return RiskLow
	case exceedancePercentage >= p.MediumRiskThreshold:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// ClassifyRisk classifies with DefaultPolicy.
func ClassifyRisk(exceedancePercentage float64) RiskLevel {
	return DefaultPolicy().Classify(exceedancePercentage)
}
