package validation

import (
	"fmt"

	"github.com/iwvelando/revenue-forecast/pkg/constants"
	"github.com/iwvelando/revenue-forecast/pkg/format"
	"github.com/iwvelando/revenue-forecast/pkg/mathutil"
)

// SimulationInputs carries the fields inspected by ValidateSimulation.
type SimulationInputs struct {
	Mean              float64
	StandardDeviation float64
	Target            float64
	Runs              int
	RerunRuns         int
	Workers           int
}

// ValidateSimulation returns warnings about inputs that are legal but likely
// to produce misleading results. Non-finite mean, standard deviation or
// target are hard errors reported by config validation and are skipped here.
func ValidateSimulation(in SimulationInputs) []string {
	var warnings []string

	counts := []struct {
		name string
		runs int
	}{
		{"runs", in.Runs},
		{"rerunRuns", in.RerunRuns},
	}
	for _, c := range counts {
		if c.runs > 0 && c.runs < constants.MinimumRecommendedRuns {
			warnings = append(warnings, fmt.Sprintf("%s of %d is below %d; percentile estimates will be noisy",
				c.name, c.runs, constants.MinimumRecommendedRuns))
		}
	}

	if in.RerunRuns > 0 && in.Runs > 0 && in.RerunRuns < in.Runs {
		warnings = append(warnings, fmt.Sprintf("rerunRuns (%d) is smaller than runs (%d)", in.RerunRuns, in.Runs))
	}

	if warning := ValidateClamping(in.Mean, in.StandardDeviation); warning != "" {
		warnings = append(warnings, warning)
	}

	if mathutil.IsFinite(in.Target) && in.Target <= 0 {
		warnings = append(warnings, fmt.Sprintf("target %s is not positive; every trial will meet it",
			format.Currency(in.Target)))
	}

	if in.Workers > 1 && in.Runs > 0 && in.Workers > in.Runs {
		warnings = append(warnings, fmt.Sprintf("workers (%d) exceeds runs (%d); some shards will be idle",
			in.Workers, in.Runs))
	}

	return warnings
}

// ValidateClamping warns when the monthly distribution places enough mass
// below zero that clamping biases the quarterly total upward.
func ValidateClamping(mean, standardDeviation float64) string {
	if !mathutil.IsFinite(mean) || !mathutil.IsFinite(standardDeviation) || standardDeviation <= 0 {
		return ""
	}
	if mean <= 0 || standardDeviation/mean > constants.HeavyClampingRatio {
		return fmt.Sprintf("standard deviation %s is large relative to mean %s; negative months are clamped to zero and bias totals upward",
			format.Currency(standardDeviation), format.Currency(mean))
	}
	return ""
}
