// Package montecarlo estimates quarterly revenue outcomes by repeated random
// sampling and summarizes them into exceedance and percentile statistics.
//
// The package holds no global state. Every call takes its own random Source,
// so independent runs may execute concurrently and a fixed seed reproduces a
// fixed outcome sequence.
package montecarlo

import (
	"context"
	"fmt"

	"github.com/iwvelando/revenue-forecast/pkg/constants"
	"github.com/iwvelando/revenue-forecast/pkg/mathutil"
)

// CancellationCheckInterval is the number of trials generated between
// context checks in GenerateOutcomesContext.
const CancellationCheckInterval = 1024

// GenerateOutcomes simulates count quarters. Each outcome is the sum of
// three monthly draws from N(mean, standardDeviation²), with every negative
// monthly draw clamped to 0. Outcomes are returned in generation order.
func GenerateOutcomes(src Source, count int, mean, standardDeviation float64) ([]float64, error) {
	return GenerateOutcomesContext(context.Background(), src, count, mean, standardDeviation)
}

// GenerateOutcomesContext is GenerateOutcomes with a cooperative cancellation
// check between trials. A cancelled run returns the context error and no
// outcomes.
func GenerateOutcomesContext(ctx context.Context, src Source, count int, mean, standardDeviation float64) ([]float64, error) {
	if err := validateSamplerParameters(src, count, mean, standardDeviation); err != nil {
		return nil, err
	}

	outcomes := make([]float64, count)
	for i := range outcomes {
		if i%CancellationCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		outcomes[i] = simulateQuarter(src, mean, standardDeviation)
	}
	return outcomes, nil
}

func validateSamplerParameters(src Source, count int, mean, standardDeviation float64) error {
	if src == nil {
		return fmt.Errorf("%w: random source is nil", ErrInvalidParameter)
	}
	return ValidateDistribution(count, mean, standardDeviation)
}

// ValidateDistribution checks the trial count and the monthly distribution
// parameters. Errors wrap ErrInvalidParameter.
func ValidateDistribution(count int, mean, standardDeviation float64) error {
	if count <= 0 {
		return fmt.Errorf("%w: count must be positive, got %d", ErrInvalidParameter, count)
	}
	if !mathutil.IsFinite(mean) {
		return fmt.Errorf("%w: mean must be finite, got %v", ErrInvalidParameter, mean)
	}
	if !mathutil.IsFinite(standardDeviation) {
		return fmt.Errorf("%w: standard deviation must be finite, got %v", ErrInvalidParameter, standardDeviation)
	}
	if standardDeviation < 0 {
		return fmt.Errorf("%w: standard deviation must be non-negative, got %v", ErrInvalidParameter, standardDeviation)
	}
	return nil
}

func simulateQuarter(src Source, mean, standardDeviation float64) float64 {
	total := 0.0
	for month := 0; month < constants.MonthsPerQuarter; month++ {
		total += mathutil.ClampNonNegative(NormalSample(src, mean, standardDeviation))
	}
	return total
}
