// Package forecast runs quarterly revenue simulations from a configuration
// and packages the outcomes with their summary statistics.
package forecast

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/revenue-forecast/internal/config"
	"github.com/iwvelando/revenue-forecast/pkg/format"
	"github.com/iwvelando/revenue-forecast/pkg/montecarlo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Parameters records the inputs of a single run.
type Parameters struct {
	Mean              float64 `json:"mean" yaml:"mean"`
	StandardDeviation float64 `json:"standardDeviation" yaml:"standardDeviation"`
	Target            float64 `json:"target" yaml:"target"`
	Runs              int     `json:"runs" yaml:"runs"`
	Seed              uint64  `json:"seed" yaml:"seed"`
	Workers           int     `json:"workers" yaml:"workers"`
}

// Result holds everything produced by one run.
type Result struct {
	ID         string             `json:"id" yaml:"id"`
	Parameters Parameters         `json:"parameters" yaml:"parameters"`
	Summary    montecarlo.Summary `json:"summary" yaml:"summary"`
	Histogram  []Bin              `json:"histogram" yaml:"histogram"`
	Outcomes   []float64          `json:"-" yaml:"-"`
	Duration   time.Duration      `json:"duration" yaml:"duration"`
}

// Recommendation returns the stocking range, the interquartile band of
// simulated quarterly revenue.
func (r *Result) Recommendation() (float64, float64) {
	return r.Summary.Interval50()
}

// Headline is the one-sentence exceedance statement for the run.
func (r *Result) Headline() string {
	return fmt.Sprintf("There is a %s chance of exceeding %s.",
		format.Percentage(r.Summary.ExceedancePercentage), format.Currency(r.Parameters.Target))
}

// RecommendationText is the stocking advice for the run.
func (r *Result) RecommendationText() string {
	lo, hi := r.Recommendation()
	return fmt.Sprintf("Stock for %s range.", format.CurrencyRange(lo, hi))
}

// Runner executes simulations for one configuration.
type Runner struct {
	logger *zap.Logger
	conf   config.Configuration
	policy montecarlo.Policy
	clock  func() time.Time
}

// NewRunner constructs a Runner for the provided configuration.
func NewRunner(logger *zap.Logger, conf *config.Configuration) (*Runner, error) {
	if conf == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &Runner{
		logger: logger,
		conf:   *conf,
		policy: conf.Policy(),
		clock:  time.Now,
	}, nil
}

// Run simulates runs quarters and summarizes them. The work is split into
// the configured number of shards, each with its own source seeded from the
// run seed, and the shards are concatenated in order so a fixed seed and
// worker count always yield the same outcomes.
func (r *Runner) Run(ctx context.Context, runs int) (*Result, error) {
	sim := r.conf.Simulation
	if err := montecarlo.ValidateDistribution(runs, sim.Mean, sim.StandardDeviation); err != nil {
		return nil, err
	}

	start := r.clock()
	seed := sim.Seed
	if seed == 0 {
		seed = uint64(start.UnixNano())
	}
	shards := SplitRuns(runs, sim.Workers)

	r.logger.Debug("starting simulation",
		zap.String("op", "forecast.Run"),
		zap.Int("runs", runs),
		zap.Int("shards", len(shards)),
		zap.Uint64("seed", seed),
	)

	parts := make([][]float64, len(shards))
	g, gctx := errgroup.WithContext(ctx)
	for i, count := range shards {
		g.Go(func() error {
			src := montecarlo.NewSource(seed + uint64(i))
			outcomes, err := montecarlo.GenerateOutcomesContext(gctx, src, count, sim.Mean, sim.StandardDeviation)
			if err != nil {
				return fmt.Errorf("shard %d: %w", i, err)
			}
			parts[i] = outcomes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	outcomes := make([]float64, 0, runs)
	for _, part := range parts {
		outcomes = append(outcomes, part...)
	}

	summary, err := r.policy.Summarize(outcomes, sim.Target)
	if err != nil {
		return nil, err
	}

	histogram, err := BuildHistogram(outcomes, r.conf.Histogram.Bins)
	if err != nil {
		return nil, err
	}

	result := &Result{
		ID: uuid.NewString(),
		Parameters: Parameters{
			Mean:              sim.Mean,
			StandardDeviation: sim.StandardDeviation,
			Target:            sim.Target,
			Runs:              runs,
			Seed:              seed,
			Workers:           len(shards),
		},
		Summary:   summary,
		Histogram: histogram,
		Outcomes:  outcomes,
		Duration:  r.clock().Sub(start),
	}

	r.logger.Info("simulation computed",
		zap.String("op", "forecast.Run"),
		zap.String("id", result.ID),
		zap.Int("runs", runs),
		zap.Uint64("seed", seed),
		zap.Float64("exceedancePercentage", summary.ExceedancePercentage),
		zap.String("riskLevel", string(summary.RiskLevel)),
		zap.Duration("duration", result.Duration),
	)

	return result, nil
}

// SplitRuns divides runs into at most workers shards. The remainder goes to
// the last shard and no shard is empty.
func SplitRuns(runs, workers int) []int {
	if workers < 1 {
		workers = 1
	}
	if workers > runs {
		workers = runs
	}
	if workers < 1 {
		return nil
	}

	shards := make([]int, workers)
	per := runs / workers
	for i := range shards {
		shards[i] = per
	}
	shards[workers-1] += runs % workers
	return shards
}
