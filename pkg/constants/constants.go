// Package constants provides shared constants for the revenue-forecast application.
package constants

// Simulation constants
const (
	// MonthsPerQuarter is the number of monthly draws summed into one trial
	MonthsPerQuarter = 3

	// DefaultRuns is the trial count used for live feedback
	DefaultRuns = 20000

	// DefaultRerunRuns is the trial count used for an explicit re-run
	DefaultRerunRuns = 40000

	// DefaultWorkers is the default number of independent shards
	DefaultWorkers = 1

	// DefaultHistogramBins is the number of equal-width outcome bins
	DefaultHistogramBins = 40

	// MinimumRecommendedRuns is the trial count below which percentiles get noisy
	MinimumRecommendedRuns = 1000
)

// Risk policy defaults
const (
	// DefaultLowRiskThreshold is the exceedance percentage at or above which risk is Low
	DefaultLowRiskThreshold = 70.0

	// DefaultMediumRiskThreshold is the exceedance percentage at or above which risk is Medium
	DefaultMediumRiskThreshold = 40.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"

	// OutputFormatYAML is the YAML output format
	OutputFormatYAML = "yaml"
)

// Logging constants
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"

	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// EnvPrefix is prepended to environment variable overrides
	EnvPrefix = "REVENUE_FORECAST"
)

// Validation constants
const (
	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// OutcomeTolerance is the tolerance for comparing simulated totals
	OutcomeTolerance = 1e-9

	// HeavyClampingRatio is the sd/mean ratio above which clamping at zero
	// noticeably biases the outcome distribution
	HeavyClampingRatio = 0.5
)
