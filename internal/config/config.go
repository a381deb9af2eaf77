// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/revenue-forecast/pkg/constants"
	"github.com/iwvelando/revenue-forecast/pkg/mathutil"
	"github.com/iwvelando/revenue-forecast/pkg/montecarlo"
	"github.com/iwvelando/revenue-forecast/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for revenue-forecast.
type Configuration struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Risk       RiskConfig       `yaml:"risk"`
	Histogram  HistogramConfig  `yaml:"histogram"`
	Logging    LoggingConfig    `yaml:"logging,omitempty"`
	Output     OutputConfig     `yaml:"output,omitempty"`
}

// SimulationConfig describes the monthly revenue distribution, the quarterly
// target and how many trials to run.
type SimulationConfig struct {
	Mean              float64 `yaml:"mean"`
	StandardDeviation float64 `yaml:"standardDeviation"`
	Target            float64 `yaml:"target"`
	Runs              int     `yaml:"runs"`      // live feedback
	RerunRuns         int     `yaml:"rerunRuns"` // explicit re-run
	Seed              uint64  `yaml:"seed"`      // 0 seeds from the clock
	Workers           int     `yaml:"workers"`
}

// RiskConfig holds the exceedance percentages that separate risk bands.
type RiskConfig struct {
	LowThreshold    float64 `yaml:"lowThreshold"`
	MediumThreshold float64 `yaml:"mediumThreshold"`
}

// HistogramConfig controls outcome binning.
type HistogramConfig struct {
	Bins int `yaml:"bins"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json, yaml
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads YAML configuration from r. Missing keys
// fall back to defaults.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return decode(v)
}

// Default returns a configuration populated only with defaults and any
// environment overrides.
func Default() (*Configuration, error) {
	return decode(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("simulation.mean", 0.0)
	v.SetDefault("simulation.standardDeviation", 0.0)
	v.SetDefault("simulation.target", 0.0)
	v.SetDefault("simulation.runs", constants.DefaultRuns)
	v.SetDefault("simulation.rerunRuns", constants.DefaultRerunRuns)
	v.SetDefault("simulation.seed", 0)
	v.SetDefault("simulation.workers", constants.DefaultWorkers)
	v.SetDefault("risk.lowThreshold", constants.DefaultLowRiskThreshold)
	v.SetDefault("risk.mediumThreshold", constants.DefaultMediumRiskThreshold)
	v.SetDefault("histogram.bins", constants.DefaultHistogramBins)
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", "")
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}
	return &configuration, nil
}

// Policy converts the risk thresholds into a montecarlo.Policy.
func (c *Configuration) Policy() montecarlo.Policy {
	return montecarlo.Policy{
		LowRiskThreshold:    c.Risk.LowThreshold,
		MediumRiskThreshold: c.Risk.MediumThreshold,
	}
}

// RunsFor returns the trial count for a live run or an explicit re-run.
func (c *Configuration) RunsFor(rerun bool) int {
	if rerun {
		return c.Simulation.RerunRuns
	}
	return c.Simulation.Runs
}

// Validate returns an error for settings that make a run impossible.
func (c *Configuration) Validate() error {
	if c.Simulation.Runs <= 0 {
		return fmt.Errorf("simulation.runs must be positive, got %d", c.Simulation.Runs)
	}
	if c.Simulation.RerunRuns <= 0 {
		return fmt.Errorf("simulation.rerunRuns must be positive, got %d", c.Simulation.RerunRuns)
	}
	if c.Simulation.Workers < 0 {
		return fmt.Errorf("simulation.workers must not be negative, got %d", c.Simulation.Workers)
	}
	if c.Histogram.Bins <= 0 {
		return fmt.Errorf("histogram.bins must be positive, got %d", c.Histogram.Bins)
	}
	if err := montecarlo.ValidateDistribution(c.Simulation.Runs, c.Simulation.Mean, c.Simulation.StandardDeviation); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}
	if !mathutil.IsFinite(c.Simulation.Target) {
		return fmt.Errorf("simulation: %w: target must be finite, got %v", montecarlo.ErrInvalidParameter, c.Simulation.Target)
	}
	if err := c.Policy().Validate(); err != nil {
		return fmt.Errorf("risk: %w", err)
	}
	if err := validation.ValidateLogLevel(c.Logging.Level); err != nil {
		return err
	}
	if err := validation.ValidateLogFormat(c.Logging.Format); err != nil {
		return err
	}
	if c.Output.Format != "" {
		if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
			return err
		}
	}
	return nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	return validation.ValidateSimulation(validation.SimulationInputs{
		Mean:              c.Simulation.Mean,
		StandardDeviation: c.Simulation.StandardDeviation,
		Target:            c.Simulation.Target,
		Runs:              c.Simulation.Runs,
		RerunRuns:         c.Simulation.RerunRuns,
		Workers:           c.Simulation.Workers,
	})
}
