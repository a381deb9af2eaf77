package main

import (
	"flag"
	"path/filepath"
	"testing"

	"github.com/iwvelando/revenue-forecast/internal/config"
	"github.com/iwvelando/revenue-forecast/pkg/constants"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name      string
		logging   config.LoggingConfig
		override  string
		expectErr bool
	}{
		{"Defaults", config.LoggingConfig{}, "", false},
		{"Console debug", config.LoggingConfig{Level: "debug", Format: "console"}, "", false},
		{"Override level", config.LoggingConfig{Level: "bogus"}, "warn", false},
		{"Invalid level", config.LoggingConfig{Level: "trace"}, "", true},
		{"Invalid format", config.LoggingConfig{Format: "xml"}, "", true},
		{"Output file", config.LoggingConfig{OutputFile: filepath.Join(t.TempDir(), "logs", "run.log")}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := initializeLogger(tt.logging, tt.override)
			if tt.expectErr {
				if err == nil {
					t.Errorf("initializeLogger() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("initializeLogger() error = %v", err)
			}
			_ = logger.Sync()
		})
	}
}

func TestLoadConfigurationFallsBackToDefaults(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "config.yaml")

	conf, err := loadConfiguration(missing, false)
	if err != nil {
		t.Fatalf("loadConfiguration() error = %v", err)
	}
	if conf.Simulation.Runs != constants.DefaultRuns {
		t.Errorf("Runs = %d, expected default %d", conf.Simulation.Runs, constants.DefaultRuns)
	}

	if _, err := loadConfiguration(missing, true); err == nil {
		t.Error("expected error for an explicit missing config file")
	}
}

func TestApplyOverrides(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	mean := fs.Float64("mean", 0, "")
	sd := fs.Float64("sd", 0, "")
	target := fs.Float64("target", 0, "")
	runs := fs.Int("runs", 0, "")
	seed := fs.Uint64("seed", 0, "")
	if err := fs.Parse([]string{"-mean", "12000", "-runs", "500", "-seed", "9"}); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	conf := &config.Configuration{Simulation: config.SimulationConfig{
		Mean: 10000, StandardDeviation: 2500, Target: 30000, Runs: 20000, RerunRuns: 40000,
	}}
	applyOverrides(fs, conf, mean, sd, target, runs, seed)

	if conf.Simulation.Mean != 12000 {
		t.Errorf("Mean = %v, expected 12000", conf.Simulation.Mean)
	}
	if conf.Simulation.StandardDeviation != 2500 {
		t.Errorf("StandardDeviation = %v, expected unchanged 2500", conf.Simulation.StandardDeviation)
	}
	if conf.Simulation.Target != 30000 {
		t.Errorf("Target = %v, expected unchanged 30000", conf.Simulation.Target)
	}
	if conf.Simulation.Runs != 500 || conf.Simulation.RerunRuns != 500 {
		t.Errorf("Runs = %d/%d, expected 500/500", conf.Simulation.Runs, conf.Simulation.RerunRuns)
	}
	if conf.Simulation.Seed != 9 {
		t.Errorf("Seed = %d, expected 9", conf.Simulation.Seed)
	}
}
