package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/iwvelando/revenue-forecast/internal/config"
	"github.com/iwvelando/revenue-forecast/internal/forecast"
	"github.com/iwvelando/revenue-forecast/pkg/montecarlo"
	"go.uber.org/zap"
)

// TestMain runs the integration suite.
func TestMain(m *testing.M) {
	code := m.Run()
	os.Exit(code)
}

// TestPerformance checks that a re-run sized simulation stays interactive.
func TestPerformance(t *testing.T) {
	start := time.Now()
	conf, err := config.LoadConfiguration(testConfigPath)
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}
	loadTime := time.Since(start)

	tests := []struct {
		name    string
		workers int
	}{
		{"Sequential", 1},
		{"Sharded", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := *conf
			c.Simulation.Workers = tt.workers
			runner, err := forecast.NewRunner(zap.NewNop(), &c)
			if err != nil {
				t.Fatalf("NewRunner failed: %v", err)
			}

			start := time.Now()
			result, err := runner.Run(context.Background(), 40000)
			if err != nil {
				t.Fatalf("Run failed: %v", err)
			}
			runTime := time.Since(start)

			t.Logf("Performance metrics:")
			t.Logf("  Load config: %v", loadTime)
			t.Logf("  Simulate %d runs on %d workers: %v", result.Parameters.Runs, tt.workers, runTime)

			if runTime > 10*time.Second {
				t.Errorf("simulation time %v exceeds 10 second threshold", runTime)
			}
		})
	}
}

// TestMemoryUsage repeats runs to catch state leaking between them.
func TestMemoryUsage(t *testing.T) {
	conf, err := config.LoadConfiguration(testConfigPath)
	if err != nil {
		t.Fatalf("LoadConfiguration failed: %v", err)
	}
	runner, err := forecast.NewRunner(zap.NewNop(), conf)
	if err != nil {
		t.Fatalf("NewRunner failed: %v", err)
	}

	var first montecarlo.Summary
	for i := 0; i < 10; i++ {
		result, err := runner.Run(context.Background(), conf.RunsFor(false))
		if err != nil {
			t.Fatalf("Run failed on iteration %d: %v", i, err)
		}
		if i == 0 {
			first = result.Summary
			continue
		}
		if result.Summary != first {
			t.Fatalf("iteration %d summary %+v differs from first %+v", i, result.Summary, first)
		}
	}
}

func BenchmarkGenerateOutcomes(b *testing.B) {
	src := montecarlo.NewSource(1)
	for i := 0; i < b.N; i++ {
		if _, err := montecarlo.GenerateOutcomes(src, 20000, 10000, 2500); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSummarize(b *testing.B) {
	outcomes, err := montecarlo.GenerateOutcomes(montecarlo.NewSource(1), 40000, 10000, 2500)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := montecarlo.Summarize(outcomes, 30000); err != nil {
			b.Fatal(err)
		}
	}
}
