package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/iwvelando/revenue-forecast/internal/config"
	"github.com/iwvelando/revenue-forecast/internal/forecast"
	"github.com/iwvelando/revenue-forecast/pkg/constants"
	"github.com/iwvelando/revenue-forecast/pkg/output"
	"github.com/iwvelando/revenue-forecast/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = constants.LogLevelInfo
	}

	var zapLevel zapcore.Level
	switch level {
	case constants.LogLevelDebug:
		zapLevel = zapcore.DebugLevel
	case constants.LogLevelInfo:
		zapLevel = zapcore.InfoLevel
	case constants.LogLevelWarn, "warning":
		zapLevel = zapcore.WarnLevel
	case constants.LogLevelError:
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = constants.LogFormatJSON
	}

	var config zap.Config
	switch format {
	case constants.LogFormatConsole:
		config = zap.NewDevelopmentConfig()
	case constants.LogFormatJSON:
		config = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	config.Level = zap.NewAtomicLevelAt(zapLevel)

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		config.OutputPaths = []string{loggingConfig.OutputFile}
		config.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return config.Build()
}

// loadConfiguration reads the config file, falling back to defaults when the
// default file is absent so that flags alone can drive a run.
func loadConfiguration(path string, explicit bool) (*config.Configuration, error) {
	conf, err := config.LoadConfiguration(path)
	if err == nil {
		return conf, nil
	}
	if _, statErr := os.Stat(path); !explicit && errors.Is(statErr, os.ErrNotExist) {
		return config.Default()
	}
	return nil, err
}

// applyOverrides copies flags that were set on the command line onto conf.
func applyOverrides(fs *flag.FlagSet, conf *config.Configuration, mean, sd, target *float64, runs *int, seed *uint64) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mean":
			conf.Simulation.Mean = *mean
		case "sd":
			conf.Simulation.StandardDeviation = *sd
		case "target":
			conf.Simulation.Target = *target
		case "runs":
			conf.Simulation.Runs = *runs
			conf.Simulation.RerunRuns = *runs
		case "seed":
			conf.Simulation.Seed = *seed
		}
	})
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv, json, yaml")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	rerun := flag.Bool("rerun", false, "use the larger re-run trial count")
	runs := flag.Int("runs", 0, "trial count override")
	seed := flag.Uint64("seed", 0, "random seed override (0 seeds from the clock)")
	mean := flag.Float64("mean", 0, "monthly mean revenue override")
	sd := flag.Float64("sd", 0, "monthly standard deviation override")
	target := flag.Float64("target", 0, "quarterly target override")
	flag.Parse()

	explicitConfig := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			explicitConfig = true
		}
	})

	conf, err := loadConfiguration(*configLocation, explicitConfig)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}
	applyOverrides(flag.CommandLine, conf, mean, sd, target, runs, seed)

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	if err := conf.Validate(); err != nil {
		logger.Fatal("invalid configuration",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	runner, err := forecast.NewRunner(logger, conf)
	if err != nil {
		logger.Fatal("failed to initialize simulation",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := runner.Run(ctx, conf.RunsFor(*rerun))
	if err != nil {
		logger.Fatal("failed to run simulation",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	if err := output.Write(os.Stdout, outputFormat, result); err != nil {
		logger.Fatal("failed to write results",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
