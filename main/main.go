package main

import (
	"fmt"
	"os"

	"github.com/adammck/footstep/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configFile string
	logLevel   string
	dt         float64
	duration   float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "footstep",
		Short: "procedural foot placement for a walking biped",
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (overrides config)")
	rootCmd.PersistentFlags().Float64Var(&dt, "dt", 0, "timestep in seconds (overrides config)")
	rootCmd.PersistentFlags().Float64Var(&duration, "duration", 0, "simulated seconds (overrides config)")

	rootCmd.AddCommand(
		runCommand(),
		plotCommand(),
		gaitCommand(),
		liveCommand(),
		exportCommand(),
		configCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the config file (or the defaults), applies the flags on
// top, and sets the log level.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		c, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = c
	} else if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	if dt != 0 {
		cfg.Dt = dt
	}

	if duration != 0 {
		cfg.Duration = duration
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	lvl, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	logrus.SetLevel(lvl)
	return cfg, nil
}
