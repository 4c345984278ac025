// Package main provides the FormoTensor bridge CLI.
package main

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const version = "v0.2.0"

// runtimeConfig holds environment-derived tunables for the selfcheck run.
type runtimeConfig struct {
	Qubits  int   `env:"FORMOTENSOR_QUBITS" envDefault:"4"`
	Tensors int   `env:"FORMOTENSOR_TENSORS" envDefault:"5"`
	Seed    int64 `env:"FORMOTENSOR_SEED" envDefault:"42"`
	Verbose bool  `env:"FORMOTENSOR_VERBOSE" envDefault:"false"`
}

var rootCmd = &cobra.Command{
	Use:   "formotensor",
	Short: "Bridge tensor networks out of simulator state handles",
	Long: `FormoTensor extracts tensor-network decompositions from opaque
simulator state handles into host-resident buffers.

The bridge itself is a library; this CLI runs it against a synthetic
state so the full probe/describe/extract pipeline can be exercised
without a simulation engine attached.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("FormoTensor bridge %s\n", version)
	},
}

var selfcheckCmd = &cobra.Command{
	Use:   "selfcheck",
	Short: "Run the extraction pipeline against a synthetic state",
	Long: `Build a synthetic tensor-network state, probe its capabilities, describe
every tensor, and extract each one into host memory. One deliberately broken
tensor is included to demonstrate per-item failure isolation.

Tunables are read from the environment: FORMOTENSOR_QUBITS,
FORMOTENSOR_TENSORS, FORMOTENSOR_SEED, FORMOTENSOR_VERBOSE.`,
	RunE: runSelfcheck,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(selfcheckCmd)
}

func newLogger(verbose bool) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Prefix:          "formotensor",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

func loadConfig() (runtimeConfig, error) {
	var cfg runtimeConfig
	if err := env.Parse(&cfg); err != nil {
		return runtimeConfig{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.Tensors < 1 {
		return runtimeConfig{}, fmt.Errorf("FORMOTENSOR_TENSORS must be >= 1, got %d", cfg.Tensors)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
