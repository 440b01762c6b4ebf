package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/picodino/internal/platform/headless"
	"github.com/vovakirdan/picodino/internal/registry"
)

var (
	flagTicks   int
	flagStepMs  uint32
	flagRuns    int
	flagLead    int
	flagVerbose bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Let the autopilot play without a display",
	Long: `Run the game on a simulated clock with the autopilot pressing jump,
then print a table of the runs.

Examples:
  picodino simulate --seed 42
  picodino simulate --runs 10 --ticks 100000 --difficulty hard
  picodino simulate --lead 14 --verbose --log-level debug`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", headless.DefaultTicks, "Stop after this many ticks")
	simulateCmd.Flags().Uint32Var(&flagStepMs, "step-ms", headless.DefaultStepMs, "Simulated milliseconds per tick")
	simulateCmd.Flags().IntVar(&flagRuns, "runs", headless.DefaultRuns, "Stop after this many game overs")
	simulateCmd.Flags().IntVar(&flagLead, "lead", 0, "Autopilot jump distance in pixels (0 = default)")
	simulateCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log every game event at debug level")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	backend, err := registry.Create(headless.BackendID)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return backend.Run(ctx, registry.Options{
		Config:  cfg,
		Seed:    flagSeed,
		Store:   store,
		Logger:  logger,
		Out:     cmd.OutOrStdout(),
		Ticks:   flagTicks,
		StepMs:  flagStepMs,
		Runs:    flagRuns,
		Lead:    flagLead,
		Verbose: flagVerbose,
	})
}
