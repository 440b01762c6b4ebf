package headless

import (
	"context"
	"os"

	"github.com/vovakirdan/picodino/internal/registry"
)

func init() {
	registry.Register(BackendID, func() registry.Backend {
		return Backend{}
	})
}

// Backend runs a simulation and prints its summary.
type Backend struct{}

// ID returns the backend ID.
func (Backend) ID() string { return BackendID }

// Title returns the backend name.
func (Backend) Title() string { return "Headless autopilot simulation" }

// Run simulates with the autopilot and writes the summary to opts.Out,
// or stdout when unset.
func (Backend) Run(ctx context.Context, opts registry.Options) error {
	summary, err := Simulate(ctx, opts.Config, Options{
		Seed:    opts.Seed,
		Ticks:   opts.Ticks,
		StepMs:  opts.StepMs,
		Runs:    opts.Runs,
		Lead:    opts.Lead,
		Store:   opts.Store,
		Logger:  opts.Logger,
		Verbose: opts.Verbose,
	})
	if err != nil {
		return err
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	return WriteSummary(out, summary)
}
