package headless

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/vovakirdan/picodino/internal/config"
	"github.com/vovakirdan/picodino/internal/registry"
	"github.com/vovakirdan/picodino/internal/storage"
)

func TestSimulateAutopilotSurvives(t *testing.T) {
	s, err := Simulate(context.Background(), config.DefaultDinoConfig(), Options{Seed: 1, Ticks: 2000})
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}

	if s.Ticks != 2000 {
		t.Errorf("Ticks = %d, expected 2000", s.Ticks)
	}
	if s.SimMs != 2000*DefaultStepMs {
		t.Errorf("SimMs = %d, expected %d", s.SimMs, 2000*DefaultStepMs)
	}
	if len(s.Runs) != 1 || s.Runs[0].Finished {
		t.Fatalf("expected one unfinished run, got %+v", s.Runs)
	}
	if s.Runs[0].Distance != 4000 {
		t.Errorf("Distance = %d, expected 4000", s.Runs[0].Distance)
	}
	if s.Frames != 2000 {
		t.Errorf("Frames = %d, expected one per tick", s.Frames)
	}
	if s.Spawns == 0 || s.Jumps == 0 {
		t.Errorf("expected spawns and jumps, got %d and %d", s.Spawns, s.Jumps)
	}
}

func TestSimulateCountsRuns(t *testing.T) {
	store, err := storage.Open("headless_runs_test")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	cfg := config.DefaultDinoConfig()
	cfg.Physics.JumpHeight = 1 // Every jump fails

	s, err := Simulate(context.Background(), cfg, Options{Seed: 7, Runs: 3, Store: store})
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	if len(s.Runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(s.Runs))
	}

	total := 0
	for i, r := range s.Runs {
		if !r.Finished {
			t.Errorf("run %d should end in a collision", i)
		}
		total += r.Ticks
	}
	if total != s.Ticks {
		t.Errorf("run ticks sum to %d, expected %d", total, s.Ticks)
	}

	if n, _ := store.Count(); n != 3 {
		t.Errorf("expected 3 stored runs, got %d", n)
	}
}

func TestSimulateIsDeterministic(t *testing.T) {
	cfg := config.DefaultDinoConfig()
	cfg.Physics.JumpHeight = 1
	opts := Options{Seed: 42, Runs: 2}

	a, err := Simulate(context.Background(), cfg, opts)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	b, err := Simulate(context.Background(), cfg, opts)
	if err != nil {
		t.Fatalf("Simulate() failed: %v", err)
	}
	if !slices.Equal(a.Runs, b.Runs) || a.Spawns != b.Spawns {
		t.Errorf("same seed gave different results:\n%+v\n%+v", a, b)
	}
}

func TestSimulateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Simulate(ctx, config.DefaultDinoConfig(), Options{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Simulate() = %v, expected context.Canceled", err)
	}
}

func TestWriteSummary(t *testing.T) {
	s := Summary{
		Seed:  3,
		Ticks: 10,
		Runs: []RunResult{
			{Points: 12, Distance: 120, Ticks: 60, SimMs: 960, Finished: true},
			{Points: 1, Distance: 8, Ticks: 4, SimMs: 64},
		},
	}

	var buf bytes.Buffer
	if err := WriteSummary(&buf, s); err != nil {
		t.Fatalf("WriteSummary() failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"POINTS", "collision", "tick limit", "960ms", "seed 3"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestBackendRun(t *testing.T) {
	b, err := registry.Create(BackendID)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	var buf bytes.Buffer
	err = b.Run(context.Background(), registry.Options{
		Config: config.DefaultDinoConfig(),
		Seed:   1,
		Ticks:  100,
		Out:    &buf,
	})
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !strings.Contains(buf.String(), "ticks 100") {
		t.Errorf("unexpected summary:\n%s", buf.String())
	}
}
