package lab

import (
	"context"
	"errors"
	"testing"
)

func newTestRunner(t *testing.T) *Runner {
	t.Helper()

	l, _ := newTestLab(t)
	runner, err := NewRunner(l, nil)
	if err != nil {
		t.Fatalf("new runner: %v", err)
	}
	return runner
}

func TestRunnerStartAndWait(t *testing.T) {
	runner := newTestRunner(t)

	cfg := RunConfig{
		RunID:               "bg-1",
		Problem:             "sphere",
		PopulationSize:      8,
		Generations:         5,
		Seed:                9,
		MutationChance:      0.5,
		MutationCoefficient: 0.3,
	}
	id, err := runner.Start(cfg)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if id != "bg-1" {
		t.Fatalf("unexpected run id %q", id)
	}

	result, err := runner.Wait(id)
	if err != nil {
		t.Fatalf("wait: %v", err)
	}
	if len(result.FinalPopulation) != cfg.PopulationSize {
		t.Fatalf("final population size %d", len(result.FinalPopulation))
	}

	if _, ok := runner.Status(id); ok {
		t.Fatal("run should be untracked after Wait")
	}
}

func TestRunnerRejectsDuplicateAndUnnamedRuns(t *testing.T) {
	runner := newTestRunner(t)

	cfg := RunConfig{
		RunID:          "bg-dup",
		Problem:        "sphere",
		Generations:    2000,
		MutationChance: 0.5,
	}
	if _, err := runner.Start(cfg); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := runner.Start(cfg); err == nil {
		t.Fatal("expected duplicate run id to be rejected")
	}
	if _, err := runner.Start(RunConfig{Problem: "sphere"}); err == nil {
		t.Fatal("expected unnamed background run to be rejected")
	}

	runner.StopAll()
}

func TestRunnerStopCancelsRun(t *testing.T) {
	runner := newTestRunner(t)

	cfg := RunConfig{
		RunID:               "bg-stop",
		Problem:             "rastrigin",
		PopulationSize:      10,
		Generations:         500000,
		MutationChance:      0.5,
		MutationCoefficient: 0.3,
	}
	id, err := runner.Start(cfg)
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	runner.Stop(id)

	status, ok := runner.Status(id)
	if !ok || !status.Finished {
		t.Fatalf("expected finished status after Stop, got ok=%v status=%+v", ok, status)
	}

	// A canceled run reports context.Canceled unless it happened to
	// finish before the cancellation landed.
	if _, err := runner.Wait(id); err != nil && !errors.Is(err, context.Canceled) {
		t.Fatalf("unexpected wait error: %v", err)
	}
}

func TestRunnerStatusUnknownRun(t *testing.T) {
	runner := newTestRunner(t)
	if _, ok := runner.Status("nope"); ok {
		t.Fatal("unknown run must not report a status")
	}
}
