package lab

import (
	"context"
	"errors"
	"testing"

	"github.com/emre-ergun/how-to-fly/internal/problem"
	"github.com/emre-ergun/how-to-fly/internal/storage"
)

func newTestLab(t *testing.T) (*Lab, *storage.MemoryStore) {
	t.Helper()

	store := storage.NewMemoryStore()
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("init store: %v", err)
	}
	l, err := New(store, problem.DefaultRegistry(), nil)
	if err != nil {
		t.Fatalf("new lab: %v", err)
	}
	return l, store
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	l, _ := newTestLab(t)
	ctx := context.Background()

	if _, err := l.Run(ctx, RunConfig{}); err == nil {
		t.Fatal("expected error for missing problem")
	}
	if _, err := l.Run(ctx, RunConfig{Problem: "sphere", MutationChance: 1.5}); err == nil {
		t.Fatal("expected error for mutation chance outside [0, 1]")
	}
	if _, err := l.Run(ctx, RunConfig{Problem: "no-such-problem"}); !errors.Is(err, problem.ErrProblemNotFound) {
		t.Fatalf("expected ErrProblemNotFound, got %v", err)
	}
}

func TestRunProducesHistoryAndPersistsArtifacts(t *testing.T) {
	l, store := newTestLab(t)
	ctx := context.Background()

	cfg := RunConfig{
		RunID:               "run-test",
		Problem:             "sphere",
		PopulationSize:      12,
		GenomeLen:           5,
		Generations:         8,
		Seed:                42,
		MutationChance:      0.5,
		MutationCoefficient: 0.3,
	}
	result, err := l.Run(ctx, cfg)
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	if len(result.History) != cfg.Generations+1 {
		t.Fatalf("history has %d entries, expected %d", len(result.History), cfg.Generations+1)
	}
	if len(result.FinalPopulation) != cfg.PopulationSize {
		t.Fatalf("final population size %d, expected %d", len(result.FinalPopulation), cfg.PopulationSize)
	}
	for _, individual := range result.FinalPopulation {
		if individual.Chromosome().Len() != cfg.GenomeLen {
			t.Fatalf("final individual has %d genes, expected %d", individual.Chromosome().Len(), cfg.GenomeLen)
		}
	}
	if result.Best.Fitness <= 0 {
		t.Fatalf("best fitness %v, expected positive", result.Best.Fitness)
	}

	run, ok, err := store.GetRun(ctx, "run-test")
	if err != nil || !ok {
		t.Fatalf("persisted run missing: ok=%v err=%v", ok, err)
	}
	if run.Problem != "sphere" || run.Seed != 42 {
		t.Fatalf("unexpected persisted run: %+v", run)
	}

	history, ok, err := store.GetFitnessHistory(ctx, "run-test")
	if err != nil || !ok {
		t.Fatalf("persisted history missing: ok=%v err=%v", ok, err)
	}
	if len(history) != cfg.Generations+1 {
		t.Fatalf("persisted history has %d entries", len(history))
	}

	best, ok, err := store.GetBest(ctx, "run-test")
	if err != nil || !ok {
		t.Fatalf("persisted best missing: ok=%v err=%v", ok, err)
	}
	if best.Fitness != result.Best.Fitness {
		t.Fatalf("persisted best %v differs from result %v", best.Fitness, result.Best.Fitness)
	}
}

func TestRunIsDeterministicPerSeed(t *testing.T) {
	ctx := context.Background()

	run := func(runID string) RunResult {
		l, _ := newTestLab(t)
		result, err := l.Run(ctx, RunConfig{
			RunID:               runID,
			Problem:             "target",
			PopulationSize:      10,
			Generations:         15,
			Seed:                1234,
			MutationChance:      0.5,
			MutationCoefficient: 0.5,
		})
		if err != nil {
			t.Fatalf("run: %v", err)
		}
		return result
	}

	a := run("run-a")
	b := run("run-b")

	if a.Best.Fitness != b.Best.Fitness {
		t.Fatalf("best fitness diverged: %v vs %v", a.Best.Fitness, b.Best.Fitness)
	}
	for i := range a.FinalPopulation {
		ga := a.FinalPopulation[i].Chromosome().Genes()
		gb := b.FinalPopulation[i].Chromosome().Genes()
		for j := range ga {
			if ga[j] != gb[j] {
				t.Fatalf("individual %d gene %d diverged: %v vs %v", i, j, ga[j], gb[j])
			}
		}
	}
}

func TestRunHonorsCanceledContext(t *testing.T) {
	l, _ := newTestLab(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := l.Run(ctx, RunConfig{Problem: "sphere", Generations: 5, MutationChance: 0.5})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRunDefaultsGenomeLenFromProblem(t *testing.T) {
	l, _ := newTestLab(t)

	result, err := l.Run(context.Background(), RunConfig{
		RunID:          "run-default-len",
		Problem:        "target",
		PopulationSize: 6,
		Generations:    2,
		MutationChance: 0.2,
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := problem.NewTargetProblem([]float64{0, 1, 2, 3, 4}).DefaultGenomeLen()
	for _, individual := range result.FinalPopulation {
		if individual.Chromosome().Len() != want {
			t.Fatalf("genome length %d, expected problem default %d", individual.Chromosome().Len(), want)
		}
	}
}
