// Package lab is the driving loop around the engine: it builds the
// operators for a configured run, steps the population for a fixed
// number of generations, and persists the run's artifacts. The engine
// itself stays free of any of this bookkeeping.
package lab

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/emre-ergun/how-to-fly/internal/evo"
	"github.com/emre-ergun/how-to-fly/internal/model"
	"github.com/emre-ergun/how-to-fly/internal/problem"
	"github.com/emre-ergun/how-to-fly/internal/random"
	"github.com/emre-ergun/how-to-fly/internal/stats"
	"github.com/emre-ergun/how-to-fly/internal/storage"
)

const (
	defaultPopulationSize = 20
	defaultGenerations    = 50
)

type Lab struct {
	store    storage.Store
	problems *problem.Registry
	logger   *zap.Logger
}

func New(store storage.Store, problems *problem.Registry, logger *zap.Logger) (*Lab, error) {
	if store == nil {
		return nil, errors.New("store is required")
	}
	if problems == nil {
		return nil, errors.New("problem registry is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Lab{store: store, problems: problems, logger: logger}, nil
}

// RunConfig describes one evolution run. Zero values fall back to
// defaults where a default is sensible; the problem name is required.
type RunConfig struct {
	RunID               string
	Problem             string
	PopulationSize      int
	GenomeLen           int
	Generations         int
	Seed                int64
	MutationChance      float64
	MutationCoefficient float64
}

func (c RunConfig) validate() error {
	if c.Problem == "" {
		return errors.New("problem is required")
	}
	if c.PopulationSize < 0 {
		return fmt.Errorf("population size must be >= 0, got %d", c.PopulationSize)
	}
	if c.GenomeLen < 0 {
		return fmt.Errorf("genome length must be >= 0, got %d", c.GenomeLen)
	}
	if c.Generations < 0 {
		return fmt.Errorf("generations must be >= 0, got %d", c.Generations)
	}
	if c.MutationChance < 0 || c.MutationChance > 1 {
		return fmt.Errorf("mutation chance must be in [0, 1], got %v", c.MutationChance)
	}
	return nil
}

type RunResult struct {
	RunID           string
	Problem         string
	History         []stats.Summary
	FinalPopulation []evo.Individual
	Best            model.BestRecord
}

// Run executes one full evolution run and persists its record, its
// fitness history, and its best individual. The run is deterministic
// for a given config: one seeded source drives every draw, and the
// context is only consulted between generations.
func (l *Lab) Run(ctx context.Context, cfg RunConfig) (RunResult, error) {
	if err := cfg.validate(); err != nil {
		return RunResult{}, fmt.Errorf("invalid run config: %w", err)
	}

	prob, err := l.problems.Lookup(cfg.Problem)
	if err != nil {
		return RunResult{}, err
	}

	if cfg.RunID == "" {
		cfg.RunID = uuid.NewString()
	}
	if cfg.PopulationSize == 0 {
		cfg.PopulationSize = defaultPopulationSize
	}
	if cfg.Generations == 0 {
		cfg.Generations = defaultGenerations
	}
	if cfg.GenomeLen == 0 {
		cfg.GenomeLen = prob.DefaultGenomeLen()
	}

	mutator, err := evo.NewGaussianMutator(cfg.MutationChance, cfg.MutationCoefficient)
	if err != nil {
		return RunResult{}, err
	}
	engine, err := evo.NewEngine(evo.RouletteWheelSelector{}, evo.UniformCrossover{}, mutator, prob.New)
	if err != nil {
		return RunResult{}, err
	}

	logger := l.logger.With(
		zap.String("run_id", cfg.RunID),
		zap.String("problem", prob.Name()),
		zap.Int64("seed", cfg.Seed),
	)
	logger.Info("starting run",
		zap.Int("population_size", cfg.PopulationSize),
		zap.Int("genome_len", cfg.GenomeLen),
		zap.Int("generations", cfg.Generations),
	)

	src := random.New(cfg.Seed)
	population := make([]evo.Individual, cfg.PopulationSize)
	for i := range population {
		population[i] = prob.Random(src, cfg.GenomeLen)
	}

	result := RunResult{
		RunID:   cfg.RunID,
		Problem: prob.Name(),
		History: make([]stats.Summary, 0, cfg.Generations+1),
	}

	best := model.BestRecord{
		VersionedRecord: currentVersion(),
		RunID:           cfg.RunID,
		Fitness:         -1,
	}
	observe := func(generation int, pop []evo.Individual) error {
		summary, err := stats.Summarize(generation, pop)
		if err != nil {
			return err
		}
		result.History = append(result.History, summary)
		for _, individual := range pop {
			if individual.Fitness() > best.Fitness {
				best.Fitness = individual.Fitness()
				best.Genes = individual.Chromosome().ToSlice()
			}
		}
		logger.Debug("generation complete",
			zap.Int("generation", generation),
			zap.Float64("best", summary.Best),
			zap.Float64("mean", summary.Mean),
		)
		return nil
	}

	if err := observe(0, population); err != nil {
		return RunResult{}, err
	}
	for generation := 1; generation <= cfg.Generations; generation++ {
		if err := ctx.Err(); err != nil {
			return RunResult{}, fmt.Errorf("run %s canceled at generation %d: %w", cfg.RunID, generation, err)
		}
		population, err = engine.Evolve(src, population)
		if err != nil {
			return RunResult{}, fmt.Errorf("generation %d: %w", generation, err)
		}
		if err := observe(generation, population); err != nil {
			return RunResult{}, err
		}
	}

	result.FinalPopulation = population
	result.Best = best

	if err := l.persist(ctx, cfg, result); err != nil {
		return RunResult{}, err
	}

	logger.Info("run complete", zap.Float64("final_best_fitness", best.Fitness))
	return result, nil
}

func (l *Lab) persist(ctx context.Context, cfg RunConfig, result RunResult) error {
	run := model.RunRecord{
		VersionedRecord:     currentVersion(),
		ID:                  cfg.RunID,
		CreatedAtUTC:        time.Now().UTC().Format(time.RFC3339),
		Problem:             result.Problem,
		Seed:                cfg.Seed,
		PopulationSize:      cfg.PopulationSize,
		GenomeLen:           cfg.GenomeLen,
		Generations:         cfg.Generations,
		MutationChance:      cfg.MutationChance,
		MutationCoefficient: cfg.MutationCoefficient,
		FinalBestFitness:    result.Best.Fitness,
	}
	if err := l.store.SaveRun(ctx, run); err != nil {
		return fmt.Errorf("save run %s: %w", cfg.RunID, err)
	}

	history := make([]model.GenerationRecord, len(result.History))
	for i, summary := range result.History {
		history[i] = model.GenerationRecord{
			Generation: summary.Generation,
			Best:       summary.Best,
			Worst:      summary.Worst,
			Mean:       summary.Mean,
			Median:     summary.Median,
			StdDev:     summary.StdDev,
		}
	}
	if err := l.store.SaveFitnessHistory(ctx, cfg.RunID, history); err != nil {
		return fmt.Errorf("save fitness history %s: %w", cfg.RunID, err)
	}

	if err := l.store.SaveBest(ctx, result.Best); err != nil {
		return fmt.Errorf("save best individual %s: %w", cfg.RunID, err)
	}
	return nil
}

func currentVersion() model.VersionedRecord {
	return model.VersionedRecord{
		SchemaVersion: storage.CurrentSchemaVersion,
		CodecVersion:  storage.CurrentCodecVersion,
	}
}
