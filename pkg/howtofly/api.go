// Package howtofly is the public facade over the evolution engine: a
// client that owns a run store and a problem registry and exposes the
// run/inspect operations the CLI builds on.
package howtofly

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/emre-ergun/how-to-fly/internal/lab"
	"github.com/emre-ergun/how-to-fly/internal/problem"
	"github.com/emre-ergun/how-to-fly/internal/storage"
)

const defaultDBPath = "howtofly.db"

type Options struct {
	StoreKind string
	DBPath    string
	Logger    *zap.Logger
}

type Client struct {
	store    storage.Store
	problems *problem.Registry
	lab      *lab.Lab
}

type RunRequest struct {
	RunID               string
	Problem             string
	Population          int
	GenomeLen           int
	Generations         int
	Seed                int64
	MutationChance      float64
	MutationCoefficient float64
}

type GenerationSummary struct {
	Generation int
	Best       float64
	Worst      float64
	Mean       float64
	Median     float64
	StdDev     float64
}

type RunSummary struct {
	RunID            string
	Problem          string
	BestByGeneration []float64
	FinalBestFitness float64
	BestGenes        []float64
}

type RunItem struct {
	RunID            string
	CreatedAtUTC     string
	Problem          string
	Seed             int64
	Population       int
	Generations      int
	FinalBestFitness float64
}

type BestSummary struct {
	RunID   string
	Fitness float64
	Genes   []float64
}

type ProblemInfo struct {
	Name        string
	Description string
}

func New(opts Options) (*Client, error) {
	storeKind := opts.StoreKind
	if storeKind == "" {
		storeKind = storage.DefaultStoreKind()
	}
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	store, err := storage.NewStore(storeKind, dbPath)
	if err != nil {
		return nil, err
	}

	problems := problem.DefaultRegistry()
	l, err := lab.New(store, problems, opts.Logger)
	if err != nil {
		return nil, err
	}

	return &Client{
		store:    store,
		problems: problems,
		lab:      l,
	}, nil
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

func (c *Client) Init(ctx context.Context) error {
	return c.store.Init(ctx)
}

func (c *Client) Run(ctx context.Context, req RunRequest) (RunSummary, error) {
	if req.Problem == "" {
		req.Problem = "sphere"
	}

	result, err := c.lab.Run(ctx, lab.RunConfig{
		RunID:               req.RunID,
		Problem:             req.Problem,
		PopulationSize:      req.Population,
		GenomeLen:           req.GenomeLen,
		Generations:         req.Generations,
		Seed:                req.Seed,
		MutationChance:      req.MutationChance,
		MutationCoefficient: req.MutationCoefficient,
	})
	if err != nil {
		return RunSummary{}, err
	}

	summary := RunSummary{
		RunID:            result.RunID,
		Problem:          result.Problem,
		BestByGeneration: make([]float64, len(result.History)),
		FinalBestFitness: result.Best.Fitness,
		BestGenes:        result.Best.Genes,
	}
	for i, generation := range result.History {
		summary.BestByGeneration[i] = generation.Best
	}
	return summary, nil
}

func (c *Client) Runs(ctx context.Context, limit int) ([]RunItem, error) {
	runs, err := c.store.ListRuns(ctx, limit)
	if err != nil {
		return nil, err
	}

	out := make([]RunItem, len(runs))
	for i, run := range runs {
		out[i] = RunItem{
			RunID:            run.ID,
			CreatedAtUTC:     run.CreatedAtUTC,
			Problem:          run.Problem,
			Seed:             run.Seed,
			Population:       run.PopulationSize,
			Generations:      run.Generations,
			FinalBestFitness: run.FinalBestFitness,
		}
	}
	return out, nil
}

func (c *Client) FitnessHistory(ctx context.Context, runID string) ([]GenerationSummary, error) {
	history, ok, err := c.store.GetFitnessHistory(ctx, runID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("no fitness history for run %s", runID)
	}

	out := make([]GenerationSummary, len(history))
	for i, record := range history {
		out[i] = GenerationSummary{
			Generation: record.Generation,
			Best:       record.Best,
			Worst:      record.Worst,
			Mean:       record.Mean,
			Median:     record.Median,
			StdDev:     record.StdDev,
		}
	}
	return out, nil
}

func (c *Client) Best(ctx context.Context, runID string) (BestSummary, error) {
	best, ok, err := c.store.GetBest(ctx, runID)
	if err != nil {
		return BestSummary{}, err
	}
	if !ok {
		return BestSummary{}, fmt.Errorf("no best individual for run %s", runID)
	}
	return BestSummary{
		RunID:   best.RunID,
		Fitness: best.Fitness,
		Genes:   best.Genes,
	}, nil
}

func (c *Client) Problems() []ProblemInfo {
	names := c.problems.Names()
	out := make([]ProblemInfo, 0, len(names))
	for _, name := range names {
		p, err := c.problems.Lookup(name)
		if err != nil {
			continue
		}
		out = append(out, ProblemInfo{Name: p.Name(), Description: p.Description()})
	}
	return out
}
