package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/emre-ergun/how-to-fly/internal/storage"
	"github.com/emre-ergun/how-to-fly/pkg/howtofly"
)

func main() {
	if err := run(context.Background(), os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "init":
		return runInit(ctx, args[1:])
	case "run":
		return runRun(ctx, args[1:])
	case "runs":
		return runRuns(ctx, args[1:])
	case "fitness":
		return runFitness(ctx, args[1:])
	case "best":
		return runBest(ctx, args[1:])
	case "problems":
		return runProblems(ctx, args[1:])
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: howtoflyctl <init|run|runs|fitness|best|problems> [flags]", msg)
}

type clientFlags struct {
	storeKind *string
	dbPath    *string
	logLevel  *string
	logFormat *string
}

func registerClientFlags(fs *flag.FlagSet) clientFlags {
	return clientFlags{
		storeKind: fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite"),
		dbPath:    fs.String("db-path", "howtofly.db", "sqlite database path"),
		logLevel:  fs.String("log-level", "info", "log level: debug|info|warn|error"),
		logFormat: fs.String("log-format", "console", "log format: console|json"),
	}
}

func (f clientFlags) newClient() (*howtofly.Client, error) {
	logger, err := newLogger(*f.logLevel, *f.logFormat)
	if err != nil {
		return nil, err
	}
	return howtofly.New(howtofly.Options{
		StoreKind: *f.storeKind,
		DBPath:    *f.dbPath,
		Logger:    logger,
	})
}

func newLogger(level, format string) (*zap.Logger, error) {
	var cfg zap.Config
	if format == "json" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	cfg.Level = zap.NewAtomicLevelAt(zapLevel)
	return cfg.Build()
}

func runInit(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	cf := registerClientFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := cf.newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Init(ctx); err != nil {
		return err
	}
	fmt.Printf("initialized %s store\n", *cf.storeKind)
	return nil
}

func runRun(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	cf := registerClientFlags(fs)
	configPath := fs.String("config", "", "optional YAML run config")
	runID := fs.String("run-id", "", "run identifier (generated when empty)")
	problemName := fs.String("problem", "", "problem name (default sphere)")
	population := fs.Int("population", 0, "population size")
	genomeLen := fs.Int("genome-len", 0, "genome length (problem default when 0)")
	generations := fs.Int("generations", 0, "number of generations")
	seed := fs.Int64("seed", 0, "random seed")
	chance := fs.Float64("mutation-chance", 0.5, "per-gene mutation probability in [0, 1]")
	coefficient := fs.Float64("mutation-coefficient", 0.3, "mutation perturbation scale")
	if err := fs.Parse(args); err != nil {
		return err
	}

	req := howtofly.RunRequest{}
	if *configPath != "" {
		loaded, err := loadRunRequest(*configPath)
		if err != nil {
			return err
		}
		req = loaded
	} else {
		req.MutationChance = *chance
		req.MutationCoefficient = *coefficient
	}

	// Explicit flags win over the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "run-id":
			req.RunID = *runID
		case "problem":
			req.Problem = *problemName
		case "population":
			req.Population = *population
		case "genome-len":
			req.GenomeLen = *genomeLen
		case "generations":
			req.Generations = *generations
		case "seed":
			req.Seed = *seed
		case "mutation-chance":
			req.MutationChance = *chance
		case "mutation-coefficient":
			req.MutationCoefficient = *coefficient
		}
	})

	client, err := cf.newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Init(ctx); err != nil {
		return err
	}

	started := time.Now()
	summary, err := client.Run(ctx, req)
	if err != nil {
		return err
	}

	fmt.Printf("run %s (%s) finished in %s\n", summary.RunID, summary.Problem, time.Since(started).Round(time.Millisecond))
	fmt.Printf("final best fitness: %.6f\n", summary.FinalBestFitness)
	fmt.Printf("best genes: %v\n", summary.BestGenes)
	return nil
}

func runRuns(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	cf := registerClientFlags(fs)
	limit := fs.Int("limit", 20, "maximum runs to list (0 for all)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := cf.newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Init(ctx); err != nil {
		return err
	}

	runs, err := client.Runs(ctx, *limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs recorded")
		return nil
	}

	fmt.Printf("%-38s %-12s %-10s %-12s %-12s %s\n", "RUN", "PROBLEM", "SEED", "GENERATIONS", "BEST", "CREATED")
	for _, item := range runs {
		created := item.CreatedAtUTC
		if at, err := time.Parse(time.RFC3339, item.CreatedAtUTC); err == nil {
			created = humanize.Time(at)
		}
		fmt.Printf("%-38s %-12s %-10d %-12s %-12.6f %s\n",
			item.RunID, item.Problem, item.Seed,
			humanize.Comma(int64(item.Generations)), item.FinalBestFitness, created)
	}
	return nil
}

func runFitness(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("fitness", flag.ContinueOnError)
	cf := registerClientFlags(fs)
	runID := fs.String("run-id", "", "run identifier")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *runID == "" {
		return usageError("fitness requires -run-id")
	}

	client, err := cf.newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Init(ctx); err != nil {
		return err
	}

	history, err := client.FitnessHistory(ctx, *runID)
	if err != nil {
		return err
	}

	fmt.Printf("%-12s %-12s %-12s %-12s %-12s %s\n", "GENERATION", "BEST", "WORST", "MEAN", "MEDIAN", "STDDEV")
	for _, record := range history {
		fmt.Printf("%-12d %-12.6f %-12.6f %-12.6f %-12.6f %.6f\n",
			record.Generation, record.Best, record.Worst, record.Mean, record.Median, record.StdDev)
	}
	return nil
}

func runBest(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("best", flag.ContinueOnError)
	cf := registerClientFlags(fs)
	runID := fs.String("run-id", "", "run identifier")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *runID == "" {
		return usageError("best requires -run-id")
	}

	client, err := cf.newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Init(ctx); err != nil {
		return err
	}

	best, err := client.Best(ctx, *runID)
	if err != nil {
		return err
	}

	fmt.Printf("run %s best fitness: %.6f\n", best.RunID, best.Fitness)
	fmt.Printf("genes: %v\n", best.Genes)
	return nil
}

func runProblems(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("problems", flag.ContinueOnError)
	cf := registerClientFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, err := cf.newClient()
	if err != nil {
		return err
	}
	defer client.Close()

	for _, info := range client.Problems() {
		fmt.Printf("%-12s %s\n", info.Name, info.Description)
	}
	return nil
}
