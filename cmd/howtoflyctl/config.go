package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/emre-ergun/how-to-fly/pkg/howtofly"
)

// runFileConfig is the YAML shape of a run config file.
type runFileConfig struct {
	RunID       string         `yaml:"run_id"`
	Problem     string         `yaml:"problem"`
	Population  int            `yaml:"population"`
	GenomeLen   int            `yaml:"genome_len"`
	Generations int            `yaml:"generations"`
	Seed        int64          `yaml:"seed"`
	Mutation    mutationConfig `yaml:"mutation"`
}

type mutationConfig struct {
	Chance      float64 `yaml:"chance"`
	Coefficient float64 `yaml:"coefficient"`
}

func (c runFileConfig) validate() error {
	if c.Population < 0 {
		return fmt.Errorf("population must be >= 0, got %d", c.Population)
	}
	if c.GenomeLen < 0 {
		return fmt.Errorf("genome_len must be >= 0, got %d", c.GenomeLen)
	}
	if c.Generations < 0 {
		return fmt.Errorf("generations must be >= 0, got %d", c.Generations)
	}
	if c.Mutation.Chance < 0 || c.Mutation.Chance > 1 {
		return fmt.Errorf("mutation.chance must be in [0, 1], got %v", c.Mutation.Chance)
	}
	return nil
}

func loadRunRequest(path string) (howtofly.RunRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return howtofly.RunRequest{}, err
	}

	var cfg runFileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return howtofly.RunRequest{}, fmt.Errorf("parse run config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return howtofly.RunRequest{}, fmt.Errorf("invalid run config %s: %w", path, err)
	}

	return howtofly.RunRequest{
		RunID:               cfg.RunID,
		Problem:             cfg.Problem,
		Population:          cfg.Population,
		GenomeLen:           cfg.GenomeLen,
		Generations:         cfg.Generations,
		Seed:                cfg.Seed,
		MutationChance:      cfg.Mutation.Chance,
		MutationCoefficient: cfg.Mutation.Coefficient,
	}, nil
}
