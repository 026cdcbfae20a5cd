package evo

import (
	"fmt"

	"github.com/emre-ergun/how-to-fly/internal/random"
)

// Selector chooses one parent from a population, weighted by fitness.
type Selector interface {
	Name() string
	Select(src random.Source, population []Individual) (Individual, error)
}

// RouletteWheelSelector draws a candidate with probability proportional
// to its fitness relative to the population's fitness sum. Equal
// fitness values degenerate to a uniform draw; a population whose
// weights are all zero or negative is rejected. Selection never
// mutates the population and repeat draws may return the same
// candidate.
type RouletteWheelSelector struct{}

func (RouletteWheelSelector) Name() string {
	return "roulette_wheel"
}

func (RouletteWheelSelector) Select(src random.Source, population []Individual) (Individual, error) {
	if src == nil {
		return nil, fmt.Errorf("random source is required")
	}
	if len(population) == 0 {
		return nil, ErrEmptyPopulation
	}

	weights := make([]float64, len(population))
	for i, individual := range population {
		weights[i] = individual.Fitness()
	}

	idx, err := src.WeightedIndex(weights)
	if err != nil {
		return nil, fmt.Errorf("roulette selection: %w", err)
	}
	return population[idx], nil
}
