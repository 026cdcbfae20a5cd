package evo

import (
	"errors"
	"fmt"

	"github.com/emre-ergun/how-to-fly/internal/random"
)

// Engine composes one selector, one crossover, and one mutator into a
// single generational step. It keeps no state across calls: Evolve is
// a pure function of the random source state and the input population.
type Engine struct {
	selector  Selector
	crossover Crossover
	mutator   Mutator
	factory   Factory
}

func NewEngine(selector Selector, crossover Crossover, mutator Mutator, factory Factory) (*Engine, error) {
	if selector == nil {
		return nil, errors.New("selector is required")
	}
	if crossover == nil {
		return nil, errors.New("crossover is required")
	}
	if mutator == nil {
		return nil, errors.New("mutator is required")
	}
	if factory == nil {
		return nil, errors.New("candidate factory is required")
	}
	return &Engine{
		selector:  selector,
		crossover: crossover,
		mutator:   mutator,
		factory:   factory,
	}, nil
}

// Evolve produces the next generation, identical in size to the input.
// For each output slot it draws two parents independently (they may
// coincide), crosses their chromosomes, mutates the child in place,
// and wraps it into a new individual. The input population is treated
// as an immutable snapshot: callers may retain it after Evolve
// returns. There is no partial success; any operator error aborts the
// whole step with no population returned.
func (e *Engine) Evolve(src random.Source, population []Individual) ([]Individual, error) {
	if src == nil {
		return nil, errors.New("random source is required")
	}
	if len(population) == 0 {
		return nil, ErrEmptyPopulation
	}

	next := make([]Individual, len(population))
	for slot := range next {
		parentA, err := e.selector.Select(src, population)
		if err != nil {
			return nil, fmt.Errorf("select parent a for slot %d: %w", slot, err)
		}
		parentB, err := e.selector.Select(src, population)
		if err != nil {
			return nil, fmt.Errorf("select parent b for slot %d: %w", slot, err)
		}

		child, err := e.crossover.Cross(src, parentA.Chromosome(), parentB.Chromosome())
		if err != nil {
			return nil, fmt.Errorf("crossover for slot %d: %w", slot, err)
		}

		e.mutator.Mutate(src, &child)
		next[slot] = e.factory(child)
	}
	return next, nil
}
