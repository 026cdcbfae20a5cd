// Package evo implements the generational evolution engine: the
// candidate capability, the three pluggable genetic operators, and the
// orchestrator composing them into one generational step. The package
// is domain-agnostic; what a solution means and how its fitness is
// scored are supplied by the caller through Individual and Factory.
package evo

import (
	"errors"

	"github.com/emre-ergun/how-to-fly/internal/model"
)

var (
	ErrEmptyPopulation = errors.New("population must not be empty")
	ErrLengthMismatch  = errors.New("parent chromosomes must have equal length")
)

// Individual is the candidate capability a problem-specific solution
// type satisfies. Fitness must be non-negative for roulette selection
// to be well-defined; that is the caller's responsibility.
type Individual interface {
	Fitness() float64
	Chromosome() model.Chromosome
}

// Factory wraps a chromosome into a new problem-specific individual.
// The individual takes exclusive ownership of the chromosome.
type Factory func(model.Chromosome) Individual
