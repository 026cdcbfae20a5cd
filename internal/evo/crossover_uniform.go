package evo

import (
	"fmt"

	"github.com/emre-ergun/how-to-fly/internal/model"
	"github.com/emre-ergun/how-to-fly/internal/random"
)

// Crossover combines two parent chromosomes of equal length into one
// child chromosome.
type Crossover interface {
	Name() string
	Cross(src random.Source, a, b model.Chromosome) (model.Chromosome, error)
}

// UniformCrossover flips an exactly fair coin (0.5/0.5) per gene
// position, independently, taking the allele from parent a on heads
// and from parent b on tails. Every child gene is one of the two
// corresponding parent genes; no new values are introduced.
type UniformCrossover struct{}

func (UniformCrossover) Name() string {
	return "uniform"
}

func (UniformCrossover) Cross(src random.Source, a, b model.Chromosome) (model.Chromosome, error) {
	if src == nil {
		return model.Chromosome{}, fmt.Errorf("random source is required")
	}
	if a.Len() != b.Len() {
		return model.Chromosome{}, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, a.Len(), b.Len())
	}

	genes := make([]float64, a.Len())
	for i := range genes {
		if src.Bool(0.5) {
			genes[i] = a.At(i)
		} else {
			genes[i] = b.At(i)
		}
	}
	return model.NewChromosome(genes), nil
}
