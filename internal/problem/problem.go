// Package problem supplies concrete candidate capabilities for the
// engine: each problem defines what a chromosome means and how its
// fitness is scored. Fitness is always non-negative, which roulette
// selection requires.
package problem

import (
	"github.com/emre-ergun/how-to-fly/internal/evo"
	"github.com/emre-ergun/how-to-fly/internal/model"
	"github.com/emre-ergun/how-to-fly/internal/random"
)

type Problem interface {
	Name() string
	Description() string
	// DefaultGenomeLen is used when a run config leaves the genome
	// length unset.
	DefaultGenomeLen() int
	// New wraps a chromosome into this problem's individual. It is
	// the evo.Factory for the problem.
	New(c model.Chromosome) evo.Individual
	// Random builds an individual with n genes drawn from the
	// problem's initialisation range.
	Random(src random.Source, n int) evo.Individual
}

// uniformGenes draws n genes uniformly from [-halfRange, halfRange).
func uniformGenes(src random.Source, n int, halfRange float64) []float64 {
	genes := make([]float64, n)
	for i := range genes {
		genes[i] = (src.Float64()*2 - 1) * halfRange
	}
	return genes
}
