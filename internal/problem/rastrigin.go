package problem

import (
	"math"

	"github.com/emre-ergun/how-to-fly/internal/evo"
	"github.com/emre-ergun/how-to-fly/internal/model"
	"github.com/emre-ergun/how-to-fly/internal/random"
)

const rastriginHalfRange = 5.12

// RastriginProblem scores candidates against the Rastrigin function, a
// heavily multimodal benchmark. The function value is non-negative with
// its global minimum 0 at the origin; fitness is 1/(1+f(x)).
type RastriginProblem struct{}

func (RastriginProblem) Name() string {
	return "rastrigin"
}

func (RastriginProblem) Description() string {
	return "minimize the Rastrigin function, fitness 1/(1+f(x))"
}

func (RastriginProblem) DefaultGenomeLen() int {
	return 8
}

func (p RastriginProblem) New(c model.Chromosome) evo.Individual {
	return rastriginIndividual{chromosome: c}
}

func (p RastriginProblem) Random(src random.Source, n int) evo.Individual {
	return p.New(model.NewChromosome(uniformGenes(src, n, rastriginHalfRange)))
}

type rastriginIndividual struct {
	chromosome model.Chromosome
}

func (r rastriginIndividual) Fitness() float64 {
	value := 10 * float64(r.chromosome.Len())
	for _, gene := range r.chromosome.Genes() {
		value += gene*gene - 10*math.Cos(2*math.Pi*gene)
	}
	if value < 0 {
		// Floating-point rounding near the optimum.
		value = 0
	}
	return 1 / (1 + value)
}

func (r rastriginIndividual) Chromosome() model.Chromosome {
	return r.chromosome
}
