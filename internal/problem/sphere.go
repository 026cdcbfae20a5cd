package problem

import (
	"github.com/emre-ergun/how-to-fly/internal/evo"
	"github.com/emre-ergun/how-to-fly/internal/model"
	"github.com/emre-ergun/how-to-fly/internal/random"
)

const sphereHalfRange = 5.12

// SphereProblem scores candidates against the sphere function. The
// optimum is the origin; fitness 1/(1+sum(x^2)) maps it to 1 and decays
// toward 0 as genes move away.
type SphereProblem struct{}

func (SphereProblem) Name() string {
	return "sphere"
}

func (SphereProblem) Description() string {
	return "minimize sum of squared genes, fitness 1/(1+sum(x^2))"
}

func (SphereProblem) DefaultGenomeLen() int {
	return 8
}

func (p SphereProblem) New(c model.Chromosome) evo.Individual {
	return sphereIndividual{chromosome: c}
}

func (p SphereProblem) Random(src random.Source, n int) evo.Individual {
	return p.New(model.NewChromosome(uniformGenes(src, n, sphereHalfRange)))
}

type sphereIndividual struct {
	chromosome model.Chromosome
}

func (s sphereIndividual) Fitness() float64 {
	var sum float64
	for _, gene := range s.chromosome.Genes() {
		sum += gene * gene
	}
	return 1 / (1 + sum)
}

func (s sphereIndividual) Chromosome() model.Chromosome {
	return s.chromosome
}
