package problem

import (
	"math"

	"github.com/emre-ergun/how-to-fly/internal/evo"
	"github.com/emre-ergun/how-to-fly/internal/model"
	"github.com/emre-ergun/how-to-fly/internal/random"
)

const targetHalfRange = 10

// TargetProblem scores candidates by their distance to a fixed gene
// vector. Fitness is 1/(1+sum(|x_i - t_i|)), so a perfect match scores
// 1. Chromosomes shorter or longer than the target are scored over the
// overlapping prefix with one unit of penalty per missing or extra
// gene.
type TargetProblem struct {
	target []float64
}

func NewTargetProblem(target []float64) TargetProblem {
	owned := make([]float64, len(target))
	copy(owned, target)
	return TargetProblem{target: owned}
}

func (TargetProblem) Name() string {
	return "target"
}

func (TargetProblem) Description() string {
	return "match a fixed gene vector, fitness 1/(1+sum(|x-t|))"
}

func (p TargetProblem) DefaultGenomeLen() int {
	return len(p.target)
}

func (p TargetProblem) New(c model.Chromosome) evo.Individual {
	return targetIndividual{chromosome: c, target: p.target}
}

func (p TargetProblem) Random(src random.Source, n int) evo.Individual {
	return p.New(model.NewChromosome(uniformGenes(src, n, targetHalfRange)))
}

type targetIndividual struct {
	chromosome model.Chromosome
	target     []float64
}

func (t targetIndividual) Fitness() float64 {
	overlap := t.chromosome.Len()
	if len(t.target) < overlap {
		overlap = len(t.target)
	}

	var distance float64
	for i := 0; i < overlap; i++ {
		distance += math.Abs(t.chromosome.At(i) - t.target[i])
	}
	if diff := t.chromosome.Len() - len(t.target); diff > 0 {
		distance += float64(diff)
	} else {
		distance += float64(-diff)
	}
	return 1 / (1 + distance)
}

func (t targetIndividual) Chromosome() model.Chromosome {
	return t.chromosome
}
