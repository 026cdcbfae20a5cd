package evo

import (
	"github.com/emre-ergun/how-to-fly/internal/model"
)

// weightedIndividual is the minimal candidate used across the package
// tests: fitness is supplied directly instead of being derived from
// the genes.
type weightedIndividual struct {
	fitness    float64
	chromosome model.Chromosome
}

func (w weightedIndividual) Fitness() float64 {
	return w.fitness
}

func (w weightedIndividual) Chromosome() model.Chromosome {
	return w.chromosome
}

func newWeighted(fitness float64, genes ...float64) weightedIndividual {
	return weightedIndividual{fitness: fitness, chromosome: model.NewChromosome(genes)}
}

// sumIndividual scores a chromosome by the sum of its genes, which
// keeps fitness non-negative for the populations used in tests.
type sumIndividual struct {
	chromosome model.Chromosome
}

func newSumIndividual(c model.Chromosome) Individual {
	return sumIndividual{chromosome: c}
}

func (s sumIndividual) Fitness() float64 {
	var total float64
	for _, gene := range s.chromosome.Genes() {
		total += gene
	}
	if total < 0 {
		return 0
	}
	return total
}

func (s sumIndividual) Chromosome() model.Chromosome {
	return s.chromosome
}

// absSumIndividual scores a chromosome by the sum of gene magnitudes,
// so a population's weight sum only vanishes when every gene of every
// individual is exactly zero.
type absSumIndividual struct {
	chromosome model.Chromosome
}

func newAbsSumIndividual(c model.Chromosome) Individual {
	return absSumIndividual{chromosome: c}
}

func (s absSumIndividual) Fitness() float64 {
	var total float64
	for _, gene := range s.chromosome.Genes() {
		if gene < 0 {
			total -= gene
		} else {
			total += gene
		}
	}
	return total
}

func (s absSumIndividual) Chromosome() model.Chromosome {
	return s.chromosome
}
