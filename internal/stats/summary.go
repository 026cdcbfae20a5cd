// Package stats computes per-generation fitness summaries for the
// experiment layer. The engine itself never consumes these.
package stats

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/emre-ergun/how-to-fly/internal/evo"
)

// Summary aggregates the fitness distribution of one generation.
type Summary struct {
	Generation int
	Best       float64
	Worst      float64
	Mean       float64
	Median     float64
	StdDev     float64
}

// Summarize computes the fitness summary of a population. The
// population is read only; it fails on an empty population.
func Summarize(generation int, population []evo.Individual) (Summary, error) {
	if len(population) == 0 {
		return Summary{}, errors.New("population must not be empty")
	}

	fitnesses := make([]float64, len(population))
	for i, individual := range population {
		fitnesses[i] = individual.Fitness()
	}
	sort.Float64s(fitnesses)

	summary := Summary{
		Generation: generation,
		Worst:      fitnesses[0],
		Best:       fitnesses[len(fitnesses)-1],
		Mean:       stat.Mean(fitnesses, nil),
		Median:     stat.Quantile(0.5, stat.Empirical, fitnesses, nil),
	}
	if len(fitnesses) > 1 {
		summary.StdDev = stat.StdDev(fitnesses, nil)
	}
	return summary, nil
}
