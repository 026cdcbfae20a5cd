package evo

import (
	"fmt"

	"github.com/emre-ergun/how-to-fly/internal/model"
	"github.com/emre-ergun/how-to-fly/internal/random"
)

// Mutator perturbs a chromosome in place without changing its length.
type Mutator interface {
	Name() string
	Mutate(src random.Source, c *model.Chromosome)
}

// GaussianMutator perturbs each gene independently: with probability
// Chance it adds sign * Coefficient * u, where sign is a fair ±1 coin
// and u is uniform in [0, 1). The name is kept for continuity with the
// reference design; the perturbation magnitude is uniform, not
// Gaussian.
type GaussianMutator struct {
	chance      float64
	coefficient float64
}

// NewGaussianMutator validates chance eagerly: it must lie in [0, 1].
// Coefficient may be any real; zero disables perturbation entirely.
func NewGaussianMutator(chance, coefficient float64) (*GaussianMutator, error) {
	if chance < 0 || chance > 1 {
		return nil, fmt.Errorf("mutation chance must be in [0, 1], got %v", chance)
	}
	return &GaussianMutator{chance: chance, coefficient: coefficient}, nil
}

func (*GaussianMutator) Name() string {
	return "gaussian"
}

func (m *GaussianMutator) Chance() float64 {
	return m.chance
}

func (m *GaussianMutator) Coefficient() float64 {
	return m.coefficient
}

func (m *GaussianMutator) Mutate(src random.Source, c *model.Chromosome) {
	genes := c.Genes()
	for i := range genes {
		sign := 1.0
		if src.Bool(0.5) {
			sign = -1.0
		}
		if src.Bool(m.chance) {
			genes[i] += sign * m.coefficient * src.Float64()
		}
	}
}
