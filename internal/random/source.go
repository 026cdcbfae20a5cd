// Package random defines the random source capability threaded through
// every stochastic operation in the engine. It is the sole source of
// non-determinism: the same seed and the same sequence of draws always
// produce the same results.
package random

import (
	"errors"
	"math/rand"
)

var ErrNonPositiveWeights = errors.New("weight sum must be positive")

// Source supplies the three kinds of draws the genetic operators need.
// Implementations must be deterministic per seed.
type Source interface {
	// Float64 draws uniformly from [0, 1).
	Float64() float64
	// Bool is true with the given probability. A chance of 0.5 is a
	// fair coin.
	Bool(chance float64) bool
	// WeightedIndex draws an index with probability proportional to
	// its weight. It fails when weights is empty or the weight sum is
	// not positive.
	WeightedIndex(weights []float64) (int, error)
}

// Rand adapts math/rand to the Source contract. It is the pinned
// implementation for regression baselines: output values recorded
// against it are not portable to other Source implementations.
type Rand struct {
	rng *rand.Rand
}

func New(seed int64) *Rand {
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

// FromRand wraps an existing generator without reseeding it.
func FromRand(rng *rand.Rand) *Rand {
	return &Rand{rng: rng}
}

func (r *Rand) Float64() float64 {
	return r.rng.Float64()
}

func (r *Rand) Bool(chance float64) bool {
	return r.rng.Float64() < chance
}

func (r *Rand) WeightedIndex(weights []float64) (int, error) {
	if len(weights) == 0 {
		return 0, errors.New("weights are required")
	}

	var total float64
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return 0, ErrNonPositiveWeights
	}

	target := r.rng.Float64() * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		target -= w
		if target < 0 {
			return i, nil
		}
	}
	// Float64 rounding can leave target at exactly zero after the
	// last positive weight; fall back to it.
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i, nil
		}
	}
	return 0, ErrNonPositiveWeights
}
