package evo

import (
	"errors"
	"math"
	"testing"

	"github.com/emre-ergun/how-to-fly/internal/model"
	"github.com/emre-ergun/how-to-fly/internal/random"
)

func TestUniformCrossoverRejectsLengthMismatch(t *testing.T) {
	crossover := UniformCrossover{}
	a := model.NewChromosome([]float64{1, 2, 3})
	b := model.NewChromosome([]float64{1, 2})

	if _, err := crossover.Cross(random.New(1), a, b); !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestUniformCrossoverChildGenesComeFromParents(t *testing.T) {
	crossover := UniformCrossover{}
	src := random.New(77)

	a := model.NewChromosome([]float64{1, 2, 3, 4, 5, 6, 7, 8})
	b := model.NewChromosome([]float64{-1, -2, -3, -4, -5, -6, -7, -8})

	for trial := 0; trial < 100; trial++ {
		child, err := crossover.Cross(src, a, b)
		if err != nil {
			t.Fatalf("cross: %v", err)
		}
		if child.Len() != a.Len() {
			t.Fatalf("child length %d, parents %d", child.Len(), a.Len())
		}
		for i := 0; i < child.Len(); i++ {
			if child.At(i) != a.At(i) && child.At(i) != b.At(i) {
				t.Fatalf("gene %d value %v is neither parent allele", i, child.At(i))
			}
		}
	}
}

func TestUniformCrossoverCoinIsFair(t *testing.T) {
	crossover := UniformCrossover{}
	src := random.New(321)

	a := model.NewChromosome([]float64{1})
	b := model.NewChromosome([]float64{0})

	fromA := 0
	const trials = 10000
	for i := 0; i < trials; i++ {
		child, err := crossover.Cross(src, a, b)
		if err != nil {
			t.Fatalf("cross: %v", err)
		}
		if child.At(0) == 1 {
			fromA++
		}
	}

	share := float64(fromA) / trials
	if math.Abs(share-0.5) > 0.02 {
		t.Fatalf("allele taken from parent a with frequency %.4f, expected 0.5", share)
	}
}

func TestUniformCrossoverDoesNotMutateParents(t *testing.T) {
	crossover := UniformCrossover{}
	src := random.New(4)

	a := model.NewChromosome([]float64{1, 2, 3})
	b := model.NewChromosome([]float64{4, 5, 6})

	child, err := crossover.Cross(src, a, b)
	if err != nil {
		t.Fatalf("cross: %v", err)
	}
	child.Genes()[0] = 999

	if a.At(0) != 1 || b.At(0) != 4 {
		t.Fatal("crossover shared storage with a parent")
	}
}
