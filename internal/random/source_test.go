package random

import (
	"errors"
	"testing"
)

func TestRandIsDeterministicPerSeed(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("draw %d diverged between equally seeded sources", i)
		}
	}
}

func TestBoolRespectsChanceExtremes(t *testing.T) {
	src := New(7)

	for i := 0; i < 50; i++ {
		if src.Bool(0) {
			t.Fatal("chance 0 must never be true")
		}
		if !src.Bool(1) {
			t.Fatal("chance 1 must always be true")
		}
	}
}

func TestBoolFairCoinIsRoughlyBalanced(t *testing.T) {
	src := New(11)
	heads := 0
	const trials = 10000
	for i := 0; i < trials; i++ {
		if src.Bool(0.5) {
			heads++
		}
	}
	if heads < 4700 || heads > 5300 {
		t.Fatalf("fair coin produced %d heads out of %d", heads, trials)
	}
}

func TestWeightedIndexRejectsBadWeights(t *testing.T) {
	src := New(1)

	if _, err := src.WeightedIndex(nil); err == nil {
		t.Fatal("expected error for empty weights")
	}
	if _, err := src.WeightedIndex([]float64{0, 0}); !errors.Is(err, ErrNonPositiveWeights) {
		t.Fatalf("expected ErrNonPositiveWeights, got %v", err)
	}
	if _, err := src.WeightedIndex([]float64{-1, -2}); !errors.Is(err, ErrNonPositiveWeights) {
		t.Fatalf("expected ErrNonPositiveWeights, got %v", err)
	}
}

func TestWeightedIndexSkipsZeroWeights(t *testing.T) {
	src := New(3)

	for i := 0; i < 200; i++ {
		idx, err := src.WeightedIndex([]float64{0, 5, 0})
		if err != nil {
			t.Fatalf("weighted index: %v", err)
		}
		if idx != 1 {
			t.Fatalf("zero-weight index %d was drawn", idx)
		}
	}
}

func TestWeightedIndexTracksProportions(t *testing.T) {
	src := New(1234)
	weights := []float64{1, 2, 1}
	counts := make([]int, len(weights))
	const trials = 4000

	for i := 0; i < trials; i++ {
		idx, err := src.WeightedIndex(weights)
		if err != nil {
			t.Fatalf("weighted index: %v", err)
		}
		counts[idx]++
	}

	// Expected shares 25% / 50% / 25%.
	if counts[1] < trials*2/5 || counts[1] > trials*3/5 {
		t.Fatalf("middle weight drawn %d times out of %d", counts[1], trials)
	}
	if counts[0] == 0 || counts[2] == 0 {
		t.Fatalf("positive weights never drawn: %v", counts)
	}
}
