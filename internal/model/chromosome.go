package model

import "fmt"

// Chromosome is a fixed-length ordered sequence of real-valued genes.
// The gene slice is owned exclusively by the chromosome: construction
// and Clone always copy, so no two chromosomes share storage.
type Chromosome struct {
	genes []float64
}

// NewChromosome builds a chromosome from a flat gene sequence. The
// input slice is copied; later writes to it do not affect the result.
func NewChromosome(genes []float64) Chromosome {
	owned := make([]float64, len(genes))
	copy(owned, genes)
	return Chromosome{genes: owned}
}

func (c Chromosome) Len() int {
	return len(c.genes)
}

func (c Chromosome) IsEmpty() bool {
	return len(c.genes) == 0
}

// At returns the gene at index i. It panics when i is out of range,
// matching slice indexing semantics.
func (c Chromosome) At(i int) float64 {
	if i < 0 || i >= len(c.genes) {
		panic(fmt.Sprintf("model: gene index out of range: %d with length %d", i, len(c.genes)))
	}
	return c.genes[i]
}

// Genes returns a mutable view over the owned gene slice. Writing
// through the view is the only way a chromosome changes after
// construction; mutation operators use it to perturb genes in place.
func (c Chromosome) Genes() []float64 {
	return c.genes
}

// ToSlice converts the chromosome back to a flat gene sequence. The
// returned slice is a copy.
func (c Chromosome) ToSlice() []float64 {
	out := make([]float64, len(c.genes))
	copy(out, c.genes)
	return out
}

// Clone returns a deep copy with no shared storage.
func (c Chromosome) Clone() Chromosome {
	return NewChromosome(c.genes)
}
