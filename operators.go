package chrocalc

import (
	"fmt"
	"math/rand"
)

func validateRate(name string, rate float64) error {
	if rate < 0 || rate > 1 {
		return fmt.Errorf("%w: %s %v is outside [0, 1]", ErrInvalidArgument, name, rate)
	}
	return nil
}

// Roulette draws one chromosome from a non-empty pool, weighted by raw
// fitness: a uniform value in [0, Σfitness) is drawn and the first member
// whose running total reaches it wins. When every fitness is zero the first
// member is returned deterministically.
//
// Weights are the raw distances to the target, so members further from the
// target occupy more of the wheel.
func Roulette(pool Population, rng *rand.Rand) *Chromosome {
	total := 0.0
	for _, member := range pool {
		total += member.fitness
	}

	pick := rng.Float64() * total
	spinner := 0.0
	for _, member := range pool {
		spinner += member.fitness
		if spinner >= pick {
			return member.c
		}
	}

	// Accumulated rounding can leave the spinner just short of the pick
	return pool[len(pool)-1].c
}

// Crossover produces a child from two equal-length parents. With probability
// rate, a point is chosen uniformly in [1, len-1] and the child takes c1's
// genes before the point and c2's genes from it onward; otherwise the child
// is a copy of c1. Neither parent is modified.
func Crossover(c1, c2 *Chromosome, rate float64, rng *rand.Rand) (*Chromosome, error) {
	if err := validateRate("crossover rate", rate); err != nil {
		return nil, err
	}
	if len(c1.genes) != len(c2.genes) {
		return nil, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(c1.genes), len(c2.genes))
	}
	if len(c1.genes) < 2 {
		return nil, fmt.Errorf("%w: parents of length %d admit no crossover point",
			ErrInvalidArgument, len(c1.genes))
	}

	if rng.Float64() > rate {
		return c1.Copy(), nil
	}

	point := 1 + rng.Intn(len(c1.genes)-1)
	genes := make([]Gene, len(c1.genes))
	copy(genes, c1.genes[:point])
	copy(genes[point:], c2.genes[point:])
	return &Chromosome{genes: genes}, nil
}

// Mutate produces a copy of the chromosome where each gene, independently
// with probability rate, is replaced by a freshly sampled assigned code
// (possibly the same one). The input is never modified.
func Mutate(c *Chromosome, rate float64, rng *rand.Rand) (*Chromosome, error) {
	if err := validateRate("mutation rate", rate); err != nil {
		return nil, err
	}

	mutated := c.Copy()
	for i := range mutated.genes {
		if rng.Float64() <= rate {
			mutated.genes[i] = DefinedGenes[rng.Intn(len(DefinedGenes))]
		}
	}
	return mutated, nil
}
