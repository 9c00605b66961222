package chrocalc

import (
	"fmt"
	"math/rand"

	lru "github.com/hashicorp/golang-lru"
)

// SimulationParams configures the generational loop.
type SimulationParams struct {
	// Number of genes each chromosome will have. Must be at least 3.
	ChromosomeLength int

	// Value the evolved expression must equal exactly.
	Target float64

	// Per-generation subgroup sizes: fresh random members, crossover
	// offspring, and mutated survivors. Each may be zero, but their sum
	// must be positive.
	NewBloodCount  int
	CrossoverCount int
	PreserveCount  int

	// Probability that crossover occurs instead of copying the first parent.
	CrossoverRate float64

	// Per-gene mutation probability.
	MutationRate float64

	// MaxResamples bounds each discard-and-resample loop per subgroup.
	// Exhausting it surfaces ErrInfeasibleConfig instead of spinning.
	MaxResamples int

	// FitnessCacheSize is the capacity of the LRU keyed by gene string.
	// Crossover misses and low mutation rates reproduce parent genomes
	// verbatim, so repeated scoring is common.
	FitnessCacheSize int
}

// DefaultSimulationParams mirrors the stock configuration of the original
// calculator: target 1111 over 50-gene chromosomes.
func DefaultSimulationParams() *SimulationParams {
	return &SimulationParams{
		ChromosomeLength: 50,
		Target:           1111,

		NewBloodCount:  10,
		CrossoverCount: 8,
		PreserveCount:  8,

		CrossoverRate: 0.7,
		MutationRate:  0.007,

		MaxResamples:     100000,
		FitnessCacheSize: 4096,
	}
}

func (p *SimulationParams) Validate() error {
	if p.ChromosomeLength < MinChromosomeLength {
		return fmt.Errorf("%w: chromosome length %d is below the minimum %d",
			ErrInvalidArgument, p.ChromosomeLength, MinChromosomeLength)
	}
	if p.NewBloodCount < 0 || p.CrossoverCount < 0 || p.PreserveCount < 0 {
		return fmt.Errorf("%w: subgroup counts must be non-negative", ErrInvalidArgument)
	}
	if p.NewBloodCount+p.CrossoverCount+p.PreserveCount == 0 {
		return fmt.Errorf("%w: subgroup counts sum to zero", ErrInvalidArgument)
	}
	if err := validateRate("crossover rate", p.CrossoverRate); err != nil {
		return err
	}
	if err := validateRate("mutation rate", p.MutationRate); err != nil {
		return err
	}
	if p.MaxResamples < 1 {
		return fmt.Errorf("%w: max resamples %d must be positive", ErrInvalidArgument, p.MaxResamples)
	}
	if p.FitnessCacheSize < 1 {
		return fmt.Errorf("%w: fitness cache size %d must be positive", ErrInvalidArgument, p.FitnessCacheSize)
	}
	return nil
}

// PopulationMember pairs a chromosome with its fitness score. Members only
// ever hold valid, non-negative scores — invalid candidates are discarded
// before a member is formed.
type PopulationMember struct {
	c       *Chromosome
	fitness float64
}

func (member *PopulationMember) Chromosome() *Chromosome {
	return member.c
}

func (member *PopulationMember) Fitness() float64 {
	return member.fitness
}

type Population []*PopulationMember

// Simulation drives the generational loop: each generation is built from
// fresh random members, crossover offspring, and mutated survivors, then
// scanned for an exact match.
type Simulation struct {
	params SimulationParams
	rng    *rand.Rand

	generation uint
	population Population
	answer     *PopulationMember

	fitnessCache *lru.Cache
}

type cachedScore struct {
	fitness float64
	err     error
}

// NewSimulation validates params and prepares a simulation using the given
// random source. The source is used for every random draw, so a fixed seed
// makes runs reproducible.
func NewSimulation(params *SimulationParams, rng *rand.Rand) (*Simulation, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	cache, err := lru.New(params.FitnessCacheSize)
	if err != nil {
		return nil, err
	}

	return &Simulation{
		params:       *params,
		rng:          rng,
		fitnessCache: cache,
	}, nil
}

func (sim *Simulation) Generation() uint {
	return sim.generation
}

func (sim *Simulation) Population() Population {
	return sim.population
}

// Answer returns the exact-match member once Step has reported success,
// nil before that.
func (sim *Simulation) Answer() *PopulationMember {
	return sim.answer
}

// Best returns the current population's member closest to the target.
func (sim *Simulation) Best() *PopulationMember {
	var best *PopulationMember
	for _, member := range sim.population {
		if best == nil || member.fitness < best.fitness {
			best = member
		}
	}
	return best
}

// score decodes and evaluates a chromosome against the target, consulting
// the fitness cache first.
func (sim *Simulation) score(c *Chromosome) (float64, error) {
	key := c.String()
	if cached, ok := sim.fitnessCache.Get(key); ok {
		score := cached.(cachedScore)
		return score.fitness, score.err
	}

	fitness, err := Fitness(c.Decode().Tokens, sim.params.Target)
	sim.fitnessCache.Add(key, cachedScore{fitness: fitness, err: err})
	return fitness, err
}

// fill appends count valid members produced by produce, discarding and
// resampling candidates whose decode is empty or whose evaluation fails.
// A produce error is fatal; exhausting the attempt budget returns
// ErrInfeasibleConfig.
func (sim *Simulation) fill(pool Population, count int, produce func() (*Chromosome, error)) (Population, error) {
	added := 0
	for attempts := 0; added < count; attempts++ {
		if attempts >= sim.params.MaxResamples {
			return nil, fmt.Errorf("%w: %d resamples yielded %d of %d members",
				ErrInfeasibleConfig, attempts, added, count)
		}

		c, err := produce()
		if err != nil {
			return nil, err
		}

		fitness, err := sim.score(c)
		if err != nil {
			// Operators-only decode, or division by zero — resample
			continue
		}

		pool = append(pool, &PopulationMember{c: c, fitness: fitness})
		added++
	}
	return pool, nil
}

// Step builds one generation and reports whether it contains an exact match.
// The previous population serves as the selection pool; on the first
// generation the freshly generated new-blood subgroup serves instead.
func (sim *Simulation) Step() (bool, error) {
	params := &sim.params
	next := make(Population, 0, params.NewBloodCount+params.CrossoverCount+params.PreserveCount)

	next, err := sim.fill(next, params.NewBloodCount, func() (*Chromosome, error) {
		return RandomChromosome(params.ChromosomeLength, sim.rng)
	})
	if err != nil {
		return false, err
	}

	pool := sim.population
	if len(pool) == 0 {
		pool = append(Population(nil), next...)
	}
	if len(pool) == 0 && params.CrossoverCount+params.PreserveCount > 0 {
		return false, fmt.Errorf("%w: empty selection pool", ErrInfeasibleConfig)
	}

	next, err = sim.fill(next, params.CrossoverCount, func() (*Chromosome, error) {
		c1 := Roulette(pool, sim.rng)
		c2 := Roulette(pool, sim.rng)
		return Crossover(c1, c2, params.CrossoverRate, sim.rng)
	})
	if err != nil {
		return false, err
	}

	next, err = sim.fill(next, params.PreserveCount, func() (*Chromosome, error) {
		return Mutate(Roulette(pool, sim.rng), params.MutationRate, sim.rng)
	})
	if err != nil {
		return false, err
	}

	sim.population = next
	sim.generation++

	for _, member := range next {
		if member.fitness == 0 {
			sim.answer = member
			return true, nil
		}
	}
	return false, nil
}

// Solve steps generations until an exact match appears, returning the winning
// member and the generation count. Termination is probabilistic: under a
// degenerate configuration whose resample loops stay feasible, Solve may run
// unboundedly.
func (sim *Simulation) Solve() (*PopulationMember, uint, error) {
	for {
		solved, err := sim.Step()
		if err != nil {
			return nil, sim.generation, err
		}
		if solved {
			return sim.answer, sim.generation, nil
		}
	}
}
