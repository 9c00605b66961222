package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"chrocalc"
)

func main() {
	params := chrocalc.DefaultSimulationParams()

	flag.Float64Var(&params.Target, "target", params.Target, "value the evolved expression must equal")
	flag.IntVar(&params.ChromosomeLength, "length", params.ChromosomeLength, "genes per chromosome")
	flag.IntVar(&params.NewBloodCount, "new-blood", params.NewBloodCount, "fresh random members per generation")
	flag.IntVar(&params.CrossoverCount, "crossovers", params.CrossoverCount, "crossover offspring per generation")
	flag.IntVar(&params.PreserveCount, "preserve", params.PreserveCount, "mutated survivors per generation")
	flag.Float64Var(&params.CrossoverRate, "crossover-rate", params.CrossoverRate, "probability of crossover vs. copying the first parent")
	flag.Float64Var(&params.MutationRate, "mutation-rate", params.MutationRate, "per-gene mutation probability")
	seed := flag.Int64("seed", 0, "random seed (0 seeds from the clock)")
	reportEvery := flag.Uint("report-every", 100, "print progress every N generations")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	sim, err := chrocalc.NewSimulation(params, rng)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("Solving for: %g (seed %d)\n\n", params.Target, *seed)
	startedAt := time.Now()

	for {
		solved, err := sim.Step()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if solved {
			break
		}

		if *reportEvery > 0 && sim.Generation()%*reportEvery == 0 {
			best := sim.Best()
			fmt.Printf("Generation %d — best so far: %s (distance %g)\n",
				sim.Generation(), best.Chromosome().Decode().Expression, best.Fitness())
		}
	}
	elapsed := time.Since(startedAt)

	answer := sim.Answer()
	decoded := answer.Chromosome().Decode()
	fmt.Printf("\nGeneration %d — SOLVED\n", sim.Generation())
	fmt.Printf("%s\n  %s\n    = %g\n\n", answer.Chromosome(), decoded.Expression, params.Target)

	if value, err := chrocalc.VerifyExpression(decoded.Expression); err != nil || value != params.Target {
		fmt.Fprintf(os.Stderr, "verification failed: %q evaluated to %g (%v)\n", decoded.Expression, value, err)
		os.Exit(1)
	}

	fmt.Printf("Elapsed time: %s\n", elapsed)
}
