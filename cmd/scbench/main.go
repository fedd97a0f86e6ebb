// scbench solves the same generated instance repeatedly and reports the
// average solve wall time, for comparing scales and hyper-parameter sets.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/runnywolf/pp-final-project/internal/dataset"
	"github.com/runnywolf/pp-final-project/internal/model"
	"github.com/runnywolf/pp-final-project/internal/solver"
)

func main() {
	var (
		products   = flag.Int("products", 3, "number of products")
		factories  = flag.Int("factories", 3, "number of factories")
		warehouses = flag.Int("warehouses", 3, "number of warehouses")
		stores     = flag.Int("stores", 3, "number of stores")
		runs       = flag.Int("n", 10, "number of solves")
		timeLimit  = flag.Float64("timelimit", 0, "per-solve wall-clock limit in seconds (0 = engine default)")
	)
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	ds, err := dataset.Generate(dataset.Scale{
		Products:   *products,
		Factories:  *factories,
		Warehouses: *warehouses,
		Stores:     *stores,
	}, dataset.DefaultGenConfig())
	if err != nil {
		log.Fatal().Err(err).Msg("generate")
	}
	f, err := model.Build(ds, model.ModeInteger)
	if err != nil {
		log.Fatal().Err(err).Msg("build")
	}
	log.Info().
		Int("variables", f.NumVariables()).
		Int("constraints", len(f.Constraints())).
		Msg("model built")

	opts := solver.Options{TimeLimit: time.Duration(*timeLimit * float64(time.Second))}
	engine := solver.NewHiGHS()

	var total time.Duration
	for run := 1; run <= *runs; run++ {
		start := time.Now()
		res, err := engine.Solve(context.Background(), f, opts)
		if err != nil {
			log.Fatal().Err(err).Int("run", run).Msg("solve")
		}
		elapsed := time.Since(start)
		total += elapsed
		log.Info().
			Int("run", run).
			Str("status", string(res.Status)).
			Dur("elapsed", elapsed).
			Msg("solved")
	}

	avg := total / time.Duration(*runs)
	fmt.Printf("scale (%d,%d,%d,%d): %d solves, avg %.3f ms/solve\n",
		*products, *factories, *warehouses, *stores, *runs,
		float64(avg.Microseconds())/1000.0)
}
