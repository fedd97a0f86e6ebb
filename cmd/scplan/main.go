// scplan generates a synthetic three-echelon supply-chain instance,
// formulates the profit-maximization MIP and solves it with HiGHS.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/runnywolf/pp-final-project/internal/app"
	"github.com/runnywolf/pp-final-project/internal/dataset"
	"github.com/runnywolf/pp-final-project/internal/solver"
)

func main() {
	var (
		products   = flag.Int("products", 2, "number of products")
		factories  = flag.Int("factories", 2, "number of factories")
		warehouses = flag.Int("warehouses", 1, "number of warehouses")
		stores     = flag.Int("stores", 2, "number of stores")
		relax      = flag.Bool("relax", false, "solve the continuous relaxation instead of the integer model")
		timeLimit  = flag.Float64("timelimit", 0, "solver wall-clock limit in seconds (0 = engine default)")
		focus      = flag.Int("focus", 0, "search emphasis: 0 balanced, 1 feasibility, 2 bound, 3 optimality")
		params     = flag.String("params", "", "TOML file overriding generator hyper-parameters")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if !*verbose {
		log = log.Level(zerolog.InfoLevel)
	}

	if *focus < int(solver.FocusBalanced) || *focus > int(solver.FocusOptimality) {
		log.Fatal().Int("focus", *focus).Msg("focus must be in 0..3")
	}

	gen := dataset.DefaultGenConfig()
	if *params != "" {
		var err error
		if gen, err = dataset.LoadGenConfig(*params); err != nil {
			log.Fatal().Err(err).Msg("load generator overrides")
		}
	}

	cfg := app.Config{
		Scale: dataset.Scale{
			Products:   *products,
			Factories:  *factories,
			Warehouses: *warehouses,
			Stores:     *stores,
		},
		Gen:   gen,
		Relax: *relax,
		Solve: solver.Options{
			TimeLimit: time.Duration(*timeLimit * float64(time.Second)),
			Focus:     solver.Focus(*focus),
		},
	}

	if err := app.Run(context.Background(), cfg, solver.NewHiGHS(), os.Stdout, log); err != nil {
		log.Fatal().Err(err).Msg("run failed")
	}
}
