// Package app wires the pipeline: generate a dataset, build the
// formulation, hand it to a solver adapter, report the outcome. Each stage
// consumes an immutable input and produces a new value; the only blocking
// step is the solver call.
package app

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/runnywolf/pp-final-project/internal/dataset"
	"github.com/runnywolf/pp-final-project/internal/model"
	"github.com/runnywolf/pp-final-project/internal/report"
	"github.com/runnywolf/pp-final-project/internal/solver"
)

// Config is everything one run needs, passed by value.
type Config struct {
	Scale dataset.Scale
	Gen   dataset.GenConfig
	Relax bool
	Solve solver.Options
}

// Run executes generate → build → solve → report, writing the summary to
// out. Solver outcomes (infeasible, time limit, …) are reported, not
// returned as errors.
func Run(ctx context.Context, cfg Config, slv solver.Solver, out io.Writer, log zerolog.Logger) error {
	ds, err := dataset.Generate(cfg.Scale, cfg.Gen)
	if err != nil {
		return err
	}
	log.Debug().
		Int("products", len(ds.Products)).
		Int("factories", len(ds.Factories)).
		Int("warehouses", len(ds.Warehouses)).
		Int("stores", len(ds.Stores)).
		Msg("dataset generated")

	mode := model.ModeInteger
	if cfg.Relax {
		mode = model.ModeRelaxed
	}
	f, err := model.Build(ds, mode)
	if err != nil {
		return err
	}
	log.Info().
		Stringer("mode", mode).
		Int("variables", f.NumVariables()).
		Int("constraints", len(f.Constraints())).
		Msg("model built")

	start := time.Now()
	res, err := slv.Solve(ctx, f, cfg.Solve)
	if err != nil {
		return err
	}
	log.Info().
		Str("status", string(res.Status)).
		Dur("elapsed", time.Since(start)).
		Msg("solve finished")

	return report.Write(out, f, res)
}
