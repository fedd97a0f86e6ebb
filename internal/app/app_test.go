package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnywolf/pp-final-project/internal/app"
	"github.com/runnywolf/pp-final-project/internal/dataset"
	"github.com/runnywolf/pp-final-project/internal/model"
	"github.com/runnywolf/pp-final-project/internal/solver"
)

func smallestConfig() app.Config {
	return app.Config{
		Scale: dataset.Scale{Products: 1, Factories: 1, Warehouses: 1, Stores: 1},
		Gen:   dataset.DefaultGenConfig(),
	}
}

// TestRun_Scenario drives the full pipeline against a stub adapter holding a
// hand-crafted feasible assignment (the variable arena of the 1×1×1×1
// instance is P, X, Y, U, W, S in that order). The assignment satisfies the
// demand balance exactly: U = demand − Y = 20 − 10.
func TestRun_Scenario(t *testing.T) {
	stub := &solver.Stub{Result: solver.Result{
		Status:      solver.StatusOptimal,
		HasSolution: true,
		Objective:   -9800,
		Gap:         0,
		HasGap:      true,
		Values:      []float64{10, 10, 10, 10, 1, 1},
	}}

	cfg := smallestConfig()
	cfg.Solve = solver.Options{TimeLimit: 30 * time.Second, Focus: solver.FocusOptimality}

	var out strings.Builder
	require.NoError(t, app.Run(context.Background(), cfg, stub, &out, zerolog.Nop()))

	assert.Equal(t, 1, stub.Calls)
	assert.Equal(t, cfg.Solve, stub.LastOptions)
	assert.Equal(t, model.ModeInteger, stub.LastMode)
	assert.Equal(t, 6, stub.LastNumVars)

	got := out.String()
	assert.Contains(t, got, "Status : OPTIMAL\n")
	assert.Contains(t, got, "Open Stores    : [S1]\n")
	assert.Contains(t, got, "Y[A,W1,S1] = 10.0000\n")
	assert.Contains(t, got, "U[A,S1] = 10.0000\n")
}

// TestRun_RelaxFlag: the relax flag reaches the builder.
func TestRun_RelaxFlag(t *testing.T) {
	stub := &solver.Stub{Result: solver.Result{Status: solver.StatusOptimal}}

	cfg := smallestConfig()
	cfg.Relax = true

	var out strings.Builder
	require.NoError(t, app.Run(context.Background(), cfg, stub, &out, zerolog.Nop()))
	assert.Equal(t, model.ModeRelaxed, stub.LastMode)
}

// TestRun_Errors: generator and builder failures abort before the solver;
// solver errors propagate.
func TestRun_Errors(t *testing.T) {
	t.Run("NegativeScale", func(t *testing.T) {
		stub := &solver.Stub{}
		cfg := smallestConfig()
		cfg.Scale.Products = -1
		err := app.Run(context.Background(), cfg, stub, &strings.Builder{}, zerolog.Nop())
		assert.ErrorIs(t, err, dataset.ErrNegativeScale)
		assert.Zero(t, stub.Calls)
	})
	t.Run("EmptySet", func(t *testing.T) {
		stub := &solver.Stub{}
		cfg := smallestConfig()
		cfg.Scale.Warehouses = 0
		err := app.Run(context.Background(), cfg, stub, &strings.Builder{}, zerolog.Nop())
		assert.ErrorIs(t, err, model.ErrEmptySet)
		assert.Zero(t, stub.Calls)
	})
	t.Run("SolverError", func(t *testing.T) {
		boom := errors.New("engine exploded")
		stub := &solver.Stub{Err: boom}
		err := app.Run(context.Background(), smallestConfig(), stub, &strings.Builder{}, zerolog.Nop())
		assert.ErrorIs(t, err, boom)
	})
}
