package solver

import (
	"context"

	"github.com/runnywolf/pp-final-project/internal/model"
)

// Stub is a canned adapter for tests: it returns a fixed Result (or error)
// and records what it was asked to solve, so scenario tests can hand-craft
// assignments without a real engine.
type Stub struct {
	Result Result
	Err    error

	// Recorded by Solve.
	Calls       int
	LastOptions Options
	LastMode    model.Mode
	LastNumVars int
}

// Solve records the request and returns the canned result. Values shorter
// than the variable arena are zero-padded.
func (s *Stub) Solve(_ context.Context, f *model.Formulation, opts Options) (Result, error) {
	s.Calls++
	s.LastOptions = opts
	s.LastMode = f.Mode()
	s.LastNumVars = f.NumVariables()
	if s.Err != nil {
		return Result{}, s.Err
	}
	res := s.Result
	if res.HasSolution && len(res.Values) < f.NumVariables() {
		padded := make([]float64, f.NumVariables())
		copy(padded, res.Values)
		res.Values = padded
	}
	return res, nil
}
