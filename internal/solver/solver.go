// Package solver defines the boundary to the external MIP engine: a
// formulation plus search directives go in, a status and a variable
// assignment come out. The search itself is never inspected. NewHiGHS backs
// the contract with the HiGHS provider; Stub backs it with canned results
// for tests.
package solver

import (
	"context"
	"time"

	"github.com/runnywolf/pp-final-project/internal/model"
)

// Focus is a strategy hint forwarded to the engine. An engine without a
// matching control may ignore it.
type Focus int

const (
	FocusBalanced    Focus = iota // engine default
	FocusFeasibility              // find feasible solutions early
	FocusBound                    // improve the proven bound
	FocusOptimality               // prove optimality
)

// Options are the caller's search directives. A zero TimeLimit means no
// limit imposed here; the engine default applies.
type Options struct {
	TimeLimit time.Duration
	Focus     Focus
}

// Status is the engine's verdict, reported verbatim to the caller. These are
// outcomes, not errors.
type Status string

const (
	StatusOptimal     Status = "OPTIMAL"
	StatusTimeLimit   Status = "TIME_LIMIT"
	StatusInterrupted Status = "INTERRUPTED"
	StatusInfeasible  Status = "INFEASIBLE"
	StatusUnbounded   Status = "UNBOUNDED"
	StatusInfOrUnbd   Status = "INF_OR_UNBD"
)

// Result is the outcome of one solve. Values is indexed by variable index
// and only meaningful when HasSolution is set. Gap is only meaningful when
// HasGap is set; engines that cannot report one leave it unset, which is not
// an error.
type Result struct {
	Status      Status
	HasSolution bool
	Objective   float64
	Gap         float64
	HasGap      bool
	Values      []float64
	RunTime     time.Duration
}

// Value returns the assignment of a variable handle, 0 outside the arena.
func (r Result) Value(v model.Var) float64 {
	if v.Index < 0 || v.Index >= len(r.Values) {
		return 0
	}
	return r.Values[v.Index]
}

// Solver is the external engine boundary. Solve blocks until the engine
// returns; the caller bounds it with Options.TimeLimit. A returned error
// means the engine could not run at all. A solver outcome, including
// infeasibility, is a Result, never an error.
type Solver interface {
	Solve(ctx context.Context, f *model.Formulation, opts Options) (Result, error)
}
