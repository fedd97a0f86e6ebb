package solver

import (
	"context"
	"fmt"
	"math"

	"github.com/nextmv-io/sdk/mip"

	"github.com/runnywolf/pp-final-project/internal/model"
)

// integerHorizon caps integer variables that the formulation leaves
// unbounded above; the mip API wants finite integer bounds.
const integerHorizon = math.MaxInt32

// HiGHS solves formulations with the HiGHS provider of the nextmv mip
// package. The zero value is ready to use.
type HiGHS struct{}

// NewHiGHS returns a HiGHS-backed adapter.
func NewHiGHS() *HiGHS { return &HiGHS{} }

// Solve translates the formulation into a mip.Model, runs HiGHS and maps the
// solution back onto the formulation's variable handles.
func (h *HiGHS) Solve(ctx context.Context, f *model.Formulation, opts Options) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{Status: StatusInterrupted}, nil
	}

	m := mip.NewModel()

	vars := make([]mip.Var, f.NumVariables())
	for _, v := range f.Variables() {
		switch v.Kind {
		case model.VarBinary:
			vars[v.Index] = m.NewBool()
		case model.VarInteger:
			upper := int64(integerHorizon)
			if !math.IsInf(v.Upper, 1) {
				upper = int64(v.Upper)
			}
			vars[v.Index] = m.NewInt(int64(v.Lower), upper)
		default:
			vars[v.Index] = m.NewFloat(v.Lower, v.Upper)
		}
	}

	m.Objective().SetMaximize()
	for _, t := range f.Objective() {
		m.Objective().NewTerm(t.Coef, vars[t.Var])
	}

	for _, c := range f.Constraints() {
		sense := mip.Equal
		switch c.Sense {
		case model.LessEqual:
			sense = mip.LessThanOrEqual
		case model.GreaterEqual:
			sense = mip.GreaterThanOrEqual
		}
		row := m.NewConstraint(sense, c.RHS)
		for _, t := range c.Terms {
			row.NewTerm(t.Coef, vars[t.Var])
		}
	}

	engine, err := mip.NewSolver("highs", m)
	if err != nil {
		return Result{}, fmt.Errorf("solver: highs: %w", err)
	}

	solveOptions := mip.NewSolveOptions()
	solveOptions.SetVerbosity(mip.Off)
	if opts.TimeLimit > 0 {
		if err := solveOptions.SetMaximumDuration(opts.TimeLimit); err != nil {
			return Result{}, fmt.Errorf("solver: time limit: %w", err)
		}
	}
	// HiGHS stops at a 5% relative gap by default; pin it to 0 so "optimal"
	// means optimal. A feasibility-first hint keeps the looser default, the
	// closest control this engine exposes to a search-emphasis switch.
	if opts.Focus != FocusFeasibility {
		if err := solveOptions.SetMIPGapRelative(0); err != nil {
			return Result{}, fmt.Errorf("solver: gap: %w", err)
		}
	}

	solution, err := engine.Solve(solveOptions)
	if err != nil {
		return Result{}, fmt.Errorf("solver: solve: %w", err)
	}

	res := Result{RunTime: solution.RunTime()}
	if err := ctx.Err(); err != nil {
		res.Status = StatusInterrupted
	}

	if solution != nil && solution.HasValues() {
		res.HasSolution = true
		res.Objective = solution.ObjectiveValue()
		res.Values = make([]float64, len(vars))
		for n, v := range vars {
			res.Values[n] = solution.Value(v)
		}
		if res.Status == "" {
			if solution.IsOptimal() {
				res.Status = StatusOptimal
				res.Gap, res.HasGap = 0, true
			} else {
				// Values without an optimality proof: the time limit was
				// the only stopping condition. The API exposes no bound,
				// so no gap is reported.
				res.Status = StatusTimeLimit
			}
		}
		return res, nil
	}

	if res.Status == "" {
		if opts.TimeLimit > 0 && res.RunTime >= opts.TimeLimit {
			res.Status = StatusTimeLimit
		} else {
			// The API cannot distinguish a proof of infeasibility from one
			// of unboundedness; report the combined status.
			res.Status = StatusInfOrUnbd
		}
	}
	return res, nil
}
