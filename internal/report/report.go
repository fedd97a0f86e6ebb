// Package report renders a solve outcome as the textual summary: status,
// objective and gap, activated warehouses and stores, then every
// non-negligible decision value grouped by variable family. Section order is
// fixed; tests compare the output verbatim.
package report

import (
	"fmt"
	"io"

	"github.com/runnywolf/pp-final-project/internal/model"
	"github.com/runnywolf/pp-final-project/internal/solver"
)

const (
	// negligible is the threshold below which a decision value is omitted.
	negligible = 1e-6
	// activated is the threshold above which a binary (or relaxed)
	// activation counts as open.
	activated = 0.5
)

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Write renders the summary for one solve. The status is always reported;
// everything else only when the result carries a solution. Gap reporting
// follows the result's HasGap flag and is additionally suppressed for
// infeasible/unbounded verdicts.
func Write(w io.Writer, f *model.Formulation, res solver.Result) error {
	p := &printer{w: w}
	p.printf("=== Solve Summary ===\n")
	p.printf("Status : %s\n", res.Status)
	if !res.HasSolution {
		return p.err
	}

	p.printf("ObjVal : %.4f\n", res.Objective)
	if res.HasGap && gapMeaningful(res.Status) {
		p.printf("MIPGap : %.4f\n", res.Gap)
	}

	ds := f.Dataset()

	openWh := make([]string, 0, len(ds.Warehouses))
	for _, k := range ds.Warehouses {
		if v, ok := f.WarehouseOpen(k); ok && res.Value(v) > activated {
			openWh = append(openWh, k)
		}
	}
	openStores := make([]string, 0, len(ds.Stores))
	for _, l := range ds.Stores {
		if v, ok := f.StoreOpen(l); ok && res.Value(v) > activated {
			openStores = append(openStores, l)
		}
	}
	p.printf("Open Warehouses: %v\n", openWh)
	p.printf("Open Stores    : %v\n", openStores)

	p.printf("\n-- Production P[i,j] --\n")
	for _, i := range ds.Products {
		for _, j := range ds.Factories {
			if v, ok := f.Production(i, j); ok {
				p.entry(v, res.Value(v))
			}
		}
	}

	p.printf("\n-- Flow X[i,j,k] --\n")
	for _, i := range ds.Products {
		for _, j := range ds.Factories {
			for _, k := range ds.Warehouses {
				if v, ok := f.FactoryShipment(i, j, k); ok {
					p.entry(v, res.Value(v))
				}
			}
		}
	}

	p.printf("\n-- Flow Y[i,k,l] --\n")
	for _, i := range ds.Products {
		for _, k := range ds.Warehouses {
			for _, l := range ds.Stores {
				if v, ok := f.StoreShipment(i, k, l); ok {
					p.entry(v, res.Value(v))
				}
			}
		}
	}

	p.printf("\n-- Unmet U[i,l] --\n")
	for _, i := range ds.Products {
		for _, l := range ds.Stores {
			if v, ok := f.Unmet(i, l); ok {
				p.entry(v, res.Value(v))
			}
		}
	}

	return p.err
}

func (p *printer) entry(v model.Var, value float64) {
	if value > negligible {
		p.printf("%s = %.4f\n", v.Name, value)
	}
}

func gapMeaningful(s solver.Status) bool {
	switch s {
	case solver.StatusInfeasible, solver.StatusUnbounded, solver.StatusInfOrUnbd:
		return false
	}
	return true
}
