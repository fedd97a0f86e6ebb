package model

import (
	"fmt"

	"github.com/runnywolf/pp-final-project/internal/dataset"
)

// Build translates a dataset into a formulation in the requested mode. The
// dataset is validated up front: empty sets, missing map entries and
// negative values fail fast, before any variable exists. Build itself never
// touches a solver.
func Build(ds dataset.Dataset, mode Mode) (*Formulation, error) {
	if mode != ModeInteger && mode != ModeRelaxed {
		return nil, fmt.Errorf("%w: %d", ErrBadMode, int(mode))
	}
	if err := validate(ds); err != nil {
		return nil, err
	}

	flowKind, activationKind := VarInteger, VarBinary
	if mode == ModeRelaxed {
		flowKind, activationKind = VarContinuous, VarContinuous
	}

	f := &Formulation{
		mode:         mode,
		ds:           ds,
		production:   make(map[pair]int),
		factoryShip:  make(map[triple]int),
		storeShip:    make(map[triple]int),
		unmet:        make(map[pair]int),
		warehouseUse: make(map[string]int),
		storeUse:     make(map[string]int),
	}

	// Variable arena, declared family by family.
	for _, i := range ds.Products {
		for _, j := range ds.Factories {
			f.production[pair{i, j}] = f.addVar(vname("P", i, j), flowKind, 0, unbounded())
		}
	}
	for _, i := range ds.Products {
		for _, j := range ds.Factories {
			for _, k := range ds.Warehouses {
				f.factoryShip[triple{i, j, k}] = f.addVar(vname("X", i, j, k), flowKind, 0, unbounded())
			}
		}
	}
	for _, i := range ds.Products {
		for _, k := range ds.Warehouses {
			for _, l := range ds.Stores {
				f.storeShip[triple{i, k, l}] = f.addVar(vname("Y", i, k, l), flowKind, 0, unbounded())
			}
		}
	}
	for _, i := range ds.Products {
		for _, l := range ds.Stores {
			f.unmet[pair{i, l}] = f.addVar(vname("U", i, l), flowKind, 0, float64(ds.Demand[i][l]))
		}
	}
	for _, k := range ds.Warehouses {
		f.warehouseUse[k] = f.addVar(vname("W", k), activationKind, 0, 1)
	}
	for _, l := range ds.Stores {
		f.storeUse[l] = f.addVar(vname("S", l), activationKind, 0, 1)
	}

	f.buildObjective()
	f.buildConstraints()
	return f, nil
}

// buildObjective emits the maximized profit: revenue minus production,
// shipping, fixed activation and unmet-demand costs.
func (f *Formulation) buildObjective() {
	ds := f.ds

	// + Σ price·Y
	for _, i := range ds.Products {
		for _, l := range ds.Stores {
			for _, k := range ds.Warehouses {
				f.objective = append(f.objective, Term{float64(ds.Price[i][l]), f.storeShip[triple{i, k, l}]})
			}
		}
	}
	// − Σ prod_cost·P
	for _, i := range ds.Products {
		for _, j := range ds.Factories {
			f.objective = append(f.objective, Term{-float64(ds.ProdCost[i][j]), f.production[pair{i, j}]})
		}
	}
	// − Σ tc1·V·X and − Σ tc2·V·Y, shipping priced by volume.
	for _, i := range ds.Products {
		for _, j := range ds.Factories {
			for _, k := range ds.Warehouses {
				f.objective = append(f.objective, Term{-float64(ds.TC1[j][k] * ds.Volume[i]), f.factoryShip[triple{i, j, k}]})
			}
		}
	}
	for _, i := range ds.Products {
		for _, k := range ds.Warehouses {
			for _, l := range ds.Stores {
				f.objective = append(f.objective, Term{-float64(ds.TC2[k][l] * ds.Volume[i]), f.storeShip[triple{i, k, l}]})
			}
		}
	}
	// − Σ rents on activations.
	for _, k := range ds.Warehouses {
		f.objective = append(f.objective, Term{-float64(ds.WhRent[k]), f.warehouseUse[k]})
	}
	for _, l := range ds.Stores {
		f.objective = append(f.objective, Term{-float64(ds.StoreRent[l]), f.storeUse[l]})
	}
	// − Σ penalty·U
	for _, i := range ds.Products {
		for _, l := range ds.Stores {
			f.objective = append(f.objective, Term{-float64(ds.Penalty[i][l]), f.unmet[pair{i, l}]})
		}
	}
}

// buildConstraints emits the six constraint families.
func (f *Formulation) buildConstraints() {
	ds := f.ds

	// (1) Factory time capacity: Σ_i time·P ≤ cap, per factory.
	for _, j := range ds.Factories {
		c := Constraint{Family: FamilyFactoryTime, Name: vname("FactoryTime", j), Sense: LessEqual, RHS: float64(ds.Cap[j])}
		for _, i := range ds.Products {
			c.Terms = append(c.Terms, Term{float64(ds.ProdTime[i][j]), f.production[pair{i, j}]})
		}
		f.constraints = append(f.constraints, c)
	}

	// (2) Production balance: P − Σ_k X = 0, per product and factory.
	for _, i := range ds.Products {
		for _, j := range ds.Factories {
			c := Constraint{Family: FamilyProdBalance, Name: vname("ProdBalance", i, j), Sense: Equal, RHS: 0}
			c.Terms = append(c.Terms, Term{1, f.production[pair{i, j}]})
			for _, k := range ds.Warehouses {
				c.Terms = append(c.Terms, Term{-1, f.factoryShip[triple{i, j, k}]})
			}
			f.constraints = append(f.constraints, c)
		}
	}

	// (3) Warehouse flow conservation: Σ_j X − Σ_l Y = 0, per product and
	// warehouse.
	for _, i := range ds.Products {
		for _, k := range ds.Warehouses {
			c := Constraint{Family: FamilyWhBalance, Name: vname("WhBalance", i, k), Sense: Equal, RHS: 0}
			for _, j := range ds.Factories {
				c.Terms = append(c.Terms, Term{1, f.factoryShip[triple{i, j, k}]})
			}
			for _, l := range ds.Stores {
				c.Terms = append(c.Terms, Term{-1, f.storeShip[triple{i, k, l}]})
			}
			f.constraints = append(f.constraints, c)
		}
	}

	// (4) Warehouse throughput gated by activation: Σ_i V·Σ_j X ≤ wh_cap·W.
	// The big-M is the warehouse's own capacity, the tightest valid bound.
	for _, k := range ds.Warehouses {
		c := Constraint{Family: FamilyWhCapActivate, Name: vname("WhCapActivate", k), Sense: LessEqual, RHS: 0}
		for _, i := range ds.Products {
			for _, j := range ds.Factories {
				c.Terms = append(c.Terms, Term{float64(ds.Volume[i]), f.factoryShip[triple{i, j, k}]})
			}
		}
		c.Terms = append(c.Terms, Term{-float64(ds.WhCap[k]), f.warehouseUse[k]})
		f.constraints = append(f.constraints, c)
	}

	// (5) Demand balance: Σ_k Y + U = demand, per product and store. U is
	// bounded by the demand itself, so this family is always satisfiable.
	for _, i := range ds.Products {
		for _, l := range ds.Stores {
			c := Constraint{Family: FamilyDemandBalance, Name: vname("DemandBalance", i, l), Sense: Equal, RHS: float64(ds.Demand[i][l])}
			for _, k := range ds.Warehouses {
				c.Terms = append(c.Terms, Term{1, f.storeShip[triple{i, k, l}]})
			}
			c.Terms = append(c.Terms, Term{1, f.unmet[pair{i, l}]})
			f.constraints = append(f.constraints, c)
		}
	}

	// (6) Store activation: Σ_k Y ≤ demand·S, per product and store. Big-M
	// is the pair's demand, again the tightest valid bound.
	for _, i := range ds.Products {
		for _, l := range ds.Stores {
			c := Constraint{Family: FamilyStoreActivate, Name: vname("StoreActivate", i, l), Sense: LessEqual, RHS: 0}
			for _, k := range ds.Warehouses {
				c.Terms = append(c.Terms, Term{1, f.storeShip[triple{i, k, l}]})
			}
			c.Terms = append(c.Terms, Term{-float64(ds.Demand[i][l]), f.storeUse[l]})
			f.constraints = append(f.constraints, c)
		}
	}
}

// vname renders "P[A,F1]"-style names shared by variables and constraints.
func vname(prefix string, labels ...string) string {
	s := prefix + "["
	for n, label := range labels {
		if n > 0 {
			s += ","
		}
		s += label
	}
	return s + "]"
}

// validate rejects datasets the builder cannot express: empty index sets,
// incomplete parameter maps, or negative values that would enter a bound or
// right-hand side. Nothing is clamped.
func validate(ds dataset.Dataset) error {
	switch {
	case len(ds.Products) == 0:
		return fmt.Errorf("%w: products", ErrEmptySet)
	case len(ds.Factories) == 0:
		return fmt.Errorf("%w: factories", ErrEmptySet)
	case len(ds.Warehouses) == 0:
		return fmt.Errorf("%w: warehouses", ErrEmptySet)
	case len(ds.Stores) == 0:
		return fmt.Errorf("%w: stores", ErrEmptySet)
	}

	for _, i := range ds.Products {
		if err := checkScalar("V", ds.Volume, i); err != nil {
			return err
		}
		for _, j := range ds.Factories {
			if err := checkCell("prod_time", ds.ProdTime, i, j); err != nil {
				return err
			}
			if err := checkCell("prod_cost", ds.ProdCost, i, j); err != nil {
				return err
			}
		}
		for _, l := range ds.Stores {
			if err := checkCell("demand", ds.Demand, i, l); err != nil {
				return err
			}
			if err := checkCell("price", ds.Price, i, l); err != nil {
				return err
			}
			if err := checkCell("penalty", ds.Penalty, i, l); err != nil {
				return err
			}
		}
	}
	for _, j := range ds.Factories {
		if err := checkScalar("cap", ds.Cap, j); err != nil {
			return err
		}
		for _, k := range ds.Warehouses {
			if err := checkCell("tc1", ds.TC1, j, k); err != nil {
				return err
			}
		}
	}
	for _, k := range ds.Warehouses {
		if err := checkScalar("wh_cap", ds.WhCap, k); err != nil {
			return err
		}
		if err := checkScalar("wh_rent", ds.WhRent, k); err != nil {
			return err
		}
		for _, l := range ds.Stores {
			if err := checkCell("tc2", ds.TC2, k, l); err != nil {
				return err
			}
		}
	}
	for _, l := range ds.Stores {
		if err := checkScalar("store_rent", ds.StoreRent, l); err != nil {
			return err
		}
	}
	return nil
}

func checkScalar(param string, m map[string]int, key string) error {
	v, ok := m[key]
	if !ok {
		return fmt.Errorf("%w: %s[%s]", ErrMissingParam, param, key)
	}
	if v < 0 {
		return fmt.Errorf("%w: %s[%s] = %d", ErrNegativeParam, param, key, v)
	}
	return nil
}

func checkCell(param string, m map[string]map[string]int, row, col string) error {
	inner, ok := m[row]
	if !ok {
		return fmt.Errorf("%w: %s[%s]", ErrMissingParam, param, row)
	}
	v, ok := inner[col]
	if !ok {
		return fmt.Errorf("%w: %s[%s,%s]", ErrMissingParam, param, row, col)
	}
	if v < 0 {
		return fmt.Errorf("%w: %s[%s,%s] = %d", ErrNegativeParam, param, row, col, v)
	}
	return nil
}
