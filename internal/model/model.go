// Package model turns a generated dataset into a mixed-integer formulation:
// a variable arena, a linear objective and six constraint families. The
// formulation owns its variables, every variable is addressable by its index
// tuple, and each constraint knows which family it belongs to, so the model
// can be inspected and tested without any solver attached.
package model

import (
	"math"

	"github.com/runnywolf/pp-final-project/internal/dataset"
)

// Mode selects the variable domains of the formulation.
type Mode int

const (
	// ModeInteger keeps flows integer and activations binary.
	ModeInteger Mode = iota
	// ModeRelaxed makes every variable continuous, activations on [0,1].
	ModeRelaxed
)

func (m Mode) String() string {
	switch m {
	case ModeInteger:
		return "integer"
	case ModeRelaxed:
		return "relaxed"
	}
	return "unknown"
}

// VarKind is the domain of a single variable.
type VarKind int

const (
	VarContinuous VarKind = iota
	VarInteger
	VarBinary
)

// Var is a handle into the formulation's variable arena.
type Var struct {
	Index int
	Name  string // e.g. "Y[A,W1,S2]"
	Kind  VarKind
	Lower float64
	Upper float64 // math.Inf(1) when unbounded above
}

// Sense relates a constraint's linear form to its right-hand side.
type Sense int

const (
	LessEqual Sense = iota
	Equal
	GreaterEqual
)

func (s Sense) String() string {
	switch s {
	case LessEqual:
		return "<="
	case Equal:
		return "="
	case GreaterEqual:
		return ">="
	}
	return "?"
}

// Term is one coefficient·variable product, referring to a variable by index.
type Term struct {
	Coef float64
	Var  int
}

// Family tags a constraint with the group it was emitted by.
type Family int

const (
	FamilyFactoryTime   Family = iota // Σ_i time·P ≤ cap, per factory
	FamilyProdBalance                 // P = Σ_k X, per product and factory
	FamilyWhBalance                   // Σ_j X = Σ_l Y, per product and warehouse
	FamilyWhCapActivate               // Σ volume·X ≤ wh_cap·W, per warehouse
	FamilyDemandBalance               // Σ_k Y + U = demand, per product and store
	FamilyStoreActivate               // Σ_k Y ≤ demand·S, per product and store
)

// Constraint is one emitted row: Σ terms  sense  rhs.
type Constraint struct {
	Family Family
	Name   string // e.g. "DemandBalance[A,S1]"
	Terms  []Term
	Sense  Sense
	RHS    float64
}

type pair [2]string
type triple [3]string

// Formulation is a built model instance. Variables and constraints are owned
// by the formulation and live exactly as long as it does.
type Formulation struct {
	mode Mode
	ds   dataset.Dataset

	vars        []Var
	objective   []Term // maximized
	constraints []Constraint

	production   map[pair]int   // P[product,factory]
	factoryShip  map[triple]int // X[product,factory,warehouse]
	storeShip    map[triple]int // Y[product,warehouse,store]
	unmet        map[pair]int   // U[product,store]
	warehouseUse map[string]int // W[warehouse]
	storeUse     map[string]int // S[store]
}

// Mode reports whether the formulation is integer or relaxed.
func (f *Formulation) Mode() Mode { return f.mode }

// Dataset returns the instance the formulation was built from.
func (f *Formulation) Dataset() dataset.Dataset { return f.ds }

// Variables returns the variable arena in declaration order.
func (f *Formulation) Variables() []Var { return f.vars }

// NumVariables returns the arena size.
func (f *Formulation) NumVariables() int { return len(f.vars) }

// Objective returns the maximized linear form. A variable may appear in more
// than one term; its effective coefficient is the sum.
func (f *Formulation) Objective() []Term { return f.objective }

// Constraints returns every emitted constraint in declaration order.
func (f *Formulation) Constraints() []Constraint { return f.constraints }

// Production returns P[product,factory].
func (f *Formulation) Production(product, factory string) (Var, bool) {
	idx, ok := f.production[pair{product, factory}]
	if !ok {
		return Var{}, false
	}
	return f.vars[idx], true
}

// FactoryShipment returns X[product,factory,warehouse].
func (f *Formulation) FactoryShipment(product, factory, warehouse string) (Var, bool) {
	idx, ok := f.factoryShip[triple{product, factory, warehouse}]
	if !ok {
		return Var{}, false
	}
	return f.vars[idx], true
}

// StoreShipment returns Y[product,warehouse,store].
func (f *Formulation) StoreShipment(product, warehouse, store string) (Var, bool) {
	idx, ok := f.storeShip[triple{product, warehouse, store}]
	if !ok {
		return Var{}, false
	}
	return f.vars[idx], true
}

// Unmet returns U[product,store].
func (f *Formulation) Unmet(product, store string) (Var, bool) {
	idx, ok := f.unmet[pair{product, store}]
	if !ok {
		return Var{}, false
	}
	return f.vars[idx], true
}

// WarehouseOpen returns W[warehouse].
func (f *Formulation) WarehouseOpen(warehouse string) (Var, bool) {
	idx, ok := f.warehouseUse[warehouse]
	if !ok {
		return Var{}, false
	}
	return f.vars[idx], true
}

// StoreOpen returns S[store].
func (f *Formulation) StoreOpen(store string) (Var, bool) {
	idx, ok := f.storeUse[store]
	if !ok {
		return Var{}, false
	}
	return f.vars[idx], true
}

func (f *Formulation) addVar(name string, kind VarKind, lower, upper float64) int {
	idx := len(f.vars)
	f.vars = append(f.vars, Var{Index: idx, Name: name, Kind: kind, Lower: lower, Upper: upper})
	return idx
}

// unbounded is the shared +∞ upper bound for flow variables.
func unbounded() float64 { return math.Inf(1) }
