// Package dataset generates synthetic, internally consistent instances of a
// single-period three-echelon supply chain (factories → warehouses → stores).
//
// Generation is a pure function of the requested scale and the hyper-parameter
// configuration: identical inputs yield bit-identical datasets. Every instance
// is built so that each product carries a strictly positive per-unit margin at
// every store, i.e.
//
//	price[i][l] > min_j prod_cost[i][j] + V[i]·min_k(min_j tc1[j][k] + tc2[k][l])
//
// which keeps "sell at least something" attractive regardless of scale.
package dataset

import "errors"

// ErrNegativeScale is returned when a requested set size is below zero.
var ErrNegativeScale = errors.New("dataset: negative scale")

// Scale holds the size of each index set.
type Scale struct {
	Products   int // |I|
	Factories  int // |J|
	Warehouses int // |K|
	Stores     int // |L|
}

// Dataset is a complete generated instance. Label slices are ordered and
// duplicate-free; every map is keyed by those labels. All values are
// non-negative integers. A Dataset is treated as immutable after generation.
type Dataset struct {
	Products   []string
	Factories  []string
	Warehouses []string
	Stores     []string

	Volume   map[string]int            // per-unit volume of product i, ≥ 1
	ProdTime map[string]map[string]int // [product][factory] hours per unit, ≥ 1
	ProdCost map[string]map[string]int // [product][factory] unit cost, ≥ 1
	Demand   map[string]map[string]int // [product][store] demand, ≥ 0
	TC1      map[string]map[string]int // [factory][warehouse] rate per volume
	TC2      map[string]map[string]int // [warehouse][store] rate per volume
	Price    map[string]map[string]int // [product][store] unit sale price
	Penalty  map[string]map[string]int // [product][store] unit penalty for unmet demand

	Cap       map[string]int // factory time capacity, hours
	WhCap     map[string]int // warehouse throughput capacity, volume units
	WhRent    map[string]int // fixed cost to activate a warehouse
	StoreRent map[string]int // fixed cost to activate a store
}

// MinProdCost returns min_j ProdCost[product][j].
func (d Dataset) MinProdCost(product string) int {
	best := 0
	for n, factory := range d.Factories {
		c := d.ProdCost[product][factory]
		if n == 0 || c < best {
			best = c
		}
	}
	return best
}

// MinShipPerVolume returns the cheapest per-volume factory→warehouse→store
// rate into the given store, 0 when there are no warehouses.
func (d Dataset) MinShipPerVolume(store string) int {
	found := false
	best := 0
	for _, wh := range d.Warehouses {
		bestIn := 0
		for n, factory := range d.Factories {
			c := d.TC1[factory][wh]
			if n == 0 || c < bestIn {
				bestIn = c
			}
		}
		total := bestIn + d.TC2[wh][store]
		if !found || total < best {
			found = true
			best = total
		}
	}
	return best
}

// TotalDemand returns Σ_l Demand[product][l].
func (d Dataset) TotalDemand(product string) int {
	sum := 0
	for _, store := range d.Stores {
		sum += d.Demand[product][store]
	}
	return sum
}
