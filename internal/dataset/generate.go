package dataset

import (
	"fmt"
	"strconv"
)

// productNames labels products A..Z, then A2..Z2 on wraparound, and so on.
func productNames(n int) []string {
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		name := string(rune('A' + i%26))
		if round := i / 26; round > 0 {
			name += strconv.Itoa(round + 1)
		}
		names = append(names, name)
	}
	return names
}

// seqNames labels a set prefix1..prefixN.
func seqNames(prefix string, n int) []string {
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		names = append(names, prefix+strconv.Itoa(i+1))
	}
	return names
}

func intMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Generate builds a complete instance for the given scale. It is pure and
// deterministic; the only error condition is a negative set size. A zero set
// size is accepted and yields a degenerate dataset (with K=0 the cheapest
// shipping rate falls back to 0); whether such a dataset is usable is the
// model builder's call, not the generator's.
func Generate(s Scale, cfg GenConfig) (Dataset, error) {
	if s.Products < 0 || s.Factories < 0 || s.Warehouses < 0 || s.Stores < 0 {
		return Dataset{}, fmt.Errorf("%w: %+v", ErrNegativeScale, s)
	}

	d := Dataset{
		Products:   productNames(s.Products),
		Factories:  seqNames("F", s.Factories),
		Warehouses: seqNames("W", s.Warehouses),
		Stores:     seqNames("S", s.Stores),
	}

	// Volume V_i.
	d.Volume = make(map[string]int, s.Products)
	for i, product := range d.Products {
		d.Volume[product] = intMax(1, cfg.VolStart+cfg.VolStep*i)
	}

	// Unit hours T_{i,j}; odd factories carry a parity bonus so factories are
	// not interchangeable.
	d.ProdTime = make(map[string]map[string]int, s.Products)
	for i, product := range d.Products {
		row := make(map[string]int, s.Factories)
		for j, factory := range d.Factories {
			row[factory] = intMax(1, cfg.TimeBase+i+(j%2)*cfg.TimeParityBonus)
		}
		d.ProdTime[product] = row
	}

	// Unit cost C_{i,j}: per-product base with a linear ±cost_grad_pct
	// gradient from the first factory to the last.
	d.ProdCost = make(map[string]map[string]int, s.Products)
	for i, product := range d.Products {
		base := intMax(1, cfg.CostBase+cfg.CostStep*i)
		row := make(map[string]int, s.Factories)
		for j, factory := range d.Factories {
			shift := 0
			if s.Factories > 1 {
				shift = j*(2*cfg.CostGradPct)/(s.Factories-1) - cfg.CostGradPct
			}
			row[factory] = intMax(1, base*(100+shift)/100)
		}
		d.ProdCost[product] = row
	}

	// Demand D_{i,l}.
	d.Demand = make(map[string]map[string]int, s.Products)
	for i, product := range d.Products {
		row := make(map[string]int, s.Stores)
		for l, store := range d.Stores {
			row[store] = intMax(0, cfg.DemandBase+cfg.DemandProductStep*i+cfg.DemandStoreStep*(l%4))
		}
		d.Demand[product] = row
	}

	// Shipping rates, priced per unit of volume.
	d.TC1 = make(map[string]map[string]int, s.Factories)
	for j, factory := range d.Factories {
		row := make(map[string]int, s.Warehouses)
		for k, wh := range d.Warehouses {
			row[wh] = intMax(0, cfg.TC1Base+cfg.TCStep*((j%3)+(k%4)))
		}
		d.TC1[factory] = row
	}
	d.TC2 = make(map[string]map[string]int, s.Warehouses)
	for k, wh := range d.Warehouses {
		row := make(map[string]int, s.Stores)
		for l, store := range d.Stores {
			row[store] = intMax(0, cfg.TC2Base+cfg.TCStep*((k%4)+(l%4)))
		}
		d.TC2[wh] = row
	}

	// Price: cheapest production plus cheapest routed shipping plus a margin
	// of at least 1, so every (product, store) pair has a strictly positive
	// per-unit profit by construction.
	d.Price = make(map[string]map[string]int, s.Products)
	for i, product := range d.Products {
		minProd := d.MinProdCost(product)
		margin := int(float64(minProd) * cfg.MarginFrac)
		margin = intMax(margin, cfg.MarginFloorBase+cfg.MarginFloorStep*i)
		margin = intMax(margin, 1)
		row := make(map[string]int, s.Stores)
		for _, store := range d.Stores {
			ship := d.Volume[product] * intMax(0, d.MinShipPerVolume(store))
			row[store] = intMax(minProd+ship+margin, minProd+ship+1)
		}
		d.Price[product] = row
	}

	// Penalty for unmet demand, a fraction of the sale price.
	d.Penalty = make(map[string]map[string]int, s.Products)
	for _, product := range d.Products {
		row := make(map[string]int, s.Stores)
		for _, store := range d.Stores {
			row[store] = intMax(0, int(float64(d.Price[product][store])*cfg.PenaltyFrac))
		}
		d.Penalty[product] = row
	}

	// Factory hours: a cap_util share of the hours needed to satisfy all
	// demand, split evenly across factories, plus a small buffer.
	d.Cap = make(map[string]int, s.Factories)
	for _, factory := range d.Factories {
		hours := 0
		for _, product := range d.Products {
			hours += d.TotalDemand(product) * d.ProdTime[product][factory]
		}
		capJ := int(float64(hours)/float64(intMax(1, s.Factories))*cfg.CapUtil) + cfg.CapBuffer
		d.Cap[factory] = intMax(1, capJ)
	}

	// Warehouse throughput: a share of the total demand volume per warehouse.
	totalVolume := 0
	for _, product := range d.Products {
		totalVolume += d.TotalDemand(product) * d.Volume[product]
	}
	d.WhCap = make(map[string]int, s.Warehouses)
	for _, wh := range d.Warehouses {
		d.WhCap[wh] = intMax(1, int(float64(totalVolume)*cfg.WhCapacityShare/float64(intMax(1, s.Warehouses))))
	}

	// Fixed activation costs, growing with position in the set.
	d.WhRent = make(map[string]int, s.Warehouses)
	for k, wh := range d.Warehouses {
		d.WhRent[wh] = cfg.WhRentBase + cfg.WhRentStep*(k+1)
	}
	d.StoreRent = make(map[string]int, s.Stores)
	for l, store := range d.Stores {
		d.StoreRent[store] = cfg.StoreRentBase + cfg.StoreRentStep*(l+1)
	}

	return d, nil
}
