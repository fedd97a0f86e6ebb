package dataset_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runnywolf/pp-final-project/internal/dataset"
)

// TestGenerate_Smallest pins every value of the 1×1×1×1 instance under
// default hyper-parameters.
func TestGenerate_Smallest(t *testing.T) {
	ds, err := dataset.Generate(dataset.Scale{Products: 1, Factories: 1, Warehouses: 1, Stores: 1}, dataset.DefaultGenConfig())
	require.NoError(t, err)

	assert.Equal(t, []string{"A"}, ds.Products)
	assert.Equal(t, []string{"F1"}, ds.Factories)
	assert.Equal(t, []string{"W1"}, ds.Warehouses)
	assert.Equal(t, []string{"S1"}, ds.Stores)

	assert.Equal(t, 1, ds.Volume["A"])
	assert.Equal(t, 1, ds.ProdTime["A"]["F1"])
	assert.Equal(t, 200, ds.ProdCost["A"]["F1"])
	assert.Equal(t, 20, ds.Demand["A"]["S1"])
	assert.Equal(t, 8, ds.TC1["F1"]["W1"])
	assert.Equal(t, 9, ds.TC2["W1"]["S1"])

	// price = min cost (200) + V·cheapest route (1·17) + margin (50)
	assert.Equal(t, 267, ds.Price["A"]["S1"])
	assert.Equal(t, 160, ds.Penalty["A"]["S1"])

	// cap = floor(0.7·20·1/1) + 50, wh_cap = floor(0.5·20·1/1)
	assert.Equal(t, 64, ds.Cap["F1"])
	assert.Equal(t, 10, ds.WhCap["W1"])

	assert.Equal(t, 2200, ds.WhRent["W1"])
	assert.Equal(t, 6500, ds.StoreRent["S1"])

	// Per-unit profit is strictly positive.
	assert.Greater(t, ds.Price["A"]["S1"], ds.ProdCost["A"]["F1"]+ds.Volume["A"]*(ds.TC1["F1"]["W1"]+ds.TC2["W1"]["S1"]))
}

// TestGenerate_Determinism checks that identical inputs give bit-identical
// datasets.
func TestGenerate_Determinism(t *testing.T) {
	scale := dataset.Scale{Products: 4, Factories: 3, Warehouses: 2, Stores: 5}
	a, err := dataset.Generate(scale, dataset.DefaultGenConfig())
	require.NoError(t, err)
	b, err := dataset.Generate(scale, dataset.DefaultGenConfig())
	require.NoError(t, err)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("datasets differ (-first +second):\n%s", diff)
	}
}

// TestGenerate_Invariants verifies positive margin and the stated lower
// bounds across a range of scales.
func TestGenerate_Invariants(t *testing.T) {
	scales := []dataset.Scale{
		{Products: 1, Factories: 1, Warehouses: 1, Stores: 1},
		{Products: 2, Factories: 2, Warehouses: 1, Stores: 2},
		{Products: 5, Factories: 4, Warehouses: 3, Stores: 6},
		{Products: 27, Factories: 3, Warehouses: 4, Stores: 9},
	}
	for _, scale := range scales {
		ds, err := dataset.Generate(scale, dataset.DefaultGenConfig())
		require.NoError(t, err)

		for _, i := range ds.Products {
			assert.GreaterOrEqual(t, ds.Volume[i], 1)
			for _, j := range ds.Factories {
				assert.GreaterOrEqual(t, ds.ProdTime[i][j], 1)
				assert.GreaterOrEqual(t, ds.ProdCost[i][j], 1)
			}
			for _, l := range ds.Stores {
				assert.GreaterOrEqual(t, ds.Demand[i][l], 0)
				floor := ds.MinProdCost(i) + ds.Volume[i]*ds.MinShipPerVolume(l)
				assert.Greaterf(t, ds.Price[i][l], floor,
					"scale %+v: price[%s][%s] not above cost floor", scale, i, l)
			}
		}
		for _, j := range ds.Factories {
			assert.GreaterOrEqual(t, ds.Cap[j], 1)
		}
		for _, k := range ds.Warehouses {
			assert.GreaterOrEqual(t, ds.WhCap[k], 1)
		}
	}
}

// TestGenerate_ProductNameWraparound checks the 27th product restarts the
// alphabet with a round suffix.
func TestGenerate_ProductNameWraparound(t *testing.T) {
	ds, err := dataset.Generate(dataset.Scale{Products: 28, Factories: 1, Warehouses: 1, Stores: 1}, dataset.DefaultGenConfig())
	require.NoError(t, err)
	assert.Equal(t, "Z", ds.Products[25])
	assert.Equal(t, "A2", ds.Products[26])
	assert.Equal(t, "B2", ds.Products[27])
}

// TestGenerate_ZeroWarehouses: K=0 is accepted; the cheapest route falls
// back to 0 and the price floor degenerates to cost + margin.
func TestGenerate_ZeroWarehouses(t *testing.T) {
	ds, err := dataset.Generate(dataset.Scale{Products: 1, Factories: 1, Warehouses: 0, Stores: 1}, dataset.DefaultGenConfig())
	require.NoError(t, err)
	assert.Empty(t, ds.Warehouses)
	assert.Equal(t, 0, ds.MinShipPerVolume("S1"))
	assert.Equal(t, 250, ds.Price["A"]["S1"]) // 200 + 0 + margin 50
}

func TestGenerate_NegativeScale(t *testing.T) {
	_, err := dataset.Generate(dataset.Scale{Products: -1, Factories: 1, Warehouses: 1, Stores: 1}, dataset.DefaultGenConfig())
	if !errors.Is(err, dataset.ErrNegativeScale) {
		t.Errorf("Generate error = %v; want %v", err, dataset.ErrNegativeScale)
	}
}

// TestGenerate_Overrides checks hyper-parameter overrides flow through.
func TestGenerate_Overrides(t *testing.T) {
	cfg := dataset.DefaultGenConfig()
	cfg.DemandBase = 7
	cfg.WhRentBase = 100
	ds, err := dataset.Generate(dataset.Scale{Products: 1, Factories: 1, Warehouses: 1, Stores: 1}, cfg)
	require.NoError(t, err)
	assert.Equal(t, 7, ds.Demand["A"]["S1"])
	assert.Equal(t, 300, ds.WhRent["W1"])
}

func TestLoadGenConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "params.toml")
	require.NoError(t, os.WriteFile(path, []byte("demand_base = 5\nmargin_frac = 0.5\n"), 0o644))

	cfg, err := dataset.LoadGenConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.DemandBase)
	assert.Equal(t, 0.5, cfg.MarginFrac)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, 200, cfg.CostBase)

	_, err = dataset.LoadGenConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
