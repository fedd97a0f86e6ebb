package dataset

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// GenConfig holds every hyper-parameter of the generator. Construct it with
// DefaultGenConfig and override fields as needed; there is no package-level
// mutable default.
type GenConfig struct {
	// Volume: V_i = vol_start + vol_step·i, floored at 1.
	VolStart int `toml:"vol_start"`
	VolStep  int `toml:"vol_step"`

	// Unit hours: time_base + i + (j%2)·time_parity_bonus, floored at 1.
	TimeBase        int `toml:"time_base"`
	TimeParityBonus int `toml:"time_parity_bonus"`

	// Unit cost: base_i = cost_base + cost_step·i, then a ±cost_grad_pct
	// linear gradient across factories.
	CostBase    int `toml:"cost_base"`
	CostStep    int `toml:"cost_step"`
	CostGradPct int `toml:"cost_grad_pct"`

	// Demand: demand_base + demand_i_step·i + demand_l_step·(l%4).
	DemandBase        int `toml:"demand_base"`
	DemandProductStep int `toml:"demand_i_step"`
	DemandStoreStep   int `toml:"demand_l_step"`

	// Per-volume shipping rates.
	TC1Base int `toml:"tc1_base"`
	TC2Base int `toml:"tc2_base"`
	TCStep  int `toml:"tc_step"`

	// Price margin: max(floor(margin_frac·min_prod_i),
	// margin_floor_base + margin_floor_step·i, 1).
	MarginFrac      float64 `toml:"margin_frac"`
	MarginFloorBase int     `toml:"margin_floor_base"`
	MarginFloorStep int     `toml:"margin_floor_step"`

	// Unmet-demand penalty: floor(penalty_frac·price).
	PenaltyFrac float64 `toml:"penalty_frac"`

	// Factory hours: floor(cap_util·total_demand_hours/J) + cap_buffer.
	CapUtil   float64 `toml:"cap_util"`
	CapBuffer int     `toml:"cap_buffer"`

	// Warehouse throughput: floor(wh_capacity_share·total_volume/K).
	WhCapacityShare float64 `toml:"wh_capacity_share"`

	// Fixed activation costs, rent_base + rent_step·(rank+1).
	WhRentBase    int `toml:"wh_rent_base"`
	WhRentStep    int `toml:"wh_rent_step"`
	StoreRentBase int `toml:"store_rent_base"`
	StoreRentStep int `toml:"store_rent_step"`
}

// DefaultGenConfig returns the stock hyper-parameters: values small enough to
// keep instances readable, fixed costs small enough not to drown margins.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		VolStart:          1,
		VolStep:           1,
		TimeBase:          1,
		TimeParityBonus:   1,
		CostBase:          200,
		CostStep:          100,
		CostGradPct:       8,
		DemandBase:        20,
		DemandProductStep: 5,
		DemandStoreStep:   3,
		TC1Base:           8,
		TC2Base:           9,
		TCStep:            2,
		MarginFrac:        0.25,
		MarginFloorBase:   20,
		MarginFloorStep:   5,
		PenaltyFrac:       0.6,
		CapUtil:           0.7,
		CapBuffer:         50,
		WhCapacityShare:   0.5,
		WhRentBase:        2000,
		WhRentStep:        200,
		StoreRentBase:     6000,
		StoreRentStep:     500,
	}
}

// LoadGenConfig reads hyper-parameter overrides from a TOML file. Keys absent
// from the file keep their DefaultGenConfig values.
func LoadGenConfig(path string) (GenConfig, error) {
	cfg := DefaultGenConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return GenConfig{}, fmt.Errorf("dataset: load %s: %w", path, err)
	}
	return cfg, nil
}
