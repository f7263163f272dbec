package tables

import (
	"fmt"
	"math"
	"sort"
)

type AWGSize struct {
	Gauge   string  `json:"awg"`
	AreaMM2 float64 `json:"area_mm2"`
}

// AWGSizes covers 24 AWG down to 4/0, ascending by area. Built once at init.
var AWGSizes = buildAWGTable()

// awgArea computes the cross-section in mm2 for a numeric gauge via
// d(inch) = 0.005 * 92^((36-g)/39).
func awgArea(gauge int) float64 {
	dInch := 0.005 * math.Pow(92, float64(36-gauge)/39.0)
	dM := dInch * 0.0254
	return math.Pi * dM * dM / 4.0 * 1e6
}

func buildAWGTable() []AWGSize {
	var rows []AWGSize
	for g := 24; g >= 1; g-- {
		rows = append(rows, AWGSize{Gauge: fmt.Sprintf("%d", g), AreaMM2: awgArea(g)})
	}
	// The 0-gauge steps do not follow the formula cleanly; use the standard
	// published areas.
	rows = append(rows,
		AWGSize{Gauge: "1/0", AreaMM2: 53.5},
		AWGSize{Gauge: "2/0", AreaMM2: 67.4},
		AWGSize{Gauge: "3/0", AreaMM2: 85.0},
		AWGSize{Gauge: "4/0", AreaMM2: 107.0},
	)
	sort.Slice(rows, func(i, j int) bool { return rows[i].AreaMM2 < rows[j].AreaMM2 })
	return rows
}
