package tables

import "fmt"

// Installation methods from the BS 7671 flat twin-and-earth table the current
// ratings below are taken from.
type Method string

const (
	Method100 Method = "100" // above a plasterboard ceiling
	Method101 Method = "101" // above a plasterboard ceiling, exceeding 100mm
	Method102 Method = "102" // in a stud wall with thermal insulation
	Method103 Method = "103" // in a stud wall with cable touching inner wall
	MethodA   Method = "A"   // enclosed in conduit
	MethodB   Method = "B"   // enclosed in conduit on a wall
	MethodC   Method = "C"   // clipped direct
)

var MethodDescriptions = map[Method]string{
	Method100: "Above a plasterboard ceiling",
	Method101: "Above a plasterboard ceiling, exceeding 100mm",
	Method102: "In a stud wall with thermal insulation",
	Method103: "In a stud wall with cable touching inner wall",
	MethodA:   "Enclosed in conduit",
	MethodB:   "Enclosed in conduit on a wall",
	MethodC:   "Clipped direct",
}

func MethodOf(name string) (Method, error) {
	m := Method(name)
	if _, ok := MethodDescriptions[m]; !ok {
		return "", fmt.Errorf("unknown installation method %q", name)
	}
	return m, nil
}

// RatingRow holds the base current ratings for one cross-section at 30 C
// ambient with 2-3 loaded cores, plus the tabulated voltage drop in mV/A/m.
type RatingRow struct {
	CrossSectionMM2 float64            `json:"cross_section_mm2"`
	RatingA         map[Method]float64 `json:"rating_a"`
	DropMVPerAM     float64            `json:"voltage_drop_mv_per_a_m"`
}

var ratingRows = []RatingRow{
	{1, map[Method]float64{Method100: 13, Method101: 10.5, Method102: 13, Method103: 8, MethodA: 11.5, MethodB: 13, MethodC: 16}, 44},
	{1.5, map[Method]float64{Method100: 16, Method101: 13, Method102: 15, Method103: 10, MethodA: 14, MethodB: 16.5, MethodC: 20}, 29},
	{2.5, map[Method]float64{Method100: 21, Method101: 17, Method102: 20, Method103: 13.5, MethodA: 18, MethodB: 21, MethodC: 27}, 18},
	{4, map[Method]float64{Method100: 27, Method101: 22, Method102: 26, Method103: 17.5, MethodA: 23, MethodB: 27, MethodC: 35}, 11},
	{6, map[Method]float64{Method100: 34, Method101: 27, Method102: 32, Method103: 23, MethodA: 29, MethodB: 35, MethodC: 47}, 7.3},
	{10, map[Method]float64{Method100: 45, Method101: 36, Method102: 42, Method103: 30, MethodA: 38, MethodB: 46, MethodC: 64}, 4.4},
	{16, map[Method]float64{Method100: 57, Method101: 46, Method102: 53, Method103: 38, MethodA: 47, MethodB: 58, MethodC: 85}, 2.8},
}

// BaseRating returns the tabulated rating for an exact cross-section match.
// The table only covers 1..16 mm2; anything else is unrated.
func BaseRating(crossSectionMM2 float64, method Method) (float64, bool) {
	for _, row := range ratingRows {
		if row.CrossSectionMM2 == crossSectionMM2 {
			r, ok := row.RatingA[method]
			return r, ok
		}
	}
	return 0, false
}

func RatingTable() []RatingRow {
	out := make([]RatingRow, len(ratingRows))
	copy(out, ratingRows)
	return out
}

// Conversion factors for ambient temperatures other than +30 C, per insulation
// class (DIN VDE 0298-4 table 17 excerpt). Combinations missing from the
// standard (conductor hotter than insulation allows) are simply absent.
type InsulationClass int

const (
	Class60 InsulationClass = 60
	Class70 InsulationClass = 70
	Class80 InsulationClass = 80
	Class85 InsulationClass = 85
	Class90 InsulationClass = 90
)

var tempFactors = map[InsulationClass]map[float64]float64{
	Class60: {30: 1.00, 40: 0.82, 50: 0.58},
	Class70: {30: 1.00, 40: 0.87, 50: 0.71, 60: 0.50},
	Class80: {30: 1.00, 40: 0.89, 50: 0.77, 60: 0.63, 70: 0.45},
	Class85: {30: 1.00, 40: 0.90, 50: 0.79, 60: 0.67, 70: 0.52, 80: 0.41},
	Class90: {30: 1.00, 40: 0.91, 50: 0.82, 60: 0.71, 70: 0.58},
}

// TempFactor returns the ambient-temperature conversion factor. Unlisted
// ambients fall back to 1.0, matching the reference calculator.
func TempFactor(class InsulationClass, ambientC float64) float64 {
	if f, ok := tempFactors[class][ambientC]; ok {
		return f
	}
	return 1.0
}

func TempFactorTable() map[InsulationClass]map[float64]float64 {
	out := make(map[InsulationClass]map[float64]float64, len(tempFactors))
	for class, row := range tempFactors {
		cp := make(map[float64]float64, len(row))
		for k, v := range row {
			cp[k] = v
		}
		out[class] = cp
	}
	return out
}

// Placement selects the core-count factor column (DIN VDE 0298-4 table 26).
type Placement string

const (
	OpenAir     Placement = "open_air"
	Underground Placement = "underground"
)

var coreFactors = map[Placement]map[int]float64{
	OpenAir:     {2: 1.00, 3: 1.00, 5: 0.75, 7: 0.65, 10: 0.55, 14: 0.50, 24: 0.40},
	Underground: {2: 1.00, 3: 1.00, 5: 0.70, 7: 0.60, 10: 0.45, 14: 0.45, 24: 0.35},
}

// CoreFactor returns the loaded-core conversion factor. Core counts not in the
// table default to 1.0 (no derating assumed).
func CoreFactor(placement Placement, numCores int) float64 {
	if f, ok := coreFactors[placement][numCores]; ok {
		return f
	}
	return 1.0
}

func CoreFactorTable() map[Placement]map[int]float64 {
	out := make(map[Placement]map[int]float64, len(coreFactors))
	for p, row := range coreFactors {
		cp := make(map[int]float64, len(row))
		for k, v := range row {
			cp[k] = v
		}
		out[p] = cp
	}
	return out
}

// MetricSizes is the catalog of standard conductor cross-sections in mm2,
// ascending.
var MetricSizes = []float64{0.5, 0.75, 1.0, 1.5, 2.5, 4, 6, 10, 16, 25, 35, 50, 70, 95, 120, 150, 185, 240, 300, 400}
