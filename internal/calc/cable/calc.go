package cable

import (
	"errors"
	"fmt"
	"math"

	"Voltex/internal/calc/tables"
)

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnknownCrossSection = errors.New("cross-section not in rating table")
	ErrSizeExceedsCatalog  = errors.New("no standard size large enough")
)

// Resistance returns the conductor resistance in Ohm for a one-way length,
// with resistivity corrected to the given conductor temperature.
func Resistance(lengthM, crossSectionMM2 float64, mat tables.Material, tempC float64) (float64, error) {
	if lengthM <= 0 || crossSectionMM2 <= 0 {
		return 0, ErrInvalidInput
	}
	rho, err := tables.ResistivityAt(mat, tempC)
	if err != nil {
		return 0, err
	}
	return rho * lengthM / crossSectionMM2, nil
}

// VoltageDrop is I*R for single-phase/DC and sqrt(3)*I*R*pf for three-phase.
func VoltageDrop(current, resistance float64, threePhase bool, powerFactor float64) float64 {
	if threePhase {
		return math.Sqrt(3) * current * resistance * powerFactor
	}
	return current * resistance
}

// RequiredArea returns the minimum cross-section in mm2 that keeps the drop
// within maxDropV. Single-phase carries the loop factor 2 (out + return);
// three-phase uses sqrt(3) and the power factor.
func RequiredArea(maxDropV, current, lengthM float64, mat tables.Material, threePhase bool, powerFactor float64) (float64, error) {
	if maxDropV <= 0 || current <= 0 || lengthM <= 0 {
		return 0, ErrInvalidInput
	}
	rho, err := tables.ResistivityAt(mat, 20.0)
	if err != nil {
		return 0, err
	}
	if threePhase {
		return math.Sqrt(3) * rho * current * lengthM * powerFactor / maxDropV, nil
	}
	return 2 * rho * current * lengthM / maxDropV, nil
}

// PickMetricSize returns the smallest standard metric size covering the
// required area. When even the largest catalog entry is too small it is
// returned anyway together with ErrSizeExceedsCatalog, so the caller can warn
// but still show a number.
func PickMetricSize(areaMM2 float64) (float64, error) {
	for _, s := range tables.MetricSizes {
		if s >= areaMM2 {
			return s, nil
		}
	}
	return tables.MetricSizes[len(tables.MetricSizes)-1], ErrSizeExceedsCatalog
}

// PickAWG returns the smallest AWG entry covering the required area. Above
// 4/0 it clamps to the largest entry with a ">= 4/0" label.
func PickAWG(areaMM2 float64) tables.AWGSize {
	for _, s := range tables.AWGSizes {
		if s.AreaMM2 >= areaMM2 {
			return s
		}
	}
	last := tables.AWGSizes[len(tables.AWGSizes)-1]
	return tables.AWGSize{Gauge: ">= " + last.Gauge, AreaMM2: last.AreaMM2}
}

// CurrentRating returns the core-count-derated rating for an exact table
// cross-section. A lookup miss returns ErrUnknownCrossSection; callers treat
// that as "cannot limit the choice", not as zero amps.
func CurrentRating(crossSectionMM2 float64, numCores int, method tables.Method, placement tables.Placement) (float64, error) {
	base, ok := tables.BaseRating(crossSectionMM2, method)
	if !ok {
		return 0, fmt.Errorf("%w: %g mm2", ErrUnknownCrossSection, crossSectionMM2)
	}
	return base * tables.CoreFactor(placement, numCores), nil
}

type Input struct {
	Current     float64         `json:"current_a"`
	LengthM     float64         `json:"length_m"`
	MaxDropV    float64         `json:"max_voltage_drop_v"`
	Material    tables.Material `json:"material"`
	AmbientC    float64         `json:"ambient_temp_c"`
	NumCores    int             `json:"num_cores"`
	Method      tables.Method   `json:"installation_method"`
	ThreePhase  bool            `json:"three_phase"`
	PowerFactor float64         `json:"power_factor"`
}

type Result struct {
	AdjustedCurrent    float64 `json:"adjusted_current_a"`
	TempFactor         float64 `json:"temp_factor"`
	CoreFactor         float64 `json:"core_factor"`
	RequiredArea       float64 `json:"required_area_mm2"`
	RecommendedSize    float64 `json:"recommended_size_mm2"`
	Resistance         float64 `json:"resistance_ohm"`
	VoltageDrop        float64 `json:"voltage_drop_v"`
	DropPercent        float64 `json:"drop_percent_of_max"`
	BaseRating         float64 `json:"base_rating_a"`
	DeratedRating      float64 `json:"derated_rating_a"`
	Unrated            bool    `json:"unrated"`
	SizeExceedsCatalog bool    `json:"size_exceeds_catalog"`
	RatingExceeded     bool    `json:"rating_exceeded"`
	Notes              string  `json:"notes"`
}

// Choose runs the full cable selection: derate the operating current, size the
// conductor from the voltage-drop constraint (nominal current, per the
// reference procedure), then check the chosen size's derated ampacity against
// the adjusted current. Rating problems are reported in the result, never as
// errors.
func Choose(in Input) (Result, error) {
	if in.Current <= 0 || in.LengthM <= 0 || in.MaxDropV <= 0 {
		return Result{}, ErrInvalidInput
	}
	if in.Method == "" {
		in.Method = tables.MethodC
	} else if _, err := tables.MethodOf(string(in.Method)); err != nil {
		return Result{}, err
	}
	if in.NumCores <= 0 {
		in.NumCores = 2
	}
	if in.PowerFactor <= 0 || in.PowerFactor > 1 {
		in.PowerFactor = 0.8
	}

	// Chooser derating uses the 80 C insulation column and open-air core
	// factors, as in the reference tables.
	ft := tables.TempFactor(tables.Class80, in.AmbientC)
	fc := tables.CoreFactor(tables.OpenAir, in.NumCores)
	adjusted := in.Current / (ft * fc)

	required, err := RequiredArea(in.MaxDropV, in.Current, in.LengthM, in.Material, in.ThreePhase, in.PowerFactor)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		AdjustedCurrent: adjusted,
		TempFactor:      ft,
		CoreFactor:      fc,
		RequiredArea:    required,
	}

	size, err := PickMetricSize(required)
	if err != nil {
		if !errors.Is(err, ErrSizeExceedsCatalog) {
			return Result{}, err
		}
		res.SizeExceedsCatalog = true
	}
	res.RecommendedSize = size

	// Actual performance of the chosen size, at the 20 C reference
	// resistivity the rating tables assume.
	r, err := Resistance(in.LengthM, size, in.Material, 20.0)
	if err != nil {
		return Result{}, err
	}
	res.Resistance = r
	res.VoltageDrop = VoltageDrop(in.Current, r, in.ThreePhase, in.PowerFactor)
	res.DropPercent = res.VoltageDrop / in.MaxDropV * 100.0

	base, err := CurrentRating(size, in.NumCores, in.Method, tables.OpenAir)
	derated := math.Inf(1)
	if err != nil {
		if !errors.Is(err, ErrUnknownCrossSection) {
			return Result{}, err
		}
		// No table entry for this size: the rating can never be the
		// binding constraint. Report zeroed rating fields instead of a
		// non-encodable infinity.
		res.Unrated = true
	} else {
		derated = base * ft * fc
		res.BaseRating = base
		res.DeratedRating = derated
	}

	res.Notes = fmt.Sprintf("Recommended %g mm2 for %g A over %g m.", size, in.Current, in.LengthM)
	if adjusted > derated {
		res.RatingExceeded = true
		res.Notes += fmt.Sprintf(" Warning: adjusted current %.2f A exceeds the derated rating %.2f A.", adjusted, derated)
	}
	if res.SizeExceedsCatalog {
		res.Notes += " Warning: required area exceeds the largest catalog size."
	}
	return res, nil
}
