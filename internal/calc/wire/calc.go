package wire

import (
	"fmt"

	"Voltex/internal/calc/cable"
	"Voltex/internal/calc/tables"
)

// DC voltage-drop and wire-gauge selector. The load may be given either as
// power (current is derived as P/V) or directly as current; the allowed drop
// is a percentage of the supply voltage.

type Input struct {
	SupplyVoltage  float64         `json:"supply_voltage_v"`
	OneWayLengthM  float64         `json:"one_way_length_m"`
	Material       tables.Material `json:"material"`
	ConductorC     float64         `json:"conductor_temp_c"`
	ParallelPerLeg int             `json:"parallel_per_leg"`
	LoadPowerW     float64         `json:"load_power_w"`
	LoadCurrentA   float64         `json:"load_current_a"`
	MaxDropPct     float64         `json:"max_drop_pct"`
}

// Recommendation reports the performance of one chosen conductor size.
type Recommendation struct {
	Label          string  `json:"label"`
	AreaMM2        float64 `json:"area_mm2"`
	LoopResistance float64 `json:"loop_resistance_ohm"`
	VoltageDrop    float64 `json:"voltage_drop_v"`
	DropPct        float64 `json:"drop_pct"`
	WireLossW      float64 `json:"wire_loss_w"`
	LoadVoltage    float64 `json:"load_voltage_v"`
}

type Result struct {
	LoadCurrent     float64        `json:"load_current_a"`
	LoopLengthM     float64        `json:"loop_length_m"`
	ResistivityAtT  float64        `json:"resistivity_ohm_mm2_per_m"`
	AllowedDropV    float64        `json:"allowed_drop_v"`
	RequiredAreaMM2 float64        `json:"required_area_per_conductor_mm2"`
	Metric          Recommendation `json:"metric"`
	AWG             Recommendation `json:"awg"`
	Notes           string         `json:"notes"`
}

func Calculate(in Input) (Result, error) {
	if in.SupplyVoltage <= 0 || in.OneWayLengthM <= 0 || in.MaxDropPct <= 0 {
		return Result{}, cable.ErrInvalidInput
	}
	if in.ParallelPerLeg < 1 {
		in.ParallelPerLeg = 1
	}
	if in.ConductorC == 0 {
		in.ConductorC = 30.0
	}

	current := in.LoadCurrentA
	if current <= 0 {
		current = in.LoadPowerW / in.SupplyVoltage
	}
	if current <= 0 {
		return Result{}, cable.ErrInvalidInput
	}

	rhoT, err := tables.ResistivityAt(in.Material, in.ConductorC)
	if err != nil {
		return Result{}, err
	}

	loopLen := 2.0 * in.OneWayLengthM
	allowedDrop := in.SupplyVoltage * in.MaxDropPct / 100.0
	required := rhoT * loopLen * current / (float64(in.ParallelPerLeg) * allowedDrop)

	res := Result{
		LoadCurrent:     current,
		LoopLengthM:     loopLen,
		ResistivityAtT:  rhoT,
		AllowedDropV:    allowedDrop,
		RequiredAreaMM2: required,
		Notes:           "DC loop calculation; supply and return legs assumed identical.",
	}

	metricSize, err := cable.PickMetricSize(required)
	if err != nil {
		res.Notes += " Warning: required area exceeds the largest metric size."
	}
	res.Metric = perform(fmt.Sprintf("%g mm2", metricSize), metricSize, in, rhoT, loopLen, current)

	awg := cable.PickAWG(required)
	res.AWG = perform(awg.Gauge, awg.AreaMM2, in, rhoT, loopLen, current)
	res.AWG.Label = awg.Gauge

	return res, nil
}

func perform(label string, areaMM2 float64, in Input, rhoT, loopLen, current float64) Recommendation {
	effArea := areaMM2 * float64(in.ParallelPerLeg)
	rLoop := rhoT * loopLen / effArea
	drop := current * rLoop
	return Recommendation{
		Label:          label,
		AreaMM2:        areaMM2,
		LoopResistance: rLoop,
		VoltageDrop:    drop,
		DropPct:        100.0 * drop / in.SupplyVoltage,
		WireLossW:      current * current * rLoop,
		LoadVoltage:    in.SupplyVoltage - drop,
	}
}
