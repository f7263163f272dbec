package wire

import (
	"testing"

	"Voltex/internal/calc/cable"
	"Voltex/internal/calc/tables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculate_PowerLoad(t *testing.T) {
	res, err := Calculate(Input{
		SupplyVoltage:  24,
		OneWayLengthM:  10,
		Material:       tables.Copper,
		ConductorC:     30,
		ParallelPerLeg: 1,
		LoadPowerW:     96,
		MaxDropPct:     3,
	})
	require.NoError(t, err)

	assert.InDelta(t, 4.0, res.LoadCurrent, 1e-9) // 96 W / 24 V
	assert.InDelta(t, 20.0, res.LoopLengthM, 1e-9)
	assert.InDelta(t, 0.72, res.AllowedDropV, 1e-9)

	rhoT := 0.0168 * (1 + 0.00393*10)
	assert.InDelta(t, rhoT, res.ResistivityAtT, 1e-12)
	assert.InDelta(t, rhoT*20*4/0.72, res.RequiredAreaMM2, 1e-9)
	assert.InDelta(t, 1.94, res.RequiredAreaMM2, 0.01)

	assert.Equal(t, 2.5, res.Metric.AreaMM2)
	assert.InDelta(t, rhoT*20/2.5, res.Metric.LoopResistance, 1e-9)
	assert.InDelta(t, 4*rhoT*20/2.5, res.Metric.VoltageDrop, 1e-9)
	assert.InDelta(t, 24-res.Metric.VoltageDrop, res.Metric.LoadVoltage, 1e-9)
	assert.InDelta(t, 16*rhoT*20/2.5, res.Metric.WireLossW, 1e-9)

	assert.Equal(t, "14", res.AWG.Label)
}

func TestCalculate_CurrentLoadAndParallel(t *testing.T) {
	res, err := Calculate(Input{
		SupplyVoltage:  48,
		OneWayLengthM:  25,
		Material:       tables.Aluminum,
		ConductorC:     20,
		ParallelPerLeg: 2,
		LoadCurrentA:   30,
		MaxDropPct:     2,
	})
	require.NoError(t, err)

	assert.InDelta(t, 30.0, res.LoadCurrent, 1e-9)
	assert.InDelta(t, 0.96, res.AllowedDropV, 1e-9)
	// rho20 * 50 m loop * 30 A / (2 parallel * 0.96 V)
	assert.InDelta(t, 0.0282*50*30/(2*0.96), res.RequiredAreaMM2, 1e-9)

	// Parallel conductors halve the loop resistance of the chosen size.
	effArea := res.Metric.AreaMM2 * 2
	assert.InDelta(t, 0.0282*50/effArea, res.Metric.LoopResistance, 1e-9)
	assert.LessOrEqual(t, res.Metric.VoltageDrop, res.AllowedDropV)
}

func TestCalculate_InvalidInput(t *testing.T) {
	_, err := Calculate(Input{SupplyVoltage: 0, OneWayLengthM: 10, MaxDropPct: 3, LoadCurrentA: 4})
	assert.ErrorIs(t, err, cable.ErrInvalidInput)

	_, err = Calculate(Input{SupplyVoltage: 24, OneWayLengthM: 10, MaxDropPct: 3})
	assert.ErrorIs(t, err, cable.ErrInvalidInput, "no load given")
}

func TestCalculate_Idempotent(t *testing.T) {
	in := Input{SupplyVoltage: 24, OneWayLengthM: 10, Material: tables.Copper, LoadPowerW: 96, MaxDropPct: 3}
	a, err := Calculate(in)
	require.NoError(t, err)
	b, err := Calculate(in)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
