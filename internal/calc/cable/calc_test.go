package cable

import (
	"testing"

	"Voltex/internal/calc/tables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResistance(t *testing.T) {
	r, err := Resistance(100, 2.5, tables.Copper, 20)
	require.NoError(t, err)
	assert.InDelta(t, 0.672, r, 1e-9) // 0.0168 * 100 / 2.5

	// 50 degrees above reference scales rho by 1 + 0.00393*50.
	r70, err := Resistance(100, 2.5, tables.Copper, 70)
	require.NoError(t, err)
	assert.InDelta(t, 0.672*1.1965, r70, 1e-9)
}

func TestResistance_InvalidInput(t *testing.T) {
	_, err := Resistance(0, 2.5, tables.Copper, 20)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = Resistance(100, 0, tables.Copper, 20)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = Resistance(100, 2.5, "steel", 20)
	assert.Error(t, err)
}

func TestVoltageDrop(t *testing.T) {
	assert.InDelta(t, 6.72, VoltageDrop(10, 0.672, false, 0), 1e-9)
	// sqrt(3) * 10 * 0.672 * 0.8
	assert.InDelta(t, 9.3112, VoltageDrop(10, 0.672, true, 0.8), 1e-3)
}

func TestRequiredArea(t *testing.T) {
	// 2 * 0.0168 * 10 * 100 / 5 with rho in Ohm*mm2/m
	area, err := RequiredArea(5.0, 10.0, 100.0, tables.Copper, false, 0.8)
	require.NoError(t, err)
	assert.InDelta(t, 6.72, area, 1e-9)

	// sqrt(3) * 0.0168 * 10 * 100 * 0.8 / 5
	area3, err := RequiredArea(5.0, 10.0, 100.0, tables.Copper, true, 0.8)
	require.NoError(t, err)
	assert.InDelta(t, 4.6557, area3, 1e-3)
}

func TestRequiredArea_InvalidInput(t *testing.T) {
	for _, in := range [][3]float64{{0, 10, 100}, {5, 0, 100}, {5, 10, 0}, {-1, 10, 100}} {
		_, err := RequiredArea(in[0], in[1], in[2], tables.Copper, false, 1)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestPickMetricSize(t *testing.T) {
	size, err := PickMetricSize(3.2)
	require.NoError(t, err)
	assert.Equal(t, 4.0, size)

	size, err = PickMetricSize(0.2)
	require.NoError(t, err)
	assert.Equal(t, 0.5, size)

	size, err = PickMetricSize(400)
	require.NoError(t, err)
	assert.Equal(t, 400.0, size)

	// Beyond the catalog the largest size still comes back, with the
	// advisory error alongside.
	size, err = PickMetricSize(500)
	assert.ErrorIs(t, err, ErrSizeExceedsCatalog)
	assert.Equal(t, 400.0, size)
}

func TestPickAWG(t *testing.T) {
	got := PickAWG(3.2)
	assert.Equal(t, "12", got.Gauge)
	assert.InDelta(t, 3.31, got.AreaMM2, 0.01)

	got = PickAWG(90)
	assert.Equal(t, "4/0", got.Gauge)

	// The AWG path clamps silently with a qualified label.
	got = PickAWG(200)
	assert.Equal(t, ">= 4/0", got.Gauge)
	assert.Equal(t, 107.0, got.AreaMM2)
}

func TestCurrentRating(t *testing.T) {
	r, err := CurrentRating(2.5, 2, tables.MethodC, tables.OpenAir)
	require.NoError(t, err)
	assert.InDelta(t, 27.0, r, 1e-9)

	r, err = CurrentRating(2.5, 5, tables.MethodC, tables.OpenAir)
	require.NoError(t, err)
	assert.InDelta(t, 27.0*0.75, r, 1e-9)

	r, err = CurrentRating(10, 10, tables.MethodA, tables.Underground)
	require.NoError(t, err)
	assert.InDelta(t, 38.0*0.45, r, 1e-9)

	_, err = CurrentRating(25, 2, tables.MethodC, tables.OpenAir)
	assert.ErrorIs(t, err, ErrUnknownCrossSection)
}

func TestChoose(t *testing.T) {
	res, err := Choose(Input{
		Current:  10,
		LengthM:  100,
		MaxDropV: 5,
		Material: tables.Copper,
		AmbientC: 30,
		NumCores: 2,
		Method:   tables.MethodC,
	})
	require.NoError(t, err)

	assert.InDelta(t, 6.72, res.RequiredArea, 1e-9)
	assert.Equal(t, 10.0, res.RecommendedSize)
	assert.InDelta(t, 0.168, res.Resistance, 1e-9)
	assert.InDelta(t, 1.68, res.VoltageDrop, 1e-9)
	assert.InDelta(t, 33.6, res.DropPercent, 1e-9)
	assert.InDelta(t, 64.0, res.BaseRating, 1e-9)
	assert.InDelta(t, 64.0, res.DeratedRating, 1e-9)
	assert.InDelta(t, 10.0, res.AdjustedCurrent, 1e-9)
	assert.False(t, res.RatingExceeded)
	assert.False(t, res.Unrated)
	assert.False(t, res.SizeExceedsCatalog)
}

func TestChoose_UnratedSizeNeverWarns(t *testing.T) {
	// Required area lands above the 16 mm2 rating table; the rating check
	// must not fire against the sentinel.
	res, err := Choose(Input{
		Current:  30,
		LengthM:  100,
		MaxDropV: 2.5,
		Material: tables.Copper,
		AmbientC: 50,
		NumCores: 5,
		Method:   tables.MethodC,
	})
	require.NoError(t, err)
	assert.Equal(t, 50.0, res.RecommendedSize)
	assert.True(t, res.Unrated)
	assert.False(t, res.RatingExceeded)
	assert.Zero(t, res.BaseRating)
	assert.Zero(t, res.DeratedRating)
}

func TestChoose_RatingExceeded(t *testing.T) {
	// Generous drop budget picks a thin cable; the derated ampacity then
	// falls short of the adjusted current.
	res, err := Choose(Input{
		Current:  50,
		LengthM:  10,
		MaxDropV: 10,
		Material: tables.Copper,
		AmbientC: 50,
		NumCores: 5,
		Method:   tables.MethodC,
	})
	require.NoError(t, err)
	assert.Equal(t, 2.5, res.RecommendedSize)
	assert.InDelta(t, 50/(0.77*0.75), res.AdjustedCurrent, 1e-9)
	assert.InDelta(t, 27*0.75*0.77*0.75, res.DeratedRating, 1e-9)
	assert.True(t, res.RatingExceeded)
	assert.Contains(t, res.Notes, "Warning")
}

func TestChoose_SizeExceedsCatalog(t *testing.T) {
	res, err := Choose(Input{
		Current:  500,
		LengthM:  500,
		MaxDropV: 1,
		Material: tables.Aluminum,
		AmbientC: 30,
		NumCores: 2,
		Method:   tables.MethodC,
	})
	require.NoError(t, err)
	assert.Equal(t, 400.0, res.RecommendedSize)
	assert.True(t, res.SizeExceedsCatalog)
}

func TestChoose_InvalidInput(t *testing.T) {
	_, err := Choose(Input{Current: 0, LengthM: 100, MaxDropV: 5, Material: tables.Copper})
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = Choose(Input{Current: 10, LengthM: 100, MaxDropV: 5, Material: tables.Copper, Method: "Z"})
	assert.Error(t, err)
}

func TestChoose_Idempotent(t *testing.T) {
	in := Input{Current: 10, LengthM: 100, MaxDropV: 5, Material: tables.Copper, AmbientC: 40, NumCores: 3, Method: tables.MethodB}
	a, err := Choose(in)
	require.NoError(t, err)
	b, err := Choose(in)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
