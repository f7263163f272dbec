package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResistivityAt(t *testing.T) {
	rho, err := ResistivityAt(Copper, 20)
	require.NoError(t, err)
	assert.InDelta(t, 0.0168, rho, 1e-12)

	rho, err = ResistivityAt(Aluminum, 40)
	require.NoError(t, err)
	assert.InDelta(t, 0.0282*(1+0.00403*20), rho, 1e-12)

	_, err = ResistivityAt("steel", 20)
	assert.Error(t, err)
}

func TestMaterialOf(t *testing.T) {
	m, err := MaterialOf("copper")
	require.NoError(t, err)
	assert.Equal(t, Copper, m)
	_, err = MaterialOf("gold")
	assert.Error(t, err)
}

func TestBaseRating(t *testing.T) {
	r, ok := BaseRating(2.5, MethodC)
	require.True(t, ok)
	assert.Equal(t, 27.0, r)

	r, ok = BaseRating(1, Method103)
	require.True(t, ok)
	assert.Equal(t, 8.0, r)

	_, ok = BaseRating(25, MethodC)
	assert.False(t, ok)
	_, ok = BaseRating(2.4, MethodC)
	assert.False(t, ok)
}

func TestTempFactor(t *testing.T) {
	assert.Equal(t, 0.89, TempFactor(Class80, 40))
	assert.Equal(t, 1.00, TempFactor(Class80, 30))
	assert.Equal(t, 0.41, TempFactor(Class85, 80))
	// Unlisted ambient and combinations absent from the standard fall back
	// to no derating.
	assert.Equal(t, 1.0, TempFactor(Class80, 35))
	assert.Equal(t, 1.0, TempFactor(Class60, 60))
}

func TestCoreFactor(t *testing.T) {
	assert.Equal(t, 1.00, CoreFactor(OpenAir, 2))
	assert.Equal(t, 0.65, CoreFactor(OpenAir, 7))
	assert.Equal(t, 0.45, CoreFactor(Underground, 10))
	assert.Equal(t, 1.0, CoreFactor(OpenAir, 4))
}

func TestMetricSizesAscending(t *testing.T) {
	for i := 1; i < len(MetricSizes); i++ {
		assert.Greater(t, MetricSizes[i], MetricSizes[i-1])
	}
}

func TestAWGTable(t *testing.T) {
	require.NotEmpty(t, AWGSizes)
	assert.Equal(t, "24", AWGSizes[0].Gauge)
	assert.Equal(t, "4/0", AWGSizes[len(AWGSizes)-1].Gauge)
	assert.Equal(t, 107.0, AWGSizes[len(AWGSizes)-1].AreaMM2)

	for i := 1; i < len(AWGSizes); i++ {
		assert.Greater(t, AWGSizes[i].AreaMM2, AWGSizes[i-1].AreaMM2,
			"AWG table must ascend by area: %s -> %s", AWGSizes[i-1].Gauge, AWGSizes[i].Gauge)
	}

	// Spot checks against published areas.
	var byGauge = map[string]float64{}
	for _, s := range AWGSizes {
		byGauge[s.Gauge] = s.AreaMM2
	}
	assert.InDelta(t, 2.08, byGauge["14"], 0.01)
	assert.InDelta(t, 3.31, byGauge["12"], 0.01)
	assert.InDelta(t, 5.26, byGauge["10"], 0.01)
	assert.InDelta(t, 53.5, byGauge["1/0"], 1e-9)
}

func TestTableCopiesAreIndependent(t *testing.T) {
	tf := TempFactorTable()
	tf[Class80][40] = 0.0
	assert.Equal(t, 0.89, TempFactor(Class80, 40))

	cf := CoreFactorTable()
	cf[OpenAir][7] = 0.0
	assert.Equal(t, 0.65, CoreFactor(OpenAir, 7))
}
