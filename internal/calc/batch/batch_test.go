package batch

import (
	"testing"

	cable "Voltex/internal/calc/cable"
	"Voltex/internal/calc/tables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateSizing(t *testing.T) {
	in := SizingBatchInput{Items: []cable.Input{
		{Current: 10, LengthM: 100, MaxDropV: 5, Material: tables.Copper, AmbientC: 30, NumCores: 2, Method: tables.MethodC},
		{Current: 20, LengthM: 50, MaxDropV: 5, Material: tables.Aluminum, AmbientC: 40, NumCores: 3, Method: tables.MethodA},
	}}
	out, err := CalculateSizing(in)
	require.NoError(t, err)
	require.Len(t, out.Results, 2)
	assert.Equal(t, 10.0, out.Results[0].RecommendedSize)

	single, err := cable.Choose(in.Items[1])
	require.NoError(t, err)
	assert.Equal(t, single, out.Results[1])
}

func TestCalculateSizing_Empty(t *testing.T) {
	_, err := CalculateSizing(SizingBatchInput{})
	assert.Error(t, err)
}

func TestCalculateSizing_BadItemFailsBatch(t *testing.T) {
	in := SizingBatchInput{Items: []cable.Input{
		{Current: 10, LengthM: 100, MaxDropV: 5, Material: tables.Copper},
		{Current: 0, LengthM: 100, MaxDropV: 5, Material: tables.Copper},
	}}
	_, err := CalculateSizing(in)
	assert.ErrorIs(t, err, cable.ErrInvalidInput)
}
