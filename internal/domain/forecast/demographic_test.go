package forecast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/vaxplan-api/internal/domain/forecast"
)

// ──────────────────────────────────────────────────────────────────────────────
// TestProjectPopulation_CrecimientoCompuesto valida el encadenado año a año:
// 1,000,000 al 3% produce 1,030,000 el primer año proyectado y 1,060,900 el
// segundo, porque cada año parte del redondeo del anterior.
// ──────────────────────────────────────────────────────────────────────────────
func TestProjectPopulation_CrecimientoCompuesto(t *testing.T) {
	projections := forecast.ProjectPopulation(1_000_000, 0.03, 2027, 5)
	require.Len(t, projections, 5)

	assert.Equal(t, 2027, projections[0].Year)
	assert.Equal(t, int64(1_030_000), projections[0].Population)
	assert.Equal(t, int64(1_060_900), projections[1].Population)
	assert.Equal(t, 2031, projections[4].Year)
}

func TestProjectPopulation_CrecimientoNegativo(t *testing.T) {
	projections := forecast.ProjectPopulation(1000, -0.10, 2027, 2)
	require.Len(t, projections, 2)
	assert.Equal(t, int64(900), projections[0].Population)
	assert.Equal(t, int64(810), projections[1].Population)
}

func TestProjectPopulation_RedondeaCadaAnio(t *testing.T) {
	// 101 * 1.015 = 102.515 → 103; el segundo año parte de 103, no de 102.515.
	projections := forecast.ProjectPopulation(101, 0.015, 2027, 2)
	require.Len(t, projections, 2)
	assert.Equal(t, int64(103), projections[0].Population)
	assert.Equal(t, int64(105), projections[1].Population)
}

func TestYears_Horizonte(t *testing.T) {
	assert.Equal(t, []int{2027, 2028, 2029}, forecast.Years(2027, 3))
	assert.Empty(t, forecast.Years(2027, 0))
}
