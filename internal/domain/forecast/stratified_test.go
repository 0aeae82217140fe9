package forecast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
	"github.com/tu-usuario/vaxplan-api/internal/domain/forecast"
)

func testStrata() []entity.Stratum {
	return []entity.Stratum{
		{ID: "str-urban", Name: "Urbano", Percentages: map[int]float64{2027: 60}},
		{ID: "str-rural", Name: "Rural", Percentages: map[int]float64{2027: 40}},
	}
}

func TestCalculateStratified_RepartePoblacionPorEstrato(t *testing.T) {
	params := map[entity.StratumKey]entity.StratumParams{
		{StratumID: "str-urban", ProgramID: "prog-routine"}: {CoverageRate: 0.95, WastageRate: 0.05},
		{StratumID: "str-rural", ProgramID: "prog-routine"}: {CoverageRate: 0.70, WastageRate: 0.15},
	}

	fc := forecast.CalculateStratified(testCountry(), testPrograms(), testVaccines(), testStrata(), params, []int{2027})
	require.Empty(t, fc.Warnings)

	byVaccine := fc.Results[entity.ProgramRoutine]
	require.Contains(t, byVaccine, "vac-penta")
	vr := byVaccine["vac-penta"]

	urban := vr.Strata["str-urban"].TargetGroups["tg-infants"].Years[2027]
	// 20,000 * 60% = 12,000 en el estrato; dos dosis a 0.95 = 22,800.
	assert.InDelta(t, 12_000, urban.TargetPopulation, 1e-6)
	assert.InDelta(t, 22_800, urban.DosesAdministered, 1e-6)
	assert.InDelta(t, 22_800/0.95, urban.DosesWithWastage, 1e-6)

	rural := vr.Strata["str-rural"].TargetGroups["tg-infants"].Years[2027]
	assert.InDelta(t, 8_000, rural.TargetPopulation, 1e-6)
	assert.InDelta(t, 11_200, rural.DosesAdministered, 1e-6)
}

func TestCalculateStratified_SinParametrosProduceCero(t *testing.T) {
	// Ningún parámetro registrado: cobertura y desperdicio valen 0.
	fc := forecast.CalculateStratified(testCountry(), testPrograms(), testVaccines(), testStrata(), nil, []int{2027})

	vr := fc.Results[entity.ProgramRoutine]["vac-penta"]
	urban := vr.Strata["str-urban"].TargetGroups["tg-infants"].Years[2027]
	assert.Zero(t, urban.DosesAdministered)
	assert.Zero(t, urban.DosesWithWastage)
	// La población del estrato sí se calcula aunque no haya tasas.
	assert.InDelta(t, 12_000, urban.TargetPopulation, 1e-6)
}

func TestCalculateStratified_AdvierteSobre100PorCiento(t *testing.T) {
	strata := []entity.Stratum{
		{ID: "a", Name: "A", Percentages: map[int]float64{2027: 70}},
		{ID: "b", Name: "B", Percentages: map[int]float64{2027: 45}},
	}
	fc := forecast.CalculateStratified(testCountry(), testPrograms(), testVaccines(), strata, nil, []int{2027})

	// Exceder el 100% advierte pero no bloquea el cálculo.
	require.Len(t, fc.Warnings, 1)
	assert.Contains(t, fc.Warnings[0], "2027")
	assert.NotEmpty(t, fc.Results)
}
