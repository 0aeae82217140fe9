package forecast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
	"github.com/tu-usuario/vaxplan-api/internal/domain/forecast"
)

func testCountry() *entity.Country {
	return &entity.Country{
		ID:               "GTM",
		Name:             "Guatemala",
		Population:       1_000_000,
		AnnualGrowthRate: 0.03,
		Projections: []entity.Projection{
			{Year: 2027, Population: 1_000_000},
			{Year: 2028, Population: 1_030_000},
		},
		TargetGroups: []entity.TargetGroup{
			{ID: "tg-infants", Name: "Menores de 1 año", Percentage: 2.0},
			{ID: "tg-pregnant", Name: "Embarazadas", Percentage: 3.5},
		},
	}
}

func testPrograms() []entity.Program {
	return []entity.Program{
		{
			ID:              "prog-routine",
			Country:         "GTM",
			ProgramCategory: entity.ProgramRoutine,
			ProgramName:     "Esquema regular",
			Vaccines: []entity.ProgramVaccine{
				{
					VaccineID:       "vac-penta",
					VaccineName:     "Pentavalente",
					DosesInSchedule: 2,
					DoseAssignments: map[int]entity.DoseAssignment{
						1: {TargetGroupID: "tg-infants", CoverageRate: 0.90, WastageRate: 0.10},
						2: {TargetGroupID: "tg-infants", CoverageRate: 0.85, WastageRate: 0.10},
					},
				},
			},
		},
	}
}

func testVaccines() map[string]entity.Vaccine {
	return map[string]entity.Vaccine{
		"vac-penta": {ID: "vac-penta", VaccineName: "Pentavalente", DosesPerVial: 10},
	}
}

func TestCalculateUnstratified_AcumulaDosisPorGrupo(t *testing.T) {
	results := forecast.CalculateUnstratified(testCountry(), testPrograms(), testVaccines(), []int{2027, 2028})
	require.Contains(t, results, "vac-penta")

	fc := results["vac-penta"]
	group, ok := fc.TargetGroups["tg-infants"]
	require.True(t, ok)

	// Población objetivo 2027: 1,000,000 * 2% = 20,000.
	// Dosis 1: 20,000 * 0.90 = 18,000; dosis 2: 20,000 * 0.85 = 17,000.
	fy := group.Years[2027]
	assert.InDelta(t, 20_000, fy.TargetPopulation, 1e-6)
	assert.InDelta(t, 35_000, fy.DosesAdministered, 1e-6)
	assert.InDelta(t, 35_000/0.9, fy.DosesWithWastage, 1e-6)

	// 2028 usa la proyección de ese año.
	assert.InDelta(t, 20_600, group.Years[2028].TargetPopulation, 1e-6)
}

func TestCalculateUnstratified_OmiteReferenciasRotas(t *testing.T) {
	programs := testPrograms()
	programs[0].Vaccines = append(programs[0].Vaccines,
		entity.ProgramVaccine{
			VaccineID: "vac-fantasma",
			DoseAssignments: map[int]entity.DoseAssignment{
				1: {TargetGroupID: "tg-infants", CoverageRate: 0.9},
			},
		},
		entity.ProgramVaccine{
			VaccineID: "vac-penta",
			DoseAssignments: map[int]entity.DoseAssignment{
				1: {TargetGroupID: "tg-inexistente", CoverageRate: 0.9},
			},
		},
	)

	results := forecast.CalculateUnstratified(testCountry(), programs, testVaccines(), []int{2027})
	require.Contains(t, results, "vac-penta")
	assert.NotContains(t, results, "vac-fantasma")
	assert.NotContains(t, results["vac-penta"].TargetGroups, "tg-inexistente")
}

func TestCalculateUnstratified_AnioSinProyeccionSeOmite(t *testing.T) {
	results := forecast.CalculateUnstratified(testCountry(), testPrograms(), testVaccines(), []int{2027, 2040})
	group := results["vac-penta"].TargetGroups["tg-infants"]
	assert.Contains(t, group.Years, 2027)
	assert.NotContains(t, group.Years, 2040)
}

func TestApplyUnstratifiedRates_RehaceDerivados(t *testing.T) {
	results := forecast.CalculateUnstratified(testCountry(), testPrograms(), testVaccines(), []int{2027})
	fc := results["vac-penta"]

	forecast.ApplyUnstratifiedRates(fc, "tg-infants", map[int]entity.ForecastYear{
		2027: {CoverageRate: 0.50, WastageRate: 0.20},
	})

	fy := fc.TargetGroups["tg-infants"].Years[2027]
	assert.InDelta(t, 10_000, fy.DosesAdministered, 1e-6)
	assert.InDelta(t, 12_500, fy.DosesWithWastage, 1e-6)
	// La población objetivo no cambia al editar tasas.
	assert.InDelta(t, 20_000, fy.TargetPopulation, 1e-6)
}
