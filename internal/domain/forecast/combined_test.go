package forecast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
	"github.com/tu-usuario/vaxplan-api/internal/domain/forecast"
)

// ──────────────────────────────────────────────────────────────────────────────
// TestCalculateCombined_PromedioPonderado valida el escenario de referencia:
// dos métodos al 50% con 1000/1111.0 y 840/942.2 dosis producen 920 dosis
// administradas y 1026.6 con desperdicio.
// ──────────────────────────────────────────────────────────────────────────────
func TestCalculateCombined_PromedioPonderado(t *testing.T) {
	inputs := map[string]map[entity.ForecastMethod]entity.CombinedInput{
		"vac-penta": {
			entity.MethodUnstratified:  {Weight: 0.5},
			entity.MethodConsumptionHc: {Weight: 0.5},
		},
	}
	methodData := map[string]map[entity.ForecastMethod]entity.MethodDoses{
		"vac-penta": {
			entity.MethodUnstratified: {
				DosesAdministered: map[int]float64{2027: 1000},
				DosesWithWastage:  map[int]float64{2027: 1111.0},
			},
			entity.MethodConsumptionHc: {
				DosesAdministered: map[int]float64{2027: 840},
				DosesWithWastage:  map[int]float64{2027: 942.2},
			},
		},
	}

	fc := forecast.CalculateCombined("GTM", inputs, methodData, []int{2027})
	require.Contains(t, fc.Results, "vac-penta")

	cy := fc.Results["vac-penta"].Years[2027]
	assert.InDelta(t, 920, cy.FinalAdministered, 1e-9)
	assert.InDelta(t, 1026.6, cy.FinalWithWastage, 1e-9)
	assert.InDelta(t, 1.0, cy.TotalWeight, 1e-9)
	assert.Empty(t, fc.Warnings)
}

func TestCalculateCombined_MetodoSinDatosAportaCero(t *testing.T) {
	inputs := map[string]map[entity.ForecastMethod]entity.CombinedInput{
		"vac-penta": {
			entity.MethodUnstratified: {Weight: 0.5},
			entity.MethodManual:       {Weight: 0.5}, // sin datos cargados
		},
	}
	methodData := map[string]map[entity.ForecastMethod]entity.MethodDoses{
		"vac-penta": {
			entity.MethodUnstratified: {
				DosesAdministered: map[int]float64{2027: 1000},
				DosesWithWastage:  map[int]float64{2027: 1100},
			},
		},
	}

	fc := forecast.CalculateCombined("GTM", inputs, methodData, []int{2027})
	cy := fc.Results["vac-penta"].Years[2027]

	// El método sin datos aporta cero pero su peso sí cuenta en el total.
	assert.InDelta(t, 500, cy.FinalAdministered, 1e-9)
	assert.InDelta(t, 1.0, cy.TotalWeight, 1e-9)
}

func TestCalculateCombined_AdviertePesosQueNoSuman1(t *testing.T) {
	inputs := map[string]map[entity.ForecastMethod]entity.CombinedInput{
		"vac-penta": {
			entity.MethodUnstratified: {Weight: 0.3},
		},
	}
	fc := forecast.CalculateCombined("GTM", inputs, nil, []int{2027})
	require.Len(t, fc.Warnings, 1)
	assert.Contains(t, fc.Warnings[0], "vac-penta")
}

func TestCollectUnstratified_SumaGruposObjetivo(t *testing.T) {
	results := forecast.CalculateUnstratified(testCountry(), testPrograms(), testVaccines(), []int{2027})
	flat := forecast.CollectUnstratified(results)

	require.Contains(t, flat, "vac-penta")
	assert.InDelta(t, 35_000, flat["vac-penta"].DosesAdministered[2027], 1e-6)
}

func TestCollectManual_Aplana(t *testing.T) {
	manual := map[string]*entity.ManualForecast{
		"vac-penta": {
			VaccineID: "vac-penta",
			Years: map[int]entity.ManualYear{
				2027: {DosesAdministered: 500, DosesWithWastage: 550},
			},
		},
	}
	flat := forecast.CollectManual(manual)
	assert.InDelta(t, 500, flat["vac-penta"].DosesAdministered[2027], 1e-9)
	assert.InDelta(t, 550, flat["vac-penta"].DosesWithWastage[2027], 1e-9)
}
