package forecast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
	"github.com/tu-usuario/vaxplan-api/internal/domain/forecast"
)

func TestAvgMonthlyConsumption_IgnoraMesesIncompletos(t *testing.T) {
	monthly := map[string]entity.MonthlyConsumption{
		"2026-01": {Consumption: 800, ReportingRate: 0.80}, // 1000
		"2026-02": {Consumption: 900, ReportingRate: 0.90}, // 1000
		"2026-03": {Consumption: 0, ReportingRate: 0.95},   // sin consumo, fuera
		"2026-04": {Consumption: 500, ReportingRate: 0},    // sin tasa, fuera
	}
	assert.InDelta(t, 1000, forecast.AvgMonthlyConsumption(monthly), 1e-9)
}

func TestAvgMonthlyConsumption_SinMesesValidos(t *testing.T) {
	assert.Zero(t, forecast.AvgMonthlyConsumption(nil))
	assert.Zero(t, forecast.AvgMonthlyConsumption(map[string]entity.MonthlyConsumption{
		"2026-01": {Consumption: 0, ReportingRate: 0},
	}))
}

func TestCalculateConsumption_CompuestoDesdeSegundoAnio(t *testing.T) {
	data := map[string]entity.VaccineConsumptionData{
		"vac-penta": {
			VaccineID:      "vac-penta",
			VaccineName:    "Pentavalente",
			AvgWastageRate: 0.10,
			MonthlyData: map[string]entity.MonthlyConsumption{
				"2026-01": {Consumption: 1000, ReportingRate: 1.0},
			},
		},
	}

	fc := forecast.CalculateConsumption("GTM", entity.ConsumptionHealthCenter, 0.03, data, []int{2027, 2028, 2029})
	require.Contains(t, fc.Results, "vac-penta")
	vr := fc.Results["vac-penta"]

	// Promedio mensual 1000 → anual 12,000. El primer año no multiplica.
	assert.InDelta(t, 12_000, vr.Years[2027].DosesAdministered, 1e-6)
	assert.InDelta(t, 12_360, vr.Years[2028].DosesAdministered, 1e-6)
	assert.InDelta(t, 12_730.8, vr.Years[2029].DosesAdministered, 1e-6)

	// Desperdicio con tasa promedio única por vacuna.
	assert.InDelta(t, 12_000/0.9, vr.Years[2027].DosesWithWastage, 1e-6)
}

func TestCalculateConsumption_OmiteVacunasSinMesesValidos(t *testing.T) {
	data := map[string]entity.VaccineConsumptionData{
		"vac-penta": {
			VaccineID: "vac-penta",
			MonthlyData: map[string]entity.MonthlyConsumption{
				"2026-01": {Consumption: 1000, ReportingRate: 1.0},
			},
		},
		"vac-bcg": {
			VaccineID: "vac-bcg",
			MonthlyData: map[string]entity.MonthlyConsumption{
				"2026-01": {Consumption: 0, ReportingRate: 0.9},
				"2026-02": {Consumption: 500, ReportingRate: 0},
			},
		},
	}

	fc := forecast.CalculateConsumption("GTM", entity.ConsumptionHealthCenter, 0.03, data, []int{2027})

	// Sin meses reportables la vacuna no aparece, en vez de proyectar ceros.
	assert.Contains(t, fc.Results, "vac-penta")
	assert.NotContains(t, fc.Results, "vac-bcg")
}

func TestApplyConsumptionWastage_RehaceTodosLosAnios(t *testing.T) {
	data := map[string]entity.VaccineConsumptionData{
		"vac-penta": {
			VaccineID:      "vac-penta",
			AvgWastageRate: 0.10,
			MonthlyData: map[string]entity.MonthlyConsumption{
				"2026-01": {Consumption: 1000, ReportingRate: 1.0},
			},
		},
	}
	fc := forecast.CalculateConsumption("GTM", entity.ConsumptionSupplyChain, 0, data, []int{2027, 2028})

	forecast.ApplyConsumptionWastage(fc, "vac-penta", 0.20)

	vr := fc.Results["vac-penta"]
	assert.Equal(t, 0.20, vr.AvgWastageRate)
	assert.InDelta(t, 12_000/0.8, vr.Years[2027].DosesWithWastage, 1e-6)
	assert.InDelta(t, 12_000/0.8, vr.Years[2028].DosesWithWastage, 1e-6)
	// Las dosis administradas no cambian al editar desperdicio.
	assert.InDelta(t, 12_000, vr.Years[2027].DosesAdministered, 1e-6)
}
