package forecast_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
	"github.com/tu-usuario/vaxplan-api/internal/domain/forecast"
)

func TestBuildItemPlan_RecomiendaHastaElMaximo(t *testing.T) {
	// Demanda 100/mes, MOS 1.5/3.0: mínimo 150, máximo 300.
	// Arranca con 200: el cierre proyectado de enero es 100, bajo el mínimo,
	// así que se recomienda ceil(300 - 100) = 200.
	rows := forecast.BuildItemPlan(2027, 100, 200, 1.5, 3.0, nil)
	require.Len(t, rows, 12)

	jan := rows[0]
	assert.Equal(t, "2027-01", jan.Month)
	assert.Equal(t, 200.0, jan.BeginningInv)
	assert.Equal(t, 200.0, jan.RecommendedOrder)
	assert.Equal(t, 200.0, jan.Shipment)
	assert.Equal(t, 300.0, jan.EndingInv)
	assert.False(t, jan.BelowMin)

	// Febrero arrastra el cierre de enero: 300 - 100 = 200, sobre el mínimo,
	// así que no hay recomendación.
	feb := rows[1]
	assert.Equal(t, 300.0, feb.BeginningInv)
	assert.Zero(t, feb.RecommendedOrder)
	assert.Equal(t, 200.0, feb.EndingInv)
}

func TestBuildItemPlan_SobreElMinimoNoOrdena(t *testing.T) {
	rows := forecast.BuildItemPlan(2027, 100, 500, 1.5, 3.0, nil)
	jan := rows[0]
	// Cierre proyectado 400, sobre el mínimo de 150: sin pedido.
	assert.Zero(t, jan.RecommendedOrder)
	assert.Equal(t, 400.0, jan.EndingInv)
}

func TestBuildItemPlan_EmbarqueFijadoReemplazaRecomendacion(t *testing.T) {
	shipments := map[string]float64{"2027-01": 0}
	rows := forecast.BuildItemPlan(2027, 100, 200, 1.5, 3.0, shipments)

	jan := rows[0]
	// La recomendación se calcula igual pero el embarque fijado manda,
	// incluso cuando es cero.
	assert.Equal(t, 200.0, jan.RecommendedOrder)
	assert.Zero(t, jan.Shipment)
	assert.Equal(t, 100.0, jan.EndingInv)
	assert.True(t, jan.BelowMin)
}

func TestBuildItemPlan_MarcaQuiebreDeStock(t *testing.T) {
	shipments := map[string]float64{
		"2027-01": 0, "2027-02": 0,
	}
	rows := forecast.BuildItemPlan(2027, 100, 150, 1.5, 3.0, shipments)

	assert.Equal(t, 50.0, rows[0].EndingInv)
	assert.True(t, rows[0].BelowMin)
	assert.False(t, rows[0].Stockout)

	assert.Equal(t, -50.0, rows[1].EndingInv)
	assert.True(t, rows[1].Stockout)
}

func TestBuildItemPlan_MOSPorDefecto(t *testing.T) {
	rows := forecast.BuildItemPlan(2027, 100, 1000, 0, 0, nil)
	assert.Equal(t, 150.0, rows[0].MinLevel)
	assert.Equal(t, 300.0, rows[0].MaxLevel)
}

func TestBuildItemPlan_DemandaCero(t *testing.T) {
	rows := forecast.BuildItemPlan(2027, 0, 50, 1.5, 3.0, nil)
	// Sin demanda los niveles valen 0 y nunca se recomienda pedido.
	for _, row := range rows {
		assert.Zero(t, row.RecommendedOrder)
		assert.Equal(t, 50.0, row.EndingInv)
	}
}

func TestMonthlyVaccineDemand(t *testing.T) {
	assert.InDelta(t, 1000, forecast.MonthlyVaccineDemand(12_000), 1e-9)
}

func TestMonthlyEquipmentDemand_DesdeDosisAplicadas(t *testing.T) {
	vaccines := map[string]entity.Vaccine{
		"vac-penta": {
			ID: "vac-penta", DosesPerVial: 10,
			AdministrationSyringeID: "eq-ads",
			DilutionSyringeID:       "eq-dil",
		},
	}
	// 900 dosis aplicadas y 1,000 con desperdicio al mes.
	demand := forecast.MonthlyEquipmentDemand(
		map[string]float64{"vac-penta": 900},
		map[string]float64{"vac-penta": 1000},
		vaccines, testEquipment(),
	)

	// La jeringa de administración sigue a las dosis aplicadas, no a las
	// dosis con desperdicio.
	assert.InDelta(t, 900, demand["eq-ads"], 1e-9)
	// Viales del mes sin redondear: 1000/10.
	assert.InDelta(t, 100, demand["eq-dil"], 1e-9)
	// Caja de seguridad sobre las 1,000 jeringas del mes.
	assert.InDelta(t, 1000/(100*1.1), demand["eq-box"], 1e-9)
}

func TestShipmentsCost(t *testing.T) {
	rows := forecast.BuildItemPlan(2027, 100, 200, 1.5, 3.0, nil)
	cost := forecast.ShipmentsCost(rows, decimal.NewFromFloat(2))
	assert.True(t, cost.GreaterThan(decimal.Zero))
}

func TestOverProcurementLimit_EmbarquesContraCompraPropuesta(t *testing.T) {
	shipments := map[string]float64{"2027-01": 600, "2027-03": 500}
	planned := forecast.PlannedShipmentsTotal(shipments)
	assert.Equal(t, 1100.0, planned)

	assert.True(t, forecast.OverProcurementLimit(planned, 1000))
	assert.False(t, forecast.OverProcurementLimit(planned, 2000))
	// Límite cero significa sin compra propuesta en el plan.
	assert.False(t, forecast.OverProcurementLimit(planned, 0))
}

func TestPlanMonths(t *testing.T) {
	months := forecast.PlanMonths(2027)
	require.Len(t, months, 12)
	assert.Equal(t, "2027-01", months[0])
	assert.Equal(t, "2027-12", months[11])
}
