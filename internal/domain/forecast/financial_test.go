package forecast_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
	"github.com/tu-usuario/vaxplan-api/internal/domain/forecast"
)

func TestDeriveEquipmentUsage_CadenaCompleta(t *testing.T) {
	vaccines := map[string]entity.Vaccine{
		"vac-penta": {
			ID: "vac-penta", DosesPerVial: 10,
			AdministrationSyringeID: "eq-ads",
			DilutionSyringeID:       "eq-dil",
		},
	}

	usage := forecast.DeriveEquipmentUsage(map[string]float64{"vac-penta": 995}, vaccines, testEquipment())

	assert.InDelta(t, 995, usage["eq-ads"], 1e-9)
	// La dilución redondea hacia arriba: ceil(995/10) = 100 viales.
	assert.InDelta(t, 100, usage["eq-dil"], 1e-9)
	// Caja de seguridad sobre 1,095 jeringas.
	assert.InDelta(t, 1095/(100*1.1), usage["eq-box"], 1e-9)
}

func TestResolveUsage_DerivadoMandaSobreManual(t *testing.T) {
	got, source := forecast.ResolveUsage(120, true, 80)
	assert.Equal(t, 120.0, got)
	assert.Equal(t, forecast.UsageDerived, source)

	got, source = forecast.ResolveUsage(0, false, 80)
	assert.Equal(t, 80.0, got)
	assert.Equal(t, forecast.UsageManual, source)
}

func TestBOYInventory(t *testing.T) {
	boy := forecast.BOYInventory(entity.InventoryInput{OnHand: 500, ExpShipments: 200}, 300)
	assert.Equal(t, 400.0, boy)

	// El BOY puede quedar negativo; la compra recomendada lo absorbe.
	assert.Equal(t, -100.0, forecast.BOYInventory(entity.InventoryInput{OnHand: 100}, 200))
}

func TestVaccineBuffer_MesesDeSuministro(t *testing.T) {
	// 3 meses de colchón sobre 12,000 dosis anuales = 3,000 dosis.
	assert.InDelta(t, 3000, forecast.VaccineBuffer(3, 12_000), 1e-9)
}

func TestEquipmentBuffers_DescuentaDesperdicio(t *testing.T) {
	vaccines := map[string]entity.Vaccine{
		"vac-penta": {
			ID: "vac-penta", DosesPerVial: 10,
			AdministrationSyringeID: "eq-ads",
			DilutionSyringeID:       "eq-dil",
		},
	}
	buffers := forecast.EquipmentBuffers(
		map[string]float64{"vac-penta": 1000},
		map[string]float64{"vac-penta": 0.10},
		vaccines,
		testEquipment(),
	)

	// El colchón de vacuna está en dosis con desperdicio; la jeringa de
	// administración sólo cubre las dosis que llegan a aplicarse.
	assert.InDelta(t, 900, buffers["eq-ads"], 1e-9)
	assert.InDelta(t, 100, buffers["eq-dil"], 1e-9)
}

func TestEquipmentBuffers_IncluyeCajaDeSeguridad(t *testing.T) {
	vaccines := map[string]entity.Vaccine{
		"vac-penta": {
			ID: "vac-penta", DosesPerVial: 10,
			AdministrationSyringeID: "eq-ads",
			DilutionSyringeID:       "eq-dil",
		},
	}
	buffers := forecast.EquipmentBuffers(
		map[string]float64{"vac-penta": 1000},
		map[string]float64{"vac-penta": 0.10},
		vaccines,
		testEquipment(),
	)

	require.Contains(t, buffers, "eq-box",
		"debe existir entrada de caja de seguridad en los colchones de equipo")
	// 900 + 100 jeringas de colchón sobre capacidad 100 con factor 10%.
	assert.InDelta(t, 1000/(100*1.1), buffers["eq-box"], 1e-9)
}

func TestRecommendedProcurement_NoNegativa(t *testing.T) {
	assert.Equal(t, 1000.0, forecast.RecommendedProcurement(1200, 300, 500))
	// Inventario suficiente: no se recomienda comprar.
	assert.Zero(t, forecast.RecommendedProcurement(1000, 200, 5000))
}

func TestNetFundingAsk_DescuentaInventario(t *testing.T) {
	prices := map[string]decimal.Decimal{
		"vac-penta": decimal.NewFromFloat(2.5),
	}
	inventoryValue := forecast.TotalInventoryValue(map[string]float64{"vac-penta": 400}, prices)
	assert.True(t, inventoryValue.Equal(decimal.NewFromInt(1000)), "valor de inventario: %s", inventoryValue)

	ask := forecast.NetFundingAsk(map[string]float64{"vac-penta": 2000}, prices, inventoryValue)
	assert.True(t, ask.Equal(decimal.NewFromInt(4000)), "monto solicitado: %s", ask)
}

func TestFundingPercentage_Acotada(t *testing.T) {
	ask := decimal.NewFromInt(4000)

	assert.InDelta(t, 0.5, forecast.FundingPercentage(ask, decimal.NewFromInt(2000)), 1e-9)
	// Compromisos por encima del monto solicitado se acotan a 1.
	assert.Equal(t, 1.0, forecast.FundingPercentage(ask, decimal.NewFromInt(9000)))
	// Sin monto solicitado o sin compromisos no hay fracción.
	assert.Zero(t, forecast.FundingPercentage(decimal.Zero, decimal.NewFromInt(2000)))
	assert.Zero(t, forecast.FundingPercentage(ask, decimal.Zero))
	assert.Zero(t, forecast.FundingPercentage(decimal.NewFromInt(-100), decimal.NewFromInt(2000)))
}

func TestConstrainForecast_EscalaUniforme(t *testing.T) {
	cf := forecast.ConstrainForecast(0.5,
		map[string]float64{"vac-penta": 2000},
		map[string]float64{"vac-penta": 1800},
		map[string]string{"vac-penta": "Pentavalente"},
	)

	require.Contains(t, cf.Forecasts, "vac-penta")
	item := cf.Forecasts["vac-penta"]
	assert.InDelta(t, 2000, item.Original, 1e-9)
	assert.InDelta(t, 1000, item.Constrained, 1e-9)
	assert.InDelta(t, 900, item.ConstrainedAdmin, 1e-9)
}

func TestConstrainForecast_SinFinanciamientoQuedaVacio(t *testing.T) {
	cf := forecast.ConstrainForecast(0, map[string]float64{"vac-penta": 2000}, nil, nil)
	assert.Zero(t, cf.FundingPercentage)
	assert.Empty(t, cf.Forecasts)
}

func TestFunderAllocatedAsk(t *testing.T) {
	f := entity.Funder{ID: "gavi", Name: "Gavi", Allocation: 40}
	got := f.AllocatedAsk(decimal.NewFromInt(10_000))
	assert.True(t, got.Equal(decimal.NewFromInt(4000)), "asignación: %s", got)
}

func TestTotalCommitted(t *testing.T) {
	funders := []entity.Funder{
		{Committed: decimal.NewFromInt(1500)},
		{Committed: decimal.NewFromInt(500)},
	}
	assert.True(t, forecast.TotalCommitted(funders).Equal(decimal.NewFromInt(2000)))
}
