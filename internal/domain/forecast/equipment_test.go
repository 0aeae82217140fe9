package forecast_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
	"github.com/tu-usuario/vaxplan-api/internal/domain/forecast"
)

func testEquipment() map[string]entity.Equipment {
	return map[string]entity.Equipment{
		"eq-ads": {
			ID: "eq-ads", EquipmentName: "Jeringa AD 0.5ml",
			EquipmentType: entity.EquipmentAdministrationSyringe,
		},
		"eq-dil": {
			ID: "eq-dil", EquipmentName: "Jeringa de dilución 5ml",
			EquipmentType: entity.EquipmentDilutionSyringe,
		},
		"eq-box": {
			ID: "eq-box", EquipmentName: "Caja de seguridad",
			EquipmentType:    entity.EquipmentSafetyBox,
			DisposalCapacity: 100,
			SafetyFactor:     10,
		},
	}
}

func testCombined(admin, wastage float64) *entity.CombinedForecast {
	return &entity.CombinedForecast{
		Country: "GTM",
		Results: map[string]entity.CombinedVaccineResult{
			"vac-penta": {
				VaccineID: "vac-penta",
				Years: map[int]entity.CombinedYear{
					2027: {FinalAdministered: admin, FinalWithWastage: wastage},
				},
			},
		},
		UpdatedAt: time.Now(),
	}
}

func TestDeriveEquipment_JeringasDesdeDosis(t *testing.T) {
	vaccines := map[string]entity.Vaccine{
		"vac-penta": {
			ID: "vac-penta", DosesPerVial: 10,
			AdministrationSyringeID: "eq-ads",
			DilutionSyringeID:       "eq-dil",
		},
	}

	fc := forecast.DeriveEquipment("GTM", testPrograms(), vaccines, testEquipment(),
		testCombined(9000, 10_000), []int{2027})

	pr, ok := fc.Programs["prog-routine"]
	require.True(t, ok)

	// Una jeringa de administración por dosis aplicada.
	assert.InDelta(t, 9000, pr.Items["eq-ads"].Quantities[2027], 1e-6)
	// Una jeringa de dilución por vial: 10,000 / 10. Queda fraccionario si no divide exacto.
	assert.InDelta(t, 1000, pr.Items["eq-dil"].Quantities[2027], 1e-6)
}

// El escenario de referencia de cajas de seguridad: 10,500 jeringas con
// capacidad 100 y factor de seguridad 10% dan 95.4545... cajas.
func TestDeriveEquipment_CajaDeSeguridad(t *testing.T) {
	vaccines := map[string]entity.Vaccine{
		"vac-penta": {
			ID: "vac-penta", DosesPerVial: 10,
			AdministrationSyringeID: "eq-ads",
			DilutionSyringeID:       "eq-dil",
		},
	}

	// 9,500 ADS + 1,000 de dilución = 10,500 jeringas.
	fc := forecast.DeriveEquipment("GTM", testPrograms(), vaccines, testEquipment(),
		testCombined(9500, 10_000), []int{2027})

	boxes := fc.Programs["prog-routine"].Items["eq-box"].Quantities[2027]
	assert.InDelta(t, 10_500/(100*1.1), boxes, 1e-9)
	assert.InDelta(t, 95.4545, boxes, 1e-4)
}

func TestDeriveEquipment_TotalesGenerales(t *testing.T) {
	vaccines := map[string]entity.Vaccine{
		"vac-penta": {ID: "vac-penta", AdministrationSyringeID: "eq-ads"},
	}
	programs := testPrograms()
	second := programs[0]
	second.ID = "prog-sia"
	second.ProgramName = "Campaña"
	second.ProgramCategory = entity.ProgramSIA
	programs = append(programs, second)

	fc := forecast.DeriveEquipment("GTM", programs, vaccines, testEquipment(),
		testCombined(1000, 1100), []int{2027})

	require.Len(t, fc.Programs, 2)
	// Cada programa acumula por separado y el total general los suma.
	grand := fc.GrandTotals["eq-ads"].Quantities[2027]
	perProgram := fc.Programs["prog-routine"].Items["eq-ads"].Quantities[2027]
	assert.InDelta(t, perProgram*2, grand, 1e-6)
}

func TestDeriveEquipment_SinCajaDeSeguridadNoDeriva(t *testing.T) {
	vaccines := map[string]entity.Vaccine{
		"vac-penta": {ID: "vac-penta", AdministrationSyringeID: "eq-ads"},
	}
	equipment := map[string]entity.Equipment{
		"eq-ads": {ID: "eq-ads", EquipmentType: entity.EquipmentAdministrationSyringe},
	}

	fc := forecast.DeriveEquipment("GTM", testPrograms(), vaccines, equipment,
		testCombined(1000, 1100), []int{2027})
	assert.NotContains(t, fc.Programs["prog-routine"].Items, "eq-box")
}
