package forecast

import (
	"time"

	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
)

// DeriveEquipment deriva requerimientos de equipo del pronóstico combinado.
// Trabaja en dos pasadas: primero acumula jeringas de administración y de
// dilución por programa a partir de las dosis finales de cada vacuna, y
// después deriva cajas de seguridad del total de jeringas de cada programa.
// Las cantidades quedan fraccionarias.
func DeriveEquipment(
	country string,
	programs []entity.Program,
	vaccines map[string]entity.Vaccine,
	equipment map[string]entity.Equipment,
	combined *entity.CombinedForecast,
	years []int,
) *entity.EquipmentForecast {

	fc := &entity.EquipmentForecast{
		Country:     country,
		Programs:    make(map[string]entity.EquipmentForecastProgram),
		GrandTotals: make(map[string]entity.EquipmentForecastItem),
		UpdatedAt:   time.Now(),
	}

	safetyBox := findSafetyBox(equipment)

	for _, program := range programs {
		pr := entity.EquipmentForecastProgram{
			ProgramID:   program.ID,
			ProgramName: program.ProgramName,
			Items:       make(map[string]entity.EquipmentForecastItem),
		}

		// Primera pasada: jeringas a partir de dosis.
		for _, pv := range program.Vaccines {
			vaccine, ok := vaccines[pv.VaccineID]
			if !ok {
				continue
			}
			vr, ok := combined.Results[pv.VaccineID]
			if !ok {
				continue
			}

			for _, year := range years {
				cy, ok := vr.Years[year]
				if !ok {
					continue
				}
				if vaccine.AdministrationSyringeID != "" {
					addQuantity(pr.Items, equipment, vaccine.AdministrationSyringeID, year, cy.FinalAdministered)
				}
				if vaccine.DilutionSyringeID != "" && vaccine.DosesPerVial > 0 {
					addQuantity(pr.Items, equipment, vaccine.DilutionSyringeID, year,
						cy.FinalWithWastage/float64(vaccine.DosesPerVial))
				}
			}
		}

		// Segunda pasada: cajas de seguridad del total de jeringas del programa.
		if safetyBox != nil && safetyBox.DisposalCapacity > 0 {
			for _, year := range years {
				var totalSyringes float64
				for _, item := range pr.Items {
					if item.EquipmentType.IsSyringe() {
						totalSyringes += item.Quantities[year]
					}
				}
				if totalSyringes > 0 {
					boxes := totalSyringes / (safetyBox.DisposalCapacity * (1 + safetyBox.SafetyFactor/100))
					addQuantity(pr.Items, equipment, safetyBox.ID, year, boxes)
				}
			}
		}

		fc.Programs[program.ID] = pr

		for equipmentID, item := range pr.Items {
			total, ok := fc.GrandTotals[equipmentID]
			if !ok {
				total = entity.EquipmentForecastItem{
					EquipmentID:   item.EquipmentID,
					EquipmentName: item.EquipmentName,
					EquipmentType: item.EquipmentType,
					Quantities:    make(map[int]float64),
				}
			}
			for year, qty := range item.Quantities {
				total.Quantities[year] += qty
			}
			fc.GrandTotals[equipmentID] = total
		}
	}

	return fc
}

func addQuantity(items map[string]entity.EquipmentForecastItem, equipment map[string]entity.Equipment, equipmentID string, year int, qty float64) {
	item, ok := items[equipmentID]
	if !ok {
		eq, found := equipment[equipmentID]
		if !found {
			return
		}
		item = entity.EquipmentForecastItem{
			EquipmentID:   eq.ID,
			EquipmentName: eq.EquipmentName,
			EquipmentType: eq.EquipmentType,
			Quantities:    make(map[int]float64),
		}
	}
	item.Quantities[year] += qty
	items[equipmentID] = item
}

func findSafetyBox(equipment map[string]entity.Equipment) *entity.Equipment {
	for _, eq := range equipment {
		if eq.EquipmentType == entity.EquipmentSafetyBox {
			found := eq
			return &found
		}
	}
	return nil
}
