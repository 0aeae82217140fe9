package forecast

import (
	"fmt"
	"time"

	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
)

// CollectUnstratified aplana un pronóstico no estratificado a dosis anuales
// por vacuna, sumando todos los grupos objetivo.
func CollectUnstratified(forecasts map[string]*entity.UnstratifiedForecast) map[string]entity.MethodDoses {
	out := make(map[string]entity.MethodDoses, len(forecasts))
	for vaccineID, fc := range forecasts {
		md := newMethodDoses()
		for _, group := range fc.TargetGroups {
			for year, fy := range group.Years {
				md.DosesAdministered[year] += fy.DosesAdministered
				md.DosesWithWastage[year] += fy.DosesWithWastage
			}
		}
		out[vaccineID] = md
	}
	return out
}

// CollectStratified aplana un pronóstico estratificado a dosis anuales por
// vacuna, sumando categorías, estratos y grupos objetivo.
func CollectStratified(fc *entity.StratifiedForecast) map[string]entity.MethodDoses {
	out := make(map[string]entity.MethodDoses)
	if fc == nil {
		return out
	}
	for _, byVaccine := range fc.Results {
		for vaccineID, vr := range byVaccine {
			md, ok := out[vaccineID]
			if !ok {
				md = newMethodDoses()
			}
			for _, sr := range vr.Strata {
				for _, group := range sr.TargetGroups {
					for year, fy := range group.Years {
						md.DosesAdministered[year] += fy.DosesAdministered
						md.DosesWithWastage[year] += fy.DosesWithWastage
					}
				}
			}
			out[vaccineID] = md
		}
	}
	return out
}

// CollectConsumption aplana un pronóstico de consumo a dosis anuales por vacuna.
func CollectConsumption(fc *entity.ConsumptionForecast) map[string]entity.MethodDoses {
	out := make(map[string]entity.MethodDoses)
	if fc == nil {
		return out
	}
	for vaccineID, vr := range fc.Results {
		md := newMethodDoses()
		for year, cy := range vr.Years {
			md.DosesAdministered[year] = cy.DosesAdministered
			md.DosesWithWastage[year] = cy.DosesWithWastage
		}
		out[vaccineID] = md
	}
	return out
}

// CollectManual aplana pronósticos manuales a dosis anuales por vacuna.
func CollectManual(forecasts map[string]*entity.ManualForecast) map[string]entity.MethodDoses {
	out := make(map[string]entity.MethodDoses, len(forecasts))
	for vaccineID, fc := range forecasts {
		md := newMethodDoses()
		for year, my := range fc.Years {
			md.DosesAdministered[year] = my.DosesAdministered
			md.DosesWithWastage[year] = my.DosesWithWastage
		}
		out[vaccineID] = md
	}
	return out
}

func newMethodDoses() entity.MethodDoses {
	return entity.MethodDoses{
		DosesAdministered: make(map[int]float64),
		DosesWithWastage:  make(map[int]float64),
	}
}

// CalculateCombined pondera las dosis de cada método por el peso asignado y
// las suma por vacuna y año. Un método sin datos para una vacuna aporta cero;
// un método sin peso asignado pesa cero. Si los pesos de una vacuna no suman
// 1 se registra una advertencia pero el resultado se calcula igual.
func CalculateCombined(
	country string,
	inputs map[string]map[entity.ForecastMethod]entity.CombinedInput,
	methodData map[string]map[entity.ForecastMethod]entity.MethodDoses,
	years []int,
) *entity.CombinedForecast {

	fc := &entity.CombinedForecast{
		Country:    country,
		Inputs:     inputs,
		MethodData: methodData,
		Results:    make(map[string]entity.CombinedVaccineResult),
		UpdatedAt:  time.Now(),
	}

	for vaccineID, byMethod := range inputs {
		vr := entity.CombinedVaccineResult{
			VaccineID: vaccineID,
			Years:     make(map[int]entity.CombinedYear),
		}

		var totalWeight float64
		for _, method := range entity.ForecastMethods() {
			input, ok := byMethod[method]
			if !ok || input.Weight == 0 {
				continue
			}
			totalWeight += input.Weight
			md, ok := methodData[vaccineID][method]
			if !ok {
				continue
			}
			for _, year := range years {
				cy := vr.Years[year]
				cy.FinalAdministered += md.DosesAdministered[year] * input.Weight
				cy.FinalWithWastage += md.DosesWithWastage[year] * input.Weight
				vr.Years[year] = cy
			}
		}

		for _, year := range years {
			cy := vr.Years[year]
			cy.TotalWeight = totalWeight
			vr.Years[year] = cy
		}

		if totalWeight != 0 && !nearOne(totalWeight) {
			fc.Warnings = append(fc.Warnings,
				fmt.Sprintf("los pesos de la vacuna %s suman %.2f en lugar de 1.00", vaccineID, totalWeight))
		}

		fc.Results[vaccineID] = vr
	}

	return fc
}

func nearOne(w float64) bool {
	const tol = 1e-9
	return w > 1-tol && w < 1+tol
}
