package forecast

import (
	"time"

	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
)

// AvgMonthlyConsumption promedia el consumo mensual ajustado por tasa de
// reporte. Sólo cuentan los meses con consumo y tasa de reporte positivos;
// cada mes válido aporta consumo / tasaDeReporte.
func AvgMonthlyConsumption(monthly map[string]entity.MonthlyConsumption) float64 {
	var sum float64
	var count int
	for _, m := range monthly {
		if m.Consumption <= 0 || m.ReportingRate <= 0 {
			continue
		}
		sum += m.Consumption / m.ReportingRate
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// CalculateConsumption proyecta el consumo histórico sobre el horizonte.
// El primer año es el promedio mensual por doce; los siguientes aplican
// crecimiento compuesto sobre el anterior. El desperdicio usa una única
// tasa promedio por vacuna.
func CalculateConsumption(
	country string,
	source entity.ConsumptionSource,
	growthRate float64,
	data map[string]entity.VaccineConsumptionData,
	years []int,
) *entity.ConsumptionForecast {

	fc := &entity.ConsumptionForecast{
		Country:    country,
		Source:     source,
		GrowthRate: growthRate,
		Data:       data,
		Results:    make(map[string]entity.ConsumptionVaccineResult),
		UpdatedAt:  time.Now(),
	}

	for vaccineID, vd := range data {
		avgMonthly := AvgMonthlyConsumption(vd.MonthlyData)
		if avgMonthly == 0 {
			// Sin meses válidos no hay base para proyectar; la vacuna
			// queda fuera del resultado en vez de rellenarse con ceros.
			continue
		}
		annual := avgMonthly * 12

		vr := entity.ConsumptionVaccineResult{
			VaccineID:      vaccineID,
			VaccineName:    vd.VaccineName,
			AvgMonthly:     avgMonthly,
			AvgWastageRate: vd.AvgWastageRate,
			Years:          make(map[int]entity.ConsumptionYear),
		}

		doses := annual
		for i, year := range years {
			if i > 0 {
				doses *= 1 + growthRate
			}
			vr.Years[year] = entity.ConsumptionYear{
				DosesAdministered: doses,
				DosesWithWastage:  WithWastage(doses, vd.AvgWastageRate),
			}
		}

		fc.Results[vaccineID] = vr
	}

	return fc
}

// ApplyConsumptionWastage cambia la tasa de desperdicio promedio de una
// vacuna ya calculada y rehace las dosis con desperdicio de todos los años.
func ApplyConsumptionWastage(fc *entity.ConsumptionForecast, vaccineID string, avgWastageRate float64) {
	vd, ok := fc.Data[vaccineID]
	if ok {
		vd.AvgWastageRate = avgWastageRate
		fc.Data[vaccineID] = vd
	}
	vr, ok := fc.Results[vaccineID]
	if !ok {
		return
	}
	vr.AvgWastageRate = avgWastageRate
	for year, cy := range vr.Years {
		cy.DosesWithWastage = WithWastage(cy.DosesAdministered, avgWastageRate)
		vr.Years[year] = cy
	}
	fc.Results[vaccineID] = vr
	fc.UpdatedAt = time.Now()
}
