package forecast

import (
	"time"

	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
)

// CalculateUnstratified corre el pronóstico demográfico no estratificado.
// Por cada programa, vacuna y asignación de dosis calcula la población
// objetivo del año y acumula dosis por (vacuna, grupo objetivo, año).
// Asignaciones que refieren vacunas o grupos inexistentes, o años sin
// proyección, se omiten sin error.
func CalculateUnstratified(
	country *entity.Country,
	programs []entity.Program,
	vaccines map[string]entity.Vaccine,
	years []int,
) map[string]*entity.UnstratifiedForecast {

	results := make(map[string]*entity.UnstratifiedForecast)

	for _, program := range programs {
		for _, pv := range program.Vaccines {
			if _, ok := vaccines[pv.VaccineID]; !ok {
				continue
			}
			for _, assignment := range pv.DoseAssignments {
				tg := country.TargetGroupByID(assignment.TargetGroupID)
				if tg == nil {
					continue
				}

				fc := results[pv.VaccineID]
				if fc == nil {
					fc = &entity.UnstratifiedForecast{
						VaccineID:    pv.VaccineID,
						VaccineName:  pv.VaccineName,
						Country:      country.ID,
						TargetGroups: make(map[string]entity.ForecastTargetGroup),
						UpdatedAt:    time.Now(),
					}
					results[pv.VaccineID] = fc
				}

				group, ok := fc.TargetGroups[tg.ID]
				if !ok {
					group = entity.ForecastTargetGroup{
						TargetGroupID:   tg.ID,
						TargetGroupName: tg.Name,
						Years:           make(map[int]entity.ForecastYear),
					}
				}

				for _, year := range years {
					yearPop, ok := country.PopulationForYear(year)
					if !ok {
						continue
					}
					targetPop := float64(yearPop) * (tg.Percentage / 100)
					admin := targetPop * assignment.CoverageRate

					fy := group.Years[year]
					fy.CoverageRate = assignment.CoverageRate
					fy.WastageRate = assignment.WastageRate
					fy.TargetPopulation = targetPop
					fy.DosesAdministered += admin
					fy.DosesWithWastage = WithWastage(fy.DosesAdministered, fy.WastageRate)
					group.Years[year] = fy
				}

				fc.TargetGroups[tg.ID] = group
			}
		}
	}

	return results
}

// ApplyUnstratifiedRates reescribe cobertura y desperdicio de un grupo
// objetivo ya calculado y rehace las dosis derivadas. La población objetivo
// calculada se conserva; sólo cambian las tasas y las dosis.
func ApplyUnstratifiedRates(fc *entity.UnstratifiedForecast, targetGroupID string, rates map[int]entity.ForecastYear) {
	group, ok := fc.TargetGroups[targetGroupID]
	if !ok {
		return
	}
	for year, updated := range rates {
		fy, ok := group.Years[year]
		if !ok {
			continue
		}
		fy.CoverageRate = updated.CoverageRate
		fy.WastageRate = updated.WastageRate
		fy.DosesAdministered = fy.TargetPopulation * updated.CoverageRate
		fy.DosesWithWastage = WithWastage(fy.DosesAdministered, updated.WastageRate)
		group.Years[year] = fy
	}
	fc.TargetGroups[targetGroupID] = group
	fc.UpdatedAt = time.Now()
}
