package forecast

import (
	"fmt"
	"time"

	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
)

// CalculateStratified corre el pronóstico estratificado. La población
// objetivo de cada grupo se reparte entre estratos según el porcentaje anual
// del estrato, y cada estrato aplica sus propias tasas por programa.
// Estratos sin parámetros para un programa usan {0, 0}, lo que produce cero
// dosis para ese estrato. Si la suma de porcentajes de un año supera 100 se
// registra una advertencia pero el cálculo continúa.
func CalculateStratified(
	country *entity.Country,
	programs []entity.Program,
	vaccines map[string]entity.Vaccine,
	strata []entity.Stratum,
	params map[entity.StratumKey]entity.StratumParams,
	years []int,
) *entity.StratifiedForecast {

	fc := &entity.StratifiedForecast{
		Country:   country.ID,
		Strata:    strata,
		Params:    params,
		Results:   make(map[entity.ProgramCategory]map[string]entity.StratifiedVaccineResult),
		UpdatedAt: time.Now(),
	}

	fc.Warnings = checkStratumTotals(strata, years)

	for _, program := range programs {
		byVaccine := fc.Results[program.ProgramCategory]
		if byVaccine == nil {
			byVaccine = make(map[string]entity.StratifiedVaccineResult)
			fc.Results[program.ProgramCategory] = byVaccine
		}

		for _, pv := range program.Vaccines {
			if _, ok := vaccines[pv.VaccineID]; !ok {
				continue
			}

			vr, ok := byVaccine[pv.VaccineID]
			if !ok {
				vr = entity.StratifiedVaccineResult{
					VaccineID:   pv.VaccineID,
					VaccineName: pv.VaccineName,
					Strata:      make(map[string]entity.StratumResult),
				}
			}

			for _, stratum := range strata {
				sp := params[entity.StratumKey{StratumID: stratum.ID, ProgramID: program.ID}]

				for _, assignment := range pv.DoseAssignments {
					tg := country.TargetGroupByID(assignment.TargetGroupID)
					if tg == nil {
						continue
					}

					sr, ok := vr.Strata[stratum.ID]
					if !ok {
						sr = entity.StratumResult{
							StratumID:    stratum.ID,
							StratumName:  stratum.Name,
							TargetGroups: make(map[string]entity.StratifiedTargetGroup),
						}
					}
					group, ok := sr.TargetGroups[tg.ID]
					if !ok {
						group = entity.StratifiedTargetGroup{
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
						stratifiedPop := targetPop * (stratum.Percentages[year] / 100)
						admin := stratifiedPop * sp.CoverageRate

						fy := group.Years[year]
						fy.CoverageRate = sp.CoverageRate
						fy.WastageRate = sp.WastageRate
						fy.TargetPopulation = stratifiedPop
						fy.DosesAdministered += admin
						fy.DosesWithWastage = WithWastage(fy.DosesAdministered, fy.WastageRate)
						group.Years[year] = fy
					}

					sr.TargetGroups[tg.ID] = group
					vr.Strata[stratum.ID] = sr
				}
			}

			byVaccine[pv.VaccineID] = vr
		}
	}

	return fc
}

// checkStratumTotals revisa que los porcentajes de los estratos no excedan
// el 100% en ningún año del horizonte. Excederlo no es un error duro.
func checkStratumTotals(strata []entity.Stratum, years []int) []string {
	var warnings []string
	for _, year := range years {
		var total float64
		for _, s := range strata {
			total += s.Percentages[year]
		}
		if total > 100 {
			warnings = append(warnings, fmt.Sprintf("los estratos suman %.1f%% en %d, por encima del 100%%", total, year))
		}
	}
	return warnings
}
