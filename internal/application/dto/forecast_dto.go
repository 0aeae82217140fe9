package dto

import "github.com/tu-usuario/vaxplan-api/internal/domain/entity"

// StratumParamRequest tasas de un estrato para un programa.
type StratumParamRequest struct {
	StratumID    string  `json:"stratum_id"`
	ProgramID    string  `json:"program_id"`
	CoverageRate float64 `json:"coverage_rate"`
	WastageRate  float64 `json:"wastage_rate"`
}

// RunStratifiedRequest body para correr el pronóstico estratificado.
type RunStratifiedRequest struct {
	ScenarioName string                `json:"scenario_name,omitempty"`
	Strata       []entity.Stratum      `json:"strata"`
	Params       []StratumParamRequest `json:"params"`
}

// ParamsMap indexa los parámetros por (estrato, programa) para el cálculo.
func (r *RunStratifiedRequest) ParamsMap() map[entity.StratumKey]entity.StratumParams {
	params := make(map[entity.StratumKey]entity.StratumParams, len(r.Params))
	for _, p := range r.Params {
		params[entity.StratumKey{StratumID: p.StratumID, ProgramID: p.ProgramID}] = entity.StratumParams{
			CoverageRate: p.CoverageRate,
			WastageRate:  p.WastageRate,
		}
	}
	return params
}

// RunConsumptionRequest body para correr el pronóstico por consumo.
type RunConsumptionRequest struct {
	GrowthRate float64                                  `json:"growth_rate"`
	Data       map[string]entity.VaccineConsumptionData `json:"data"`
}

// RateEdit tasas editadas de un año.
type RateEdit struct {
	CoverageRate float64 `json:"coverage_rate"`
	WastageRate  float64 `json:"wastage_rate"`
}

// UpdateRatesRequest body para editar tasas de un pronóstico ya corrido.
type UpdateRatesRequest struct {
	TargetGroupID string           `json:"target_group_id"`
	Rates         map[int]RateEdit `json:"rates"`
}

// UpdateWastageRequest body para editar la tasa de desperdicio promedio
// de una vacuna en un pronóstico por consumo.
type UpdateWastageRequest struct {
	AvgWastageRate float64 `json:"avg_wastage_rate"`
}

// ManualForecastRequest body para guardar un pronóstico manual.
type ManualForecastRequest struct {
	VaccineID   string                    `json:"vaccine_id"`
	VaccineName string                    `json:"vaccine_name"`
	Description string                    `json:"description"`
	Years       map[int]entity.ManualYear `json:"years"`
}

// RunCombinedRequest body para correr el pronóstico combinado.
// Inputs se indexa vacuna -> método.
type RunCombinedRequest struct {
	ScenarioName string                                                    `json:"scenario_name,omitempty"`
	Inputs       map[string]map[entity.ForecastMethod]entity.CombinedInput `json:"inputs"`
}
