package entity

import "time"

// ForecastMethod método de pronóstico que participa en la combinación ponderada.
type ForecastMethod string

const (
	MethodUnstratified  ForecastMethod = "unstratified"
	MethodStratified    ForecastMethod = "stratified"
	MethodConsumptionHc ForecastMethod = "consumptionHc"
	MethodConsumptionSc ForecastMethod = "consumptionSc"
	MethodManual        ForecastMethod = "manual"
)

// ForecastMethods devuelve los métodos en orden estable de presentación.
func ForecastMethods() []ForecastMethod {
	return []ForecastMethod{
		MethodUnstratified,
		MethodStratified,
		MethodConsumptionHc,
		MethodConsumptionSc,
		MethodManual,
	}
}

// MethodDoses dosis anuales aplanadas de un método para una vacuna.
type MethodDoses struct {
	DosesAdministered map[int]float64 `json:"dosesAdministered"`
	DosesWithWastage  map[int]float64 `json:"dosesWithWastage"`
}

// CombinedInput peso y confianza asignados a un método para una vacuna.
// Weight como decimal 0-1; Confidence es sólo informativa.
type CombinedInput struct {
	Weight     float64 `json:"weight"`
	Confidence string  `json:"confidence"`
}

// CombinedYear resultado combinado de un año.
type CombinedYear struct {
	FinalAdministered float64 `json:"finalAdministered"`
	FinalWithWastage  float64 `json:"finalWithWastage"`
	TotalWeight       float64 `json:"totalWeight"`
}

// CombinedVaccineResult resultado combinado de una vacuna por año.
type CombinedVaccineResult struct {
	VaccineID   string               `json:"vaccineId"`
	VaccineName string               `json:"vaccineName"`
	Years       map[int]CombinedYear `json:"years"`
}

// CombinedForecast combinación ponderada de los métodos por vacuna.
// Inputs se indexa vacuna -> método; MethodData guarda las dosis aplanadas
// de cada método tal como se usaron en el cálculo.
type CombinedForecast struct {
	Country      string                                      `json:"country"`
	ScenarioName string                                      `json:"scenarioName,omitempty"`
	Inputs       map[string]map[ForecastMethod]CombinedInput `json:"inputs"`
	MethodData   map[string]map[ForecastMethod]MethodDoses   `json:"methodData"`
	Results      map[string]CombinedVaccineResult            `json:"results"`
	Warnings     []string                                    `json:"warnings,omitempty"`
	UpdatedAt    time.Time                                   `json:"updatedAt"`
}
