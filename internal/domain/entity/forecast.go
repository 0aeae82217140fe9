package entity

import (
	"strings"
	"time"
)

// ForecastYear resultado de un año de pronóstico para un grupo objetivo.
type ForecastYear struct {
	CoverageRate      float64 `json:"coverageRate"`
	WastageRate       float64 `json:"wastageRate"`
	DosesAdministered float64 `json:"dosesAdministered"`
	DosesWithWastage  float64 `json:"dosesWithWastage"`
	TargetPopulation  float64 `json:"targetPopulation"`
}

// ForecastTargetGroup resultados anuales de un grupo objetivo.
type ForecastTargetGroup struct {
	TargetGroupID   string               `json:"targetGroupId"`
	TargetGroupName string               `json:"targetGroupName"`
	Years           map[int]ForecastYear `json:"years"`
}

// UnstratifiedForecast pronóstico demográfico no estratificado de una vacuna.
type UnstratifiedForecast struct {
	VaccineID    string                         `json:"vaccineId"`
	VaccineName  string                         `json:"vaccineName"`
	Country      string                         `json:"country"`
	TargetGroups map[string]ForecastTargetGroup `json:"targetGroups"`
	UpdatedAt    time.Time                      `json:"updatedAt"`
}

// Stratum estrato geográfico o administrativo. Percentages indica, por año,
// el porcentaje (0-100) de la población objetivo que cae en el estrato.
type Stratum struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Percentages map[int]float64 `json:"percentages"`
}

// StratumParams cobertura y desperdicio de un estrato para un programa concreto.
// Tasas como decimales 0-1.
type StratumParams struct {
	CoverageRate float64 `json:"coverageRate"`
	WastageRate  float64 `json:"wastageRate"`
}

// StratumKey identifica los parámetros de un estrato dentro de un programa.
// Serializa como "estratoID|programaID" para poder usarse como clave de mapa
// en JSON.
type StratumKey struct {
	StratumID string
	ProgramID string
}

// MarshalText implementa encoding.TextMarshaler.
func (k StratumKey) MarshalText() ([]byte, error) {
	return []byte(k.StratumID + "|" + k.ProgramID), nil
}

// UnmarshalText implementa encoding.TextUnmarshaler.
func (k *StratumKey) UnmarshalText(text []byte) error {
	parts := strings.SplitN(string(text), "|", 2)
	k.StratumID = parts[0]
	if len(parts) > 1 {
		k.ProgramID = parts[1]
	}
	return nil
}

// StratifiedTargetGroup resultados anuales de un grupo objetivo dentro de un estrato.
type StratifiedTargetGroup struct {
	TargetGroupID   string               `json:"targetGroupId"`
	TargetGroupName string               `json:"targetGroupName"`
	Years           map[int]ForecastYear `json:"years"`
}

// StratumResult resultados de un estrato: grupos objetivo indexados por id.
type StratumResult struct {
	StratumID    string                           `json:"stratumId"`
	StratumName  string                           `json:"stratumName"`
	TargetGroups map[string]StratifiedTargetGroup `json:"targetGroups"`
}

// StratifiedVaccineResult resultados de una vacuna: estratos indexados por id.
type StratifiedVaccineResult struct {
	VaccineID   string                   `json:"vaccineId"`
	VaccineName string                   `json:"vaccineName"`
	Strata      map[string]StratumResult `json:"strata"`
}

// StratifiedForecast pronóstico estratificado de un país. Los resultados
// se anidan categoría de programa -> vacuna -> estrato -> grupo objetivo -> año.
type StratifiedForecast struct {
	Country      string                                                 `json:"country"`
	ScenarioName string                                                 `json:"scenarioName,omitempty"`
	Strata       []Stratum                                              `json:"strata"`
	Params       map[StratumKey]StratumParams                           `json:"params"`
	Results      map[ProgramCategory]map[string]StratifiedVaccineResult `json:"results"`
	Warnings     []string                                               `json:"warnings,omitempty"`
	UpdatedAt    time.Time                                              `json:"updatedAt"`
}

// ConsumptionSource origen de los datos históricos de consumo.
type ConsumptionSource string

const (
	ConsumptionHealthCenter ConsumptionSource = "hc" // centros de salud
	ConsumptionSupplyChain  ConsumptionSource = "sc" // cadena de suministro
)

// MonthlyConsumption consumo reportado en un mes. ReportingRate como decimal 0-1.
type MonthlyConsumption struct {
	Consumption   float64 `json:"consumption"`
	ReportingRate float64 `json:"reportingRate"`
}

// VaccineConsumptionData datos históricos y tasa de desperdicio de una vacuna.
// MonthlyData se indexa por mes en formato "YYYY-MM".
type VaccineConsumptionData struct {
	VaccineID      string                        `json:"vaccineId"`
	VaccineName    string                        `json:"vaccineName"`
	AvgWastageRate float64                       `json:"avgWastageRate"`
	MonthlyData    map[string]MonthlyConsumption `json:"monthlyData"`
}

// ConsumptionYear proyección anual derivada del consumo histórico.
type ConsumptionYear struct {
	DosesAdministered float64 `json:"dosesAdministered"`
	DosesWithWastage  float64 `json:"dosesWithWastage"`
}

// ConsumptionVaccineResult proyección de una vacuna por año.
type ConsumptionVaccineResult struct {
	VaccineID      string                  `json:"vaccineId"`
	VaccineName    string                  `json:"vaccineName"`
	AvgMonthly     float64                 `json:"avgMonthly"`
	AvgWastageRate float64                 `json:"avgWastageRate"`
	Years          map[int]ConsumptionYear `json:"years"`
}

// ConsumptionForecast pronóstico basado en consumo histórico de un país.
type ConsumptionForecast struct {
	Country    string                              `json:"country"`
	Source     ConsumptionSource                   `json:"source"`
	GrowthRate float64                             `json:"growthRate"`
	Data       map[string]VaccineConsumptionData   `json:"data"`
	Results    map[string]ConsumptionVaccineResult `json:"results"`
	UpdatedAt  time.Time                           `json:"updatedAt"`
}

// ManualYear cifras introducidas a mano para un año.
type ManualYear struct {
	DosesAdministered float64 `json:"dosesAdministered"`
	DosesWithWastage  float64 `json:"dosesWithWastage"`
}

// ManualForecast pronóstico manual de una vacuna con una descripción libre
// de la metodología empleada.
type ManualForecast struct {
	VaccineID   string             `json:"vaccineId"`
	VaccineName string             `json:"vaccineName"`
	Country     string             `json:"country"`
	Description string             `json:"description,omitempty"`
	Years       map[int]ManualYear `json:"years"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}
