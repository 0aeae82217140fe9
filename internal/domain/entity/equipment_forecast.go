package entity

import "time"

// EquipmentForecastItem cantidades anuales requeridas de un equipo.
// Las cantidades quedan fraccionarias; el redondeo es asunto de presentación.
type EquipmentForecastItem struct {
	EquipmentID   string          `json:"equipmentId"`
	EquipmentName string          `json:"equipmentName"`
	EquipmentType EquipmentType   `json:"equipmentType"`
	Quantities    map[int]float64 `json:"quantities"`
}

// EquipmentForecastProgram requerimientos de equipo de un programa,
// indexados por id de equipo.
type EquipmentForecastProgram struct {
	ProgramID   string                           `json:"programId"`
	ProgramName string                           `json:"programName"`
	Items       map[string]EquipmentForecastItem `json:"items"`
}

// EquipmentForecast requerimientos de equipo derivados del pronóstico
// combinado, por programa y con totales generales por equipo.
type EquipmentForecast struct {
	Country     string                              `json:"country"`
	Programs    map[string]EquipmentForecastProgram `json:"programs"`
	GrandTotals map[string]EquipmentForecastItem    `json:"grandTotals"`
	UpdatedAt   time.Time                           `json:"updatedAt"`
}
