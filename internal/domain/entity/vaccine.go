package entity

import "github.com/shopspring/decimal"

// Vaccine dato maestro de vacuna con su lista de materiales (jeringas vinculadas,
// dosis por vial) y parámetros de inventario expresados en meses de stock (MOS).
type Vaccine struct {
	ID                      string          `json:"id"`
	VaccineName             string          `json:"vaccineName"`
	VaccineType             string          `json:"vaccineType"`
	DosesInSchedule         int             `json:"dosesInSchedule"`
	PricePerDose            decimal.Decimal `json:"pricePerDose"`
	VialSize                float64         `json:"vialSize"`
	DosesPerVial            int             `json:"dosesPerVial"`
	VolumePerDose           float64         `json:"volumePerDose"`
	VialsPerBox             int             `json:"vialsPerBox"`
	ProcurementLeadTime     int             `json:"procurementLeadTime"` // meses
	AdministrationSyringeID string          `json:"administrationSyringeId"` // referencia débil a Equipment (puede ser vacía)
	DilutionSyringeID       string          `json:"dilutionSyringeId"` // referencia débil a Equipment (puede ser vacía)
	BufferStock             float64         `json:"bufferStock"` // multiplicador MOS para stock de seguridad
	MinInventory            float64         `json:"minInventory"` // MOS mínimo
	AbsMinInventory         float64         `json:"absMinInventory"` // MOS mínimo absoluto
	MaxInventory            float64         `json:"maxInventory"` // MOS máximo
}
