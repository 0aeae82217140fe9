package entity

import "github.com/shopspring/decimal"

// EquipmentType clasifica el equipamiento auxiliar de inmunización.
type EquipmentType string

const (
	EquipmentAdministrationSyringe EquipmentType = "ADMINISTRATION_SYRINGE"
	EquipmentDilutionSyringe       EquipmentType = "DILUTION_SYRINGE"
	EquipmentSafetyBox             EquipmentType = "SAFETY_BOX"
)

// IsSyringe indica si el tipo cuenta para el volumen de descarte en cajas de seguridad.
func (t EquipmentType) IsSyringe() bool {
	return t == EquipmentAdministrationSyringe || t == EquipmentDilutionSyringe
}

// Equipment dato maestro de equipamiento. DisposalCapacity y SafetyFactor
// solo aplican a cajas de seguridad (SAFETY_BOX).
type Equipment struct {
	ID               string          `json:"id"`
	EquipmentName    string          `json:"equipmentName"`
	EquipmentType    EquipmentType   `json:"equipmentType"`
	EquipmentCode    string          `json:"equipmentCode"`
	EquipmentUnits   int             `json:"equipmentUnits"` // unidades por caja
	EquipmentCost    decimal.Decimal `json:"equipmentCost"`
	EquipmentFreight decimal.Decimal `json:"equipmentFreight"`
	DisposalCapacity float64         `json:"disposalCapacity"` // jeringas descartables por caja; 0 = sin definir
	SafetyFactor     float64         `json:"safetyFactor"` // % de capacidad reservada, ej. 10 = 10%
}

// FindSafetyBox devuelve la primera caja de seguridad del listado, o nil.
func FindSafetyBox(items []Equipment) *Equipment {
	for i := range items {
		if items[i].EquipmentType == EquipmentSafetyBox {
			return &items[i]
		}
	}
	return nil
}
