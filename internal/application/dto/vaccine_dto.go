package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
)

// VaccineRequest body para crear o actualizar una vacuna.
type VaccineRequest struct {
	VaccineName             string          `json:"vaccine_name"`
	VaccineType             string          `json:"vaccine_type"`
	DosesInSchedule         int             `json:"doses_in_schedule"`
	PricePerDose            decimal.Decimal `json:"price_per_dose"`
	VialSize                float64         `json:"vial_size"`
	DosesPerVial            int             `json:"doses_per_vial"`
	VolumePerDose           float64         `json:"volume_per_dose"`
	VialsPerBox             int             `json:"vials_per_box"`
	ProcurementLeadTime     int             `json:"procurement_lead_time"`
	AdministrationSyringeID string          `json:"administration_syringe_id"`
	DilutionSyringeID       string          `json:"dilution_syringe_id"`
	BufferStock             float64         `json:"buffer_stock"`
	MinInventory            float64         `json:"min_inventory"`
	AbsMinInventory         float64         `json:"abs_min_inventory"`
	MaxInventory            float64         `json:"max_inventory"`
}

// ToEntity materializa la vacuna con el id dado.
func (r *VaccineRequest) ToEntity(id string) *entity.Vaccine {
	return &entity.Vaccine{
		ID:                      id,
		VaccineName:             r.VaccineName,
		VaccineType:             r.VaccineType,
		DosesInSchedule:         r.DosesInSchedule,
		PricePerDose:            r.PricePerDose,
		VialSize:                r.VialSize,
		DosesPerVial:            r.DosesPerVial,
		VolumePerDose:           r.VolumePerDose,
		VialsPerBox:             r.VialsPerBox,
		ProcurementLeadTime:     r.ProcurementLeadTime,
		AdministrationSyringeID: r.AdministrationSyringeID,
		DilutionSyringeID:       r.DilutionSyringeID,
		BufferStock:             r.BufferStock,
		MinInventory:            r.MinInventory,
		AbsMinInventory:         r.AbsMinInventory,
		MaxInventory:            r.MaxInventory,
	}
}

// EquipmentRequest body para crear o actualizar un equipo.
type EquipmentRequest struct {
	EquipmentName    string               `json:"equipment_name"`
	EquipmentType    entity.EquipmentType `json:"equipment_type"`
	EquipmentCode    string               `json:"equipment_code"`
	EquipmentUnits   int                  `json:"equipment_units"`
	EquipmentCost    decimal.Decimal      `json:"equipment_cost"`
	EquipmentFreight decimal.Decimal      `json:"equipment_freight"`
	DisposalCapacity float64              `json:"disposal_capacity"`
	SafetyFactor     float64              `json:"safety_factor"`
}

// ToEntity materializa el equipo con el id dado.
func (r *EquipmentRequest) ToEntity(id string) *entity.Equipment {
	return &entity.Equipment{
		ID:               id,
		EquipmentName:    r.EquipmentName,
		EquipmentType:    r.EquipmentType,
		EquipmentCode:    r.EquipmentCode,
		EquipmentUnits:   r.EquipmentUnits,
		EquipmentCost:    r.EquipmentCost,
		EquipmentFreight: r.EquipmentFreight,
		DisposalCapacity: r.DisposalCapacity,
		SafetyFactor:     r.SafetyFactor,
	}
}
