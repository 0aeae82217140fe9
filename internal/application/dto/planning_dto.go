package dto

import (
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
)

// FinancialPlanRequest insumos del plan financiero de un país-año.
type FinancialPlanRequest struct {
	VaccineInputs       map[string]entity.InventoryInput `json:"vaccine_inputs"`
	EquipmentInputs     map[string]entity.InventoryInput `json:"equipment_inputs"`
	VaccineWastageRates map[string]float64               `json:"vaccine_wastage_rates"`
	Funders             []entity.Funder                  `json:"funders"`
	ProposedProcurement map[string]float64               `json:"proposed_procurement"`
}

// FunderResponse financiador con su porción del monto solicitado.
type FunderResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Allocation   float64         `json:"allocation"`
	Committed    decimal.Decimal `json:"committed"`
	AllocatedAsk decimal.Decimal `json:"allocated_ask"`
}

// FinancialPlanResponse plan financiero con sus agregados calculados.
type FinancialPlanResponse struct {
	Country             string                            `json:"country"`
	PlanningYear        int                               `json:"planning_year"`
	VaccineInputs       map[string]entity.InventoryInput  `json:"vaccine_inputs"`
	EquipmentInputs     map[string]entity.InventoryInput  `json:"equipment_inputs"`
	VaccineWastageRates map[string]float64                `json:"vaccine_wastage_rates"`
	Funders             []FunderResponse                  `json:"funders"`
	ProposedProcurement map[string]float64                `json:"proposed_procurement"`
	ProcurementData     map[string]entity.ProcurementItem `json:"procurement_data"`
	EquipmentUsage      map[string]float64                `json:"calculated_equipment_usage"`
	TotalInventoryValue decimal.Decimal                   `json:"total_inventory_value"`
	NetFundingAsk       decimal.Decimal                   `json:"net_funding_ask"`
	TotalCommitted      decimal.Decimal                   `json:"total_committed"`
	ConstrainedForecast *entity.ConstrainedForecast       `json:"constrained_forecast,omitempty"`
	Warnings            []string                          `json:"warnings,omitempty"`
}

// SaveShipmentsRequest body para fijar los embarques de un artículo.
// Un mes presente con valor cero también reemplaza a la recomendación.
type SaveShipmentsRequest struct {
	Shipments map[string]float64 `json:"shipments"`
}

// InventoryItemPlanResponse calendario mensual calculado de un artículo.
type InventoryItemPlanResponse struct {
	ItemID           string             `json:"item_id"`
	ItemName         string             `json:"item_name"`
	ItemKind         string             `json:"item_kind"`
	Months           []entity.MonthPlan `json:"months"`
	TotalCost        decimal.Decimal    `json:"total_cost"`
	PlannedShipments float64            `json:"planned_shipments"`
	ProcurementLimit float64            `json:"procurement_limit"`
	OverBudget       bool               `json:"over_budget"`
}

// InventoryPlanResponse calendario de reabastecimiento del país completo.
type InventoryPlanResponse struct {
	Country      string                      `json:"country"`
	PlanningYear int                         `json:"planning_year"`
	Items        []InventoryItemPlanResponse `json:"items"`
	TotalCost    decimal.Decimal             `json:"total_cost"`
	Warnings     []string                    `json:"warnings,omitempty"`
}
