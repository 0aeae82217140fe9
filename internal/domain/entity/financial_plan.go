package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// InventoryInput posición de inventario de un artículo al cierre del año previo.
type InventoryInput struct {
	OnHand       float64 `json:"onHand"`
	ExpShipments float64 `json:"expShipments"`
	ExpUsage     float64 `json:"expUsage"`
}

// Funder fuente de financiamiento del plan. Allocation como porcentaje 0-100
// del monto solicitado; Committed es el monto confirmado.
type Funder struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Allocation float64         `json:"allocation"`
	Committed  decimal.Decimal `json:"committed"`
}

// AllocatedAsk monto solicitado a este financiador según su porcentaje.
func (f Funder) AllocatedAsk(netAsk decimal.Decimal) decimal.Decimal {
	return netAsk.Mul(decimal.NewFromFloat(f.Allocation / 100))
}

// ConstrainedItem pronóstico de un artículo escalado por el financiamiento disponible.
type ConstrainedItem struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Original         float64 `json:"original"`
	Constrained      float64 `json:"constrained"`
	ConstrainedAdmin float64 `json:"constrainedAdmin"`
}

// ConstrainedForecast pronóstico restringido por financiamiento.
type ConstrainedForecast struct {
	FundingPercentage float64                    `json:"fundingPercentage"`
	Forecasts         map[string]ConstrainedItem `json:"forecasts"`
}

// ProcurementItem línea de compra propuesta para un artículo.
type ProcurementItem struct {
	ItemID      string          `json:"itemId"`
	ItemName    string          `json:"itemName"`
	Forecast    float64         `json:"forecast"`
	Buffer      float64         `json:"buffer"`
	BOY         float64         `json:"boy"`
	Recommended float64         `json:"recommended"`
	Proposed    float64         `json:"proposed"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
}

// FinancialPlan plan financiero de un país para un año de planificación.
// Hay un único plan por combinación país-año.
type FinancialPlan struct {
	Country                  string                     `json:"country"`
	PlanningYear             int                        `json:"planningYear"`
	VaccineInputs            map[string]InventoryInput  `json:"vaccineInputs"`
	EquipmentInputs          map[string]InventoryInput  `json:"equipmentInputs"`
	VaccineWastageRates      map[string]float64         `json:"vaccineWastageRates"`
	Funders                  []Funder                   `json:"funders"`
	ProposedProcurement      map[string]float64         `json:"proposedProcurement"`
	ProcurementData          map[string]ProcurementItem `json:"procurementData"`
	CalculatedEquipmentUsage map[string]float64         `json:"calculatedEquipmentUsage"`
	ConstrainedForecast      *ConstrainedForecast       `json:"constrainedForecast,omitempty"`
	UpdatedAt                time.Time                  `json:"updatedAt"`
}

// PlanID clave natural del plan financiero.
func PlanID(country string, year int) string {
	return fmt.Sprintf("%s_%d", country, year)
}

// ID clave natural de este plan.
func (p *FinancialPlan) ID() string {
	return PlanID(p.Country, p.PlanningYear)
}
