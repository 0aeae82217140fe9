package forecast

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
)

// Meses de suministro por defecto cuando el artículo no define los suyos.
const (
	DefaultMinMOS = 1.5
	DefaultMaxMOS = 3.0
)

// MonthKey mes en formato "YYYY-MM".
func MonthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// PlanMonths los doce meses del año de planificación.
func PlanMonths(planningYear int) []string {
	months := make([]string, 0, 12)
	for m := 1; m <= 12; m++ {
		months = append(months, MonthKey(planningYear, m))
	}
	return months
}

// BuildItemPlan arma el calendario mensual de un artículo arrastrando el
// inventario mes a mes. La recomendación de pedido sólo se dispara cuando el
// cierre proyectado sin embarque cae bajo el mínimo, y entonces repone hasta
// el máximo. Un embarque fijado por el usuario reemplaza por completo a la
// recomendación de ese mes, incluso si es cero.
func BuildItemPlan(
	planningYear int,
	monthlyDemand float64,
	boy float64,
	minMOS, maxMOS float64,
	shipments map[string]float64,
) []entity.MonthPlan {

	if minMOS <= 0 {
		minMOS = DefaultMinMOS
	}
	if maxMOS <= 0 {
		maxMOS = DefaultMaxMOS
	}

	minLevel := monthlyDemand * minMOS
	maxLevel := monthlyDemand * maxMOS

	rows := make([]entity.MonthPlan, 0, 12)
	begin := boy
	for _, month := range PlanMonths(planningYear) {
		projectedEnd := begin - monthlyDemand

		var recommended float64
		if projectedEnd < minLevel {
			recommended = math.Ceil(math.Max(0, maxLevel-projectedEnd))
		}

		shipment := recommended
		if override, ok := shipments[month]; ok {
			shipment = override
		}

		ending := begin + shipment - monthlyDemand
		rows = append(rows, entity.MonthPlan{
			Month:            month,
			Demand:           monthlyDemand,
			BeginningInv:     begin,
			Shipment:         shipment,
			RecommendedOrder: recommended,
			EndingInv:        ending,
			MinLevel:         minLevel,
			MaxLevel:         maxLevel,
			BelowMin:         ending < minLevel,
			Stockout:         ending < 0,
		})
		begin = ending
	}

	return rows
}

// MonthlyVaccineDemand demanda mensual de una vacuna: el pronóstico anual
// repartido uniforme entre los doce meses.
func MonthlyVaccineDemand(annualForecast float64) float64 {
	return annualForecast / 12
}

// MonthlyEquipmentDemand deriva demanda mensual de equipo del pronóstico
// restringido mensualizado. La jeringa de administración sigue a las dosis
// aplicadas; la de dilución a los viales del mes, sin redondear porque es
// una tasa de demanda y no un pedido. La caja de seguridad sale del total
// mensual de jeringas.
func MonthlyEquipmentDemand(
	adminDemand map[string]float64,
	wastageDemand map[string]float64,
	vaccines map[string]entity.Vaccine,
	equipment map[string]entity.Equipment,
) map[string]float64 {

	demand := make(map[string]float64)
	for vaccineID, vaccine := range vaccines {
		if vaccine.AdministrationSyringeID != "" {
			demand[vaccine.AdministrationSyringeID] += adminDemand[vaccineID]
		}
		if vaccine.DilutionSyringeID != "" && vaccine.DosesPerVial > 0 {
			demand[vaccine.DilutionSyringeID] += wastageDemand[vaccineID] / float64(vaccine.DosesPerVial)
		}
	}

	safetyBox := findSafetyBox(equipment)
	if safetyBox != nil && safetyBox.DisposalCapacity > 0 {
		var totalSyringes float64
		for equipmentID, qty := range demand {
			if eq, ok := equipment[equipmentID]; ok && eq.EquipmentType.IsSyringe() {
				totalSyringes += qty
			}
		}
		demand[safetyBox.ID] = totalSyringes / (safetyBox.DisposalCapacity * (1 + safetyBox.SafetyFactor/100))
	}

	return demand
}

// ShipmentsCost costo total de los embarques del calendario al precio
// unitario del artículo.
func ShipmentsCost(rows []entity.MonthPlan, unitPrice decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		if row.Shipment <= 0 {
			continue
		}
		total = total.Add(unitPrice.Mul(decimal.NewFromFloat(row.Shipment)))
	}
	return total
}

// PlannedShipmentsTotal suma de los embarques fijados por el usuario.
// Las recomendaciones no cuentan; sólo lo planificado de forma explícita.
func PlannedShipmentsTotal(shipments map[string]float64) float64 {
	var total float64
	for _, qty := range shipments {
		total += qty
	}
	return total
}

// OverProcurementLimit indica si los embarques planificados de un artículo
// exceden su compra propuesta del plan financiero. Es sólo una advertencia;
// el plan no se bloquea.
func OverProcurementLimit(plannedShipments, procurementLimit float64) bool {
	return procurementLimit > 0 && plannedShipments > procurementLimit
}
