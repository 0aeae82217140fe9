package forecast

import (
	"math"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
)

// UsageSource indica de dónde sale el uso esperado de un equipo: derivado
// del uso de vacunas o introducido a mano en los insumos del plan.
type UsageSource int

const (
	UsageManual UsageSource = iota
	UsageDerived
)

// ResolveUsage decide el uso esperado de un equipo. El uso derivado del
// movimiento de vacunas manda sobre el introducido a mano.
func ResolveUsage(derived float64, hasDerived bool, manual float64) (float64, UsageSource) {
	if hasDerived {
		return derived, UsageDerived
	}
	return manual, UsageManual
}

// DeriveEquipmentUsage deriva el uso esperado de equipo del uso esperado de
// vacunas del año previo. Jeringas de administración una por dosis; jeringas
// de dilución un vial completo por apertura, de ahí el redondeo hacia arriba;
// cajas de seguridad del total de jeringas.
func DeriveEquipmentUsage(
	vaccineUsage map[string]float64,
	vaccines map[string]entity.Vaccine,
	equipment map[string]entity.Equipment,
) map[string]float64 {

	usage := make(map[string]float64)

	for vaccineID, usageDoses := range vaccineUsage {
		if usageDoses <= 0 {
			continue
		}
		vaccine, ok := vaccines[vaccineID]
		if !ok {
			continue
		}
		if vaccine.AdministrationSyringeID != "" {
			usage[vaccine.AdministrationSyringeID] += usageDoses
		}
		if vaccine.DilutionSyringeID != "" && vaccine.DosesPerVial > 0 {
			usage[vaccine.DilutionSyringeID] += math.Ceil(usageDoses / float64(vaccine.DosesPerVial))
		}
	}

	safetyBox := findSafetyBox(equipment)
	if safetyBox != nil && safetyBox.DisposalCapacity > 0 {
		var totalSyringes float64
		for equipmentID, qty := range usage {
			if eq, ok := equipment[equipmentID]; ok && eq.EquipmentType.IsSyringe() {
				totalSyringes += qty
			}
		}
		if totalSyringes > 0 {
			usage[safetyBox.ID] = totalSyringes / (safetyBox.DisposalCapacity * (1 + safetyBox.SafetyFactor/100))
		}
	}

	return usage
}

// BOYInventory inventario al inicio del año de planificación:
// en mano + embarques esperados - uso esperado del resto del año previo.
func BOYInventory(input entity.InventoryInput, usage float64) float64 {
	return input.OnHand + input.ExpShipments - usage
}

// VaccineBuffer stock de colchón de una vacuna en dosis. BufferStock se
// expresa en meses de suministro sobre el pronóstico anual.
func VaccineBuffer(bufferStockMonths, annualForecast float64) float64 {
	return bufferStockMonths * (annualForecast / 12)
}

// EquipmentBuffers deriva colchones de equipo del colchón de cada vacuna.
// El colchón de vacuna está en dosis con desperdicio; la jeringa de
// administración cubre sólo dosis efectivamente aplicadas, de ahí el
// descuento por la tasa de desperdicio. La caja de seguridad lleva su
// propio colchón sobre el total de jeringas de colchón.
func EquipmentBuffers(
	vaccineBuffers map[string]float64,
	wastageRates map[string]float64,
	vaccines map[string]entity.Vaccine,
	equipment map[string]entity.Equipment,
) map[string]float64 {

	buffers := make(map[string]float64)
	for vaccineID, bufferDoses := range vaccineBuffers {
		if bufferDoses <= 0 {
			continue
		}
		vaccine, ok := vaccines[vaccineID]
		if !ok {
			continue
		}
		if vaccine.AdministrationSyringeID != "" {
			buffers[vaccine.AdministrationSyringeID] += bufferDoses * (1 - wastageRates[vaccineID])
		}
		if vaccine.DilutionSyringeID != "" && vaccine.DosesPerVial > 0 {
			buffers[vaccine.DilutionSyringeID] += math.Ceil(bufferDoses / float64(vaccine.DosesPerVial))
		}
	}

	safetyBox := findSafetyBox(equipment)
	if safetyBox != nil && safetyBox.DisposalCapacity > 0 {
		var totalSyringes float64
		for equipmentID, qty := range buffers {
			if eq, ok := equipment[equipmentID]; ok && eq.EquipmentType.IsSyringe() {
				totalSyringes += qty
			}
		}
		if totalSyringes > 0 {
			buffers[safetyBox.ID] += totalSyringes / (safetyBox.DisposalCapacity * (1 + safetyBox.SafetyFactor/100))
		}
	}

	return buffers
}

// RecommendedProcurement compra recomendada: lo que falta para cubrir
// pronóstico más colchón una vez descontado el inventario inicial.
func RecommendedProcurement(forecast, buffer, boy float64) float64 {
	return math.Max(0, forecast+buffer-boy)
}

// TotalInventoryValue valor monetario del inventario inicial: la suma de
// BOY por precio unitario de cada artículo, ignorando posiciones negativas.
func TotalInventoryValue(boys map[string]float64, unitPrices map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for itemID, boy := range boys {
		if boy <= 0 {
			continue
		}
		price, ok := unitPrices[itemID]
		if !ok {
			continue
		}
		total = total.Add(price.Mul(decimal.NewFromFloat(boy)))
	}
	return total
}

// NetFundingAsk monto a solicitar: el costo de la compra propuesta menos el
// valor del inventario que ya se tiene. Puede resultar negativo cuando el
// inventario vale más que la compra; el llamador decide cómo presentarlo.
func NetFundingAsk(proposed map[string]float64, unitPrices map[string]decimal.Decimal, inventoryValue decimal.Decimal) decimal.Decimal {
	cost := decimal.Zero
	for itemID, qty := range proposed {
		if qty <= 0 {
			continue
		}
		price, ok := unitPrices[itemID]
		if !ok {
			continue
		}
		cost = cost.Add(price.Mul(decimal.NewFromFloat(qty)))
	}
	return cost.Sub(inventoryValue)
}

// FundingPercentage fracción del monto solicitado cubierta por los
// financiadores, acotada a 1. Sin monto solicitado o sin compromisos la
// fracción es 0.
func FundingPercentage(netAsk, totalCommitted decimal.Decimal) float64 {
	if netAsk.LessThanOrEqual(decimal.Zero) || totalCommitted.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	pct, _ := totalCommitted.Div(netAsk).Float64()
	return math.Min(1, pct)
}

// TotalCommitted suma de los montos comprometidos por los financiadores.
func TotalCommitted(funders []entity.Funder) decimal.Decimal {
	total := decimal.Zero
	for _, f := range funders {
		total = total.Add(f.Committed)
	}
	return total
}

// ConstrainForecast escala el pronóstico por la fracción financiada. Las
// dosis administradas y las dosis con desperdicio se escalan por igual.
// Con fracción 0 no hay pronóstico restringido que mostrar.
func ConstrainForecast(
	fundingPct float64,
	forecasts map[string]float64,
	administered map[string]float64,
	names map[string]string,
) *entity.ConstrainedForecast {

	cf := &entity.ConstrainedForecast{
		FundingPercentage: fundingPct,
		Forecasts:         make(map[string]entity.ConstrainedItem),
	}
	if fundingPct <= 0 {
		return cf
	}
	for itemID, original := range forecasts {
		cf.Forecasts[itemID] = entity.ConstrainedItem{
			ID:               itemID,
			Name:             names[itemID],
			Original:         original,
			Constrained:      original * fundingPct,
			ConstrainedAdmin: administered[itemID] * fundingPct,
		}
	}
	return cf
}
