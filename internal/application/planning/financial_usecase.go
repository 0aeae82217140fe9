// Package planning orquesta la planificación presupuestaria y de inventario
// del año siguiente a partir de las instantáneas de pronóstico guardadas.
package planning

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/vaxplan-api/internal/application/dto"
	"github.com/tu-usuario/vaxplan-api/internal/domain"
	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
	"github.com/tu-usuario/vaxplan-api/internal/domain/forecast"
	"github.com/tu-usuario/vaxplan-api/internal/domain/repository"
	"github.com/tu-usuario/vaxplan-api/pkg/config"
)

// FinancialUseCase arma el plan financiero de un país-año: inventario
// inicial, colchones, compra recomendada, financiamiento y pronóstico
// restringido.
type FinancialUseCase struct {
	planRepo      repository.FinancialPlanRepository
	forecastRepo  repository.ForecastRepository
	vaccineRepo   repository.VaccineRepository
	equipmentRepo repository.EquipmentRepository
	plan          config.PlanConfig
}

// NewFinancialUseCase construye el caso de uso del plan financiero.
func NewFinancialUseCase(
	planRepo repository.FinancialPlanRepository,
	forecastRepo repository.ForecastRepository,
	vaccineRepo repository.VaccineRepository,
	equipmentRepo repository.EquipmentRepository,
	plan config.PlanConfig,
) *FinancialUseCase {
	return &FinancialUseCase{
		planRepo:      planRepo,
		forecastRepo:  forecastRepo,
		vaccineRepo:   vaccineRepo,
		equipmentRepo: equipmentRepo,
		plan:          plan,
	}
}

// Get devuelve el plan financiero guardado con sus agregados recalculados.
// Sin plan guardado devuelve uno vacío listo para editar.
func (uc *FinancialUseCase) Get(ctx context.Context, country string) (*dto.FinancialPlanResponse, error) {
	year := uc.plan.PlanningYear()
	plan, err := uc.planRepo.Get(ctx, country, year)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		plan = &entity.FinancialPlan{
			Country:             country,
			PlanningYear:        year,
			VaccineInputs:       map[string]entity.InventoryInput{},
			EquipmentInputs:     map[string]entity.InventoryInput{},
			VaccineWastageRates: map[string]float64{},
			ProposedProcurement: map[string]float64{},
		}
	}
	return uc.compute(ctx, plan)
}

// Save guarda los insumos del plan, recalcula todos los agregados y persiste
// el plan completo en un único upsert. Si el guardado falla, el resultado
// calculado se devuelve junto con el error de persistencia para no perder
// el trabajo del usuario.
func (uc *FinancialUseCase) Save(ctx context.Context, country string, in dto.FinancialPlanRequest) (*dto.FinancialPlanResponse, error) {
	plan := &entity.FinancialPlan{
		Country:             country,
		PlanningYear:        uc.plan.PlanningYear(),
		VaccineInputs:       orEmptyInputs(in.VaccineInputs),
		EquipmentInputs:     orEmptyInputs(in.EquipmentInputs),
		VaccineWastageRates: orEmptyRates(in.VaccineWastageRates),
		Funders:             in.Funders,
		ProposedProcurement: orEmptyRates(in.ProposedProcurement),
	}

	resp, err := uc.compute(ctx, plan)
	if err != nil {
		return nil, err
	}

	plan.UpdatedAt = time.Now()
	if err := uc.planRepo.Upsert(ctx, plan); err != nil {
		return resp, fmt.Errorf("guardando plan financiero %s: %w", plan.ID(), err)
	}
	return resp, nil
}

// compute deriva todos los agregados del plan. Muta el plan recibido con los
// campos calculados (uso de equipo, datos de compra, pronóstico restringido)
// para que el upsert persista el documento completo.
func (uc *FinancialUseCase) compute(ctx context.Context, plan *entity.FinancialPlan) (*dto.FinancialPlanResponse, error) {
	combined, err := uc.forecastRepo.LatestCombined(ctx, plan.Country)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.MissingPrerequisite("pronóstico combinado")
		}
		return nil, err
	}
	equipmentFc, err := uc.forecastRepo.LatestEquipment(ctx, plan.Country)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	vaccines, err := uc.vaccineList(ctx)
	if err != nil {
		return nil, err
	}
	equipment, err := uc.equipmentList(ctx)
	if err != nil {
		return nil, err
	}

	year := plan.PlanningYear

	// Pronóstico anual por artículo: vacunas desde el combinado, equipo
	// desde la derivación de equipo si existe.
	forecasts := make(map[string]float64)
	administered := make(map[string]float64)
	names := make(map[string]string)
	unitPrices := make(map[string]decimal.Decimal)

	for id, v := range vaccines {
		names[id] = v.VaccineName
		unitPrices[id] = v.PricePerDose
		if vr, ok := combined.Results[id]; ok {
			forecasts[id] = vr.Years[year].FinalWithWastage
			administered[id] = vr.Years[year].FinalAdministered
		}
	}
	if equipmentFc != nil {
		for id, item := range equipmentFc.GrandTotals {
			forecasts[id] = item.Quantities[year]
			administered[id] = item.Quantities[year]
		}
	}
	for id, e := range equipment {
		names[id] = e.EquipmentName
		unitPrices[id] = e.EquipmentCost.Add(e.EquipmentFreight)
	}

	// Uso esperado de equipo: derivado del uso de vacunas cuando se puede,
	// manual cuando no.
	vaccineUsage := make(map[string]float64, len(plan.VaccineInputs))
	for id, input := range plan.VaccineInputs {
		vaccineUsage[id] = input.ExpUsage
	}
	derivedUsage := forecast.DeriveEquipmentUsage(vaccineUsage, vaccines, equipment)
	plan.CalculatedEquipmentUsage = derivedUsage

	// Inventario inicial y colchones.
	boys := make(map[string]float64)
	buffers := make(map[string]float64)
	vaccineBuffers := make(map[string]float64)

	for id, input := range plan.VaccineInputs {
		boys[id] = forecast.BOYInventory(input, input.ExpUsage)
	}
	for id, v := range vaccines {
		if fcDoses, ok := forecasts[id]; ok && v.BufferStock > 0 {
			buf := forecast.VaccineBuffer(v.BufferStock, fcDoses)
			buffers[id] = buf
			vaccineBuffers[id] = buf
		}
	}
	for id := range equipment {
		input := plan.EquipmentInputs[id]
		derived, hasDerived := derivedUsage[id]
		usage, _ := forecast.ResolveUsage(derived, hasDerived, input.ExpUsage)
		boys[id] = forecast.BOYInventory(input, usage)
	}
	for id, buf := range forecast.EquipmentBuffers(vaccineBuffers, plan.VaccineWastageRates, vaccines, equipment) {
		buffers[id] += buf
	}

	// Compra recomendada y propuesta por artículo.
	plan.ProcurementData = make(map[string]entity.ProcurementItem)
	proposed := make(map[string]float64)
	for id := range forecasts {
		recommended := forecast.RecommendedProcurement(forecasts[id], buffers[id], boys[id])
		qty, ok := plan.ProposedProcurement[id]
		if !ok {
			qty = recommended
		}
		proposed[id] = qty
		plan.ProcurementData[id] = entity.ProcurementItem{
			ItemID:      id,
			ItemName:    names[id],
			Forecast:    forecasts[id],
			Buffer:      buffers[id],
			BOY:         boys[id],
			Recommended: recommended,
			Proposed:    qty,
			UnitPrice:   unitPrices[id],
		}
	}

	// Financiamiento.
	inventoryValue := forecast.TotalInventoryValue(boys, unitPrices)
	netAsk := forecast.NetFundingAsk(proposed, unitPrices, inventoryValue)
	committed := forecast.TotalCommitted(plan.Funders)
	fundingPct := forecast.FundingPercentage(netAsk, committed)
	plan.ConstrainedForecast = forecast.ConstrainForecast(fundingPct, forecasts, administered, names)

	resp := &dto.FinancialPlanResponse{
		Country:             plan.Country,
		PlanningYear:        plan.PlanningYear,
		VaccineInputs:       plan.VaccineInputs,
		EquipmentInputs:     plan.EquipmentInputs,
		VaccineWastageRates: plan.VaccineWastageRates,
		ProposedProcurement: plan.ProposedProcurement,
		ProcurementData:     plan.ProcurementData,
		EquipmentUsage:      derivedUsage,
		TotalInventoryValue: inventoryValue,
		NetFundingAsk:       netAsk,
		TotalCommitted:      committed,
		ConstrainedForecast: plan.ConstrainedForecast,
	}

	var totalAllocation float64
	for _, f := range plan.Funders {
		resp.Funders = append(resp.Funders, dto.FunderResponse{
			ID:           f.ID,
			Name:         f.Name,
			Allocation:   f.Allocation,
			Committed:    f.Committed,
			AllocatedAsk: f.AllocatedAsk(netAsk),
		})
		totalAllocation += f.Allocation
	}
	if len(plan.Funders) > 0 && (totalAllocation < 99.99 || totalAllocation > 100.01) {
		resp.Warnings = append(resp.Warnings,
			fmt.Sprintf("las asignaciones de financiadores suman %.1f%% en lugar de 100%%", totalAllocation))
	}

	return resp, nil
}

func (uc *FinancialUseCase) vaccineList(ctx context.Context) (map[string]entity.Vaccine, error) {
	list, err := uc.vaccineRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	vaccines := make(map[string]entity.Vaccine, len(list))
	for _, v := range list {
		vaccines[v.ID] = *v
	}
	return vaccines, nil
}

func (uc *FinancialUseCase) equipmentList(ctx context.Context) (map[string]entity.Equipment, error) {
	list, err := uc.equipmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	equipment := make(map[string]entity.Equipment, len(list))
	for _, e := range list {
		equipment[e.ID] = *e
	}
	return equipment, nil
}

func orEmptyInputs(m map[string]entity.InventoryInput) map[string]entity.InventoryInput {
	if m == nil {
		return map[string]entity.InventoryInput{}
	}
	return m
}

func orEmptyRates(m map[string]float64) map[string]float64 {
	if m == nil {
		return map[string]float64{}
	}
	return m
}
