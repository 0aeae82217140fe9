package planning

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/vaxplan-api/internal/application/dto"
	"github.com/tu-usuario/vaxplan-api/internal/domain"
	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
	"github.com/tu-usuario/vaxplan-api/internal/domain/forecast"
	"github.com/tu-usuario/vaxplan-api/internal/domain/repository"
	"github.com/tu-usuario/vaxplan-api/pkg/config"
)

// InventoryUseCase arma el calendario mensual de reabastecimiento del año de
// planificación a partir del plan financiero y los embarques fijados.
type InventoryUseCase struct {
	invRepo       repository.InventoryPlanRepository
	planRepo      repository.FinancialPlanRepository
	vaccineRepo   repository.VaccineRepository
	equipmentRepo repository.EquipmentRepository
	plan          config.PlanConfig
}

// NewInventoryUseCase construye el caso de uso del calendario de inventario.
func NewInventoryUseCase(
	invRepo repository.InventoryPlanRepository,
	planRepo repository.FinancialPlanRepository,
	vaccineRepo repository.VaccineRepository,
	equipmentRepo repository.EquipmentRepository,
	plan config.PlanConfig,
) *InventoryUseCase {
	return &InventoryUseCase{
		invRepo:       invRepo,
		planRepo:      planRepo,
		vaccineRepo:   vaccineRepo,
		equipmentRepo: equipmentRepo,
		plan:          plan,
	}
}

// BuildPlans calcula el calendario de los doce meses para cada artículo del
// país. La demanda mensual sale del pronóstico restringido del plan
// financiero; sin financiamiento la demanda es cero y no hay recomendaciones.
// El inventario inicial y los límites de compra también salen del plan.
func (uc *InventoryUseCase) BuildPlans(ctx context.Context, country string) (*dto.InventoryPlanResponse, error) {
	year := uc.plan.PlanningYear()

	finPlan, err := uc.planRepo.Get(ctx, country, year)
	if err != nil {
		return nil, err
	}
	if finPlan == nil {
		return nil, domain.MissingPrerequisite("plan financiero")
	}

	vaccines, err := uc.vaccineList(ctx)
	if err != nil {
		return nil, err
	}
	equipment, err := uc.equipmentList(ctx)
	if err != nil {
		return nil, err
	}
	saved, err := uc.invRepo.ListByCountry(ctx, country)
	if err != nil {
		return nil, err
	}
	shipments := make(map[string]map[string]float64, len(saved))
	for _, p := range saved {
		shipments[p.ItemID] = p.Shipments
	}

	// Demanda mensual por vacuna desde el pronóstico restringido: dosis con
	// desperdicio para la vacuna misma, dosis aplicadas para las jeringas.
	monthlyAdmin := make(map[string]float64, len(vaccines))
	monthlyWastage := make(map[string]float64, len(vaccines))
	for id := range vaccines {
		if cf := finPlan.ConstrainedForecast; cf != nil {
			if item, ok := cf.Forecasts[id]; ok {
				monthlyAdmin[id] = forecast.MonthlyVaccineDemand(item.ConstrainedAdmin)
				monthlyWastage[id] = forecast.MonthlyVaccineDemand(item.Constrained)
			}
		}
	}
	monthlyEquipmentDemand := forecast.MonthlyEquipmentDemand(monthlyAdmin, monthlyWastage, vaccines, equipment)

	resp := &dto.InventoryPlanResponse{
		Country:      country,
		PlanningYear: year,
		TotalCost:    decimal.Zero,
	}

	for id, v := range vaccines {
		boy := forecast.BOYInventory(finPlan.VaccineInputs[id], finPlan.VaccineInputs[id].ExpUsage)
		rows := forecast.BuildItemPlan(year, monthlyWastage[id], boy, v.MinInventory, v.MaxInventory, shipments[id])
		resp.Items = append(resp.Items, uc.itemResponse(finPlan, id, v.VaccineName, "vaccine", rows, v.PricePerDose, shipments[id]))
	}
	for id, e := range equipment {
		input := finPlan.EquipmentInputs[id]
		usage := input.ExpUsage
		if derived, ok := finPlan.CalculatedEquipmentUsage[id]; ok {
			usage, _ = forecast.ResolveUsage(derived, true, input.ExpUsage)
		}
		boy := forecast.BOYInventory(input, usage)
		rows := forecast.BuildItemPlan(year, monthlyEquipmentDemand[id], boy, 0, 0, shipments[id])
		resp.Items = append(resp.Items, uc.itemResponse(finPlan, id, e.EquipmentName, "equipment", rows, e.EquipmentCost.Add(e.EquipmentFreight), shipments[id]))
	}

	sort.Slice(resp.Items, func(i, j int) bool {
		if resp.Items[i].ItemKind != resp.Items[j].ItemKind {
			return resp.Items[i].ItemKind > resp.Items[j].ItemKind // vacunas primero
		}
		return resp.Items[i].ItemName < resp.Items[j].ItemName
	})

	for _, item := range resp.Items {
		resp.TotalCost = resp.TotalCost.Add(item.TotalCost)
		if item.OverBudget {
			resp.Warnings = append(resp.Warnings, fmt.Sprintf(
				"los embarques planificados de %s (%.0f) exceden la compra propuesta de %.0f",
				item.ItemName, item.PlannedShipments, item.ProcurementLimit))
		}
	}

	return resp, nil
}

func (uc *InventoryUseCase) itemResponse(
	finPlan *entity.FinancialPlan,
	id, name, kind string,
	rows []entity.MonthPlan,
	unitPrice decimal.Decimal,
	shipments map[string]float64,
) dto.InventoryItemPlanResponse {
	planned := forecast.PlannedShipmentsTotal(shipments)
	limit := finPlan.ProposedProcurement[id]
	return dto.InventoryItemPlanResponse{
		ItemID:           id,
		ItemName:         name,
		ItemKind:         kind,
		Months:           rows,
		TotalCost:        forecast.ShipmentsCost(rows, unitPrice),
		PlannedShipments: planned,
		ProcurementLimit: limit,
		OverBudget:       forecast.OverProcurementLimit(planned, limit),
	}
}

// SaveShipments fija los embarques de un artículo mes a mes y devuelve el
// calendario del país recalculado. Un mes presente con valor cero también
// reemplaza a la recomendación de ese mes.
func (uc *InventoryUseCase) SaveShipments(ctx context.Context, country, itemID string, in dto.SaveShipmentsRequest) (*dto.InventoryPlanResponse, error) {
	for month := range in.Shipments {
		if _, err := time.Parse("2006-01", month); err != nil {
			return nil, domain.ErrInvalidInput
		}
	}

	plan := &entity.InventoryPlan{
		ItemID:      itemID,
		Country:     country,
		Shipments:   in.Shipments,
		LastUpdated: time.Now(),
	}
	if err := uc.invRepo.Upsert(ctx, plan); err != nil {
		return nil, err
	}
	return uc.BuildPlans(ctx, country)
}

func (uc *InventoryUseCase) vaccineList(ctx context.Context) (map[string]entity.Vaccine, error) {
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

func (uc *InventoryUseCase) equipmentList(ctx context.Context) (map[string]entity.Equipment, error) {
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
