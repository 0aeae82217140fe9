package repository

import (
	"context"

	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
)

// FinancialPlanRepository define el puerto de persistencia para el plan
// financiero (DIP). Hay un único plan por país y año de planificación; Upsert
// reemplaza el documento completo. Get devuelve (nil, nil) cuando todavía no
// se ha guardado ningún plan.
type FinancialPlanRepository interface {
	Get(ctx context.Context, country string, planningYear int) (*entity.FinancialPlan, error)
	Upsert(ctx context.Context, plan *entity.FinancialPlan) error
}
