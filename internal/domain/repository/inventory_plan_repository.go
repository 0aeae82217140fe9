package repository

import (
	"context"

	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
)

// InventoryPlanRepository define el puerto de persistencia para los planes
// de inventario (DIP). Se persisten sólo los embarques fijados por el
// usuario; el calendario se recalcula en cada lectura. Get devuelve
// (nil, nil) cuando el artículo no tiene embarques fijados.
type InventoryPlanRepository interface {
	Get(ctx context.Context, country, itemID string) (*entity.InventoryPlan, error)
	ListByCountry(ctx context.Context, country string) ([]*entity.InventoryPlan, error)
	Upsert(ctx context.Context, plan *entity.InventoryPlan) error
}
