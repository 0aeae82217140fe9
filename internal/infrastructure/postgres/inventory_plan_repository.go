package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
	"github.com/tu-usuario/vaxplan-api/internal/domain/repository"
)

var _ repository.InventoryPlanRepository = (*InventoryPlanRepo)(nil)

// InventoryPlanRepo implementación del puerto InventoryPlanRepository sobre
// PostgreSQL. Sólo se persisten los embarques fijados, como JSONB mes -> cantidad.
type InventoryPlanRepo struct {
	pool *pgxpool.Pool
}

// NewInventoryPlanRepository construye el adaptador de persistencia de planes de inventario.
func NewInventoryPlanRepository(pool *pgxpool.Pool) *InventoryPlanRepo {
	return &InventoryPlanRepo{pool: pool}
}

// Get lee el plan de un artículo, o (nil, nil) si no tiene embarques fijados.
func (r *InventoryPlanRepo) Get(ctx context.Context, country, itemID string) (*entity.InventoryPlan, error) {
	query := `
		SELECT item_id, country, shipments, last_updated
		FROM inventory_plans WHERE country = $1 AND item_id = $2`
	plan, err := scanInventoryPlan(r.pool.QueryRow(ctx, query, country, itemID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory plan: %w", err)
	}
	return plan, nil
}

// ListByCountry devuelve los planes de todos los artículos del país.
func (r *InventoryPlanRepo) ListByCountry(ctx context.Context, country string) ([]*entity.InventoryPlan, error) {
	query := `
		SELECT item_id, country, shipments, last_updated
		FROM inventory_plans WHERE country = $1`
	rows, err := r.pool.Query(ctx, query, country)
	if err != nil {
		return nil, fmt.Errorf("list inventory plans: %w", err)
	}
	defer rows.Close()

	var plans []*entity.InventoryPlan
	for rows.Next() {
		plan, err := scanInventoryPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory plan: %w", err)
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}

// Upsert reemplaza los embarques fijados del artículo.
func (r *InventoryPlanRepo) Upsert(ctx context.Context, plan *entity.InventoryPlan) error {
	shipments, err := json.Marshal(plan.Shipments)
	if err != nil {
		return fmt.Errorf("marshal shipments: %w", err)
	}
	query := `
		INSERT INTO inventory_plans (country, item_id, shipments, last_updated)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (country, item_id)
		DO UPDATE SET shipments = EXCLUDED.shipments, last_updated = EXCLUDED.last_updated`
	_, err = r.pool.Exec(ctx, query, plan.Country, plan.ItemID, shipments, plan.LastUpdated)
	if err != nil {
		return fmt.Errorf("upsert inventory plan: %w", err)
	}
	return nil
}

func scanInventoryPlan(row pgx.Row) (*entity.InventoryPlan, error) {
	var plan entity.InventoryPlan
	var shipments []byte
	if err := row.Scan(&plan.ItemID, &plan.Country, &shipments, &plan.LastUpdated); err != nil {
		return nil, err
	}
	if len(shipments) > 0 {
		if err := json.Unmarshal(shipments, &plan.Shipments); err != nil {
			return nil, fmt.Errorf("unmarshal shipments: %w", err)
		}
	}
	return &plan, nil
}
