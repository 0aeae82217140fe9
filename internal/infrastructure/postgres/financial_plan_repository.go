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

var _ repository.FinancialPlanRepository = (*FinancialPlanRepo)(nil)

// FinancialPlanRepo implementación del puerto FinancialPlanRepository sobre
// PostgreSQL. El plan completo va como JSONB; la clave natural país-año
// garantiza un único plan por combinación.
type FinancialPlanRepo struct {
	pool *pgxpool.Pool
}

// NewFinancialPlanRepository construye el adaptador de persistencia del plan financiero.
func NewFinancialPlanRepository(pool *pgxpool.Pool) *FinancialPlanRepo {
	return &FinancialPlanRepo{pool: pool}
}

// Get lee el plan de un país-año, o (nil, nil) si todavía no se guardó.
func (r *FinancialPlanRepo) Get(ctx context.Context, country string, planningYear int) (*entity.FinancialPlan, error) {
	query := `SELECT payload FROM financial_plans WHERE id = $1`
	var payload []byte
	err := r.pool.QueryRow(ctx, query, entity.PlanID(country, planningYear)).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get financial plan: %w", err)
	}
	var plan entity.FinancialPlan
	if err := json.Unmarshal(payload, &plan); err != nil {
		return nil, fmt.Errorf("unmarshal financial plan: %w", err)
	}
	return &plan, nil
}

// Upsert reemplaza el documento completo del plan.
func (r *FinancialPlanRepo) Upsert(ctx context.Context, plan *entity.FinancialPlan) error {
	payload, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("marshal financial plan: %w", err)
	}
	query := `
		INSERT INTO financial_plans (id, country, planning_year, payload, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`
	_, err = r.pool.Exec(ctx, query, plan.ID(), plan.Country, plan.PlanningYear, payload, plan.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert financial plan: %w", err)
	}
	return nil
}
