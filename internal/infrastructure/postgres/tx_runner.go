package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/vaxplan-api/internal/application/forecasting"
	"github.com/tu-usuario/vaxplan-api/internal/domain/repository"
)

var _ forecasting.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunForecast inicia una transacción, ejecuta fn con un repositorio de
// pronósticos atado a la tx y hace Commit o Rollback. Así una corrida que
// guarda varias vacunas queda completa o no queda.
func (r *TxRunner) RunForecast(ctx context.Context, fn func(forecastRepo repository.ForecastRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewForecastRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
