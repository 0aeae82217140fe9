package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/vaxplan-api/internal/domain"
	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
	"github.com/tu-usuario/vaxplan-api/internal/domain/repository"
)

var _ repository.EquipmentRepository = (*EquipmentRepo)(nil)

// EquipmentRepo implementación del puerto EquipmentRepository sobre PostgreSQL.
type EquipmentRepo struct {
	pool *pgxpool.Pool
}

// NewEquipmentRepository construye el adaptador de persistencia para equipo.
func NewEquipmentRepository(pool *pgxpool.Pool) *EquipmentRepo {
	return &EquipmentRepo{pool: pool}
}

const equipmentColumns = `
	id, equipment_name, equipment_type, equipment_code, equipment_units,
	equipment_cost, equipment_freight, disposal_capacity, safety_factor`

// Create persiste un equipo nuevo.
func (r *EquipmentRepo) Create(ctx context.Context, e *entity.Equipment) error {
	query := `
		INSERT INTO equipment (` + equipmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(ctx, query, equipmentArgs(e)...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert equipment: %w", err)
	}
	return nil
}

// GetByID obtiene un equipo por id, o (nil, nil) si no existe.
func (r *EquipmentRepo) GetByID(ctx context.Context, id string) (*entity.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1`
	e, err := scanEquipment(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get equipment: %w", err)
	}
	return e, nil
}

// List devuelve el catálogo completo ordenado por nombre.
func (r *EquipmentRepo) List(ctx context.Context) ([]*entity.Equipment, error) {
	query := `SELECT ` + equipmentColumns + ` FROM equipment ORDER BY equipment_name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	defer rows.Close()

	var items []*entity.Equipment
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

// Update reemplaza la fila completa del equipo.
func (r *EquipmentRepo) Update(ctx context.Context, e *entity.Equipment) error {
	query := `
		UPDATE equipment SET
			equipment_name = $2, equipment_type = $3, equipment_code = $4, equipment_units = $5,
			equipment_cost = $6, equipment_freight = $7, disposal_capacity = $8, safety_factor = $9
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, equipmentArgs(e)...)
	if err != nil {
		return fmt.Errorf("update equipment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un equipo.
func (r *EquipmentRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM equipment WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete equipment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func equipmentArgs(e *entity.Equipment) []any {
	return []any{
		e.ID, e.EquipmentName, e.EquipmentType, e.EquipmentCode, e.EquipmentUnits,
		e.EquipmentCost, e.EquipmentFreight, e.DisposalCapacity, e.SafetyFactor,
	}
}

func scanEquipment(row pgx.Row) (*entity.Equipment, error) {
	var e entity.Equipment
	err := row.Scan(
		&e.ID, &e.EquipmentName, &e.EquipmentType, &e.EquipmentCode, &e.EquipmentUnits,
		&e.EquipmentCost, &e.EquipmentFreight, &e.DisposalCapacity, &e.SafetyFactor,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
