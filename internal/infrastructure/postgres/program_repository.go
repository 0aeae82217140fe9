package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/vaxplan-api/internal/domain"
	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
	"github.com/tu-usuario/vaxplan-api/internal/domain/repository"
)

var _ repository.ProgramRepository = (*ProgramRepo)(nil)

// ProgramRepo implementación del puerto ProgramRepository sobre PostgreSQL.
// Las vacunas del programa, con sus asignaciones de dosis, van como JSONB.
type ProgramRepo struct {
	pool *pgxpool.Pool
}

// NewProgramRepository construye el adaptador de persistencia para programas.
func NewProgramRepository(pool *pgxpool.Pool) *ProgramRepo {
	return &ProgramRepo{pool: pool}
}

// Create persiste un programa nuevo.
func (r *ProgramRepo) Create(ctx context.Context, p *entity.Program) error {
	vaccines, err := json.Marshal(p.Vaccines)
	if err != nil {
		return fmt.Errorf("marshal program vaccines: %w", err)
	}
	query := `
		INSERT INTO programs (id, country, program_category, program_name, start_date, end_date, vaccines)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.pool.Exec(ctx, query,
		p.ID, p.Country, p.ProgramCategory, p.ProgramName, p.StartDate, p.EndDate, vaccines)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert program: %w", err)
	}
	return nil
}

// GetByID obtiene un programa por id, o (nil, nil) si no existe.
func (r *ProgramRepo) GetByID(ctx context.Context, id string) (*entity.Program, error) {
	query := `
		SELECT id, country, program_category, program_name, start_date, end_date, vaccines
		FROM programs WHERE id = $1`
	p, err := scanProgram(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get program: %w", err)
	}
	return p, nil
}

// ListByCountry devuelve los programas de un país ordenados por nombre.
func (r *ProgramRepo) ListByCountry(ctx context.Context, country string) ([]*entity.Program, error) {
	query := `
		SELECT id, country, program_category, program_name, start_date, end_date, vaccines
		FROM programs WHERE country = $1 ORDER BY program_name`
	rows, err := r.pool.Query(ctx, query, country)
	if err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	defer rows.Close()

	var programs []*entity.Program
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, fmt.Errorf("scan program: %w", err)
		}
		programs = append(programs, p)
	}
	return programs, rows.Err()
}

// Update reemplaza la fila completa del programa.
func (r *ProgramRepo) Update(ctx context.Context, p *entity.Program) error {
	vaccines, err := json.Marshal(p.Vaccines)
	if err != nil {
		return fmt.Errorf("marshal program vaccines: %w", err)
	}
	query := `
		UPDATE programs
		SET program_category = $2, program_name = $3, start_date = $4, end_date = $5, vaccines = $6
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query,
		p.ID, p.ProgramCategory, p.ProgramName, p.StartDate, p.EndDate, vaccines)
	if err != nil {
		return fmt.Errorf("update program: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un programa.
func (r *ProgramRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM programs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete program: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProgram(row pgx.Row) (*entity.Program, error) {
	var p entity.Program
	var vaccines []byte
	if err := row.Scan(&p.ID, &p.Country, &p.ProgramCategory, &p.ProgramName, &p.StartDate, &p.EndDate, &vaccines); err != nil {
		return nil, err
	}
	if len(vaccines) > 0 {
		if err := json.Unmarshal(vaccines, &p.Vaccines); err != nil {
			return nil, fmt.Errorf("unmarshal program vaccines: %w", err)
		}
	}
	return &p, nil
}
