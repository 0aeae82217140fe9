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

var _ repository.CountryRepository = (*CountryRepo)(nil)

// CountryRepo implementación del puerto CountryRepository sobre PostgreSQL.
// Proyecciones y grupos objetivo se guardan como JSONB dentro de la fila.
type CountryRepo struct {
	pool *pgxpool.Pool
}

// NewCountryRepository construye el adaptador de persistencia para países.
func NewCountryRepository(pool *pgxpool.Pool) *CountryRepo {
	return &CountryRepo{pool: pool}
}

// Create persiste un país nuevo.
func (r *CountryRepo) Create(ctx context.Context, country *entity.Country) error {
	projections, groups, err := marshalCountryDocs(country)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO countries (id, name, population, annual_growth_rate, projections, target_groups, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err = r.pool.Exec(ctx, query,
		country.ID, country.Name, country.Population, country.AnnualGrowthRate,
		projections, groups, country.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert country: %w", err)
	}
	return nil
}

// GetByID obtiene un país por id, o (nil, nil) si no existe.
func (r *CountryRepo) GetByID(ctx context.Context, id string) (*entity.Country, error) {
	query := `
		SELECT id, name, population, annual_growth_rate, projections, target_groups, updated_at
		FROM countries WHERE id = $1`
	country, err := scanCountry(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get country: %w", err)
	}
	return country, nil
}

// List devuelve todos los países ordenados por nombre.
func (r *CountryRepo) List(ctx context.Context) ([]*entity.Country, error) {
	query := `
		SELECT id, name, population, annual_growth_rate, projections, target_groups, updated_at
		FROM countries ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	defer rows.Close()

	var countries []*entity.Country
	for rows.Next() {
		country, err := scanCountry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan country: %w", err)
		}
		countries = append(countries, country)
	}
	return countries, rows.Err()
}

// Update reemplaza la fila completa del país.
func (r *CountryRepo) Update(ctx context.Context, country *entity.Country) error {
	projections, groups, err := marshalCountryDocs(country)
	if err != nil {
		return err
	}
	query := `
		UPDATE countries
		SET name = $2, population = $3, annual_growth_rate = $4, projections = $5, target_groups = $6, updated_at = $7
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query,
		country.ID, country.Name, country.Population, country.AnnualGrowthRate,
		projections, groups, country.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update country: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateProjections reemplaza sólo las proyecciones de población.
func (r *CountryRepo) UpdateProjections(ctx context.Context, id string, projections []entity.Projection) error {
	doc, err := json.Marshal(projections)
	if err != nil {
		return fmt.Errorf("marshal projections: %w", err)
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE countries SET projections = $2, updated_at = now() WHERE id = $1`, id, doc)
	if err != nil {
		return fmt.Errorf("update projections: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateTargetGroups reemplaza sólo los grupos objetivo.
func (r *CountryRepo) UpdateTargetGroups(ctx context.Context, id string, groups []entity.TargetGroup) error {
	doc, err := json.Marshal(groups)
	if err != nil {
		return fmt.Errorf("marshal target groups: %w", err)
	}
	tag, err := r.pool.Exec(ctx,
		`UPDATE countries SET target_groups = $2, updated_at = now() WHERE id = $1`, id, doc)
	if err != nil {
		return fmt.Errorf("update target groups: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func marshalCountryDocs(country *entity.Country) ([]byte, []byte, error) {
	projections, err := json.Marshal(country.Projections)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal projections: %w", err)
	}
	groups, err := json.Marshal(country.TargetGroups)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal target groups: %w", err)
	}
	return projections, groups, nil
}

func scanCountry(row pgx.Row) (*entity.Country, error) {
	var c entity.Country
	var projections, groups []byte
	if err := row.Scan(&c.ID, &c.Name, &c.Population, &c.AnnualGrowthRate, &projections, &groups, &c.UpdatedAt); err != nil {
		return nil, err
	}
	if len(projections) > 0 {
		if err := json.Unmarshal(projections, &c.Projections); err != nil {
			return nil, fmt.Errorf("unmarshal projections: %w", err)
		}
	}
	if len(groups) > 0 {
		if err := json.Unmarshal(groups, &c.TargetGroups); err != nil {
			return nil, fmt.Errorf("unmarshal target groups: %w", err)
		}
	}
	return &c, nil
}
