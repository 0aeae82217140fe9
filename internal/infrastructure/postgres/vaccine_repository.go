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

var _ repository.VaccineRepository = (*VaccineRepo)(nil)

// VaccineRepo implementación del puerto VaccineRepository sobre PostgreSQL.
type VaccineRepo struct {
	pool *pgxpool.Pool
}

// NewVaccineRepository construye el adaptador de persistencia para vacunas.
func NewVaccineRepository(pool *pgxpool.Pool) *VaccineRepo {
	return &VaccineRepo{pool: pool}
}

const vaccineColumns = `
	id, vaccine_name, vaccine_type, doses_in_schedule, price_per_dose,
	vial_size, doses_per_vial, volume_per_dose, vials_per_box, procurement_lead_time,
	administration_syringe_id, dilution_syringe_id,
	buffer_stock, min_inventory, abs_min_inventory, max_inventory`

// Create persiste una vacuna nueva.
func (r *VaccineRepo) Create(ctx context.Context, v *entity.Vaccine) error {
	query := `
		INSERT INTO vaccines (` + vaccineColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err := r.pool.Exec(ctx, query, vaccineArgs(v)...)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert vaccine: %w", err)
	}
	return nil
}

// GetByID obtiene una vacuna por id, o (nil, nil) si no existe.
func (r *VaccineRepo) GetByID(ctx context.Context, id string) (*entity.Vaccine, error) {
	query := `SELECT ` + vaccineColumns + ` FROM vaccines WHERE id = $1`
	v, err := scanVaccine(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get vaccine: %w", err)
	}
	return v, nil
}

// List devuelve el catálogo completo ordenado por nombre.
func (r *VaccineRepo) List(ctx context.Context) ([]*entity.Vaccine, error) {
	query := `SELECT ` + vaccineColumns + ` FROM vaccines ORDER BY vaccine_name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list vaccines: %w", err)
	}
	defer rows.Close()

	var vaccines []*entity.Vaccine
	for rows.Next() {
		v, err := scanVaccine(rows)
		if err != nil {
			return nil, fmt.Errorf("scan vaccine: %w", err)
		}
		vaccines = append(vaccines, v)
	}
	return vaccines, rows.Err()
}

// Update reemplaza la fila completa de la vacuna.
func (r *VaccineRepo) Update(ctx context.Context, v *entity.Vaccine) error {
	query := `
		UPDATE vaccines SET
			vaccine_name = $2, vaccine_type = $3, doses_in_schedule = $4, price_per_dose = $5,
			vial_size = $6, doses_per_vial = $7, volume_per_dose = $8, vials_per_box = $9,
			procurement_lead_time = $10, administration_syringe_id = $11, dilution_syringe_id = $12,
			buffer_stock = $13, min_inventory = $14, abs_min_inventory = $15, max_inventory = $16
		WHERE id = $1`
	tag, err := r.pool.Exec(ctx, query, vaccineArgs(v)...)
	if err != nil {
		return fmt.Errorf("update vaccine: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una vacuna.
func (r *VaccineRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM vaccines WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vaccine: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func vaccineArgs(v *entity.Vaccine) []any {
	return []any{
		v.ID, v.VaccineName, v.VaccineType, v.DosesInSchedule, v.PricePerDose,
		v.VialSize, v.DosesPerVial, v.VolumePerDose, v.VialsPerBox, v.ProcurementLeadTime,
		v.AdministrationSyringeID, v.DilutionSyringeID,
		v.BufferStock, v.MinInventory, v.AbsMinInventory, v.MaxInventory,
	}
}

func scanVaccine(row pgx.Row) (*entity.Vaccine, error) {
	var v entity.Vaccine
	err := row.Scan(
		&v.ID, &v.VaccineName, &v.VaccineType, &v.DosesInSchedule, &v.PricePerDose,
		&v.VialSize, &v.DosesPerVial, &v.VolumePerDose, &v.VialsPerBox, &v.ProcurementLeadTime,
		&v.AdministrationSyringeID, &v.DilutionSyringeID,
		&v.BufferStock, &v.MinInventory, &v.AbsMinInventory, &v.MaxInventory,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
