package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/vaxplan-api/internal/domain"
	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
	"github.com/tu-usuario/vaxplan-api/internal/domain/repository"
)

var _ repository.ForecastRepository = (*ForecastRepo)(nil)

// Clases de instantánea en forecast_snapshots. Los pronósticos por vacuna
// (no estratificado, manual) llevan vaccine_id y se sobreescriben; el resto
// insertan una fila nueva por corrida y se lee la más reciente.
const (
	kindUnstratified  = "unstratified"
	kindManual        = "manual"
	kindStratified    = "stratified"
	kindConsumptionHc = "consumption_hc"
	kindConsumptionSc = "consumption_sc"
	kindCombined      = "combined"
	kindEquipment     = "equipment"
)

// ForecastRepo implementación del puerto ForecastRepository sobre PostgreSQL.
// Todos los resultados van como JSONB en la tabla forecast_snapshots. Recibe
// un Querier para poder atarse a una transacción.
type ForecastRepo struct {
	db Querier
}

// NewForecastRepository construye el adaptador de persistencia para pronósticos.
func NewForecastRepository(db Querier) *ForecastRepo {
	return &ForecastRepo{db: db}
}

// SaveUnstratified guarda (o reemplaza) el pronóstico no estratificado de una vacuna.
func (r *ForecastRepo) SaveUnstratified(ctx context.Context, fc *entity.UnstratifiedForecast) error {
	return r.upsertPerVaccine(ctx, kindUnstratified, fc.Country, fc.VaccineID, fc)
}

// ListUnstratified devuelve los pronósticos no estratificados guardados, por vacuna.
func (r *ForecastRepo) ListUnstratified(ctx context.Context, country string) (map[string]*entity.UnstratifiedForecast, error) {
	out := make(map[string]*entity.UnstratifiedForecast)
	err := r.listPerVaccine(ctx, kindUnstratified, country, func(vaccineID string, payload []byte) error {
		var fc entity.UnstratifiedForecast
		if err := json.Unmarshal(payload, &fc); err != nil {
			return err
		}
		out[vaccineID] = &fc
		return nil
	})
	return out, err
}

// SaveManual guarda (o reemplaza) el pronóstico manual de una vacuna.
func (r *ForecastRepo) SaveManual(ctx context.Context, fc *entity.ManualForecast) error {
	return r.upsertPerVaccine(ctx, kindManual, fc.Country, fc.VaccineID, fc)
}

// ListManual devuelve los pronósticos manuales guardados, por vacuna.
func (r *ForecastRepo) ListManual(ctx context.Context, country string) (map[string]*entity.ManualForecast, error) {
	out := make(map[string]*entity.ManualForecast)
	err := r.listPerVaccine(ctx, kindManual, country, func(vaccineID string, payload []byte) error {
		var fc entity.ManualForecast
		if err := json.Unmarshal(payload, &fc); err != nil {
			return err
		}
		out[vaccineID] = &fc
		return nil
	})
	return out, err
}

// SaveStratified inserta una nueva instantánea estratificada.
func (r *ForecastRepo) SaveStratified(ctx context.Context, fc *entity.StratifiedForecast) error {
	return r.insertSnapshot(ctx, kindStratified, fc.Country, fc)
}

// LatestStratified lee la instantánea estratificada más reciente.
func (r *ForecastRepo) LatestStratified(ctx context.Context, country string) (*entity.StratifiedForecast, error) {
	var fc entity.StratifiedForecast
	if err := r.latestSnapshot(ctx, kindStratified, country, &fc); err != nil {
		return nil, err
	}
	return &fc, nil
}

// SaveConsumption inserta una nueva instantánea de consumo de la fuente del pronóstico.
func (r *ForecastRepo) SaveConsumption(ctx context.Context, fc *entity.ConsumptionForecast) error {
	return r.insertSnapshot(ctx, consumptionKind(fc.Source), fc.Country, fc)
}

// LatestConsumption lee la instantánea de consumo más reciente de la fuente.
func (r *ForecastRepo) LatestConsumption(ctx context.Context, country string, source entity.ConsumptionSource) (*entity.ConsumptionForecast, error) {
	var fc entity.ConsumptionForecast
	if err := r.latestSnapshot(ctx, consumptionKind(source), country, &fc); err != nil {
		return nil, err
	}
	return &fc, nil
}

// SaveCombined inserta una nueva instantánea combinada.
func (r *ForecastRepo) SaveCombined(ctx context.Context, fc *entity.CombinedForecast) error {
	return r.insertSnapshot(ctx, kindCombined, fc.Country, fc)
}

// LatestCombined lee la instantánea combinada más reciente.
func (r *ForecastRepo) LatestCombined(ctx context.Context, country string) (*entity.CombinedForecast, error) {
	var fc entity.CombinedForecast
	if err := r.latestSnapshot(ctx, kindCombined, country, &fc); err != nil {
		return nil, err
	}
	return &fc, nil
}

// SaveEquipment inserta una nueva instantánea de requerimientos de equipo.
func (r *ForecastRepo) SaveEquipment(ctx context.Context, fc *entity.EquipmentForecast) error {
	return r.insertSnapshot(ctx, kindEquipment, fc.Country, fc)
}

// LatestEquipment lee la instantánea de equipo más reciente.
func (r *ForecastRepo) LatestEquipment(ctx context.Context, country string) (*entity.EquipmentForecast, error) {
	var fc entity.EquipmentForecast
	if err := r.latestSnapshot(ctx, kindEquipment, country, &fc); err != nil {
		return nil, err
	}
	return &fc, nil
}

func consumptionKind(source entity.ConsumptionSource) string {
	if source == entity.ConsumptionSupplyChain {
		return kindConsumptionSc
	}
	return kindConsumptionHc
}

func (r *ForecastRepo) upsertPerVaccine(ctx context.Context, kind, country, vaccineID string, payload any) error {
	doc, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s forecast: %w", kind, err)
	}
	query := `
		INSERT INTO forecast_snapshots (id, kind, country, vaccine_id, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (kind, country, vaccine_id) WHERE vaccine_id <> ''
		DO UPDATE SET payload = EXCLUDED.payload, created_at = EXCLUDED.created_at`
	_, err = r.db.Exec(ctx, query, uuid.New().String(), kind, country, vaccineID, doc, time.Now())
	if err != nil {
		return fmt.Errorf("upsert %s forecast: %w", kind, err)
	}
	return nil
}

func (r *ForecastRepo) listPerVaccine(ctx context.Context, kind, country string, each func(vaccineID string, payload []byte) error) error {
	query := `
		SELECT vaccine_id, payload FROM forecast_snapshots
		WHERE kind = $1 AND country = $2 AND vaccine_id <> ''`
	rows, err := r.db.Query(ctx, query, kind, country)
	if err != nil {
		return fmt.Errorf("list %s forecasts: %w", kind, err)
	}
	defer rows.Close()

	for rows.Next() {
		var vaccineID string
		var payload []byte
		if err := rows.Scan(&vaccineID, &payload); err != nil {
			return fmt.Errorf("scan %s forecast: %w", kind, err)
		}
		if err := each(vaccineID, payload); err != nil {
			return fmt.Errorf("unmarshal %s forecast: %w", kind, err)
		}
	}
	return rows.Err()
}

func (r *ForecastRepo) insertSnapshot(ctx context.Context, kind, country string, payload any) error {
	doc, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s snapshot: %w", kind, err)
	}
	query := `
		INSERT INTO forecast_snapshots (id, kind, country, vaccine_id, payload, created_at)
		VALUES ($1, $2, $3, '', $4, $5)`
	_, err = r.db.Exec(ctx, query, uuid.New().String(), kind, country, doc, time.Now())
	if err != nil {
		return fmt.Errorf("insert %s snapshot: %w", kind, err)
	}
	return nil
}

func (r *ForecastRepo) latestSnapshot(ctx context.Context, kind, country string, out any) error {
	query := `
		SELECT payload FROM forecast_snapshots
		WHERE kind = $1 AND country = $2 AND vaccine_id = ''
		ORDER BY created_at DESC LIMIT 1`
	var payload []byte
	err := r.db.QueryRow(ctx, query, kind, country).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("latest %s snapshot: %w", kind, err)
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("unmarshal %s snapshot: %w", kind, err)
	}
	return nil
}
