package repository

import (
	"context"

	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
)

// ForecastRepository define el puerto de persistencia para los resultados de
// pronóstico (DIP). Los no estratificados y manuales se guardan por vacuna;
// el resto son instantáneas por país y se lee siempre la más reciente.
// Cuando no hay instantánea guardada los métodos Latest* devuelven
// domain.ErrNotFound.
type ForecastRepository interface {
	SaveUnstratified(ctx context.Context, fc *entity.UnstratifiedForecast) error
	ListUnstratified(ctx context.Context, country string) (map[string]*entity.UnstratifiedForecast, error)

	SaveManual(ctx context.Context, fc *entity.ManualForecast) error
	ListManual(ctx context.Context, country string) (map[string]*entity.ManualForecast, error)

	SaveStratified(ctx context.Context, fc *entity.StratifiedForecast) error
	LatestStratified(ctx context.Context, country string) (*entity.StratifiedForecast, error)

	SaveConsumption(ctx context.Context, fc *entity.ConsumptionForecast) error
	LatestConsumption(ctx context.Context, country string, source entity.ConsumptionSource) (*entity.ConsumptionForecast, error)

	SaveCombined(ctx context.Context, fc *entity.CombinedForecast) error
	LatestCombined(ctx context.Context, country string) (*entity.CombinedForecast, error)

	SaveEquipment(ctx context.Context, fc *entity.EquipmentForecast) error
	LatestEquipment(ctx context.Context, country string) (*entity.EquipmentForecast, error)
}
