package forecasting

import (
	"context"
	"time"

	"github.com/tu-usuario/vaxplan-api/internal/application/dto"
	"github.com/tu-usuario/vaxplan-api/internal/domain"
	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
	"github.com/tu-usuario/vaxplan-api/internal/domain/forecast"
	"github.com/tu-usuario/vaxplan-api/internal/domain/repository"
)

// RunUnstratified corre el pronóstico demográfico no estratificado de un
// país y guarda el resultado de cada vacuna.
func (uc *ForecastUseCase) RunUnstratified(ctx context.Context, country string) (map[string]*entity.UnstratifiedForecast, error) {
	// 1. Prerequisitos
	c, err := uc.loadCountry(ctx, country)
	if err != nil {
		return nil, err
	}
	if len(c.Projections) == 0 {
		return nil, domain.MissingPrerequisite("proyecciones de población")
	}
	programs, err := uc.loadPrograms(ctx, country)
	if err != nil {
		return nil, err
	}
	vaccines, err := uc.vaccinesByID(ctx)
	if err != nil {
		return nil, err
	}

	// 2. Cálculo puro
	results := forecast.CalculateUnstratified(c, programs, vaccines, uc.years())

	// 3. Persistir todas las vacunas en una sola transacción
	err = uc.txRunner.RunForecast(ctx, func(forecastRepo repository.ForecastRepository) error {
		for _, fc := range results {
			if err := forecastRepo.SaveUnstratified(ctx, fc); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// ListUnstratified devuelve los pronósticos no estratificados guardados.
func (uc *ForecastUseCase) ListUnstratified(ctx context.Context, country string) (map[string]*entity.UnstratifiedForecast, error) {
	return uc.forecastRepo.ListUnstratified(ctx, country)
}

// UpdateUnstratifiedRates edita cobertura y desperdicio de un pronóstico ya
// corrido sin volver a correr la demografía completa.
func (uc *ForecastUseCase) UpdateUnstratifiedRates(ctx context.Context, country, vaccineID string, in dto.UpdateRatesRequest) (*entity.UnstratifiedForecast, error) {
	saved, err := uc.forecastRepo.ListUnstratified(ctx, country)
	if err != nil {
		return nil, err
	}
	fc, ok := saved[vaccineID]
	if !ok {
		return nil, domain.ErrNotFound
	}

	rates := make(map[int]entity.ForecastYear, len(in.Rates))
	for year, edit := range in.Rates {
		rates[year] = entity.ForecastYear{CoverageRate: edit.CoverageRate, WastageRate: edit.WastageRate}
	}
	forecast.ApplyUnstratifiedRates(fc, in.TargetGroupID, rates)

	if err := uc.forecastRepo.SaveUnstratified(ctx, fc); err != nil {
		return nil, err
	}
	return fc, nil
}

// RunStratified corre el pronóstico estratificado de un país y guarda la
// instantánea. Los porcentajes de estrato que exceden 100 advierten sin
// bloquear.
func (uc *ForecastUseCase) RunStratified(ctx context.Context, country string, in dto.RunStratifiedRequest) (*entity.StratifiedForecast, error) {
	c, err := uc.loadCountry(ctx, country)
	if err != nil {
		return nil, err
	}
	if len(c.Projections) == 0 {
		return nil, domain.MissingPrerequisite("proyecciones de población")
	}
	programs, err := uc.loadPrograms(ctx, country)
	if err != nil {
		return nil, err
	}
	vaccines, err := uc.vaccinesByID(ctx)
	if err != nil {
		return nil, err
	}

	fc := forecast.CalculateStratified(c, programs, vaccines, in.Strata, in.ParamsMap(), uc.years())
	fc.ScenarioName = in.ScenarioName

	if err := uc.forecastRepo.SaveStratified(ctx, fc); err != nil {
		return nil, err
	}
	return fc, nil
}

// LatestStratified devuelve la instantánea estratificada más reciente.
func (uc *ForecastUseCase) LatestStratified(ctx context.Context, country string) (*entity.StratifiedForecast, error) {
	return uc.forecastRepo.LatestStratified(ctx, country)
}

// RunConsumption corre el pronóstico por consumo histórico para la fuente
// dada y guarda la instantánea.
func (uc *ForecastUseCase) RunConsumption(ctx context.Context, country string, source entity.ConsumptionSource, in dto.RunConsumptionRequest) (*entity.ConsumptionForecast, error) {
	if source != entity.ConsumptionHealthCenter && source != entity.ConsumptionSupplyChain {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.loadCountry(ctx, country); err != nil {
		return nil, err
	}

	fc := forecast.CalculateConsumption(country, source, in.GrowthRate, in.Data, uc.years())

	if err := uc.forecastRepo.SaveConsumption(ctx, fc); err != nil {
		return nil, err
	}
	return fc, nil
}

// LatestConsumption devuelve la instantánea de consumo más reciente de la fuente.
func (uc *ForecastUseCase) LatestConsumption(ctx context.Context, country string, source entity.ConsumptionSource) (*entity.ConsumptionForecast, error) {
	return uc.forecastRepo.LatestConsumption(ctx, country, source)
}

// UpdateConsumptionWastage edita la tasa de desperdicio promedio de una
// vacuna en la instantánea de consumo más reciente y la vuelve a guardar.
func (uc *ForecastUseCase) UpdateConsumptionWastage(ctx context.Context, country string, source entity.ConsumptionSource, vaccineID string, avgWastageRate float64) (*entity.ConsumptionForecast, error) {
	fc, err := uc.forecastRepo.LatestConsumption(ctx, country, source)
	if err != nil {
		return nil, err
	}
	if _, ok := fc.Results[vaccineID]; !ok {
		return nil, domain.ErrNotFound
	}

	forecast.ApplyConsumptionWastage(fc, vaccineID, avgWastageRate)

	if err := uc.forecastRepo.SaveConsumption(ctx, fc); err != nil {
		return nil, err
	}
	return fc, nil
}

// SaveManual guarda un pronóstico manual de una vacuna. No hay cálculo: las
// cifras entran tal como las escribió el usuario, junto con la descripción
// de su metodología.
func (uc *ForecastUseCase) SaveManual(ctx context.Context, country string, in dto.ManualForecastRequest) (*entity.ManualForecast, error) {
	if in.VaccineID == "" || len(in.Years) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.loadCountry(ctx, country); err != nil {
		return nil, err
	}

	fc := &entity.ManualForecast{
		VaccineID:   in.VaccineID,
		VaccineName: in.VaccineName,
		Country:     country,
		Description: in.Description,
		Years:       in.Years,
		UpdatedAt:   time.Now(),
	}
	if err := uc.forecastRepo.SaveManual(ctx, fc); err != nil {
		return nil, err
	}
	return fc, nil
}

// ListManual devuelve los pronósticos manuales guardados.
func (uc *ForecastUseCase) ListManual(ctx context.Context, country string) (map[string]*entity.ManualForecast, error) {
	return uc.forecastRepo.ListManual(ctx, country)
}
