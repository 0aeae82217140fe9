package forecasting

import (
	"context"
	"errors"

	"github.com/tu-usuario/vaxplan-api/internal/application/dto"
	"github.com/tu-usuario/vaxplan-api/internal/domain"
	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
	"github.com/tu-usuario/vaxplan-api/internal/domain/forecast"
)

// RunCombined pondera los métodos disponibles según los pesos del usuario y
// guarda la instantánea combinada. Un método sin datos guardados aporta
// cero dosis; no hace falta haber corrido los cinco.
func (uc *ForecastUseCase) RunCombined(ctx context.Context, country string, in dto.RunCombinedRequest) (*entity.CombinedForecast, error) {
	if len(in.Inputs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if _, err := uc.loadCountry(ctx, country); err != nil {
		return nil, err
	}

	methodData, err := uc.collectMethodData(ctx, country)
	if err != nil {
		return nil, err
	}

	fc := forecast.CalculateCombined(country, in.Inputs, methodData, uc.years())
	fc.ScenarioName = in.ScenarioName

	// El nombre de la vacuna sale del catálogo, no de los insumos.
	vaccines, err := uc.vaccinesByID(ctx)
	if err != nil {
		return nil, err
	}
	for vaccineID, vr := range fc.Results {
		if v, ok := vaccines[vaccineID]; ok {
			vr.VaccineName = v.VaccineName
			fc.Results[vaccineID] = vr
		}
	}

	if err := uc.forecastRepo.SaveCombined(ctx, fc); err != nil {
		return nil, err
	}
	return fc, nil
}

// collectMethodData aplana las últimas instantáneas de cada método a dosis
// anuales por vacuna. Una instantánea ausente deja el método sin datos.
func (uc *ForecastUseCase) collectMethodData(ctx context.Context, country string) (map[string]map[entity.ForecastMethod]entity.MethodDoses, error) {
	out := make(map[string]map[entity.ForecastMethod]entity.MethodDoses)

	merge := func(method entity.ForecastMethod, flat map[string]entity.MethodDoses) {
		for vaccineID, md := range flat {
			if out[vaccineID] == nil {
				out[vaccineID] = make(map[entity.ForecastMethod]entity.MethodDoses)
			}
			out[vaccineID][method] = md
		}
	}

	unstratified, err := uc.forecastRepo.ListUnstratified(ctx, country)
	if err != nil {
		return nil, err
	}
	merge(entity.MethodUnstratified, forecast.CollectUnstratified(unstratified))

	stratified, err := uc.forecastRepo.LatestStratified(ctx, country)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	merge(entity.MethodStratified, forecast.CollectStratified(stratified))

	for source, method := range map[entity.ConsumptionSource]entity.ForecastMethod{
		entity.ConsumptionHealthCenter: entity.MethodConsumptionHc,
		entity.ConsumptionSupplyChain:  entity.MethodConsumptionSc,
	} {
		consumption, err := uc.forecastRepo.LatestConsumption(ctx, country, source)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		merge(method, forecast.CollectConsumption(consumption))
	}

	manual, err := uc.forecastRepo.ListManual(ctx, country)
	if err != nil {
		return nil, err
	}
	merge(entity.MethodManual, forecast.CollectManual(manual))

	return out, nil
}

// LatestCombined devuelve la instantánea combinada más reciente.
func (uc *ForecastUseCase) LatestCombined(ctx context.Context, country string) (*entity.CombinedForecast, error) {
	return uc.forecastRepo.LatestCombined(ctx, country)
}

// RunEquipment deriva los requerimientos de equipo de la instantánea
// combinada más reciente y guarda el resultado. Sin pronóstico combinado no
// hay nada que derivar.
func (uc *ForecastUseCase) RunEquipment(ctx context.Context, country string) (*entity.EquipmentForecast, error) {
	if _, err := uc.loadCountry(ctx, country); err != nil {
		return nil, err
	}

	combined, err := uc.forecastRepo.LatestCombined(ctx, country)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.MissingPrerequisite("pronóstico combinado")
		}
		return nil, err
	}

	programs, err := uc.loadPrograms(ctx, country)
	if err != nil {
		return nil, err
	}
	vaccines, err := uc.vaccinesByID(ctx)
	if err != nil {
		return nil, err
	}
	equipment, err := uc.equipmentByID(ctx)
	if err != nil {
		return nil, err
	}

	fc := forecast.DeriveEquipment(country, programs, vaccines, equipment, combined, uc.years())

	if err := uc.forecastRepo.SaveEquipment(ctx, fc); err != nil {
		return nil, err
	}
	return fc, nil
}

// LatestEquipment devuelve la instantánea de equipo más reciente.
func (uc *ForecastUseCase) LatestEquipment(ctx context.Context, country string) (*entity.EquipmentForecast, error) {
	return uc.forecastRepo.LatestEquipment(ctx, country)
}
