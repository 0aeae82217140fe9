// Package forecasting orquesta los pronósticos: carga los insumos desde los
// repositorios, delega el cálculo puro al dominio y persiste la instantánea
// resultante. Cada corrida sigue el mismo contrato: cargar prerequisitos,
// calcular, un único guardado.
package forecasting

import (
	"context"

	"github.com/tu-usuario/vaxplan-api/internal/domain"
	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
	"github.com/tu-usuario/vaxplan-api/internal/domain/forecast"
	"github.com/tu-usuario/vaxplan-api/internal/domain/repository"
	"github.com/tu-usuario/vaxplan-api/pkg/config"
)

// ForecastUseCase casos de uso de pronóstico de demanda de vacunas y equipo.
type ForecastUseCase struct {
	countryRepo   repository.CountryRepository
	programRepo   repository.ProgramRepository
	vaccineRepo   repository.VaccineRepository
	equipmentRepo repository.EquipmentRepository
	forecastRepo  repository.ForecastRepository
	txRunner      TxRunner
	plan          config.PlanConfig
}

// NewForecastUseCase construye el caso de uso de pronósticos.
func NewForecastUseCase(
	countryRepo repository.CountryRepository,
	programRepo repository.ProgramRepository,
	vaccineRepo repository.VaccineRepository,
	equipmentRepo repository.EquipmentRepository,
	forecastRepo repository.ForecastRepository,
	txRunner TxRunner,
	plan config.PlanConfig,
) *ForecastUseCase {
	return &ForecastUseCase{
		countryRepo:   countryRepo,
		programRepo:   programRepo,
		vaccineRepo:   vaccineRepo,
		equipmentRepo: equipmentRepo,
		forecastRepo:  forecastRepo,
		txRunner:      txRunner,
		plan:          plan,
	}
}

func (uc *ForecastUseCase) years() []int {
	return forecast.Years(uc.plan.StartYear(), uc.plan.HorizonYears)
}

// PlanYears expone el horizonte de planificación configurado. Lo usan las
// plantillas CSV para preimprimir una fila por año.
func (uc *ForecastUseCase) PlanYears() []int {
	return uc.years()
}

// VaccineCatalog devuelve el catálogo global indexado por id.
func (uc *ForecastUseCase) VaccineCatalog(ctx context.Context) (map[string]entity.Vaccine, error) {
	return uc.vaccinesByID(ctx)
}

func (uc *ForecastUseCase) loadCountry(ctx context.Context, id string) (*entity.Country, error) {
	country, err := uc.countryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, domain.ErrNotFound
	}
	return country, nil
}

func (uc *ForecastUseCase) vaccinesByID(ctx context.Context) (map[string]entity.Vaccine, error) {
	list, err := uc.vaccineRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	vaccines := make(map[string]entity.Vaccine, len(list))
	for _, v := range list {
		vaccines[v.ID] = *v
	}
	return vaccines, nil
}

func (uc *ForecastUseCase) equipmentByID(ctx context.Context) (map[string]entity.Equipment, error) {
	list, err := uc.equipmentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	equipment := make(map[string]entity.Equipment, len(list))
	for _, e := range list {
		equipment[e.ID] = *e
	}
	return equipment, nil
}

func (uc *ForecastUseCase) loadPrograms(ctx context.Context, country string) ([]entity.Program, error) {
	list, err := uc.programRepo.ListByCountry(ctx, country)
	if err != nil {
		return nil, err
	}
	programs := make([]entity.Program, 0, len(list))
	for _, p := range list {
		programs = append(programs, *p)
	}
	return programs, nil
}
