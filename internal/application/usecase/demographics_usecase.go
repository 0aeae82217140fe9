package usecase

import (
	"context"
	"time"

	"github.com/tu-usuario/vaxplan-api/internal/application/dto"
	"github.com/tu-usuario/vaxplan-api/internal/domain"
	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
	"github.com/tu-usuario/vaxplan-api/internal/domain/forecast"
	"github.com/tu-usuario/vaxplan-api/internal/domain/repository"
	"github.com/tu-usuario/vaxplan-api/pkg/config"
)

// DemographicsUseCase gestiona países, sus proyecciones de población y sus
// grupos objetivo.
type DemographicsUseCase struct {
	countryRepo repository.CountryRepository
	plan        config.PlanConfig
}

// NewDemographicsUseCase construye el caso de uso de demografía.
func NewDemographicsUseCase(countryRepo repository.CountryRepository, plan config.PlanConfig) *DemographicsUseCase {
	return &DemographicsUseCase{countryRepo: countryRepo, plan: plan}
}

// CreateCountry registra un país y siembra sus proyecciones de población
// para el horizonte de planificación.
func (uc *DemographicsUseCase) CreateCountry(ctx context.Context, in dto.CountryRequest) (*entity.Country, error) {
	if in.ID == "" || in.Name == "" || in.Population <= 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.countryRepo.GetByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	country := &entity.Country{
		ID:               in.ID,
		Name:             in.Name,
		Population:       in.Population,
		AnnualGrowthRate: in.AnnualGrowthRate,
		Projections:      forecast.ProjectPopulation(in.Population, in.AnnualGrowthRate, uc.plan.StartYear(), uc.plan.HorizonYears),
		UpdatedAt:        time.Now(),
	}
	if err := uc.countryRepo.Create(ctx, country); err != nil {
		return nil, err
	}
	return country, nil
}

// GetCountry devuelve un país por id.
func (uc *DemographicsUseCase) GetCountry(ctx context.Context, id string) (*entity.Country, error) {
	country, err := uc.countryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, domain.ErrNotFound
	}
	return country, nil
}

// ListCountries devuelve todos los países.
func (uc *DemographicsUseCase) ListCountries(ctx context.Context) ([]*entity.Country, error) {
	return uc.countryRepo.List(ctx)
}

// UpdateCountry actualiza los datos base de un país. Las proyecciones
// existentes no se tocan: el dato proyectado ya revisado por el usuario
// manda sobre un recálculo automático. Si el país quedó sin proyecciones
// se siembran de nuevo.
func (uc *DemographicsUseCase) UpdateCountry(ctx context.Context, id string, in dto.CountryRequest) (*entity.Country, error) {
	country, err := uc.GetCountry(ctx, id)
	if err != nil {
		return nil, err
	}
	country.Name = in.Name
	country.Population = in.Population
	country.AnnualGrowthRate = in.AnnualGrowthRate
	country.UpdatedAt = time.Now()
	if len(country.Projections) == 0 {
		country.Projections = forecast.ProjectPopulation(in.Population, in.AnnualGrowthRate, uc.plan.StartYear(), uc.plan.HorizonYears)
	}
	if err := uc.countryRepo.Update(ctx, country); err != nil {
		return nil, err
	}
	return country, nil
}

// RegenerateProjections descarta las proyecciones guardadas y las vuelve a
// calcular desde la población base actual.
func (uc *DemographicsUseCase) RegenerateProjections(ctx context.Context, id string) (*entity.Country, error) {
	country, err := uc.GetCountry(ctx, id)
	if err != nil {
		return nil, err
	}
	country.Projections = forecast.ProjectPopulation(country.Population, country.AnnualGrowthRate, uc.plan.StartYear(), uc.plan.HorizonYears)
	if err := uc.countryRepo.UpdateProjections(ctx, id, country.Projections); err != nil {
		return nil, err
	}
	return country, nil
}

// ReplaceProjections reemplaza las proyecciones guardadas con las editadas
// por el usuario. El dato editado manda sobre el calculado hasta que se pida
// una regeneración explícita.
func (uc *DemographicsUseCase) ReplaceProjections(ctx context.Context, id string, projections []entity.Projection) (*entity.Country, error) {
	country, err := uc.GetCountry(ctx, id)
	if err != nil {
		return nil, err
	}
	if len(projections) == 0 {
		return nil, domain.ErrInvalidInput
	}
	for _, p := range projections {
		if p.Year <= 0 || p.Population < 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	country.Projections = projections
	if err := uc.countryRepo.UpdateProjections(ctx, id, projections); err != nil {
		return nil, err
	}
	return country, nil
}

// ReplaceTargetGroups reemplaza los grupos objetivo del país. La suma de
// porcentajes puede exceder 100 (los grupos pueden solaparse): no se valida.
func (uc *DemographicsUseCase) ReplaceTargetGroups(ctx context.Context, id string, groups []entity.TargetGroup) (*entity.Country, error) {
	country, err := uc.GetCountry(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, g := range groups {
		if g.ID == "" || g.Percentage < 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	country.TargetGroups = groups
	if err := uc.countryRepo.UpdateTargetGroups(ctx, id, groups); err != nil {
		return nil, err
	}
	return country, nil
}
