package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/vaxplan-api/internal/application/dto"
	"github.com/tu-usuario/vaxplan-api/internal/application/usecase"
	"github.com/tu-usuario/vaxplan-api/internal/domain"
	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
	"github.com/tu-usuario/vaxplan-api/pkg/config"
)

// countryRepoStub repositorio de países en memoria para los casos de uso.
type countryRepoStub struct {
	countries map[string]*entity.Country
}

func newCountryRepoStub(countries ...*entity.Country) *countryRepoStub {
	stub := &countryRepoStub{countries: make(map[string]*entity.Country)}
	for _, c := range countries {
		stub.countries[c.ID] = c
	}
	return stub
}

func (s *countryRepoStub) Create(_ context.Context, country *entity.Country) error {
	s.countries[country.ID] = country
	return nil
}

func (s *countryRepoStub) GetByID(_ context.Context, id string) (*entity.Country, error) {
	country, ok := s.countries[id]
	if !ok {
		return nil, nil
	}
	clone := *country
	return &clone, nil
}

func (s *countryRepoStub) List(_ context.Context) ([]*entity.Country, error) {
	out := make([]*entity.Country, 0, len(s.countries))
	for _, c := range s.countries {
		out = append(out, c)
	}
	return out, nil
}

func (s *countryRepoStub) Update(_ context.Context, country *entity.Country) error {
	s.countries[country.ID] = country
	return nil
}

func (s *countryRepoStub) UpdateProjections(_ context.Context, id string, projections []entity.Projection) error {
	s.countries[id].Projections = projections
	return nil
}

func (s *countryRepoStub) UpdateTargetGroups(_ context.Context, id string, groups []entity.TargetGroup) error {
	s.countries[id].TargetGroups = groups
	return nil
}

func testPlanConfig() config.PlanConfig {
	return config.PlanConfig{BaseYear: 2026, HorizonYears: 5}
}

func dtoCountryRequest() dto.CountryRequest {
	return dto.CountryRequest{ID: "GTM", Name: "Guatemala", Population: 1_050_000, AnnualGrowthRate: 3}
}

func TestReplaceProjections_EditaAnioPorAnio(t *testing.T) {
	repo := newCountryRepoStub(&entity.Country{
		ID: "GTM", Name: "Guatemala", Population: 1_000_000, AnnualGrowthRate: 3,
		Projections: []entity.Projection{
			{Year: 2027, Population: 1_030_000},
			{Year: 2028, Population: 1_060_900},
		},
	})
	uc := usecase.NewDemographicsUseCase(repo, testPlanConfig())

	edited := []entity.Projection{
		{Year: 2027, Population: 1_030_000},
		{Year: 2028, Population: 1_100_000}, // censo revisado
	}
	country, err := uc.ReplaceProjections(context.Background(), "GTM", edited)
	require.NoError(t, err)
	assert.Equal(t, edited, country.Projections)
	assert.Equal(t, edited, repo.countries["GTM"].Projections)
}

func TestReplaceProjections_EditadoSobreviveAlUpdate(t *testing.T) {
	repo := newCountryRepoStub(&entity.Country{
		ID: "GTM", Name: "Guatemala", Population: 1_000_000, AnnualGrowthRate: 3,
		Projections: []entity.Projection{{Year: 2027, Population: 1_030_000}},
	})
	uc := usecase.NewDemographicsUseCase(repo, testPlanConfig())

	edited := []entity.Projection{{Year: 2027, Population: 1_200_000}}
	_, err := uc.ReplaceProjections(context.Background(), "GTM", edited)
	require.NoError(t, err)

	// Actualizar los datos base del país no pisa la proyección editada.
	country, err := uc.UpdateCountry(context.Background(), "GTM", dtoCountryRequest())
	require.NoError(t, err)
	assert.Equal(t, edited, country.Projections)
}

func TestReplaceProjections_RechazaEntradasInvalidas(t *testing.T) {
	repo := newCountryRepoStub(&entity.Country{
		ID: "GTM", Name: "Guatemala", Population: 1_000_000,
	})
	uc := usecase.NewDemographicsUseCase(repo, testPlanConfig())

	_, err := uc.ReplaceProjections(context.Background(), "GTM", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.ReplaceProjections(context.Background(), "GTM",
		[]entity.Projection{{Year: 0, Population: 100}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.ReplaceProjections(context.Background(), "GTM",
		[]entity.Projection{{Year: 2027, Population: -1}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestReplaceProjections_PaisInexistente(t *testing.T) {
	uc := usecase.NewDemographicsUseCase(newCountryRepoStub(), testPlanConfig())
	_, err := uc.ReplaceProjections(context.Background(), "XXX",
		[]entity.Projection{{Year: 2027, Population: 100}})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
