package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/tu-usuario/vaxplan-api/internal/application/dto"
	"github.com/tu-usuario/vaxplan-api/internal/domain"
	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
	"github.com/tu-usuario/vaxplan-api/internal/domain/repository"
)

// ProgramUseCase CRUD de programas de inmunización de un país.
type ProgramUseCase struct {
	programRepo repository.ProgramRepository
	countryRepo repository.CountryRepository
	vaccineRepo repository.VaccineRepository
}

// NewProgramUseCase construye el caso de uso de programas.
func NewProgramUseCase(
	programRepo repository.ProgramRepository,
	countryRepo repository.CountryRepository,
	vaccineRepo repository.VaccineRepository,
) *ProgramUseCase {
	return &ProgramUseCase{programRepo: programRepo, countryRepo: countryRepo, vaccineRepo: vaccineRepo}
}

// Create registra un programa para un país existente. Las vacunas y grupos
// objetivo referidos no se validan aquí: una referencia rota simplemente no
// aporta dosis al pronóstico.
func (uc *ProgramUseCase) Create(ctx context.Context, country string, in dto.ProgramRequest) (*entity.Program, error) {
	if in.ProgramName == "" {
		return nil, domain.ErrInvalidInput
	}
	switch in.ProgramCategory {
	case entity.ProgramRoutine, entity.ProgramCatchup, entity.ProgramSIA:
	default:
		return nil, domain.ErrInvalidInput
	}
	owner, err := uc.countryRepo.GetByID(ctx, country)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.ErrNotFound
	}

	program := in.ToEntity(uuid.New().String(), country)
	if err := uc.programRepo.Create(ctx, program); err != nil {
		return nil, err
	}
	return program, nil
}

// Get devuelve un programa por id.
func (uc *ProgramUseCase) Get(ctx context.Context, id string) (*entity.Program, error) {
	program, err := uc.programRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if program == nil {
		return nil, domain.ErrNotFound
	}
	return program, nil
}

// ListByCountry devuelve los programas de un país.
func (uc *ProgramUseCase) ListByCountry(ctx context.Context, country string) ([]*entity.Program, error) {
	return uc.programRepo.ListByCountry(ctx, country)
}

// Update reemplaza los datos de un programa conservando su país.
func (uc *ProgramUseCase) Update(ctx context.Context, id string, in dto.ProgramRequest) (*entity.Program, error) {
	current, err := uc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	program := in.ToEntity(id, current.Country)
	if err := uc.programRepo.Update(ctx, program); err != nil {
		return nil, err
	}
	return program, nil
}

// Delete elimina un programa.
func (uc *ProgramUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.Get(ctx, id); err != nil {
		return err
	}
	return uc.programRepo.Delete(ctx, id)
}
