package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/tu-usuario/vaxplan-api/internal/application/dto"
	"github.com/tu-usuario/vaxplan-api/internal/domain"
	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
	"github.com/tu-usuario/vaxplan-api/internal/domain/repository"
)

// VaccineUseCase CRUD del catálogo de vacunas.
type VaccineUseCase struct {
	vaccineRepo repository.VaccineRepository
}

// NewVaccineUseCase construye el caso de uso de vacunas.
func NewVaccineUseCase(vaccineRepo repository.VaccineRepository) *VaccineUseCase {
	return &VaccineUseCase{vaccineRepo: vaccineRepo}
}

// Create registra una vacuna nueva.
func (uc *VaccineUseCase) Create(ctx context.Context, in dto.VaccineRequest) (*entity.Vaccine, error) {
	if in.VaccineName == "" {
		return nil, domain.ErrInvalidInput
	}
	vaccine := in.ToEntity(uuid.New().String())
	if err := uc.vaccineRepo.Create(ctx, vaccine); err != nil {
		return nil, err
	}
	return vaccine, nil
}

// Get devuelve una vacuna por id.
func (uc *VaccineUseCase) Get(ctx context.Context, id string) (*entity.Vaccine, error) {
	vaccine, err := uc.vaccineRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vaccine == nil {
		return nil, domain.ErrNotFound
	}
	return vaccine, nil
}

// List devuelve el catálogo completo.
func (uc *VaccineUseCase) List(ctx context.Context) ([]*entity.Vaccine, error) {
	return uc.vaccineRepo.List(ctx)
}

// Update reemplaza los datos de una vacuna.
func (uc *VaccineUseCase) Update(ctx context.Context, id string, in dto.VaccineRequest) (*entity.Vaccine, error) {
	if _, err := uc.Get(ctx, id); err != nil {
		return nil, err
	}
	vaccine := in.ToEntity(id)
	if err := uc.vaccineRepo.Update(ctx, vaccine); err != nil {
		return nil, err
	}
	return vaccine, nil
}

// Delete elimina una vacuna del catálogo.
func (uc *VaccineUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.Get(ctx, id); err != nil {
		return err
	}
	return uc.vaccineRepo.Delete(ctx, id)
}
