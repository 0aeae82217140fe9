package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/tu-usuario/vaxplan-api/internal/application/dto"
	"github.com/tu-usuario/vaxplan-api/internal/domain"
	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
	"github.com/tu-usuario/vaxplan-api/internal/domain/repository"
)

// EquipmentUseCase CRUD del catálogo de equipo: jeringas y cajas de seguridad.
type EquipmentUseCase struct {
	equipmentRepo repository.EquipmentRepository
}

// NewEquipmentUseCase construye el caso de uso de equipo.
func NewEquipmentUseCase(equipmentRepo repository.EquipmentRepository) *EquipmentUseCase {
	return &EquipmentUseCase{equipmentRepo: equipmentRepo}
}

// Create registra un equipo nuevo. Una caja de seguridad necesita capacidad
// de desecho positiva para poder derivar cantidades.
func (uc *EquipmentUseCase) Create(ctx context.Context, in dto.EquipmentRequest) (*entity.Equipment, error) {
	if in.EquipmentName == "" {
		return nil, domain.ErrInvalidInput
	}
	switch in.EquipmentType {
	case entity.EquipmentAdministrationSyringe, entity.EquipmentDilutionSyringe:
	case entity.EquipmentSafetyBox:
		if in.DisposalCapacity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	equipment := in.ToEntity(uuid.New().String())
	if err := uc.equipmentRepo.Create(ctx, equipment); err != nil {
		return nil, err
	}
	return equipment, nil
}

// Get devuelve un equipo por id.
func (uc *EquipmentUseCase) Get(ctx context.Context, id string) (*entity.Equipment, error) {
	equipment, err := uc.equipmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if equipment == nil {
		return nil, domain.ErrNotFound
	}
	return equipment, nil
}

// List devuelve el catálogo completo.
func (uc *EquipmentUseCase) List(ctx context.Context) ([]*entity.Equipment, error) {
	return uc.equipmentRepo.List(ctx)
}

// Update reemplaza los datos de un equipo.
func (uc *EquipmentUseCase) Update(ctx context.Context, id string, in dto.EquipmentRequest) (*entity.Equipment, error) {
	if _, err := uc.Get(ctx, id); err != nil {
		return nil, err
	}
	equipment := in.ToEntity(id)
	if err := uc.equipmentRepo.Update(ctx, equipment); err != nil {
		return nil, err
	}
	return equipment, nil
}

// Delete elimina un equipo del catálogo.
func (uc *EquipmentUseCase) Delete(ctx context.Context, id string) error {
	if _, err := uc.Get(ctx, id); err != nil {
		return err
	}
	return uc.equipmentRepo.Delete(ctx, id)
}
