package repository

import (
	"context"

	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
)

// EquipmentRepository define el puerto de persistencia para Equipment (DIP).
// GetByID devuelve (nil, nil) cuando el equipo no existe.
type EquipmentRepository interface {
	Create(ctx context.Context, equipment *entity.Equipment) error
	GetByID(ctx context.Context, id string) (*entity.Equipment, error)
	List(ctx context.Context) ([]*entity.Equipment, error)
	Update(ctx context.Context, equipment *entity.Equipment) error
	Delete(ctx context.Context, id string) error
}
