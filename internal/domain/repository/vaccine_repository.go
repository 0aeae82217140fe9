package repository

import (
	"context"

	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
)

// VaccineRepository define el puerto de persistencia para Vaccine (DIP).
// GetByID devuelve (nil, nil) cuando la vacuna no existe.
type VaccineRepository interface {
	Create(ctx context.Context, vaccine *entity.Vaccine) error
	GetByID(ctx context.Context, id string) (*entity.Vaccine, error)
	List(ctx context.Context) ([]*entity.Vaccine, error)
	Update(ctx context.Context, vaccine *entity.Vaccine) error
	Delete(ctx context.Context, id string) error
}
