package repository

import (
	"context"

	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
)

// ProgramRepository define el puerto de persistencia para Program (DIP).
// Las vacunas del programa y sus asignaciones de dosis viajan dentro del
// mismo documento. GetByID devuelve (nil, nil) cuando el programa no existe.
type ProgramRepository interface {
	Create(ctx context.Context, program *entity.Program) error
	GetByID(ctx context.Context, id string) (*entity.Program, error)
	ListByCountry(ctx context.Context, country string) ([]*entity.Program, error)
	Update(ctx context.Context, program *entity.Program) error
	Delete(ctx context.Context, id string) error
}
