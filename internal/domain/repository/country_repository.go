package repository

import (
	"context"

	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
)

// CountryRepository define el puerto de persistencia para Country (DIP).
// Las proyecciones y los grupos objetivo viajan dentro del mismo documento.
// GetByID devuelve (nil, nil) cuando el país no existe.
type CountryRepository interface {
	Create(ctx context.Context, country *entity.Country) error
	GetByID(ctx context.Context, id string) (*entity.Country, error)
	List(ctx context.Context) ([]*entity.Country, error)
	Update(ctx context.Context, country *entity.Country) error
	UpdateProjections(ctx context.Context, id string, projections []entity.Projection) error
	UpdateTargetGroups(ctx context.Context, id string, groups []entity.TargetGroup) error
}
