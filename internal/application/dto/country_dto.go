package dto

import "github.com/tu-usuario/vaxplan-api/internal/domain/entity"

// CountryRequest body para crear o actualizar un país.
type CountryRequest struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Population       int64   `json:"population"`
	AnnualGrowthRate float64 `json:"annual_growth_rate"`
}

// ProjectionsRequest body para editar las proyecciones de población de un
// país año por año.
type ProjectionsRequest struct {
	Projections []entity.Projection `json:"projections"`
}

// TargetGroupRequest body para reemplazar los grupos objetivo de un país.
type TargetGroupRequest struct {
	TargetGroups []entity.TargetGroup `json:"target_groups"`
}

// CountryResponse país con sus proyecciones y grupos objetivo.
type CountryResponse struct {
	ID               string               `json:"id"`
	Name             string               `json:"name"`
	Population       int64                `json:"population"`
	AnnualGrowthRate float64              `json:"annual_growth_rate"`
	Projections      []entity.Projection  `json:"projections"`
	TargetGroups     []entity.TargetGroup `json:"target_groups"`
}

// ToCountryResponse convierte la entidad a su representación HTTP.
func ToCountryResponse(c *entity.Country) *CountryResponse {
	return &CountryResponse{
		ID:               c.ID,
		Name:             c.Name,
		Population:       c.Population,
		AnnualGrowthRate: c.AnnualGrowthRate,
		Projections:      c.Projections,
		TargetGroups:     c.TargetGroups,
	}
}
