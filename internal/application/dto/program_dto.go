package dto

import (
	"time"

	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
)

// ProgramRequest body para crear o actualizar un programa.
type ProgramRequest struct {
	ProgramCategory entity.ProgramCategory  `json:"program_category"`
	ProgramName     string                  `json:"program_name"`
	StartDate       time.Time               `json:"start_date"`
	EndDate         time.Time               `json:"end_date"`
	Vaccines        []entity.ProgramVaccine `json:"vaccines"`
}

// ToEntity materializa el programa con id y país dados.
func (r *ProgramRequest) ToEntity(id, country string) *entity.Program {
	return &entity.Program{
		ID:              id,
		Country:         country,
		ProgramCategory: r.ProgramCategory,
		ProgramName:     r.ProgramName,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		Vaccines:        r.Vaccines,
	}
}
