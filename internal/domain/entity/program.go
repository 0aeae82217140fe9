package entity

import "time"

// ProgramCategory categoría de programa de inmunización.
type ProgramCategory string

const (
	ProgramRoutine ProgramCategory = "Routine"
	ProgramCatchup ProgramCategory = "Catchup"
	ProgramSIA     ProgramCategory = "SIA" // Supplementary Immunization Activity
)

// DoseAssignment parámetros de una dosis del esquema: a qué grupo objetivo se
// administra y con qué cobertura/desperdicio. Tasas como decimales 0-1.
type DoseAssignment struct {
	TargetGroupID string  `json:"targetGroupId"`
	CoverageRate  float64 `json:"coverageRate"`
	WastageRate   float64 `json:"wastageRate"`
}

// ProgramVaccine vacuna dentro de un programa con sus asignaciones por número de dosis.
type ProgramVaccine struct {
	VaccineID       string                 `json:"vaccineId"`
	VaccineName     string                 `json:"vaccineName"`
	DosesInSchedule int                    `json:"dosesInSchedule"`
	DoseAssignments map[int]DoseAssignment `json:"doseAssignments"`
}

// Program programa de inmunización de un país con sus vacunas y esquema de dosis.
type Program struct {
	ID              string           `json:"id"`
	Country         string           `json:"country"`
	ProgramCategory ProgramCategory  `json:"programCategory"`
	ProgramName     string           `json:"programName"`
	StartDate       time.Time        `json:"startDate"`
	EndDate         time.Time        `json:"endDate"`
	Vaccines        []ProgramVaccine `json:"vaccines"`
}
