package entity

import "time"

// Projection población proyectada de un país para un año.
// Las proyecciones se generan una sola vez por interés compuesto y luego
// quedan editables por el analista (no se recalculan en vivo).
type Projection struct {
	Year       int   `json:"year"`
	Population int64 `json:"population"`
}

// TargetGroup subconjunto demográfico nombrado (porcentaje de la población total).
// Los porcentajes son independientes entre grupos: pueden solaparse
// (ej. "infantes" y "mujeres en edad fértil") y no se exige que sumen 100%.
type TargetGroup struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	AgeLower   int     `json:"ageLower"`
	AgeUpper   int     `json:"ageUpper"`
	Percentage float64 `json:"percentage"` // 0-100
}

// Country datos demográficos del país: población base, tasa de crecimiento,
// proyecciones anuales y grupos objetivo.
type Country struct {
	ID               string
	Name             string
	Population       int64
	AnnualGrowthRate float64 // decimal, ej. 0.03 = 3% anual; puede ser 0 o negativa
	Projections      []Projection
	TargetGroups     []TargetGroup
	UpdatedAt        time.Time
}

// TargetGroupByID busca un grupo objetivo por id. Devuelve nil si no existe.
func (c *Country) TargetGroupByID(id string) *TargetGroup {
	for i := range c.TargetGroups {
		if c.TargetGroups[i].ID == id {
			return &c.TargetGroups[i]
		}
	}
	return nil
}

// PopulationForYear devuelve la población proyectada del año y si existe proyección.
func (c *Country) PopulationForYear(year int) (int64, bool) {
	for _, p := range c.Projections {
		if p.Year == year {
			return p.Population, true
		}
	}
	return 0, false
}
