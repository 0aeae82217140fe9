package forecast

import (
	"math"

	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
)

// Years devuelve los años del horizonte de planificación empezando en startYear.
func Years(startYear, horizon int) []int {
	years := make([]int, 0, horizon)
	for i := 0; i < horizon; i++ {
		years = append(years, startYear+i)
	}
	return years
}

// ProjectPopulation proyecta la población de un país a lo largo del horizonte
// aplicando crecimiento compuesto año a año, redondeando cada año antes de
// encadenar el siguiente.
// pob(y) = round(pob(y-1) * (1 + tasa))
func ProjectPopulation(basePopulation int64, growthRate float64, startYear, horizon int) []entity.Projection {
	projections := make([]entity.Projection, 0, horizon)
	prev := basePopulation
	for _, year := range Years(startYear, horizon) {
		pop := int64(math.Round(float64(prev) * (1 + growthRate)))
		projections = append(projections, entity.Projection{Year: year, Population: pop})
		prev = pop
	}
	return projections
}
