package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
)

var manualHeader = []string{"VaccineId", "VaccineName", "Year", "DosesAdministered", "DosesWithWastage"}

// WriteManualTemplate escribe la plantilla de pronóstico manual con una fila
// por vacuna y año del horizonte, precargada con lo ya guardado.
func WriteManualTemplate(w io.Writer, vaccines []entity.Vaccine, saved map[string]*entity.ManualForecast, years []int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(manualHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, v := range vaccines {
		for _, year := range years {
			var admin, wastage string
			if fc, ok := saved[v.ID]; ok {
				if my, ok := fc.Years[year]; ok {
					admin = strconv.FormatFloat(my.DosesAdministered, 'f', -1, 64)
					wastage = strconv.FormatFloat(my.DosesWithWastage, 'f', -1, 64)
				}
			}
			row := []string{v.ID, v.VaccineName, strconv.Itoa(year), admin, wastage}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadManual lee una plantilla de pronóstico manual. Las filas con ambas
// cifras vacías se saltan en silencio: son los renglones de plantilla que el
// usuario no llenó.
func ReadManual(r io.Reader) (map[string]map[int]entity.ManualYear, *ImportReport, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	if !headerMatches(header, manualHeader) {
		return nil, nil, fmt.Errorf("encabezado inesperado: %v", header)
	}

	out := make(map[string]map[int]entity.ManualYear)
	report := &ImportReport{}
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			report.skip(line, "fila ilegible")
			continue
		}
		if len(record) < 5 {
			report.skip(line, "faltan columnas")
			continue
		}

		vaccineID := strings.TrimSpace(record[0])
		if vaccineID == "" {
			report.skip(line, "sin id de vacuna")
			continue
		}
		if strings.TrimSpace(record[3]) == "" && strings.TrimSpace(record[4]) == "" {
			continue // renglón de plantilla sin llenar
		}
		year, err := strconv.Atoi(strings.TrimSpace(record[2]))
		if err != nil {
			report.skip(line, "año inválido")
			continue
		}
		admin, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
		if err != nil || admin < 0 {
			report.skip(line, "dosis administradas inválidas")
			continue
		}
		wastage, err := strconv.ParseFloat(strings.TrimSpace(record[4]), 64)
		if err != nil || wastage < 0 {
			report.skip(line, "dosis con desperdicio inválidas")
			continue
		}

		if out[vaccineID] == nil {
			out[vaccineID] = make(map[int]entity.ManualYear)
		}
		out[vaccineID][year] = entity.ManualYear{DosesAdministered: admin, DosesWithWastage: wastage}
		report.Imported++
	}

	return out, report, nil
}

// SortedVaccines ordena el catálogo por nombre para que las plantillas
// salgan estables.
func SortedVaccines(vaccines map[string]entity.Vaccine) []entity.Vaccine {
	out := make([]entity.Vaccine, 0, len(vaccines))
	for _, v := range vaccines {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].VaccineName < out[j].VaccineName })
	return out
}
