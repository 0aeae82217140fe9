// Package csvio importa y exporta plantillas CSV para la carga masiva de
// datos históricos de consumo y pronósticos manuales. La importación es de
// mejor esfuerzo: las filas inválidas se saltan y se reportan, nunca
// bloquean al resto del archivo.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
)

// Encabezados de la plantilla de consumo. La tasa de reporte viaja como
// porcentaje 0-100 en el archivo y se convierte a decimal 0-1 al importar.
var consumptionHeader = []string{"VaccineId", "VaccineName", "Month (YYYY-MM)", "Consumption", "ReportingRate(%)"}

// ImportReport resultado de una importación de mejor esfuerzo.
type ImportReport struct {
	Imported int
	Skipped  int
	Errors   []string
}

// WriteConsumptionTemplate escribe la plantilla de consumo con una fila por
// vacuna y mes ya cargado; para vacunas sin datos escribe una fila vacía de
// ejemplo con el mes actual.
func WriteConsumptionTemplate(w io.Writer, vaccines []entity.Vaccine, data map[string]entity.VaccineConsumptionData) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(consumptionHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	currentMonth := time.Now().Format("2006-01")
	for _, v := range vaccines {
		vd, ok := data[v.ID]
		if !ok || len(vd.MonthlyData) == 0 {
			if err := cw.Write([]string{v.ID, v.VaccineName, currentMonth, "", ""}); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
			continue
		}
		months := make([]string, 0, len(vd.MonthlyData))
		for month := range vd.MonthlyData {
			months = append(months, month)
		}
		sort.Strings(months)
		for _, month := range months {
			m := vd.MonthlyData[month]
			row := []string{
				v.ID, v.VaccineName, month,
				strconv.FormatFloat(m.Consumption, 'f', -1, 64),
				strconv.FormatFloat(m.ReportingRate*100, 'f', -1, 64),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write row: %w", err)
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadConsumption lee una plantilla de consumo. Devuelve los datos por
// vacuna y el reporte de filas importadas y saltadas.
func ReadConsumption(r io.Reader) (map[string]entity.VaccineConsumptionData, *ImportReport, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}
	if !headerMatches(header, consumptionHeader) {
		return nil, nil, fmt.Errorf("encabezado inesperado: %v", header)
	}

	data := make(map[string]entity.VaccineConsumptionData)
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
		month := strings.TrimSpace(record[2])
		if vaccineID == "" {
			report.skip(line, "sin id de vacuna")
			continue
		}
		if _, err := time.Parse("2006-01", month); err != nil {
			report.skip(line, "mes inválido "+month)
			continue
		}
		consumption, err := strconv.ParseFloat(strings.TrimSpace(record[3]), 64)
		if err != nil || consumption < 0 {
			report.skip(line, "consumo inválido")
			continue
		}
		reportingPct, err := strconv.ParseFloat(strings.TrimSpace(record[4]), 64)
		if err != nil || reportingPct < 0 || reportingPct > 100 {
			report.skip(line, "tasa de reporte inválida")
			continue
		}

		vd, ok := data[vaccineID]
		if !ok {
			vd = entity.VaccineConsumptionData{
				VaccineID:   vaccineID,
				VaccineName: strings.TrimSpace(record[1]),
				MonthlyData: make(map[string]entity.MonthlyConsumption),
			}
		}
		vd.MonthlyData[month] = entity.MonthlyConsumption{
			Consumption:   consumption,
			ReportingRate: reportingPct / 100,
		}
		data[vaccineID] = vd
		report.Imported++
	}

	return data, report, nil
}

func (r *ImportReport) skip(line int, reason string) {
	r.Skipped++
	r.Errors = append(r.Errors, fmt.Sprintf("línea %d: %s", line, reason))
}

func headerMatches(got, want []string) bool {
	if len(got) < len(want) {
		return false
	}
	for i, col := range want {
		if !strings.EqualFold(strings.TrimSpace(got[i]), col) {
			return false
		}
	}
	return true
}
