package csvio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/vaxplan-api/internal/domain/entity"
	"github.com/tu-usuario/vaxplan-api/internal/infrastructure/csvio"
)

const consumptionCSV = `VaccineId,VaccineName,Month (YYYY-MM),Consumption,ReportingRate(%)
vac-penta,Pentavalente,2026-01,800,80
vac-penta,Pentavalente,2026-02,900,90
vac-bcg,BCG,2026-01,200,100
,SinId,2026-01,100,50
vac-penta,Pentavalente,no-es-mes,100,50
vac-penta,Pentavalente,2026-03,abc,50
vac-penta,Pentavalente,2026-04,100,150
`

func TestReadConsumption_MejorEsfuerzo(t *testing.T) {
	data, report, err := csvio.ReadConsumption(strings.NewReader(consumptionCSV))
	require.NoError(t, err)

	// 3 filas buenas, 4 saltadas con su motivo.
	assert.Equal(t, 3, report.Imported)
	assert.Equal(t, 4, report.Skipped)
	assert.Len(t, report.Errors, 4)

	require.Contains(t, data, "vac-penta")
	penta := data["vac-penta"]
	assert.Equal(t, "Pentavalente", penta.VaccineName)
	require.Len(t, penta.MonthlyData, 2)
	// La tasa entra como porcentaje y se guarda como decimal.
	assert.InDelta(t, 0.80, penta.MonthlyData["2026-01"].ReportingRate, 1e-9)
	assert.InDelta(t, 800, penta.MonthlyData["2026-01"].Consumption, 1e-9)
}

func TestReadConsumption_EncabezadoInvalido(t *testing.T) {
	_, _, err := csvio.ReadConsumption(strings.NewReader("a,b,c\n1,2,3\n"))
	require.Error(t, err)
}

func TestWriteConsumptionTemplate_RoundTrip(t *testing.T) {
	vaccines := []entity.Vaccine{
		{ID: "vac-penta", VaccineName: "Pentavalente"},
		{ID: "vac-bcg", VaccineName: "BCG"},
	}
	data := map[string]entity.VaccineConsumptionData{
		"vac-penta": {
			VaccineID:   "vac-penta",
			VaccineName: "Pentavalente",
			MonthlyData: map[string]entity.MonthlyConsumption{
				"2026-01": {Consumption: 800, ReportingRate: 0.8},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, csvio.WriteConsumptionTemplate(&buf, vaccines, data))

	out := buf.String()
	assert.Contains(t, out, "VaccineId,VaccineName,Month (YYYY-MM),Consumption,ReportingRate(%)")
	assert.Contains(t, out, "vac-penta,Pentavalente,2026-01,800,80")
	// La vacuna sin datos sale como renglón vacío de plantilla.
	assert.Contains(t, out, "vac-bcg,BCG,")

	reread, report, err := csvio.ReadConsumption(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 1, report.Imported)
	assert.InDelta(t, 0.8, reread["vac-penta"].MonthlyData["2026-01"].ReportingRate, 1e-9)
}

func TestReadManual_SaltaRenglonesVacios(t *testing.T) {
	input := `VaccineId,VaccineName,Year,DosesAdministered,DosesWithWastage
vac-penta,Pentavalente,2027,1000,1111
vac-penta,Pentavalente,2028,,
vac-bcg,BCG,veinte,5,5
`
	out, report, err := csvio.ReadManual(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 1, report.Imported)
	// El renglón vacío no cuenta como error; el año inválido sí.
	assert.Equal(t, 1, report.Skipped)

	require.Contains(t, out, "vac-penta")
	assert.InDelta(t, 1000, out["vac-penta"][2027].DosesAdministered, 1e-9)
	assert.InDelta(t, 1111, out["vac-penta"][2027].DosesWithWastage, 1e-9)
}

func TestWriteManualTemplate_PrecargaGuardado(t *testing.T) {
	vaccines := []entity.Vaccine{{ID: "vac-penta", VaccineName: "Pentavalente"}}
	saved := map[string]*entity.ManualForecast{
		"vac-penta": {
			VaccineID: "vac-penta",
			Years:     map[int]entity.ManualYear{2027: {DosesAdministered: 500, DosesWithWastage: 550}},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, csvio.WriteManualTemplate(&buf, vaccines, saved, []int{2027, 2028}))

	out := buf.String()
	assert.Contains(t, out, "vac-penta,Pentavalente,2027,500,550")
	assert.Contains(t, out, "vac-penta,Pentavalente,2028,,")
}
