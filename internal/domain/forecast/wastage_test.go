package forecast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/vaxplan-api/internal/domain/forecast"
)

func TestWithWastage_AjusteBasico(t *testing.T) {
	// 900 dosis aplicadas con 10% de desperdicio requieren 1000 dosis.
	assert.InDelta(t, 1000, forecast.WithWastage(900, 0.10), 1e-9)
}

func TestWithWastage_SinDosisNoAjusta(t *testing.T) {
	assert.Zero(t, forecast.WithWastage(0, 0.10))
	assert.Zero(t, forecast.WithWastage(-50, 0.10))
}

func TestWithWastage_TasaImposibleDevuelveSinAjustar(t *testing.T) {
	// Una tasa del 100% o más haría dividir por cero o dar negativo;
	// se devuelven las dosis tal cual.
	assert.Equal(t, 900.0, forecast.WithWastage(900, 1.0))
	assert.Equal(t, 900.0, forecast.WithWastage(900, 1.5))
}

func TestWithWastage_TasaCero(t *testing.T) {
	assert.Equal(t, 900.0, forecast.WithWastage(900, 0))
}
