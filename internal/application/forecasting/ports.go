package forecasting

import (
	"context"

	"github.com/tu-usuario/vaxplan-api/internal/domain/repository"
)

// TxRunner ejecuta un callback con un repositorio de pronósticos atado a una
// transacción. Se usa cuando una corrida guarda varios documentos que deben
// quedar juntos o no quedar.
type TxRunner interface {
	RunForecast(ctx context.Context, fn func(forecastRepo repository.ForecastRepository) error) error
}
