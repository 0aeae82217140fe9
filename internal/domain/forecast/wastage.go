// Package forecast contiene la lógica pura de cálculo de pronósticos
// (servicios de dominio). Ninguna función de este paquete toca la base de
// datos ni depende del transporte; reciben entidades y devuelven resultados.
package forecast

// WithWastage ajusta dosis administradas por la tasa de desperdicio.
// DosisConDesperdicio = DosisAdministradas / (1 - tasa)
// Una tasa >= 1 no es ajustable; en ese caso se devuelven las dosis sin ajustar.
func WithWastage(dosesAdministered, wastageRate float64) float64 {
	if dosesAdministered <= 0 {
		return 0
	}
	if wastageRate >= 1 {
		return dosesAdministered
	}
	return dosesAdministered / (1 - wastageRate)
}
