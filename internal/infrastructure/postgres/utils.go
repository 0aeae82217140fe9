package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE que los repositorios traducen a errores de dominio.
const codeUniqueViolation = "23505"

// isUniqueViolation detecta el choque contra una restricción única, como el
// email de usuarios o el índice por vacuna de los pronósticos.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}
