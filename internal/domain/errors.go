package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// ErrMissingPrerequisite indica que falta una etapa previa del pipeline
	// (ej. correr el pronóstico combinado antes que el de equipamiento).
	ErrMissingPrerequisite = errors.New("prerequisito faltante")
)

// MissingPrerequisite envuelve ErrMissingPrerequisite nombrando la etapa ausente,
// para que el mensaje al usuario identifique qué debe correrse primero.
func MissingPrerequisite(stage string) error {
	return fmt.Errorf("%w: %s", ErrMissingPrerequisite, stage)
}
