package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrConflict     = errors.New("conflicto con el estado actual")
)

// Error es un error de dominio con un mensaje apto para el cliente.
// Kind es uno de los sentinels de arriba y se expone vía Unwrap para errors.Is.
type Error struct {
	Kind    error
	Message string
	// Existing es el registro que provocó un ErrDuplicate, si se conoce.
	Existing any
	// Cause error de origen (ej. *validate.Error), opcional.
	Cause error
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.Error()
	}
	return e.Message
}

// Unwrap expone Kind y Cause para errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

// Errorf construye un *Error del tipo kind.
func Errorf(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Invalid construye un ErrInvalidInput con la causa original.
func Invalid(message string, cause error) *Error {
	return &Error{Kind: ErrInvalidInput, Message: message, Cause: cause}
}

// Duplicate construye un ErrDuplicate que transporta el registro existente.
func Duplicate(message string, existing any) *Error {
	return &Error{Kind: ErrDuplicate, Message: message, Existing: existing}
}
