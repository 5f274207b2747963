package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrValidation é a causa de todo ValidationError.
var ErrValidation = errors.New("entidade inválida")

// ValidationError aponta o campo rejeitado.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

func validateDate(field, value string) error {
	if value == "" {
		return invalid(field, "obrigatório")
	}
	if _, err := time.Parse(time.DateOnly, value); err != nil {
		return invalid(field, "formato esperado AAAA-MM-DD")
	}
	return nil
}
