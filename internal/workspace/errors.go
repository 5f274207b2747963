package workspace

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("registro não encontrado")
	ErrConflict         = errors.New("espaço de trabalho alterado por outra instância")
	ErrNotReady         = errors.New("espaço de trabalho não inicializado")
	ErrPersist          = errors.New("erro ao gravar o espaço de trabalho")
	ErrInvalidOperation = errors.New("operação incompatível com o estado atual")
	ErrDuplicateID      = errors.New("ID já existe na coleção")

	// ErrNoChange encerra um Mutate sem gravar e sem erro para o chamador.
	ErrNoChange = errors.New("nada a alterar")
)

// Error carrega o código de API junto do erro base.
type Error struct {
	Err      error
	Code     string
	EntityID string
	Details  string
}

func (e *Error) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(err error, code string, details string) *Error {
	return &Error{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewEntityError(err error, code string, entityID string, details string) *Error {
	return &Error{
		Err:      err,
		Code:     code,
		EntityID: entityID,
		Details:  details,
	}
}
