package assisting

import "errors"

var (
	ErrDraftNotFound   = errors.New("rascunho não encontrado")
	ErrDraftNotPending = errors.New("rascunho não está aguardando confirmação")
	ErrUnknownTarget   = errors.New("destino de análise desconhecido")
)
