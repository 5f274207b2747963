package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

const (
	// Erros de autenticação
	ErrInvalidCredentials    = "AUTH_001" // Chave de acesso inválida
	ErrMemberNotFound        = "AUTH_003" // Membro da equipe não encontrado
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrInvalidEntity       = "VAL_004" // Entidade rejeitada pelas regras do domínio

	// Erros do espaço de trabalho
	ErrEntityNotFound   = "WS_001" // Registro inexistente na coleção
	ErrStaleWorkspace   = "WS_002" // Versão desatualizada, recarregue e repita
	ErrInvalidOperation = "WS_003" // Operação incompatível com o estado atual
	ErrDraftNotFound    = "WS_004" // Rascunho da IA inexistente
	ErrDuplicateEntity  = "WS_005" // ID já usado na coleção

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Erro em serviço externo
	ErrCommunication     = "SRV_004" // Erro de comunicação
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrMemberNotFound:        http.StatusNotFound,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrInvalidEntity:         http.StatusUnprocessableEntity,
	ErrEntityNotFound:        http.StatusNotFound,
	ErrStaleWorkspace:        http.StatusConflict,
	ErrInvalidOperation:      http.StatusConflict,
	ErrDraftNotFound:         http.StatusNotFound,
	ErrDuplicateEntity:       http.StatusConflict,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrCommunication:         http.StatusServiceUnavailable,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor retorna o status HTTP associado ao código.
func StatusFor(code string) int {
	if status, exists := httpStatusMap[code]; exists {
		return status
	}
	return http.StatusInternalServerError
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = jsoniter.NewEncoder(w).Encode(APIError{
		Code:    code,
		Message: message,
		Details: details,
	})
}
