package handler

import (
	"context"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/maestria/maestria-api/internal/domain"
	"github.com/maestria/maestria-api/internal/usecases/authenticating"
	"github.com/maestria/maestria-api/internal/workspace"
	"github.com/maestria/maestria-api/pkg/apiErrors"
	"github.com/maestria/maestria-api/pkg/log"
	"github.com/maestria/maestria-api/pkg/middleware"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxBodySize = 20 << 20 // documentos em base64

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.L.WithError(err).Warn("Erro ao escrever resposta")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, target any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", err.Error())
		return false
	}
	return true
}

// decodeOptionalJSON aceita corpo ausente ou vazio, inclusive em envio chunked.
// present indica se havia um documento a decodificar.
func decodeOptionalJSON(w http.ResponseWriter, r *http.Request, target any) (present, ok bool) {
	if r.Body == nil || r.Body == http.NoBody {
		return false, true
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	err := json.NewDecoder(r.Body).Decode(target)
	if errors.Is(err, io.EOF) {
		return false, true
	}
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", err.Error())
		return false, false
	}
	return true, true
}

func param(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}

// handleError traduz os erros dos casos de uso para a resposta padronizada.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	var wsErr *workspace.Error
	if errors.As(err, &wsErr) {
		details := map[string]any{}
		if wsErr.EntityID != "" {
			details["id"] = wsErr.EntityID
		}
		var validation *domain.ValidationError
		if errors.As(err, &validation) {
			details["field"] = validation.Field
		}
		if len(details) == 0 {
			apiErrors.WriteError(w, wsErr.Code, wsErr.Error(), nil)
			return
		}
		apiErrors.WriteError(w, wsErr.Code, wsErr.Error(), details)
		return
	}

	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		var details map[string]any
		if authErr.MemberID != "" {
			details = map[string]any{"member_id": authErr.MemberID}
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), details)
		return
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		apiErrors.WriteError(w, apiErrors.ErrInvalidEntity, err.Error(), nil)
	case errors.Is(err, workspace.ErrNotFound):
		apiErrors.WriteError(w, apiErrors.ErrEntityNotFound, err.Error(), nil)
	case errors.Is(err, workspace.ErrConflict), errors.Is(err, domain.ErrStaleVersion):
		apiErrors.WriteError(w, apiErrors.ErrStaleWorkspace, "Espaço de trabalho alterado por outra instância, tente novamente", nil)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		apiErrors.WriteError(w, apiErrors.ErrCommunication, "Requisição cancelada", nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro não tratado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
	}
}

func currentClaims(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Membro não autenticado", nil)
	}
	return claims, ok
}
