package handler

import (
	"net/http"

	"github.com/maestria/maestria-api/internal/usecases/authenticating"
	"github.com/maestria/maestria-api/pkg/apiErrors"
	"github.com/maestria/maestria-api/pkg/log"
)

type LoginRequest struct {
	MemberID  string `json:"memberId"`
	AccessKey string `json:"accessKey"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		session, err := service.Login(r.Context(), req.MemberID, req.AccessKey)
		if err != nil {
			logger := log.ForContext(r.Context()).WithField("member_id", req.MemberID).WithError(err)
			if authenticating.IsCredentialsError(err) {
				logger.Warn("Falha no login")
			} else {
				logger.Error("Erro no login")
			}
			handleError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, session)
	}
}

// GetMe retorna a identidade registrada e as claims do token usado na requisição.
func GetMe(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentClaims(w, r)
		if !ok {
			return
		}

		identity, found := service.CurrentIdentity(r.Context())
		if !found {
			apiErrors.WriteError(w, apiErrors.ErrMemberNotFound, "Nenhuma identidade registrada", nil)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"identity": identity,
			"token": map[string]any{
				"memberId":  claims.MemberID,
				"name":      claims.MemberName,
				"role":      claims.MemberRole,
				"expiresAt": claims.ExpiresAt,
			},
		})
	}
}

func Logout(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		service.Logout(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}
}
