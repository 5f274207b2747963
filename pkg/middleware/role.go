package middleware

import (
	"net/http"
	"slices"

	"github.com/maestria/maestria-api/internal/domain"
	"github.com/maestria/maestria-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// RoleMiddleware restringe o acesso aos papéis informados.
func RoleMiddleware(allowedRoles []domain.MemberRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Membro não autenticado", nil)
				return
			}

			if !slices.Contains(allowedRoles, claims.MemberRole) {
				logrus.Warningf("Acesso negado para membro ID=%s, papel=%s", claims.MemberID, claims.MemberRole)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware([]domain.MemberRole{domain.RoleAdmin})
}

func AdminOrLeader() func(http.Handler) http.Handler {
	return RoleMiddleware([]domain.MemberRole{domain.RoleAdmin, domain.RoleLeader})
}

func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware([]domain.MemberRole{domain.RoleAdmin, domain.RoleLeader, domain.RoleMember})
}
