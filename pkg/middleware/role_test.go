package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/maestria/maestria-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRoleMiddleware(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	tests := []struct {
		name       string
		claims     *domain.Claims
		handler    func(http.Handler) http.Handler
		wantStatus int
	}{
		{
			name:       "sem claims",
			handler:    AllRoles(),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "membro em rota de administrador",
			claims:     &domain.Claims{MemberID: "m1", MemberRole: domain.RoleMember},
			handler:    AdminOnly(),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "líder em rota de líder",
			claims:     &domain.Claims{MemberID: "m2", MemberRole: domain.RoleLeader},
			handler:    AdminOrLeader(),
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/team", nil)
			if tt.claims != nil {
				req = req.WithContext(context.WithValue(req.Context(), ContextKeyUser, tt.claims))
			}
			rec := httptest.NewRecorder()

			tt.handler(ok).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
