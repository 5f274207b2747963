package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/maestria/maestria-api/internal/domain"
	"github.com/maestria/maestria-api/internal/usecases/authenticating"
	"github.com/maestria/maestria-api/internal/usecases/authenticating/mocks"
	"github.com/maestria/maestria-api/pkg/apiErrors"
	"github.com/maestria/maestria-api/pkg/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mock       func(m *mocks.MockAuthenticator)
		wantStatus int
		wantCode   string
	}{
		{
			name: "sucesso",
			body: `{"memberId":"m1","accessKey":"chave-secreta"}`,
			mock: func(m *mocks.MockAuthenticator) {
				m.EXPECT().Login(gomock.Any(), "m1", "chave-secreta").Return(&authenticating.Session{
					Token:     "jwt",
					ExpiresAt: time.Date(2024, 8, 21, 0, 0, 0, 0, time.UTC),
					Identity:  domain.Identity{MemberID: "m1", Name: "Ana", Role: domain.RoleAdmin},
				}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "chave inválida",
			body: `{"memberId":"m1","accessKey":"errada"}`,
			mock: func(m *mocks.MockAuthenticator) {
				m.EXPECT().Login(gomock.Any(), "m1", "errada").Return(nil,
					authenticating.NewMemberAuthError(authenticating.ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "m1", ""))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidCredentials,
		},
		{
			name:       "corpo malformado",
			body:       `{"memberId":`,
			mock:       func(m *mocks.MockAuthenticator) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authenticator := mocks.NewMockAuthenticator(gomock.NewController(t))
			tt.mock(authenticator)

			req := httptest.NewRequest(http.MethodPost, "/v1/session", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			Login(authenticator).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				var apiErr apiErrors.APIError
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
				assert.Equal(t, tt.wantCode, apiErr.Code)
			}
		})
	}
}

func TestGetMe(t *testing.T) {
	claims := &domain.Claims{MemberID: "m1", MemberName: "Ana", MemberRole: domain.RoleAdmin}

	t.Run("identidade registrada", func(t *testing.T) {
		authenticator := mocks.NewMockAuthenticator(gomock.NewController(t))
		authenticator.EXPECT().CurrentIdentity(gomock.Any()).Return(&domain.Identity{MemberID: "m1", Name: "Ana", Role: domain.RoleAdmin}, true)

		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
		rec := httptest.NewRecorder()
		GetMe(authenticator).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"memberId":"m1"`)
	})

	t.Run("sem identidade", func(t *testing.T) {
		authenticator := mocks.NewMockAuthenticator(gomock.NewController(t))
		authenticator.EXPECT().CurrentIdentity(gomock.Any()).Return(nil, false)

		req := httptest.NewRequest(http.MethodGet, "/v1/me", nil)
		req = req.WithContext(context.WithValue(req.Context(), middleware.ContextKeyUser, claims))
		rec := httptest.NewRecorder()
		GetMe(authenticator).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("sem claims", func(t *testing.T) {
		authenticator := mocks.NewMockAuthenticator(gomock.NewController(t))

		rec := httptest.NewRecorder()
		GetMe(authenticator).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
