package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	gemdomain "github.com/maestria/maestria-api/infrastructure/integrator/gemini/domain"
	"github.com/maestria/maestria-api/infrastructure/repository"
	"github.com/maestria/maestria-api/internal/config"
	"github.com/maestria/maestria-api/internal/domain"
	"github.com/maestria/maestria-api/internal/scheduler"
	"github.com/maestria/maestria-api/internal/usecases/assisting"
	"github.com/maestria/maestria-api/internal/usecases/assisting/mocks"
	"github.com/maestria/maestria-api/internal/usecases/authenticating"
	"github.com/maestria/maestria-api/internal/usecases/contacting"
	"github.com/maestria/maestria-api/internal/usecases/ledger"
	"github.com/maestria/maestria-api/internal/usecases/messaging"
	"github.com/maestria/maestria-api/internal/usecases/persisting"
	"github.com/maestria/maestria-api/internal/usecases/preferences"
	"github.com/maestria/maestria-api/internal/usecases/scheduling"
	"github.com/maestria/maestria-api/internal/usecases/teaming"
	"github.com/maestria/maestria-api/internal/workspace"
	"github.com/maestria/maestria-api/pkg/apiErrors"
	"github.com/maestria/maestria-api/pkg/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type testAPI struct {
	handler http.Handler
	gateway *mocks.MockGateway
	team    *teaming.Service
	admin   domain.TeamMember
	member  domain.TeamMember
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	api := newEmptyTestAPI(t)

	var err error
	api.admin, err = api.team.Create(context.Background(), domain.TeamMember{Name: "Ana", Role: domain.RoleAdmin, Status: domain.MemberStatusOffline})
	require.NoError(t, err)
	api.member, err = api.team.Create(context.Background(), domain.TeamMember{Name: "Bruno", Role: domain.RoleMember, Status: domain.MemberStatusOffline})
	require.NoError(t, err)

	return api
}

// newEmptyTestAPI monta a API sobre um armazenamento em memória sem membros.
func newEmptyTestAPI(t *testing.T) *testAPI {
	t.Helper()
	log.SetupTestLogger()

	cfg := &config.Config{
		Server: config.Server{AllowedOrigins: []string{"http://localhost:5173"}},
		Auth:   config.Auth{Secret: "segredo-de-teste", TokenTTL: time.Hour},
		Storage: config.Storage{
			SnapshotKey: "maestria_data",
			BrandingKey: "maestria_branding",
			LanguageKey: "maestria_lang",
			ViewKey:     "maestria_view",
			IdentityKey: "maestria_auth",
		},
	}

	store := persisting.NewStore(repository.NewMemoryStorage(), "instancia-teste", cfg.Storage.SnapshotKey)
	ws := workspace.New(store)
	ws.Init(context.Background())

	ledgerService := ledger.NewService(ws)
	contactService := contacting.NewService(ws)
	scheduleService := scheduling.NewService(ws)
	teamService := teaming.NewService(ws)
	preferenceService := preferences.NewService(store, cfg.Storage)

	gateway := mocks.NewMockGateway(gomock.NewController(t))

	handler := NewHandler(cfg, Services{
		Workspace:     ws,
		Authenticator: authenticating.NewService(teamService, store, cfg.Auth, cfg.Storage.IdentityKey),
		Ledger:        ledgerService,
		Contacts:      contactService,
		Schedule:      scheduleService,
		Team:          teamService,
		Messages:      messaging.NewService(ws),
		Preferences:   preferenceService,
		Assistant:     assisting.NewService(gateway, ledgerService, contactService, preferenceService),
		DueItems:      scheduler.NewDueItemsSyncService(scheduleService, config.DueItemsSync{}),
	})

	return &testAPI{handler: handler, gateway: gateway, team: teamService}
}

func (a *testAPI) do(t *testing.T, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

// doChunked envia o corpo sem Content-Length, como em Transfer-Encoding chunked.
func (a *testAPI) doChunked(t *testing.T, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, io.MultiReader(strings.NewReader(body)))
	require.EqualValues(t, -1, req.ContentLength)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func (a *testAPI) login(t *testing.T, memberID string) string {
	t.Helper()

	rec := a.do(t, http.MethodPost, "/v1/session", "", map[string]string{"memberId": memberID, "accessKey": "qualquer"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var session authenticating.Session
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	require.NotEmpty(t, session.Token)
	return session.Token
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr), rec.Body.String())
	return apiErr.Code
}

func TestFirstLoginOnEmptyMemoryStore(t *testing.T) {
	api := newEmptyTestAPI(t)

	rec := api.do(t, http.MethodPost, "/v1/session", "", map[string]string{"memberId": "qualquer", "accessKey": "qualquer"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	admin, created, err := api.team.EnsureAdmin(context.Background(), "Administrador")
	require.NoError(t, err)
	require.True(t, created)

	token := api.login(t, admin.ID)

	rec = api.do(t, http.MethodPost, "/v1/team", token, map[string]any{"name": "Carla", "role": "member"})
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestHealthcheckIsPublic(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/healthcheck", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestAuthentication(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name       string
		method     string
		target     string
		token      string
		body       any
		wantStatus int
		wantCode   string
	}{
		{
			name:       "sem token",
			method:     http.MethodGet,
			target:     "/v1/transactions",
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:       "token malformado",
			method:     http.MethodGet,
			target:     "/v1/transactions",
			token:      "nao-e-um-jwt",
			wantStatus: http.StatusUnauthorized,
			wantCode:   apiErrors.ErrInvalidToken,
		},
		{
			name:       "membro inexistente",
			method:     http.MethodPost,
			target:     "/v1/session",
			body:       map[string]string{"memberId": "fantasma", "accessKey": "x"},
			wantStatus: http.StatusNotFound,
			wantCode:   apiErrors.ErrMemberNotFound,
		},
		{
			name:       "memberId vazio",
			method:     http.MethodPost,
			target:     "/v1/session",
			body:       map[string]string{"accessKey": "x"},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := api.do(t, tt.method, tt.target, tt.token, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, errorCode(t, rec))
		})
	}
}

func TestSessionLifecycle(t *testing.T) {
	api := newTestAPI(t)
	token := api.login(t, api.member.ID)

	rec := api.do(t, http.MethodGet, "/v1/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), api.member.ID)

	rec = api.do(t, http.MethodDelete, "/v1/session", token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(t, http.MethodGet, "/v1/me", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrMemberNotFound, errorCode(t, rec))
}

func TestTransactionsCRUD(t *testing.T) {
	api := newTestAPI(t)
	token := api.login(t, api.member.ID)

	rec := api.do(t, http.MethodPost, "/v1/transactions", token, map[string]any{
		"date":        "2024-08-01",
		"description": "Aluguel",
		"category":    "Fixo",
		"amount":      "1500.00",
		"type":        "expense",
		"status":      "paid",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created domain.Transaction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.TransactionSourceManual, created.Source)

	rec = api.do(t, http.MethodGet, "/v1/transactions/"+created.ID, token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(t, http.MethodGet, "/v1/transactions/inexistente", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrEntityNotFound, errorCode(t, rec))

	rec = api.do(t, http.MethodPut, "/v1/transactions/inexistente", token, created)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(t, http.MethodPost, "/v1/transactions", token, map[string]any{
		"date":        "2024-08-01",
		"description": "Estorno",
		"category":    "Fixo",
		"amount":      "-10",
		"type":        "expense",
		"status":      "paid",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidEntity, errorCode(t, rec))

	rec = api.do(t, http.MethodGet, "/v1/transactions?type=transfer", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, errorCode(t, rec))

	rec = api.do(t, http.MethodGet, "/v1/ledger/summary", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var summary domain.LedgerSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, "1500", summary.Expense.String())

	rec = api.do(t, http.MethodDelete, "/v1/transactions/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(t, http.MethodGet, "/v1/transactions/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportTransactionsCSV(t *testing.T) {
	api := newTestAPI(t)
	token := api.login(t, api.member.ID)

	rec := api.do(t, http.MethodPost, "/v1/transactions", token, map[string]any{
		"date":        "2024-08-02",
		"description": "Venda balcão",
		"category":    "Vendas",
		"amount":      "320.50",
		"type":        "income",
		"status":      "paid",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = api.do(t, http.MethodGet, "/v1/ledger/export", token, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "id,date,description"))
	assert.Contains(t, lines[1], "Venda balcão")
}

func TestRoleGating(t *testing.T) {
	api := newTestAPI(t)
	memberToken := api.login(t, api.member.ID)
	adminToken := api.login(t, api.admin.ID)

	newMember := map[string]any{"name": "Carla", "role": "leader"}

	rec := api.do(t, http.MethodPost, "/v1/team", memberToken, newMember)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, apiErrors.ErrInsufficientPrivilege, errorCode(t, rec))

	rec = api.do(t, http.MethodPost, "/v1/team", adminToken, newMember)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created domain.TeamMember
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, domain.MemberStatusOffline, created.Status)

	rec = api.do(t, http.MethodPut, "/v1/team/"+api.admin.ID+"/status", memberToken, map[string]string{"status": "online"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = api.do(t, http.MethodPut, "/v1/team/"+api.member.ID+"/status", memberToken, map[string]string{"status": "online"})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(t, http.MethodDelete, "/v1/team/"+api.admin.ID, adminToken, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidOperation, errorCode(t, rec))

	rec = api.do(t, http.MethodGet, "/v1/cron/status", memberToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestPayScheduledItem(t *testing.T) {
	api := newTestAPI(t)
	token := api.login(t, api.member.ID)

	rec := api.do(t, http.MethodPost, "/v1/schedule", token, map[string]any{
		"dueDate":     "2024-08-10",
		"description": "Internet",
		"amount":      "120",
		"type":        "expense",
		"recurrence":  "monthly",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var item domain.ScheduledItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	assert.Equal(t, domain.ScheduleStatusPending, item.Status)

	rec = api.do(t, http.MethodPost, "/v1/schedule/"+item.ID+"/pay", token, map[string]string{"paidOn": "2024-08-09"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var payment scheduling.Payment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payment))
	assert.Equal(t, domain.ScheduleStatusPaid, payment.Item.Status)
	assert.Equal(t, "2024-08-09", payment.Transaction.Date)
	assert.Equal(t, "120", payment.Transaction.Amount.String())
	require.NotNil(t, payment.Next)
	assert.Equal(t, "2024-09-10", payment.Next.DueDate)

	rec = api.do(t, http.MethodPost, "/v1/schedule/"+item.ID+"/pay", token, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidOperation, errorCode(t, rec))

	rec = api.do(t, http.MethodGet, "/v1/transactions", token, nil)
	var txs []domain.Transaction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &txs))
	assert.Len(t, txs, 1)
}

func TestRunCronJobWait(t *testing.T) {
	api := newTestAPI(t)
	token := api.login(t, api.admin.ID)

	rec := api.do(t, http.MethodPost, "/v1/cron/due-items/run?wait=true", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"overdueItems":0`)

	rec = api.do(t, http.MethodPost, "/v1/cron/desconhecida/run", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(t, http.MethodGet, "/v1/cron/status", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "last_sync_completed_at")
}

func TestAIDraftConfirmation(t *testing.T) {
	api := newTestAPI(t)
	token := api.login(t, api.member.ID)

	date, description, category, kind := "2024-08-05", "Papelaria", "Escritório", "expense"
	amount := 45.9
	api.gateway.EXPECT().
		ExtractTransactions(gomock.Any(), "comprei papel por 45,90").
		Return([]gemdomain.TransactionCandidate{{
			Date:        &date,
			Description: &description,
			Category:    &category,
			Amount:      &amount,
			Type:        &kind,
		}})

	rec := api.do(t, http.MethodPost, "/v1/ai/extract", token, map[string]string{"text": "comprei papel por 45,90"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var drafts []domain.Draft
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &drafts))
	require.Len(t, drafts, 1)
	assert.Equal(t, domain.DraftStateParsed, drafts[0].State)

	rec = api.do(t, http.MethodPost, "/v1/ai/drafts/"+drafts[0].ID+"/confirm", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = api.do(t, http.MethodPost, "/v1/ai/drafts/"+drafts[0].ID+"/confirm", token, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = api.do(t, http.MethodGet, "/v1/transactions?source=ai", token, nil)
	var txs []domain.Transaction
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &txs))
	require.Len(t, txs, 1)
	assert.Equal(t, "45.9", txs[0].Amount.String())
}

func TestRouterFallbacks(t *testing.T) {
	api := newTestAPI(t)
	token := api.login(t, api.member.ID)

	rec := api.do(t, http.MethodGet, "/v1/inexistente", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrEntityNotFound, errorCode(t, rec))

	rec = api.do(t, http.MethodPatch, "/v1/transactions", token, nil)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)

	req := httptest.NewRequest(http.MethodOptions, "/v1/transactions", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	preflight := httptest.NewRecorder()
	api.handler.ServeHTTP(preflight, req)
	assert.Equal(t, http.StatusOK, preflight.Code)
	assert.Equal(t, "http://localhost:5173", preflight.Header().Get("Access-Control-Allow-Origin"))
}

func TestOptionalBodiesWithoutContentLength(t *testing.T) {
	api := newTestAPI(t)
	token := api.login(t, api.admin.ID)

	rec := api.do(t, http.MethodPost, "/v1/schedule", token, map[string]any{
		"dueDate":     "2024-08-10",
		"description": "Contador",
		"amount":      "300",
		"type":        "expense",
		"recurrence":  "none",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var item domain.ScheduledItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))

	rec = api.doChunked(t, http.MethodPost, "/v1/schedule/"+item.ID+"/pay", token, `{"paidOn":"2024-08-07"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var payment scheduling.Payment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payment))
	assert.Equal(t, "2024-08-07", payment.Transaction.Date)

	rec = api.doChunked(t, http.MethodPost, "/v1/schedule/"+item.ID+"/pay", token, `{"paidOn":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidRequest, errorCode(t, rec))

	rec = api.doChunked(t, http.MethodPost, "/v1/ai/reports", token, `{"from":"01/08/2024","to":"2024-08-31"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, errorCode(t, rec))

	rec = api.do(t, http.MethodPost, "/v1/ai/reports", token, map[string]string{"from": "2024-08-01", "to": "agosto"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, errorCode(t, rec))
}

func TestCreateWithExistingIDIsRejected(t *testing.T) {
	api := newTestAPI(t)
	token := api.login(t, api.member.ID)

	contact := map[string]any{"id": "c-1", "name": "Papelaria Central", "type": "supplier"}
	rec := api.do(t, http.MethodPost, "/v1/contacts", token, contact)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	contact["name"] = "Outro nome"
	rec = api.do(t, http.MethodPost, "/v1/contacts", token, contact)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, apiErrors.ErrDuplicateEntity, errorCode(t, rec))

	rec = api.do(t, http.MethodGet, "/v1/contacts/c-1", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "Papelaria Central")
}
