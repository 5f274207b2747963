package handler

import (
	"net/http"

	"github.com/maestria/maestria-api/internal/api/handler/router"
	"github.com/maestria/maestria-api/internal/usecases/assisting"
	"github.com/maestria/maestria-api/internal/usecases/authenticating"
	"github.com/maestria/maestria-api/internal/usecases/contacting"
	"github.com/maestria/maestria-api/internal/usecases/ledger"
	"github.com/maestria/maestria-api/internal/usecases/messaging"
	"github.com/maestria/maestria-api/internal/usecases/preferences"
	"github.com/maestria/maestria-api/internal/usecases/scheduling"
	"github.com/maestria/maestria-api/internal/usecases/teaming"
	"github.com/maestria/maestria-api/pkg/middleware"
)

func members() []router.Middleware { return []router.Middleware{middleware.AllRoles()} }

func Healthcheck(ws Versioner) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(ws),
		},
	}
}

func Session(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/session",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/session",
			Method:      http.MethodDelete,
			Handler:     Logout(service),
			Middlewares: members(),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: members(),
		},
	}
}

// Resumo e exportação ficam em /v1/ledger: o httprouter não aceita rota estática e parâmetro no mesmo nível.
func Transactions(service *ledger.Service) []router.Route {
	return router.Guarded(members(),
		router.Route{Path: "/v1/transactions", Method: http.MethodGet, Handler: ListTransactions(service)},
		router.Route{Path: "/v1/transactions", Method: http.MethodPost, Handler: CreateTransaction(service)},
		router.Route{Path: "/v1/transactions/import", Method: http.MethodPost, Handler: ImportTransactions(service)},
		router.Route{Path: "/v1/ledger/summary", Method: http.MethodGet, Handler: TransactionSummary(service)},
		router.Route{Path: "/v1/ledger/export", Method: http.MethodGet, Handler: ExportTransactions(service)},
		router.Route{Path: "/v1/transactions/:id", Method: http.MethodGet, Handler: GetTransaction(service)},
		router.Route{Path: "/v1/transactions/:id", Method: http.MethodPut, Handler: UpdateTransaction(service)},
		router.Route{Path: "/v1/transactions/:id", Method: http.MethodDelete, Handler: DeleteTransaction(service)},
	)
}

func Contacts(service *contacting.Service) []router.Route {
	return router.Guarded(members(),
		router.Route{Path: "/v1/contacts", Method: http.MethodGet, Handler: ListContacts(service)},
		router.Route{Path: "/v1/contacts", Method: http.MethodPost, Handler: CreateContact(service)},
		router.Route{Path: "/v1/contacts/import", Method: http.MethodPost, Handler: ImportContacts(service)},
		router.Route{Path: "/v1/contacts/:id", Method: http.MethodGet, Handler: GetContact(service)},
		router.Route{Path: "/v1/contacts/:id", Method: http.MethodPut, Handler: UpdateContact(service)},
		router.Route{Path: "/v1/contacts/:id", Method: http.MethodDelete, Handler: DeleteContact(service)},
	)
}

func Schedule(service *scheduling.Service) []router.Route {
	return router.Guarded(members(),
		router.Route{Path: "/v1/schedule", Method: http.MethodGet, Handler: ListSchedule(service)},
		router.Route{Path: "/v1/schedule", Method: http.MethodPost, Handler: CreateScheduledItem(service)},
		router.Route{Path: "/v1/schedule/:id", Method: http.MethodGet, Handler: GetScheduledItem(service)},
		router.Route{Path: "/v1/schedule/:id", Method: http.MethodPut, Handler: UpdateScheduledItem(service)},
		router.Route{Path: "/v1/schedule/:id", Method: http.MethodDelete, Handler: DeleteScheduledItem(service)},
		router.Route{Path: "/v1/schedule/:id/pay", Method: http.MethodPost, Handler: PayScheduledItem(service)},
	)
}

func Team(service *teaming.Service) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/team",
			Method:      http.MethodGet,
			Handler:     ListTeam(service),
			Middlewares: members(),
		},
		{
			Path:        "/v1/team",
			Method:      http.MethodPost,
			Handler:     CreateMember(service),
			Middlewares: []router.Middleware{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/team/:id",
			Method:      http.MethodPut,
			Handler:     UpdateMember(service),
			Middlewares: []router.Middleware{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/team/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteMember(service),
			Middlewares: []router.Middleware{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/team/:id/status",
			Method:      http.MethodPut,
			Handler:     SetMemberStatus(service),
			Middlewares: members(),
		},
	}
}

func Messages(service *messaging.Service) []router.Route {
	return router.Guarded(members(),
		router.Route{Path: "/v1/messages", Method: http.MethodGet, Handler: ListConversation(service)},
		router.Route{Path: "/v1/messages", Method: http.MethodPost, Handler: SendMessage(service)},
		router.Route{Path: "/v1/messages/:id", Method: http.MethodPut, Handler: EditMessage(service)},
		router.Route{Path: "/v1/messages/:id", Method: http.MethodDelete, Handler: DeleteMessage(service)},
	)
}

func Preferences(service *preferences.Service) []router.Route {
	return router.Guarded(members(),
		router.Route{Path: "/v1/preferences/branding", Method: http.MethodGet, Handler: GetBranding(service)},
		router.Route{Path: "/v1/preferences/branding", Method: http.MethodPut, Handler: SetBranding(service), Middlewares: []router.Middleware{middleware.AdminOrLeader()}},
		router.Route{Path: "/v1/preferences/language", Method: http.MethodGet, Handler: GetLanguage(service)},
		router.Route{Path: "/v1/preferences/language", Method: http.MethodPut, Handler: SetLanguage(service)},
		router.Route{Path: "/v1/preferences/view", Method: http.MethodGet, Handler: GetView(service)},
		router.Route{Path: "/v1/preferences/view", Method: http.MethodPut, Handler: SetView(service)},
	)
}

func AI(service *assisting.Service) []router.Route {
	return router.Guarded(members(),
		router.Route{Path: "/v1/ai/documents", Method: http.MethodPost, Handler: AnalyzeDocument(service)},
		router.Route{Path: "/v1/ai/extract", Method: http.MethodPost, Handler: ExtractTransactions(service)},
		router.Route{Path: "/v1/ai/chat", Method: http.MethodPost, Handler: Chat(service)},
		router.Route{Path: "/v1/ai/drafts", Method: http.MethodGet, Handler: ListDrafts(service)},
		router.Route{Path: "/v1/ai/drafts/:id/confirm", Method: http.MethodPost, Handler: ConfirmDraft(service)},
		router.Route{Path: "/v1/ai/drafts/:id", Method: http.MethodDelete, Handler: DiscardDraft(service)},
		router.Route{Path: "/v1/ai/reports", Method: http.MethodPost, Handler: GenerateReport(service), Middlewares: []router.Middleware{middleware.AdminOrLeader()}},
	)
}

func Workspace(ws WorkspaceState, bridge SyncStatus) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/workspace",
			Method:      http.MethodGet,
			Handler:     GetWorkspace(ws),
			Middlewares: members(),
		},
		{
			Path:        "/v1/workspace/reload",
			Method:      http.MethodPost,
			Handler:     ReloadWorkspace(ws),
			Middlewares: members(),
		},
		{
			Path:        "/v1/workspace/sync",
			Method:      http.MethodGet,
			Handler:     GetSyncStatus(ws, bridge),
			Middlewares: []router.Middleware{middleware.AdminOrLeader()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []router.Middleware{middleware.AdminOrLeader()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []router.Middleware{middleware.AdminOrLeader()},
		},
	}
}
