package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/maestria/maestria-api/internal/api/handler"
	"github.com/maestria/maestria-api/internal/api/handler/router"
	"github.com/maestria/maestria-api/internal/config"
	"github.com/maestria/maestria-api/internal/syncing"
	"github.com/maestria/maestria-api/internal/usecases/assisting"
	"github.com/maestria/maestria-api/internal/usecases/authenticating"
	"github.com/maestria/maestria-api/internal/usecases/contacting"
	"github.com/maestria/maestria-api/internal/usecases/ledger"
	"github.com/maestria/maestria-api/internal/usecases/messaging"
	"github.com/maestria/maestria-api/internal/usecases/preferences"
	"github.com/maestria/maestria-api/internal/usecases/scheduling"
	"github.com/maestria/maestria-api/internal/usecases/teaming"
	"github.com/maestria/maestria-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 15 * time.Second

// Services reúne os casos de uso expostos pela API.
type Services struct {
	Workspace     handler.WorkspaceState
	Bridge        *syncing.Bridge // nil com a sincronização desligada
	Authenticator authenticating.Authenticator
	Ledger        *ledger.Service
	Contacts      *contacting.Service
	Schedule      *scheduling.Service
	Team          *teaming.Service
	Messages      *messaging.Service
	Preferences   *preferences.Service
	Assistant     *assisting.Service
	DueItems      handler.DueItemsJob
}

type Server struct {
	httpServer *http.Server
}

func New(cfg *config.Config, services Services) (*Server, error) {
	if services.Workspace == nil || services.Authenticator == nil {
		return nil, fmt.Errorf("espaço de trabalho e autenticação são obrigatórios")
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(cfg, services),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// NewHandler monta as rotas e a cadeia de middlewares.
func NewHandler(cfg *config.Config, services Services) http.Handler {
	var bridge handler.SyncStatus
	if services.Bridge != nil {
		bridge = services.Bridge
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Workspace)...),
		router.WithRoutes(handler.Session(services.Authenticator)...),
		router.WithRoutes(handler.Transactions(services.Ledger)...),
		router.WithRoutes(handler.Contacts(services.Contacts)...),
		router.WithRoutes(handler.Schedule(services.Schedule)...),
		router.WithRoutes(handler.Team(services.Team)...),
		router.WithRoutes(handler.Messages(services.Messages)...),
		router.WithRoutes(handler.Preferences(services.Preferences)...),
		router.WithRoutes(handler.AI(services.Assistant)...),
		router.WithRoutes(handler.Workspace(services.Workspace, bridge)...),
		router.WithRoutes(handler.CronJobs(handler.CronJobServices{DueItemsSyncService: services.DueItems})...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
