package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/maestria/maestria-api/infrastructure/database/postgres"
	"github.com/maestria/maestria-api/infrastructure/integrator/gemini"
	"github.com/maestria/maestria-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/maestria/maestria-api/infrastructure/migration"
	"github.com/maestria/maestria-api/infrastructure/repository"
	"github.com/maestria/maestria-api/internal/api"
	"github.com/maestria/maestria-api/internal/config"
	"github.com/maestria/maestria-api/internal/scheduler"
	"github.com/maestria/maestria-api/internal/syncing"
	"github.com/maestria/maestria-api/internal/usecases/assisting"
	"github.com/maestria/maestria-api/internal/usecases/authenticating"
	"github.com/maestria/maestria-api/internal/usecases/contacting"
	"github.com/maestria/maestria-api/internal/usecases/ledger"
	"github.com/maestria/maestria-api/internal/usecases/messaging"
	"github.com/maestria/maestria-api/internal/usecases/persisting"
	"github.com/maestria/maestria-api/internal/usecases/preferences"
	"github.com/maestria/maestria-api/internal/usecases/scheduling"
	"github.com/maestria/maestria-api/internal/usecases/teaming"
	"github.com/maestria/maestria-api/internal/workspace"
	"github.com/maestria/maestria-api/pkg/log"
	"github.com/sirupsen/logrus"
)

const driverMemory = "memory"

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	if err := cfg.Validate(log.IsDevelopment()); err != nil {
		logrus.Fatal(err)
	}

	instanceID := cfg.App.InstanceID
	if instanceID == "" {
		instanceID = uuid.NewString()
	}
	log.WithInstance(instanceID)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storage, subscriber, closeStorage := openStorage(ctx, cfg)
	defer closeStorage()

	store := persisting.NewStore(storage, instanceID, cfg.Storage.SnapshotKey)

	ws := workspace.New(store)
	ws.Init(ctx)
	defer ws.Teardown()

	var bridge *syncing.Bridge
	if cfg.Sync.Enabled {
		bridge = syncing.NewBridge(subscriber, ws, cfg.Storage.SnapshotKey, instanceID)
		if err := bridge.Start(ctx); err != nil {
			logrus.WithError(err).Error("Erro ao iniciar a ponte de sincronização, seguindo sem ela")
			bridge = nil
		}
	}

	ledgerService := ledger.NewService(ws)
	contactService := contacting.NewService(ws)
	scheduleService := scheduling.NewService(ws)
	teamService := teaming.NewService(ws)
	messageService := messaging.NewService(ws)

	if cfg.Database.Driver == driverMemory {
		bootstrapAdmin(ctx, teamService, cfg.App.BootstrapAdmin)
	}
	preferenceService := preferences.NewService(store, cfg.Storage)

	authenticator := authenticating.NewService(teamService, store, cfg.Auth, cfg.Storage.IdentityKey)

	geminiClient, err := geminiclient.NewClient(ctx, cfg.Gemini)
	if err != nil {
		logrus.WithError(err).Warn("Gateway de IA indisponível, as operações de IA vão retornar vazio")
		geminiClient = geminiclient.Unavailable(err)
	}
	assistant := assisting.NewService(gemini.New(cfg.Gemini, geminiClient), ledgerService, contactService, preferenceService)

	dueItemsSyncService := scheduler.NewDueItemsSyncService(scheduleService, cfg.DueItemsSync)
	if err := dueItemsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de vencimentos")
	} else {
		logrus.Info("Agendador de vencimentos iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Workspace:     ws,
		Bridge:        bridge,
		Authenticator: authenticator,
		Ledger:        ledgerService,
		Contacts:      contactService,
		Schedule:      scheduleService,
		Team:          teamService,
		Messages:      messageService,
		Preferences:   preferenceService,
		Assistant:     assistant,
		DueItems:      dueItemsSyncService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// openStorage escolhe o armazenamento conforme DATABASE_DRIVER.
func openStorage(ctx context.Context, cfg *config.Config) (repository.StorageRepository, syncing.Subscriber, func()) {
	if cfg.Database.Driver == driverMemory {
		logrus.Warn("Usando armazenamento em memória: os dados se perdem ao encerrar")
		memory := repository.NewMemoryStorage()
		return memory, memory, func() {}
	}

	conn := pgconn(ctx, cfg.Database)

	if cfg.Database.MigrateOnStart {
		if err := migration.Up(conn.DB); err != nil {
			logrus.WithError(err).Fatal("Erro ao aplicar migrações")
		}
	}

	listener := postgres.NewListener(cfg.Database, cfg.Sync)

	return repository.NewStorageRepository(conn, cfg.Sync.Channel), listener, func() {
		_ = listener.Close()
		_ = conn.Close()
	}
}

// bootstrapAdmin garante um administrador para o primeiro login em memória.
func bootstrapAdmin(ctx context.Context, team *teaming.Service, name string) {
	admin, created, err := team.EnsureAdmin(ctx, name)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar o administrador inicial")
	}
	if created {
		logrus.WithField("member_id", admin.ID).Warnf("Administrador inicial criado, use MEMBER_ID=%s no login", admin.ID)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
