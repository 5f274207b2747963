package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/maestria/maestria-api/infrastructure/database/postgres"
	"github.com/maestria/maestria-api/infrastructure/migration"
	"github.com/maestria/maestria-api/infrastructure/repository"
	"github.com/maestria/maestria-api/internal/config"
	"github.com/maestria/maestria-api/internal/domain"
	"github.com/maestria/maestria-api/internal/usecases/authenticating"
	"github.com/maestria/maestria-api/internal/usecases/contacting"
	"github.com/maestria/maestria-api/internal/usecases/ledger"
	"github.com/maestria/maestria-api/internal/usecases/persisting"
	"github.com/maestria/maestria-api/internal/usecases/teaming"
	"github.com/maestria/maestria-api/internal/workspace"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const seedOrigin = "seed-script"

type seedTransaction struct {
	Date        string
	Description string
	Category    string
	Amount      string
	Type        domain.TransactionType
	Status      domain.TransactionStatus
}

var demoTransactions = []seedTransaction{
	{"2024-08-01", "Aluguel da sala", "Fixo", "2500.00", domain.TransactionTypeExpense, domain.TransactionStatusPaid},
	{"2024-08-03", "Consultoria mensal", "Serviços", "8200.00", domain.TransactionTypeIncome, domain.TransactionStatusPaid},
	{"2024-08-05", "Energia elétrica", "Utilidades", "412.37", domain.TransactionTypeExpense, domain.TransactionStatusPaid},
	{"2024-08-12", "Licenças de software", "Tecnologia", "689.90", domain.TransactionTypeExpense, domain.TransactionStatusPending},
	{"2024-08-20", "Projeto de identidade visual", "Serviços", "4300.00", domain.TransactionTypeIncome, domain.TransactionStatusPending},
}

var demoContacts = []domain.Contact{
	{Name: "Papelaria Central", Company: "Papelaria Central Ltda", Type: domain.ContactTypeSupplier, City: "Curitiba", State: "PR"},
	{Name: "Energisa", Company: "Energisa S.A.", Type: domain.ContactTypeSupplier},
	{Name: "Estúdio Aurora", Company: "Aurora Design", Type: domain.ContactTypeClient, Email: "financeiro@aurora.com.br"},
}

func main() {
	adminName := flag.String("admin", "Administrador", "nome do primeiro administrador")
	accessKey := flag.String("key", "", "chave de acesso do espaço de trabalho; imprime o hash para AUTH_ACCESS_KEY_HASH")
	demo := flag.Bool("demo", false, "inclui lançamentos e contatos de exemplo")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logrus.Info("Iniciando script de carga inicial...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("Erro ao carregar configurações: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer conn.Close()
	logrus.Info("Conexão com o banco de dados estabelecida com sucesso")

	if err := migration.Up(conn.DB); err != nil {
		logrus.Fatalf("ERRO ao aplicar migrações: %v", err)
	}

	store := persisting.NewStore(repository.NewStorageRepository(conn, cfg.Sync.Channel), seedOrigin, cfg.Storage.SnapshotKey)
	ws := workspace.New(store)
	ws.Init(ctx)

	seedAdmin(ctx, teaming.NewService(ws), *adminName)

	if *demo {
		seedDemo(ctx, ledger.NewService(ws), contacting.NewService(ws))
	}

	if *accessKey != "" {
		hash, err := authenticating.HashAccessKey(*accessKey)
		if err != nil {
			logrus.Fatalf("ERRO ao gerar hash da chave de acesso: %v", err)
		}
		fmt.Printf("AUTH_ACCESS_KEY_HASH=%s\n", hash)
	}

	logrus.WithField("version", ws.Version()).Info("Carga inicial concluída")
}

// seedAdmin cria o primeiro administrador apenas quando a equipe está vazia.
func seedAdmin(ctx context.Context, team *teaming.Service, name string) {
	admin, created, err := team.EnsureAdmin(ctx, name)
	if err != nil {
		logrus.Fatalf("ERRO ao criar administrador: %v", err)
	}
	if !created {
		logrus.Infof("Equipe já possui %d membros, nenhum administrador criado", len(team.List(nil)))
		return
	}

	fmt.Printf("MEMBER_ID=%s\n", admin.ID)
}

func seedDemo(ctx context.Context, transactions *ledger.Service, contacts *contacting.Service) {
	startTime := time.Now()

	batch := make([]domain.Transaction, 0, len(demoTransactions))
	for _, t := range demoTransactions {
		batch = append(batch, domain.Transaction{
			Date:        t.Date,
			Description: t.Description,
			Category:    t.Category,
			Amount:      decimal.RequireFromString(t.Amount),
			Type:        t.Type,
			Status:      t.Status,
			Source:      domain.TransactionSourceManual,
		})
	}

	if _, err := transactions.ImportMany(ctx, batch); err != nil {
		logrus.Errorf("ERRO ao inserir lançamentos de exemplo: %v", err)
	}

	people := make([]domain.Contact, 0, len(demoContacts))
	for _, c := range demoContacts {
		c.TotalTraded = decimal.Zero
		people = append(people, c)
	}
	if _, err := contacts.ImportMany(ctx, people); err != nil {
		logrus.Errorf("ERRO ao inserir contatos de exemplo: %v", err)
	}

	logrus.Infof("Dados de exemplo inseridos em %v", time.Since(startTime))
}
