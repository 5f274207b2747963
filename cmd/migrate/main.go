package main

import (
	"context"
	"flag"
	"os"

	"github.com/maestria/maestria-api/infrastructure/database/postgres"
	"github.com/maestria/maestria-api/infrastructure/migration"
	"github.com/maestria/maestria-api/internal/config"
	"github.com/sirupsen/logrus"
)

func main() {
	down := flag.Bool("down", false, "desfaz a última migração")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("Erro ao carregar configurações: %v", err)
	}

	conn, err := postgres.NewConnection(context.Background(), cfg.Database)
	if err != nil {
		logrus.Fatalf("Erro ao conectar no banco: %v", err)
	}
	defer conn.Close()

	if *down {
		err = migration.Down(conn.DB)
	} else {
		err = migration.Up(conn.DB)
	}
	if err != nil {
		logrus.Errorf("Falha na migração: %v", err)
		os.Exit(1)
	}

	logrus.Info("Migração concluída")
}
