package postgres

import (
	"context"
	"database/sql"

	_ "github.com/lib/pq"
	"github.com/maestria/maestria-api/internal/config"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const driverName = "postgres"

// Connection é o pool usado pelo repositório de armazenamento.
type Connection struct {
	*sql.DB
}

// NewConnection abre o pool, aplica os limites configurados e confirma que o banco responde.
func NewConnection(ctx context.Context, cfg config.Database) (*Connection, error) {
	db, err := sql.Open(driverName, cfg.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir conexão")
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "banco não respondeu ao ping")
	}

	logrus.WithFields(logrus.Fields{
		"max_open_conns": cfg.MaxOpenConns,
		"max_idle_conns": cfg.MaxIdleConns,
	}).Debug("Pool do PostgreSQL configurado")

	return &Connection{DB: db}, nil
}

// RunInTransaction executa fn numa transação READ COMMITTED. Erro ou panic em fn desfazem tudo.
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) (err error) {
	tx, err := c.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return errors.Wrap(err, "erro ao iniciar transação")
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err = fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logrus.WithError(rbErr).Error("Falha ao desfazer transação")
		}
		return err
	}

	return errors.Wrap(tx.Commit(), "erro ao confirmar transação")
}
