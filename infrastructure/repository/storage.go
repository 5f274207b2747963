package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/maestria/maestria-api/infrastructure/database/postgres"
	"github.com/maestria/maestria-api/internal/domain"
)

const storageTable = "storage_entries"

//go:generate mockgen -source=storage.go -destination=mocks/storage_mock.go -package=mocks
type StorageRepository interface {
	// Get retorna nil sem erro quando a chave não existe.
	Get(ctx context.Context, key string) (*domain.StorageEntry, error)
	// Put grava sem checar versão (último a gravar vence).
	Put(ctx context.Context, key string, value []byte, origin string) (int64, error)
	// CompareAndSwap grava apenas se a versão atual for expected. expected 0 significa chave inexistente.
	CompareAndSwap(ctx context.Context, key string, value []byte, expected int64, origin string) (int64, error)
	Delete(ctx context.Context, key string, origin string) error
}

type storageRepository struct {
	conn    *postgres.Connection
	channel string
}

func NewStorageRepository(conn *postgres.Connection, channel string) StorageRepository {
	return &storageRepository{
		conn:    conn,
		channel: channel,
	}
}

func (r *storageRepository) Get(ctx context.Context, key string) (*domain.StorageEntry, error) {
	query, args, err := squirrel.
		Select("key", "value", "version", "origin", "updated_at").
		From(storageTable).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var entry domain.StorageEntry
	var value string
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&entry.Key,
		&value,
		&entry.Version,
		&entry.Origin,
		&entry.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao ler chave %s: %w", key, err)
	}

	entry.Value = []byte(value)
	return &entry, nil
}

func (r *storageRepository) Put(ctx context.Context, key string, value []byte, origin string) (int64, error) {
	query, args, err := squirrel.
		Insert(storageTable).
		Columns("key", "value", "version", "origin").
		Values(key, string(value), 1, origin).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, version = " + storageTable + ".version + 1, origin = EXCLUDED.origin, updated_at = NOW() RETURNING version").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, err
	}

	return r.writeAndNotify(ctx, key, origin, query, args)
}

func (r *storageRepository) CompareAndSwap(ctx context.Context, key string, value []byte, expected int64, origin string) (int64, error) {
	var (
		query string
		args  []any
		err   error
	)

	if expected == 0 {
		query, args, err = squirrel.
			Insert(storageTable).
			Columns("key", "value", "version", "origin").
			Values(key, string(value), 1, origin).
			Suffix("ON CONFLICT (key) DO NOTHING RETURNING version").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
	} else {
		query, args, err = squirrel.
			Update(storageTable).
			Set("value", string(value)).
			Set("version", squirrel.Expr("version + 1")).
			Set("origin", origin).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"key": key, "version": expected}).
			Suffix("RETURNING version").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
	}
	if err != nil {
		return 0, err
	}

	version, err := r.writeAndNotify(ctx, key, origin, query, args)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrStaleVersion
	}
	return version, err
}

func (r *storageRepository) Delete(ctx context.Context, key string, origin string) error {
	query, args, err := squirrel.
		Delete(storageTable).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao remover chave %s: %w", key, err)
		}
		return r.notify(ctx, tx, domain.StorageChange{Key: key, Origin: origin})
	})
}

// writeAndNotify executa a gravação e publica a mudança na mesma transação,
// de modo que a notificação só é entregue após o commit.
func (r *storageRepository) writeAndNotify(ctx context.Context, key, origin, query string, args []any) (int64, error) {
	var version int64

	err := r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&version); err != nil {
			return err
		}
		return r.notify(ctx, tx, domain.StorageChange{Key: key, Version: version, Origin: origin})
	})
	if err != nil {
		return 0, err
	}

	return version, nil
}

func (r *storageRepository) notify(ctx context.Context, q postgres.Queryer, change domain.StorageChange) error {
	if r.channel == "" {
		return nil
	}

	payload, err := jsoniter.MarshalToString(change)
	if err != nil {
		return err
	}

	if _, err := q.ExecContext(ctx, "SELECT pg_notify($1, $2)", r.channel, payload); err != nil {
		return fmt.Errorf("erro ao notificar canal %s: %w", r.channel, err)
	}
	return nil
}
