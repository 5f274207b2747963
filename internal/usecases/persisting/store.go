package persisting

import (
	"context"

	jsoniter "github.com/json-iterator/go"
	"github.com/maestria/maestria-api/infrastructure/repository"
	"github.com/maestria/maestria-api/internal/domain"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store traduz o armazenamento chave-valor em leituras tolerantes a falha.
// Leituras nunca retornam erro: ausência ou conteúdo corrompido resultam no valor padrão.
type Store struct {
	repo        repository.StorageRepository
	origin      string
	snapshotKey string
}

func NewStore(repo repository.StorageRepository, origin, snapshotKey string) *Store {
	return &Store{
		repo:        repo,
		origin:      origin,
		snapshotKey: snapshotKey,
	}
}

func (s *Store) Origin() string {
	return s.origin
}

func (s *Store) SnapshotKey() string {
	return s.snapshotKey
}

// Load retorna o valor bruto e a versão. ok é falso quando a chave não existe ou a leitura falhou.
func (s *Store) Load(ctx context.Context, key string) (value []byte, version int64, ok bool) {
	entry, err := s.repo.Get(ctx, key)
	if err != nil {
		logrus.WithError(err).Warnf("Falha ao ler a chave %s, usando valor padrão", key)
		return nil, 0, false
	}
	if entry == nil {
		return nil, 0, false
	}
	return entry.Value, entry.Version, true
}

// LoadInto decodifica a chave em target. Retorna falso quando a chave não existe ou o
// conteúdo não é um JSON válido para o tipo; nesse caso o chamador mantém seu padrão.
func (s *Store) LoadInto(ctx context.Context, key string, target any) bool {
	value, _, ok := s.Load(ctx, key)
	if !ok {
		return false
	}

	if err := json.Unmarshal(value, target); err != nil {
		logrus.WithError(err).Warnf("Conteúdo inválido na chave %s, usando valor padrão", key)
		return false
	}
	return true
}

// Save grava sem checagem de versão. Falhas são registradas e não propagadas.
func (s *Store) Save(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		logrus.WithError(err).Errorf("Erro ao serializar a chave %s", key)
		return
	}

	if _, err := s.repo.Put(ctx, key, data, s.origin); err != nil {
		logrus.WithError(err).Errorf("Erro ao gravar a chave %s", key)
	}
}

// Remove apaga a chave. Falhas são registradas e não propagadas.
func (s *Store) Remove(ctx context.Context, key string) {
	if err := s.repo.Delete(ctx, key, s.origin); err != nil {
		logrus.WithError(err).Errorf("Erro ao remover a chave %s", key)
	}
}

// LoadSnapshot lê o conjunto de coleções. Coleções ausentes ficam vazias e um
// conteúdo corrompido resulta em coleções vazias na versão atual, para que a
// próxima gravação o substitua.
func (s *Store) LoadSnapshot(ctx context.Context) (*domain.Snapshot, int64) {
	value, version, ok := s.Load(ctx, s.snapshotKey)
	if !ok {
		return domain.NewSnapshot(), version
	}

	snapshot := domain.NewSnapshot()
	if err := json.Unmarshal(value, snapshot); err != nil {
		logrus.WithError(err).Warnf("Snapshot corrompido na versão %d, iniciando com coleções vazias", version)
		return domain.NewSnapshot(), version
	}

	return snapshot, version
}

// SaveSnapshot grava o conjunto de coleções se a versão atual for expected.
// Retorna domain.ErrStaleVersion quando outra instância gravou antes.
func (s *Store) SaveSnapshot(ctx context.Context, snapshot *domain.Snapshot, expected int64) (int64, error) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return 0, err
	}

	return s.repo.CompareAndSwap(ctx, s.snapshotKey, data, expected, s.origin)
}
