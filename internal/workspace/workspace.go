package workspace

import (
	"context"
	"errors"
	"sync"

	"github.com/maestria/maestria-api/internal/domain"
	"github.com/maestria/maestria-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// Tentativas de Mutate antes de devolver ErrConflict ao chamador.
const maxMutateAttempts = 3

// SnapshotStore é o armazenamento versionado do conjunto de coleções.
type SnapshotStore interface {
	LoadSnapshot(ctx context.Context) (*domain.Snapshot, int64)
	SaveSnapshot(ctx context.Context, snapshot *domain.Snapshot, expected int64) (int64, error)
}

// State é a visão do espaço de trabalho usada pelos casos de uso.
type State interface {
	View(fn func(*domain.Snapshot))
	Mutate(ctx context.Context, fn func(*domain.Snapshot) error) error
}

// Workspace mantém em memória o conjunto de coleções e a versão lida do armazenamento.
// Toda alteração regrava o conjunto completo.
type Workspace struct {
	mu       sync.RWMutex
	store    SnapshotStore
	snapshot *domain.Snapshot
	version  int64
	ready    bool
}

func New(store SnapshotStore) *Workspace {
	return &Workspace{
		store:    store,
		snapshot: domain.NewSnapshot(),
	}
}

// Init carrega o estado inicial. Falhas de leitura resultam em coleções vazias.
func (w *Workspace) Init(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.snapshot, w.version = w.store.LoadSnapshot(ctx)
	w.ready = true

	logrus.WithFields(logrus.Fields{
		"version":      w.version,
		"transactions": w.snapshot.Transactions.Len(),
		"contacts":     w.snapshot.Contacts.Len(),
		"schedule":     w.snapshot.Schedule.Len(),
		"team":         w.snapshot.Team.Len(),
		"messages":     w.snapshot.CorporateMessages.Len(),
	}).Info("Espaço de trabalho carregado")
}

// Teardown descarta o estado em memória. Mutações posteriores retornam ErrNotReady.
func (w *Workspace) Teardown() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.snapshot = domain.NewSnapshot()
	w.version = 0
	w.ready = false
}

// View executa fn sob leitura. fn não deve guardar referências ao snapshot.
func (w *Workspace) View(fn func(*domain.Snapshot)) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	fn(w.snapshot)
}

// Snapshot retorna uma cópia do estado atual e sua versão.
func (w *Workspace) Snapshot() (*domain.Snapshot, int64) {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.snapshot.Clone(), w.version
}

func (w *Workspace) Version() int64 {
	w.mu.RLock()
	defer w.mu.RUnlock()

	return w.version
}

// Mutate aplica fn sobre uma cópia do estado e grava o resultado condicionado à versão lida.
// Se fn falhar nada é gravado; ErrNoChange encerra sem gravar e sem erro. Se outra instância gravou antes, o estado é recarregado e fn
// reaplicada sobre ele, até maxMutateAttempts vezes.
func (w *Workspace) Mutate(ctx context.Context, fn func(*domain.Snapshot) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.ready {
		return NewError(ErrNotReady, apiErrors.ErrCommunication, "")
	}

	for attempt := 1; attempt <= maxMutateAttempts; attempt++ {
		draft := w.snapshot.Clone()
		if err := fn(draft); err != nil {
			if errors.Is(err, ErrNoChange) {
				return nil
			}
			return err
		}

		version, err := w.store.SaveSnapshot(ctx, draft, w.version)
		if err == nil {
			w.snapshot = draft
			w.version = version
			return nil
		}

		if !errors.Is(err, domain.ErrStaleVersion) {
			logrus.WithError(err).Error("Erro ao gravar o espaço de trabalho")
			return NewError(ErrPersist, apiErrors.ErrDatabaseOperation, err.Error())
		}

		logrus.WithField("version", w.version).Warnf("Versão desatualizada na tentativa %d, recarregando", attempt)
		w.snapshot, w.version = w.store.LoadSnapshot(ctx)
	}

	return NewError(ErrConflict, apiErrors.ErrStaleWorkspace, "tente novamente")
}

// Reload substitui o estado em memória pelo armazenado, sem mesclar.
func (w *Workspace) Reload(ctx context.Context) int64 {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.snapshot, w.version = w.store.LoadSnapshot(ctx)
	return w.version
}

// ReloadIfNewer recarrega apenas quando version é mais recente que a versão em memória.
func (w *Workspace) ReloadIfNewer(ctx context.Context, version int64) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	if version <= w.version {
		return false
	}

	w.snapshot, w.version = w.store.LoadSnapshot(ctx)
	return true
}
