package workspace

import (
	"context"
	"errors"
	"testing"

	"github.com/maestria/maestria-api/infrastructure/repository"
	"github.com/maestria/maestria-api/internal/domain"
	"github.com/maestria/maestria-api/internal/usecases/persisting"
	"github.com/maestria/maestria-api/pkg/apiErrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWorkspace(t *testing.T, storage *repository.MemoryStorage, origin string) *Workspace {
	t.Helper()
	ws := New(persisting.NewStore(storage, origin, "maestria_data"))
	ws.Init(context.Background())
	return ws
}

func member(id string) domain.TeamMember {
	return domain.TeamMember{ID: id, Name: id, Role: domain.RoleMember, Status: domain.MemberStatusOffline}
}

func TestWorkspace_Mutate(t *testing.T) {
	ctx := context.Background()
	storage := repository.NewMemoryStorage()
	ws := newWorkspace(t, storage, "inst-a")

	err := ws.Mutate(ctx, func(s *domain.Snapshot) error {
		s.Team.Add(member("m1"))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), ws.Version())

	snapshot, _ := ws.Snapshot()
	assert.Equal(t, 1, snapshot.Team.Len())
}

func TestWorkspace_MutateFailureLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	ws := newWorkspace(t, repository.NewMemoryStorage(), "inst-a")

	boom := errors.New("regra violada")
	err := ws.Mutate(ctx, func(s *domain.Snapshot) error {
		s.Team.Add(member("m1"))
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, int64(0), ws.Version())
	snapshot, _ := ws.Snapshot()
	assert.Equal(t, 0, snapshot.Team.Len())
}

func TestWorkspace_StaleWriteIsReappliedOnFreshState(t *testing.T) {
	ctx := context.Background()
	storage := repository.NewMemoryStorage()
	a := newWorkspace(t, storage, "inst-a")
	b := newWorkspace(t, storage, "inst-b")

	require.NoError(t, a.Mutate(ctx, func(s *domain.Snapshot) error {
		s.Team.Add(member("m1"))
		return nil
	}))

	// b ainda está na versão 0 e não pode sobrescrever a gravação de a.
	require.NoError(t, b.Mutate(ctx, func(s *domain.Snapshot) error {
		s.Team.Add(member("m2"))
		return nil
	}))

	snapshot, version := b.Snapshot()
	assert.Equal(t, int64(2), version)
	assert.Equal(t, 2, snapshot.Team.Len())
}

type staleStore struct {
	loads int
}

func (s *staleStore) LoadSnapshot(context.Context) (*domain.Snapshot, int64) {
	s.loads++
	return domain.NewSnapshot(), int64(s.loads)
}

func (s *staleStore) SaveSnapshot(context.Context, *domain.Snapshot, int64) (int64, error) {
	return 0, domain.ErrStaleVersion
}

func TestWorkspace_PersistentConflict(t *testing.T) {
	ws := New(&staleStore{})
	ws.Init(context.Background())

	err := ws.Mutate(context.Background(), func(s *domain.Snapshot) error { return nil })

	var wsErr *Error
	require.ErrorAs(t, err, &wsErr)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, apiErrors.ErrStaleWorkspace, wsErr.Code)
}

func TestWorkspace_NotReady(t *testing.T) {
	ws := New(&staleStore{})

	err := ws.Mutate(context.Background(), func(s *domain.Snapshot) error { return nil })
	assert.ErrorIs(t, err, ErrNotReady)

	ws.Init(context.Background())
	ws.Teardown()
	err = ws.Mutate(context.Background(), func(s *domain.Snapshot) error { return nil })
	assert.ErrorIs(t, err, ErrNotReady)
}

func TestWorkspace_ReloadIfNewer(t *testing.T) {
	ctx := context.Background()
	storage := repository.NewMemoryStorage()
	a := newWorkspace(t, storage, "inst-a")
	b := newWorkspace(t, storage, "inst-b")

	require.NoError(t, a.Mutate(ctx, func(s *domain.Snapshot) error {
		s.Team.Add(member("m1"))
		return nil
	}))

	assert.False(t, a.ReloadIfNewer(ctx, 1))
	assert.True(t, b.ReloadIfNewer(ctx, 1))

	snapshot, version := b.Snapshot()
	assert.Equal(t, int64(1), version)
	assert.Equal(t, 1, snapshot.Team.Len())
}

func TestWorkspace_NoChangeSkipsWrite(t *testing.T) {
	ws := New(&staleStore{})
	ws.Init(context.Background())

	err := ws.Mutate(context.Background(), func(s *domain.Snapshot) error { return ErrNoChange })
	assert.NoError(t, err)
}
