package collecting

import (
	"context"
	"errors"

	"github.com/maestria/maestria-api/internal/domain"
	"github.com/maestria/maestria-api/internal/workspace"
	"github.com/maestria/maestria-api/pkg/apiErrors"
	"github.com/maestria/maestria-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Accessor seleciona uma coleção dentro do snapshot.
type Accessor[T domain.Entity] func(*domain.Snapshot) *domain.Collection[T]

func Transactions(s *domain.Snapshot) *domain.Collection[domain.Transaction] { return &s.Transactions }
func Contacts(s *domain.Snapshot) *domain.Collection[domain.Contact]         { return &s.Contacts }
func Schedule(s *domain.Snapshot) *domain.Collection[domain.ScheduledItem]   { return &s.Schedule }
func Team(s *domain.Snapshot) *domain.Collection[domain.TeamMember]          { return &s.Team }
func Messages(s *domain.Snapshot) *domain.Collection[domain.CorporateMessage] {
	return &s.CorporateMessages
}

// Service expõe as operações comuns de uma coleção sobre o espaço de trabalho.
type Service[T domain.Record[T]] struct {
	state  workspace.State
	access Accessor[T]
	name   string
}

func NewService[T domain.Record[T]](state workspace.State, name string, access Accessor[T]) *Service[T] {
	return &Service[T]{
		state:  state,
		access: access,
		name:   name,
	}
}

// List retorna os itens que satisfazem pred, na ordem de inserção. pred nil retorna todos.
func (s *Service[T]) List(pred func(T) bool) []T {
	var out []T
	s.state.View(func(snapshot *domain.Snapshot) {
		if pred == nil {
			out = s.access(snapshot).All()
			return
		}
		out = s.access(snapshot).Filter(pred)
	})
	return out
}

func (s *Service[T]) Get(id string) (T, error) {
	var (
		item  T
		found bool
	)
	s.state.View(func(snapshot *domain.Snapshot) {
		item, found = s.access(snapshot).Find(id)
	})
	if !found {
		return item, workspace.NewEntityError(workspace.ErrNotFound, apiErrors.ErrEntityNotFound, id, s.name)
	}
	return item, nil
}

// Create valida e acrescenta o item ao final da coleção, gerando o ID quando ausente.
func (s *Service[T]) Create(ctx context.Context, item T) (T, error) {
	item, err := s.prepare(item)
	if err != nil {
		return item, err
	}

	err = s.state.Mutate(ctx, func(snapshot *domain.Snapshot) error {
		collection := s.access(snapshot)
		if _, exists := collection.Find(item.GetID()); exists {
			return s.duplicate(item.GetID())
		}
		collection.Add(item)
		return nil
	})
	if err != nil {
		return item, err
	}

	logrus.WithField("ws_id", item.GetID()).Debugf("%s: registro criado", s.name)
	return item, nil
}

// Update substitui o item com o mesmo ID. ID inexistente não altera nada e retorna ErrNotFound.
func (s *Service[T]) Update(ctx context.Context, item T) (T, error) {
	if err := item.Validate(); err != nil {
		return item, invalidEntity(item.GetID(), err)
	}

	err := s.state.Mutate(ctx, func(snapshot *domain.Snapshot) error {
		if !s.access(snapshot).Update(item) {
			return workspace.NewEntityError(workspace.ErrNotFound, apiErrors.ErrEntityNotFound, item.GetID(), s.name)
		}
		return nil
	})
	return item, err
}

// Modify aplica fn ao item armazenado e grava o resultado validado.
func (s *Service[T]) Modify(ctx context.Context, id string, fn func(T) (T, error)) (T, error) {
	var updated T

	err := s.state.Mutate(ctx, func(snapshot *domain.Snapshot) error {
		collection := s.access(snapshot)
		current, found := collection.Find(id)
		if !found {
			return workspace.NewEntityError(workspace.ErrNotFound, apiErrors.ErrEntityNotFound, id, s.name)
		}

		next, err := fn(current)
		if err != nil {
			return err
		}
		next = next.WithID(id)
		if err := next.Validate(); err != nil {
			return invalidEntity(id, err)
		}

		collection.Update(next)
		updated = next
		return nil
	})
	return updated, err
}

func (s *Service[T]) Remove(ctx context.Context, id string) error {
	return s.state.Mutate(ctx, func(snapshot *domain.Snapshot) error {
		if !s.access(snapshot).Remove(id) {
			return workspace.NewEntityError(workspace.ErrNotFound, apiErrors.ErrEntityNotFound, id, s.name)
		}
		return nil
	})
}

// ImportMany valida todos os itens e os insere no início da coleção. Um item inválido rejeita o lote.
func (s *Service[T]) ImportMany(ctx context.Context, items []T) ([]T, error) {
	prepared := make([]T, 0, len(items))
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		item, err := s.prepare(item)
		if err != nil {
			return nil, err
		}
		if seen[item.GetID()] {
			return nil, s.duplicate(item.GetID())
		}
		seen[item.GetID()] = true
		prepared = append(prepared, item)
	}

	err := s.state.Mutate(ctx, func(snapshot *domain.Snapshot) error {
		collection := s.access(snapshot)
		for _, item := range prepared {
			if _, exists := collection.Find(item.GetID()); exists {
				return s.duplicate(item.GetID())
			}
		}
		collection.ImportMany(prepared)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logrus.Infof("%s: %d registros importados", s.name, len(prepared))
	return prepared, nil
}

func (s *Service[T]) prepare(item T) (T, error) {
	if item.GetID() == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return item, workspace.NewError(err, apiErrors.ErrInternalServer, "erro ao gerar ID")
		}
		item = item.WithID(id)
	}

	if err := item.Validate(); err != nil {
		return item, invalidEntity(item.GetID(), err)
	}
	return item, nil
}

func (s *Service[T]) duplicate(id string) error {
	return workspace.NewEntityError(workspace.ErrDuplicateID, apiErrors.ErrDuplicateEntity, id, s.name)
}

func invalidEntity(id string, err error) error {
	var validation *domain.ValidationError
	if errors.As(err, &validation) {
		return workspace.NewEntityError(err, apiErrors.ErrInvalidEntity, id, validation.Error())
	}
	return workspace.NewEntityError(err, apiErrors.ErrInvalidEntity, id, err.Error())
}
