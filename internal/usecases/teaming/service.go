package teaming

import (
	"context"

	"github.com/maestria/maestria-api/internal/domain"
	"github.com/maestria/maestria-api/internal/usecases/collecting"
	"github.com/maestria/maestria-api/internal/workspace"
	"github.com/maestria/maestria-api/pkg/apiErrors"
	"github.com/maestria/maestria-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type Service struct {
	*collecting.Service[domain.TeamMember]
	state workspace.State
}

func NewService(state workspace.State) *Service {
	return &Service{
		Service: collecting.NewService(state, "team", collecting.Team),
		state:   state,
	}
}

func (s *Service) SetStatus(ctx context.Context, id string, status domain.MemberStatus) (domain.TeamMember, error) {
	return s.Modify(ctx, id, func(m domain.TeamMember) (domain.TeamMember, error) {
		m.Status = status
		return m, nil
	})
}

// EnsureAdmin cria um administrador apenas quando a equipe está vazia.
// Retorna false quando já havia membros.
func (s *Service) EnsureAdmin(ctx context.Context, name string) (domain.TeamMember, bool, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return domain.TeamMember{}, false, workspace.NewError(err, apiErrors.ErrInternalServer, "erro ao gerar ID")
	}

	admin := domain.TeamMember{
		ID:     id,
		Name:   name,
		Role:   domain.RoleAdmin,
		Status: domain.MemberStatusOffline,
	}
	if err := admin.Validate(); err != nil {
		return domain.TeamMember{}, false, workspace.NewEntityError(err, apiErrors.ErrInvalidEntity, id, err.Error())
	}

	created := false
	err = s.state.Mutate(ctx, func(snapshot *domain.Snapshot) error {
		created = false
		if snapshot.Team.Len() > 0 {
			return workspace.ErrNoChange
		}
		snapshot.Team.Add(admin)
		created = true
		return nil
	})
	if err != nil || !created {
		return domain.TeamMember{}, false, err
	}

	logrus.WithField("member_id", admin.ID).Infof("team: administrador inicial %s criado", admin.Name)
	return admin, true, nil
}
