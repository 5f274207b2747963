package messaging

import (
	"context"
	"strings"
	"time"

	"github.com/maestria/maestria-api/internal/domain"
	"github.com/maestria/maestria-api/internal/usecases/collecting"
	"github.com/maestria/maestria-api/internal/workspace"
	"github.com/maestria/maestria-api/pkg/apiErrors"
)

// Service é o chat interno da equipe. Mensagens nunca são removidas da coleção.
type Service struct {
	messages *collecting.Service[domain.CorporateMessage]
	now      func() time.Time
}

func NewService(state workspace.State) *Service {
	return &Service{
		messages: collecting.NewService(state, "corporateMessages", collecting.Messages),
		now:      time.Now,
	}
}

// Send registra a mensagem em nome de senderID.
func (s *Service) Send(ctx context.Context, senderID string, msg domain.CorporateMessage) (domain.CorporateMessage, error) {
	msg.ID = ""
	msg.SenderID = senderID
	msg.Timestamp = s.now().UTC()
	msg.IsEdited = false
	msg.IsDeleted = false
	return s.messages.Create(ctx, msg)
}

// Edit troca o texto. Apenas o autor pode editar e mensagens apagadas não voltam.
func (s *Service) Edit(ctx context.Context, id, editorID, text string) (domain.CorporateMessage, error) {
	return s.messages.Modify(ctx, id, func(m domain.CorporateMessage) (domain.CorporateMessage, error) {
		if m.SenderID != editorID {
			return m, workspace.NewEntityError(workspace.ErrInvalidOperation, apiErrors.ErrInsufficientPrivilege, id, "apenas o autor pode editar")
		}
		if m.IsDeleted {
			return m, workspace.NewEntityError(workspace.ErrInvalidOperation, apiErrors.ErrInvalidOperation, id, "mensagem apagada")
		}
		m.Text = strings.TrimSpace(text)
		m.IsEdited = true
		return m, nil
	})
}

// Delete marca a mensagem como apagada e limpa seu conteúdo.
func (s *Service) Delete(ctx context.Context, id, requesterID string, requesterRole domain.MemberRole) (domain.CorporateMessage, error) {
	current, err := s.messages.Get(id)
	if err != nil {
		return current, err
	}
	if current.IsDeleted {
		return current, nil
	}

	return s.messages.Modify(ctx, id, func(m domain.CorporateMessage) (domain.CorporateMessage, error) {
		if m.SenderID != requesterID && requesterRole != domain.RoleAdmin {
			return m, workspace.NewEntityError(workspace.ErrInvalidOperation, apiErrors.ErrInsufficientPrivilege, id, "apenas o autor ou um administrador pode apagar")
		}
		m.IsDeleted = true
		m.Text = ""
		m.Audio = nil
		m.File = nil
		m.SharedItem = nil
		return m, nil
	})
}

// Conversation lista as mensagens entre memberID e peerID, ou do canal geral quando peerID é "all".
func (s *Service) Conversation(memberID, peerID string) []domain.CorporateMessage {
	return s.messages.List(func(m domain.CorporateMessage) bool {
		return m.Between(memberID, peerID)
	})
}
