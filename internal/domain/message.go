package domain

import (
	"strings"
	"time"
)

// BroadcastReceiver endereça a mensagem a toda a equipe.
const BroadcastReceiver = "all"

type Attachment struct {
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	Data     string `json:"data"` // base64 ou URL
}

type SharedItem struct {
	Kind  string `json:"kind"` // transaction, contact, schedule
	ID    string `json:"id"`
	Label string `json:"label,omitempty"`
}

// CorporateMessage nunca é apagada: exclusão marca IsDeleted.
type CorporateMessage struct {
	ID         string      `json:"id"`
	SenderID   string      `json:"senderId"`
	ReceiverID string      `json:"receiverId"`
	Text       string      `json:"text"`
	Timestamp  time.Time   `json:"timestamp"`
	IsEdited   bool        `json:"isEdited"`
	IsDeleted  bool        `json:"isDeleted"`
	Audio      *Attachment `json:"audio,omitempty"`
	File       *Attachment `json:"file,omitempty"`
	SharedItem *SharedItem `json:"sharedItem,omitempty"`
}

func (m CorporateMessage) GetID() string { return m.ID }

func (m CorporateMessage) WithID(id string) CorporateMessage {
	m.ID = id
	return m
}

func (m CorporateMessage) Validate() error {
	if strings.TrimSpace(m.SenderID) == "" {
		return invalid("senderId", "obrigatório")
	}
	if strings.TrimSpace(m.ReceiverID) == "" {
		return invalid("receiverId", "obrigatório")
	}
	if !m.IsDeleted && strings.TrimSpace(m.Text) == "" && m.Audio == nil && m.File == nil && m.SharedItem == nil {
		return invalid("text", "mensagem vazia")
	}
	return nil
}

// Between indica se a mensagem pertence à conversa entre a e b.
// Quando b é BroadcastReceiver, a conversa é o canal geral.
func (m CorporateMessage) Between(a, b string) bool {
	if b == BroadcastReceiver {
		return m.ReceiverID == BroadcastReceiver
	}
	return (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a)
}
