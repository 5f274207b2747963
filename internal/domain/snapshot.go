package domain

import (
	"errors"
	"time"
)

// ErrStaleVersion indica que outra instância gravou a chave depois da leitura do chamador.
var ErrStaleVersion = errors.New("versão desatualizada")

// Snapshot é o conjunto completo de coleções gravado a cada alteração.
type Snapshot struct {
	Transactions      Collection[Transaction]      `json:"transactions"`
	Contacts          Collection[Contact]          `json:"contacts"`
	Schedule          Collection[ScheduledItem]    `json:"schedule"`
	Team              Collection[TeamMember]       `json:"team"`
	CorporateMessages Collection[CorporateMessage] `json:"corporateMessages"`
}

func NewSnapshot() *Snapshot {
	return &Snapshot{
		Transactions:      NewCollection[Transaction](),
		Contacts:          NewCollection[Contact](),
		Schedule:          NewCollection[ScheduledItem](),
		Team:              NewCollection[TeamMember](),
		CorporateMessages: NewCollection[CorporateMessage](),
	}
}

func (s *Snapshot) Clone() *Snapshot {
	return &Snapshot{
		Transactions:      s.Transactions.Clone(),
		Contacts:          s.Contacts.Clone(),
		Schedule:          s.Schedule.Clone(),
		Team:              s.Team.Clone(),
		CorporateMessages: s.CorporateMessages.Clone(),
	}
}

// VersionedSnapshot acompanha a versão lida do armazenamento.
type VersionedSnapshot struct {
	Version  int64     `json:"version"`
	Snapshot *Snapshot `json:"snapshot"`
}

// StorageEntry é uma linha do armazenamento chave-valor.
type StorageEntry struct {
	Key       string
	Value     []byte
	Version   int64
	Origin    string
	UpdatedAt time.Time
}

// StorageChange é o payload publicado a cada gravação.
type StorageChange struct {
	Key     string `json:"key"`
	Version int64  `json:"version"`
	Origin  string `json:"origin"`
}

// ChangeSignal é entregue pelo assinante de notificações. Reconnected sinaliza que
// mudanças podem ter sido perdidas durante a queda da conexão.
type ChangeSignal struct {
	Change      *StorageChange
	Reconnected bool
}
