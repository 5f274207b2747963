package domain

import (
	"fmt"
	"time"
)

type DraftKind string

const (
	DraftKindTransaction DraftKind = "transaction"
	DraftKindContact     DraftKind = "contact"
)

type DraftState string

const (
	DraftStateReceived    DraftState = "received"
	DraftStateParsed      DraftState = "parsed_as_draft"
	DraftStateConfirmed   DraftState = "user_confirmed"
	DraftStateAppended    DraftState = "appended"
	DraftStateText        DraftState = "displayed_as_text"
	DraftStateQuarantined DraftState = "quarantined"
	DraftStateDiscarded   DraftState = "discarded"
)

var draftTransitions = map[DraftState][]DraftState{
	DraftStateReceived:  {DraftStateParsed, DraftStateText, DraftStateQuarantined},
	DraftStateParsed:    {DraftStateConfirmed, DraftStateDiscarded},
	DraftStateConfirmed: {DraftStateAppended},
}

// Draft é uma entidade proposta pela IA aguardando confirmação.
type Draft struct {
	ID          string       `json:"id"`
	Kind        DraftKind    `json:"kind"`
	State       DraftState   `json:"state"`
	Transaction *Transaction `json:"transaction,omitempty"`
	Contact     *Contact     `json:"contact,omitempty"`
	Raw         string       `json:"raw,omitempty"`
	Reason      string       `json:"reason,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// Transition move o rascunho para o próximo estado, recusando saltos inválidos.
func (d *Draft) Transition(to DraftState) error {
	for _, allowed := range draftTransitions[d.State] {
		if allowed == to {
			d.State = to
			return nil
		}
	}
	return fmt.Errorf("transição inválida de %s para %s", d.State, to)
}

// Terminal indica estados sem transições de saída.
func (d *Draft) Terminal() bool {
	return len(draftTransitions[d.State]) == 0
}

// Document é o conteúdo binário enviado para análise.
type Document struct {
	Data     []byte
	MimeType string
}
