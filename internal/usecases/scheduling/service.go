package scheduling

import (
	"context"
	"time"

	"github.com/maestria/maestria-api/internal/domain"
	"github.com/maestria/maestria-api/internal/usecases/collecting"
	"github.com/maestria/maestria-api/internal/workspace"
	"github.com/maestria/maestria-api/pkg/apiErrors"
	"github.com/maestria/maestria-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Payment é o resultado da quitação de um agendamento.
type Payment struct {
	Item        domain.ScheduledItem  `json:"item"`
	Transaction domain.Transaction    `json:"transaction"`
	Next        *domain.ScheduledItem `json:"next,omitempty"`
}

// DueItemsResult resume uma execução da rotina de vencimentos.
type DueItemsResult struct {
	OverdueItems        int `json:"overdueItems"`
	AutoPaid            int `json:"autoPaid"`
	OverdueTransactions int `json:"overdueTransactions"`
}

type Service struct {
	*collecting.Service[domain.ScheduledItem]
	state workspace.State
}

func NewService(state workspace.State) *Service {
	return &Service{
		Service: collecting.NewService(state, "schedule", collecting.Schedule),
		state:   state,
	}
}

// ConfirmPayment marca o agendamento como pago e acrescenta exatamente um lançamento
// com o mesmo valor e tipo, datado de paidOn. Agendamentos recorrentes geram a próxima ocorrência.
func (s *Service) ConfirmPayment(ctx context.Context, id string, paidOn string) (*Payment, error) {
	var payment *Payment

	err := s.state.Mutate(ctx, func(snapshot *domain.Snapshot) error {
		item, found := snapshot.Schedule.Find(id)
		if !found {
			return workspace.NewEntityError(workspace.ErrNotFound, apiErrors.ErrEntityNotFound, id, "schedule")
		}
		if !item.Payable() {
			return workspace.NewEntityError(workspace.ErrInvalidOperation, apiErrors.ErrInvalidOperation, id, "agendamento já foi pago")
		}

		var err error
		payment, err = pay(snapshot, item, paidOn)
		return err
	})
	if err != nil {
		return nil, err
	}

	logrus.WithField("ws_id", id).Infof("schedule: agendamento pago em %s", paidOn)
	return payment, nil
}

// ProcessDueItems marca como vencidos os agendamentos e lançamentos pendentes anteriores a today
// e quita os agendamentos com pagamento automático que vencem até today.
func (s *Service) ProcessDueItems(ctx context.Context, today string) (DueItemsResult, error) {
	var result DueItemsResult

	err := s.state.Mutate(ctx, func(snapshot *domain.Snapshot) error {
		result = DueItemsResult{}

		for _, item := range snapshot.Schedule.All() {
			if !item.Payable() || item.DueDate > today {
				continue
			}

			if item.AutoPay {
				if _, err := pay(snapshot, item, today); err != nil {
					return err
				}
				result.AutoPaid++
				continue
			}

			if item.Status == domain.ScheduleStatusPending && item.DueDate < today {
				item.Status = domain.ScheduleStatusOverdue
				snapshot.Schedule.Update(item)
				result.OverdueItems++
			}
		}

		for _, tx := range snapshot.Transactions.All() {
			if tx.Status == domain.TransactionStatusPending && tx.Date < today {
				tx.Status = domain.TransactionStatusOverdue
				snapshot.Transactions.Update(tx)
				result.OverdueTransactions++
			}
		}

		if result == (DueItemsResult{}) {
			return workspace.ErrNoChange
		}
		return nil
	})
	if err != nil {
		return DueItemsResult{}, err
	}

	return result, nil
}

func pay(snapshot *domain.Snapshot, item domain.ScheduledItem, paidOn string) (*Payment, error) {
	txID, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	tx := item.PaymentTransaction(txID, paidOn)
	item.Status = domain.ScheduleStatusPaid
	snapshot.Schedule.Update(item)
	snapshot.Transactions.Add(tx)

	payment := &Payment{Item: item, Transaction: tx}

	if next, ok := nextOccurrence(item); ok {
		nextID, err := utils.GenerateID()
		if err != nil {
			return nil, err
		}
		next = next.WithID(nextID)
		snapshot.Schedule.Add(next)
		payment.Next = &next
	}

	return payment, nil
}

func nextOccurrence(item domain.ScheduledItem) (domain.ScheduledItem, bool) {
	due, err := time.Parse(time.DateOnly, item.DueDate)
	if err != nil {
		return item, false
	}

	switch item.Recurrence {
	case domain.RecurrenceWeekly:
		due = due.AddDate(0, 0, 7)
	case domain.RecurrenceMonthly:
		due = due.AddDate(0, 1, 0)
	case domain.RecurrenceYearly:
		due = due.AddDate(1, 0, 0)
	default:
		return item, false
	}

	item.DueDate = due.Format(time.DateOnly)
	item.Status = domain.ScheduleStatusPending
	return item, true
}
