package scheduling

import (
	"context"
	"testing"

	"github.com/maestria/maestria-api/infrastructure/repository"
	"github.com/maestria/maestria-api/internal/domain"
	"github.com/maestria/maestria-api/internal/usecases/persisting"
	"github.com/maestria/maestria-api/internal/workspace"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*Service, *workspace.Workspace) {
	t.Helper()
	ws := workspace.New(persisting.NewStore(repository.NewMemoryStorage(), "inst-a", "maestria_data"))
	ws.Init(context.Background())
	return NewService(ws), ws
}

func item(due string, amount string, recurrence domain.Recurrence, autoPay bool) domain.ScheduledItem {
	return domain.ScheduledItem{
		DueDate:     due,
		Description: "Aluguel",
		Amount:      decimal.RequireFromString(amount),
		Type:        domain.TransactionTypeExpense,
		Recurrence:  recurrence,
		AutoPay:     autoPay,
		Status:      domain.ScheduleStatusPending,
	}
}

func TestService_ConfirmPayment(t *testing.T) {
	ctx := context.Background()
	svc, ws := newService(t)

	created, err := svc.Create(ctx, item("2024-04-10", "2500.00", domain.RecurrenceNone, false))
	require.NoError(t, err)

	payment, err := svc.ConfirmPayment(ctx, created.ID, "2024-04-09")
	require.NoError(t, err)
	assert.Nil(t, payment.Next)

	snapshot, _ := ws.Snapshot()
	stored, found := snapshot.Schedule.Find(created.ID)
	require.True(t, found)
	assert.Equal(t, domain.ScheduleStatusPaid, stored.Status)

	txs := snapshot.Transactions.All()
	require.Len(t, txs, 1)
	assert.True(t, txs[0].Amount.Equal(created.Amount))
	assert.Equal(t, created.Type, txs[0].Type)
	assert.Equal(t, "2024-04-09", txs[0].Date)
	assert.Equal(t, domain.TransactionStatusPaid, txs[0].Status)
	assert.Equal(t, payment.Transaction.ID, txs[0].ID)

	_, err = svc.ConfirmPayment(ctx, created.ID, "2024-04-09")
	assert.ErrorIs(t, err, workspace.ErrInvalidOperation)

	snapshot, _ = ws.Snapshot()
	assert.Equal(t, 1, snapshot.Transactions.Len())
}

func TestService_ConfirmPaymentUnknownID(t *testing.T) {
	svc, ws := newService(t)

	_, err := svc.ConfirmPayment(context.Background(), "nao-existe", "2024-04-09")

	assert.ErrorIs(t, err, workspace.ErrNotFound)
	assert.Equal(t, int64(0), ws.Version())
}

func TestService_ConfirmPaymentRecurring(t *testing.T) {
	ctx := context.Background()
	svc, ws := newService(t)

	created, err := svc.Create(ctx, item("2024-01-31", "99.90", domain.RecurrenceMonthly, false))
	require.NoError(t, err)

	payment, err := svc.ConfirmPayment(ctx, created.ID, "2024-01-31")
	require.NoError(t, err)
	require.NotNil(t, payment.Next)
	assert.Equal(t, "2024-03-02", payment.Next.DueDate)
	assert.Equal(t, domain.ScheduleStatusPending, payment.Next.Status)
	assert.NotEqual(t, created.ID, payment.Next.ID)

	snapshot, _ := ws.Snapshot()
	assert.Equal(t, 2, snapshot.Schedule.Len())
	assert.Equal(t, 1, snapshot.Transactions.Len())
}

func TestService_ProcessDueItems(t *testing.T) {
	ctx := context.Background()
	svc, ws := newService(t)

	late, err := svc.Create(ctx, item("2024-05-01", "100", domain.RecurrenceNone, false))
	require.NoError(t, err)
	auto, err := svc.Create(ctx, item("2024-05-10", "300", domain.RecurrenceNone, true))
	require.NoError(t, err)
	future, err := svc.Create(ctx, item("2024-06-01", "50", domain.RecurrenceNone, true))
	require.NoError(t, err)

	require.NoError(t, ws.Mutate(ctx, func(s *domain.Snapshot) error {
		s.Transactions.Add(domain.Transaction{
			ID: "t-pend", Date: "2024-05-02", Description: "Boleto", Category: "Fornecedores",
			Amount: decimal.NewFromInt(10), Type: domain.TransactionTypeExpense,
			Status: domain.TransactionStatusPending, Source: domain.TransactionSourceManual,
		})
		return nil
	}))

	result, err := svc.ProcessDueItems(ctx, "2024-05-10")
	require.NoError(t, err)
	assert.Equal(t, DueItemsResult{OverdueItems: 1, AutoPaid: 1, OverdueTransactions: 1}, result)

	snapshot, _ := ws.Snapshot()
	got, _ := snapshot.Schedule.Find(late.ID)
	assert.Equal(t, domain.ScheduleStatusOverdue, got.Status)
	got, _ = snapshot.Schedule.Find(auto.ID)
	assert.Equal(t, domain.ScheduleStatusPaid, got.Status)
	got, _ = snapshot.Schedule.Find(future.ID)
	assert.Equal(t, domain.ScheduleStatusPending, got.Status)
	assert.Equal(t, 2, snapshot.Transactions.Len())

	version := ws.Version()
	result, err = svc.ProcessDueItems(ctx, "2024-05-10")
	require.NoError(t, err)
	assert.Equal(t, DueItemsResult{}, result)
	assert.Equal(t, version, ws.Version())

	// Um agendamento vencido ainda pode ser pago manualmente.
	_, err = svc.ConfirmPayment(ctx, late.ID, "2024-05-11")
	assert.NoError(t, err)
}
