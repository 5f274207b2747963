package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTransaction() Transaction {
	return Transaction{
		ID:          "t1",
		Date:        "2024-02-10",
		Description: "Venda balcão",
		Category:    "Vendas",
		Amount:      decimal.NewFromInt(100),
		Type:        TransactionTypeIncome,
		Status:      TransactionStatusPaid,
		Source:      TransactionSourceManual,
	}
}

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Transaction)
		field  string
	}{
		{name: "válida", mutate: func(*Transaction) {}},
		{name: "data inválida", mutate: func(tx *Transaction) { tx.Date = "10/02/2024" }, field: "date"},
		{name: "descrição vazia", mutate: func(tx *Transaction) { tx.Description = "  " }, field: "description"},
		{name: "valor negativo", mutate: func(tx *Transaction) { tx.Amount = decimal.NewFromInt(-1) }, field: "amount"},
		{name: "tipo desconhecido", mutate: func(tx *Transaction) { tx.Type = "transfer" }, field: "type"},
		{name: "status desconhecido", mutate: func(tx *Transaction) { tx.Status = "" }, field: "status"},
		{name: "origem desconhecida", mutate: func(tx *Transaction) { tx.Source = "import" }, field: "source"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTransaction()
			tt.mutate(&tx)

			err := tx.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}

			var validation *ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tt.field, validation.Field)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestTransaction_Signed(t *testing.T) {
	tx := validTransaction()
	assert.True(t, tx.Signed().Equal(decimal.NewFromInt(100)))

	tx.Type = TransactionTypeExpense
	assert.True(t, tx.Signed().Equal(decimal.NewFromInt(-100)))
}

func TestTransactionFilter_Matches(t *testing.T) {
	tx := validTransaction()
	tx.Supplier = "Distribuidora Sul"

	assert.True(t, TransactionFilter{}.Matches(tx))
	assert.True(t, TransactionFilter{Search: "distribuidora"}.Matches(tx))
	assert.True(t, TransactionFilter{From: "2024-02-01", To: "2024-02-29"}.Matches(tx))
	assert.False(t, TransactionFilter{From: "2024-03-01"}.Matches(tx))
	assert.False(t, TransactionFilter{Type: TransactionTypeExpense}.Matches(tx))
	assert.False(t, TransactionFilter{Status: TransactionStatusPending}.Matches(tx))
	assert.False(t, TransactionFilter{Source: TransactionSourceAI}.Matches(tx))
}

func TestScheduledItem_PaymentTransaction(t *testing.T) {
	item := ScheduledItem{
		ID: "s1", DueDate: "2024-03-05", Description: "Internet", Amount: decimal.RequireFromString("129.90"),
		Type: TransactionTypeExpense, Recurrence: RecurrenceMonthly, Status: ScheduleStatusPending,
	}
	require.NoError(t, item.Validate())
	assert.True(t, item.Payable())

	tx := item.PaymentTransaction("t9", "2024-03-04")
	assert.Equal(t, "t9", tx.ID)
	assert.Equal(t, "2024-03-04", tx.Date)
	assert.Equal(t, DefaultScheduleCategory, tx.Category)
	assert.True(t, tx.Amount.Equal(item.Amount))
	assert.Equal(t, TransactionTypeExpense, tx.Type)
	assert.Equal(t, TransactionStatusPaid, tx.Status)
	assert.NoError(t, tx.Validate())

	item.Status = ScheduleStatusPaid
	assert.False(t, item.Payable())
}

func TestCorporateMessage_Between(t *testing.T) {
	direct := CorporateMessage{SenderID: "a", ReceiverID: "b", Text: "oi"}
	broadcast := CorporateMessage{SenderID: "a", ReceiverID: BroadcastReceiver, Text: "pessoal"}

	assert.True(t, direct.Between("a", "b"))
	assert.True(t, direct.Between("b", "a"))
	assert.False(t, direct.Between("a", "c"))
	assert.True(t, broadcast.Between("x", BroadcastReceiver))
	assert.False(t, direct.Between("a", BroadcastReceiver))

	assert.Error(t, CorporateMessage{SenderID: "a", ReceiverID: "b"}.Validate())
	assert.NoError(t, CorporateMessage{SenderID: "a", ReceiverID: "b", File: &Attachment{Name: "nota.pdf"}}.Validate())
}

func TestDraft_Transition(t *testing.T) {
	d := &Draft{State: DraftStateReceived}

	require.NoError(t, d.Transition(DraftStateParsed))
	assert.Error(t, d.Transition(DraftStateAppended))
	require.NoError(t, d.Transition(DraftStateConfirmed))
	require.NoError(t, d.Transition(DraftStateAppended))
	assert.True(t, d.Terminal())

	q := &Draft{State: DraftStateReceived}
	require.NoError(t, q.Transition(DraftStateQuarantined))
	assert.True(t, q.Terminal())
	assert.Error(t, q.Transition(DraftStateConfirmed))
}
