package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

type TransactionStatus string

const (
	TransactionStatusPaid    TransactionStatus = "paid"
	TransactionStatusPending TransactionStatus = "pending"
	TransactionStatusOverdue TransactionStatus = "overdue"
)

func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionStatusPaid, TransactionStatusPending, TransactionStatusOverdue:
		return true
	}
	return false
}

type TransactionSource string

const (
	TransactionSourceManual TransactionSource = "manual"
	TransactionSourceAI     TransactionSource = "ai"
)

func (s TransactionSource) Valid() bool {
	return s == TransactionSourceManual || s == TransactionSourceAI
}

// Transaction é um lançamento do livro-caixa. Amount nunca é negativo: o sinal vem de Type.
type Transaction struct {
	ID            string            `json:"id"`
	Date          string            `json:"date"`
	Description   string            `json:"description"`
	Category      string            `json:"category"`
	Amount        decimal.Decimal   `json:"amount"`
	Type          TransactionType   `json:"type"`
	Status        TransactionStatus `json:"status"`
	Source        TransactionSource `json:"source"`
	Supplier      string            `json:"supplier,omitempty"`
	PaymentMethod string            `json:"paymentMethod,omitempty"`
	CostCenter    string            `json:"costCenter,omitempty"`
}

func (t Transaction) GetID() string { return t.ID }

func (t Transaction) WithID(id string) Transaction {
	t.ID = id
	return t
}

// Signed retorna o valor com sinal: positivo para receitas, negativo para despesas.
func (t Transaction) Signed() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}

func (t Transaction) Validate() error {
	if err := validateDate("date", t.Date); err != nil {
		return err
	}
	if strings.TrimSpace(t.Description) == "" {
		return invalid("description", "obrigatório")
	}
	if t.Amount.IsNegative() {
		return invalid("amount", "não pode ser negativo")
	}
	if !t.Type.Valid() {
		return invalid("type", "deve ser income ou expense")
	}
	if !t.Status.Valid() {
		return invalid("status", "deve ser paid, pending ou overdue")
	}
	if !t.Source.Valid() {
		return invalid("source", "deve ser manual ou ai")
	}
	return nil
}

// TransactionFilter reúne os filtros lineares usados na listagem.
type TransactionFilter struct {
	Type   TransactionType
	Status TransactionStatus
	Source TransactionSource
	Search string
	From   string
	To     string
}

func (f TransactionFilter) Matches(t Transaction) bool {
	if f.Type != "" && t.Type != f.Type {
		return false
	}
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.Source != "" && t.Source != f.Source {
		return false
	}
	// Datas AAAA-MM-DD comparam corretamente como texto.
	if f.From != "" && t.Date < f.From {
		return false
	}
	if f.To != "" && t.Date > f.To {
		return false
	}
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		haystack := strings.ToLower(strings.Join([]string{t.Description, t.Category, t.Supplier, t.CostCenter}, " "))
		if !strings.Contains(haystack, term) {
			return false
		}
	}
	return true
}

type CategoryTotal struct {
	Category string          `json:"category"`
	Type     TransactionType `json:"type"`
	Total    decimal.Decimal `json:"total"`
}

type LedgerSummary struct {
	Income     decimal.Decimal `json:"income"`
	Expense    decimal.Decimal `json:"expense"`
	Net        decimal.Decimal `json:"net"`
	Count      int             `json:"count"`
	ByCategory []CategoryTotal `json:"byCategory"`
}
