package ledger

import (
	"context"
	"encoding/csv"
	"io"
	"sort"

	"github.com/maestria/maestria-api/internal/domain"
	"github.com/maestria/maestria-api/internal/usecases/collecting"
	"github.com/maestria/maestria-api/internal/workspace"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var csvHeader = []string{"id", "date", "description", "category", "type", "status", "source", "amount", "supplier", "paymentMethod", "costCenter"}

// Service é o livro-caixa: lançamentos, filtros e totais.
type Service struct {
	*collecting.Service[domain.Transaction]
	state workspace.State
}

func NewService(state workspace.State) *Service {
	return &Service{
		Service: collecting.NewService(state, "transactions", collecting.Transactions),
		state:   state,
	}
}

func (s *Service) Filter(filter domain.TransactionFilter) []domain.Transaction {
	return s.List(filter.Matches)
}

// Summary soma receitas e despesas dos lançamentos filtrados. Net = receitas - despesas.
func (s *Service) Summary(filter domain.TransactionFilter) domain.LedgerSummary {
	return Summarize(s.Filter(filter))
}

func Summarize(transactions []domain.Transaction) domain.LedgerSummary {
	summary := domain.LedgerSummary{
		Income:     decimal.Zero,
		Expense:    decimal.Zero,
		ByCategory: make([]domain.CategoryTotal, 0),
	}

	type bucket struct {
		category string
		kind     domain.TransactionType
	}
	totals := make(map[bucket]decimal.Decimal)

	for _, tx := range transactions {
		switch tx.Type {
		case domain.TransactionTypeIncome:
			summary.Income = summary.Income.Add(tx.Amount)
		case domain.TransactionTypeExpense:
			summary.Expense = summary.Expense.Add(tx.Amount)
		default:
			continue
		}
		summary.Count++

		key := bucket{category: tx.Category, kind: tx.Type}
		totals[key] = totals[key].Add(tx.Amount)
	}

	summary.Net = summary.Income.Sub(summary.Expense)

	for key, total := range totals {
		summary.ByCategory = append(summary.ByCategory, domain.CategoryTotal{
			Category: key.category,
			Type:     key.kind,
			Total:    total,
		})
	}
	sort.Slice(summary.ByCategory, func(i, j int) bool {
		a, b := summary.ByCategory[i], summary.ByCategory[j]
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		if !a.Total.Equal(b.Total) {
			return a.Total.GreaterThan(b.Total)
		}
		return a.Category < b.Category
	})

	return summary
}

// ExportCSV escreve os lançamentos filtrados em CSV com cabeçalho.
func (s *Service) ExportCSV(w io.Writer, filter domain.TransactionFilter) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return err
	}

	for _, tx := range s.Filter(filter) {
		record := []string{
			tx.ID,
			tx.Date,
			tx.Description,
			tx.Category,
			string(tx.Type),
			string(tx.Status),
			string(tx.Source),
			tx.Amount.StringFixed(2),
			tx.Supplier,
			tx.PaymentMethod,
			tx.CostCenter,
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// MarkOverdue passa para overdue os lançamentos pendentes com data anterior a today.
func (s *Service) MarkOverdue(ctx context.Context, today string) (int, error) {
	var changed int

	err := s.state.Mutate(ctx, func(snapshot *domain.Snapshot) error {
		changed = 0
		for _, tx := range snapshot.Transactions.All() {
			if tx.Status != domain.TransactionStatusPending || tx.Date >= today {
				continue
			}
			tx.Status = domain.TransactionStatusOverdue
			snapshot.Transactions.Update(tx)
			changed++
		}
		if changed == 0 {
			return workspace.ErrNoChange
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if changed == 0 {
		return 0, nil
	}

	logrus.Infof("transactions: %d lançamentos marcados como vencidos", changed)
	return changed, nil
}
