package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Recurrence string

const (
	RecurrenceNone    Recurrence = "none"
	RecurrenceWeekly  Recurrence = "weekly"
	RecurrenceMonthly Recurrence = "monthly"
	RecurrenceYearly  Recurrence = "yearly"
)

func (r Recurrence) Valid() bool {
	switch r {
	case RecurrenceNone, RecurrenceWeekly, RecurrenceMonthly, RecurrenceYearly:
		return true
	}
	return false
}

type ScheduleStatus string

const (
	ScheduleStatusPending ScheduleStatus = "pending"
	ScheduleStatusPaid    ScheduleStatus = "paid"
	ScheduleStatusOverdue ScheduleStatus = "overdue"
)

func (s ScheduleStatus) Valid() bool {
	switch s {
	case ScheduleStatusPending, ScheduleStatusPaid, ScheduleStatusOverdue:
		return true
	}
	return false
}

// DefaultScheduleCategory é usada no lançamento gerado quando o agendamento não tem categoria.
const DefaultScheduleCategory = "Agendamentos"

type ScheduledItem struct {
	ID          string          `json:"id"`
	DueDate     string          `json:"dueDate"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        TransactionType `json:"type"`
	Category    string          `json:"category,omitempty"`
	Recurrence  Recurrence      `json:"recurrence"`
	AutoPay     bool            `json:"autoPay"`
	Status      ScheduleStatus  `json:"status"`
}

func (s ScheduledItem) GetID() string { return s.ID }

func (s ScheduledItem) WithID(id string) ScheduledItem {
	s.ID = id
	return s
}

func (s ScheduledItem) Validate() error {
	if err := validateDate("dueDate", s.DueDate); err != nil {
		return err
	}
	if strings.TrimSpace(s.Description) == "" {
		return invalid("description", "obrigatório")
	}
	if s.Amount.IsNegative() {
		return invalid("amount", "não pode ser negativo")
	}
	if !s.Type.Valid() {
		return invalid("type", "deve ser income ou expense")
	}
	if !s.Recurrence.Valid() {
		return invalid("recurrence", "deve ser none, weekly, monthly ou yearly")
	}
	if !s.Status.Valid() {
		return invalid("status", "deve ser pending, paid ou overdue")
	}
	return nil
}

// Payable indica se o agendamento ainda pode ser quitado.
func (s ScheduledItem) Payable() bool {
	return s.Status == ScheduleStatusPending || s.Status == ScheduleStatusOverdue
}

// PaymentTransaction monta o lançamento que registra a quitação na data informada.
func (s ScheduledItem) PaymentTransaction(id, paidOn string) Transaction {
	category := s.Category
	if category == "" {
		category = DefaultScheduleCategory
	}
	return Transaction{
		ID:          id,
		Date:        paidOn,
		Description: s.Description,
		Category:    category,
		Amount:      s.Amount,
		Type:        s.Type,
		Status:      TransactionStatusPaid,
		Source:      TransactionSourceManual,
	}
}
