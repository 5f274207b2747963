package assisting

import (
	"fmt"
	"strings"
	"time"

	gemdomain "github.com/maestria/maestria-api/infrastructure/integrator/gemini/domain"
	"github.com/maestria/maestria-api/internal/domain"
	"github.com/shopspring/decimal"
)

// toTransaction aplica o esquema estrito: qualquer campo obrigatório ausente ou fora do
// domínio rejeita o candidato, sem valores padrão silenciosos.
func toTransaction(c gemdomain.TransactionCandidate) (domain.Transaction, error) {
	if c.DecodeError != "" {
		return domain.Transaction{}, fmt.Errorf("JSON incompatível: %s", c.DecodeError)
	}

	var missing []string
	if isBlank(c.Date) {
		missing = append(missing, "date")
	}
	if isBlank(c.Description) {
		missing = append(missing, "description")
	}
	if isBlank(c.Category) {
		missing = append(missing, "category")
	}
	if c.Amount == nil {
		missing = append(missing, "amount")
	}
	if isBlank(c.Type) {
		missing = append(missing, "type")
	}
	if len(missing) > 0 {
		return domain.Transaction{}, fmt.Errorf("campos obrigatórios ausentes: %s", strings.Join(missing, ", "))
	}

	if _, err := time.Parse(time.DateOnly, strings.TrimSpace(*c.Date)); err != nil {
		return domain.Transaction{}, fmt.Errorf("data inválida: %q", *c.Date)
	}

	amount := decimal.NewFromFloat(*c.Amount)
	if amount.IsNegative() {
		return domain.Transaction{}, fmt.Errorf("valor negativo: %s", amount.String())
	}

	kind := domain.TransactionType(strings.TrimSpace(*c.Type))
	if !kind.Valid() {
		return domain.Transaction{}, fmt.Errorf("tipo inválido: %q", *c.Type)
	}

	tx := domain.Transaction{
		Date:          strings.TrimSpace(*c.Date),
		Description:   strings.TrimSpace(*c.Description),
		Category:      strings.TrimSpace(*c.Category),
		Amount:        amount.Round(2),
		Type:          kind,
		Status:        domain.TransactionStatusPaid,
		Source:        domain.TransactionSourceAI,
		Supplier:      value(c.Supplier),
		PaymentMethod: value(c.PaymentMethod),
		CostCenter:    value(c.CostCenter),
	}
	return tx, tx.Validate()
}

func toContact(c gemdomain.ContactCandidate) (domain.Contact, error) {
	if c.DecodeError != "" {
		return domain.Contact{}, fmt.Errorf("JSON incompatível: %s", c.DecodeError)
	}

	var missing []string
	if isBlank(c.Name) {
		missing = append(missing, "name")
	}
	if isBlank(c.Type) {
		missing = append(missing, "type")
	}
	if len(missing) > 0 {
		return domain.Contact{}, fmt.Errorf("campos obrigatórios ausentes: %s", strings.Join(missing, ", "))
	}

	kind := domain.ContactType(strings.TrimSpace(*c.Type))
	if !kind.Valid() {
		return domain.Contact{}, fmt.Errorf("tipo inválido: %q", *c.Type)
	}

	contact := domain.Contact{
		Name:        strings.TrimSpace(*c.Name),
		Company:     value(c.Company),
		TaxID:       value(c.TaxID),
		Type:        kind,
		Email:       value(c.Email),
		Phone:       value(c.Phone),
		Address:     value(c.Address),
		City:        value(c.City),
		State:       value(c.State),
		ZipCode:     value(c.ZipCode),
		TotalTraded: decimal.Zero,
	}
	return contact, contact.Validate()
}

func isBlank(s *string) bool {
	return s == nil || strings.TrimSpace(*s) == ""
}

func value(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
