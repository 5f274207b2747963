package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type ContactType string

const (
	ContactTypeClient   ContactType = "client"
	ContactTypeSupplier ContactType = "supplier"
	ContactTypeBoth     ContactType = "both"
)

func (t ContactType) Valid() bool {
	switch t {
	case ContactTypeClient, ContactTypeSupplier, ContactTypeBoth:
		return true
	}
	return false
}

// Contact é um cliente ou fornecedor. TaxID (CNPJ/CPF) não é único.
type Contact struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Company     string          `json:"company,omitempty"`
	TaxID       string          `json:"taxId,omitempty"`
	Type        ContactType     `json:"type"`
	Email       string          `json:"email,omitempty"`
	Phone       string          `json:"phone,omitempty"`
	Address     string          `json:"address,omitempty"`
	City        string          `json:"city,omitempty"`
	State       string          `json:"state,omitempty"`
	ZipCode     string          `json:"zipCode,omitempty"`
	TotalTraded decimal.Decimal `json:"totalTraded"`
}

func (c Contact) GetID() string { return c.ID }

func (c Contact) WithID(id string) Contact {
	c.ID = id
	return c
}

func (c Contact) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return invalid("name", "obrigatório")
	}
	if !c.Type.Valid() {
		return invalid("type", "deve ser client, supplier ou both")
	}
	if c.TotalTraded.IsNegative() {
		return invalid("totalTraded", "não pode ser negativo")
	}
	return nil
}

// IsSupplier inclui contatos marcados como ambos.
func (c Contact) IsSupplier() bool {
	return c.Type == ContactTypeSupplier || c.Type == ContactTypeBoth
}

func (c Contact) IsClient() bool {
	return c.Type == ContactTypeClient || c.Type == ContactTypeBoth
}
