package domain

// TransactionCandidate é um lançamento proposto pelo modelo. Campos ausentes ficam nil
// para que a validação distinga "não informado" de valor zero.
type TransactionCandidate struct {
	Date          *string  `json:"date"`
	Description   *string  `json:"description"`
	Category      *string  `json:"category"`
	Amount        *float64 `json:"amount"`
	Type          *string  `json:"type"`
	Supplier      *string  `json:"supplier,omitempty"`
	PaymentMethod *string  `json:"paymentMethod,omitempty"`
	CostCenter    *string  `json:"costCenter,omitempty"`

	Raw         string `json:"-"`
	DecodeError string `json:"-"`
}

type ContactCandidate struct {
	Name    *string `json:"name"`
	Company *string `json:"company,omitempty"`
	TaxID   *string `json:"taxId,omitempty"`
	Type    *string `json:"type"`
	Email   *string `json:"email,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
	City    *string `json:"city,omitempty"`
	State   *string `json:"state,omitempty"`
	ZipCode *string `json:"zipCode,omitempty"`

	Raw         string `json:"-"`
	DecodeError string `json:"-"`
}

// ChatResult é a resposta do assistente. Structured indica que a resposta veio no
// formato esperado; quando falso, Reply contém o texto bruto do modelo.
type ChatResult struct {
	Reply       string
	Transaction *TransactionCandidate
	Structured  bool
	Failed      bool
}

// ChatTurn é uma mensagem anterior da conversa com o assistente.
type ChatTurn struct {
	Role string `json:"role"` // user ou model
	Text string `json:"text"`
}
