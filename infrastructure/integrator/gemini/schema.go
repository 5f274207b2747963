package gemini

import "google.golang.org/genai"

func stringSchema(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: description}
}

func transactionSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"date":          {Type: genai.TypeString, Description: "Data no formato AAAA-MM-DD"},
			"description":   stringSchema("Descrição curta do lançamento"),
			"category":      stringSchema("Categoria contábil"),
			"amount":        {Type: genai.TypeNumber, Description: "Valor positivo, sem sinal"},
			"type":          {Type: genai.TypeString, Enum: []string{"income", "expense"}},
			"supplier":      stringSchema("Fornecedor ou cliente"),
			"paymentMethod": stringSchema("Forma de pagamento"),
			"costCenter":    stringSchema("Centro de custo"),
		},
		Required: []string{"date", "description", "category", "amount", "type"},
	}
}

func contactSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":    stringSchema("Nome ou razão social"),
			"company": stringSchema("Nome fantasia"),
			"taxId":   stringSchema("CNPJ ou CPF"),
			"type":    {Type: genai.TypeString, Enum: []string{"client", "supplier", "both"}},
			"email":   stringSchema("Email"),
			"phone":   stringSchema("Telefone"),
			"address": stringSchema("Logradouro e número"),
			"city":    stringSchema("Cidade"),
			"state":   stringSchema("UF"),
			"zipCode": stringSchema("CEP"),
		},
		Required: []string{"name", "type"},
	}
}

func listSchema(item *genai.Schema) *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: item}
}

func chatSchema() *genai.Schema {
	tx := transactionSchema()
	tx.Nullable = genai.Ptr(true)

	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"reply":       stringSchema("Resposta ao usuário no idioma pedido"),
			"transaction": tx,
		},
		Required: []string{"reply"},
	}
}
