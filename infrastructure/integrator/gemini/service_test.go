package gemini

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/maestria/maestria-api/infrastructure/integrator/gemini/domain"
	"github.com/maestria/maestria-api/infrastructure/integrator/gemini/geminiclient/mocks"
	"github.com/maestria/maestria-api/internal/config"
	maestria "github.com/maestria/maestria-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/genai"
)

var testConfig = config.Gemini{
	LightModel:     "gemini-2.5-flash",
	HeavyModel:     "gemini-2.5-pro",
	ThinkingBudget: 1024,
}

func newIntegrator(t *testing.T) (*GeminiIntegrator, *mocks.MockClient) {
	t.Helper()
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	integrator := New(testConfig, client)
	integrator.now = func() time.Time { return time.Date(2024, 8, 20, 10, 0, 0, 0, time.UTC) }
	return integrator, client
}

func TestAnalyzeDocument(t *testing.T) {
	doc := maestria.Document{Data: []byte("%PDF-1.4"), MimeType: "application/pdf"}

	t.Run("falha vira lista vazia", func(t *testing.T) {
		integrator, client := newIntegrator(t)
		client.EXPECT().
			GenerateContent(gomock.Any(), "gemini-2.5-flash", gomock.Any(), gomock.Any()).
			Return("", errors.New("quota excedida"))

		got := integrator.AnalyzeDocument(context.Background(), doc)

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("resposta não JSON vira lista vazia", func(t *testing.T) {
		integrator, client := newIntegrator(t)
		client.EXPECT().GenerateContent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("não sei ler isso", nil)

		assert.Empty(t, integrator.AnalyzeDocument(context.Background(), doc))
	})

	t.Run("envia o documento e decodifica item a item", func(t *testing.T) {
		integrator, client := newIntegrator(t)
		client.EXPECT().
			GenerateContent(gomock.Any(), "gemini-2.5-flash", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
				require.Len(t, contents, 1)
				require.NotNil(t, contents[0].Parts[0].InlineData)
				assert.Equal(t, "application/pdf", contents[0].Parts[0].InlineData.MIMEType)
				assert.Equal(t, "application/json", cfg.ResponseMIMEType)
				assert.Equal(t, genai.TypeArray, cfg.ResponseSchema.Type)
				return `[{"date":"2024-08-01","description":"Energia","category":"Utilidades","amount":320.45,"type":"expense"},{"amount":"muito"}]`, nil
			})

		got := integrator.AnalyzeDocument(context.Background(), doc)

		require.Len(t, got, 2)
		require.NotNil(t, got[0].Amount)
		assert.Equal(t, 320.45, *got[0].Amount)
		assert.Empty(t, got[0].DecodeError)
		assert.NotEmpty(t, got[1].DecodeError)
		assert.Equal(t, `{"amount":"muito"}`, got[1].Raw)
	})
}

func TestAnalyzeContactDocument(t *testing.T) {
	integrator, client := newIntegrator(t)
	client.EXPECT().GenerateContent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(`[{"name":"Papelaria Central LTDA","taxId":"12.345.678/0001-90","type":"supplier"}]`, nil)

	got := integrator.AnalyzeContactDocument(context.Background(), maestria.Document{Data: []byte{1}, MimeType: "image/png"})

	require.Len(t, got, 1)
	assert.Equal(t, "Papelaria Central LTDA", *got[0].Name)
	assert.Equal(t, "supplier", *got[0].Type)
}

func TestExtractTransactions(t *testing.T) {
	integrator, client := newIntegrator(t)

	assert.Empty(t, integrator.ExtractTransactions(context.Background(), "   "))

	client.EXPECT().GenerateContent(gomock.Any(), "gemini-2.5-flash", gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
			assert.Contains(t, cfg.SystemInstruction.Parts[0].Text, "2024-08-20")
			return `[{"date":"2024-08-20","description":"Venda","category":"Vendas","amount":100,"type":"income"}]`, nil
		})

	got := integrator.ExtractTransactions(context.Background(), "vendi 100 reais hoje")
	require.Len(t, got, 1)
	assert.Equal(t, "income", *got[0].Type)
}

func TestChat(t *testing.T) {
	history := []domain.ChatTurn{{Role: "user", Text: "oi"}, {Role: "model", Text: "Olá!"}}

	t.Run("falha vira pedido de desculpas traduzido", func(t *testing.T) {
		integrator, client := newIntegrator(t)
		client.EXPECT().GenerateContent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("timeout"))

		got := integrator.Chat(context.Background(), "en", "", nil, "hello")

		assert.True(t, got.Failed)
		assert.Equal(t, Apology("en"), got.Reply)
	})

	t.Run("resposta estruturada com proposta", func(t *testing.T) {
		integrator, client := newIntegrator(t)
		client.EXPECT().GenerateContent(gomock.Any(), "gemini-2.5-flash", gomock.Len(3), gomock.Any()).
			Return(`{"reply":"Registrei a despesa.","transaction":{"date":"2024-08-20","description":"Táxi","category":"Transporte","amount":35,"type":"expense"}}`, nil)

		got := integrator.Chat(context.Background(), "pt", "saldo 100", history, "gastei 35 de táxi")

		assert.True(t, got.Structured)
		assert.Equal(t, "Registrei a despesa.", got.Reply)
		require.NotNil(t, got.Transaction)
		assert.Equal(t, "Táxi", *got.Transaction.Description)
	})

	t.Run("resposta sem proposta", func(t *testing.T) {
		integrator, client := newIntegrator(t)
		client.EXPECT().GenerateContent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(`{"reply":"Seu saldo é positivo.","transaction":null}`, nil)

		got := integrator.Chat(context.Background(), "pt", "", nil, "como estou?")
		assert.True(t, got.Structured)
		assert.Nil(t, got.Transaction)
	})

	t.Run("texto fora do formato é exibido como texto", func(t *testing.T) {
		integrator, client := newIntegrator(t)
		client.EXPECT().GenerateContent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("Claro! Seu saldo é 100.", nil)

		got := integrator.Chat(context.Background(), "pt", "", nil, "saldo?")
		assert.False(t, got.Structured)
		assert.False(t, got.Failed)
		assert.Equal(t, "Claro! Seu saldo é 100.", got.Reply)
	})
}

func TestGenerateReport(t *testing.T) {
	t.Run("usa o modelo pesado com orçamento de raciocínio", func(t *testing.T) {
		integrator, client := newIntegrator(t)
		client.EXPECT().GenerateContent(gomock.Any(), "gemini-2.5-pro", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ []*genai.Content, cfg *genai.GenerateContentConfig) (string, error) {
				require.NotNil(t, cfg.ThinkingConfig)
				assert.Equal(t, int32(1024), *cfg.ThinkingConfig.ThinkingBudget)
				return "  Relatório do período  ", nil
			})

		assert.Equal(t, "Relatório do período", integrator.GenerateReport(context.Background(), "pt", "receitas 100"))
	})

	t.Run("falha vira texto vazio", func(t *testing.T) {
		integrator, client := newIntegrator(t)
		client.EXPECT().GenerateContent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("500"))

		assert.Equal(t, "", integrator.GenerateReport(context.Background(), "pt", "receitas 100"))
	})
}

func TestApology(t *testing.T) {
	assert.Equal(t, Apology("pt"), Apology("fr"))
	assert.NotEqual(t, Apology("pt"), Apology("es"))
}
