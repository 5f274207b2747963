package gemini

import (
	"context"
	"fmt"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/maestria/maestria-api/infrastructure/integrator/gemini/domain"
	"github.com/maestria/maestria-api/infrastructure/integrator/gemini/geminiclient"
	"github.com/maestria/maestria-api/internal/config"
	maestria "github.com/maestria/maestria-api/internal/domain"
	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	roleUser  = "user"
	roleModel = "model"
)

// GeminiIntegrator é o gateway de IA. Nenhum método retorna erro: falhas viram
// lista vazia na extração, texto vazio no relatório e pedido de desculpas no chat.
type GeminiIntegrator struct {
	cfg    config.Gemini
	Client geminiclient.Client
	now    func() time.Time
}

func New(cfg config.Gemini, client geminiclient.Client) *GeminiIntegrator {
	return &GeminiIntegrator{
		cfg:    cfg,
		Client: client,
		now:    time.Now,
	}
}

// AnalyzeDocument extrai lançamentos de um documento usando o modelo leve.
func (s *GeminiIntegrator) AnalyzeDocument(ctx context.Context, doc maestria.Document) []domain.TransactionCandidate {
	parts := []*genai.Part{
		{InlineData: &genai.Blob{Data: doc.Data, MIMEType: doc.MimeType}},
		{Text: "Extraia os lançamentos deste documento."},
	}

	text, ok := s.generate(ctx, "analyze_document", s.cfg.LightModel, parts, s.structured(documentInstruction, listSchema(transactionSchema())))
	if !ok {
		return []domain.TransactionCandidate{}
	}
	return decodeTransactions(text)
}

// AnalyzeContactDocument extrai clientes ou fornecedores de um documento.
func (s *GeminiIntegrator) AnalyzeContactDocument(ctx context.Context, doc maestria.Document) []domain.ContactCandidate {
	parts := []*genai.Part{
		{InlineData: &genai.Blob{Data: doc.Data, MIMEType: doc.MimeType}},
		{Text: "Extraia os contatos deste documento."},
	}

	text, ok := s.generate(ctx, "analyze_contact_document", s.cfg.LightModel, parts, s.structured(contactInstruction, listSchema(contactSchema())))
	if !ok {
		return []domain.ContactCandidate{}
	}
	return decodeContacts(text)
}

// ExtractTransactions converte texto livre em lançamentos.
func (s *GeminiIntegrator) ExtractTransactions(ctx context.Context, input string) []domain.TransactionCandidate {
	if strings.TrimSpace(input) == "" {
		return []domain.TransactionCandidate{}
	}

	instruction := fmt.Sprintf(extractInstruction, s.today())
	text, ok := s.generate(ctx, "extract_transactions", s.cfg.LightModel, []*genai.Part{{Text: input}}, s.structured(instruction, listSchema(transactionSchema())))
	if !ok {
		return []domain.TransactionCandidate{}
	}
	return decodeTransactions(text)
}

// Chat responde ao usuário e pode propor um lançamento. Uma resposta fora do formato
// esperado é devolvida como texto, sem proposta.
func (s *GeminiIntegrator) Chat(ctx context.Context, language, ledgerContext string, history []domain.ChatTurn, message string) domain.ChatResult {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		role := roleUser
		if turn.Role == roleModel {
			role = roleModel
		}
		contents = append(contents, &genai.Content{Role: role, Parts: []*genai.Part{{Text: turn.Text}}})
	}
	contents = append(contents, &genai.Content{Role: roleUser, Parts: []*genai.Part{{Text: message}}})

	cfg := s.structured(chatPrompt(language, ledgerContext, s.today()), chatSchema())
	text, err := s.Client.GenerateContent(ctx, s.cfg.LightModel, contents, cfg)
	if err != nil {
		logrus.WithError(err).WithField("operation", "chat").Error("gemini: falha ao gerar resposta")
		return domain.ChatResult{Reply: Apology(language), Failed: true}
	}

	var payload struct {
		Reply       *string             `json:"reply"`
		Transaction jsoniter.RawMessage `json:"transaction"`
	}
	if err := json.Unmarshal([]byte(text), &payload); err != nil || payload.Reply == nil {
		logrus.WithField("operation", "chat").Warn("gemini: resposta fora do formato, exibindo como texto")
		return domain.ChatResult{Reply: text}
	}

	result := domain.ChatResult{Reply: *payload.Reply, Structured: true}
	if len(payload.Transaction) > 0 && string(payload.Transaction) != "null" {
		candidate := decodeTransaction(payload.Transaction)
		result.Transaction = &candidate
	}
	return result
}

// GenerateReport redige um relatório com o modelo pesado a partir do resumo do período.
func (s *GeminiIntegrator) GenerateReport(ctx context.Context, language, periodSummary string) string {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: fmt.Sprintf(reportInstruction, languageName(language))}}},
	}
	if s.cfg.ThinkingBudget > 0 {
		cfg.ThinkingConfig = &genai.ThinkingConfig{ThinkingBudget: genai.Ptr(int32(s.cfg.ThinkingBudget))}
	}

	text, ok := s.generate(ctx, "generate_report", s.cfg.HeavyModel, []*genai.Part{{Text: periodSummary}}, cfg)
	if !ok {
		return ""
	}
	return strings.TrimSpace(text)
}

func (s *GeminiIntegrator) structured(instruction string, schema *genai.Schema) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: instruction}}},
		ResponseMIMEType:  "application/json",
		ResponseSchema:    schema,
		Temperature:       genai.Ptr[float32](0.2),
	}
}

func (s *GeminiIntegrator) generate(ctx context.Context, operation, model string, parts []*genai.Part, cfg *genai.GenerateContentConfig) (string, bool) {
	contents := []*genai.Content{{Role: roleUser, Parts: parts}}

	start := s.now()
	text, err := s.Client.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"operation": operation,
			"model":     model,
			"error":     err.Error(),
		}).Error("gemini: falha ao gerar conteúdo")
		return "", false
	}

	logrus.WithFields(logrus.Fields{
		"operation":   operation,
		"model":       model,
		"duration_ms": s.now().Sub(start).Milliseconds(),
	}).Debug("gemini: conteúdo gerado")
	return text, true
}

func (s *GeminiIntegrator) today() string {
	return s.now().Format(time.DateOnly)
}

// decodeTransactions decodifica a lista item a item: um item malformado não descarta os demais.
func decodeTransactions(text string) []domain.TransactionCandidate {
	var items []jsoniter.RawMessage
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		logrus.WithError(err).Warn("gemini: resposta não é uma lista JSON")
		return []domain.TransactionCandidate{}
	}

	out := make([]domain.TransactionCandidate, 0, len(items))
	for _, item := range items {
		out = append(out, decodeTransaction(item))
	}
	return out
}

func decodeTransaction(raw jsoniter.RawMessage) domain.TransactionCandidate {
	var candidate domain.TransactionCandidate
	if err := json.Unmarshal(raw, &candidate); err != nil {
		candidate = domain.TransactionCandidate{DecodeError: err.Error()}
	}
	candidate.Raw = string(raw)
	return candidate
}

func decodeContacts(text string) []domain.ContactCandidate {
	var items []jsoniter.RawMessage
	if err := json.Unmarshal([]byte(text), &items); err != nil {
		logrus.WithError(err).Warn("gemini: resposta não é uma lista JSON")
		return []domain.ContactCandidate{}
	}

	out := make([]domain.ContactCandidate, 0, len(items))
	for _, item := range items {
		var candidate domain.ContactCandidate
		if err := json.Unmarshal(item, &candidate); err != nil {
			candidate = domain.ContactCandidate{DecodeError: err.Error()}
		}
		candidate.Raw = string(item)
		out = append(out, candidate)
	}
	return out
}
