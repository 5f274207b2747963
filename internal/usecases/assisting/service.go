package assisting

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/Rhymond/go-money"
	gemdomain "github.com/maestria/maestria-api/infrastructure/integrator/gemini/domain"
	"github.com/maestria/maestria-api/internal/domain"
	"github.com/maestria/maestria-api/internal/usecases/ledger"
	"github.com/maestria/maestria-api/internal/workspace"
	"github.com/maestria/maestria-api/pkg/apiErrors"
	"github.com/maestria/maestria-api/pkg/utils"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=service.go -destination=mocks/service_mock.go -package=mocks

const (
	recentTransactionsInContext = 10

	// Limites da memória de rascunhos: encerrados (anexados, descartados, em quarentena)
	// e total. Os mais antigos saem primeiro.
	defaultMaxSettledDrafts = 100
	defaultMaxDrafts        = 1000
)

// Gateway é o acesso ao modelo de IA. Toda falha vira um valor sentinela, nunca um erro.
type Gateway interface {
	AnalyzeDocument(ctx context.Context, doc domain.Document) []gemdomain.TransactionCandidate
	AnalyzeContactDocument(ctx context.Context, doc domain.Document) []gemdomain.ContactCandidate
	ExtractTransactions(ctx context.Context, input string) []gemdomain.TransactionCandidate
	Chat(ctx context.Context, language, ledgerContext string, history []gemdomain.ChatTurn, message string) gemdomain.ChatResult
	GenerateReport(ctx context.Context, language, periodSummary string) string
}

type Ledger interface {
	Filter(filter domain.TransactionFilter) []domain.Transaction
	ImportMany(ctx context.Context, items []domain.Transaction) ([]domain.Transaction, error)
}

type Contacts interface {
	BestMatch(name string) (domain.Contact, bool)
	ImportMany(ctx context.Context, items []domain.Contact) ([]domain.Contact, error)
}

type LanguageSource interface {
	Language(ctx context.Context) domain.Language
}

type Target string

const (
	TargetTransactions Target = "transactions"
	TargetContacts     Target = "contacts"
)

// ChatResponse é a resposta do assistente. Draft vem preenchido quando o modelo propôs
// um lançamento, válido ou em quarentena.
type ChatResponse struct {
	Reply  string            `json:"reply"`
	Mode   domain.DraftState `json:"mode"`
	Draft  *domain.Draft     `json:"draft,omitempty"`
	Failed bool              `json:"failed,omitempty"`
}

type Report struct {
	Text        string               `json:"text"`
	Summary     domain.LedgerSummary `json:"summary"`
	Language    domain.Language      `json:"language"`
	GeneratedAt time.Time            `json:"generatedAt"`
}

// Service conduz o ciclo de vida dos rascunhos da IA: recebido, validado, confirmado e anexado.
// Os rascunhos ficam em memória na instância que os recebeu.
type Service struct {
	gateway   Gateway
	ledger    Ledger
	contacts  Contacts
	languages LanguageSource

	mu         sync.Mutex
	drafts     map[string]*domain.Draft
	order      []string
	maxSettled int
	maxDrafts  int

	now func() time.Time
}

func NewService(gateway Gateway, ledger Ledger, contacts Contacts, languages LanguageSource) *Service {
	return &Service{
		gateway:    gateway,
		ledger:     ledger,
		contacts:   contacts,
		languages:  languages,
		drafts:     make(map[string]*domain.Draft),
		maxSettled: defaultMaxSettledDrafts,
		maxDrafts:  defaultMaxDrafts,
		now:        time.Now,
	}
}

// AnalyzeDocument envia o documento ao modelo e registra um rascunho por item retornado.
// Falha do modelo resulta em lista vazia.
func (s *Service) AnalyzeDocument(ctx context.Context, doc domain.Document, target Target) ([]domain.Draft, error) {
	switch target {
	case TargetTransactions, "":
		return s.receiveTransactions(s.gateway.AnalyzeDocument(ctx, doc)), nil
	case TargetContacts:
		candidates := s.gateway.AnalyzeContactDocument(ctx, doc)
		drafts := make([]domain.Draft, 0, len(candidates))
		for _, c := range candidates {
			drafts = append(drafts, s.receiveContact(c))
		}
		return drafts, nil
	default:
		return nil, workspace.NewError(ErrUnknownTarget, apiErrors.ErrInvalidRequest, string(target))
	}
}

// ExtractText extrai lançamentos de texto livre.
func (s *Service) ExtractText(ctx context.Context, input string) []domain.Draft {
	return s.receiveTransactions(s.gateway.ExtractTransactions(ctx, input))
}

// Chat envia a mensagem com o contexto do livro-caixa. Uma resposta fora do formato
// é devolvida como texto; um lançamento proposto vira rascunho.
func (s *Service) Chat(ctx context.Context, history []gemdomain.ChatTurn, message string) ChatResponse {
	language := s.languages.Language(ctx)
	result := s.gateway.Chat(ctx, string(language), s.ledgerContext(), history, message)

	if result.Failed {
		return ChatResponse{Reply: result.Reply, Mode: domain.DraftStateText, Failed: true}
	}
	if !result.Structured {
		return ChatResponse{Reply: result.Reply, Mode: domain.DraftStateText}
	}

	response := ChatResponse{Reply: result.Reply, Mode: domain.DraftStateText}
	if result.Transaction != nil {
		draft := s.receiveTransaction(*result.Transaction)
		response.Draft = &draft
		response.Mode = draft.State
	}
	return response
}

// ListDrafts retorna os rascunhos do mais recente para o mais antigo. Sem estados,
// retorna apenas os que aguardam confirmação.
func (s *Service) ListDrafts(states ...domain.DraftState) []domain.Draft {
	if len(states) == 0 {
		states = []domain.DraftState{domain.DraftStateParsed}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Draft, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		draft := s.drafts[s.order[i]]
		for _, state := range states {
			if draft.State == state {
				out = append(out, *draft)
				break
			}
		}
	}
	return out
}

func (s *Service) GetDraft(id string) (domain.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[id]
	if !ok {
		return domain.Draft{}, workspace.NewEntityError(ErrDraftNotFound, apiErrors.ErrDraftNotFound, id, "")
	}
	return *draft, nil
}

// ConfirmDraft anexa o rascunho à coleção correspondente. Uma correção opcional do usuário
// substitui a proposta e passa pela mesma validação.
func (s *Service) ConfirmDraft(ctx context.Context, id string, correction *domain.Draft) (domain.Draft, error) {
	s.mu.Lock()
	draft, ok := s.drafts[id]
	if !ok {
		s.mu.Unlock()
		return domain.Draft{}, workspace.NewEntityError(ErrDraftNotFound, apiErrors.ErrDraftNotFound, id, "")
	}
	if draft.State != domain.DraftStateParsed {
		state := draft.State
		s.mu.Unlock()
		return domain.Draft{}, workspace.NewEntityError(ErrDraftNotPending, apiErrors.ErrInvalidOperation, id, string(state))
	}

	pending := *draft
	if correction != nil {
		if err := applyCorrection(&pending, correction); err != nil {
			s.mu.Unlock()
			return domain.Draft{}, err
		}
	}
	// confirmado antes de anexar: uma segunda confirmação concorrente é recusada
	_ = draft.Transition(domain.DraftStateConfirmed)
	s.mu.Unlock()

	if err := s.append(ctx, &pending); err != nil {
		s.mu.Lock()
		draft.State = domain.DraftStateParsed
		s.mu.Unlock()
		return domain.Draft{}, err
	}

	_ = pending.Transition(domain.DraftStateConfirmed)
	_ = pending.Transition(domain.DraftStateAppended)

	s.mu.Lock()
	s.drafts[id] = &pending
	s.prune()
	s.mu.Unlock()

	logrus.WithField("draft_id", id).Infof("rascunho de %s anexado", pending.Kind)
	return pending, nil
}

// DiscardDraft descarta um rascunho pendente. Rascunhos em quarentena são apenas removidos.
func (s *Service) DiscardDraft(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[id]
	if !ok {
		return workspace.NewEntityError(ErrDraftNotFound, apiErrors.ErrDraftNotFound, id, "")
	}

	if draft.State == domain.DraftStateQuarantined {
		s.forget(id)
		return nil
	}
	if err := draft.Transition(domain.DraftStateDiscarded); err != nil {
		return workspace.NewEntityError(ErrDraftNotPending, apiErrors.ErrInvalidOperation, id, err.Error())
	}
	s.prune()
	return nil
}

// GenerateReport redige um relatório do período com o modelo pesado. Falha do modelo
// resulta em texto vazio.
func (s *Service) GenerateReport(ctx context.Context, filter domain.TransactionFilter) Report {
	transactions := s.ledger.Filter(filter)
	summary := ledger.Summarize(transactions)
	language := s.languages.Language(ctx)

	text := s.gateway.GenerateReport(ctx, string(language), describePeriod(filter, summary))

	return Report{
		Text:        text,
		Summary:     summary,
		Language:    language,
		GeneratedAt: s.now(),
	}
}

func (s *Service) append(ctx context.Context, draft *domain.Draft) error {
	switch draft.Kind {
	case domain.DraftKindTransaction:
		added, err := s.ledger.ImportMany(ctx, []domain.Transaction{*draft.Transaction})
		if err != nil {
			return err
		}
		draft.Transaction = &added[0]
	case domain.DraftKindContact:
		added, err := s.contacts.ImportMany(ctx, []domain.Contact{*draft.Contact})
		if err != nil {
			return err
		}
		draft.Contact = &added[0]
	}
	return nil
}

func (s *Service) receiveTransactions(candidates []gemdomain.TransactionCandidate) []domain.Draft {
	drafts := make([]domain.Draft, 0, len(candidates))
	for _, c := range candidates {
		drafts = append(drafts, s.receiveTransaction(c))
	}
	return drafts
}

func (s *Service) receiveTransaction(c gemdomain.TransactionCandidate) domain.Draft {
	draft := s.newDraft(domain.DraftKindTransaction, c.Raw)

	tx, err := toTransaction(c)
	if err != nil {
		s.quarantine(&draft, err)
	} else {
		if tx.Supplier != "" {
			if match, ok := s.contacts.BestMatch(tx.Supplier); ok {
				tx.Supplier = match.Name
			}
		}
		draft.Transaction = &tx
		_ = draft.Transition(domain.DraftStateParsed)
	}

	s.keep(draft)
	return draft
}

func (s *Service) receiveContact(c gemdomain.ContactCandidate) domain.Draft {
	draft := s.newDraft(domain.DraftKindContact, c.Raw)

	contact, err := toContact(c)
	if err != nil {
		s.quarantine(&draft, err)
	} else {
		draft.Contact = &contact
		_ = draft.Transition(domain.DraftStateParsed)
	}

	s.keep(draft)
	return draft
}

func (s *Service) newDraft(kind domain.DraftKind, raw string) domain.Draft {
	return domain.Draft{
		ID:        utils.MustGenerateID(),
		Kind:      kind,
		State:     domain.DraftStateReceived,
		Raw:       raw,
		CreatedAt: s.now(),
	}
}

func (s *Service) quarantine(draft *domain.Draft, reason error) {
	draft.Reason = reason.Error()
	_ = draft.Transition(domain.DraftStateQuarantined)

	logrus.WithFields(logrus.Fields{
		"draft_id": draft.ID,
		"kind":     draft.Kind,
	}).Warnf("rascunho em quarentena: %s", draft.Reason)
	if logrus.IsLevelEnabled(logrus.DebugLevel) {
		logrus.Debugf("conteúdo recebido do modelo: %s", utils.PrettyJson([]byte(draft.Raw)))
	}
}

func (s *Service) keep(draft domain.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := draft
	s.drafts[d.ID] = &d
	s.order = append(s.order, d.ID)
	s.prune()
}

// prune descarta os rascunhos mais antigos além dos limites. Chamado com s.mu travado.
func (s *Service) prune() {
	settled := 0
	for _, id := range s.order {
		if s.drafts[id].State != domain.DraftStateParsed {
			settled++
		}
	}

	kept := s.order[:0]
	total := len(s.order)
	for _, id := range s.order {
		draft := s.drafts[id]
		isSettled := draft.State != domain.DraftStateParsed
		switch {
		case total > s.maxDrafts:
		case isSettled && settled > s.maxSettled:
		default:
			kept = append(kept, id)
			continue
		}
		delete(s.drafts, id)
		total--
		if isSettled {
			settled--
		}
	}
	s.order = kept
}

func (s *Service) forget(id string) {
	delete(s.drafts, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// ledgerContext resume o livro-caixa para o assistente: totais e os lançamentos mais recentes.
func (s *Service) ledgerContext() string {
	transactions := s.ledger.Filter(domain.TransactionFilter{})
	summary := ledger.Summarize(transactions)

	var b strings.Builder
	fmt.Fprintf(&b, "Receitas: %s | Despesas: %s | Saldo: %s | Lançamentos: %d\n",
		formatBRL(summary.Income), formatBRL(summary.Expense), formatBRL(summary.Net), summary.Count)

	recent := make([]domain.Transaction, len(transactions))
	copy(recent, transactions)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].Date > recent[j].Date })
	if len(recent) > recentTransactionsInContext {
		recent = recent[:recentTransactionsInContext]
	}
	for _, tx := range recent {
		fmt.Fprintf(&b, "- %s %s %s (%s) %s\n", tx.Date, tx.Type, formatBRL(tx.Amount), tx.Category, tx.Description)
	}
	return b.String()
}

func describePeriod(filter domain.TransactionFilter, summary domain.LedgerSummary) string {
	var b strings.Builder

	period := "todo o histórico"
	if filter.From != "" || filter.To != "" {
		period = fmt.Sprintf("%s a %s", orDash(filter.From), orDash(filter.To))
	}
	fmt.Fprintf(&b, "Período: %s\n", period)
	fmt.Fprintf(&b, "Receitas: %s\nDespesas: %s\nSaldo: %s\nLançamentos: %d\n",
		formatBRL(summary.Income), formatBRL(summary.Expense), formatBRL(summary.Net), summary.Count)

	if len(summary.ByCategory) > 0 {
		b.WriteString("Por categoria:\n")
		for _, c := range summary.ByCategory {
			fmt.Fprintf(&b, "- %s (%s): %s\n", c.Category, c.Type, formatBRL(c.Total))
		}
	}
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// formatBRL formata o valor em reais, ex.: R$1.234,56.
func formatBRL(amount decimal.Decimal) string {
	cents := amount.Shift(2).Round(0).IntPart()
	return money.New(cents, money.BRL).Display()
}

func applyCorrection(draft *domain.Draft, correction *domain.Draft) error {
	switch draft.Kind {
	case domain.DraftKindTransaction:
		if correction.Transaction == nil {
			return nil
		}
		tx := *correction.Transaction
		tx.ID = ""
		tx.Source = domain.TransactionSourceAI
		if tx.Status == "" {
			tx.Status = domain.TransactionStatusPaid
		}
		if err := tx.Validate(); err != nil {
			return workspace.NewEntityError(err, apiErrors.ErrInvalidEntity, draft.ID, "correção inválida")
		}
		draft.Transaction = &tx
	case domain.DraftKindContact:
		if correction.Contact == nil {
			return nil
		}
		contact := *correction.Contact
		contact.ID = ""
		if err := contact.Validate(); err != nil {
			return workspace.NewEntityError(err, apiErrors.ErrInvalidEntity, draft.ID, "correção inválida")
		}
		draft.Contact = &contact
	}
	return nil
}
