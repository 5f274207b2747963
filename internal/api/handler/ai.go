package handler

import (
	"net/http"
	"strings"

	gemdomain "github.com/maestria/maestria-api/infrastructure/integrator/gemini/domain"
	"github.com/maestria/maestria-api/internal/domain"
	"github.com/maestria/maestria-api/internal/usecases/assisting"
	"github.com/maestria/maestria-api/pkg/apiErrors"
	"github.com/maestria/maestria-api/pkg/utils"
)

var acceptedMimeTypes = map[string]bool{
	"application/pdf": true,
	"image/png":       true,
	"image/jpeg":      true,
	"image/webp":      true,
	"image/heic":      true,
	"text/plain":      true,
	"text/csv":        true,
}

// DocumentRequest carrega o documento em base64 no campo content.
type DocumentRequest struct {
	Content  []byte           `json:"content"`
	MimeType string           `json:"mimeType"`
	Target   assisting.Target `json:"target"`
}

type ExtractRequest struct {
	Text string `json:"text"`
}

type ChatRequest struct {
	Message string               `json:"message"`
	History []gemdomain.ChatTurn `json:"history"`
}

type ReportRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func AnalyzeDocument(service *assisting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DocumentRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if len(req.Content) == 0 || req.MimeType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "content e mimeType são obrigatórios", nil)
			return
		}
		if !acceptedMimeTypes[strings.ToLower(req.MimeType)] {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Tipo de documento não suportado", req.MimeType)
			return
		}

		drafts, err := service.AnalyzeDocument(r.Context(), domain.Document{Data: req.Content, MimeType: req.MimeType}, req.Target)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, drafts)
	}
}

func ExtractTransactions(service *assisting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ExtractRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if strings.TrimSpace(req.Text) == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "text é obrigatório", nil)
			return
		}
		writeJSON(w, http.StatusOK, service.ExtractText(r.Context(), req.Text))
	}
}

func Chat(service *assisting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChatRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if strings.TrimSpace(req.Message) == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "message é obrigatório", nil)
			return
		}
		writeJSON(w, http.StatusOK, service.Chat(r.Context(), req.History, req.Message))
	}
}

// ListDrafts aceita ?state= repetido; sem estado retorna os que aguardam confirmação.
func ListDrafts(service *assisting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var states []domain.DraftState
		for _, s := range r.URL.Query()["state"] {
			states = append(states, domain.DraftState(s))
		}
		writeJSON(w, http.StatusOK, service.ListDrafts(states...))
	}
}

// ConfirmDraft aceita um corpo opcional com a correção do usuário.
func ConfirmDraft(service *assisting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var correction *domain.Draft
		body := &domain.Draft{}
		present, ok := decodeOptionalJSON(w, r, body)
		if !ok {
			return
		}
		if present {
			correction = body
		}

		draft, err := service.ConfirmDraft(r.Context(), param(r, "id"), correction)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, draft)
	}
}

func DiscardDraft(service *assisting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.DiscardDraft(param(r, "id")); err != nil {
			handleError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func GenerateReport(service *assisting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReportRequest
		if _, ok := decodeOptionalJSON(w, r, &req); !ok {
			return
		}
		for _, date := range []string{req.From, req.To} {
			if _, err := utils.ParseDate(date); err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "from e to devem estar no formato AAAA-MM-DD", nil)
				return
			}
		}

		report := service.GenerateReport(r.Context(), domain.TransactionFilter{From: req.From, To: req.To})
		writeJSON(w, http.StatusOK, report)
	}
}
