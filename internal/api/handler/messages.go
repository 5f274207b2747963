package handler

import (
	"net/http"

	"github.com/maestria/maestria-api/internal/domain"
	"github.com/maestria/maestria-api/internal/usecases/messaging"
	"github.com/maestria/maestria-api/pkg/apiErrors"
)

type EditMessageRequest struct {
	Text string `json:"text"`
}

// ListConversation lista a conversa do membro autenticado com ?with=<id>, ou o canal geral com ?with=all.
func ListConversation(service *messaging.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentClaims(w, r)
		if !ok {
			return
		}

		peer := r.URL.Query().Get("with")
		if peer == "" {
			peer = domain.BroadcastReceiver
		}
		writeJSON(w, http.StatusOK, service.Conversation(claims.MemberID, peer))
	}
}

func SendMessage(service *messaging.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentClaims(w, r)
		if !ok {
			return
		}

		var msg domain.CorporateMessage
		if !decodeJSON(w, r, &msg) {
			return
		}

		sent, err := service.Send(r.Context(), claims.MemberID, msg)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, sent)
	}
}

func EditMessage(service *messaging.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentClaims(w, r)
		if !ok {
			return
		}

		var req EditMessageRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Text == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "text é obrigatório", nil)
			return
		}

		edited, err := service.Edit(r.Context(), param(r, "id"), claims.MemberID, req.Text)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, edited)
	}
}

func DeleteMessage(service *messaging.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentClaims(w, r)
		if !ok {
			return
		}

		deleted, err := service.Delete(r.Context(), param(r, "id"), claims.MemberID, claims.MemberRole)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, deleted)
	}
}
