package handler

import (
	"net/http"

	"github.com/maestria/maestria-api/internal/domain"
	"github.com/maestria/maestria-api/internal/usecases/contacting"
	"github.com/maestria/maestria-api/pkg/apiErrors"
)

// ListContacts aceita ?search= (com aproximação por distância de edição) e ?type=.
func ListContacts(service *contacting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind := domain.ContactType(r.URL.Query().Get("type"))
		if kind != "" && !kind.Valid() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "type deve ser client, supplier ou both", nil)
			return
		}
		writeJSON(w, http.StatusOK, service.Search(r.URL.Query().Get("search"), kind))
	}
}

func GetContact(service *contacting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contact, err := service.Get(param(r, "id"))
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, contact)
	}
}

func CreateContact(service *contacting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var contact domain.Contact
		if !decodeJSON(w, r, &contact) {
			return
		}

		created, err := service.Create(r.Context(), contact)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateContact(service *contacting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var contact domain.Contact
		if !decodeJSON(w, r, &contact) {
			return
		}
		contact.ID = param(r, "id")

		updated, err := service.Update(r.Context(), contact)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteContact(service *contacting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.Remove(r.Context(), param(r, "id")); err != nil {
			handleError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ImportContacts(service *contacting.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var contacts []domain.Contact
		if !decodeJSON(w, r, &contacts) {
			return
		}
		if len(contacts) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Lote vazio", nil)
			return
		}

		imported, err := service.ImportMany(r.Context(), contacts)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, imported)
	}
}
