package handler

import (
	"net/http"

	"github.com/maestria/maestria-api/internal/domain"
	"github.com/maestria/maestria-api/internal/usecases/preferences"
)

type LanguageRequest struct {
	Language domain.Language `json:"language"`
}

type ViewRequest struct {
	View string `json:"view"`
}

func GetBranding(service *preferences.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.Branding(r.Context()))
	}
}

func SetBranding(service *preferences.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var branding domain.Branding
		if !decodeJSON(w, r, &branding) {
			return
		}

		saved, err := service.SetBranding(r.Context(), branding)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, saved)
	}
}

func GetLanguage(service *preferences.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, LanguageRequest{Language: service.Language(r.Context())})
	}
}

func SetLanguage(service *preferences.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LanguageRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := service.SetLanguage(r.Context(), req.Language); err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, req)
	}
}

func GetView(service *preferences.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, ViewRequest{View: service.View(r.Context())})
	}
}

func SetView(service *preferences.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ViewRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if err := service.SetView(r.Context(), req.View); err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, req)
	}
}
