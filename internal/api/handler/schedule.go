package handler

import (
	"net/http"
	"time"

	"github.com/maestria/maestria-api/internal/domain"
	"github.com/maestria/maestria-api/internal/usecases/scheduling"
	"github.com/maestria/maestria-api/pkg/apiErrors"
	"github.com/maestria/maestria-api/pkg/utils"
)

type PayScheduledItemRequest struct {
	PaidOn string `json:"paidOn"`
}

func ListSchedule(service *scheduling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := domain.ScheduleStatus(r.URL.Query().Get("status"))
		if status != "" && !status.Valid() {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "status deve ser pending, paid ou overdue", nil)
			return
		}

		writeJSON(w, http.StatusOK, service.List(func(item domain.ScheduledItem) bool {
			return status == "" || item.Status == status
		}))
	}
}

func GetScheduledItem(service *scheduling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		item, err := service.Get(param(r, "id"))
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, item)
	}
}

func CreateScheduledItem(service *scheduling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item domain.ScheduledItem
		if !decodeJSON(w, r, &item) {
			return
		}
		if item.Status == "" {
			item.Status = domain.ScheduleStatusPending
		}
		if item.Recurrence == "" {
			item.Recurrence = domain.RecurrenceNone
		}

		created, err := service.Create(r.Context(), item)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateScheduledItem(service *scheduling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var item domain.ScheduledItem
		if !decodeJSON(w, r, &item) {
			return
		}
		item.ID = param(r, "id")

		updated, err := service.Update(r.Context(), item)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteScheduledItem(service *scheduling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.Remove(r.Context(), param(r, "id")); err != nil {
			handleError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// PayScheduledItem quita o agendamento. Sem corpo, a data de pagamento é hoje.
func PayScheduledItem(service *scheduling.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PayScheduledItemRequest
		if _, ok := decodeOptionalJSON(w, r, &req); !ok {
			return
		}
		if req.PaidOn == "" {
			req.PaidOn = utils.Today(time.Now())
		}
		if _, err := utils.ParseDate(req.PaidOn); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "paidOn deve estar no formato AAAA-MM-DD", nil)
			return
		}

		payment, err := service.ConfirmPayment(r.Context(), param(r, "id"), req.PaidOn)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, payment)
	}
}
