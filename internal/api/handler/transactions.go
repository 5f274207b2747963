package handler

import (
	"fmt"
	"net/http"

	"github.com/maestria/maestria-api/internal/domain"
	"github.com/maestria/maestria-api/internal/usecases/ledger"
	"github.com/maestria/maestria-api/pkg/apiErrors"
	"github.com/maestria/maestria-api/pkg/utils"
)

func transactionFilter(r *http.Request) (domain.TransactionFilter, error) {
	q := r.URL.Query()
	filter := domain.TransactionFilter{
		Type:   domain.TransactionType(q.Get("type")),
		Status: domain.TransactionStatus(q.Get("status")),
		Source: domain.TransactionSource(q.Get("source")),
		Search: q.Get("search"),
		From:   q.Get("from"),
		To:     q.Get("to"),
	}

	if filter.Type != "" && !filter.Type.Valid() {
		return filter, fmt.Errorf("type inválido: %s", filter.Type)
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return filter, fmt.Errorf("status inválido: %s", filter.Status)
	}
	if filter.Source != "" && !filter.Source.Valid() {
		return filter, fmt.Errorf("source inválido: %s", filter.Source)
	}
	for _, date := range []string{filter.From, filter.To} {
		if _, err := utils.ParseDate(date); err != nil {
			return filter, fmt.Errorf("data inválida: %s", date)
		}
	}
	return filter, nil
}

func ListTransactions(service *ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := transactionFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}
		writeJSON(w, http.StatusOK, service.Filter(filter))
	}
}

func GetTransaction(service *ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tx, err := service.Get(param(r, "id"))
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, tx)
	}
}

func CreateTransaction(service *ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var tx domain.Transaction
		if !decodeJSON(w, r, &tx) {
			return
		}
		if tx.Source == "" {
			tx.Source = domain.TransactionSourceManual
		}

		created, err := service.Create(r.Context(), tx)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateTransaction(service *ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var tx domain.Transaction
		if !decodeJSON(w, r, &tx) {
			return
		}
		tx.ID = param(r, "id")

		updated, err := service.Update(r.Context(), tx)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteTransaction(service *ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := service.Remove(r.Context(), param(r, "id")); err != nil {
			handleError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// ImportTransactions insere o lote no início do livro-caixa. Um item inválido rejeita o lote.
func ImportTransactions(service *ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var txs []domain.Transaction
		if !decodeJSON(w, r, &txs) {
			return
		}
		if len(txs) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Lote vazio", nil)
			return
		}

		imported, err := service.ImportMany(r.Context(), txs)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, imported)
	}
}

func TransactionSummary(service *ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := transactionFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}
		writeJSON(w, http.StatusOK, service.Summary(filter))
	}
}

func ExportTransactions(service *ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter, err := transactionFilter(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="lancamentos.csv"`)
		if err := service.ExportCSV(w, filter); err != nil {
			handleError(w, r, err)
		}
	}
}
