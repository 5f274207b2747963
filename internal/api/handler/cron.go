package handler

import (
	"context"
	"net/http"

	"github.com/maestria/maestria-api/internal/usecases/scheduling"
	"github.com/maestria/maestria-api/pkg/apiErrors"
	"github.com/maestria/maestria-api/pkg/log"
)

const (
	CronJobTypeDueItems = "due-items"
	CronJobTypeAll      = "all"
)

// DueItemsJob é a rotina de vencimentos exposta para execução manual.
type DueItemsJob interface {
	RunNow(ctx context.Context) (scheduling.DueItemsResult, bool, error)
	TriggerManualSync()
	GetStatus() map[string]any
}

type CronJobServices struct {
	DueItemsSyncService DueItemsJob
}

// RunCronJob executa manualmente uma rotina. Com ?wait=true a execução é síncrona e o resultado
// volta na resposta.
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := param(r, "type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeDueItems, CronJobTypeAll:
			if services.DueItemsSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Rotina de vencimentos não disponível", nil)
				return
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: due-items, all", nil)
			return
		}

		logger := log.ForContext(r.Context()).WithField("type", cronType)

		if r.URL.Query().Get("wait") == "true" {
			result, ran, err := services.DueItemsSyncService.RunNow(r.Context())
			if err != nil {
				handleError(w, r, err)
				return
			}
			if !ran {
				apiErrors.WriteError(w, apiErrors.ErrInvalidOperation, "Rotina já em andamento", nil)
				return
			}
			logger.Info("Cron job executada de forma síncrona")
			writeJSON(w, http.StatusOK, map[string]any{"type": cronType, "result": result})
			return
		}

		services.DueItemsSyncService.TriggerManualSync()
		logger.Info("Cron job iniciada manualmente")
		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.DueItemsSyncService != nil {
			status[CronJobTypeDueItems] = services.DueItemsSyncService.GetStatus()
		}
		writeJSON(w, http.StatusOK, status)
	}
}
