package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Versioner informa a versão do snapshot carregado.
type Versioner interface {
	Version() int64
}

func HealthcheckHandler(ws Versioner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":  "ok",
			"time":    time.Now().Format(time.RFC3339),
			"version": ws.Version(),
		})
		logrus.Trace("healthcheck respondido")
	})
}
