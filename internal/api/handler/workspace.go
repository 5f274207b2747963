package handler

import (
	"context"
	"net/http"

	"github.com/maestria/maestria-api/internal/domain"
	"github.com/maestria/maestria-api/internal/syncing"
	"github.com/maestria/maestria-api/pkg/log"
)

// WorkspaceState é o espaço de trabalho visto pela API.
type WorkspaceState interface {
	Snapshot() (*domain.Snapshot, int64)
	Reload(ctx context.Context) int64
	Version() int64
}

// SyncStatus é opcional: nil quando a sincronização entre instâncias está desligada.
type SyncStatus interface {
	GetStatus() syncing.Status
}

func GetWorkspace(ws WorkspaceState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot, version := ws.Snapshot()
		writeJSON(w, http.StatusOK, domain.VersionedSnapshot{Snapshot: snapshot, Version: version})
	}
}

func ReloadWorkspace(ws WorkspaceState) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		version := ws.Reload(r.Context())
		log.ForContext(r.Context()).WithField("version", version).Info("Espaço de trabalho recarregado manualmente")
		writeJSON(w, http.StatusOK, map[string]any{"version": version})
	}
}

func GetSyncStatus(ws WorkspaceState, bridge SyncStatus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := map[string]any{
			"enabled": bridge != nil,
			"version": ws.Version(),
		}
		if bridge != nil {
			response["bridge"] = bridge.GetStatus()
		}
		writeJSON(w, http.StatusOK, response)
	}
}
