package handler

import (
	"net/http"

	"github.com/maestria/maestria-api/internal/domain"
	"github.com/maestria/maestria-api/internal/usecases/teaming"
	"github.com/maestria/maestria-api/pkg/apiErrors"
)

type MemberStatusRequest struct {
	Status domain.MemberStatus `json:"status"`
}

func ListTeam(service *teaming.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.List(nil))
	}
}

func CreateMember(service *teaming.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var member domain.TeamMember
		if !decodeJSON(w, r, &member) {
			return
		}
		if member.Status == "" {
			member.Status = domain.MemberStatusOffline
		}

		created, err := service.Create(r.Context(), member)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

func UpdateMember(service *teaming.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var member domain.TeamMember
		if !decodeJSON(w, r, &member) {
			return
		}
		member.ID = param(r, "id")

		updated, err := service.Update(r.Context(), member)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

func DeleteMember(service *teaming.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := param(r, "id")
		if claims, ok := currentClaims(w, r); !ok {
			return
		} else if claims.MemberID == id {
			apiErrors.WriteError(w, apiErrors.ErrInvalidOperation, "Não é possível remover o próprio membro", nil)
			return
		}

		if err := service.Remove(r.Context(), id); err != nil {
			handleError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// SetMemberStatus altera a presença. Membros só alteram a própria; administradores alteram qualquer uma.
func SetMemberStatus(service *teaming.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := currentClaims(w, r)
		if !ok {
			return
		}

		id := param(r, "id")
		if claims.MemberID != id && claims.MemberRole != domain.RoleAdmin {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas o próprio membro ou um administrador pode alterar a presença", nil)
			return
		}

		var req MemberStatusRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		updated, err := service.SetStatus(r.Context(), id, req.Status)
		if err != nil {
			handleError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}
