package team

import (
	"net/http"

	"github.com/matteocalo/photodesk/internal/transport"
)

type ServiceAPI interface {
	CreateTeam(userID int64, dto CreateTeamDTO) (*Team, error)
	GetOwned(id, callerID int64) (*Team, error)
	ListTeams(callerID int64) ([]*Team, error)
	UpdateTeam(id, callerID int64, p Patch) (*Team, error)
	DeleteTeam(id, callerID int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{BaseHandler: baseHandler, Service: service}
}

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.CurrentUserID(w, r)
	if !ok {
		return
	}
	teams, err := h.Service.ListTeams(userID)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, teams)
}

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.CurrentUserID(w, r)
	if !ok {
		return
	}
	var dto CreateTeamDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	t, err := h.Service.CreateTeam(userID, dto)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, t)
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.CurrentUserID(w, r)
	if !ok {
		return
	}
	id, ok := h.IDParam(w, r, "id")
	if !ok {
		return
	}
	t, err := h.Service.GetOwned(id, userID)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, t)
}

func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.CurrentUserID(w, r)
	if !ok {
		return
	}
	id, ok := h.IDParam(w, r, "id")
	if !ok {
		return
	}
	var patch Patch
	if !h.DecodeJSON(w, r, &patch) {
		return
	}
	t, err := h.Service.UpdateTeam(id, userID, patch)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, t)
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.CurrentUserID(w, r)
	if !ok {
		return
	}
	id, ok := h.IDParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.Service.DeleteTeam(id, userID); err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
