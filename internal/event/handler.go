package event

import (
	"net/http"

	"github.com/matteocalo/photodesk/internal/transport"
)

type ServiceAPI interface {
	CreateEvent(userID int64, dto CreateEventDTO) (*Event, error)
	GetOwned(id, callerID int64) (*Event, error)
	ListEvents(callerID int64) ([]*Event, error)
	UpdateEvent(id, callerID int64, p Patch) (*Event, error)
	DeleteEvent(id, callerID int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{BaseHandler: baseHandler, Service: service}
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.CurrentUserID(w, r)
	if !ok {
		return
	}
	events, err := h.Service.ListEvents(userID)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, events)
}

func (h *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.CurrentUserID(w, r)
	if !ok {
		return
	}
	var dto CreateEventDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	e, err := h.Service.CreateEvent(userID, dto)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, e)
}

func (h *Handler) GetEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.CurrentUserID(w, r)
	if !ok {
		return
	}
	id, ok := h.IDParam(w, r, "id")
	if !ok {
		return
	}
	e, err := h.Service.GetOwned(id, userID)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, e)
}

func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
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
	e, err := h.Service.UpdateEvent(id, userID, patch)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, e)
}

func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.CurrentUserID(w, r)
	if !ok {
		return
	}
	id, ok := h.IDParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.Service.DeleteEvent(id, userID); err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
