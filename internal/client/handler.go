package client

import (
	"net/http"

	"github.com/matteocalo/photodesk/internal/transport"
)

type ServiceAPI interface {
	CreateClient(userID int64, dto CreateClientDTO) (*Client, error)
	GetOwned(id, callerID int64) (*Client, error)
	ListClients(callerID int64) ([]*Client, error)
	UpdateClient(id, callerID int64, p Patch) (*Client, error)
	DeleteClient(id, callerID int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) ListClients(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.CurrentUserID(w, r)
	if !ok {
		return
	}

	clients, err := h.Service.ListClients(userID)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, clients)
}

func (h *Handler) CreateClient(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.CurrentUserID(w, r)
	if !ok {
		return
	}

	var dto CreateClientDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}

	c, err := h.Service.CreateClient(userID, dto)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, c)
}

func (h *Handler) GetClient(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.CurrentUserID(w, r)
	if !ok {
		return
	}
	id, ok := h.IDParam(w, r, "id")
	if !ok {
		return
	}

	c, err := h.Service.GetOwned(id, userID)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) UpdateClient(w http.ResponseWriter, r *http.Request) {
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

	c, err := h.Service.UpdateClient(id, userID, patch)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.CurrentUserID(w, r)
	if !ok {
		return
	}
	id, ok := h.IDParam(w, r, "id")
	if !ok {
		return
	}

	if err := h.Service.DeleteClient(id, userID); err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
