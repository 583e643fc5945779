package equipment

import (
	"net/http"

	"github.com/matteocalo/photodesk/internal/transport"
)

type ServiceAPI interface {
	CreateEquipment(userID int64, dto CreateEquipmentDTO) (*Equipment, error)
	GetOwned(id, callerID int64) (*Equipment, error)
	ListEquipment(callerID int64) ([]*Equipment, error)
	UpdateEquipment(id, callerID int64, p Patch) (*Equipment, error)
	DeleteEquipment(id, callerID int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{BaseHandler: baseHandler, Service: service}
}

func (h *Handler) ListEquipment(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.CurrentUserID(w, r)
	if !ok {
		return
	}
	items, err := h.Service.ListEquipment(userID)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) CreateEquipment(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.CurrentUserID(w, r)
	if !ok {
		return
	}
	var dto CreateEquipmentDTO
	if !h.DecodeJSON(w, r, &dto) {
		return
	}
	e, err := h.Service.CreateEquipment(userID, dto)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusCreated, e)
}

func (h *Handler) GetEquipment(w http.ResponseWriter, r *http.Request) {
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

func (h *Handler) UpdateEquipment(w http.ResponseWriter, r *http.Request) {
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
	e, err := h.Service.UpdateEquipment(id, userID, patch)
	if err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, e)
}

func (h *Handler) DeleteEquipment(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.CurrentUserID(w, r)
	if !ok {
		return
	}
	id, ok := h.IDParam(w, r, "id")
	if !ok {
		return
	}
	if err := h.Service.DeleteEquipment(id, userID); err != nil {
		h.HandleServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
